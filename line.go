package statsd

import "strconv"

// config is the immutable per-client configuration snapshot. It is shared
// read-only by the client and every pipeline spawned from it; merging tags
// always produces fresh output and never mutates the defaults.
type config struct {
	prefix    string // including trailing "." when set
	tags      []Tag
	maxPacket int
	streaming bool
	random    func() float64
}

// encode renders one wire line:
//
//    [<prefix>.]<stat>:<value><type>[|@<rate>][|#<tag>[,<tag>...]]
//
// value arrives pre-rendered with its type suffix (e.g. "5|c").
// The sampling decision is taken first; a rejected call produces no line.
// The rate suffix is only present for rate < 1 and renders the rate as
// given, not rounded.
func (cfg *config) encode(stat, value string, rate float64, tags []Tag) (string, bool) {
	if rate < 1 {
		if !cfg.sample(rate) {
			return "", false
		}
		value = value + "|@" + strconv.FormatFloat(rate, 'g', -1, 64)
	}

	buf := make([]byte, 0, len(cfg.prefix)+len(stat)+1+len(value)+16)
	buf = append(buf, cfg.prefix...)
	buf = append(buf, stat...)
	buf = append(buf, ':')
	buf = append(buf, value...)
	buf = appendTags(buf, tags, cfg.tags)
	return string(buf), true
}
