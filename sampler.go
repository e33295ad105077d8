package statsd

// sample decides whether a call with the given sample rate is emitted this
// time. Rates >= 1 always pass. Below that one uniform draw in [0,1) is
// taken from the configured random source and the call passes iff the draw
// is <= rate. Sampling rejections are a normal silent outcome, not errors.
func (cfg *config) sample(rate float64) bool {
	if rate >= 1 {
		return true
	}
	return cfg.random() <= rate
}
