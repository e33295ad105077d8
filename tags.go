package statsd

import "strconv"

// Tag is a single metric tag, either a bare "simple" tag or a key:value tag.
// Create them with SimpleTag, StringTag or Int64Tag.
type Tag struct {
	name  string
	value string
	kv    bool
}

// SimpleTag returns a bare tag without a value.
func SimpleTag(name string) Tag {
	return Tag{name: name}
}

// StringTag returns a key:value tag.
func StringTag(name, value string) Tag {
	return Tag{name: name, value: value, kv: true}
}

// Int64Tag returns a key:value tag with an integer value.
func Int64Tag(name string, value int64) Tag {
	return Tag{name: name, value: strconv.FormatInt(value, 10), kv: true}
}

// appendTags renders the "|#tag1,tag2,key1:val1" suffix of a wire line.
// Call-site tags are merged with the client default tags: simple tags are
// deduplicated by name, key:value tags by key, and a call-site tag always
// wins over a default with the same name - defaults only fill gaps.
// Simple tags render before key:value tags. No tags, no suffix.
func appendTags(buf []byte, call, defaults []Tag) []byte {
	n := 0
	var written []string

	emit := func(t Tag) {
		for _, name := range written {
			if name == t.name {
				return
			}
		}
		written = append(written, t.name)
		if n == 0 {
			buf = append(buf, "|#"...)
		} else {
			buf = append(buf, ',')
		}
		n++
		buf = append(buf, t.name...)
		if t.kv {
			buf = append(buf, ':')
			buf = append(buf, t.value...)
		}
	}

	// one dedup domain per tag kind
	for _, kv := range []bool{false, true} {
		written = written[:0]
		for _, t := range call {
			if t.kv == kv {
				emit(t)
			}
		}
		for _, t := range defaults {
			if t.kv == kv {
				emit(t)
			}
		}
	}
	return buf
}
