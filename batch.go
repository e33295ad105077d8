package statsd

// packLines greedily coalesces ordered wire lines into newline-joined
// payloads no larger than max bytes, calling emit for each payload as soon
// as it is finished. The packing is deliberately a single order-preserving
// pass, not an optimal bin-packer: lines can never be reordered, at the
// cost of possible sub-optimal packing.
//
// A single line which alone reaches max is passed through as its own
// oversized payload, never split mid-line. No input, no emit calls.
func packLines(lines []string, max int, emit func(payload string)) {
	if len(lines) == 0 {
		return
	}
	cur := lines[0]
	for _, line := range lines[1:] {
		if len(cur)+1+len(line) >= max {
			emit(cur)
			cur = line
			continue
		}
		cur = cur + "\n" + line
	}
	emit(cur)
}
