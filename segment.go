package eventmatch

// Segment is a maximal contiguous run of 1s in a binarized label sequence.
// Start and End are inclusive sample indices.
type Segment struct {
	Start int
	End   int
}

// Len returns the number of samples the segment covers.
func (s Segment) Len() int {
	return s.End - s.Start + 1
}

// overlap returns the number of samples shared by the two segments' index
// ranges, zero if they are disjoint.
func overlap(a, b Segment) int {
	lo := a.Start
	if b.Start > lo {
		lo = b.Start
	}
	hi := a.End
	if b.End < hi {
		hi = b.End
	}
	if hi < lo {
		return 0
	}
	return hi - lo + 1
}

// iou returns the intersection-over-union of the two segments' index ranges:
// the number of shared samples divided by the number of samples in the
// combined range. Zero for disjoint segments.
func iou(a, b Segment) float64 {
	inter := overlap(a, b)
	if inter == 0 {
		return 0
	}
	union := a.Len() + b.Len() - inter
	return float64(inter) / float64(union)
}

// Binarize returns an indicator sequence with 1 at every position where seq
// equals label and 0 elsewhere.
func Binarize(seq []int, label int) []int {
	out := make([]int, len(seq))
	for i, v := range seq {
		if v == label {
			out[i] = 1
		}
	}
	return out
}

// Segments extracts every maximal run of 1s from an indicator sequence, in
// sequence order. Runs touching either end of the sequence are ordinary
// segments. An empty or all-zero sequence yields an empty list.
func Segments(indicator []int) []Segment {
	var segs []Segment
	start := -1
	for i, v := range indicator {
		switch {
		case v != 0 && start < 0:
			start = i
		case v == 0 && start >= 0:
			segs = append(segs, Segment{Start: start, End: i - 1})
			start = -1
		}
	}
	if start >= 0 {
		segs = append(segs, Segment{Start: start, End: len(indicator) - 1})
	}
	return segs
}

// Indicator rebuilds a length-n indicator sequence from segments: positions
// covered by any segment are 1, the rest 0. It is the inverse of Segments
// for any valid segment list.
func Indicator(segs []Segment, n int) []int {
	out := make([]int, n)
	for _, s := range segs {
		for i := s.Start; i <= s.End && i < n; i++ {
			out[i] = 1
		}
	}
	return out
}
