package eventmatch

// matchOutcome records how one matching pass classified each segment.
// Slices are indexed by position in the segment lists handed to
// matchSegments; counts are the event-level tallies. All state is local to
// a single pass so passes over different event types never alias.
type matchOutcome struct {
	hits   int
	misses int
	fa1    int
	fa2    int

	hitGT  []bool
	missGT []bool
	iouGT  []float64 // IoU of the qualifying match for each hit ground-truth segment

	fa1Cmp []bool
	fa2Cmp []bool
}

// matchSegments pairs ground-truth segments against comparison segments for
// one event type using greedy left-to-right matching.
//
// Each ground-truth segment considers the not-yet-used comparison segments
// overlapping it, in sequence order. A comparison segment with IoU at or
// above threshold scores a hit; one below it is a type-1 false alarm. Either
// way the comparison segment is used up and never reconsidered. A
// ground-truth segment that collects no hit is a miss. Comparison segments
// left untouched at the end overlapped nothing and are type-2 false alarms.
//
// A ground-truth segment corroborated by several qualifying comparison
// segments scores one hit per qualifying segment; the hit count is
// deliberately not capped at one per ground-truth event.
func matchSegments(gt, cmp []Segment, threshold float64) matchOutcome {
	out := matchOutcome{
		hitGT:  make([]bool, len(gt)),
		missGT: make([]bool, len(gt)),
		iouGT:  make([]float64, len(gt)),
		fa1Cmp: make([]bool, len(cmp)),
		fa2Cmp: make([]bool, len(cmp)),
	}

	used := make([]bool, len(cmp))
	for i, g := range gt {
		matched := false
		for j, c := range cmp {
			if used[j] || overlap(g, c) == 0 {
				continue
			}
			used[j] = true
			if v := iou(g, c); v >= threshold {
				out.hits++
				out.hitGT[i] = true
				out.iouGT[i] = v
				matched = true
			} else {
				out.fa1++
				out.fa1Cmp[j] = true
			}
		}
		if !matched {
			out.misses++
			out.missGT[i] = true
		}
	}

	for j := range cmp {
		if !used[j] {
			out.fa2++
			out.fa2Cmp[j] = true
		}
	}

	return out
}
