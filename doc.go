// Package eventmatch scores event-level agreement between two sample-level
// label sequences, such as a hand-labelled ground truth and a classifier's
// output for fixations, saccades, PSOs, and smooth pursuits.
//
// Agreement is judged per event rather than per sample: for each event type
// the sequences are binarized, maximal runs become segments, and comparison
// segments are matched greedily against ground-truth segments using an
// intersection-over-union threshold. Each ground-truth event ends up a hit
// or a miss; each comparison event ends up a hit partner, a type-1 false
// alarm (overlapped a real event but below the threshold), or a type-2
// false alarm (overlapped nothing).
//
// # Quick Start
//
//	gt := []int{0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0}
//	cmp := []int{0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0}
//
//	res, err := eventmatch.Score(gt, cmp)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("F1 for saccades: %.3f\n", res.PerType["1"].F1)
//
// # Concurrency
//
// Scoring passes over different event types share only the read-only input
// sequences. WithParallelism fans passes out across goroutines; results are
// identical either way.
package eventmatch
