package eval

import (
	"sort"

	eventmatch "github.com/jamesainslie/go-eventmatch"
)

// SweepResult holds the scoring outcome at one IoU threshold.
type SweepResult struct {
	Threshold float64
	Result    *eventmatch.Result
}

// SweepThresholds generates threshold values from min to max with the given
// step, capped at 1.
func SweepThresholds(min, max, step float64) []float64 {
	var thresholds []float64
	for t := min; t <= max && t <= 1; t += step {
		thresholds = append(thresholds, t)
	}
	return thresholds
}

// Sweep scores the pair at every threshold and returns the results sorted
// by overall F1 descending.
func Sweep(gt, cmp []int, thresholds []float64, opts ...eventmatch.Option) ([]SweepResult, error) {
	var results []SweepResult

	for _, threshold := range thresholds {
		scoreOpts := make([]eventmatch.Option, 0, len(opts)+1)
		scoreOpts = append(scoreOpts, opts...)
		scoreOpts = append(scoreOpts, eventmatch.WithThreshold(threshold))

		res, err := eventmatch.Score(gt, cmp, scoreOpts...)
		if err != nil {
			return nil, err
		}
		results = append(results, SweepResult{Threshold: threshold, Result: res})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Result.Overall.F1 > results[j].Result.Overall.F1
	})

	return results, nil
}
