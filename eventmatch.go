package eventmatch

import (
	"fmt"
	"sort"
	"strconv"

	"golang.org/x/sync/errgroup"
)

// Score compares a comparison annotation against a ground-truth annotation
// at the event level.
//
// Both sequences carry one label per sample and must be the same length.
// For every requested event type the sequences are binarized, their maximal
// runs extracted as segments, and the comparison segments matched against
// the ground-truth segments by intersection-over-union. By default every
// distinct label across both sequences is scored at an IoU threshold of
// 0.5; use options to restrict the types, name them, or change the
// threshold.
func Score(gt, cmp []int, opts ...Option) (*Result, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(gt) != len(cmp) {
		return nil, fmt.Errorf("%w: ground truth has %d samples, comparison has %d",
			ErrLengthMismatch, len(gt), len(cmp))
	}
	if cfg.threshold <= 0 || cfg.threshold > 1 {
		return nil, fmt.Errorf("%w: %v (want 0 < t <= 1)", ErrThreshold, cfg.threshold)
	}

	types := cfg.eventTypes
	if types == nil {
		types = distinctLabels(gt, cmp)
	}
	if cfg.labelNames != nil && len(cfg.labelNames) != len(types) {
		return nil, fmt.Errorf("%w: %d names for %d event types",
			ErrLabelNameCount, len(cfg.labelNames), len(types))
	}

	n := len(gt)
	keys := make([]string, len(types))
	for i, label := range types {
		if cfg.labelNames != nil {
			keys[i] = cfg.labelNames[i]
		} else {
			keys[i] = strconv.Itoa(label)
		}
	}

	// Passes share only the read-only input sequences, so scoring across
	// types can fan out without coordination.
	perType := make([]TypeResult, len(types))
	scoreType := func(i int) {
		label := types[i]
		gtSegs := Segments(Binarize(gt, label))
		cmpSegs := Segments(Binarize(cmp, label))
		m := matchSegments(gtSegs, cmpSegs, cfg.threshold)
		perType[i] = aggregate(gtSegs, cmpSegs, m, n)
		cfg.logger.Debug("scored event type",
			"label", label,
			"key", keys[i],
			"gt_segments", len(gtSegs),
			"cmp_segments", len(cmpSegs),
			"f1", perType[i].F1)
	}

	if cfg.parallelism > 1 {
		var g errgroup.Group
		g.SetLimit(cfg.parallelism)
		for i := range types {
			g.Go(func() error {
				scoreType(i)
				return nil
			})
		}
		_ = g.Wait() // passes cannot fail
	} else {
		for i := range types {
			scoreType(i)
		}
	}

	res := &Result{
		N:         n,
		Threshold: cfg.threshold,
		Keys:      keys,
		PerType:   make(map[string]TypeResult, len(types)),
		Overall: TypeResult{
			HitSeries:         make([]int, n),
			MissSeries:        make([]int, n),
			FalseAlarm1Series: make([]int, n),
			FalseAlarm2Series: make([]int, n),
			IoUSeries:         make([]float64, n),
		},
	}
	for i, key := range keys {
		res.PerType[key] = perType[i]
		merge(&res.Overall, perType[i])
	}
	res.Overall.F1 = f1Score(res.Overall.Hits, res.Overall.Misses,
		res.Overall.FalseAlarms1+res.Overall.FalseAlarms2)

	return res, nil
}

// distinctLabels returns the sorted set of labels present in either
// sequence.
func distinctLabels(gt, cmp []int) []int {
	seen := make(map[int]struct{})
	for _, v := range gt {
		seen[v] = struct{}{}
	}
	for _, v := range cmp {
		seen[v] = struct{}{}
	}
	labels := make([]int, 0, len(seen))
	for v := range seen {
		labels = append(labels, v)
	}
	sort.Ints(labels)
	return labels
}
