package eventmatch

// TypeResult holds the event-level agreement metrics for one event type.
//
// The four series are length-N indicator sequences over the original
// samples: HitSeries and MissSeries mark the spans of ground-truth segments
// classified that way, FalseAlarm1Series and FalseAlarm2Series mark the
// spans of the comparison segments. IoUSeries carries the IoU of the
// qualifying match across each hit ground-truth span, 0 elsewhere.
type TypeResult struct {
	Hits         int
	Misses       int
	FalseAlarms1 int // overlapped a real event but fell below the IoU threshold
	FalseAlarms2 int // no overlap with any real event
	F1           float64

	HitSeries         []int
	MissSeries        []int
	FalseAlarm1Series []int
	FalseAlarm2Series []int
	IoUSeries         []float64
}

// Result maps every scored event type to its metrics.
//
// Keys lists the type keys in scoring order; PerType is keyed by display
// name when names were supplied, otherwise by the decimal label. Overall
// aggregates counts and series across all scored types.
type Result struct {
	N         int // sample count of the input sequences
	Threshold float64
	Keys      []string
	PerType   map[string]TypeResult
	Overall   TypeResult
}

// f1Score computes the event-level F1 from the category counts. Zero when
// no events of the type exist in either sequence.
func f1Score(hits, misses, falseAlarms int) float64 {
	denom := 2*hits + misses + falseAlarms
	if denom == 0 {
		return 0
	}
	return float64(2*hits) / float64(denom)
}

// aggregate turns one matching pass into a TypeResult over n samples.
func aggregate(gt, cmp []Segment, m matchOutcome, n int) TypeResult {
	r := TypeResult{
		Hits:         m.hits,
		Misses:       m.misses,
		FalseAlarms1: m.fa1,
		FalseAlarms2: m.fa2,
		F1:           f1Score(m.hits, m.misses, m.fa1+m.fa2),

		HitSeries:         make([]int, n),
		MissSeries:        make([]int, n),
		FalseAlarm1Series: make([]int, n),
		FalseAlarm2Series: make([]int, n),
		IoUSeries:         make([]float64, n),
	}

	for i, s := range gt {
		if m.hitGT[i] {
			paint(r.HitSeries, s)
			for k := s.Start; k <= s.End; k++ {
				r.IoUSeries[k] = m.iouGT[i]
			}
		}
		if m.missGT[i] {
			paint(r.MissSeries, s)
		}
	}
	for j, s := range cmp {
		if m.fa1Cmp[j] {
			paint(r.FalseAlarm1Series, s)
		}
		if m.fa2Cmp[j] {
			paint(r.FalseAlarm2Series, s)
		}
	}

	return r
}

func paint(series []int, s Segment) {
	for i := s.Start; i <= s.End; i++ {
		series[i] = 1
	}
}

// merge folds one type's result into the running overall aggregate.
func merge(overall *TypeResult, r TypeResult) {
	overall.Hits += r.Hits
	overall.Misses += r.Misses
	overall.FalseAlarms1 += r.FalseAlarms1
	overall.FalseAlarms2 += r.FalseAlarms2
	for i := range r.HitSeries {
		if r.HitSeries[i] != 0 {
			overall.HitSeries[i] = 1
		}
		if r.MissSeries[i] != 0 {
			overall.MissSeries[i] = 1
		}
		if r.FalseAlarm1Series[i] != 0 {
			overall.FalseAlarm1Series[i] = 1
		}
		if r.FalseAlarm2Series[i] != 0 {
			overall.FalseAlarm2Series[i] = 1
		}
		overall.IoUSeries[i] += r.IoUSeries[i]
	}
}
