package eventmatch

import "log/slog"

// Option configures a scoring call.
type Option func(*config)

type config struct {
	threshold   float64
	eventTypes  []int
	labelNames  []string
	parallelism int
	logger      *slog.Logger
}

func defaultConfig() config {
	return config{
		threshold:   0.5,
		parallelism: 1,
		logger:      slog.Default(),
	}
}

// WithThreshold sets the IoU threshold a comparison event must reach to
// count as a hit (default: 0.5).
func WithThreshold(t float64) Option {
	return func(c *config) {
		c.threshold = t
	}
}

// WithEventTypes restricts scoring to the given labels, in the given order
// (default: every distinct label across both sequences, sorted).
func WithEventTypes(types []int) Option {
	return func(c *config) {
		c.eventTypes = types
	}
}

// WithLabelNames keys the result by display name instead of by label. The
// name count must match the event-type count.
func WithLabelNames(names []string) Option {
	return func(c *config) {
		c.labelNames = names
	}
}

// WithParallelism scores up to n event types concurrently (default: 1,
// sequential).
func WithParallelism(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.parallelism = n
		}
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
