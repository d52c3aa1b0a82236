package eventmatch

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrLengthMismatch indicates the two label sequences differ in length.
	ErrLengthMismatch = errors.New("eventmatch: sequence lengths differ")

	// ErrLabelNameCount indicates the display-name count does not match the
	// event-type count.
	ErrLabelNameCount = errors.New("eventmatch: label name count mismatch")

	// ErrThreshold indicates the IoU threshold is outside (0, 1].
	ErrThreshold = errors.New("eventmatch: IoU threshold out of range")
)
