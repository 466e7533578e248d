package interval

import "fmt"

// PrecisionExhaustedError is returned when a sample walk consumes its
// full k-1 bit budget without landing inside any interval J[b]. Per
// the construction this has probability zero, so its appearance
// signals a preprocessing bug rather than bad luck.
type PrecisionExhaustedError struct {
	K int
}

func (e *PrecisionExhaustedError) Error() string {
	return fmt.Sprintf("interval: precision exhausted after %d bits without a match", e.K-1)
}
