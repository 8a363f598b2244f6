package prediction

import (
	"errors"
	"fmt"
)

// ErrSubmissionInFlight is returned when a prediction is requested while a
// previous one for the same session is still running.
var ErrSubmissionInFlight = errors.New("a prediction is already in progress")

// ErrNoResult is returned when an operation needs a completed prediction
// and the session does not have one.
var ErrNoResult = errors.New("no prediction result available")

// ErrNoRequest is returned when retry is called before any request was built.
var ErrNoRequest = errors.New("nothing to retry")

// ValidationError reports an observation field that fails local checks. It
// never reaches the inference service.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// PredictionError wraps any failure to obtain a result from the inference
// service: transport errors, timeouts, and non-2xx responses alike.
type PredictionError struct {
	Op     string
	Status int
	Err    error
}

func (e *PredictionError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("prediction %s failed: upstream returned %d", e.Op, e.Status)
	}
	return fmt.Sprintf("prediction %s failed: %v", e.Op, e.Err)
}

func (e *PredictionError) Unwrap() error { return e.Err }

// PersistError reports a failure to save an already-obtained result. The
// result itself stays available; only the save failed.
type PersistError struct {
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("failed to save prediction: %v", e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }
