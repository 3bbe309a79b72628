package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNoQuestion is returned for a missing or blank question.
	ErrNoQuestion = errors.New("no question provided")
	// ErrModelUnavailable is returned when a question needs the QA model
	// but the model failed to load at startup.
	ErrModelUnavailable = errors.New("qa model is not loaded")
)

// InferenceError wraps any failure raised while running the QA model.
// The cause is for logs only.
type InferenceError struct {
	Err error
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("inference failed: %v", e.Err)
}

func (e *InferenceError) Unwrap() error {
	return e.Err
}
