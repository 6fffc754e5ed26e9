package domain

import "errors"

var (
	ErrTaskNotFound      = errors.New("task record not found")
	ErrNegativeCompleted = errors.New("completed count cannot be negative")
	ErrInvalidTarget     = errors.New("target must be at least 1")
)

// TaskRecord tracks the small-goals intention vs. reality for a single day.
// Message caches the last AI-generated encouragement for that state.
// The UI clamps completed <= target; the store does not enforce it.
type TaskRecord struct {
	Date      string `json:"date"`
	Completed int    `json:"completed"`
	Target    int    `json:"target"`
	Message   string `json:"message,omitempty"`
}

func (t TaskRecord) Validate() error {
	if !ValidDate(t.Date) {
		return ErrInvalidDate
	}
	if t.Completed < 0 {
		return ErrNegativeCompleted
	}
	if t.Target < 1 {
		return ErrInvalidTarget
	}
	return nil
}
