// Package projection holds the view-facing state machines. Each
// projection wraps a service and exposes the current screen state as a
// tagged idle/loading/success/error value, patched in place where the
// client would otherwise re-fetch.
package projection

// Status tags a State value.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// State is a tagged view state. Data is meaningful only for
// StatusSuccess, Message only for StatusError.
type State[T any] struct {
	Status  Status `json:"status"`
	Data    T      `json:"data,omitzero"`
	Message string `json:"message,omitempty"`
}

// Idle returns the initial state.
func Idle[T any]() State[T] {
	return State[T]{Status: StatusIdle}
}

// Loading returns the in-flight state.
func Loading[T any]() State[T] {
	return State[T]{Status: StatusLoading}
}

// Success wraps loaded data.
func Success[T any](data T) State[T] {
	return State[T]{Status: StatusSuccess, Data: data}
}

// Errored wraps a failure message.
func Errored[T any](message string) State[T] {
	return State[T]{Status: StatusError, Message: message}
}

// IsSuccess reports whether the state carries data.
func (s State[T]) IsSuccess() bool {
	return s.Status == StatusSuccess
}
