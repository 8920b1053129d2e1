package jobboard

// FailureKind classifies why an operation failed. It is carried alongside
// the envelope but never serialized: transport layers use it to pick a
// status code without parsing messages.
type FailureKind int

const (
	// FailureNone means the operation succeeded.
	FailureNone FailureKind = iota
	// FailureNotFound means the requested record does not exist.
	// This is expected behavior, not an error.
	FailureNotFound
	// FailureInvalidReference means a referenced parent record does not
	// exist, e.g. applying to a job offer that was deleted.
	FailureInvalidReference
	// FailureInternal means the store or another dependency failed.
	FailureInternal
)

// Response is the uniform envelope returned by every service operation.
// Data is the zero value of T on failure, which serializes to null for
// pointer and nil-slice payloads.
type Response[T any] struct {
	IsSuccess bool   `json:"isSuccess"`
	Message   string `json:"message"`
	Data      T      `json:"data"`

	kind FailureKind
}

// Kind reports why the operation failed, or FailureNone on success.
func (r Response[T]) Kind() FailureKind {
	return r.kind
}

// Success builds a success envelope carrying data.
func Success[T any](message string, data T) Response[T] {
	return Response[T]{IsSuccess: true, Message: message, Data: data}
}

// NotFound builds a failure envelope for an absent record.
func NotFound[T any](message string) Response[T] {
	return Response[T]{Message: message, kind: FailureNotFound}
}

// InvalidReference builds a failure envelope for a dangling parent
// reference.
func InvalidReference[T any](message string) Response[T] {
	return Response[T]{Message: message, kind: FailureInvalidReference}
}

// Internal builds a failure envelope for an infrastructure error. The
// underlying error is logged where it happened and never leaves the service
// layer.
func Internal[T any](message string) Response[T] {
	return Response[T]{Message: message, kind: FailureInternal}
}
