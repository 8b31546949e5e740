package domain

import "fmt"

// ServiceError is a failure the remote generative service reported itself,
// as opposed to a failure reaching it. Clients return it for any non-2xx
// API response so callers can separate the two with errors.As.
type ServiceError struct {
	Message string
	Code    int
	Status  string
}

func (e *ServiceError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("service error %d (%s): %s", e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("service error %d: %s", e.Code, e.Message)
}

// SendErrorKind names the disjoint failure categories of a send.
type SendErrorKind string

const (
	// SendErrorPrecondition means the input was rejected locally; the
	// network was never touched.
	SendErrorPrecondition SendErrorKind = "precondition"
	// SendErrorTransport means the service could not be reached.
	SendErrorTransport SendErrorKind = "transport"
	// SendErrorRemote means the service responded but signaled failure.
	SendErrorRemote SendErrorKind = "remote"
	// SendErrorEmptyResult means the service answered successfully but
	// produced no usable text.
	SendErrorEmptyResult SendErrorKind = "empty_result"
)

// SendError is the tagged failure outcome of a send. Code and Status are
// only set for the remote kind, copied verbatim from the service.
type SendError struct {
	Kind    SendErrorKind
	Message string
	Code    int
	Status  string
}

func (e *SendError) Error() string {
	return fmt.Sprintf("send failed (%s): %s", e.Kind, e.Message)
}
