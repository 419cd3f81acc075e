package service

// Status is the outcome of a dispatched action.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// ErrorKind is the machine-readable classification of a per-request
// failure.
type ErrorKind string

const (
	KindUnsupported ErrorKind = "unsupported_action"
	KindValidation  ErrorKind = "validation"
	KindAuth        ErrorKind = "auth"
	KindNotFound    ErrorKind = "not_found"
	KindTransport   ErrorKind = "transport"
)

// ActionError is the payload of an error-status response.
type ActionError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// ActionResponse is the uniform response shape: a status plus a payload
// that is an IssueSummary, a list of IssueSummary, or an ActionError.
type ActionResponse struct {
	Status  Status `json:"status"`
	Payload any    `json:"payload,omitempty"`
}

// Err returns the error payload, or nil for success responses.
func (r ActionResponse) Err() *ActionError {
	if r.Status != StatusError {
		return nil
	}
	if e, ok := r.Payload.(ActionError); ok {
		return &e
	}
	return nil
}

func successResponse(payload any) ActionResponse {
	return ActionResponse{Status: StatusSuccess, Payload: payload}
}

func errorResponse(kind ErrorKind, message string) ActionResponse {
	return ActionResponse{
		Status:  StatusError,
		Payload: ActionError{Kind: kind, Message: message},
	}
}
