package httpError

import "net/http"

// CommonError is the error payload every usecase returns through utils.Result.
// CodeName distinguishes the business error class so callers can tell a
// retryable failure from a bad request.
type CommonError struct {
	Code     int    `json:"code"`
	CodeName string `json:"codeName"`
	Message  string `json:"message"`
}

func (e *CommonError) Error() string {
	return e.Message
}

func NewBadRequest() *CommonError {
	return &CommonError{
		Code:     http.StatusBadRequest,
		CodeName: "ValidationError",
		Message:  "bad request",
	}
}

func NewNotFound() *CommonError {
	return &CommonError{
		Code:     http.StatusNotFound,
		CodeName: "NotFoundError",
		Message:  "not found",
	}
}

// NewConflict covers invalid state transitions.
func NewConflict() *CommonError {
	return &CommonError{
		Code:     http.StatusConflict,
		CodeName: "InvalidStateTransition",
		Message:  "conflict",
	}
}

// NewConflictingUpdate covers a guarded write lost to a concurrent writer.
// The caller must re-fetch before retrying.
func NewConflictingUpdate() *CommonError {
	return &CommonError{
		Code:     http.StatusConflict,
		CodeName: "ConflictingStateTransition",
		Message:  "record was modified concurrently",
	}
}

// NewSettlementError marks a rolled-back settlement transaction. Safe to
// retry: settlement is idempotent on is_paid.
func NewSettlementError() *CommonError {
	return &CommonError{
		Code:     http.StatusUnprocessableEntity,
		CodeName: "SettlementError",
		Message:  "settlement transaction failed and was rolled back",
	}
}

func NewInternalServerError() *CommonError {
	return &CommonError{
		Code:     http.StatusInternalServerError,
		CodeName: "InternalServerError",
		Message:  "internal server error",
	}
}

func NewServiceUnavailable() *CommonError {
	return &CommonError{
		Code:     http.StatusServiceUnavailable,
		CodeName: "DependencyError",
		Message:  "service unavailable",
	}
}
