package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Pipeline error taxonomy. Text extraction failures propagate unmodified to
// the orchestrator and its callers; the later stages never return an error.
var (
	// ErrConfiguration means a required credential or endpoint is missing.
	// Fatal, surfaced immediately, never retried.
	ErrConfiguration = errors.New("configuration error")

	// ErrProviderUnavailable means the recognition or storage backend could
	// not be reached. Retry policy, if any, belongs to the caller.
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrExtractionFailed means the backend reported a processing error or
	// produced no usable output.
	ErrExtractionFailed = errors.New("extraction failed")

	// ErrExtractionTimeout means the asynchronous recognition job exceeded
	// its deadline. Distinct from ErrExtractionFailed so callers can tell
	// slow documents from broken ones.
	ErrExtractionTimeout = errors.New("extraction timeout")
)

// AppError represents application-specific errors.
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func NewAppError(code, message string, cause error) *AppError {
	return &AppError{Code: code, Message: message, Cause: cause}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// GRPCStatus maps pipeline errors onto transport status codes.
func GRPCStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrExtractionTimeout):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, ErrProviderUnavailable):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, ErrConfiguration):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, ErrExtractionFailed):
		return status.Error(codes.Internal, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}
