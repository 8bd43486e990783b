package service

import "fmt"

// Error handling principles:
// 1. Expected conditions surface as sentinel errors from internal/domain and
//    internal/store, wrapped with %w so callers can use errors.Is
// 2. Unexpected failures are wrapped in ServiceError, naming the operation
// 3. The API layer maps errors to HTTP status codes

// ServiceError records which service operation failed.
type ServiceError struct {
	// Service is the service name (e.g., "cart", "order")
	Service string
	// Op is the operation that failed (e.g., "add_to_cart")
	Op string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s service %s operation failed", e.Service, e.Op)
	}
	return fmt.Sprintf("%s service %s operation failed: %v", e.Service, e.Op, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a ServiceError for op on service.
func NewServiceError(service, op string, err error) *ServiceError {
	return &ServiceError{
		Service: service,
		Op:      op,
		Err:     err,
	}
}
