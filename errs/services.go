package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Outbound dependency errors
var (
	ErrUploadFailed       = errors.New("file upload failed")
	ErrServiceUnreachable = errors.New("service unreachable")
)

func NewUploadFailedError(fileName string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrUploadFailed,
		Details:    fmt.Sprintf("Failed to upload %s", fileName),
		Cause:      cause,
		Field:      "files",
	}
}

func NewServiceUnreachableError(service string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusServiceUnavailable,
		err:        ErrServiceUnreachable,
		Details:    fmt.Sprintf("Service %s is unreachable", service),
		Cause:      cause,
	}
}

func IsUploadFailedError(err error) bool {
	return errors.Is(err, ErrUploadFailed)
}
