package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Configuration & Environment Errors
var (
	ErrConfigMissing       = errors.New("configuration missing")
	ErrEnvironmentVariable = errors.New("environment variable error")
)

// Third-party service errors
var (
	ErrServiceUnavailable = errors.New("service unavailable")
)

// Configuration & Environment Error Constructors
func NewConfigMissingError(component string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusServiceUnavailable,
		err:        ErrConfigMissing,
		Details:    fmt.Sprintf("%s is not configured", component),
	}
}

func NewEnvironmentVariableError(varName string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrEnvironmentVariable,
		Details:    fmt.Sprintf("Environment variable %s is not set or invalid", varName),
		Field:      varName,
	}
}

func NewServiceUnavailableError(service string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrServiceUnavailable,
		Details:    fmt.Sprintf("%s request failed", service),
		Cause:      cause,
	}
}

func IsConfigMissing(err error) bool {
	return errors.Is(err, ErrConfigMissing)
}
