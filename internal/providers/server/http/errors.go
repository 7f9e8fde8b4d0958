package http

import "github.com/idstack/idstack-cli/faults"

func validationError(message string, cause error) error {
	return faults.Validation(message, cause)
}

func notFoundError(message string, cause error) error {
	return faults.NotFound(message, cause)
}

func conflictError(message string, cause error) error {
	return faults.Conflict(message, cause)
}

func authError(message string, cause error) error {
	return faults.Auth(message, cause)
}

func transportError(message string, cause error) error {
	return faults.Transport(message, cause)
}

func internalError(message string, cause error) error {
	return faults.Internal(message, cause)
}
