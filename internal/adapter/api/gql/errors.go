package gql

import (
	apperrors "blooddonor/pkg/errors"
)

// fieldError is what resolvers hand back to graphql-go. The message is the
// plain AppError message and the code and status travel in extensions.
type fieldError struct {
	message    string
	extensions map[string]interface{}
	cause      error
}

func (e *fieldError) Error() string {
	return e.message
}

func (e *fieldError) Extensions() map[string]interface{} {
	return e.extensions
}

func (e *fieldError) Unwrap() error {
	return e.cause
}

// toFieldError keeps unknown errors as they are so store faults surface
// unchanged, the way they would from the transport layer.
func toFieldError(err error) error {
	if err == nil {
		return nil
	}
	appErr, ok := apperrors.As(err)
	if !ok {
		return err
	}
	return &fieldError{
		message:    appErr.Message,
		extensions: appErr.Extensions(),
		cause:      appErr,
	}
}
