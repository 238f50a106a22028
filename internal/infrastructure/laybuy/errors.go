package laybuy

import (
	"errors"
	"fmt"
)

// ResponseError keeps the raw reply that could not be decoded.
type ResponseError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("laybuy responded with status %d: %v", e.StatusCode, e.Err)
}

func (e *ResponseError) Unwrap() error {
	return e.Err
}

func IsResponseError(err error) (*ResponseError, bool) {
	var respErr *ResponseError
	ok := errors.As(err, &respErr)
	return respErr, ok
}
