package client

import (
	"errors"
	"fmt"
	"net/http"
)

const maxExpectedStatusCode = 299

var (
	ErrUnexpectedStatus = fmt.Errorf("unexpected status code (>%d)",
		maxExpectedStatusCode)

	ErrRetryFailed = errors.New("request retries exhausted")
)

func newUnexpectedStatusError(resp *http.Response) error {
	return errors.Join(
		&UnexpectedStatusError{
			httpStatus:     resp.Status,
			httpStatusCode: resp.StatusCode,
		}, ErrUnexpectedStatus,
	)
}

type UnexpectedStatusError struct {
	httpStatus     string
	httpStatusCode int
}

func (self *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("%d (%v)", self.httpStatusCode, self.httpStatus)
}

func (self *UnexpectedStatusError) Is(target error) bool {
	_, ok := target.(*UnexpectedStatusError)
	return ok
}

func (self *UnexpectedStatusError) StatusCode() int {
	return self.httpStatusCode
}

// --------------------------------------------------

func newRetryExhaustedError(attempts int, cause error) error {
	return errors.Join(
		&RetryExhaustedError{
			attempts: attempts,
			cause:    cause,
		}, ErrRetryFailed,
	)
}

type RetryExhaustedError struct {
	attempts int
	cause    error
}

func (self *RetryExhaustedError) Error() string {
	return fmt.Sprintf("give up after %d attempts: %s", self.attempts, self.cause)
}

func (self *RetryExhaustedError) Is(target error) bool {
	_, ok := target.(*RetryExhaustedError)
	return ok
}

func (self *RetryExhaustedError) Unwrap() error { return self.cause }

func (self *RetryExhaustedError) Attempts() int { return self.attempts }
