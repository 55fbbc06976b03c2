package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	retryAttempts = 3
	retryDelay    = 2 * time.Second
)

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{Attempts: retryAttempts, Delay: retryDelay}
}

// RetryPolicy retries an operation a bounded number of times with a fixed
// delay between attempts. Attempts counts the total number of calls, not the
// number of retries.
type RetryPolicy struct {
	Attempts int
	Delay    time.Duration
}

func (self RetryPolicy) Do(ctx context.Context, fn func() error) error {
	attempts := self.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 1; ; attempt++ {
		if err = fn(); err == nil || !self.retryable(err) {
			return err
		} else if attempt >= attempts {
			break
		}
		if err := self.wait(ctx); err != nil {
			return err
		}
	}
	return newRetryExhaustedError(attempts, err)
}

// retryable reports whether err is worth another attempt: transport failures
// and server side statuses are, client side statuses are not.
func (self RetryPolicy) retryable(err error) bool {
	var statusErr *UnexpectedStatusError
	if errors.As(err, &statusErr) {
		code := statusErr.StatusCode()
		return code == http.StatusTooManyRequests ||
			code >= http.StatusInternalServerError
	}

	if errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

func (self RetryPolicy) wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("wait before next attempt: %w", ctx.Err())
	case <-time.After(self.Delay):
	}
	return nil
}
