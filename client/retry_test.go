package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusError(code int) error {
	recorder := httptest.NewRecorder()
	recorder.WriteHeader(code)
	return newUnexpectedStatusError(recorder.Result())
}

func TestDefaultRetryPolicy(t *testing.T) {
	r := DefaultRetryPolicy()
	assert.Equal(t, retryAttempts, r.Attempts)
	assert.Equal(t, retryDelay, r.Delay)
}

func TestRetryPolicy_Do(t *testing.T) {
	testErr := errors.New("expected error")
	transportErr := &url.Error{Op: "Get", URL: "https://localhost", Err: testErr}

	tests := []struct {
		name      string
		policy    RetryPolicy
		errs      []error
		wantCalls int
		errorIs   error
		exhausted bool
	}{
		{
			name:      "first attempt ok",
			policy:    RetryPolicy{Attempts: 3},
			errs:      []error{nil},
			wantCalls: 1,
		},
		{
			name:      "recovers after transport errors",
			policy:    RetryPolicy{Attempts: 3},
			errs:      []error{transportErr, transportErr, nil},
			wantCalls: 3,
		},
		{
			name:      "recovers after server error",
			policy:    RetryPolicy{Attempts: 2},
			errs:      []error{statusError(http.StatusBadGateway), nil},
			wantCalls: 2,
		},
		{
			name:      "retries too many requests",
			policy:    RetryPolicy{Attempts: 2},
			errs:      []error{statusError(http.StatusTooManyRequests), nil},
			wantCalls: 2,
		},
		{
			name:      "gives up after all attempts",
			policy:    RetryPolicy{Attempts: 3},
			errs:      []error{transportErr, transportErr, transportErr},
			wantCalls: 3,
			errorIs:   ErrRetryFailed,
			exhausted: true,
		},
		{
			name:      "no retry on client error",
			policy:    RetryPolicy{Attempts: 3},
			errs:      []error{statusError(http.StatusNotFound)},
			wantCalls: 1,
			errorIs:   ErrUnexpectedStatus,
		},
		{
			name:      "no retry on unclassified error",
			policy:    RetryPolicy{Attempts: 3},
			errs:      []error{testErr},
			wantCalls: 1,
			errorIs:   testErr,
		},
		{
			name:      "zero attempts means one call",
			policy:    RetryPolicy{},
			errs:      []error{transportErr},
			wantCalls: 1,
			errorIs:   ErrRetryFailed,
			exhausted: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int
			err := tt.policy.Do(context.Background(), func() error {
				defer func() { calls++ }()
				return tt.errs[calls]
			})

			assert.Equal(t, tt.wantCalls, calls)
			if tt.errorIs == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.errorIs)

			var retryErr *RetryExhaustedError
			if tt.exhausted {
				require.ErrorAs(t, err, &retryErr)
			} else {
				assert.False(t, errors.As(err, &retryErr))
			}
		})
	}
}

func TestRetryPolicy_Do_canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	transportErr := &url.Error{Op: "Get", URL: "https://localhost",
		Err: errors.New("refused")}

	var calls int
	err := RetryPolicy{Attempts: 3, Delay: time.Hour}.Do(ctx, func() error {
		calls++
		return transportErr
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}
