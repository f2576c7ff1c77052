package utils_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/order-tracker/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestRetry(t *testing.T) {
	errTemp := errors.New("temporary")
	errFatal := errors.New("fatal")
	cfg := utils.RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond}

	testCases := []struct {
		name      string
		results   []error
		stop      []error
		wantErr   error
		wantCalls int
	}{
		{name: "success first try", results: []error{nil}, wantCalls: 1},
		{name: "success after retry", results: []error{errTemp, nil}, wantCalls: 2},
		{name: "all attempts fail", results: []error{errTemp, errTemp, errTemp}, wantErr: errTemp, wantCalls: 3},
		{name: "stop error is not retried", results: []error{errFatal}, stop: []error{errFatal}, wantErr: errFatal, wantCalls: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			err := utils.Retry(context.Background(), cfg, func() error {
				res := tc.results[calls]
				calls++
				return res
			}, tc.stop...)

			assert.Equal(t, tc.wantCalls, calls)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRetry_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := utils.Retry(ctx, utils.RetryConfig{MaxAttempts: 5, InitialDelay: time.Second}, func() error {
		calls++
		return errors.New("down")
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}
