package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetry(t *testing.T) {
	errTemporary := errors.New("temporary")
	errFatal := errors.New("fatal")
	cfg := RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond}

	testCases := []struct {
		name      string
		failures  []error
		wantCalls int
		wantErr   error
	}{
		{name: "first attempt", wantCalls: 1},
		{name: "second attempt", failures: []error{errTemporary}, wantCalls: 2},
		{name: "gives up", failures: []error{errTemporary, errTemporary, errTemporary}, wantCalls: 3, wantErr: errTemporary},
		{name: "stop error", failures: []error{errFatal}, wantCalls: 1, wantErr: errFatal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			err := Retry(cfg, func() error {
				calls++
				if calls <= len(tc.failures) {
					return tc.failures[calls-1]
				}
				return nil
			}, errFatal)

			assert.Equal(t, tc.wantCalls, calls)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
