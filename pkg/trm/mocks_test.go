package trm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SergeyBogomolovv/chef-market/pkg/trm"
	"github.com/SergeyBogomolovv/chef-market/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMockManager_Do(t *testing.T) {
	t.Run("returns configured error", func(t *testing.T) {
		m := mocks.NewMockManager(t)
		boom := errors.New("boom")
		m.EXPECT().Do(mock.Anything, mock.Anything).Return(boom).Once()

		var tx trm.Manager = m
		assert.ErrorIs(t, tx.Do(context.Background(), func(context.Context) error { return nil }), boom)
	})

	t.Run("runs callback", func(t *testing.T) {
		m := mocks.NewMockManager(t)
		m.EXPECT().Do(mock.Anything, mock.Anything).
			RunAndReturn(func(ctx context.Context, callback func(ctx context.Context) error) error {
				return callback(ctx)
			}).Once()

		var called bool
		err := m.Do(context.Background(), func(context.Context) error {
			called = true
			return nil
		})
		assert.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("run sees callback", func(t *testing.T) {
		m := mocks.NewMockManager(t)
		var seen func(ctx context.Context) error
		m.EXPECT().Do(mock.Anything, mock.Anything).
			Run(func(_ context.Context, callback func(ctx context.Context) error) { seen = callback }).
			Return(nil).Once()

		assert.NoError(t, m.Do(context.Background(), func(context.Context) error { return nil }))
		assert.NotNil(t, seen)
	})
}
