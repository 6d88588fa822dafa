package trm

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutor(t *testing.T) {
	db := &sqlx.DB{}
	tx := &sqlx.Tx{}

	assert.Nil(t, ExtractTx(context.Background()))
	assert.Same(t, db, Executor(context.Background(), db))

	ctx := withTx(context.Background(), tx)
	assert.Same(t, tx, ExtractTx(ctx))
	assert.Same(t, tx, Executor(ctx, db))
}

func TestManager_DoJoinsOuterTx(t *testing.T) {
	// a nil pool would panic on BeginTxx, so reaching the callback proves the join
	m := NewManager(&sqlx.DB{})
	tx := &sqlx.Tx{}
	ctx := withTx(context.Background(), tx)

	var seen *sqlx.Tx
	err := m.Do(ctx, func(ctx context.Context) error {
		seen = ExtractTx(ctx)
		return nil
	})
	require.NoError(t, err)
	assert.Same(t, tx, seen)

	boom := errors.New("boom")
	err = m.Do(ctx, func(context.Context) error { return boom })
	assert.ErrorIs(t, err, boom)
}
