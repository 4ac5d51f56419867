package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTx struct {
	pgx.Tx
	commitErr  error
	committed  bool
	rolledBack bool
}

func (tx *fakeTx) Commit(context.Context) error {
	if tx.commitErr != nil {
		return tx.commitErr
	}
	tx.committed = true
	return nil
}

func (tx *fakeTx) Rollback(context.Context) error {
	if tx.committed {
		return pgx.ErrTxClosed
	}
	tx.rolledBack = true
	return nil
}

type fakeBeginner struct {
	tx  *fakeTx
	err error
}

func (b *fakeBeginner) Begin(context.Context) (pgx.Tx, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.tx, nil
}

func TestInTx_Commits(t *testing.T) {
	db := &fakeBeginner{tx: &fakeTx{}}

	var got pgx.Tx
	err := inTx(context.Background(), db, zerolog.Nop(), func(tx pgx.Tx) error {
		got = tx
		return nil
	})
	require.NoError(t, err)
	assert.Same(t, db.tx, got)
	assert.True(t, db.tx.committed)
	assert.False(t, db.tx.rolledBack)
}

func TestInTx_RollsBackOnError(t *testing.T) {
	db := &fakeBeginner{tx: &fakeTx{}}

	err := inTx(context.Background(), db, zerolog.Nop(), func(pgx.Tx) error {
		return ErrSessionExpired
	})
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.False(t, db.tx.committed)
	assert.True(t, db.tx.rolledBack)
}

func TestInTx_CommitError(t *testing.T) {
	commitErr := errors.New("connection reset")
	db := &fakeBeginner{tx: &fakeTx{commitErr: commitErr}}

	err := inTx(context.Background(), db, zerolog.Nop(), func(pgx.Tx) error { return nil })
	assert.ErrorIs(t, err, commitErr)
	assert.True(t, db.tx.rolledBack)
}

func TestInTx_BeginError(t *testing.T) {
	beginErr := errors.New("pool closed")
	called := false

	err := inTx(context.Background(), &fakeBeginner{err: beginErr}, zerolog.Nop(), func(pgx.Tx) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, beginErr)
	assert.False(t, called)
}

func TestHasPgCode(t *testing.T) {
	unique := fmt.Errorf("insert user: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation})

	assert.True(t, hasPgCode(unique, pgerrcode.UniqueViolation))
	assert.False(t, hasPgCode(unique, pgerrcode.ForeignKeyViolation))
	assert.False(t, hasPgCode(errors.New("plain"), pgerrcode.UniqueViolation))
	assert.True(t, isInvalidID(&pgconn.PgError{Code: pgerrcode.InvalidTextRepresentation}))
}
