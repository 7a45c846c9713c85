package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/todoman/todoman/engine/infra/store"
)

func TestWithTx(t *testing.T) {
	t.Run("Should commit when fn returns nil", func(t *testing.T) {
		mockPool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockPool.Close()
		mockPool.ExpectBegin()
		mockPool.ExpectExec("UPDATE todos").WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mockPool.ExpectCommit()
		err = store.WithTx(context.Background(), mockPool, func(tx pgx.Tx) error {
			_, execErr := tx.Exec(context.Background(), "UPDATE todos SET title = 'x'")
			return execErr
		})
		assert.NoError(t, err)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
	t.Run("Should roll back and propagate the error when fn fails", func(t *testing.T) {
		mockPool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockPool.Close()
		mockPool.ExpectBegin()
		mockPool.ExpectRollback()
		wantErr := errors.New("constraint violation")
		err = store.WithTx(context.Background(), mockPool, func(pgx.Tx) error {
			return wantErr
		})
		assert.ErrorIs(t, err, wantErr)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
	t.Run("Should roll back and re-panic when fn panics", func(t *testing.T) {
		mockPool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockPool.Close()
		mockPool.ExpectBegin()
		mockPool.ExpectRollback()
		assert.Panics(t, func() {
			_ = store.WithTx(context.Background(), mockPool, func(pgx.Tx) error {
				panic("boom")
			})
		})
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
	t.Run("Should fail when the transaction cannot begin", func(t *testing.T) {
		mockPool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockPool.Close()
		mockPool.ExpectBegin().WillReturnError(errors.New("no connection"))
		err = store.WithTx(context.Background(), mockPool, func(pgx.Tx) error {
			t.Fatal("fn must not run when begin fails")
			return nil
		})
		assert.Error(t, err)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
}
