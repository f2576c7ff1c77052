package trm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/SergeyBogomolovv/order-tracker/pkg/trm"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestManager_Do(t *testing.T) {
	t.Run("commit", func(t *testing.T) {
		db, mock := newDB(t)
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE orders").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		m := trm.NewManager(db)
		err := m.Do(context.Background(), func(ctx context.Context) error {
			require.NotNil(t, trm.ExtractTx(ctx))
			_, err := trm.Conn(ctx, db).ExecContext(ctx, "UPDATE orders SET note = ''")
			return err
		})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback on error", func(t *testing.T) {
		db, mock := newDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		cbErr := errors.New("boom")
		m := trm.NewManager(db)
		err := m.Do(context.Background(), func(ctx context.Context) error {
			return cbErr
		})

		assert.ErrorIs(t, err, cbErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nested call joins outer transaction", func(t *testing.T) {
		db, mock := newDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		m := trm.NewManager(db)
		err := m.Do(context.Background(), func(ctx context.Context) error {
			outer := trm.ExtractTx(ctx)
			return m.Do(ctx, func(ctx context.Context) error {
				assert.Same(t, outer, trm.ExtractTx(ctx))
				return nil
			})
		})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestConn_WithoutTx(t *testing.T) {
	db, _ := newDB(t)
	assert.Equal(t, trm.Querier(db), trm.Conn(context.Background(), db))
}
