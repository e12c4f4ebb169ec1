package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/server/models"
	"github.com/dmitrijs2005/gophvault/internal/server/repositories/repomanager"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	selectForUpdateQ = `(?s)^SELECT\s+address,.*FROM\s+accounts\s+WHERE\s+address\s*=\s*\$1\s+FOR\s+UPDATE\s*$`
	selectPlainQ     = `(?s)^SELECT\s+address,.*FROM\s+accounts\s+WHERE\s+address\s*=\s*\$1\s*$`
	upsertAccountQ   = `(?s)^INSERT\s+INTO\s+accounts.*DO\s+UPDATE.*$`
)

func newPostgresStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresStore(db, repomanager.NewPostgresRepositoryManager()), mock
}

func accountRow(lamports string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"address", "owner", "lamports", "data"}).
		AddRow(addr(1).Bytes(), addr(0).Bytes(), lamports, []byte{})
}

func TestPostgresStore_UpdateLocksAndCommits(t *testing.T) {
	s, mock := newPostgresStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(selectForUpdateQ).WithArgs(addr(1).Bytes()).WillReturnRows(accountRow("10"))
	mock.ExpectExec(upsertAccountQ).
		WithArgs(addr(1).Bytes(), addr(0).Bytes(), "11", []byte{}).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.Update(context.Background(), func(ctx context.Context, tx Tx) error {
		acc, err := tx.Account(ctx, addr(1))
		if err != nil {
			return err
		}
		acc.Lamports++
		return tx.UpdateAccount(ctx, acc)
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_UpdateRollsBackOnError(t *testing.T) {
	s, mock := newPostgresStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(selectForUpdateQ).WithArgs(addr(1).Bytes()).WillReturnRows(accountRow("10"))
	mock.ExpectRollback()

	err := s.Update(context.Background(), func(ctx context.Context, tx Tx) error {
		if _, err := tx.Account(ctx, addr(1)); err != nil {
			return err
		}
		return common.ErrInsufficientVaultBalance
	})
	require.ErrorIs(t, err, common.ErrInsufficientVaultBalance)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_RetriesSerializationFailure(t *testing.T) {
	s, mock := newPostgresStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(selectForUpdateQ).WillReturnError(&pgconn.PgError{Code: "40001", Message: "could not serialize access"})
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectQuery(selectForUpdateQ).WillReturnRows(accountRow("3"))
	mock.ExpectCommit()

	calls := 0
	var seen uint64
	err := s.Update(context.Background(), func(ctx context.Context, tx Tx) error {
		calls++
		acc, err := tx.Account(ctx, addr(1))
		if err != nil {
			return err
		}
		seen = acc.Lamports
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, uint64(3), seen)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_ViewDoesNotLock(t *testing.T) {
	s, mock := newPostgresStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(selectPlainQ).WithArgs(addr(1).Bytes()).WillReturnRows(accountRow("8"))
	mock.ExpectRollback()

	err := s.View(context.Background(), func(ctx context.Context, tx Tx) error {
		acc, err := tx.Account(ctx, addr(1))
		if err != nil {
			return err
		}
		assert.Equal(t, uint64(8), acc.Lamports)
		return tx.AddReceipt(ctx, &models.Receipt{})
	})
	require.ErrorIs(t, err, ErrReadOnly)
}

func TestIsSerializationFailure(t *testing.T) {
	assert.True(t, isSerializationFailure(&pgconn.PgError{Code: "40001"}))
	assert.True(t, isSerializationFailure(&pgconn.PgError{Code: "40P01"}))
	assert.False(t, isSerializationFailure(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isSerializationFailure(errors.New("plain")))
}
