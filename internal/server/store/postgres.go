package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/gophvault/internal/address"
	"github.com/dmitrijs2005/gophvault/internal/dbx"
	"github.com/dmitrijs2005/gophvault/internal/server/models"
	"github.com/dmitrijs2005/gophvault/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/gophvault/internal/server/repositories/receipts"
	"github.com/dmitrijs2005/gophvault/internal/server/repositories/repomanager"
	"github.com/jackc/pgx/v5/pgconn"
)

const defaultSerializationRetries = 5

// PostgresStore runs each unit of work as a serializable transaction.
// Rows read inside Update are locked with SELECT ... FOR UPDATE.
type PostgresStore struct {
	db      *sql.DB
	rm      repomanager.RepositoryManager
	retries int
}

func NewPostgresStore(db *sql.DB, rm repomanager.RepositoryManager) *PostgresStore {
	return &PostgresStore{db: db, rm: rm, retries: defaultSerializationRetries}
}

func (s *PostgresStore) Update(ctx context.Context, fn TxFunc) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}
	return dbx.WithTxRetry(ctx, s.db, opts, s.retries, isSerializationFailure,
		func(ctx context.Context, tx dbx.DBTX) error {
			return fn(ctx, s.newTx(tx, false))
		})
}

func (s *PostgresStore) View(ctx context.Context, fn TxFunc) error {
	opts := &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}
	return dbx.WithTx(ctx, s.db, opts, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, s.newTx(tx, true))
	})
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func (s *PostgresStore) newTx(tx dbx.DBTX, readOnly bool) *pgTx {
	return &pgTx{
		accounts: s.rm.Accounts(tx),
		receipts: s.rm.Receipts(tx),
		readOnly: readOnly,
	}
}

// isSerializationFailure reports SQLSTATE 40001 and deadlocks (40P01).
func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}

type pgTx struct {
	accounts accounts.Repository
	receipts receipts.Repository
	readOnly bool
}

func (t *pgTx) Account(ctx context.Context, addr address.Address) (*models.Account, error) {
	if t.readOnly {
		return t.accounts.Get(ctx, addr)
	}
	return t.accounts.GetForUpdate(ctx, addr)
}

func (t *pgTx) CreateAccount(ctx context.Context, acc *models.Account) error {
	if t.readOnly {
		return ErrReadOnly
	}
	return t.accounts.Create(ctx, acc)
}

func (t *pgTx) UpdateAccount(ctx context.Context, acc *models.Account) error {
	if t.readOnly {
		return ErrReadOnly
	}
	return t.accounts.Upsert(ctx, acc)
}

func (t *pgTx) AccountsByOwner(ctx context.Context, owner address.Address) ([]*models.Account, error) {
	return t.accounts.ListByOwner(ctx, owner)
}

func (t *pgTx) AddReceipt(ctx context.Context, r *models.Receipt) error {
	if t.readOnly {
		return ErrReadOnly
	}
	return t.receipts.Create(ctx, r)
}

func (t *pgTx) Receipts(ctx context.Context, depositor address.Address, limit int) ([]*models.Receipt, error) {
	return t.receipts.ListByDepositor(ctx, depositor, limit)
}
