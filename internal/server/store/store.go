// Package store holds the keyed account store and its unit of work.
//
// Every program operation runs inside exactly one Update call: writes made
// through the Tx become visible only if the callback returns nil, otherwise
// the store is left exactly as it was. Three backends are provided: an
// in-process map guarded by a writer mutex, badger, and postgres.
package store

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophvault/internal/address"
	"github.com/dmitrijs2005/gophvault/internal/server/models"
)

// ErrReadOnly is returned by write methods of a Tx opened with View.
var ErrReadOnly = errors.New("store: read-only transaction")

// Tx is a transactional view of the store.
type Tx interface {
	// Account returns a copy of the account or common.ErrorNotFound.
	Account(ctx context.Context, addr address.Address) (*models.Account, error)
	// CreateAccount fails with common.ErrAlreadyInitialized if addr is taken.
	CreateAccount(ctx context.Context, acc *models.Account) error
	// UpdateAccount writes acc, creating it when absent.
	UpdateAccount(ctx context.Context, acc *models.Account) error
	// AccountsByOwner lists accounts owned by owner ordered by address.
	AccountsByOwner(ctx context.Context, owner address.Address) ([]*models.Account, error)

	AddReceipt(ctx context.Context, r *models.Receipt) error
	// Receipts returns newest receipts first; limit <= 0 means all.
	Receipts(ctx context.Context, depositor address.Address, limit int) ([]*models.Receipt, error)
}

type TxFunc func(ctx context.Context, tx Tx) error

type Store interface {
	// Update runs fn in a read-write transaction. fn may be invoked more
	// than once when the backend detects a conflict, so it must not have
	// side effects outside the Tx.
	Update(ctx context.Context, fn TxFunc) error
	View(ctx context.Context, fn TxFunc) error
	Close() error
}

// Backend names accepted by configuration.
const (
	BackendMemory   = "memory"
	BackendBadger   = "badger"
	BackendPostgres = "postgres"
)
