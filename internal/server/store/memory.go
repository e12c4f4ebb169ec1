package store

import (
	"bytes"
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/dmitrijs2005/gophvault/internal/address"
	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/server/models"
)

// MemoryStore keeps everything in process. Writers are serialized; readers
// run concurrently with each other.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[address.Address]*models.Account
	receipts []*models.Receipt
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{accounts: make(map[address.Address]*models.Account)}
}

func (s *MemoryStore) Update(ctx context.Context, fn TxFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{store: s, overlay: make(map[address.Address]*models.Account)}
	if err := fn(ctx, tx); err != nil {
		return err
	}

	for addr, acc := range tx.overlay {
		s.accounts[addr] = acc
	}
	s.receipts = append(s.receipts, tx.receipts...)
	return nil
}

func (s *MemoryStore) View(ctx context.Context, fn TxFunc) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(ctx, &memTx{store: s, readOnly: true})
}

func (s *MemoryStore) Close() error {
	return nil
}

// memTx buffers writes in an overlay that is merged only on commit.
type memTx struct {
	store    *MemoryStore
	overlay  map[address.Address]*models.Account
	receipts []*models.Receipt
	readOnly bool
}

func (t *memTx) lookup(addr address.Address) (*models.Account, bool) {
	if acc, ok := t.overlay[addr]; ok {
		return acc, true
	}
	acc, ok := t.store.accounts[addr]
	return acc, ok
}

func (t *memTx) Account(_ context.Context, addr address.Address) (*models.Account, error) {
	acc, ok := t.lookup(addr)
	if !ok {
		return nil, common.ErrorNotFound
	}
	return acc.Clone(), nil
}

func (t *memTx) CreateAccount(_ context.Context, acc *models.Account) error {
	if t.readOnly {
		return ErrReadOnly
	}
	if _, ok := t.lookup(acc.Address); ok {
		return common.ErrAlreadyInitialized
	}
	t.overlay[acc.Address] = acc.Clone()
	return nil
}

func (t *memTx) UpdateAccount(_ context.Context, acc *models.Account) error {
	if t.readOnly {
		return ErrReadOnly
	}
	t.overlay[acc.Address] = acc.Clone()
	return nil
}

func (t *memTx) AccountsByOwner(_ context.Context, owner address.Address) ([]*models.Account, error) {
	seen := make(map[address.Address]struct{})
	var result []*models.Account

	for addr, acc := range t.overlay {
		seen[addr] = struct{}{}
		if acc.Owner == owner {
			result = append(result, acc.Clone())
		}
	}
	for addr, acc := range t.store.accounts {
		if _, ok := seen[addr]; ok {
			continue
		}
		if acc.Owner == owner {
			result = append(result, acc.Clone())
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return bytes.Compare(result[i].Address[:], result[j].Address[:]) < 0
	})
	return result, nil
}

func (t *memTx) AddReceipt(_ context.Context, r *models.Receipt) error {
	if t.readOnly {
		return ErrReadOnly
	}
	rc := *r
	t.receipts = append(t.receipts, &rc)
	return nil
}

func (t *memTx) Receipts(_ context.Context, depositor address.Address, limit int) ([]*models.Receipt, error) {
	all := slices.Concat(t.store.receipts, t.receipts)

	var result []*models.Receipt
	for i := len(all) - 1; i >= 0; i-- {
		if all[i].Depositor != depositor {
			continue
		}
		rc := *all[i]
		result = append(result, &rc)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
