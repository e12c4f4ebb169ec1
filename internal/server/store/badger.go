package store

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v2"
	"github.com/dmitrijs2005/gophvault/internal/address"
	"github.com/dmitrijs2005/gophvault/internal/codec"
	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/logging"
	"github.com/dmitrijs2005/gophvault/internal/server/models"
)

// Key layout:
//
//	a/<address 32>                                  -> CBOR Account
//	r/<depositor 32><created_at unix nano 8><seq 8> -> CBOR Receipt
//	s/receipt                                       -> receipt sequence
//
// seq orders receipts that share a timestamp by insertion.
var (
	accountPrefix = []byte("a/")
	receiptPrefix = []byte("r/")
	receiptSeqKey = []byte("s/receipt")
)

const (
	defaultConflictRetries = 8
	receiptSeqBandwidth    = 128
)

// BadgerStore persists accounts and receipts in an embedded badger database.
type BadgerStore struct {
	db      *badger.DB
	seq     *badger.Sequence
	retries int
	log     logging.Logger
}

// OpenBadger opens (or creates) a database under dir. An empty dir opens
// an in-memory database.
func OpenBadger(dir string, log logging.Logger) (*BadgerStore, error) {
	if log == nil {
		log = logging.Nop()
	}
	opts := badger.DefaultOptions(dir).
		WithSyncWrites(true).
		WithLogger(&badgerLogger{log: log})
	if dir == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}
	seq, err := db.GetSequence(receiptSeqKey, receiptSeqBandwidth)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to open receipt sequence: %w", err)
	}
	return &BadgerStore{db: db, seq: seq, retries: defaultConflictRetries, log: log}, nil
}

func (s *BadgerStore) Update(ctx context.Context, fn TxFunc) error {
	var err error
	for attempt := 0; attempt < s.retries; attempt++ {
		err = s.db.Update(func(txn *badger.Txn) error {
			return fn(ctx, &badgerTx{txn: txn, seq: s.seq})
		})
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
		s.log.Debug(ctx, "badger transaction conflict, retrying", "attempt", attempt+1)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
	}
	return fmt.Errorf("store: giving up after %d conflicts: %w", s.retries, err)
}

func (s *BadgerStore) View(ctx context.Context, fn TxFunc) error {
	return s.db.View(func(txn *badger.Txn) error {
		return fn(ctx, &badgerTx{txn: txn, readOnly: true})
	})
}

func (s *BadgerStore) Close() error {
	if err := s.seq.Release(); err != nil {
		_ = s.db.Close()
		return fmt.Errorf("release receipt sequence: %w", err)
	}
	return s.db.Close()
}

type badgerTx struct {
	txn      *badger.Txn
	seq      *badger.Sequence
	readOnly bool
}

func accountKey(addr address.Address) []byte {
	k := make([]byte, 0, len(accountPrefix)+address.Size)
	k = append(k, accountPrefix...)
	return append(k, addr[:]...)
}

func receiptKey(r *models.Receipt, seq uint64) []byte {
	k := make([]byte, 0, len(receiptPrefix)+address.Size+16)
	k = append(k, receiptPrefix...)
	k = append(k, r.Depositor[:]...)
	k = binary.BigEndian.AppendUint64(k, uint64(r.CreatedAt.UnixNano()))
	return binary.BigEndian.AppendUint64(k, seq)
}

func (t *badgerTx) Account(_ context.Context, addr address.Address) (*models.Account, error) {
	item, err := t.txn.Get(accountKey(addr))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("badger get: %w", err)
	}

	var acc models.Account
	if err := item.Value(func(val []byte) error {
		return codec.Unmarshal(val, &acc)
	}); err != nil {
		return nil, fmt.Errorf("decode account %s: %w", addr, err)
	}
	return &acc, nil
}

func (t *badgerTx) CreateAccount(ctx context.Context, acc *models.Account) error {
	if t.readOnly {
		return ErrReadOnly
	}
	_, err := t.Account(ctx, acc.Address)
	switch {
	case err == nil:
		return common.ErrAlreadyInitialized
	case !errors.Is(err, common.ErrorNotFound):
		return err
	}
	return t.put(acc)
}

func (t *badgerTx) UpdateAccount(_ context.Context, acc *models.Account) error {
	if t.readOnly {
		return ErrReadOnly
	}
	return t.put(acc)
}

func (t *badgerTx) put(acc *models.Account) error {
	val, err := codec.Marshal(acc)
	if err != nil {
		return fmt.Errorf("encode account: %w", err)
	}
	if err := t.txn.Set(accountKey(acc.Address), val); err != nil {
		return fmt.Errorf("badger set: %w", err)
	}
	return nil
}

func (t *badgerTx) AccountsByOwner(_ context.Context, owner address.Address) ([]*models.Account, error) {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = accountPrefix

	it := t.txn.NewIterator(opts)
	defer it.Close()

	var result []*models.Account
	for it.Seek(accountPrefix); it.ValidForPrefix(accountPrefix); it.Next() {
		var acc models.Account
		if err := it.Item().Value(func(val []byte) error {
			return codec.Unmarshal(val, &acc)
		}); err != nil {
			return nil, fmt.Errorf("decode account: %w", err)
		}
		if acc.Owner == owner {
			result = append(result, &acc)
		}
	}
	return result, nil
}

func (t *badgerTx) AddReceipt(_ context.Context, r *models.Receipt) error {
	if t.readOnly {
		return ErrReadOnly
	}
	val, err := codec.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode receipt: %w", err)
	}
	n, err := t.seq.Next()
	if err != nil {
		return fmt.Errorf("receipt sequence: %w", err)
	}
	if err := t.txn.Set(receiptKey(r, n), val); err != nil {
		return fmt.Errorf("badger set: %w", err)
	}
	return nil
}

func (t *badgerTx) Receipts(_ context.Context, depositor address.Address, limit int) ([]*models.Receipt, error) {
	prefix := append(append([]byte(nil), receiptPrefix...), depositor[:]...)

	opts := badger.DefaultIteratorOptions
	opts.Reverse = true
	opts.Prefix = prefix

	it := t.txn.NewIterator(opts)
	defer it.Close()

	seek := append(append([]byte(nil), prefix...), 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF)

	var result []*models.Receipt
	for it.Seek(seek); it.ValidForPrefix(prefix); it.Next() {
		var r models.Receipt
		if err := it.Item().Value(func(val []byte) error {
			return codec.Unmarshal(val, &r)
		}); err != nil {
			return nil, fmt.Errorf("decode receipt: %w", err)
		}
		result = append(result, &r)
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result, nil
}

// badgerLogger routes badger's printf-style logging into logging.Logger.
type badgerLogger struct {
	log logging.Logger
}

func (l *badgerLogger) Errorf(format string, args ...any) {
	l.log.Error(context.Background(), fmt.Sprintf(format, args...), "component", "badger")
}

func (l *badgerLogger) Warningf(format string, args ...any) {
	l.log.Warn(context.Background(), fmt.Sprintf(format, args...), "component", "badger")
}

func (l *badgerLogger) Infof(format string, args ...any) {
	l.log.Debug(context.Background(), fmt.Sprintf(format, args...), "component", "badger")
}

func (l *badgerLogger) Debugf(format string, args ...any) {
	l.log.Debug(context.Background(), fmt.Sprintf(format, args...), "component", "badger")
}

