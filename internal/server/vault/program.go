// Package vault implements the custodial fund vault: a single custody address
// derived from the program id pools native deposits, a global VaultLedger
// tracks the outstanding total and one UserLedger per depositor tracks each
// claim.
//
// All methods take a store.Tx and never commit on their own; callers run
// them inside store.Store.Update so that the custody transfer and both ledger
// writes are applied together or not at all.
package vault

import (
	"time"

	"github.com/dmitrijs2005/gophvault/internal/address"
	"github.com/dmitrijs2005/gophvault/internal/server/system"
	"github.com/google/uuid"
)

var (
	SeedVaultLedger = []byte("vault_state")
	SeedCustody     = []byte("vault")
	SeedUserLedger  = []byte("user_state")
)

type Program struct {
	deriver *address.Deriver
	system  *system.Program
	now     func() time.Time
	newID   func() string
}

type Option func(*Program)

// WithClock overrides the receipt timestamp source.
func WithClock(now func() time.Time) Option {
	return func(p *Program) { p.now = now }
}

// WithIDGenerator overrides receipt id generation.
func WithIDGenerator(gen func() string) Option {
	return func(p *Program) { p.newID = gen }
}

func New(deriver *address.Deriver, sys *system.Program, opts ...Option) *Program {
	p := &Program{
		deriver: deriver,
		system:  sys,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.NewString,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

func (p *Program) ProgramID() address.Address {
	return p.deriver.ProgramID()
}

// Addresses lists the canonical derived addresses for one depositor.
type Addresses struct {
	ProgramID       address.Address
	VaultLedger     address.Address
	VaultLedgerBump uint8
	Custody         address.Address
	CustodyBump     uint8
	UserLedger      address.Address
	UserLedgerBump  uint8
}

// Addresses derives every address a client must pass for depositor.
func (p *Program) Addresses(depositor address.Address) (*Addresses, error) {
	out := &Addresses{ProgramID: p.ProgramID()}
	var err error

	if out.VaultLedger, out.VaultLedgerBump, err = p.deriver.Find(SeedVaultLedger); err != nil {
		return nil, err
	}
	if out.Custody, out.CustodyBump, err = p.deriver.Find(SeedCustody); err != nil {
		return nil, err
	}
	if out.UserLedger, out.UserLedgerBump, err = p.deriver.Find(SeedUserLedger, depositor[:]); err != nil {
		return nil, err
	}
	return out, nil
}
