// Package models defines server-side data models persisted by the stores.
package models

import (
	"bytes"

	"github.com/dmitrijs2005/gophvault/internal/address"
)

// Account is a keyed record holding a native balance and opaque data.
// Only Owner may change Data; lamports move through the system program.
type Account struct {
	Address  address.Address `cbor:"1,keyasint"`
	Owner    address.Address `cbor:"2,keyasint"`
	Lamports uint64          `cbor:"3,keyasint"`
	Data     []byte          `cbor:"4,keyasint,omitempty"`
}

// NewSystemAccount returns an empty system-owned account at addr.
func NewSystemAccount(addr address.Address) *Account {
	return &Account{Address: addr, Owner: address.SystemProgramID}
}

func (a *Account) IsSystemOwned() bool {
	return a.Owner == address.SystemProgramID
}

func (a *Account) IsOwnedBy(program address.Address) bool {
	return a.Owner == program
}

// Clone returns a deep copy so callers can mutate it outside a transaction
// without aliasing the stored value.
func (a *Account) Clone() *Account {
	if a == nil {
		return nil
	}
	c := *a
	if a.Data != nil {
		c.Data = bytes.Clone(a.Data)
	}
	return &c
}
