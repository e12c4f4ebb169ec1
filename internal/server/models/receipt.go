package models

import (
	"time"

	"github.com/dmitrijs2005/gophvault/internal/address"
)

type ReceiptKind string

const (
	ReceiptDeposit  ReceiptKind = "deposit"
	ReceiptWithdraw ReceiptKind = "withdraw"
)

// Receipt is an append-only trace of one applied deposit or withdraw.
type Receipt struct {
	ID                  string          `cbor:"1,keyasint"`
	Kind                ReceiptKind     `cbor:"2,keyasint"`
	Depositor           address.Address `cbor:"3,keyasint"`
	Amount              uint64          `cbor:"4,keyasint"`
	UserDepositedAfter  uint64          `cbor:"5,keyasint"`
	TotalDepositedAfter uint64          `cbor:"6,keyasint"`
	CreatedAt           time.Time       `cbor:"7,keyasint"`
}
