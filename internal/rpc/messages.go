package rpc

import (
	"time"

	"github.com/dmitrijs2005/gophvault/internal/address"
)

type PingRequest struct{}

type PingResponse struct {
	Status string `cbor:"1,keyasint"`
}

// LoginRequest carries a signed login proof; see LoginMessage.
type LoginRequest struct {
	Identity  address.Address `cbor:"1,keyasint"`
	Timestamp int64           `cbor:"2,keyasint"`
	Signature []byte          `cbor:"3,keyasint"`
}

type LoginResponse struct {
	AccessToken string    `cbor:"1,keyasint"`
	ExpiresAt   time.Time `cbor:"2,keyasint"`
}

type AddressesRequest struct {
	Depositor address.Address `cbor:"1,keyasint"`
}

type AddressesResponse struct {
	ProgramID       address.Address `cbor:"1,keyasint"`
	VaultLedger     address.Address `cbor:"2,keyasint"`
	VaultLedgerBump uint8           `cbor:"3,keyasint"`
	Custody         address.Address `cbor:"4,keyasint"`
	CustodyBump     uint8           `cbor:"5,keyasint"`
	UserLedger      address.Address `cbor:"6,keyasint"`
	UserLedgerBump  uint8           `cbor:"7,keyasint"`
}

type InitializeVaultRequest struct {
	Signer address.Address `cbor:"1,keyasint"`
	Admin  address.Address `cbor:"2,keyasint"`
}

type InitializeUserRequest struct {
	Signer    address.Address `cbor:"1,keyasint"`
	Depositor address.Address `cbor:"2,keyasint"`
}

type GetVaultRequest struct{}

type VaultResponse struct {
	Address        address.Address `cbor:"1,keyasint"`
	Admin          address.Address `cbor:"2,keyasint"`
	TotalDeposited uint64          `cbor:"3,keyasint"`
	StateBump      uint8           `cbor:"4,keyasint"`
	VaultBump      uint8           `cbor:"5,keyasint"`
	Custody        address.Address `cbor:"6,keyasint"`
	CustodyBalance uint64          `cbor:"7,keyasint"`
}

type GetUserRequest struct {
	Depositor address.Address `cbor:"1,keyasint"`
}

type UserResponse struct {
	Address   address.Address `cbor:"1,keyasint"`
	Owner     address.Address `cbor:"2,keyasint"`
	Deposited uint64          `cbor:"3,keyasint"`
	Bump      uint8           `cbor:"4,keyasint"`
}

// TransferRequest is shared by Deposit and Withdraw. Every account is named
// explicitly and checked against its derivation on the server.
type TransferRequest struct {
	Signer      address.Address `cbor:"1,keyasint"`
	Depositor   address.Address `cbor:"2,keyasint"`
	VaultLedger address.Address `cbor:"3,keyasint"`
	UserLedger  address.Address `cbor:"4,keyasint"`
	Custody     address.Address `cbor:"5,keyasint"`
	Amount      uint64          `cbor:"6,keyasint"`
}

type Receipt struct {
	ID                  string          `cbor:"1,keyasint"`
	Kind                string          `cbor:"2,keyasint"`
	Depositor           address.Address `cbor:"3,keyasint"`
	Amount              uint64          `cbor:"4,keyasint"`
	UserDepositedAfter  uint64          `cbor:"5,keyasint"`
	TotalDepositedAfter uint64          `cbor:"6,keyasint"`
	CreatedAt           time.Time       `cbor:"7,keyasint"`
}

type GetBalanceRequest struct {
	Address address.Address `cbor:"1,keyasint"`
}

type GetBalanceResponse struct {
	Lamports uint64 `cbor:"1,keyasint"`
}

type ListReceiptsRequest struct {
	Depositor address.Address `cbor:"1,keyasint"`
	Limit     int32           `cbor:"2,keyasint"`
}

type ListReceiptsResponse struct {
	Receipts []*Receipt `cbor:"1,keyasint"`
}

type AirdropRequest struct {
	To       address.Address `cbor:"1,keyasint"`
	Lamports uint64          `cbor:"2,keyasint"`
}

type AirdropResponse struct {
	Balance uint64 `cbor:"1,keyasint"`
}
