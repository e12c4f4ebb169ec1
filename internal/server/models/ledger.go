package models

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/dmitrijs2005/gophvault/internal/address"
	"github.com/dmitrijs2005/gophvault/internal/common"
)

const (
	DiscriminatorSize = 8

	// VaultLedgerSize is discriminator + admin + total_deposited + two bumps.
	VaultLedgerSize = DiscriminatorSize + address.Size + 8 + 1 + 1
	// UserLedgerSize is discriminator + owner + deposited + bump.
	UserLedgerSize = DiscriminatorSize + address.Size + 8 + 1
)

var (
	VaultLedgerDiscriminator = accountDiscriminator("VaultState")
	UserLedgerDiscriminator  = accountDiscriminator("UserState")
)

func accountDiscriminator(name string) [DiscriminatorSize]byte {
	sum := sha256.Sum256([]byte("account:" + name))
	var d [DiscriminatorSize]byte
	copy(d[:], sum[:DiscriminatorSize])
	return d
}

// VaultLedger is the singleton record of outstanding deposits.
type VaultLedger struct {
	Admin          address.Address
	TotalDeposited uint64
	StateBump      uint8
	VaultBump      uint8
}

func (v *VaultLedger) MarshalBinary() ([]byte, error) {
	buf := make([]byte, VaultLedgerSize)
	copy(buf, VaultLedgerDiscriminator[:])
	off := DiscriminatorSize
	copy(buf[off:], v.Admin[:])
	off += address.Size
	binary.LittleEndian.PutUint64(buf[off:], v.TotalDeposited)
	off += 8
	buf[off] = v.StateBump
	buf[off+1] = v.VaultBump
	return buf, nil
}

func (v *VaultLedger) UnmarshalBinary(data []byte) error {
	if err := checkDiscriminator(data, VaultLedgerDiscriminator, VaultLedgerSize); err != nil {
		return err
	}
	off := DiscriminatorSize
	copy(v.Admin[:], data[off:off+address.Size])
	off += address.Size
	v.TotalDeposited = binary.LittleEndian.Uint64(data[off:])
	off += 8
	v.StateBump = data[off]
	v.VaultBump = data[off+1]
	return nil
}

// UserLedger records how much one depositor may withdraw.
type UserLedger struct {
	Owner     address.Address
	Deposited uint64
	Bump      uint8
}

func (u *UserLedger) MarshalBinary() ([]byte, error) {
	buf := make([]byte, UserLedgerSize)
	copy(buf, UserLedgerDiscriminator[:])
	off := DiscriminatorSize
	copy(buf[off:], u.Owner[:])
	off += address.Size
	binary.LittleEndian.PutUint64(buf[off:], u.Deposited)
	off += 8
	buf[off] = u.Bump
	return buf, nil
}

func (u *UserLedger) UnmarshalBinary(data []byte) error {
	if err := checkDiscriminator(data, UserLedgerDiscriminator, UserLedgerSize); err != nil {
		return err
	}
	off := DiscriminatorSize
	copy(u.Owner[:], data[off:off+address.Size])
	off += address.Size
	u.Deposited = binary.LittleEndian.Uint64(data[off:])
	off += 8
	u.Bump = data[off]
	return nil
}

func checkDiscriminator(data []byte, want [DiscriminatorSize]byte, size int) error {
	if len(data) < DiscriminatorSize {
		return common.ErrAccountDiscriminatorMismatch
	}
	if [DiscriminatorSize]byte(data[:DiscriminatorSize]) != want {
		return common.ErrAccountDiscriminatorMismatch
	}
	if len(data) < size {
		return fmt.Errorf("%w: have %d bytes, need %d", common.ErrAccountDidNotDeserialize, len(data), size)
	}
	return nil
}
