// Package address implements 32-byte account addresses and the program
// derived address scheme used to give the vault program sole authority over
// its custody and ledger accounts.
package address

import (
	"fmt"

	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/mr-tron/base58"
)

// Size is the byte length of an address.
const Size = 32

// Address identifies an account. For depositors it is an ed25519 public key;
// for program accounts it is a derived, off-curve value.
type Address [Size]byte

// SystemProgramID owns every plain native-balance account.
var SystemProgramID = Address{}

// Parse decodes a base58 address.
func Parse(s string) (Address, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %v", common.ErrInvalidAddress, err)
	}
	return FromBytes(b)
}

// MustParse is Parse for package-level constants; it panics on bad input.
func MustParse(s string) Address {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// FromBytes copies a 32-byte slice into an Address.
func FromBytes(b []byte) (Address, error) {
	var a Address
	if len(b) != Size {
		return a, fmt.Errorf("%w: expected %d bytes, got %d", common.ErrInvalidAddress, Size, len(b))
	}
	copy(a[:], b)
	return a, nil
}

func (a Address) String() string {
	return base58.Encode(a[:])
}

// Bytes returns a copy of the address bytes.
func (a Address) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, a[:])
	return b
}

func (a Address) IsZero() bool {
	return a == Address{}
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
