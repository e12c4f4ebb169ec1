package address

import (
	"fmt"

	"github.com/dmitrijs2005/gophvault/internal/common"
)

// Authority is the capability to move funds out of a program derived
// address. It can only be built from the persisted bump; the zero value
// authorizes nothing.
type Authority struct {
	addr      Address
	programID Address
	valid     bool
}

// NewAuthority derives the address for seeds and bump under programID and
// returns the capability to sign for it.
func NewAuthority(programID Address, bump uint8, seeds ...[]byte) (Authority, error) {
	addr, err := CreateProgramAddress(programID, bump, seeds...)
	if err != nil {
		return Authority{}, fmt.Errorf("%w: %v", common.ErrAddressMismatch, err)
	}
	return Authority{addr: addr, programID: programID, valid: true}, nil
}

// Address is the account this authority signs for.
func (a Authority) Address() Address {
	return a.addr
}

// ProgramID is the program whose derivation produced the authority.
func (a Authority) ProgramID() Address {
	return a.programID
}

func (a Authority) Valid() bool {
	return a.valid
}
