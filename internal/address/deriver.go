package address

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophvault/internal/common"
	lru "github.com/hashicorp/golang-lru"
)

// DefaultCacheSize bounds the number of cached derivations.
const DefaultCacheSize = 4096

type derived struct {
	addr Address
	bump uint8
}

// Deriver derives addresses for one program and remembers the result of
// bump searches, which cost up to 256 hashes each.
type Deriver struct {
	programID Address
	cache     *lru.Cache
}

// NewDeriver returns a Deriver bound to programID. A non-positive cacheSize
// selects DefaultCacheSize.
func NewDeriver(programID Address, cacheSize int) (*Deriver, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	c, err := lru.New(cacheSize)
	if err != nil {
		return nil, fmt.Errorf("derivation cache: %w", err)
	}
	return &Deriver{programID: programID, cache: c}, nil
}

func (d *Deriver) ProgramID() Address {
	return d.programID
}

// Find returns the canonical address and bump for seeds.
func (d *Deriver) Find(seeds ...[]byte) (Address, uint8, error) {
	key := cacheKey(seeds)
	if v, ok := d.cache.Get(key); ok {
		r := v.(derived)
		return r.addr, r.bump, nil
	}

	addr, bump, err := FindProgramAddress(d.programID, seeds...)
	if err != nil {
		return Address{}, 0, err
	}
	d.cache.Add(key, derived{addr: addr, bump: bump})
	return addr, bump, nil
}

// Verify re-derives the address from a persisted bump and checks that it
// equals addr. The bump is never searched again.
func (d *Deriver) Verify(addr Address, bump uint8, seeds ...[]byte) error {
	want, err := CreateProgramAddress(d.programID, bump, seeds...)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrAddressMismatch, err)
	}
	if want != addr {
		return fmt.Errorf("%w: expected %s, got %s", common.ErrAddressMismatch, want, addr)
	}
	return nil
}

// Authority returns the signing capability for the derived address.
func (d *Deriver) Authority(bump uint8, seeds ...[]byte) (Authority, error) {
	return NewAuthority(d.programID, bump, seeds...)
}

// cacheKey length-prefixes every seed so that distinct seed lists never
// share a key.
func cacheKey(seeds [][]byte) string {
	var sb strings.Builder
	for _, s := range seeds {
		sb.WriteByte(byte(len(s)))
		sb.Write(s)
	}
	return sb.String()
}
