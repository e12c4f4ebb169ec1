package address

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"go.dedis.ch/kyber/v3/group/edwards25519"
)

const (
	// MaxSeeds is the maximum number of seeds accepted by a derivation.
	MaxSeeds = 16
	// MaxSeedLen is the maximum length of a single seed.
	MaxSeedLen = 32

	pdaMarker = "ProgramDerivedAddress"
)

var (
	ErrMaxSeedLengthExceeded = errors.New("length of the seed is too long for address generation")
	ErrInvalidSeeds          = errors.New("provided seeds do not result in a valid address")
	ErrNoViableBump          = errors.New("unable to find a viable program address bump seed")
)

var curve = edwards25519.NewBlakeSHA256Ed25519()

// IsOnCurve reports whether b decodes to a valid ed25519 point. Such an
// address may have a private key and is never handed out as a derived one.
func IsOnCurve(b []byte) bool {
	p := curve.Point()
	return p.UnmarshalBinary(b) == nil
}

func checkSeeds(seeds [][]byte) error {
	if len(seeds) > MaxSeeds {
		return ErrMaxSeedLengthExceeded
	}
	for _, s := range seeds {
		if len(s) > MaxSeedLen {
			return ErrMaxSeedLengthExceeded
		}
	}
	return nil
}

// CreateProgramAddress derives the address for seeds and bump under
// programID. It fails with ErrInvalidSeeds when the digest lies on the curve.
func CreateProgramAddress(programID Address, bump uint8, seeds ...[]byte) (Address, error) {
	if err := checkSeeds(seeds); err != nil {
		return Address{}, err
	}
	if len(seeds)+1 > MaxSeeds {
		return Address{}, ErrMaxSeedLengthExceeded
	}

	h := sha256.New()
	for _, s := range seeds {
		h.Write(s)
	}
	h.Write([]byte{bump})
	h.Write(programID[:])
	h.Write([]byte(pdaMarker))

	var out Address
	copy(out[:], h.Sum(nil))

	if IsOnCurve(out[:]) {
		return Address{}, ErrInvalidSeeds
	}
	return out, nil
}

// createAddress is replaced in tests to force on-curve results.
var createAddress = CreateProgramAddress

// FindProgramAddress searches bumps from 255 down to 1 and returns the first
// off-curve address together with the bump that produced it. Bump 0 is never
// tried, as on the host chain.
func FindProgramAddress(programID Address, seeds ...[]byte) (Address, uint8, error) {
	if err := checkSeeds(seeds); err != nil {
		return Address{}, 0, err
	}
	for bump := 255; bump >= 1; bump-- {
		addr, err := createAddress(programID, uint8(bump), seeds...)
		if err == nil {
			return addr, uint8(bump), nil
		}
		if !errors.Is(err, ErrInvalidSeeds) {
			return Address{}, 0, fmt.Errorf("bump %d: %w", bump, err)
		}
	}
	return Address{}, 0, ErrNoViableBump
}
