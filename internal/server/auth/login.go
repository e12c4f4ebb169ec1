package auth

import (
	"crypto/ed25519"
	"time"

	"github.com/dmitrijs2005/gophvault/internal/address"
	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/rpc"
)

// VerifyLogin checks a login proof made with rpc.SignLogin and that its
// timestamp is within maxSkew of now in either direction.
func VerifyLogin(identity address.Address, unixSeconds int64, sig []byte, now time.Time, maxSkew time.Duration) error {
	if len(sig) != ed25519.SignatureSize {
		return common.ErrInvalidLogin
	}
	if !ed25519.Verify(ed25519.PublicKey(identity[:]), rpc.LoginMessage(identity, unixSeconds), sig) {
		return common.ErrInvalidLogin
	}

	// compare instants: a far-off timestamp saturates time.Duration
	ts := time.Unix(unixSeconds, 0)
	if ts.Before(now.Add(-maxSkew)) || ts.After(now.Add(maxSkew)) {
		return common.ErrLoginExpired
	}
	return nil
}
