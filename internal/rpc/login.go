package rpc

import (
	"crypto/ed25519"
	"strconv"
	"time"

	"github.com/dmitrijs2005/gophvault/internal/address"
)

const loginPrefix = "gophvault-login:"

// LoginMessage is the exact byte string a depositor signs to log in.
func LoginMessage(identity address.Address, unixSeconds int64) []byte {
	return []byte(loginPrefix + identity.String() + ":" + strconv.FormatInt(unixSeconds, 10))
}

// SignLogin produces a LoginRequest for the key's public identity.
func SignLogin(key ed25519.PrivateKey, now time.Time) *LoginRequest {
	req := &LoginRequest{Timestamp: now.Unix()}
	copy(req.Identity[:], key.Public().(ed25519.PublicKey))
	req.Signature = ed25519.Sign(key, LoginMessage(req.Identity, req.Timestamp))
	return req
}
