// Package common contains shared constants and sentinel errors used across
// gophvault components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// LamportsPerSOL is the number of base units in one whole native coin.
const LamportsPerSOL = 1_000_000_000
