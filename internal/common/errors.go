// Package common defines shared constants and sentinel errors used across
// client and server layers of gophvault. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Auth errors (invalid, malformed or expired token / login proof).
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")
	ErrInvalidLogin   = errors.New("invalid login signature")
	ErrLoginExpired   = errors.New("login challenge outside allowed window")
	ErrInvalidAddress = errors.New("invalid address")

	// Vault accounting errors. These are caller-visible and never retried
	// without changed inputs.
	ErrInvalidAmount              = errors.New("amount must be greater than zero")
	ErrInsufficientDepositedFunds = errors.New("insufficient deposited funds")
	ErrInsufficientVaultBalance   = errors.New("vault has insufficient lamports")
	ErrMathOverflow               = errors.New("math overflow")

	// Structural errors from record and address validation.
	ErrAlreadyInitialized           = errors.New("account already initialized")
	ErrNotInitialized               = errors.New("account not initialized")
	ErrAddressMismatch              = errors.New("address does not match derivation")
	ErrInvalidAccountOwner          = errors.New("account owned by wrong program")
	ErrAccountDiscriminatorMismatch = errors.New("account discriminator mismatch")
	ErrAccountDidNotDeserialize     = errors.New("account data did not deserialize")

	// ErrTransferFailed wraps every rejection by the native transfer primitive.
	ErrTransferFailed = errors.New("transfer failed")

	ErrAirdropDisabled = errors.New("airdrop is disabled")
)
