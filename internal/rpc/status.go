package rpc

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/gophvault/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// errorCodes lists every typed error that crosses the wire. Order matters
// on both sides: the first match wins.
var errorCodes = []struct {
	err  error
	code codes.Code
}{
	{common.ErrInvalidAmount, codes.InvalidArgument},
	{common.ErrAddressMismatch, codes.InvalidArgument},
	{common.ErrInvalidAccountOwner, codes.InvalidArgument},
	{common.ErrAccountDiscriminatorMismatch, codes.InvalidArgument},
	{common.ErrAccountDidNotDeserialize, codes.InvalidArgument},
	{common.ErrInvalidAddress, codes.InvalidArgument},
	{common.ErrInsufficientDepositedFunds, codes.FailedPrecondition},
	{common.ErrInsufficientVaultBalance, codes.FailedPrecondition},
	{common.ErrTransferFailed, codes.FailedPrecondition},
	{common.ErrAirdropDisabled, codes.FailedPrecondition},
	{common.ErrMathOverflow, codes.OutOfRange},
	{common.ErrAlreadyInitialized, codes.AlreadyExists},
	{common.ErrNotInitialized, codes.NotFound},
	{common.ErrorNotFound, codes.NotFound},
	{common.ErrorUnauthorized, codes.PermissionDenied},
	{common.ErrTokenExpired, codes.Unauthenticated},
	{common.ErrInvalidToken, codes.Unauthenticated},
	{common.ErrLoginExpired, codes.Unauthenticated},
	{common.ErrInvalidLogin, codes.Unauthenticated},
}

// ToStatus converts a service error into a gRPC status error. The message
// keeps the full error text so the client can recover the typed error.
// Unknown errors become codes.Internal without leaking their text.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	for _, e := range errorCodes {
		if errors.Is(err, e.err) {
			return status.Error(e.code, err.Error())
		}
	}
	return status.Error(codes.Internal, common.ErrorInternal.Error())
}

// typedError keeps the server's message while matching the sentinel with
// errors.Is.
type typedError struct {
	sentinel error
	msg      string
}

func (e *typedError) Error() string { return e.msg }
func (e *typedError) Unwrap() error { return e.sentinel }

// FromStatus converts a gRPC status error back into the typed error it was
// produced from. Errors that carry no recognizable sentinel are returned
// unchanged.
func FromStatus(err error) error {
	if typed, ok := Typed(err); ok {
		return typed
	}
	return err
}

// Typed is FromStatus that also reports whether a sentinel was recovered.
func Typed(err error) (error, bool) {
	st, ok := status.FromError(err)
	if !ok || st.Code() == codes.OK {
		return nil, false
	}
	msg := st.Message()
	for _, e := range errorCodes {
		if e.code == st.Code() && strings.Contains(msg, e.err.Error()) {
			return &typedError{sentinel: e.err, msg: msg}, true
		}
	}
	if st.Code() == codes.Internal {
		return &typedError{sentinel: common.ErrorInternal, msg: msg}, true
	}
	return nil, false
}
