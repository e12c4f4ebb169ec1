// Package system models the host's native-balance transfer primitive.
//
// Lamports leave an account only when the transfer is authorized by the
// account's own signature, or, for derived addresses, by an
// address.Authority rebuilt from the persisted bump. Every failure is
// reported wrapped in common.ErrTransferFailed together with its cause.
package system

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophvault/internal/address"
	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/mathx"
	"github.com/dmitrijs2005/gophvault/internal/server/models"
	"github.com/dmitrijs2005/gophvault/internal/server/store"
)

var (
	ErrInsufficientFunds        = errors.New("insufficient lamports")
	ErrMissingRequiredSignature = errors.New("missing required signature")
	ErrFromMustNotCarryData     = errors.New("from must not carry data")
	ErrFromNotSystemOwned       = errors.New("from is not owned by the system program")
	ErrInvalidAuthority         = errors.New("invalid authority")
	ErrAirdropDisabled          = common.ErrAirdropDisabled
)

type Program struct {
	allowAirdrop bool
}

func New(allowAirdrop bool) *Program {
	return &Program{allowAirdrop: allowAirdrop}
}

func failed(cause error) error {
	return fmt.Errorf("%w: %w", common.ErrTransferFailed, cause)
}

// Transfer moves lamports from one system account to another. signer must
// be from.
func (p *Program) Transfer(ctx context.Context, tx store.Tx, signer, from, to address.Address, lamports uint64) error {
	if signer != from {
		return failed(ErrMissingRequiredSignature)
	}
	return p.move(ctx, tx, from, to, lamports)
}

// TransferWithAuthority moves lamports out of the derived address the
// authority stands for.
func (p *Program) TransferWithAuthority(ctx context.Context, tx store.Tx, auth address.Authority, to address.Address, lamports uint64) error {
	if !auth.Valid() {
		return failed(ErrInvalidAuthority)
	}
	return p.move(ctx, tx, auth.Address(), to, lamports)
}

func (p *Program) move(ctx context.Context, tx store.Tx, from, to address.Address, lamports uint64) error {
	src, err := loadOrEmpty(ctx, tx, from)
	if err != nil {
		return failed(err)
	}
	if !src.IsSystemOwned() {
		return failed(ErrFromNotSystemOwned)
	}
	if len(src.Data) != 0 {
		return failed(ErrFromMustNotCarryData)
	}
	if src.Lamports < lamports {
		return failed(fmt.Errorf("%w: need %d, have %d", ErrInsufficientFunds, lamports, src.Lamports))
	}

	src.Lamports -= lamports
	if err := tx.UpdateAccount(ctx, src); err != nil {
		return failed(err)
	}

	dst, err := loadOrEmpty(ctx, tx, to)
	if err != nil {
		return failed(err)
	}
	if dst.Lamports, err = mathx.CheckedAdd(dst.Lamports, lamports); err != nil {
		return failed(err)
	}
	if err := tx.UpdateAccount(ctx, dst); err != nil {
		return failed(err)
	}
	return nil
}

// Airdrop mints lamports into to. It stands in for a development faucet and
// only works when enabled.
func (p *Program) Airdrop(ctx context.Context, tx store.Tx, to address.Address, lamports uint64) (uint64, error) {
	if !p.allowAirdrop {
		return 0, ErrAirdropDisabled
	}
	if lamports == 0 {
		return 0, common.ErrInvalidAmount
	}

	dst, err := loadOrEmpty(ctx, tx, to)
	if err != nil {
		return 0, err
	}
	if dst.Lamports, err = mathx.CheckedAdd(dst.Lamports, lamports); err != nil {
		return 0, err
	}
	if err := tx.UpdateAccount(ctx, dst); err != nil {
		return 0, err
	}
	return dst.Lamports, nil
}

// Balance returns the native balance of addr; unknown accounts hold zero.
func (p *Program) Balance(ctx context.Context, tx store.Tx, addr address.Address) (uint64, error) {
	acc, err := tx.Account(ctx, addr)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return acc.Lamports, nil
}

func loadOrEmpty(ctx context.Context, tx store.Tx, addr address.Address) (*models.Account, error) {
	acc, err := tx.Account(ctx, addr)
	if errors.Is(err, common.ErrorNotFound) {
		return models.NewSystemAccount(addr), nil
	}
	return acc, err
}
