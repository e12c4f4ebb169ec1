package vault

import (
	"context"
	"encoding"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophvault/internal/address"
	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/server/models"
	"github.com/dmitrijs2005/gophvault/internal/server/store"
)

// loadProgramAccount reads addr and requires it to be owned by the program.
func (p *Program) loadProgramAccount(ctx context.Context, tx store.Tx, addr address.Address, what string) (*models.Account, error) {
	acc, err := tx.Account(ctx, addr)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("%s %s: %w", what, addr, common.ErrNotInitialized)
		}
		return nil, err
	}
	if !acc.IsOwnedBy(p.ProgramID()) {
		return nil, fmt.Errorf("%s %s: %w", what, addr, common.ErrInvalidAccountOwner)
	}
	return acc, nil
}

func (p *Program) loadVaultLedger(ctx context.Context, tx store.Tx, addr address.Address) (*models.VaultLedger, error) {
	acc, err := p.loadProgramAccount(ctx, tx, addr, "vault ledger")
	if err != nil {
		return nil, err
	}

	var v models.VaultLedger
	if err := v.UnmarshalBinary(acc.Data); err != nil {
		return nil, fmt.Errorf("vault ledger %s: %w", addr, err)
	}
	if err := p.deriver.Verify(addr, v.StateBump, SeedVaultLedger); err != nil {
		return nil, fmt.Errorf("vault ledger: %w", err)
	}
	return &v, nil
}

func (p *Program) loadUserLedger(ctx context.Context, tx store.Tx, addr, depositor address.Address) (*models.UserLedger, error) {
	acc, err := p.loadProgramAccount(ctx, tx, addr, "user ledger")
	if err != nil {
		return nil, err
	}

	var u models.UserLedger
	if err := u.UnmarshalBinary(acc.Data); err != nil {
		return nil, fmt.Errorf("user ledger %s: %w", addr, err)
	}
	if err := p.deriver.Verify(addr, u.Bump, SeedUserLedger, depositor[:]); err != nil {
		return nil, fmt.Errorf("user ledger: %w", err)
	}
	if u.Owner != depositor {
		return nil, fmt.Errorf("user ledger owner %s, depositor %s: %w", u.Owner, depositor, common.ErrAddressMismatch)
	}
	return &u, nil
}

// custodyBalance verifies addr against the stored bump and returns its live
// balance. A custody account that was never funded holds zero.
func (p *Program) custodyBalance(ctx context.Context, tx store.Tx, addr address.Address, bump uint8) (uint64, error) {
	if err := p.deriver.Verify(addr, bump, SeedCustody); err != nil {
		return 0, fmt.Errorf("custody: %w", err)
	}
	acc, err := tx.Account(ctx, addr)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return 0, nil
		}
		return 0, err
	}
	if !acc.IsSystemOwned() {
		return 0, fmt.Errorf("custody %s: %w", addr, common.ErrInvalidAccountOwner)
	}
	return acc.Lamports, nil
}

// storeLedger rewrites the data of a program-owned ledger account, keeping
// whatever lamports it holds.
func (p *Program) storeLedger(ctx context.Context, tx store.Tx, addr address.Address, ledger encoding.BinaryMarshaler) error {
	acc, err := p.loadProgramAccount(ctx, tx, addr, "ledger")
	if err != nil {
		return err
	}
	if acc.Data, err = ledger.MarshalBinary(); err != nil {
		return err
	}
	return tx.UpdateAccount(ctx, acc)
}
