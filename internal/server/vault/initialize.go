package vault

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophvault/internal/address"
	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/server/models"
	"github.com/dmitrijs2005/gophvault/internal/server/store"
)

type VaultInfo struct {
	Address        address.Address
	Ledger         models.VaultLedger
	Custody        address.Address
	CustodyBalance uint64
}

type UserInfo struct {
	Address address.Address
	Ledger  models.UserLedger
}

// InitializeVault creates the global ledger and the custody account. It
// succeeds exactly once; afterwards both addresses are occupied and every
// further call fails with common.ErrAlreadyInitialized.
func (p *Program) InitializeVault(ctx context.Context, tx store.Tx, signer, admin address.Address) (*VaultInfo, error) {
	if signer != admin {
		return nil, fmt.Errorf("initialize vault: %w", common.ErrorUnauthorized)
	}

	stateAddr, stateBump, err := p.deriver.Find(SeedVaultLedger)
	if err != nil {
		return nil, err
	}
	custody, custodyBump, err := p.deriver.Find(SeedCustody)
	if err != nil {
		return nil, err
	}

	ledger := models.VaultLedger{
		Admin:          admin,
		TotalDeposited: 0,
		StateBump:      stateBump,
		VaultBump:      custodyBump,
	}
	data, err := ledger.MarshalBinary()
	if err != nil {
		return nil, err
	}

	if err := tx.CreateAccount(ctx, &models.Account{Address: stateAddr, Owner: p.ProgramID(), Data: data}); err != nil {
		return nil, fmt.Errorf("vault ledger %s: %w", stateAddr, err)
	}
	if err := tx.CreateAccount(ctx, models.NewSystemAccount(custody)); err != nil {
		return nil, fmt.Errorf("custody %s: %w", custody, err)
	}

	return &VaultInfo{Address: stateAddr, Ledger: ledger, Custody: custody}, nil
}

// InitializeUser creates the ledger bound to depositor.
func (p *Program) InitializeUser(ctx context.Context, tx store.Tx, signer, depositor address.Address) (*UserInfo, error) {
	if signer != depositor {
		return nil, fmt.Errorf("initialize user: %w", common.ErrorUnauthorized)
	}

	addr, bump, err := p.deriver.Find(SeedUserLedger, depositor[:])
	if err != nil {
		return nil, err
	}

	ledger := models.UserLedger{Owner: depositor, Deposited: 0, Bump: bump}
	data, err := ledger.MarshalBinary()
	if err != nil {
		return nil, err
	}
	if err := tx.CreateAccount(ctx, &models.Account{Address: addr, Owner: p.ProgramID(), Data: data}); err != nil {
		return nil, fmt.Errorf("user ledger %s: %w", addr, err)
	}

	return &UserInfo{Address: addr, Ledger: ledger}, nil
}
