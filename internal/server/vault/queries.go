package vault

import (
	"context"

	"github.com/dmitrijs2005/gophvault/internal/address"
	"github.com/dmitrijs2005/gophvault/internal/server/models"
	"github.com/dmitrijs2005/gophvault/internal/server/store"
)

func (p *Program) Vault(ctx context.Context, tx store.Tx) (*VaultInfo, error) {
	addr, _, err := p.deriver.Find(SeedVaultLedger)
	if err != nil {
		return nil, err
	}
	v, err := p.loadVaultLedger(ctx, tx, addr)
	if err != nil {
		return nil, err
	}
	custody, _, err := p.deriver.Find(SeedCustody)
	if err != nil {
		return nil, err
	}
	balance, err := p.custodyBalance(ctx, tx, custody, v.VaultBump)
	if err != nil {
		return nil, err
	}
	return &VaultInfo{Address: addr, Ledger: *v, Custody: custody, CustodyBalance: balance}, nil
}

func (p *Program) User(ctx context.Context, tx store.Tx, depositor address.Address) (*UserInfo, error) {
	addr, _, err := p.deriver.Find(SeedUserLedger, depositor[:])
	if err != nil {
		return nil, err
	}
	u, err := p.loadUserLedger(ctx, tx, addr, depositor)
	if err != nil {
		return nil, err
	}
	return &UserInfo{Address: addr, Ledger: *u}, nil
}

func (p *Program) Balance(ctx context.Context, tx store.Tx, addr address.Address) (uint64, error) {
	return p.system.Balance(ctx, tx, addr)
}

// Airdrop mints lamports to a system account. It fails with
// system.ErrAirdropDisabled unless the faucet was enabled.
func (p *Program) Airdrop(ctx context.Context, tx store.Tx, to address.Address, lamports uint64) (uint64, error) {
	return p.system.Airdrop(ctx, tx, to, lamports)
}

func (p *Program) Receipts(ctx context.Context, tx store.Tx, depositor address.Address, limit int) ([]*models.Receipt, error) {
	return tx.Receipts(ctx, depositor, limit)
}

// UserLedgers returns every program-owned account that decodes as a
// UserLedger. Other program accounts are skipped.
func (p *Program) UserLedgers(ctx context.Context, tx store.Tx) ([]*UserInfo, error) {
	accs, err := tx.AccountsByOwner(ctx, p.ProgramID())
	if err != nil {
		return nil, err
	}

	var result []*UserInfo
	for _, acc := range accs {
		var u models.UserLedger
		if err := u.UnmarshalBinary(acc.Data); err != nil {
			continue
		}
		result = append(result, &UserInfo{Address: acc.Address, Ledger: u})
	}
	return result, nil
}
