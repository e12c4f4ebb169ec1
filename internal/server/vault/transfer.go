package vault

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophvault/internal/address"
	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/mathx"
	"github.com/dmitrijs2005/gophvault/internal/server/models"
	"github.com/dmitrijs2005/gophvault/internal/server/store"
)

// Request names every account a deposit or withdraw touches. Signer is the
// authenticated caller and must equal Depositor.
type Request struct {
	Signer      address.Address
	Depositor   address.Address
	VaultLedger address.Address
	UserLedger  address.Address
	Custody     address.Address
	Amount      uint64
}

// ledgers is a validated view of the accounts named by a Request.
type ledgers struct {
	vault          *models.VaultLedger
	user           *models.UserLedger
	custodyBalance uint64
}

// validate performs the checks shared by deposit and withdraw. Accounts are
// read in a fixed order (vault ledger, custody, user ledger) so that row
// locking backends never deadlock against each other.
func (p *Program) validate(ctx context.Context, tx store.Tx, req Request) (*ledgers, error) {
	if req.Signer != req.Depositor {
		return nil, common.ErrorUnauthorized
	}
	if req.Amount == 0 {
		return nil, common.ErrInvalidAmount
	}

	v, err := p.loadVaultLedger(ctx, tx, req.VaultLedger)
	if err != nil {
		return nil, err
	}
	balance, err := p.custodyBalance(ctx, tx, req.Custody, v.VaultBump)
	if err != nil {
		return nil, err
	}
	u, err := p.loadUserLedger(ctx, tx, req.UserLedger, req.Depositor)
	if err != nil {
		return nil, err
	}
	return &ledgers{vault: v, user: u, custodyBalance: balance}, nil
}

// Deposit moves Amount from the depositor into custody and credits both
// ledgers. The transfer runs first so a ledger entry is never unbacked.
func (p *Program) Deposit(ctx context.Context, tx store.Tx, req Request) (*models.Receipt, error) {
	l, err := p.validate(ctx, tx, req)
	if err != nil {
		return nil, err
	}

	if err := p.system.Transfer(ctx, tx, req.Signer, req.Depositor, req.Custody, req.Amount); err != nil {
		return nil, err
	}

	if l.user.Deposited, err = mathx.CheckedAdd(l.user.Deposited, req.Amount); err != nil {
		return nil, fmt.Errorf("user deposited: %w", err)
	}
	if l.vault.TotalDeposited, err = mathx.CheckedAdd(l.vault.TotalDeposited, req.Amount); err != nil {
		return nil, fmt.Errorf("total deposited: %w", err)
	}

	return p.commit(ctx, tx, req, l, models.ReceiptDeposit)
}

// Withdraw pays Amount out of custody to the depositor. The claim is checked
// before the live custody balance, and both are checked before any movement.
func (p *Program) Withdraw(ctx context.Context, tx store.Tx, req Request) (*models.Receipt, error) {
	l, err := p.validate(ctx, tx, req)
	if err != nil {
		return nil, err
	}

	if l.user.Deposited < req.Amount {
		return nil, fmt.Errorf("%w: deposited %d, requested %d",
			common.ErrInsufficientDepositedFunds, l.user.Deposited, req.Amount)
	}
	if l.custodyBalance < req.Amount {
		return nil, fmt.Errorf("%w: custody holds %d, requested %d",
			common.ErrInsufficientVaultBalance, l.custodyBalance, req.Amount)
	}

	auth, err := p.deriver.Authority(l.vault.VaultBump, SeedCustody)
	if err != nil {
		return nil, err
	}
	if err := p.system.TransferWithAuthority(ctx, tx, auth, req.Depositor, req.Amount); err != nil {
		return nil, err
	}

	if l.user.Deposited, err = mathx.CheckedSub(l.user.Deposited, req.Amount); err != nil {
		return nil, fmt.Errorf("user deposited: %w", err)
	}
	if l.vault.TotalDeposited, err = mathx.CheckedSub(l.vault.TotalDeposited, req.Amount); err != nil {
		return nil, fmt.Errorf("total deposited: %w", err)
	}

	return p.commit(ctx, tx, req, l, models.ReceiptWithdraw)
}

func (p *Program) commit(ctx context.Context, tx store.Tx, req Request, l *ledgers, kind models.ReceiptKind) (*models.Receipt, error) {
	if err := p.storeLedger(ctx, tx, req.UserLedger, l.user); err != nil {
		return nil, err
	}
	if err := p.storeLedger(ctx, tx, req.VaultLedger, l.vault); err != nil {
		return nil, err
	}

	r := &models.Receipt{
		ID:                  p.newID(),
		Kind:                kind,
		Depositor:           req.Depositor,
		Amount:              req.Amount,
		UserDepositedAfter:  l.user.Deposited,
		TotalDepositedAfter: l.vault.TotalDeposited,
		CreatedAt:           p.now(),
	}
	if err := tx.AddReceipt(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}
