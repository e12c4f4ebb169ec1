package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophvault/internal/address"
	"github.com/dmitrijs2005/gophvault/internal/logging"
	"github.com/dmitrijs2005/gophvault/internal/mathx"
	"github.com/dmitrijs2005/gophvault/internal/server/metrics"
	"github.com/dmitrijs2005/gophvault/internal/server/models"
	"github.com/dmitrijs2005/gophvault/internal/server/store"
	"github.com/dmitrijs2005/gophvault/internal/server/vault"
)

// VaultService runs vault program operations against the store. Every
// operation is exactly one store transaction; errors are returned unchanged
// so callers can match them with errors.Is.
type VaultService struct {
	store   store.Store
	program *vault.Program
	metrics *metrics.Metrics
	log     logging.Logger
}

func NewVaultService(st store.Store, p *vault.Program, m *metrics.Metrics, l logging.Logger) *VaultService {
	return &VaultService{
		store:   st,
		program: p,
		metrics: m,
		log:     l.With("module", "vault_service"),
	}
}

// observe records the outcome of a mutating operation.
func (s *VaultService) observe(ctx context.Context, op string, start time.Time, err error, args ...any) {
	if s.metrics != nil {
		s.metrics.ObserveOperation(op, err, time.Since(start))
	}
	if err == nil {
		s.log.Info(ctx, op, args...)
		return
	}

	args = append(args, "reason", metrics.Reason(err), "error", err)
	if metrics.Reason(err) == "error" {
		s.log.Error(ctx, op+" failed", args...)
		return
	}
	s.log.Warn(ctx, op+" rejected", args...)
}

func (s *VaultService) recordLedger(v *vault.VaultInfo) {
	if s.metrics != nil && v != nil {
		s.metrics.SetLedger(v.Ledger.TotalDeposited, v.CustodyBalance)
	}
}

func (s *VaultService) Addresses(depositor address.Address) (*vault.Addresses, error) {
	return s.program.Addresses(depositor)
}

func (s *VaultService) InitializeVault(ctx context.Context, signer, admin address.Address) (*vault.VaultInfo, error) {
	start := time.Now()

	var info *vault.VaultInfo
	err := s.store.Update(ctx, func(ctx context.Context, tx store.Tx) error {
		var err error
		info, err = s.program.InitializeVault(ctx, tx, signer, admin)
		return err
	})

	s.observe(ctx, "initialize_vault", start, err, "admin", admin.String())
	if err != nil {
		return nil, err
	}
	s.recordLedger(info)
	return info, nil
}

func (s *VaultService) InitializeUser(ctx context.Context, signer, depositor address.Address) (*vault.UserInfo, error) {
	start := time.Now()

	var info *vault.UserInfo
	err := s.store.Update(ctx, func(ctx context.Context, tx store.Tx) error {
		var err error
		info, err = s.program.InitializeUser(ctx, tx, signer, depositor)
		return err
	})

	s.observe(ctx, "initialize_user", start, err, "depositor", depositor.String())
	if err != nil {
		return nil, err
	}
	return info, nil
}

// Deposit applies a deposit and returns its receipt.
func (s *VaultService) Deposit(ctx context.Context, req vault.Request) (*models.Receipt, error) {
	return s.transfer(ctx, "deposit", "in", req, s.program.Deposit)
}

// Withdraw applies a withdrawal and returns its receipt.
func (s *VaultService) Withdraw(ctx context.Context, req vault.Request) (*models.Receipt, error) {
	return s.transfer(ctx, "withdraw", "out", req, s.program.Withdraw)
}

type transferFunc func(ctx context.Context, tx store.Tx, req vault.Request) (*models.Receipt, error)

func (s *VaultService) transfer(ctx context.Context, op, direction string, req vault.Request, fn transferFunc) (*models.Receipt, error) {
	start := time.Now()

	var (
		receipt *models.Receipt
		info    *vault.VaultInfo
	)
	err := s.store.Update(ctx, func(ctx context.Context, tx store.Tx) error {
		var err error
		if receipt, err = fn(ctx, tx, req); err != nil {
			return err
		}
		info, err = s.program.Vault(ctx, tx)
		return err
	})

	s.observe(ctx, op, start, err,
		"depositor", req.Depositor.String(),
		"amount", req.Amount,
		"sol", mathx.FormatLamports(req.Amount),
	)
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.AddLamports(direction, req.Amount)
	}
	s.recordLedger(info)
	return receipt, nil
}

// Airdrop credits lamports to a system account and returns the new balance.
func (s *VaultService) Airdrop(ctx context.Context, to address.Address, lamports uint64) (uint64, error) {
	start := time.Now()

	var balance uint64
	err := s.store.Update(ctx, func(ctx context.Context, tx store.Tx) error {
		var err error
		balance, err = s.program.Airdrop(ctx, tx, to, lamports)
		return err
	})

	s.observe(ctx, "airdrop", start, err, "to", to.String(), "amount", lamports)
	if err != nil {
		return 0, err
	}
	return balance, nil
}

func (s *VaultService) Vault(ctx context.Context) (*vault.VaultInfo, error) {
	var info *vault.VaultInfo
	err := s.store.View(ctx, func(ctx context.Context, tx store.Tx) error {
		var err error
		info, err = s.program.Vault(ctx, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.recordLedger(info)
	return info, nil
}

func (s *VaultService) User(ctx context.Context, depositor address.Address) (*vault.UserInfo, error) {
	var info *vault.UserInfo
	err := s.store.View(ctx, func(ctx context.Context, tx store.Tx) error {
		var err error
		info, err = s.program.User(ctx, tx, depositor)
		return err
	})
	if err != nil {
		return nil, err
	}
	return info, nil
}

func (s *VaultService) Balance(ctx context.Context, addr address.Address) (uint64, error) {
	var balance uint64
	err := s.store.View(ctx, func(ctx context.Context, tx store.Tx) error {
		var err error
		balance, err = s.program.Balance(ctx, tx, addr)
		return err
	})
	return balance, err
}

// Receipts lists depositor's receipts, newest first.
func (s *VaultService) Receipts(ctx context.Context, depositor address.Address, limit int) ([]*models.Receipt, error) {
	var out []*models.Receipt
	err := s.store.View(ctx, func(ctx context.Context, tx store.Tx) error {
		var err error
		out, err = s.program.Receipts(ctx, tx, depositor, limit)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
