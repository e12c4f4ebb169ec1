// Package audit checks the vault ledger invariants against live state.
//
// An audit never corrects anything. A diverged vault is reported, logged at
// error level and exported as a metric; repairing it is an operator task.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophvault/internal/logging"
	"github.com/dmitrijs2005/gophvault/internal/mathx"
	"github.com/dmitrijs2005/gophvault/internal/server/metrics"
	"github.com/dmitrijs2005/gophvault/internal/server/store"
	"github.com/dmitrijs2005/gophvault/internal/server/vault"
)

// Report is the outcome of one audit run.
type Report struct {
	RunAt          time.Time `json:"run_at"`
	ProgramID      string    `json:"program_id"`
	VaultLedger    string    `json:"vault_ledger"`
	Custody        string    `json:"custody"`
	TotalDeposited uint64    `json:"total_deposited"`
	SumDeposited   uint64    `json:"sum_deposited"`
	CustodyBalance uint64    `json:"custody_balance"`
	Users          int       `json:"users"`
	Consistent     bool      `json:"consistent"`
	Problems       []string  `json:"problems,omitempty"`
}

// Uploader stores a serialized report under key.
type Uploader interface {
	Upload(ctx context.Context, key string, body []byte) error
}

type Auditor struct {
	store    store.Store
	program  *vault.Program
	metrics  *metrics.Metrics
	uploader Uploader
	log      logging.Logger
	now      func() time.Time
}

type Option func(*Auditor)

// WithUploader exports every report after it is produced.
func WithUploader(u Uploader) Option {
	return func(a *Auditor) { a.uploader = u }
}

func WithClock(now func() time.Time) Option {
	return func(a *Auditor) { a.now = now }
}

// WithMetrics publishes audit outcomes and ledger gauges.
func WithMetrics(m *metrics.Metrics) Option {
	return func(a *Auditor) { a.metrics = m }
}

func NewAuditor(st store.Store, p *vault.Program, l logging.Logger, opts ...Option) *Auditor {
	a := &Auditor{
		store:   st,
		program: p,
		log:     l.With("module", "audit"),
		now:     func() time.Time { return time.Now().UTC() },
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Run reads the vault ledger, every user ledger and the custody balance in
// one read transaction and checks that the total equals the sum of claims
// and does not exceed custody.
func (a *Auditor) Run(ctx context.Context) (*Report, error) {
	r := &Report{RunAt: a.now(), ProgramID: a.program.ProgramID().String()}

	err := a.store.View(ctx, func(ctx context.Context, tx store.Tx) error {
		v, err := a.program.Vault(ctx, tx)
		if err != nil {
			return err
		}
		users, err := a.program.UserLedgers(ctx, tx)
		if err != nil {
			return err
		}

		r.VaultLedger = v.Address.String()
		r.Custody = v.Custody.String()
		r.TotalDeposited = v.Ledger.TotalDeposited
		r.CustodyBalance = v.CustodyBalance
		r.Users = len(users)

		claims := make([]uint64, 0, len(users))
		for _, u := range users {
			claims = append(claims, u.Ledger.Deposited)
		}
		sum, err := mathx.Sum(claims...)
		if err != nil {
			r.Problems = append(r.Problems, fmt.Sprintf("sum of user ledgers: %v", err))
		}
		r.SumDeposited = sum
		return nil
	})
	if err != nil {
		a.log.Error(ctx, "audit failed", "error", err)
		if a.metrics != nil {
			a.metrics.SetAudit(false, err)
		}
		return nil, fmt.Errorf("audit: %w", err)
	}

	if len(r.Problems) == 0 && r.TotalDeposited != r.SumDeposited {
		r.Problems = append(r.Problems, fmt.Sprintf("total_deposited %d != sum of user ledgers %d", r.TotalDeposited, r.SumDeposited))
	}
	if r.TotalDeposited > r.CustodyBalance {
		r.Problems = append(r.Problems, fmt.Sprintf("total_deposited %d exceeds custody balance %d", r.TotalDeposited, r.CustodyBalance))
	}
	r.Consistent = len(r.Problems) == 0

	if a.metrics != nil {
		a.metrics.SetAudit(r.Consistent, nil)
		a.metrics.SetLedger(r.TotalDeposited, r.CustodyBalance)
	}

	if r.Consistent {
		a.log.Info(ctx, "audit passed", "users", r.Users, "total_deposited", r.TotalDeposited, "custody_balance", r.CustodyBalance)
	} else {
		a.log.Error(ctx, "ledger diverged", "problems", r.Problems, "total_deposited", r.TotalDeposited,
			"sum_deposited", r.SumDeposited, "custody_balance", r.CustodyBalance)
	}

	if a.uploader != nil {
		if err := a.upload(ctx, r); err != nil {
			return r, err
		}
	}
	return r, nil
}

// ReportKey is the object key a report is stored under.
func ReportKey(r *Report) string {
	return fmt.Sprintf("audits/%04d/%02d/%02d/%s.json",
		r.RunAt.Year(), r.RunAt.Month(), r.RunAt.Day(), r.RunAt.Format("150405.000000000"))
}

func (a *Auditor) upload(ctx context.Context, r *Report) error {
	body, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	key := ReportKey(r)
	if err := a.uploader.Upload(ctx, key, body); err != nil {
		a.log.Error(ctx, "report upload failed", "key", key, "error", err)
		return fmt.Errorf("upload report: %w", err)
	}
	a.log.Debug(ctx, "report uploaded", "key", key)
	return nil
}
