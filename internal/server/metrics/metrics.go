// Package metrics exposes vault Prometheus collectors and the HTTP endpoint
// that serves them together with a health probe.
package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gophvault"

// Metrics owns its own registry so tests can create independent instances.
type Metrics struct {
	Registry *prometheus.Registry

	operations      *prometheus.CounterVec
	duration        *prometheus.HistogramVec
	lamports        *prometheus.CounterVec
	totalDeposited  prometheus.Gauge
	custodyBalance  prometheus.Gauge
	auditConsistent prometheus.Gauge
	auditRuns       *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "vault",
				Name:      "operations_total",
				Help:      "Vault operations by name and outcome.",
			},
			[]string{"operation", "result"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "vault",
				Name:      "operation_duration_seconds",
				Help:      "Duration of vault operations including the store transaction.",
				Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12), // 0.5ms to ~1s
			},
			[]string{"operation"},
		),
		lamports: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "vault",
				Name:      "lamports_total",
				Help:      "Lamports moved into or out of custody.",
			},
			[]string{"direction"},
		),
		totalDeposited: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "total_deposited_lamports",
			Help:      "Last observed total_deposited of the vault ledger.",
		}),
		custodyBalance: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "custody_balance_lamports",
			Help:      "Last observed native balance of the custody address.",
		}),
		auditConsistent: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "audit",
			Name:      "consistent",
			Help:      "1 when the last audit found both ledger invariants holding, 0 otherwise.",
		}),
		auditRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "audit",
				Name:      "runs_total",
				Help:      "Ledger audits by outcome.",
			},
			[]string{"result"},
		),
	}

	m.Registry.MustRegister(
		m.operations,
		m.duration,
		m.lamports,
		m.totalDeposited,
		m.custodyBalance,
		m.auditConsistent,
		m.auditRuns,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
	return m
}

// ObserveOperation records one finished operation.
func (m *Metrics) ObserveOperation(op string, err error, d time.Duration) {
	m.operations.WithLabelValues(op, Reason(err)).Inc()
	m.duration.WithLabelValues(op).Observe(d.Seconds())
}

// AddLamports counts lamports moved; direction is "in" or "out".
func (m *Metrics) AddLamports(direction string, amount uint64) {
	m.lamports.WithLabelValues(direction).Add(float64(amount))
}

func (m *Metrics) SetLedger(total, custody uint64) {
	m.totalDeposited.Set(float64(total))
	m.custodyBalance.Set(float64(custody))
}

func (m *Metrics) SetAudit(consistent bool, err error) {
	switch {
	case err != nil:
		m.auditRuns.WithLabelValues("error").Inc()
		return
	case consistent:
		m.auditConsistent.Set(1)
		m.auditRuns.WithLabelValues("consistent").Inc()
	default:
		m.auditConsistent.Set(0)
		m.auditRuns.WithLabelValues("diverged").Inc()
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

var reasons = []struct {
	err  error
	name string
}{
	{common.ErrInvalidAmount, "invalid_amount"},
	{common.ErrInsufficientDepositedFunds, "insufficient_deposited_funds"},
	{common.ErrInsufficientVaultBalance, "insufficient_vault_balance"},
	{common.ErrMathOverflow, "math_overflow"},
	{common.ErrTransferFailed, "transfer_failed"},
	{common.ErrAlreadyInitialized, "already_initialized"},
	{common.ErrNotInitialized, "not_initialized"},
	{common.ErrAddressMismatch, "address_mismatch"},
	{common.ErrInvalidAccountOwner, "invalid_account_owner"},
	{common.ErrAccountDiscriminatorMismatch, "discriminator_mismatch"},
	{common.ErrorUnauthorized, "unauthorized"},
	{common.ErrAirdropDisabled, "airdrop_disabled"},
}

// Reason maps an operation error to a bounded label value.
func Reason(err error) string {
	if err == nil {
		return "ok"
	}
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.name
		}
	}
	return "error"
}
