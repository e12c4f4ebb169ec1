// Package server wires the vault program to its store, services and
// transports. It opens the configured storage backend, starts the gRPC and
// metrics servers, schedules the ledger audit and shuts everything down on
// SIGINT, SIGTERM or SIGQUIT.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/gophvault/internal/address"
	"github.com/dmitrijs2005/gophvault/internal/filex"
	"github.com/dmitrijs2005/gophvault/internal/logging"
	"github.com/dmitrijs2005/gophvault/internal/server/audit"
	"github.com/dmitrijs2005/gophvault/internal/server/config"
	"github.com/dmitrijs2005/gophvault/internal/server/metrics"
	"github.com/dmitrijs2005/gophvault/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophvault/internal/server/services"
	"github.com/dmitrijs2005/gophvault/internal/server/store"
	"github.com/dmitrijs2005/gophvault/internal/server/system"
	"github.com/dmitrijs2005/gophvault/internal/server/vault"

	gs "github.com/dmitrijs2005/gophvault/internal/server/grpc"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type App struct {
	config       *config.Config
	logger       logging.Logger
	store        store.Store
	metrics      *metrics.Metrics
	userService  *services.UserService
	vaultService *services.VaultService
	auditor      *audit.Auditor
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	programID, err := address.Parse(c.ProgramID)
	if err != nil {
		return nil, fmt.Errorf("program id: %w", err)
	}

	deriver, err := address.NewDeriver(programID, c.DeriveCacheSize)
	if err != nil {
		return nil, fmt.Errorf("deriver init error: %w", err)
	}

	st, err := openStore(ctx, c, logger)
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	m := metrics.New()
	program := vault.New(deriver, system.New(c.AllowAirdrop))

	us, err := services.NewUserService(c, logger)
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("user service init error: %w", err)
	}
	vs := services.NewVaultService(st, program, m, logger)

	opts := []audit.Option{audit.WithMetrics(m)}
	if c.S3Bucket != "" {
		up, err := audit.NewS3Uploader(ctx, c)
		if err != nil {
			_ = st.Close()
			return nil, fmt.Errorf("audit uploader init error: %w", err)
		}
		opts = append(opts, audit.WithUploader(up))
	}
	auditor := audit.NewAuditor(st, program, logger, opts...)

	return &App{
		config:       c,
		logger:       logger,
		store:        st,
		metrics:      m,
		userService:  us,
		vaultService: vs,
		auditor:      auditor,
	}, nil
}

// openStore opens the backend named by c.StorageBackend.
func openStore(ctx context.Context, c *config.Config, l logging.Logger) (store.Store, error) {
	switch c.StorageBackend {
	case store.BackendMemory, "":
		return store.NewMemoryStore(), nil

	case store.BackendBadger:
		if c.BadgerPath == "" {
			return nil, fmt.Errorf("badger backend needs a data directory")
		}
		dir, err := filex.EnsureDir(c.BadgerPath)
		if err != nil {
			return nil, err
		}
		bs, err := store.OpenBadger(dir, l)
		if err != nil {
			return nil, err
		}
		return bs, nil

	case store.BackendPostgres:
		db, err := sql.Open("pgx", c.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
		rm := repomanager.NewPostgresRepositoryManager()
		if err := rm.RunMigrations(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrations: %w", err)
		}
		return store.NewPostgresStore(db, rm), nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", c.StorageBackend)
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService, app.vaultService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startMetricsServer(ctx context.Context, cancelFunc context.CancelFunc) {
	health := func(ctx context.Context) error {
		return app.store.View(ctx, func(context.Context, store.Tx) error { return nil })
	}
	s := metrics.NewServer(app.config.MetricsAddr, metrics.NewRouter(app.metrics, health), app.logger)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startAuditor(ctx context.Context) {
	if err := app.auditor.Schedule(ctx, app.config.AuditSchedule); err != nil {
		// a broken schedule disables the audit but not the vault
		app.logger.Error(ctx, "audit not scheduled", "error", err)
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...",
		"storage", app.config.StorageBackend,
		"program_id", app.config.ProgramID,
		"grpc", app.config.EndpointAddrGRPC,
		"metrics", app.config.MetricsAddr)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	if app.config.MetricsAddr != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startMetricsServer(ctx, cancelFunc)
		}()
	}

	if app.config.AuditSchedule != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startAuditor(ctx)
		}()
	}

	wg.Wait()

	if err := app.store.Close(); err != nil {
		app.logger.Error(context.Background(), "store close", "error", err)
	}
	app.logger.Info(context.Background(), "App stopped")
}
