package client

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophvault/internal/address"
	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/logging"
	"github.com/dmitrijs2005/gophvault/internal/server/config"
	servergrpc "github.com/dmitrijs2005/gophvault/internal/server/grpc"
	"github.com/dmitrijs2005/gophvault/internal/server/services"
	"github.com/dmitrijs2005/gophvault/internal/server/store"
	"github.com/dmitrijs2005/gophvault/internal/server/system"
	"github.com/dmitrijs2005/gophvault/internal/server/vault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"
)

// startServer serves a memory-backed vault over bufconn and returns a
// dialer for it.
func startServer(t *testing.T, ttl time.Duration) grpc.DialOption {
	t.Helper()

	cfg := &config.Config{SecretKey: "e2e", AccessTokenValidityDuration: ttl, LoginMaxSkew: time.Minute}
	us, err := services.NewUserService(cfg, logging.Nop())
	require.NoError(t, err)

	d, err := address.NewDeriver(address.MustParse(config.DefaultProgramID), 64)
	require.NoError(t, err)
	vs := services.NewVaultService(store.NewMemoryStore(), vault.New(d, system.New(true)), nil, logging.Nop())

	lis := bufconn.Listen(1 << 20)
	srv := servergrpc.NewGRPCServer("bufnet", logging.Nop(), us, vs).NewServer()
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	return grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	})
}

func connect(t *testing.T, dialer grpc.DialOption) *GRPCClient {
	t.Helper()
	_, key, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	c, err := NewGophVaultClient("passthrough:///bufnet", key, dialer)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestEndToEnd(t *testing.T) {
	dialer := startServer(t, time.Hour)
	ctx := context.Background()

	admin := connect(t, dialer)
	alice := connect(t, dialer)
	bob := connect(t, dialer)

	require.NoError(t, admin.Ping(ctx))

	// no explicit Login: the first authenticated call logs in
	v, err := admin.InitializeVault(ctx)
	require.NoError(t, err)
	assert.Equal(t, admin.Identity(), v.Admin)

	_, err = alice.InitializeVault(ctx)
	require.ErrorIs(t, err, common.ErrAlreadyInitialized)

	for _, c := range []*GRPCClient{alice, bob} {
		_, err := c.InitializeUser(ctx)
		require.NoError(t, err)
		_, err = c.Airdrop(ctx, 1_000)
		require.NoError(t, err)
	}

	_, err = alice.Deposit(ctx, 600)
	require.NoError(t, err)
	_, err = bob.Deposit(ctx, 300)
	require.NoError(t, err)

	_, err = bob.Withdraw(ctx, 301)
	require.ErrorIs(t, err, common.ErrInsufficientDepositedFunds)

	_, err = alice.Deposit(ctx, 0)
	require.ErrorIs(t, err, common.ErrInvalidAmount)

	_, err = alice.Deposit(ctx, 10_000)
	require.ErrorIs(t, err, common.ErrTransferFailed)

	r, err := alice.Withdraw(ctx, 200)
	require.NoError(t, err)
	assert.Equal(t, uint64(400), r.UserDepositedAfter)
	assert.Equal(t, uint64(700), r.TotalDepositedAfter)

	vault, err := bob.Vault(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(700), vault.TotalDeposited)
	assert.Equal(t, uint64(700), vault.CustodyBalance)

	u, err := bob.User(ctx, alice.Identity())
	require.NoError(t, err)
	assert.Equal(t, uint64(400), u.Deposited)

	bal, err := alice.Balance(ctx, alice.Identity())
	require.NoError(t, err)
	assert.Equal(t, uint64(600), bal)

	rs, err := alice.Receipts(ctx, 10)
	require.NoError(t, err)
	require.Len(t, rs, 2)
	assert.Equal(t, "withdraw", rs[0].Kind)
	assert.Equal(t, "deposit", rs[1].Kind)
}

func TestEndToEnd_ExpiredTokensGiveUpAfterOneLogin(t *testing.T) {
	dialer := startServer(t, -time.Second)
	c := connect(t, dialer)

	_, err := c.InitializeUser(context.Background())
	require.ErrorIs(t, err, common.ErrTokenExpired)

	// public methods still work
	require.NoError(t, c.Ping(context.Background()))
}
