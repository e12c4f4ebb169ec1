package grpc

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
	"github.com/dmitrijs2005/gophvault/internal/rpc"
	"github.com/dmitrijs2005/gophvault/internal/server/config"
	"github.com/dmitrijs2005/gophvault/internal/server/services"
	"github.com/dmitrijs2005/gophvault/internal/server/store"
	"github.com/dmitrijs2005/gophvault/internal/server/system"
	"github.com/dmitrijs2005/gophvault/internal/server/vault"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"
)

var programID = address.MustParse(config.DefaultProgramID)

func newTestServer(t *testing.T) *GRPCServer {
	t.Helper()
	cfg := &config.Config{
		SecretKey:                   "secret",
		AccessTokenValidityDuration: time.Hour,
		LoginMaxSkew:                time.Minute,
	}
	us, err := services.NewUserService(cfg, logging.Nop())
	require.NoError(t, err)

	d, err := address.NewDeriver(programID, 64)
	require.NoError(t, err)
	vs := services.NewVaultService(store.NewMemoryStore(), vault.New(d, system.New(true)), nil, logging.Nop())

	return NewGRPCServer("127.0.0.1:0", logging.Nop(), us, vs)
}

// dial serves s over an in-memory listener and returns a client for it.
func dial(t *testing.T, s *GRPCServer) rpc.VaultServiceClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	srv := s.NewServer()
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return rpc.NewVaultServiceClient(conn)
}

type user struct {
	key      ed25519.PrivateKey
	identity address.Address
}

func newUser(t *testing.T) user {
	t.Helper()
	_, key, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	var id address.Address
	copy(id[:], key.Public().(ed25519.PublicKey))
	return user{key: key, identity: id}
}

// login returns a context carrying u's access token.
func login(t *testing.T, c rpc.VaultServiceClient, u user) context.Context {
	t.Helper()
	resp, err := c.Login(context.Background(), rpc.SignLogin(u.key, time.Now()))
	require.NoError(t, err)
	return metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, resp.AccessToken)
}
