package client

import (
	"context"
	"crypto/ed25519"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophvault/internal/address"
	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/rpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const missingTokenMessage = "missing token"

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      rpc.VaultServiceClient
	key         ed25519.PrivateKey
	identity    address.Address
	now         func() time.Time

	mu          sync.Mutex
	accessToken string
	addresses   *rpc.AddressesResponse
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	if token != "" {
		md.Set(common.AccessTokenHeaderName, token)
	}

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken
}

// needsLogin reports whether err means the call would succeed with a fresh
// access token.
func needsLogin(err error) bool {
	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.Unauthenticated {
		return false
	}
	return st.Message() == common.ErrTokenExpired.Error() || st.Message() == missingTokenMessage
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if method == rpc.VaultService_Login_FullMethodName {
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	err := invoker(withAccessToken(ctx, s.token()), method, req, reply, cc, opts...)
	if err == nil || !needsLogin(err) {
		return err
	}

	if err := s.Login(ctx); err != nil {
		return err
	}

	// logged in again, retrying once with the new token
	return invoker(withAccessToken(ctx, s.token()), method, req, reply, cc, opts...)
}

// NewGophVaultClient connects to endpointURL and acts as the depositor
// whose private key is key. Extra dial options are appended after the
// defaults (insecure transport and the token interceptor).
func NewGophVaultClient(endpointURL string, key ed25519.PrivateKey, opts ...grpc.DialOption) (*GRPCClient, error) {
	if len(key) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("client: invalid ed25519 private key")
	}
	c := &GRPCClient{endpointURL: endpointURL, key: key, now: time.Now}
	copy(c.identity[:], key.Public().(ed25519.PublicKey))

	if err := c.InitGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {
	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, dialOpts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = rpc.NewVaultServiceClient(conn)
	return nil
}

func (s *GRPCClient) Identity() address.Address {
	return s.identity
}

// Login signs a fresh login proof and stores the access token it buys.
func (s *GRPCClient) Login(ctx context.Context) error {
	resp, err := s.client.Login(ctx, rpc.SignLogin(s.key, s.now()))
	if err != nil {
		return s.mapError(err)
	}

	s.mu.Lock()
	s.accessToken = resp.AccessToken
	s.mu.Unlock()
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &rpc.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

// Addresses returns the derived addresses for this client's identity. They
// depend only on the program id and the identity, so the first answer is
// kept.
func (s *GRPCClient) Addresses(ctx context.Context) (*rpc.AddressesResponse, error) {
	s.mu.Lock()
	cached := s.addresses
	s.mu.Unlock()
	if cached != nil {
		return cached, nil
	}

	resp, err := s.client.Addresses(ctx, &rpc.AddressesRequest{Depositor: s.identity})
	if err != nil {
		return nil, s.mapError(err)
	}

	s.mu.Lock()
	s.addresses = resp
	s.mu.Unlock()
	return resp, nil
}

// InitializeVault creates the vault with this client as the recorded admin.
func (s *GRPCClient) InitializeVault(ctx context.Context) (*rpc.VaultResponse, error) {
	resp, err := s.client.InitializeVault(ctx, &rpc.InitializeVaultRequest{Signer: s.identity, Admin: s.identity})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) InitializeUser(ctx context.Context) (*rpc.UserResponse, error) {
	resp, err := s.client.InitializeUser(ctx, &rpc.InitializeUserRequest{Signer: s.identity, Depositor: s.identity})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) transferRequest(ctx context.Context, lamports uint64) (*rpc.TransferRequest, error) {
	a, err := s.Addresses(ctx)
	if err != nil {
		return nil, err
	}
	return &rpc.TransferRequest{
		Signer:      s.identity,
		Depositor:   s.identity,
		VaultLedger: a.VaultLedger,
		UserLedger:  a.UserLedger,
		Custody:     a.Custody,
		Amount:      lamports,
	}, nil
}

func (s *GRPCClient) Deposit(ctx context.Context, lamports uint64) (*rpc.Receipt, error) {
	req, err := s.transferRequest(ctx, lamports)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Deposit(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) Withdraw(ctx context.Context, lamports uint64) (*rpc.Receipt, error) {
	req, err := s.transferRequest(ctx, lamports)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Withdraw(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) Vault(ctx context.Context) (*rpc.VaultResponse, error) {
	resp, err := s.client.GetVault(ctx, &rpc.GetVaultRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) User(ctx context.Context, depositor address.Address) (*rpc.UserResponse, error) {
	resp, err := s.client.GetUser(ctx, &rpc.GetUserRequest{Depositor: depositor})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) Balance(ctx context.Context, addr address.Address) (uint64, error) {
	resp, err := s.client.GetBalance(ctx, &rpc.GetBalanceRequest{Address: addr})
	if err != nil {
		return 0, s.mapError(err)
	}
	return resp.Lamports, nil
}

// Receipts lists this client's receipts, newest first. Limits above the
// int32 range are clamped; the server applies its own cap on top.
func (s *GRPCClient) Receipts(ctx context.Context, limit int) ([]*rpc.Receipt, error) {
	if limit > math.MaxInt32 {
		limit = math.MaxInt32
	}
	resp, err := s.client.ListReceipts(ctx, &rpc.ListReceiptsRequest{Depositor: s.identity, Limit: int32(limit)})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Receipts, nil
}

// Airdrop asks the development faucet for lamports.
func (s *GRPCClient) Airdrop(ctx context.Context, lamports uint64) (uint64, error) {
	resp, err := s.client.Airdrop(ctx, &rpc.AirdropRequest{To: s.identity, Lamports: lamports})
	if err != nil {
		return 0, s.mapError(err)
	}
	return resp.Balance, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	if typed, ok := rpc.Typed(err); ok {
		return typed
	}

	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %s", ErrUnavailable, st.Message())
	default:
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("rpc error: %w", err)
	}
}
