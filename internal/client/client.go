package client

import (
	"context"

	"github.com/dmitrijs2005/gophvault/internal/address"
	"github.com/dmitrijs2005/gophvault/internal/rpc"
)

type Client interface {
	Close() error
	Identity() address.Address
	Login(ctx context.Context) error
	Ping(ctx context.Context) error
	Addresses(ctx context.Context) (*rpc.AddressesResponse, error)
	InitializeVault(ctx context.Context) (*rpc.VaultResponse, error)
	InitializeUser(ctx context.Context) (*rpc.UserResponse, error)
	Deposit(ctx context.Context, lamports uint64) (*rpc.Receipt, error)
	Withdraw(ctx context.Context, lamports uint64) (*rpc.Receipt, error)
	Vault(ctx context.Context) (*rpc.VaultResponse, error)
	User(ctx context.Context, depositor address.Address) (*rpc.UserResponse, error)
	Balance(ctx context.Context, addr address.Address) (uint64, error)
	Receipts(ctx context.Context, limit int) ([]*rpc.Receipt, error)
	Airdrop(ctx context.Context, lamports uint64) (uint64, error)
}

var _ Client = (*GRPCClient)(nil)
