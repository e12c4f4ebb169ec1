package grpc

import (
	"context"

	"github.com/dmitrijs2005/gophvault/internal/rpc"
	"github.com/dmitrijs2005/gophvault/internal/server/models"
	"github.com/dmitrijs2005/gophvault/internal/server/vault"
)

// Upper bound on receipts returned by one ListReceipts call.
const maxReceiptsPerCall = 1000

func (s *GRPCServer) Ping(ctx context.Context, req *rpc.PingRequest) (*rpc.PingResponse, error) {
	return &rpc.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *rpc.LoginRequest) (*rpc.LoginResponse, error) {
	token, err := s.users.Login(ctx, req.Identity, req.Timestamp, req.Signature)
	if err != nil {
		return nil, err
	}
	return &rpc.LoginResponse{AccessToken: token.AccessToken, ExpiresAt: token.ExpiresAt}, nil
}

func (s *GRPCServer) Addresses(ctx context.Context, req *rpc.AddressesRequest) (*rpc.AddressesResponse, error) {
	a, err := s.vault.Addresses(req.Depositor)
	if err != nil {
		return nil, err
	}
	return &rpc.AddressesResponse{
		ProgramID:       a.ProgramID,
		VaultLedger:     a.VaultLedger,
		VaultLedgerBump: a.VaultLedgerBump,
		Custody:         a.Custody,
		CustodyBump:     a.CustodyBump,
		UserLedger:      a.UserLedger,
		UserLedgerBump:  a.UserLedgerBump,
	}, nil
}

func (s *GRPCServer) InitializeVault(ctx context.Context, req *rpc.InitializeVaultRequest) (*rpc.VaultResponse, error) {
	if err := requireSigner(ctx, req.Signer); err != nil {
		return nil, err
	}
	info, err := s.vault.InitializeVault(ctx, req.Signer, req.Admin)
	if err != nil {
		return nil, err
	}
	return vaultResponse(info), nil
}

func (s *GRPCServer) InitializeUser(ctx context.Context, req *rpc.InitializeUserRequest) (*rpc.UserResponse, error) {
	if err := requireSigner(ctx, req.Signer); err != nil {
		return nil, err
	}
	info, err := s.vault.InitializeUser(ctx, req.Signer, req.Depositor)
	if err != nil {
		return nil, err
	}
	return userResponse(info), nil
}

func (s *GRPCServer) Deposit(ctx context.Context, req *rpc.TransferRequest) (*rpc.Receipt, error) {
	if err := requireSigner(ctx, req.Signer); err != nil {
		return nil, err
	}
	r, err := s.vault.Deposit(ctx, transferRequest(req))
	if err != nil {
		return nil, err
	}
	return receipt(r), nil
}

func (s *GRPCServer) Withdraw(ctx context.Context, req *rpc.TransferRequest) (*rpc.Receipt, error) {
	if err := requireSigner(ctx, req.Signer); err != nil {
		return nil, err
	}
	r, err := s.vault.Withdraw(ctx, transferRequest(req))
	if err != nil {
		return nil, err
	}
	return receipt(r), nil
}

func (s *GRPCServer) GetVault(ctx context.Context, req *rpc.GetVaultRequest) (*rpc.VaultResponse, error) {
	info, err := s.vault.Vault(ctx)
	if err != nil {
		return nil, err
	}
	return vaultResponse(info), nil
}

func (s *GRPCServer) GetUser(ctx context.Context, req *rpc.GetUserRequest) (*rpc.UserResponse, error) {
	info, err := s.vault.User(ctx, req.Depositor)
	if err != nil {
		return nil, err
	}
	return userResponse(info), nil
}

func (s *GRPCServer) GetBalance(ctx context.Context, req *rpc.GetBalanceRequest) (*rpc.GetBalanceResponse, error) {
	lamports, err := s.vault.Balance(ctx, req.Address)
	if err != nil {
		return nil, err
	}
	return &rpc.GetBalanceResponse{Lamports: lamports}, nil
}

// ListReceipts only shows callers their own history.
func (s *GRPCServer) ListReceipts(ctx context.Context, req *rpc.ListReceiptsRequest) (*rpc.ListReceiptsResponse, error) {
	if err := requireSigner(ctx, req.Depositor); err != nil {
		return nil, err
	}

	limit := int(req.Limit)
	if limit <= 0 || limit > maxReceiptsPerCall {
		limit = maxReceiptsPerCall
	}

	rs, err := s.vault.Receipts(ctx, req.Depositor, limit)
	if err != nil {
		return nil, err
	}

	out := &rpc.ListReceiptsResponse{Receipts: make([]*rpc.Receipt, 0, len(rs))}
	for _, r := range rs {
		out.Receipts = append(out.Receipts, receipt(r))
	}
	return out, nil
}

// Airdrop may only credit the caller.
func (s *GRPCServer) Airdrop(ctx context.Context, req *rpc.AirdropRequest) (*rpc.AirdropResponse, error) {
	if err := requireSigner(ctx, req.To); err != nil {
		return nil, err
	}
	balance, err := s.vault.Airdrop(ctx, req.To, req.Lamports)
	if err != nil {
		return nil, err
	}
	return &rpc.AirdropResponse{Balance: balance}, nil
}

func transferRequest(req *rpc.TransferRequest) vault.Request {
	return vault.Request{
		Signer:      req.Signer,
		Depositor:   req.Depositor,
		VaultLedger: req.VaultLedger,
		UserLedger:  req.UserLedger,
		Custody:     req.Custody,
		Amount:      req.Amount,
	}
}

func vaultResponse(info *vault.VaultInfo) *rpc.VaultResponse {
	return &rpc.VaultResponse{
		Address:        info.Address,
		Admin:          info.Ledger.Admin,
		TotalDeposited: info.Ledger.TotalDeposited,
		StateBump:      info.Ledger.StateBump,
		VaultBump:      info.Ledger.VaultBump,
		Custody:        info.Custody,
		CustodyBalance: info.CustodyBalance,
	}
}

func userResponse(info *vault.UserInfo) *rpc.UserResponse {
	return &rpc.UserResponse{
		Address:   info.Address,
		Owner:     info.Ledger.Owner,
		Deposited: info.Ledger.Deposited,
		Bump:      info.Ledger.Bump,
	}
}

func receipt(r *models.Receipt) *rpc.Receipt {
	return &rpc.Receipt{
		ID:                  r.ID,
		Kind:                string(r.Kind),
		Depositor:           r.Depositor,
		Amount:              r.Amount,
		UserDepositedAfter:  r.UserDepositedAfter,
		TotalDepositedAfter: r.TotalDepositedAfter,
		CreatedAt:           r.CreatedAt,
	}
}
