package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophvault/internal/address"
	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/rpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const identityKey ctxKey = "identity"

// authenticated lists the methods that need an access token.
var authenticated = map[string]struct{}{
	rpc.VaultService_InitializeVault_FullMethodName: {},
	rpc.VaultService_InitializeUser_FullMethodName:  {},
	rpc.VaultService_Deposit_FullMethodName:         {},
	rpc.VaultService_Withdraw_FullMethodName:        {},
	rpc.VaultService_ListReceipts_FullMethodName:    {},
	rpc.VaultService_Airdrop_FullMethodName:         {},
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if _, ok := authenticated[info.FullMethod]; ok {

		var accessToken string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			values := md.Get(common.AccessTokenHeaderName)
			if len(values) > 0 {
				accessToken = values[0]
			}
		}
		if len(accessToken) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		identity, err := s.users.Authenticate(accessToken)
		if err != nil {
			if errors.Is(err, common.ErrTokenExpired) {
				return nil, status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
			}
			return nil, status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
		}

		ctx = context.WithValue(ctx, identityKey, identity)
	}

	return handler(ctx, req)
}

// statusInterceptor converts typed service errors into gRPC statuses and
// logs failures that are not caller mistakes.
func (s *GRPCServer) statusInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	resp, err := handler(ctx, req)
	if err == nil {
		return resp, nil
	}

	st := rpc.ToStatus(err)
	if status.Code(st) == codes.Internal {
		s.logger.Error(ctx, "request failed", "method", info.FullMethod, "error", err)
	}
	return nil, st
}

// identityFrom returns the authenticated caller.
func identityFrom(ctx context.Context) (address.Address, bool) {
	id, ok := ctx.Value(identityKey).(address.Address)
	return id, ok
}

// requireSigner fails unless the authenticated caller is signer.
func requireSigner(ctx context.Context, signer address.Address) error {
	id, ok := identityFrom(ctx)
	if !ok || id != signer {
		return common.ErrorUnauthorized
	}
	return nil
}
