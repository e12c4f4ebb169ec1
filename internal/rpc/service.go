// Package rpc defines the gophvault.VaultService gRPC contract shared by the
// server and the client library: message types, the CBOR codec they travel
// with, and the service descriptor.
package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "gophvault.VaultService"

// Full method names, as seen by interceptors.
const (
	VaultService_Ping_FullMethodName            = "/gophvault.VaultService/Ping"
	VaultService_Login_FullMethodName           = "/gophvault.VaultService/Login"
	VaultService_Addresses_FullMethodName       = "/gophvault.VaultService/Addresses"
	VaultService_InitializeVault_FullMethodName = "/gophvault.VaultService/InitializeVault"
	VaultService_InitializeUser_FullMethodName  = "/gophvault.VaultService/InitializeUser"
	VaultService_Deposit_FullMethodName         = "/gophvault.VaultService/Deposit"
	VaultService_Withdraw_FullMethodName        = "/gophvault.VaultService/Withdraw"
	VaultService_GetVault_FullMethodName        = "/gophvault.VaultService/GetVault"
	VaultService_GetUser_FullMethodName         = "/gophvault.VaultService/GetUser"
	VaultService_GetBalance_FullMethodName      = "/gophvault.VaultService/GetBalance"
	VaultService_ListReceipts_FullMethodName    = "/gophvault.VaultService/ListReceipts"
	VaultService_Airdrop_FullMethodName         = "/gophvault.VaultService/Airdrop"
)

// VaultServiceClient is the client API for VaultService.
type VaultServiceClient interface {
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	Addresses(ctx context.Context, in *AddressesRequest, opts ...grpc.CallOption) (*AddressesResponse, error)
	InitializeVault(ctx context.Context, in *InitializeVaultRequest, opts ...grpc.CallOption) (*VaultResponse, error)
	InitializeUser(ctx context.Context, in *InitializeUserRequest, opts ...grpc.CallOption) (*UserResponse, error)
	Deposit(ctx context.Context, in *TransferRequest, opts ...grpc.CallOption) (*Receipt, error)
	Withdraw(ctx context.Context, in *TransferRequest, opts ...grpc.CallOption) (*Receipt, error)
	GetVault(ctx context.Context, in *GetVaultRequest, opts ...grpc.CallOption) (*VaultResponse, error)
	GetUser(ctx context.Context, in *GetUserRequest, opts ...grpc.CallOption) (*UserResponse, error)
	GetBalance(ctx context.Context, in *GetBalanceRequest, opts ...grpc.CallOption) (*GetBalanceResponse, error)
	ListReceipts(ctx context.Context, in *ListReceiptsRequest, opts ...grpc.CallOption) (*ListReceiptsResponse, error)
	Airdrop(ctx context.Context, in *AirdropRequest, opts ...grpc.CallOption) (*AirdropResponse, error)
}

type vaultServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewVaultServiceClient(cc grpc.ClientConnInterface) VaultServiceClient {
	return &vaultServiceClient{cc}
}

func (c *vaultServiceClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	out := new(PingResponse)
	err := c.cc.Invoke(ctx, VaultService_Ping_FullMethodName, in, out, append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	out := new(LoginResponse)
	err := c.cc.Invoke(ctx, VaultService_Login_FullMethodName, in, out, append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultServiceClient) Addresses(ctx context.Context, in *AddressesRequest, opts ...grpc.CallOption) (*AddressesResponse, error) {
	out := new(AddressesResponse)
	err := c.cc.Invoke(ctx, VaultService_Addresses_FullMethodName, in, out, append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultServiceClient) InitializeVault(ctx context.Context, in *InitializeVaultRequest, opts ...grpc.CallOption) (*VaultResponse, error) {
	out := new(VaultResponse)
	err := c.cc.Invoke(ctx, VaultService_InitializeVault_FullMethodName, in, out, append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultServiceClient) InitializeUser(ctx context.Context, in *InitializeUserRequest, opts ...grpc.CallOption) (*UserResponse, error) {
	out := new(UserResponse)
	err := c.cc.Invoke(ctx, VaultService_InitializeUser_FullMethodName, in, out, append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultServiceClient) Deposit(ctx context.Context, in *TransferRequest, opts ...grpc.CallOption) (*Receipt, error) {
	out := new(Receipt)
	err := c.cc.Invoke(ctx, VaultService_Deposit_FullMethodName, in, out, append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultServiceClient) Withdraw(ctx context.Context, in *TransferRequest, opts ...grpc.CallOption) (*Receipt, error) {
	out := new(Receipt)
	err := c.cc.Invoke(ctx, VaultService_Withdraw_FullMethodName, in, out, append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultServiceClient) GetVault(ctx context.Context, in *GetVaultRequest, opts ...grpc.CallOption) (*VaultResponse, error) {
	out := new(VaultResponse)
	err := c.cc.Invoke(ctx, VaultService_GetVault_FullMethodName, in, out, append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultServiceClient) GetUser(ctx context.Context, in *GetUserRequest, opts ...grpc.CallOption) (*UserResponse, error) {
	out := new(UserResponse)
	err := c.cc.Invoke(ctx, VaultService_GetUser_FullMethodName, in, out, append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultServiceClient) GetBalance(ctx context.Context, in *GetBalanceRequest, opts ...grpc.CallOption) (*GetBalanceResponse, error) {
	out := new(GetBalanceResponse)
	err := c.cc.Invoke(ctx, VaultService_GetBalance_FullMethodName, in, out, append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultServiceClient) ListReceipts(ctx context.Context, in *ListReceiptsRequest, opts ...grpc.CallOption) (*ListReceiptsResponse, error) {
	out := new(ListReceiptsResponse)
	err := c.cc.Invoke(ctx, VaultService_ListReceipts_FullMethodName, in, out, append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultServiceClient) Airdrop(ctx context.Context, in *AirdropRequest, opts ...grpc.CallOption) (*AirdropResponse, error) {
	out := new(AirdropResponse)
	err := c.cc.Invoke(ctx, VaultService_Airdrop_FullMethodName, in, out, append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// VaultServiceServer is the server API for VaultService. Implementations
// must embed UnimplementedVaultServiceServer.
type VaultServiceServer interface {
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	Addresses(context.Context, *AddressesRequest) (*AddressesResponse, error)
	InitializeVault(context.Context, *InitializeVaultRequest) (*VaultResponse, error)
	InitializeUser(context.Context, *InitializeUserRequest) (*UserResponse, error)
	Deposit(context.Context, *TransferRequest) (*Receipt, error)
	Withdraw(context.Context, *TransferRequest) (*Receipt, error)
	GetVault(context.Context, *GetVaultRequest) (*VaultResponse, error)
	GetUser(context.Context, *GetUserRequest) (*UserResponse, error)
	GetBalance(context.Context, *GetBalanceRequest) (*GetBalanceResponse, error)
	ListReceipts(context.Context, *ListReceiptsRequest) (*ListReceiptsResponse, error)
	Airdrop(context.Context, *AirdropRequest) (*AirdropResponse, error)
	mustEmbedUnimplementedVaultServiceServer()
}

// UnimplementedVaultServiceServer answers every method with
// codes.Unimplemented.
type UnimplementedVaultServiceServer struct{}

func (UnimplementedVaultServiceServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Ping not implemented")
}
func (UnimplementedVaultServiceServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedVaultServiceServer) Addresses(context.Context, *AddressesRequest) (*AddressesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Addresses not implemented")
}
func (UnimplementedVaultServiceServer) InitializeVault(context.Context, *InitializeVaultRequest) (*VaultResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method InitializeVault not implemented")
}
func (UnimplementedVaultServiceServer) InitializeUser(context.Context, *InitializeUserRequest) (*UserResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method InitializeUser not implemented")
}
func (UnimplementedVaultServiceServer) Deposit(context.Context, *TransferRequest) (*Receipt, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Deposit not implemented")
}
func (UnimplementedVaultServiceServer) Withdraw(context.Context, *TransferRequest) (*Receipt, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Withdraw not implemented")
}
func (UnimplementedVaultServiceServer) GetVault(context.Context, *GetVaultRequest) (*VaultResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetVault not implemented")
}
func (UnimplementedVaultServiceServer) GetUser(context.Context, *GetUserRequest) (*UserResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetUser not implemented")
}
func (UnimplementedVaultServiceServer) GetBalance(context.Context, *GetBalanceRequest) (*GetBalanceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetBalance not implemented")
}
func (UnimplementedVaultServiceServer) ListReceipts(context.Context, *ListReceiptsRequest) (*ListReceiptsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListReceipts not implemented")
}
func (UnimplementedVaultServiceServer) Airdrop(context.Context, *AirdropRequest) (*AirdropResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Airdrop not implemented")
}
func (UnimplementedVaultServiceServer) mustEmbedUnimplementedVaultServiceServer() {}

func RegisterVaultServiceServer(s grpc.ServiceRegistrar, srv VaultServiceServer) {
	s.RegisterService(&VaultService_ServiceDesc, srv)
}

func _VaultService_Ping_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServiceServer).Ping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VaultService_Ping_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServiceServer).Ping(ctx, req.(*PingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VaultService_Login_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LoginRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServiceServer).Login(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VaultService_Login_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServiceServer).Login(ctx, req.(*LoginRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VaultService_Addresses_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AddressesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServiceServer).Addresses(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VaultService_Addresses_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServiceServer).Addresses(ctx, req.(*AddressesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VaultService_InitializeVault_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(InitializeVaultRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServiceServer).InitializeVault(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VaultService_InitializeVault_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServiceServer).InitializeVault(ctx, req.(*InitializeVaultRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VaultService_InitializeUser_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(InitializeUserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServiceServer).InitializeUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VaultService_InitializeUser_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServiceServer).InitializeUser(ctx, req.(*InitializeUserRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VaultService_Deposit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TransferRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServiceServer).Deposit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VaultService_Deposit_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServiceServer).Deposit(ctx, req.(*TransferRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VaultService_Withdraw_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TransferRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServiceServer).Withdraw(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VaultService_Withdraw_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServiceServer).Withdraw(ctx, req.(*TransferRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VaultService_GetVault_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetVaultRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServiceServer).GetVault(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VaultService_GetVault_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServiceServer).GetVault(ctx, req.(*GetVaultRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VaultService_GetUser_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetUserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServiceServer).GetUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VaultService_GetUser_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServiceServer).GetUser(ctx, req.(*GetUserRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VaultService_GetBalance_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetBalanceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServiceServer).GetBalance(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VaultService_GetBalance_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServiceServer).GetBalance(ctx, req.(*GetBalanceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VaultService_ListReceipts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListReceiptsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServiceServer).ListReceipts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VaultService_ListReceipts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServiceServer).ListReceipts(ctx, req.(*ListReceiptsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VaultService_Airdrop_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AirdropRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServiceServer).Airdrop(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VaultService_Airdrop_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServiceServer).Airdrop(ctx, req.(*AirdropRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// VaultService_ServiceDesc is the grpc.ServiceDesc for VaultService.
var VaultService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*VaultServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Ping",
			Handler:    _VaultService_Ping_Handler,
		},
		{
			MethodName: "Login",
			Handler:    _VaultService_Login_Handler,
		},
		{
			MethodName: "Addresses",
			Handler:    _VaultService_Addresses_Handler,
		},
		{
			MethodName: "InitializeVault",
			Handler:    _VaultService_InitializeVault_Handler,
		},
		{
			MethodName: "InitializeUser",
			Handler:    _VaultService_InitializeUser_Handler,
		},
		{
			MethodName: "Deposit",
			Handler:    _VaultService_Deposit_Handler,
		},
		{
			MethodName: "Withdraw",
			Handler:    _VaultService_Withdraw_Handler,
		},
		{
			MethodName: "GetVault",
			Handler:    _VaultService_GetVault_Handler,
		},
		{
			MethodName: "GetUser",
			Handler:    _VaultService_GetUser_Handler,
		},
		{
			MethodName: "GetBalance",
			Handler:    _VaultService_GetBalance_Handler,
		},
		{
			MethodName: "ListReceipts",
			Handler:    _VaultService_ListReceipts_Handler,
		},
		{
			MethodName: "Airdrop",
			Handler:    _VaultService_Airdrop_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "gophvault/vault.cbor",
}
