// Package client is the Go client library for the gophvault server.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     login, vault and user initialization, deposit, withdraw and the read
//     queries.
//  2. A concrete gRPC implementation (see GRPCClient) that holds the
//     depositor's ed25519 key, signs login proofs, injects the access token
//     via an interceptor, logs in again when the token expires, and maps gRPC
//     status codes back to the typed errors of package common.
//
// # Error Handling
//
// Vault errors are returned so that errors.Is matches the same sentinels the
// server produced (common.ErrInsufficientDepositedFunds and friends).
// Transport conditions are exposed as ErrUnavailable and ErrUnauthorized.
//
// Concurrency & Contexts
//
// GRPCClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation/timeouts.
package client
