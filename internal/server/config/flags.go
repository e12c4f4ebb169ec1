package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/gophvault/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-m string   metrics/health bind address
//	-k string   storage backend: memory, badger or postgres
//	-d string   PostgreSQL DSN
//	-f string   badger data directory
//	-i string   program id (base58)
//	-s string   token secret
//	-t int      access token validity, minutes
//	-w int      login max skew, seconds
//	-airdrop    enable the development faucet
//	-x int      derivation cache size
//	-cron string audit schedule
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-l string   log level
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with -c and -env-file.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-a", "-m", "-k", "-d", "-f", "-i", "-s", "-t", "-w", "-airdrop", "-x", "-cron",
		"-u", "-p", "-b", "-g", "-e", "-l",
	}, "-airdrop")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.MetricsAddr, "m", config.MetricsAddr, "address and port to serve metrics")
	fs.StringVar(&config.StorageBackend, "k", config.StorageBackend, "storage backend")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.BadgerPath, "f", config.BadgerPath, "badger data directory")
	fs.StringVar(&config.ProgramID, "i", config.ProgramID, "program id")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")
	loginMaxSkew := fs.Int("w", int(config.LoginMaxSkew.Seconds()), "login_max_skew (in seconds)")

	fs.BoolVar(&config.AllowAirdrop, "airdrop", config.AllowAirdrop, "enable airdrop")
	fs.IntVar(&config.DeriveCacheSize, "x", config.DeriveCacheSize, "derivation cache size")
	fs.StringVar(&config.AuditSchedule, "cron", config.AuditSchedule, "audit schedule")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 root bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 root region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
	config.LoginMaxSkew = time.Duration(*loginMaxSkew) * time.Second
}
