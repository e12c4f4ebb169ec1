package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseEnv(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	t.Run("environment variables", func(t *testing.T) {
		t.Setenv("GOPHVAULT_STORAGE", "postgres")
		t.Setenv("GOPHVAULT_ACCESS_TOKEN_TTL", "2h")
		t.Setenv("GOPHVAULT_ALLOW_AIRDROP", "true")
		t.Setenv("GOPHVAULT_DERIVE_CACHE_SIZE", "16")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, "postgres", cfg.StorageBackend)
		assert.Equal(t, 2*time.Hour, cfg.AccessTokenValidityDuration)
		assert.True(t, cfg.AllowAirdrop)
		assert.Equal(t, 16, cfg.DeriveCacheSize)
		assert.Equal(t, ":50051", cfg.EndpointAddrGRPC)
	})

	t.Run("nothing set keeps values", func(t *testing.T) {
		cfg := &Config{EndpointAddrGRPC: ":1"}
		require.NotPanics(t, func() { parseEnv(cfg) })
		assert.Equal(t, ":1", cfg.EndpointAddrGRPC)
	})

	t.Run("env file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "vault.env")
		require.NoError(t, os.WriteFile(path, []byte("GOPHVAULT_S3_BUCKET=audit\n"), 0o600))
		t.Cleanup(func() { os.Unsetenv("GOPHVAULT_S3_BUCKET") })
		os.Args = []string{"testbin", "-env-file", path}

		cfg := &Config{}
		parseEnv(cfg)

		assert.Equal(t, "audit", cfg.S3Bucket)
	})

	t.Run("missing env file panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-env-file", filepath.Join(t.TempDir(), "absent.env")}
		require.Panics(t, func() { parseEnv(&Config{}) })
	})

	t.Run("invalid value panics", func(t *testing.T) {
		os.Args = []string{"testbin"}
		t.Setenv("GOPHVAULT_DERIVE_CACHE_SIZE", "many")
		require.Panics(t, func() { parseEnv(&Config{}) })
	})
}
