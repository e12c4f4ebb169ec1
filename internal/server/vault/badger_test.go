package vault

import (
	"testing"

	"github.com/dmitrijs2005/gophvault/internal/logging"
	"github.com/dmitrijs2005/gophvault/internal/server/store"
	"github.com/stretchr/testify/require"
)

func openBadger(t *testing.T) store.Store {
	t.Helper()
	s, err := store.OpenBadger("", logging.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}
