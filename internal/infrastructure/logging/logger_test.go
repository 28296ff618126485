package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("invalid level", func(t *testing.T) {
		_, _, err := New("loud", "", false)
		require.Error(t, err)
	})

	t.Run("writes scoped entries to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sklad.log")
		logger, closer, err := New("debug", path, false)
		require.NoError(t, err)

		Scoped(logger, "client").WithField("status", 401).Info("unauthorized")
		require.NoError(t, closer.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		line := string(data)
		assert.True(t, strings.Contains(line, "scope=client"), line)
		assert.True(t, strings.Contains(line, "status=401"), line)
	})

	t.Run("nil logger is tolerated", func(t *testing.T) {
		Scoped(nil, "x").Info("dropped")
	})
}
