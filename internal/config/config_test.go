package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("SKLAD_CREDENTIALS_PATH", "/tmp/sklad-test/creds.json")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "http://127.0.0.1:8000", cfg.APIURL)
		assert.Equal(t, 300*time.Millisecond, cfg.SearchDebounce)
		assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
		assert.Equal(t, CredentialStoreFile, cfg.CredentialStore)
		assert.Equal(t, cfg.APIURL, cfg.PublicURL)
		assert.False(t, cfg.SMTP.Enabled())
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("SKLAD_API_URL", "https://api.example.com/ ")
		t.Setenv("SKLAD_PAGE_SIZE", "20")
		t.Setenv("SKLAD_SMTP_HOST", "smtp.example.com")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "https://api.example.com", cfg.APIURL)
		assert.Equal(t, 20, cfg.PageSize)
		assert.True(t, cfg.SMTP.Enabled())
		assert.Equal(t, 587, cfg.SMTP.Port)
	})

	t.Run("unknown credential store", func(t *testing.T) {
		t.Setenv("SKLAD_CREDENTIAL_STORE", "redis")

		_, err := Load()
		require.Error(t, err)
	})

	t.Run("profiles keep separate session files", func(t *testing.T) {
		t.Setenv("SKLAD_CREDENTIALS_PATH", "/tmp/sklad-test/credentials.json")

		cfg, err := Load()
		require.NoError(t, err)
		def, err := cfg.CredentialFile()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/sklad-test/credentials.json", def)

		cfg.Profile = "b"
		b, err := cfg.CredentialFile()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/sklad-test/credentials-b.json", b)
		assert.NotEqual(t, def, b)
	})

	t.Run("profile with a path separator", func(t *testing.T) {
		t.Setenv("SKLAD_PROFILE", "../other")

		_, err := Load()
		require.Error(t, err)
	})
}
