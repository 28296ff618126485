package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"sklad/internal/adapter/http/fakeapi"
	"sklad/internal/domain/entities"
	"sklad/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cliHarness struct {
	t   *testing.T
	api *fakeapi.Server
}

func newCLIHarness(t *testing.T) *cliHarness {
	t.Helper()
	api := fakeapi.New(fakeapi.Options{})
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	t.Setenv("SKLAD_API_URL", srv.URL)
	t.Setenv("SKLAD_CREDENTIAL_STORE", "file")
	t.Setenv("SKLAD_CREDENTIALS_PATH", filepath.Join(t.TempDir(), "credentials.json"))
	t.Setenv("SKLAD_LOG_LEVEL", "error")
	t.Setenv("SKLAD_LOG_FILE", filepath.Join(t.TempDir(), "sklad.log"))
	t.Setenv("SKLAD_USERNAME", "")
	t.Setenv("SKLAD_PASSWORD", "")
	return &cliHarness{t: t, api: api}
}

// run executes one sklad invocation and returns what it wrote to stdout
// and stderr.
func (h *cliHarness) run(stdin string, args ...string) (string, string, error) {
	h.t.Helper()
	var out, errOut bytes.Buffer
	app := newApp()
	app.Reader = strings.NewReader(stdin)
	app.Writer = &out
	app.ErrWriter = &errOut
	err := app.RunContext(context.Background(), append([]string{"sklad"}, args...))
	return out.String(), errOut.String(), err
}

func (h *cliHarness) login() {
	h.t.Helper()
	_, stderr, err := h.run("", "login", "--username", fakeapi.DefaultUsername, "--password", fakeapi.DefaultPassword)
	require.NoError(h.t, err)
	require.Contains(h.t, stderr, "Signed in as "+fakeapi.DefaultUsername)
}

func TestCLI_Auth(t *testing.T) {
	t.Run("protected command before login", func(t *testing.T) {
		h := newCLIHarness(t)
		_, _, err := h.run("", "products", "list")
		assert.ErrorIs(t, err, usecase.ErrNotSignedIn)
		assert.Zero(t, h.api.Count("GET", "/products/"))
	})

	t.Run("wrong password stores nothing", func(t *testing.T) {
		h := newCLIHarness(t)
		_, _, err := h.run("", "login", "--username", fakeapi.DefaultUsername, "--password", "nope")
		require.Error(t, err)

		_, _, err = h.run("", "status")
		assert.ErrorIs(t, err, usecase.ErrNotSignedIn)
	})

	t.Run("logout forgets the session", func(t *testing.T) {
		h := newCLIHarness(t)
		h.login()

		_, _, err := h.run("", "logout")
		require.NoError(t, err)
		_, _, err = h.run("", "products", "list")
		assert.ErrorIs(t, err, usecase.ErrNotSignedIn)
	})
}

func TestCLI_Profiles(t *testing.T) {
	h := newCLIHarness(t)
	_, stderr, err := h.run("", "--profile", "night", "login", "--username", fakeapi.DefaultUsername, "--password", fakeapi.DefaultPassword)
	require.NoError(t, err)
	require.Contains(t, stderr, "Signed in as")

	_, _, err = h.run("", "products", "list")
	assert.ErrorIs(t, err, usecase.ErrNotSignedIn)

	_, _, err = h.run("", "--profile", "night", "products", "list")
	require.NoError(t, err)

	h.login()
	_, _, err = h.run("", "--profile", "night", "logout")
	require.NoError(t, err)
	_, _, err = h.run("", "products", "list")
	assert.NoError(t, err)
}

func TestCLI_Products(t *testing.T) {
	h := newCLIHarness(t)
	h.login()

	stdout, _, err := h.run("", "products", "create", "--name", "Труба ПНД 32", "--sku", "PND-32", "--retail-price", "120", "--stock", "10", "--min-stock", "2")
	require.NoError(t, err)
	assert.Contains(t, stdout, "PND-32")

	stdout, _, err = h.run("", "products", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Труба ПНД 32")
	assert.Contains(t, stdout, "1 total")

	t.Run("declined delete keeps the row", func(t *testing.T) {
		stdout, stderr, err := h.run("n\n", "products", "delete", "1")
		require.NoError(t, err)
		assert.Contains(t, stderr, "Delete product Труба ПНД 32?")
		assert.Contains(t, stderr, "Cancelled.")
		assert.Contains(t, stdout, "Труба ПНД 32")
		assert.Zero(t, h.api.Count("DELETE", "/products/1"))

		p, ok := h.api.Product(1)
		require.True(t, ok)
		assert.False(t, p.IsDeleted)
	})

	t.Run("confirmed delete removes the row", func(t *testing.T) {
		stdout, _, err := h.run("", "--yes", "products", "delete", "1")
		require.NoError(t, err)
		assert.Contains(t, stdout, "No products match.")

		p, ok := h.api.Product(1)
		require.True(t, ok)
		assert.True(t, p.IsDeleted)
	})

	t.Run("restore brings it back", func(t *testing.T) {
		_, _, err := h.run("", "products", "restore", "1")
		require.NoError(t, err)

		stdout, _, err := h.run("", "products", "list")
		require.NoError(t, err)
		assert.Contains(t, stdout, "Труба ПНД 32")
	})

	t.Run("bad id", func(t *testing.T) {
		_, _, err := h.run("", "products", "restore", "x")
		assert.EqualError(t, err, `"x" is not an id`)
	})
}

func TestCLI_UnauthorizedMidSession(t *testing.T) {
	h := newCLIHarness(t)
	h.login()
	h.api.Override("GET", "/products/", 401, map[string]string{"detail": "expired"})

	_, stderr, err := h.run("", "products", "list")
	require.Error(t, err)
	assert.Contains(t, stderr, "sklad login")
}

func TestParseItems(t *testing.T) {
	t.Run("quantity and price", func(t *testing.T) {
		items, err := parseItems([]string{"3:2,5", "7:1:99.9"})
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, int64(3), items[0].ProductID)
		assert.Equal(t, 2.5, items[0].Quantity)
		assert.Nil(t, items[0].UnitPrice)
		require.NotNil(t, items[1].UnitPrice)
		assert.Equal(t, 99.9, *items[1].UnitPrice)
	})

	for _, raw := range []string{"3", "3:1:2:4", "x:1", "3:many", "3:1:free"} {
		t.Run("rejects "+raw, func(t *testing.T) {
			_, err := parseItems([]string{raw})
			assert.Error(t, err)
		})
	}
}

func TestParseNumber(t *testing.T) {
	v, err := parseNumber(" 12,75 ")
	require.NoError(t, err)
	assert.Equal(t, 12.75, v)

	_, err = parseNumber("1 200")
	assert.EqualError(t, err, `"1 200" is not a number`)
}

func TestMovementAliases(t *testing.T) {
	for alias, want := range map[string]entities.MovementType{
		"income":    entities.MovementIncome,
		"write-off": entities.MovementWriteOffWorker,
	} {
		assert.Equal(t, want, movementAliases[alias], alias)
	}
}
