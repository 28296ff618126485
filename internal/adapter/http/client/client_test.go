package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"sklad/internal/adapter/persistence/repository"
	"sklad/internal/domain/entities"
	"sklad/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNavigator struct {
	mu    sync.Mutex
	paths []string
}

func (n *recordingNavigator) RedirectToLogin(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.paths = append(n.paths, path)
}

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *repository.CredentialMemoryRepository, *recordingNavigator) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	store := repository.NewCredentialMemoryRepository(entities.Credential{
		AccessToken: "secret",
		ExpiresAt:   time.Now().Add(time.Hour),
	})
	nav := &recordingNavigator{}
	c, err := New(Config{BaseURL: srv.URL, Credentials: store, Navigator: nav, Timeout: 5 * time.Second})
	require.NoError(t, err)
	return c, store, nav
}

func TestClient_Headers(t *testing.T) {
	t.Run("bearer token and json content type", func(t *testing.T) {
		c, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
			assert.Equal(t, "/products/", r.URL.Path)
			assert.Equal(t, "drill", r.URL.Query().Get("search"))
			_, _ = w.Write([]byte(`{"id": 1}`))
		})

		var out struct{ ID int64 }
		err := c.Get(context.Background(), "/products/", url.Values{"search": {"drill"}}, &out)
		require.NoError(t, err)
		assert.Equal(t, int64(1), out.ID)
	})

	t.Run("expired credential is not attached", func(t *testing.T) {
		c, store, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusNoContent)
		})
		_ = store.Save(context.Background(), entities.Credential{AccessToken: "old", ExpiresAt: time.Now().Add(-time.Minute)})

		require.NoError(t, c.Delete(context.Background(), "/workers/1", nil))
	})

	t.Run("multipart keeps its own content type", func(t *testing.T) {
		c, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))
			require.NoError(t, r.ParseMultipartForm(1<<20))
			assert.Equal(t, "to_stock", r.FormValue("mode"))
			f, hdr, err := r.FormFile("file")
			require.NoError(t, err)
			defer f.Close()
			data, _ := io.ReadAll(f)
			assert.Equal(t, "stock.xlsx", hdr.Filename)
			assert.Equal(t, "xlsx-bytes", string(data))
			_, _ = w.Write([]byte(`{"created": ["Труба"], "updated": []}`))
		})

		var report entities.ImportReport
		err := c.Upload(context.Background(), "/actions/universal-import/", Form{
			Fields: []Field{{Name: "mode", Value: "to_stock"}},
			File:   &FormFile{Field: "file", Name: "stock.xlsx", Content: strings.NewReader("xlsx-bytes")},
		}, &report)
		require.NoError(t, err)
		assert.Equal(t, []string{"Труба"}, report.Created)
	})
}

func TestClient_Unauthorized(t *testing.T) {
	t.Run("clears credential and redirects for any call", func(t *testing.T) {
		c, store, nav := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail": "Could not validate credentials"}`))
		})

		for _, call := range []func() error{
			func() error { return c.Get(context.Background(), "/estimates/", nil, nil) },
			func() error { return c.Post(context.Background(), "/estimates/3/complete", nil, nil, nil) },
		} {
			_ = store.Save(context.Background(), entities.Credential{AccessToken: "again"})
			err := call()
			require.Error(t, err)
			assert.True(t, IsUnauthorized(err))
			assert.Equal(t, http.StatusUnauthorized, pkg.StatusOf(err))

			cred, _ := store.Load(context.Background())
			assert.True(t, cred.Empty())
		}
		assert.Equal(t, []string{LoginPath, LoginPath}, nav.paths)
	})

	t.Run("anonymous requests do not redirect", func(t *testing.T) {
		c, store, nav := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail": "Incorrect username or password"}`))
		})

		err := c.Call(context.Background(), Request{Method: http.MethodPost, Path: "/token", Anonymous: true}, nil)
		require.Error(t, err)
		assert.False(t, IsUnauthorized(err))
		assert.Equal(t, "Incorrect username or password", err.Error())
		assert.Empty(t, nav.paths)
		cred, _ := store.Load(context.Background())
		assert.False(t, cred.Empty())
	})
}

func TestClient_ErrorNormalization(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"detail string", 400, `{"detail": "Недостаточно товара 'Труба'"}`, "Недостаточно товара 'Труба'"},
		{"detail validation list", 422, `{"detail": [{"loc": ["body", "quantity"], "msg": "field required"}, {"loc": ["query", "worker_id"], "msg": "not an int"}]}`, "quantity: field required; worker_id: not an int"},
		{"message field", 409, `{"message": "duplicate"}`, "duplicate"},
		{"nested detail object", 400, `{"detail": {"message": "nested"}}`, "nested"},
		{"bare array", 422, `[{"loc": ["items", 0], "msg": "empty"}]`, "items.0: empty"},
		{"html body", 502, `<html>bad gateway</html>`, "HTTP 502: Bad Gateway"},
		{"empty body", 500, ``, "HTTP 500: Internal Server Error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})
			err := c.Get(context.Background(), "/x", nil, nil)
			require.Error(t, err)
			assert.Equal(t, tc.want, err.Error())
			assert.Equal(t, tc.status, pkg.StatusOf(err))
		})
	}
}

func TestClient_Transport(t *testing.T) {
	store := repository.NewCredentialMemoryRepository(entities.Credential{})
	c, err := New(Config{BaseURL: "http://127.0.0.1:1", Credentials: store, Timeout: time.Second})
	require.NoError(t, err)

	err = c.Get(context.Background(), "/products/", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestClient_BodyLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name": "` + strings.Repeat("x", 32) + `"}`))
	}))
	t.Cleanup(srv.Close)
	store := repository.NewCredentialMemoryRepository(entities.Credential{})

	t.Run("oversized body is an error, not a truncated read", func(t *testing.T) {
		c, err := New(Config{BaseURL: srv.URL, Credentials: store, MaxBodyBytes: 16})
		require.NoError(t, err)

		var out struct{ Name string }
		err = c.Get(context.Background(), "/products/1", nil, &out)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrBodyTooLarge)
		assert.Empty(t, out.Name)
	})

	t.Run("body exactly at the limit is read", func(t *testing.T) {
		c, err := New(Config{BaseURL: srv.URL, Credentials: store, MaxBodyBytes: 44})
		require.NoError(t, err)

		var out struct{ Name string }
		require.NoError(t, c.Get(context.Background(), "/products/1", nil, &out))
		assert.Len(t, out.Name, 32)
	})
}

func TestClient_New(t *testing.T) {
	_, err := New(Config{BaseURL: "not a url", Credentials: repository.NewCredentialMemoryRepository(entities.Credential{})})
	require.Error(t, err)

	_, err = New(Config{BaseURL: "http://localhost"})
	require.Error(t, err)
}

func TestClient_NoContent(t *testing.T) {
	c, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	out := map[string]any{"untouched": true}
	require.NoError(t, c.Delete(context.Background(), "/estimates/9", &out))
	assert.Equal(t, true, out["untouched"])
}

func TestDecodePage(t *testing.T) {
	t.Run("bare array", func(t *testing.T) {
		p, err := DecodePage[entities.Worker]([]byte(`[{"id":1,"name":"Иван"},{"id":2,"name":"Пётр"}]`))
		require.NoError(t, err)
		assert.Equal(t, 2, p.Total)
		assert.Equal(t, "Пётр", p.Items[1].Name)
	})

	t.Run("envelope", func(t *testing.T) {
		p, err := DecodePage[entities.Worker]([]byte(`{"total": 40, "items": [{"id":1}]}`))
		require.NoError(t, err)
		assert.Equal(t, 40, p.Total)
		assert.Len(t, p.Items, 1)
	})

	t.Run("empty bare array from search", func(t *testing.T) {
		p, err := DecodePage[entities.Movement]([]byte(`[]`))
		require.NoError(t, err)
		assert.True(t, p.Empty())
		assert.NotNil(t, p.Items)
	})

	t.Run("object without items", func(t *testing.T) {
		_, err := DecodePage[entities.Worker]([]byte(`{"detail": "x"}`))
		assert.ErrorIs(t, err, ErrUnexpectedShape)
	})

	t.Run("get page over http", func(t *testing.T) {
		c, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"total": 1, "items": []map[string]any{{"id": 5, "name": "Болт"}}})
		})
		p, err := GetPage[entities.Product](context.Background(), c, "/products/", nil)
		require.NoError(t, err)
		assert.Equal(t, "Болт", p.Items[0].Name)
	})
}

func TestDownload(t *testing.T) {
	c, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
		w.Header().Set("Content-Disposition", `attachment; filename="../contract_12.docx"`)
		_, _ = w.Write([]byte("PK..."))
	})

	f, err := c.Download(context.Background(), "/contracts/12/generate-docx", nil, "contract.docx")
	require.NoError(t, err)
	assert.Equal(t, "contract_12.docx", f.Name)
	assert.Equal(t, []byte("PK..."), f.Data)
	assert.Equal(t, "fallback.docx", fileName("", "fallback.docx"))
}
