// Package fakeapi is an in-memory stand-in for the warehouse backend. It
// serves the same routes and payload shapes, keeps its state in maps and
// records every request so tests can assert on the traffic the console
// produced.
package fakeapi

import (
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"sklad/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	DefaultUsername = "operator@example.com"
	DefaultPassword = "secret"
)

var (
	errNotAuthenticated = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Not authenticated", http.StatusUnauthorized)
	errBadCredentials   = pkg.NewDomainErrorSimple("LOGIN_FAILED", "Неверный email или пароль", http.StatusUnauthorized)
	errNotFound         = pkg.NewDomainErrorSimple("NOT_FOUND", "Объект не найден", http.StatusNotFound)
	errInvalidPayload   = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusUnprocessableEntity)
)

// Recorded is one request the server received.
type Recorded struct {
	Method string
	Path   string
	Query  string
	Body   string
	Auth   string
}

type stub struct {
	status int
	body   any
}

type Options struct {
	Username string
	Password string
	TokenTTL time.Duration
	Now      func() time.Time
}

// Server is safe for concurrent use; every handler runs under mu.
type Server struct {
	engine *gin.Engine
	opts   Options
	secret []byte

	mu        sync.Mutex
	requests  []Recorded
	overrides map[string]stub
	store     *store
}

func New(opts Options) *Server {
	gin.SetMode(gin.TestMode)
	if opts.Username == "" {
		opts.Username = DefaultUsername
	}
	if opts.Password == "" {
		opts.Password = DefaultPassword
	}
	if opts.TokenTTL == 0 {
		opts.TokenTTL = time.Hour
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	s := &Server{
		engine:    gin.New(),
		opts:      opts,
		secret:    []byte("fakeapi-signing-key"),
		overrides: map[string]stub{},
		store:     newStore(opts.Now),
	}
	s.engine.Use(gin.Recovery(), s.record, s.override, s.authenticate)
	registerRoutes(s.engine, s)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}

// Override makes method+path answer status and body instead of the
// in-memory behaviour until Reset is called. Body may be a string, which is
// written raw.
func (s *Server) Override(method, path string, status int, body any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[method+" "+path] = stub{status: status, body: body}
}

func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides = map[string]stub{}
	s.requests = nil
}

func (s *Server) Requests() []Recorded {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Recorded(nil), s.requests...)
}

// Count returns how many requests hit method+path.
func (s *Server) Count(method, path string) int {
	n := 0
	for _, r := range s.Requests() {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

// IssueToken returns a bearer token the server accepts, bypassing /token.
func (s *Server) IssueToken() (string, time.Time, error) {
	exp := s.opts.Now().Add(s.opts.TokenTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   s.opts.Username,
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	signed, err := token.SignedString(s.secret)
	return signed, exp, err
}

func (s *Server) record(c *gin.Context) {
	var body []byte
	if c.Request.Body != nil && !strings.HasPrefix(c.ContentType(), "multipart/") {
		body, _ = io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(strings.NewReader(string(body)))
	}
	s.mu.Lock()
	s.requests = append(s.requests, Recorded{
		Method: c.Request.Method,
		Path:   c.Request.URL.Path,
		Query:  c.Request.URL.RawQuery,
		Body:   string(body),
		Auth:   c.GetHeader("Authorization"),
	})
	s.mu.Unlock()
	c.Next()
}

func (s *Server) override(c *gin.Context) {
	s.mu.Lock()
	st, ok := s.overrides[c.Request.Method+" "+c.Request.URL.Path]
	s.mu.Unlock()
	if !ok {
		c.Next()
		return
	}
	switch b := st.body.(type) {
	case nil:
		c.Status(st.status)
	case string:
		c.Data(st.status, "text/plain; charset=utf-8", []byte(b))
	default:
		c.JSON(st.status, b)
	}
	c.Abort()
}

func (s *Server) authenticate(c *gin.Context) {
	if c.Request.URL.Path == "/token" {
		c.Next()
		return
	}
	raw := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if raw == "" || !s.validToken(raw) {
		abort(c, errNotAuthenticated)
		return
	}
	c.Next()
}

func (s *Server) validToken(raw string) bool {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.opts.Now),
	)
	_, err := parser.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	return err == nil
}

func (s *Server) login(c *gin.Context) {
	if c.PostForm("grant_type") != "password" {
		abort(c, errInvalidPayload)
		return
	}
	if c.PostForm("username") != s.opts.Username || c.PostForm("password") != s.opts.Password {
		abort(c, errBadCredentials)
		return
	}
	token, _, err := s.IssueToken()
	if err != nil {
		abort(c, pkg.NewDomainError("INTERNAL_ERROR", "token signing failed", err, http.StatusInternalServerError))
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
}

// locked runs h with the store locked.
func (s *Server) locked(h func(c *gin.Context, st *store)) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()
		h(c, s.store)
	}
}

func abort(c *gin.Context, err *pkg.AppError) {
	c.AbortWithStatusJSON(err.HTTPStatus, err.ToHTTPError())
}

func detail(status int, msg string) *pkg.AppError {
	return pkg.NewDomainErrorSimple("", msg, status)
}
