// Package client is the single chokepoint between the console and the
// warehouse backend. Every backend call goes through Client.Do, which owns
// authentication, payload encoding and error normalization.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"sklad/internal/domain/entities"
	"sklad/internal/infrastructure/logging"
	"sklad/internal/usecase/interfaces"
	"sklad/pkg"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// LoginPath is where the operator is sent after the backend rejects the
// stored credential.
const LoginPath = "/login"

const (
	headerRequestID     = "X-Request-ID"
	// DefaultMaxBodyBytes caps a response body read into memory.
	DefaultMaxBodyBytes = 64 << 20
)

type Config struct {
	BaseURL      string
	Timeout      time.Duration
	HTTPClient   *http.Client
	Credentials  interfaces.ICredentialStore
	Navigator    interfaces.INavigator
	Logger       log.FieldLogger
	Now          func() time.Time
	// MaxBodyBytes defaults to DefaultMaxBodyBytes.
	MaxBodyBytes int64
}

type Client struct {
	baseURL *url.URL
	http    *http.Client
	creds   interfaces.ICredentialStore
	nav     interfaces.INavigator
	log     log.FieldLogger
	now     func() time.Time
	maxBody int64
}

func New(cfg Config) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, errors.Errorf("invalid api url %q", cfg.BaseURL)
	}
	if cfg.Credentials == nil {
		return nil, errors.New("credential store is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}

	return &Client{
		baseURL: base,
		http:    httpClient,
		creds:   cfg.Credentials,
		nav:     cfg.Navigator,
		log:     logging.Scoped(cfg.Logger, "client"),
		now:     now,
		maxBody: maxBody,
	}, nil
}

func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// HTTPClient is the transport shared with auxiliary flows such as the
// OAuth2 password grant.
func (c *Client) HTTPClient() *http.Client {
	return c.http
}

// Request describes one backend call. Body is sent as JSON unless Form is
// set. Anonymous requests carry no credential and never trigger the
// unauthorized flow (used by login itself).
type Request struct {
	Method    string
	Path      string
	Query     url.Values
	Body      any
	Form      *Form
	Anonymous bool
}

type Form struct {
	Fields []Field
	File   *FormFile
}

type Field struct {
	Name  string
	Value string
}

type FormFile struct {
	Field   string
	Name    string
	Content io.Reader
}

type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// Empty is true for 204 responses and blank bodies.
func (r *Response) Empty() bool {
	return r.Status == http.StatusNoContent || len(bytes.TrimSpace(r.Body)) == 0
}

// Do performs the call and returns the raw response for 2xx statuses.
// Any other status becomes a *pkg.AppError carrying the normalized backend
// message. A 401 clears the stored credential and redirects to login
// before the error is returned.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	httpReq, err := c.newHTTPRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	requestID := httpReq.Header.Get(headerRequestID)
	logger := c.log.WithFields(log.Fields{
		"method":     req.Method,
		"path":       req.Path,
		"request_id": requestID,
	})

	started := c.now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		logger.WithError(err).Warn("transport failure")
		return nil, errors.Wrapf(ErrTransport, "%s %s: %v", req.Method, req.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, errors.Wrapf(ErrTransport, "read %s %s: %v", req.Method, req.Path, err)
	}
	if int64(len(body)) > c.maxBody {
		logger.WithField("limit", c.maxBody).Warn("response body too large")
		return nil, errors.Wrapf(ErrBodyTooLarge, "%s %s: more than %d bytes", req.Method, req.Path, c.maxBody)
	}
	logger = logger.WithFields(log.Fields{"status": resp.StatusCode, "elapsed": c.now().Sub(started)})

	if resp.StatusCode == http.StatusUnauthorized && !req.Anonymous {
		logger.Info("credential rejected")
		return nil, c.unauthorized(ctx, body)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		appErr := newAPIError(resp.StatusCode, body)
		logger.WithField("detail", appErr.Message).Debug("request failed")
		return nil, appErr
	}

	logger.Debug("request done")
	return &Response{Status: resp.StatusCode, Header: resp.Header, Body: body}, nil
}

// Call performs the request and decodes a JSON body into out. A nil out, a
// 204 or an empty body leave out untouched.
func (c *Client) Call(ctx context.Context, req Request, out any) error {
	resp, err := c.Do(ctx, req)
	if err != nil {
		return err
	}
	return decode(resp, out)
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Call(ctx, Request{Method: http.MethodGet, Path: path, Query: query}, out)
}

func (c *Client) Post(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.Call(ctx, Request{Method: http.MethodPost, Path: path, Query: query, Body: body}, out)
}

func (c *Client) Patch(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.Call(ctx, Request{Method: http.MethodPatch, Path: path, Query: query, Body: body}, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Call(ctx, Request{Method: http.MethodDelete, Path: path}, out)
}

// Upload sends a multipart form.
func (c *Client) Upload(ctx context.Context, path string, form Form, out any) error {
	return c.Call(ctx, Request{Method: http.MethodPost, Path: path, Form: &form}, out)
}

func (c *Client) newHTTPRequest(ctx context.Context, req Request) (*http.Request, error) {
	u := *c.baseURL
	u.Path = c.baseURL.Path + "/" + strings.TrimLeft(req.Path, "/")
	if len(req.Query) > 0 {
		u.RawQuery = req.Query.Encode()
	}

	var (
		body        io.Reader
		contentType = "application/json"
	)
	switch {
	case req.Form != nil:
		buf, ct, err := encodeForm(*req.Form)
		if err != nil {
			return nil, err
		}
		body, contentType = buf, ct
	case req.Body != nil:
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, errors.Wrap(err, "encode request body")
		}
		body = bytes.NewReader(payload)
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(headerRequestID, uuid.NewString())

	if !req.Anonymous {
		cred, err := c.creds.Load(ctx)
		if err != nil {
			c.log.WithError(err).Warn("credential store unreadable")
		} else if cred.Valid(c.now()) {
			httpReq.Header.Set("Authorization", "Bearer "+cred.AccessToken)
		}
	}
	return httpReq, nil
}

func (c *Client) unauthorized(ctx context.Context, body []byte) error {
	if err := c.creds.Clear(ctx); err != nil {
		c.log.WithError(err).Warn("failed to clear credential")
	}
	if c.nav != nil {
		c.nav.RedirectToLogin(LoginPath)
	}
	msg := ErrUnauthorized.Error()
	if detail := extractMessage(body); detail != "" {
		msg = detail
	}
	return pkg.NewDomainError(codeUnauthorized, msg, ErrUnauthorized, http.StatusUnauthorized)
}

func encodeForm(form Form) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for _, f := range form.Fields {
		if err := w.WriteField(f.Name, f.Value); err != nil {
			return nil, "", errors.Wrapf(err, "write form field %s", f.Name)
		}
	}
	if form.File != nil {
		part, err := w.CreateFormFile(form.File.Field, form.File.Name)
		if err != nil {
			return nil, "", errors.Wrap(err, "create form file")
		}
		if _, err := io.Copy(part, form.File.Content); err != nil {
			return nil, "", errors.Wrap(err, "copy form file")
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", errors.Wrap(err, "close form")
	}
	return buf, w.FormDataContentType(), nil
}

func decode(resp *Response, out any) error {
	if out == nil || resp.Empty() {
		return nil
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return errors.Wrap(err, "decode response")
	}
	return nil
}

// Now exposes the client's clock so collaborators agree on expiry checks.
func (c *Client) Now() time.Time {
	return c.now()
}

// Credential returns the currently stored credential, if any.
func (c *Client) Credential(ctx context.Context) (entities.Credential, error) {
	return c.creds.Load(ctx)
}
