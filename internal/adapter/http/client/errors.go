package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"sklad/pkg"

	"github.com/pkg/errors"
)

var (
	ErrUnauthorized = errors.New("session expired or invalid, please log in again")
	ErrTransport    = errors.New("backend is unreachable")
	ErrBodyTooLarge = errors.New("backend response is too large")
)

const (
	codeUnauthorized = "UNAUTHORIZED"
	codeBadRequest   = "BAD_REQUEST"
	codeNotFound     = "NOT_FOUND"
	codeConflict     = "CONFLICT"
	codeValidation   = "VALIDATION_ERROR"
	codeServer       = "SERVER_ERROR"
	codeHTTP         = "HTTP_ERROR"
)

func codeFor(status int) string {
	switch {
	case status == http.StatusUnauthorized:
		return codeUnauthorized
	case status == http.StatusBadRequest:
		return codeBadRequest
	case status == http.StatusNotFound:
		return codeNotFound
	case status == http.StatusConflict:
		return codeConflict
	case status == http.StatusUnprocessableEntity:
		return codeValidation
	case status >= 500:
		return codeServer
	default:
		return codeHTTP
	}
}

func newAPIError(status int, body []byte) *pkg.AppError {
	msg := extractMessage(body)
	if msg == "" {
		msg = fmt.Sprintf("HTTP %d: %s", status, http.StatusText(status))
	}
	return pkg.NewDomainErrorSimple(codeFor(status), msg, status)
}

// IsUnauthorized reports whether err came from a rejected credential.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// ExtractMessage returns the normalized backend message of an error body.
func ExtractMessage(body []byte) string {
	return extractMessage(body)
}

// extractMessage turns any error body the backend produces into a single
// line. Known shapes:
//
//	{"detail": "text"}
//	{"detail": [{"loc": ["body", "quantity"], "msg": "..."}]}
//	{"detail": {"message": "..."}}
//	{"message": "..."} / {"error": "..."}
//	[{"loc": [...], "msg": "..."}]
//
// Anything else yields "".
func extractMessage(body []byte) string {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return ""
	}
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return ""
	}
	return messageFrom(v)
}

func messageFrom(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case []any:
		return validationMessage(t)
	case map[string]any:
		for _, key := range []string{"detail", "message", "error", "msg"} {
			if inner, ok := t[key]; ok {
				if msg := messageFrom(inner); msg != "" {
					return msg
				}
			}
		}
	}
	return ""
}

func validationMessage(items []any) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		obj, ok := it.(map[string]any)
		if !ok {
			if s := messageFrom(it); s != "" {
				parts = append(parts, s)
			}
			continue
		}
		msg, _ := obj["msg"].(string)
		if msg == "" {
			msg = messageFrom(obj)
		}
		if loc := location(obj["loc"]); loc != "" {
			msg = loc + ": " + msg
		}
		if msg != "" {
			parts = append(parts, msg)
		}
	}
	return strings.Join(parts, "; ")
}

func location(v any) string {
	raw, ok := v.([]any)
	if !ok {
		return ""
	}
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		s := fmt.Sprint(p)
		if s == "body" || s == "query" || s == "path" {
			continue
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ".")
}
