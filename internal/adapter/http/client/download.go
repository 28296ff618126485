package client

import (
	"context"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strings"
)

// File is a binary document produced by the backend (contracts, proposals).
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Download fetches a binary endpoint. The file name comes from
// Content-Disposition, falling back to fallbackName.
func (c *Client) Download(ctx context.Context, p string, query url.Values, fallbackName string) (File, error) {
	resp, err := c.Do(ctx, Request{Method: http.MethodGet, Path: p, Query: query})
	if err != nil {
		return File{}, err
	}
	return File{
		Name:        fileName(resp.Header.Get("Content-Disposition"), fallbackName),
		ContentType: resp.Header.Get("Content-Type"),
		Data:        resp.Body,
	}, nil
}

func fileName(disposition, fallback string) string {
	if disposition == "" {
		return fallback
	}
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return fallback
	}
	name := params["filename"]
	if name == "" {
		return fallback
	}
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" {
		return fallback
	}
	return name
}
