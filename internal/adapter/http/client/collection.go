package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"

	"sklad/internal/domain/entities"

	"github.com/pkg/errors"
)

var ErrUnexpectedShape = errors.New("unexpected collection shape")

type envelope[T any] struct {
	Items *[]T `json:"items"`
	Total *int `json:"total"`
}

// DecodePage normalizes the collection shapes the backend uses: a bare JSON
// array, a {"items": [...], "total": n} envelope, or null.
func DecodePage[T any](body []byte) (entities.Page[T], error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return entities.NewPage[T](nil, 0), nil
	}

	switch body[0] {
	case '[':
		var items []T
		if err := json.Unmarshal(body, &items); err != nil {
			return entities.Page[T]{}, errors.Wrap(err, "decode collection")
		}
		return entities.NewPage(items, len(items)), nil
	case '{':
		var env envelope[T]
		if err := json.Unmarshal(body, &env); err != nil {
			return entities.Page[T]{}, errors.Wrap(err, "decode collection")
		}
		if env.Items == nil {
			return entities.Page[T]{}, ErrUnexpectedShape
		}
		total := 0
		if env.Total != nil {
			total = *env.Total
		}
		return entities.NewPage(*env.Items, total), nil
	}
	return entities.Page[T]{}, ErrUnexpectedShape
}

// GetPage fetches a collection endpoint and normalizes it.
func GetPage[T any](ctx context.Context, c *Client, path string, query url.Values) (entities.Page[T], error) {
	resp, err := c.Do(ctx, Request{Method: "GET", Path: path, Query: query})
	if err != nil {
		return entities.Page[T]{}, err
	}
	if resp.Empty() {
		return entities.NewPage[T](nil, 0), nil
	}
	return DecodePage[T](resp.Body)
}
