// Package gateway maps backend endpoints onto typed calls. Every gateway
// goes through the shared client.Client.
package gateway

import (
	"context"
	"net/url"
	"strconv"

	"sklad/internal/adapter/http/client"
	"sklad/internal/domain/entities"
)

func idPath(prefix string, id int64, suffix ...string) string {
	p := prefix + strconv.FormatInt(id, 10)
	for _, s := range suffix {
		p += "/" + s
	}
	return p
}

func workerQuery(workerID int64) url.Values {
	return url.Values{"worker_id": {strconv.FormatInt(workerID, 10)}}
}

// postMessage posts to an action endpoint answering {"message": ...}.
func postMessage(ctx context.Context, c *client.Client, path string, query url.Values, body any) (string, error) {
	var m entities.Message
	if err := c.Post(ctx, path, query, body, &m); err != nil {
		return "", err
	}
	return m.Message, nil
}
