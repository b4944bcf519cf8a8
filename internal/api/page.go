package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// Pagination is the metadata block of an enveloped collection response.
type Pagination struct {
	Page       int `json:"page"`
	PerPage    int `json:"perPage"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type envelope[T any] struct {
	Data       []T         `json:"data"`
	Pagination *Pagination `json:"pagination"`
}

// getList fetches a collection endpoint and normalizes the two response
// shapes the API uses: a bare JSON array, or a {data, pagination} envelope.
// Pagination is nil for bare arrays.
func getList[T any](ctx context.Context, c *Client, path string, auth bool) ([]T, *Pagination, error) {
	var raw json.RawMessage
	if err := c.Get(ctx, path, auth, &raw); err != nil {
		return nil, nil, err
	}
	return normalizeList[T](raw)
}

func normalizeList[T any](raw []byte) ([]T, *Pagination, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, nil, nil
	}

	if trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, nil, fmt.Errorf("decode collection: %w", err)
		}
		return items, nil, nil
	}

	var env envelope[T]
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, nil, fmt.Errorf("decode collection envelope: %w", err)
	}
	return env.Data, env.Pagination, nil
}
