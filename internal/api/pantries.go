package api

import (
	"context"
	"fmt"

	"github.com/grocey/grocey-cli/internal/model"
)

type PantriesClient struct {
	c *Client
}

type PantryRequest struct {
	Name     string          `json:"name"`
	Metadata *model.Metadata `json:"metadata,omitempty"`
}

func (pc *PantriesClient) Create(ctx context.Context, req PantryRequest) (*model.Pantry, error) {
	var p model.Pantry
	if err := pc.c.Post(ctx, "/pantries", true, req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (pc *PantriesClient) Get(ctx context.Context, id int64) (*model.Pantry, error) {
	var p model.Pantry
	if err := pc.c.Get(ctx, fmt.Sprintf("/pantries/%d", id), true, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (pc *PantriesClient) List(ctx context.Context) ([]model.Pantry, *Pagination, error) {
	return getList[model.Pantry](ctx, pc.c, "/pantries", true)
}

func (pc *PantriesClient) Update(ctx context.Context, id int64, req PantryRequest) (*model.Pantry, error) {
	var p model.Pantry
	if err := pc.c.Put(ctx, fmt.Sprintf("/pantries/%d", id), true, req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (pc *PantriesClient) Delete(ctx context.Context, id int64) error {
	return pc.c.Delete(ctx, fmt.Sprintf("/pantries/%d", id), true)
}

// Share grants another user access to the pantry, addressed by email.
func (pc *PantriesClient) Share(ctx context.Context, id int64, email string) (*model.Pantry, error) {
	var p model.Pantry
	if err := pc.c.Post(ctx, fmt.Sprintf("/pantries/%d/share", id), true, shareRequest{Email: email}, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Unshare revokes a user's access to the pantry.
func (pc *PantriesClient) Unshare(ctx context.Context, id, userID int64) error {
	return pc.c.Delete(ctx, fmt.Sprintf("/pantries/%d/share/%d", id, userID), true)
}
