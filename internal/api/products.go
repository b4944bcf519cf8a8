package api

import (
	"context"
	"fmt"

	"github.com/grocey/grocey-cli/internal/model"
)

type ProductsClient struct {
	c *Client
}

// ProductRequest creates or replaces a product. Category is a reference by
// id; nil leaves the product uncategorized (the server files it under
// Miscellaneous).
type ProductRequest struct {
	Name     string          `json:"name"`
	Category *model.Ref      `json:"category,omitempty"`
	Metadata *model.Metadata `json:"metadata,omitempty"`
}

func (pc *ProductsClient) Create(ctx context.Context, req ProductRequest) (*model.Product, error) {
	var p model.Product
	if err := pc.c.Post(ctx, "/products", true, req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (pc *ProductsClient) Get(ctx context.Context, id int64) (*model.Product, error) {
	var p model.Product
	if err := pc.c.Get(ctx, fmt.Sprintf("/products/%d", id), true, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (pc *ProductsClient) List(ctx context.Context) ([]model.Product, *Pagination, error) {
	return getList[model.Product](ctx, pc.c, "/products", true)
}

func (pc *ProductsClient) Update(ctx context.Context, id int64, req ProductRequest) (*model.Product, error) {
	var p model.Product
	if err := pc.c.Put(ctx, fmt.Sprintf("/products/%d", id), true, req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (pc *ProductsClient) Delete(ctx context.Context, id int64) error {
	return pc.c.Delete(ctx, fmt.Sprintf("/products/%d", id), true)
}
