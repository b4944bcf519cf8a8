package api

import (
	"context"
	"errors"
	"fmt"

	"github.com/grocey/grocey-cli/internal/model"
)

// ErrReservedCategory is returned for attempts to rename or delete the
// seeded Miscellaneous category. The server would refuse anyway; failing
// locally gives the caller a clearer message.
var ErrReservedCategory = errors.New("the Miscellaneous category cannot be renamed or deleted")

type CategoriesClient struct {
	c *Client
}

type CategoryRequest struct {
	Name     string          `json:"name"`
	Metadata *model.Metadata `json:"metadata,omitempty"`
}

func (cc *CategoriesClient) Create(ctx context.Context, req CategoryRequest) (*model.Category, error) {
	var cat model.Category
	if err := cc.c.Post(ctx, "/categories", true, req, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (cc *CategoriesClient) Get(ctx context.Context, id int64) (*model.Category, error) {
	var cat model.Category
	if err := cc.c.Get(ctx, fmt.Sprintf("/categories/%d", id), true, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (cc *CategoriesClient) List(ctx context.Context) ([]model.Category, *Pagination, error) {
	return getList[model.Category](ctx, cc.c, "/categories", true)
}

func (cc *CategoriesClient) Update(ctx context.Context, id int64, req CategoryRequest) (*model.Category, error) {
	if id == model.MiscellaneousCategoryID && req.Name != "" && req.Name != model.MiscellaneousCategoryName {
		return nil, ErrReservedCategory
	}
	var cat model.Category
	if err := cc.c.Put(ctx, fmt.Sprintf("/categories/%d", id), true, req, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (cc *CategoriesClient) Delete(ctx context.Context, id int64) error {
	if id == model.MiscellaneousCategoryID {
		return ErrReservedCategory
	}
	return cc.c.Delete(ctx, fmt.Sprintf("/categories/%d", id), true)
}
