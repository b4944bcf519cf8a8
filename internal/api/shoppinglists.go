package api

import (
	"context"
	"fmt"

	"github.com/grocey/grocey-cli/internal/model"
)

type ShoppingListsClient struct {
	c *Client
}

type ShoppingListRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Recurring   bool            `json:"recurring"`
	Metadata    *model.Metadata `json:"metadata,omitempty"`
}

type shareRequest struct {
	Email string `json:"email"`
}

func (sc *ShoppingListsClient) Create(ctx context.Context, req ShoppingListRequest) (*model.ShoppingList, error) {
	var list model.ShoppingList
	if err := sc.c.Post(ctx, "/shopping-lists", true, req, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (sc *ShoppingListsClient) Get(ctx context.Context, id int64) (*model.ShoppingList, error) {
	var list model.ShoppingList
	if err := sc.c.Get(ctx, fmt.Sprintf("/shopping-lists/%d", id), true, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (sc *ShoppingListsClient) List(ctx context.Context) ([]model.ShoppingList, *Pagination, error) {
	return getList[model.ShoppingList](ctx, sc.c, "/shopping-lists", true)
}

func (sc *ShoppingListsClient) Update(ctx context.Context, id int64, req ShoppingListRequest) (*model.ShoppingList, error) {
	var list model.ShoppingList
	if err := sc.c.Put(ctx, fmt.Sprintf("/shopping-lists/%d", id), true, req, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (sc *ShoppingListsClient) Delete(ctx context.Context, id int64) error {
	return sc.c.Delete(ctx, fmt.Sprintf("/shopping-lists/%d", id), true)
}

// Share grants another user access to the list, addressed by email.
func (sc *ShoppingListsClient) Share(ctx context.Context, id int64, email string) (*model.ShoppingList, error) {
	var list model.ShoppingList
	if err := sc.c.Post(ctx, fmt.Sprintf("/shopping-lists/%d/share", id), true, shareRequest{Email: email}, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Unshare revokes a user's access to the list.
func (sc *ShoppingListsClient) Unshare(ctx context.Context, id, userID int64) error {
	return sc.c.Delete(ctx, fmt.Sprintf("/shopping-lists/%d/share/%d", id, userID), true)
}

// Purchase marks the whole list as bought; the server stamps lastPurchasedAt
// and, for recurring lists, resets the items.
func (sc *ShoppingListsClient) Purchase(ctx context.Context, id int64) (*model.ShoppingList, error) {
	var list model.ShoppingList
	if err := sc.c.Post(ctx, fmt.Sprintf("/shopping-lists/%d/purchase", id), true, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}
