package api

import (
	"context"
	"fmt"

	"github.com/grocey/grocey-cli/internal/model"
)

// ListItemsClient manages items inside one shopping list. Every path is
// scoped under the parent list id; items have no standalone identity.
type ListItemsClient struct {
	c *Client
}

type ListItemRequest struct {
	Quantity float64         `json:"quantity"`
	Unit     string          `json:"unit,omitempty"`
	Product  *model.Ref      `json:"product,omitempty"`
	Metadata *model.Metadata `json:"metadata,omitempty"`
}

type purchasedPatch struct {
	Purchased bool `json:"purchased"`
}

type quantityPatch struct {
	Quantity float64 `json:"quantity"`
}

func listItemPath(listID, itemID int64) string {
	return fmt.Sprintf("/shopping-lists/%d/items/%d", listID, itemID)
}

func (lc *ListItemsClient) Create(ctx context.Context, listID int64, req ListItemRequest) (*model.ListItem, error) {
	var item model.ListItem
	if err := lc.c.Post(ctx, fmt.Sprintf("/shopping-lists/%d/items", listID), true, req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (lc *ListItemsClient) Get(ctx context.Context, listID, itemID int64) (*model.ListItem, error) {
	var item model.ListItem
	if err := lc.c.Get(ctx, listItemPath(listID, itemID), true, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (lc *ListItemsClient) List(ctx context.Context, listID int64) ([]model.ListItem, *Pagination, error) {
	return getList[model.ListItem](ctx, lc.c, fmt.Sprintf("/shopping-lists/%d/items", listID), true)
}

func (lc *ListItemsClient) Update(ctx context.Context, listID, itemID int64, req ListItemRequest) (*model.ListItem, error) {
	var item model.ListItem
	if err := lc.c.Put(ctx, listItemPath(listID, itemID), true, req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (lc *ListItemsClient) Delete(ctx context.Context, listID, itemID int64) error {
	return lc.c.Delete(ctx, listItemPath(listID, itemID), true)
}

// MarkPurchased flips the purchased flag on via PATCH {purchased: true}.
func (lc *ListItemsClient) MarkPurchased(ctx context.Context, listID, itemID int64) (*model.ListItem, error) {
	return lc.patchPurchased(ctx, listID, itemID, true)
}

// MarkNotPurchased flips the purchased flag back off.
func (lc *ListItemsClient) MarkNotPurchased(ctx context.Context, listID, itemID int64) (*model.ListItem, error) {
	return lc.patchPurchased(ctx, listID, itemID, false)
}

func (lc *ListItemsClient) patchPurchased(ctx context.Context, listID, itemID int64, purchased bool) (*model.ListItem, error) {
	var item model.ListItem
	if err := lc.c.Patch(ctx, listItemPath(listID, itemID), true, purchasedPatch{Purchased: purchased}, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateQuantity changes only the quantity via PATCH {quantity}.
func (lc *ListItemsClient) UpdateQuantity(ctx context.Context, listID, itemID int64, quantity float64) (*model.ListItem, error) {
	var item model.ListItem
	if err := lc.c.Patch(ctx, listItemPath(listID, itemID), true, quantityPatch{Quantity: quantity}, &item); err != nil {
		return nil, err
	}
	return &item, nil
}
