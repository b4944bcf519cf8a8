package api

import (
	"context"
	"fmt"

	"github.com/grocey/grocey-cli/internal/model"
)

// PantryItemsClient manages inventory items inside one pantry, path-scoped
// under the parent pantry id.
type PantryItemsClient struct {
	c *Client
}

type PantryItemRequest struct {
	Quantity float64         `json:"quantity"`
	Unit     string          `json:"unit,omitempty"`
	Product  *model.Ref      `json:"product,omitempty"`
	Metadata *model.Metadata `json:"metadata,omitempty"`
}

func pantryItemPath(pantryID, itemID int64) string {
	return fmt.Sprintf("/pantries/%d/items/%d", pantryID, itemID)
}

func (pc *PantryItemsClient) Create(ctx context.Context, pantryID int64, req PantryItemRequest) (*model.PantryItem, error) {
	var item model.PantryItem
	if err := pc.c.Post(ctx, fmt.Sprintf("/pantries/%d/items", pantryID), true, req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (pc *PantryItemsClient) Get(ctx context.Context, pantryID, itemID int64) (*model.PantryItem, error) {
	var item model.PantryItem
	if err := pc.c.Get(ctx, pantryItemPath(pantryID, itemID), true, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (pc *PantryItemsClient) List(ctx context.Context, pantryID int64) ([]model.PantryItem, *Pagination, error) {
	return getList[model.PantryItem](ctx, pc.c, fmt.Sprintf("/pantries/%d/items", pantryID), true)
}

func (pc *PantryItemsClient) Update(ctx context.Context, pantryID, itemID int64, req PantryItemRequest) (*model.PantryItem, error) {
	var item model.PantryItem
	if err := pc.c.Put(ctx, pantryItemPath(pantryID, itemID), true, req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (pc *PantryItemsClient) Delete(ctx context.Context, pantryID, itemID int64) error {
	return pc.c.Delete(ctx, pantryItemPath(pantryID, itemID), true)
}

// UpdateQuantity changes only the quantity via PATCH {quantity}.
func (pc *PantryItemsClient) UpdateQuantity(ctx context.Context, pantryID, itemID int64, quantity float64) (*model.PantryItem, error) {
	var item model.PantryItem
	if err := pc.c.Patch(ctx, pantryItemPath(pantryID, itemID), true, quantityPatch{Quantity: quantity}, &item); err != nil {
		return nil, err
	}
	return &item, nil
}
