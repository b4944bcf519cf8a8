package model

import "time"

type ShoppingList struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	Recurring       bool       `json:"recurring"`
	Metadata        Metadata   `json:"metadata"`
	Owner           *User      `json:"owner,omitempty"`
	SharedWith      []User     `json:"sharedWith,omitempty"`
	LastPurchasedAt *time.Time `json:"lastPurchasedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// ListItem always belongs to exactly one shopping list; the list id lives in
// the request path, never in the item body.
type ListItem struct {
	ID              int64      `json:"id"`
	Quantity        float64    `json:"quantity"`
	Unit            string     `json:"unit"`
	Metadata        Metadata   `json:"metadata"`
	Purchased       bool       `json:"purchased"`
	LastPurchasedAt *time.Time `json:"lastPurchasedAt,omitempty"`
	Product         *Product   `json:"product,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}
