package model

import "time"

type Pantry struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Metadata   Metadata  `json:"metadata"`
	Owner      *User     `json:"owner,omitempty"`
	SharedWith []User    `json:"sharedWith,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// PantryItem is path-scoped under its pantry, like ListItem under its list.
type PantryItem struct {
	ID        int64     `json:"id"`
	Quantity  float64   `json:"quantity"`
	Unit      string    `json:"unit"`
	Metadata  Metadata  `json:"metadata"`
	Product   *Product  `json:"product,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
