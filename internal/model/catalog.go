package model

import "time"

// MiscellaneousCategoryID is the reserved category every deployment seeds.
// The server rejects renaming or deleting it; the client refuses to try.
const MiscellaneousCategoryID int64 = 1

// MiscellaneousCategoryName is the fixed name of the reserved category.
const MiscellaneousCategoryName = "Miscellaneous"

type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Metadata  Metadata  `json:"metadata"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Reserved reports whether the category is the seeded Miscellaneous one.
func (c Category) Reserved() bool {
	return c.ID == MiscellaneousCategoryID
}

type Product struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Metadata  Metadata  `json:"metadata"`
	Category  *Category `json:"category,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
