// Package api is the Grocey REST client: one HTTP wrapper plus a thin typed
// client per domain resource. Every operation takes a context; cancelling it
// aborts the in-flight request.
package api

// API bundles the resource clients around a shared Client.
type API struct {
	Client        *Client
	Users         *UsersClient
	Categories    *CategoriesClient
	Products      *ProductsClient
	ShoppingLists *ShoppingListsClient
	ListItems     *ListItemsClient
	Pantries      *PantriesClient
	PantryItems   *PantryItemsClient
}

// New builds the full client set rooted at baseURL.
func New(baseURL string, opts ...Option) *API {
	c := NewClient(baseURL, opts...)
	return &API{
		Client:        c,
		Users:         &UsersClient{c: c},
		Categories:    &CategoriesClient{c: c},
		Products:      &ProductsClient{c: c},
		ShoppingLists: &ShoppingListsClient{c: c},
		ListItems:     &ListItemsClient{c: c},
		Pantries:      &PantriesClient{c: c},
		PantryItems:   &PantryItemsClient{c: c},
	}
}
