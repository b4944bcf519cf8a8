package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/grocey/grocey-cli/internal/model"
)

func TestCreateThenGetListPreservesFields(t *testing.T) {
	var created model.ShoppingList
	mux := http.NewServeMux()
	mux.HandleFunc("POST /shopping-lists", func(w http.ResponseWriter, r *http.Request) {
		var req ShoppingListRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode create body: %v", err)
		}
		created = model.ShoppingList{
			ID:          5,
			Name:        req.Name,
			Description: req.Description,
			Recurring:   req.Recurring,
		}
		json.NewEncoder(w).Encode(created)
	})
	mux.HandleFunc("GET /shopping-lists/5", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(created)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	a := New(server.URL)
	a.Client.SetToken("tok")

	list, err := a.ShoppingLists.Create(context.Background(), ShoppingListRequest{
		Name:        "Weekly",
		Description: "usual groceries",
		Recurring:   true,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if list.ID == 0 {
		t.Fatal("expected server-assigned id")
	}

	got, err := a.ShoppingLists.Get(context.Background(), list.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Weekly" || got.Description != "usual groceries" || !got.Recurring {
		t.Errorf("got = %+v, caller-supplied fields must round-trip", got)
	}
}

func TestRemoveThenGetYieldsNotFound(t *testing.T) {
	deleted := false
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /shopping-lists/5", func(w http.ResponseWriter, r *http.Request) {
		deleted = true
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /shopping-lists/5", func(w http.ResponseWriter, r *http.Request) {
		if deleted {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"shopping list not found"}`))
			return
		}
		w.Write([]byte(`{"id":5,"name":"Weekly"}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	a := New(server.URL)
	a.Client.SetToken("tok")

	if err := a.ShoppingLists.Delete(context.Background(), 5); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, err := a.ShoppingLists.Get(context.Background(), 5)
	if !IsNotFound(err) {
		t.Errorf("IsNotFound = false after delete, err = %v", err)
	}
}

func TestShareUnsharePurchasePaths(t *testing.T) {
	var requests []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.Method+" "+r.URL.Path)
		switch r.URL.Path {
		case "/shopping-lists/7/share":
			var body struct {
				Email string `json:"email"`
			}
			json.NewDecoder(r.Body).Decode(&body)
			if body.Email != "friend@example.com" {
				t.Errorf("share email = %q", body.Email)
			}
			w.Write([]byte(`{"id":7,"sharedWith":[{"id":2,"email":"friend@example.com"}]}`))
		default:
			w.Write([]byte(`{"id":7}`))
		}
	}))
	defer server.Close()

	a := New(server.URL)
	a.Client.SetToken("tok")
	ctx := context.Background()

	list, err := a.ShoppingLists.Share(ctx, 7, "friend@example.com")
	if err != nil {
		t.Fatalf("share: %v", err)
	}
	if len(list.SharedWith) != 1 {
		t.Errorf("sharedWith = %+v", list.SharedWith)
	}
	if err := a.ShoppingLists.Unshare(ctx, 7, 2); err != nil {
		t.Fatalf("unshare: %v", err)
	}
	if _, err := a.ShoppingLists.Purchase(ctx, 7); err != nil {
		t.Fatalf("purchase: %v", err)
	}

	want := []string{
		"POST /shopping-lists/7/share",
		"DELETE /shopping-lists/7/share/2",
		"POST /shopping-lists/7/purchase",
	}
	if len(requests) != len(want) {
		t.Fatalf("requests = %v, want %v", requests, want)
	}
	for i := range want {
		if requests[i] != want[i] {
			t.Errorf("request[%d] = %q, want %q", i, requests[i], want[i])
		}
	}
}

func TestMarkPurchasedPatchesItem(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"id":9,"purchased":true,"quantity":2,"unit":"pcs"}`))
	}))
	defer server.Close()

	a := New(server.URL)
	a.Client.SetToken("tok")

	item, err := a.ListItems.MarkPurchased(context.Background(), 5, 9)
	if err != nil {
		t.Fatalf("mark purchased: %v", err)
	}
	if gotMethod != http.MethodPatch {
		t.Errorf("method = %s, want PATCH", gotMethod)
	}
	if gotPath != "/shopping-lists/5/items/9" {
		t.Errorf("path = %s, want /shopping-lists/5/items/9", gotPath)
	}
	if v, ok := gotBody["purchased"].(bool); !ok || !v {
		t.Errorf("body = %v, want {purchased: true}", gotBody)
	}
	if !item.Purchased {
		t.Error("returned item must have purchased = true")
	}
}

func TestMarkNotPurchasedSendsFalse(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"id":9,"purchased":false}`))
	}))
	defer server.Close()

	a := New(server.URL)
	a.Client.SetToken("tok")

	item, err := a.ListItems.MarkNotPurchased(context.Background(), 5, 9)
	if err != nil {
		t.Fatalf("mark not purchased: %v", err)
	}
	if v, ok := gotBody["purchased"].(bool); !ok || v {
		t.Errorf("body = %v, want {purchased: false}", gotBody)
	}
	if item.Purchased {
		t.Error("returned item must have purchased = false")
	}
}

func TestUpdateQuantityPatch(t *testing.T) {
	var gotMethod string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"id":9,"quantity":2.5,"unit":"kg"}`))
	}))
	defer server.Close()

	a := New(server.URL)
	a.Client.SetToken("tok")

	item, err := a.ListItems.UpdateQuantity(context.Background(), 5, 9, 2.5)
	if err != nil {
		t.Fatalf("update quantity: %v", err)
	}
	if gotMethod != http.MethodPatch {
		t.Errorf("method = %s, want PATCH", gotMethod)
	}
	if gotBody["quantity"] != 2.5 {
		t.Errorf("body = %v, want {quantity: 2.5}", gotBody)
	}
	if item.Quantity != 2.5 {
		t.Errorf("quantity = %g, want 2.5", item.Quantity)
	}
}

func TestListItemCreateScopedUnderList(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"id":1,"quantity":3,"unit":"pcs","product":{"id":11,"name":"Apples"}}`))
	}))
	defer server.Close()

	a := New(server.URL)
	a.Client.SetToken("tok")

	item, err := a.ListItems.Create(context.Background(), 5, ListItemRequest{
		Quantity: 3,
		Unit:     "pcs",
		Product:  &model.Ref{ID: 11},
	})
	if err != nil {
		t.Fatalf("create item: %v", err)
	}
	if gotPath != "/shopping-lists/5/items" {
		t.Errorf("path = %s", gotPath)
	}
	if _, ok := gotBody["id"]; ok {
		t.Error("create body must not carry an id")
	}
	product, ok := gotBody["product"].(map[string]any)
	if !ok || product["id"] != float64(11) {
		t.Errorf("product ref = %v", gotBody["product"])
	}
	if item.Product == nil || item.Product.Name != "Apples" {
		t.Errorf("item product = %+v", item.Product)
	}
}
