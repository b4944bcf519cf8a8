package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestAuthHeaderAttachedVerbatim(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := NewClient(server.URL)
	c.SetToken("x")

	if err := c.Get(context.Background(), "/users/profile", true, nil); err != nil {
		t.Fatalf("get: %v", err)
	}
	if gotAuth != "Bearer x" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer x")
	}
}

func TestAuthHeaderOmittedWithoutToken(t *testing.T) {
	var gotAuth string
	var hasAuth bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hasAuth = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := NewClient(server.URL)
	c.SetToken("x")
	c.SetToken("")

	if err := c.Get(context.Background(), "/users/profile", true, nil); err != nil {
		t.Fatalf("get: %v", err)
	}
	if hasAuth {
		t.Errorf("Authorization header present after clearing token: %q", gotAuth)
	}
}

func TestAuthHeaderOmittedForPublicCall(t *testing.T) {
	var hasAuth bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		w.Write([]byte(`{"token":"t"}`))
	}))
	defer server.Close()

	c := NewClient(server.URL)
	c.SetToken("secret")

	if err := c.Post(context.Background(), "/users/login", false, nil, nil); err != nil {
		t.Fatalf("post: %v", err)
	}
	if hasAuth {
		t.Error("public call must not carry the Authorization header")
	}
}

func TestAPIErrorParsesBodyMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"name already taken"}`))
	}))
	defer server.Close()

	c := NewClient(server.URL)
	err := c.Post(context.Background(), "/categories", true, map[string]string{"name": "Dairy"}, nil)
	if err == nil {
		t.Fatal("expected error for 409")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusConflict {
		t.Errorf("status = %d, want %d", apiErr.StatusCode, http.StatusConflict)
	}
	if apiErr.Message != "name already taken" {
		t.Errorf("message = %q, want %q", apiErr.Message, "name already taken")
	}
}

func TestAPIErrorFallsBackToGenericMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewClient(server.URL)
	err := c.Get(context.Background(), "/products", true, nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.Message != "request failed" {
		t.Errorf("message = %q, want generic fallback", apiErr.Message)
	}
}

func TestNotFoundIsDistinguishable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"product not found"}`))
	}))
	defer server.Close()

	c := NewClient(server.URL)
	err := c.Get(context.Background(), "/products/42", true, nil)
	if !IsNotFound(err) {
		t.Errorf("IsNotFound = false for 404, err = %v", err)
	}
	if IsNetworkError(err) {
		t.Error("404 must not classify as a network error")
	}
}

func TestNetworkErrorWhenServerUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	c := NewClient(server.URL)
	err := c.Get(context.Background(), "/products", true, nil)
	if err == nil {
		t.Fatal("expected error for unreachable server")
	}
	if !IsNetworkError(err) {
		t.Errorf("IsNetworkError = false, err = %v", err)
	}
	if IsNotFound(err) || IsCancelled(err) {
		t.Error("network failure must not classify as not-found or cancelled")
	}
}

func TestCancellationIsDistinguishable(t *testing.T) {
	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	c := NewClient(server.URL)
	err := c.Get(ctx, "/products", true, nil)
	if err == nil {
		t.Fatal("expected error for cancelled request")
	}
	if !IsCancelled(err) {
		t.Errorf("IsCancelled = false, err = %v", err)
	}
	if IsNetworkError(err) {
		t.Error("cancellation must not classify as a network error")
	}
}

func TestTimeoutIsCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
		}
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	c := NewClient(server.URL)
	err := c.Get(ctx, "/products", true, nil)
	if !IsCancelled(err) {
		t.Errorf("IsCancelled = false for deadline, err = %v", err)
	}
}

func TestRequestIDHeaderIsSet(t *testing.T) {
	var first, second string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if first == "" {
			first = r.Header.Get("X-Request-ID")
		} else {
			second = r.Header.Get("X-Request-ID")
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := NewClient(server.URL)
	c.Get(context.Background(), "/products", true, nil)
	c.Get(context.Background(), "/products", true, nil)

	if first == "" || second == "" {
		t.Fatal("expected X-Request-ID on every request")
	}
	if first == second {
		t.Error("request ids must differ between requests")
	}
}

func TestDeleteToleratesEmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s, want DELETE", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := NewClient(server.URL)
	if err := c.Delete(context.Background(), "/products/3", true); err != nil {
		t.Fatalf("delete: %v", err)
	}
}
