package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/grocey/grocey-cli/internal/api"
	"github.com/grocey/grocey-cli/internal/database"
	"github.com/grocey/grocey-cli/internal/store"
)

type fixture struct {
	sess    *Store
	creds   *store.CredentialStore
	api     *api.API
	baseURL string
}

func setup(t *testing.T, handler http.Handler) *fixture {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	db, err := database.Open(":memory:")
	require.NoError(t, err, "open state db")
	t.Cleanup(func() { db.Close() })

	creds := store.NewCredentialStore(db)
	a := api.New(server.URL)
	return &fixture{
		sess:    New(a, creds, slog.Default()),
		creds:   creds,
		api:     a,
		baseURL: server.URL,
	}
}

func profileHandler(fetches *atomic.Int32, wantAuth string, t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/profile" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fetches.Add(1)
		if got := r.Header.Get("Authorization"); got != wantAuth {
			t.Errorf("Authorization = %q, want %q", got, wantAuth)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"id": 1, "name": "Ada", "surname": "Lovelace", "email": "a@b.com",
			"metadata": map[string]any{"listsCount": 3},
		})
	})
}

func TestInitWithoutPersistedToken(t *testing.T) {
	var fetches atomic.Int32
	f := setup(t, profileHandler(&fetches, "", t))

	require.NoError(t, f.sess.Init(context.Background()))

	require.Empty(t, f.sess.Token())
	require.False(t, f.sess.Authenticated())
	require.Nil(t, f.sess.Profile())
	require.Zero(t, fetches.Load(), "no token means no profile fetch")
	require.True(t, f.sess.Initialized())
}

func TestInitWithPersistedToken(t *testing.T) {
	var fetches atomic.Int32
	f := setup(t, profileHandler(&fetches, "Bearer abc", t))

	require.NoError(t, f.creds.SetToken("abc"))
	require.NoError(t, f.sess.Init(context.Background()))

	require.Equal(t, "abc", f.sess.Token())
	require.Equal(t, "abc", f.api.Client.Token(), "token must reach the HTTP client")
	require.Equal(t, int32(1), fetches.Load(), "exactly one profile fetch")

	p := f.sess.Profile()
	require.NotNil(t, p)
	require.Equal(t, "Ada", p.FirstName)
	require.Equal(t, "Lovelace", p.LastName)
	require.Equal(t, 3, p.ListsCount)
	require.Zero(t, p.PantriesCount, "missing counter defaults to zero")
}

func TestInitIsIdempotent(t *testing.T) {
	var fetches atomic.Int32
	f := setup(t, profileHandler(&fetches, "Bearer abc", t))

	require.NoError(t, f.creds.SetToken("abc"))
	require.NoError(t, f.sess.Init(context.Background()))
	require.NoError(t, f.sess.Init(context.Background()))
	require.NoError(t, f.sess.Init(context.Background()))

	require.Equal(t, int32(1), fetches.Load(), "repeated Init must not re-fetch")
}

func TestInitSurvivesProfileFetchFailure(t *testing.T) {
	f := setup(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	require.NoError(t, f.creds.SetToken("abc"))
	require.NoError(t, f.sess.Init(context.Background()), "startup must not fail on profile errors")

	require.Equal(t, "abc", f.sess.Token(), "token survives a failed startup fetch")
	require.Nil(t, f.sess.Profile())
	require.NotEmpty(t, f.sess.Err())
}

func TestSetTokenSynchronizesEverything(t *testing.T) {
	f := setup(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	require.NoError(t, f.sess.SetToken("t1"))
	require.Equal(t, "t1", f.api.Client.Token())
	persisted, err := f.creds.Token()
	require.NoError(t, err)
	require.Equal(t, "t1", persisted)

	require.NoError(t, f.sess.SetToken(""))
	require.Empty(t, f.api.Client.Token())
	persisted, err = f.creds.Token()
	require.NoError(t, err)
	require.Empty(t, persisted)
	require.Nil(t, f.sess.Profile(), "clearing the token clears the profile")
}

func TestLogoutClearsStateEvenWhenRemoteFails(t *testing.T) {
	var logoutCalls atomic.Int32
	f := setup(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/users/logout" {
			logoutCalls.Add(1)
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	require.NoError(t, f.sess.SetToken("abc"))
	require.NoError(t, f.sess.Logout(context.Background()), "logout must succeed despite remote failure")

	require.Equal(t, int32(1), logoutCalls.Load())
	require.Empty(t, f.sess.Token())
	require.Empty(t, f.api.Client.Token())
	require.Nil(t, f.sess.Profile())
	persisted, err := f.creds.Token()
	require.NoError(t, err)
	require.Empty(t, persisted)
}

func TestLoginFlowCarriesTokenToProfile(t *testing.T) {
	var profileAuth string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /users/login", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"T1"}`))
	})
	mux.HandleFunc("GET /users/profile", func(w http.ResponseWriter, r *http.Request) {
		profileAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"id":1,"name":"Ada","surname":"L","email":"a@b.com"}`))
	})
	f := setup(t, mux)

	resp, err := f.api.Users.Login(context.Background(), "a@b.com", "pw")
	require.NoError(t, err)
	require.NoError(t, f.sess.SetToken(resp.Token))
	require.NoError(t, f.sess.FetchProfile(context.Background()))

	require.Equal(t, "Bearer T1", profileAuth)
	require.Equal(t, "a@b.com", f.sess.Profile().Email)
}

func TestSaveChangesReappliesServerResponse(t *testing.T) {
	f := setup(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Server normalizes the name; the response must win locally.
		w.Write([]byte(`{"id":1,"name":"Grace","surname":"Hopper","email":"g@h.com"}`))
	}))
	require.NoError(t, f.sess.SetToken("abc"))

	p, err := f.sess.SaveChanges(context.Background(), api.ProfileUpdate{Name: "grace"})
	require.NoError(t, err)
	require.Equal(t, "Grace", p.FirstName, "server response is the source of truth")
	require.False(t, f.sess.Loading(), "loading must clear after save")
}

func TestSaveChangesPropagatesFailure(t *testing.T) {
	f := setup(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"surname required"}`))
	}))
	require.NoError(t, f.sess.SetToken("abc"))

	_, err := f.sess.SaveChanges(context.Background(), api.ProfileUpdate{Name: "x"})
	require.Error(t, err)
	require.False(t, f.sess.Loading(), "loading must clear even on failure")
	require.Contains(t, f.sess.Err(), "surname required")
}
