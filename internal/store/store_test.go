package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/grocey/grocey-cli/internal/database"
)

func setupTestDB(t *testing.T) (*CredentialStore, *SettingsStore) {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err, "open test db")
	t.Cleanup(func() { db.Close() })
	return NewCredentialStore(db), NewSettingsStore(db)
}

func TestTokenRoundTrip(t *testing.T) {
	creds, _ := setupTestDB(t)

	token, err := creds.Token()
	require.NoError(t, err)
	require.Empty(t, token, "fresh store must have no token")

	require.NoError(t, creds.SetToken("abc"))
	token, err = creds.Token()
	require.NoError(t, err)
	require.Equal(t, "abc", token)

	// Overwrite, not append.
	require.NoError(t, creds.SetToken("def"))
	token, err = creds.Token()
	require.NoError(t, err)
	require.Equal(t, "def", token)
}

func TestClearToken(t *testing.T) {
	creds, _ := setupTestDB(t)

	require.NoError(t, creds.SetToken("abc"))
	require.NoError(t, creds.ClearToken())

	token, err := creds.Token()
	require.NoError(t, err)
	require.Empty(t, token)

	// Clearing an absent token is fine.
	require.NoError(t, creds.ClearToken())
}

func TestLastEmail(t *testing.T) {
	creds, _ := setupTestDB(t)

	email, err := creds.LastEmail()
	require.NoError(t, err)
	require.Empty(t, email)

	require.NoError(t, creds.SetLastEmail("a@b.com"))
	email, err = creds.LastEmail()
	require.NoError(t, err)
	require.Equal(t, "a@b.com", email)
}

func TestTokenAndEmailIndependent(t *testing.T) {
	creds, _ := setupTestDB(t)

	require.NoError(t, creds.SetToken("abc"))
	require.NoError(t, creds.SetLastEmail("a@b.com"))
	require.NoError(t, creds.ClearToken())

	email, err := creds.LastEmail()
	require.NoError(t, err)
	require.Equal(t, "a@b.com", email, "clearing the token must keep the email")
}

func TestSettingsRoundTrip(t *testing.T) {
	_, settings := setupTestDB(t)

	v, err := settings.Get(SettingAPIURL)
	require.NoError(t, err)
	require.Empty(t, v)

	require.NoError(t, settings.Set(SettingAPIURL, "https://grocey.example/api"))
	require.NoError(t, settings.Set(SettingDefaultListID, "5"))

	all, err := settings.GetAll()
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		SettingAPIURL:        "https://grocey.example/api",
		SettingDefaultListID: "5",
	}, all)

	require.NoError(t, settings.Unset(SettingDefaultListID))
	v, err = settings.Get(SettingDefaultListID)
	require.NoError(t, err)
	require.Empty(t, v)
}
