package supabase

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ieee-swc/ClubBack/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	upstream := httptest.NewServer(handler)
	t.Cleanup(upstream.Close)

	cfg := &config.Config{
		SupabaseURL:     upstream.URL,
		SupabaseAnonKey: "anon-key",
	}
	return New(cfg, nil)
}

func TestDisabledModeNeverCrashes(t *testing.T) {
	client := New(&config.Config{}, nil)

	assert.False(t, client.Enabled())

	_, err := client.SignIn("a@b.c", "pw")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = client.Profile("", "some-id")
	assert.ErrorIs(t, err, ErrNotConfigured)

	err = client.SignOut("token")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSignInSuccess(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))

		w.Write([]byte(`{"access_token":"tok","refresh_token":"ref","user":{"id":"u1","email":"a@b.c"}}`))
	})

	session, err := client.SignIn("a@b.c", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok", session.AccessToken)
	assert.Equal(t, "u1", session.User.ID)
}

func TestSignInSurfacesBackendError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error_description":"Invalid login credentials"}`))
	})

	_, err := client.SignIn("a@b.c", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Invalid login credentials", err.Error())
}

func TestProfileFound(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/users", r.URL.Path)
		assert.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))

		w.Write([]byte(`[{"id":"u1","email":"a@b.c","username":"alex","full_name":"Alex Chen","role":"admin","created_at":"2024-09-15T10:30:00Z","updated_at":"2024-09-15T10:30:00Z"}]`))
	})

	profile, err := client.Profile("user-token", "u1")
	require.NoError(t, err)
	assert.Equal(t, "alex", profile.Username)
	assert.Equal(t, "admin", profile.Role)
}

func TestProfileNotFound(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	_, err := client.Profile("user-token", "missing")
	assert.EqualError(t, err, "profile not found")
}

func TestIsAdmin(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"u1","email":"a@b.c","username":"alex","full_name":"Alex","role":"member","created_at":"x","updated_at":"x"}]`))
	})

	isAdmin, err := client.IsAdmin("tok", "u1")
	require.NoError(t, err)
	assert.False(t, isAdmin)
}

func TestAnonKeyDoublesAsBearerWithoutToken(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer anon-key", r.Header.Get("Authorization"))
		w.Write([]byte(`[]`))
	})

	_, err := client.ListProjects("")
	require.NoError(t, err)
}
