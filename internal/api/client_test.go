package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jessmaeeGit/konek-kalusugan/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewHTTPClient(srv.URL)
	require.NoError(t, err)
	return client
}

func TestNewHTTPClient_RejectsBadScheme(t *testing.T) {
	_, err := NewHTTPClient("ftp://example.com")
	assert.Error(t, err)
}

func TestLogin_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, config.RouteLogin, r.URL.Path)
		assert.Equal(t, config.MimeJSON, r.Header.Get(config.HeaderContentType))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ana@example.com", body["email"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"user":    map[string]string{"name": "Ana Santos", "email": "ana@example.com"},
		})
	})

	user, err := client.Login(context.Background(), "ana@example.com", "secret123")

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Ana Santos", user.Name)
}

func TestLogin_RejectedByService(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"message": "Invalid email or password",
		})
	})

	_, err := client.Login(context.Background(), "ana@example.com", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Contains(t, err.Error(), "Invalid email or password")
}

func TestLogin_StatusCategories(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"Unauthorized maps to invalid credentials", http.StatusUnauthorized, ErrInvalidCredentials},
		{"Server errors map to unavailable", http.StatusBadGateway, ErrServerUnavailable},
		{"Other statuses map to connection error", http.StatusTeapot, ErrConnection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			_, err := client.Login(context.Background(), "a@b.com", "pw")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLogin_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	client, err := NewHTTPClient(srv.URL)
	require.NoError(t, err)
	srv.Close() // Force connection refused.

	_, err = client.Login(context.Background(), "a@b.com", "pw")
	assert.ErrorIs(t, err, ErrConnection)
}

func TestLogin_MalformedJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	})

	_, err := client.Login(context.Background(), "a@b.com", "pw")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegister_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, config.RouteRegister, r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	})

	err := client.Register(context.Background(), RegisterRequest{
		Name:     "Ana Santos",
		Email:    "ana@example.com",
		Password: "secret123",
	})
	assert.NoError(t, err)
}

func TestRegister_ServiceMessageSurfaced(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"message": "email already registered",
		})
	})

	err := client.Register(context.Background(), RegisterRequest{Email: "ana@example.com"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "email already registered")
}

func TestBarangays_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, config.RouteBarangays, r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		_ = json.NewEncoder(w).Encode([]Barangay{
			{ID: "b1", Name: "Mahayahay"},
			{ID: "b2", Name: "Poblacion"},
		})
	})

	list, err := client.Barangays(context.Background())

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Mahayahay", list[0].Name)
}

func TestContextCancellation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Login(ctx, "a@b.com", "pw")
	assert.Error(t, err)
}
