package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophspend/internal/client/tokenstore"
	"github.com/dmitrijs2005/gophspend/internal/common"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NormalisesBaseURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"http://localhost:8000", "http://localhost:8000"},
		{"https://api.example.com/", "https://api.example.com"},
		{"localhost:8000", "http://localhost:8000"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.in, noTokens()).BaseURL())
		})
	}
}

func TestDo_StandardHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		_, err := uuid.Parse(r.Header.Get(common.RequestIDHeaderName))
		assert.NoError(t, err, "request id must be a uuid")
		_, _ = io.WriteString(w, `{"names":[]}`)
	}))
	defer srv.Close()

	c := New(srv.URL, StaticTokens("t"), WithUserAgent("test-agent"))
	_, err := c.ListCategories(context.Background())
	require.NoError(t, err)
}

func TestDo_TokenReadOnEveryCall(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{"names":["Food"]}`)
	}))
	defer srv.Close()

	ctx := context.Background()
	store := tokenstore.NewMemoryStore()
	c := New(srv.URL, StoreTokens(store))

	require.NoError(t, store.Set(ctx, common.TokenKey, "first"))
	_, err := c.ListCategories(ctx)
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, common.TokenKey, "second"))
	_, err = c.ListCategories(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"Bearer first", "Bearer second"}, seen)
}

func TestDo_MissingTokenFailsWithoutRequest(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	_, err := New(srv.URL, noTokens()).ListCategories(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.False(t, called)
}

func TestDo_TokenSourceErrorPropagates(t *testing.T) {
	boom := errors.New("keyring locked")
	c := New("http://127.0.0.1:1", TokenSourceFunc(func(context.Context) (string, error) { return "", boom }))

	_, err := c.ListCategories(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestDo_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := New(url, noTokens()).SignIn(context.Background(), "u", "p")
	require.ErrorIs(t, err, ErrUnavailable)
	assert.True(t, IsNetworkError(err))
	assert.Equal(t, MsgNetwork, UserMessage(err))
}

func TestDo_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	_, err := New(srv.URL, noTokens(), WithTimeout(50*time.Millisecond)).SignIn(context.Background(), "u", "p")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestDo_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `not json`)
	}))
	defer srv.Close()

	_, err := New(srv.URL, noTokens()).SignIn(context.Background(), "u", "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse response")
}
