package mojang

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/profiles/minecraft/Notch", r.URL.Path)
		w.Write([]byte(`{"id":"069a79f444e94726a5befca90e38aaf5","name":"Notch"}`))
	}))
	defer srv.Close()

	r := NewWithBaseURL(srv.URL)
	assert.Equal(t, "069a79f444e94726a5befca90e38aaf5", r.Resolve(context.Background(), "Notch"))
}

func TestResolveNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	r := NewWithBaseURL(srv.URL)
	assert.Equal(t, SentinelID, r.Resolve(context.Background(), "nobody"))
}

func TestResolveServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	r := NewWithBaseURL(srv.URL)
	assert.Equal(t, SentinelID, r.Resolve(context.Background(), "Notch"))
}

func TestResolveBadPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"not-a-uuid"}`))
	}))
	defer srv.Close()

	r := NewWithBaseURL(srv.URL)
	assert.Equal(t, SentinelID, r.Resolve(context.Background(), "Notch"))
}

func TestResolveEmptyName(t *testing.T) {
	r := New()
	assert.Equal(t, SentinelID, r.Resolve(context.Background(), ""))
}
