package providers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouterProvider_RegistersRoutes(t *testing.T) {
	rp := NewRouterProvider()
	rp.Get("/state", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	rp.Post("/draw", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	routes := rp.GetRoutes()
	require.Len(t, routes, 2)
	assert.Equal(t, "/state", routes[0].Url)
	assert.Equal(t, "/draw", routes[1].Url)
}

func TestRouterProvider_GetRejectsPost(t *testing.T) {
	rp := NewRouterProvider()
	rp.Get("/state", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	rp.GetRoutes()[0].Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/state", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouterProvider_PostRejectsGet(t *testing.T) {
	rp := NewRouterProvider()
	rp.Post("/draw", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	rp.GetRoutes()[0].Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/draw", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouterProvider_MatchingMethodPasses(t *testing.T) {
	rp := NewRouterProvider()
	rp.Post("/draw", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	rec := httptest.NewRecorder()
	rp.GetRoutes()[0].Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/draw", nil))
	assert.Equal(t, http.StatusCreated, rec.Code)
}
