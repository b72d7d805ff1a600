package routes

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MedivaDesk/phone"
	"MedivaDesk/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newGateway(t *testing.T, upstream http.Handler) (*gin.Engine, *services.SessionStore) {
	t.Helper()
	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	store := services.NewSessionStore(filepath.Join(t.TempDir(), "session"))
	api := services.NewClient(srv.URL, store)

	router := gin.New()
	Routes(router, api, store, services.FormRules{Phone: phone.Rule{}}, &services.RecapCache{})
	return router, store
}

func TestRoutes_GuardedUntilLogin(t *testing.T) {
	router, store := newGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/login":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"message":"Login berhasil","token":"tok-123"}`))
		case "/patients":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/patients", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/login", strings.NewReader(`{"email":"admin@mediva.id","password":"rahasia"}`))
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tok-123", store.Token())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/patients", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/logout", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/patients", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
