package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MedivaDesk/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestBackend(t *testing.T, h http.Handler) (*services.Client, *services.SessionStore) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	store := services.NewSessionStore(filepath.Join(t.TempDir(), "session"))
	return services.NewClient(srv.URL, store), store
}

func newAuthRouter(api *services.Client, store *services.SessionStore) *gin.Engine {
	router := gin.New()
	ctl := &AuthController{API: api, Sessions: store, Alerts: SwalNotifier{}}
	ctl.Register(router)
	ctl.RegisterProtected(router.Group("/"))
	return router
}

func TestLogin_StoresTokenAndRedirects(t *testing.T) {
	api, store := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Login berhasil","token":"tok-123"}`))
	}))
	router := newAuthRouter(api, store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/login", strings.NewReader(`{"email":"admin@mediva.id","password":"rahasia"}`))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tok-123", store.Token())

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "/dashboard", body["redirect"])
}

func TestLogin_RejectsInvalidForm(t *testing.T) {
	api, store := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("credentials must not leave the process on a local validation failure")
	}))
	router := newAuthRouter(api, store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/login", strings.NewReader(`{"email":"not-an-email","password":""}`))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Format email tidak valid.", body.Errors["email"])
	assert.Equal(t, "Password wajib diisi.", body.Errors["password"])
}

func TestLogin_WrongCredentialsShowFixedMessage(t *testing.T) {
	api, store := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Password salah"}`))
	}))
	router := newAuthRouter(api, store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/login", strings.NewReader(`{"email":"admin@mediva.id","password":"salah"}`))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, store.Token())
	assert.Contains(t, w.Body.String(), "Email atau password salah. Silakan coba lagi.")
	assert.NotContains(t, w.Body.String(), "Password salah")
}

func TestLogout_ClearsSession(t *testing.T) {
	api, store := newTestBackend(t, http.NotFoundHandler())
	require.NoError(t, store.SetToken("tok-123"))
	router := newAuthRouter(api, store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/logout", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.Token())
}

func TestResetPassword_MismatchRejectedLocally(t *testing.T) {
	api, store := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("mismatched passwords must not reach the storage API")
	}))
	router := newAuthRouter(api, store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/reset-password",
		strings.NewReader(`{"token":"t1","new_password":"baru","confirm_password":"beda"}`))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Password tidak cocok.")
}

func TestForgotPassword_RelaysUpstreamMessage(t *testing.T) {
	api, store := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Email tidak terdaftar"}`))
	}))
	router := newAuthRouter(api, store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/forgot-password", strings.NewReader(`{"email":"admin@mediva.id"}`))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Email tidak terdaftar")
}
