package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MedivaDesk/phone"
	"MedivaDesk/services"
)

const patientListJSON = `[
	{"id":1,"name":"Budi Santoso","birth_date":"1990-03-01","gender":"Laki-laki","address":"Jl. Melati 1","contact":"+6281234567890","visit_date":"2025-02-01","complaint":"Demam","created_at":"2025-02-01 08:00:00"},
	{"id":2,"name":"Ani Lestari","birth_date":"1988-07-12","gender":"Perempuan","address":"Jl. Mawar 2","contact":"+6281298765432","visit_date":"2025-03-05","complaint":"Batuk","created_at":"2025-03-05 09:30:00"}
]`

func newPatientRouter(api *services.Client) *gin.Engine {
	router := gin.New()
	ctl := &PatientController{API: api, Rules: services.FormRules{Phone: phone.Rule{}}, Alerts: SwalNotifier{}}
	ctl.Register(router.Group("/"))
	return router
}

func TestPatientList_FiltersByGender(t *testing.T) {
	api, _ := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(patientListJSON))
	}))
	router := newPatientRouter(api)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/patients?gender=Perempuan", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ani Lestari")
	assert.NotContains(t, w.Body.String(), "Budi Santoso")
}

func TestPatientList_UpstreamFailureDegradesToEmpty(t *testing.T) {
	api, _ := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	router := newPatientRouter(api)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/patients", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalCount":0`)
}

func TestPatientCreate_NormalizesContactBeforeForwarding(t *testing.T) {
	var received map[string]string
	api, _ := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "POST", r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{}`))
	}))
	router := newPatientRouter(api)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/patients", strings.NewReader(`{
		"name":"Budi Santoso","birth_date":"1990-03-01","gender":"Laki-laki",
		"address":"Jl. Melati 1","contact":"081234567890","visit_date":"2025-02-01","complaint":"Demam"
	}`))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "+6281234567890", received["contact"])
	assert.Contains(t, w.Body.String(), "Data pasien berhasil ditambahkan!")
}

func TestPatientCreate_ReturnsFullViolationMap(t *testing.T) {
	api, _ := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("an invalid form must not reach the storage API")
	}))
	router := newPatientRouter(api)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/patients", strings.NewReader(`{"name":" "}`))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Nama wajib diisi", body.Errors["name"])
	assert.Equal(t, "Tanggal lahir wajib diisi", body.Errors["birth_date"])
	assert.Equal(t, "Jenis kelamin wajib dipilih", body.Errors["gender"])
	assert.Len(t, body.Errors, 7)
}

func TestPatientDelete_RequiresConfirmation(t *testing.T) {
	upstreamHit := false
	api, _ := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upstreamHit = true
	}))
	router := newPatientRouter(api)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/patients/1", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, upstreamHit)
	assert.Contains(t, w.Body.String(), "Apakah Anda yakin?")
}

func TestPatientDelete_Confirmed(t *testing.T) {
	api, _ := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "DELETE", r.Method)
		require.Equal(t, "/patients/1", r.URL.Path)
		w.Write([]byte(`{}`))
	}))
	router := newPatientRouter(api)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/patients/1?confirm=true", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Data pasien berhasil dihapus.")
}

func TestPatientEditForm_SeedsCanonicalContactAndDates(t *testing.T) {
	api, _ := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/patients/7", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":7,"name":"Citra","birth_date":"1995-08-20T00:00:00Z","gender":"Perempuan",
			"address":"Jl. Anggrek","contact":"081299911122","visit_date":"2025-04-01T00:00:00Z","complaint":"Pusing"}`))
	}))
	router := newPatientRouter(api)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/patients/7/edit", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "+6281299911122")
	assert.Contains(t, w.Body.String(), `"birth_date":"1995-08-20"`)
	assert.Contains(t, w.Body.String(), `"visit_date":"2025-04-01"`)
}

func TestPatientExport_StreamsPDFAttachment(t *testing.T) {
	api, _ := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(patientListJSON))
	}))
	router := newPatientRouter(api)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/patients/export?gender=Laki-laki", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "data_pasien.pdf")
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
}
