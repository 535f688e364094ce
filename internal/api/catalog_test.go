package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themobileprof/symptom-checker-be/internal/catalog"
	"github.com/themobileprof/symptom-checker-be/internal/db"
	"github.com/themobileprof/symptom-checker-be/internal/logging"
)

type brokenStore struct{}

func (brokenStore) SchemesForLocation(context.Context, string) ([]catalog.StateScheme, error) {
	return nil, sql.ErrConnDone
}

func (brokenStore) States(context.Context) ([]string, error) {
	return nil, sql.ErrConnDone
}

func (brokenStore) Scheme(context.Context, string) (*catalog.StateScheme, error) {
	return nil, sql.ErrConnDone
}

func newCatalogRouter(store db.SchemeStore) *gin.Engine {
	h := NewCatalogHandler(store, logging.Discard())

	r := gin.New()
	r.GET("/api/specialists", h.ListSpecialists)
	r.GET("/api/specialists/:key/schemes", h.SpecialistSchemes)
	r.GET("/api/schemes", h.ListSchemes)
	r.GET("/api/schemes/states", h.ListStates)
	r.GET("/api/schemes/portability", h.Portability)
	r.GET("/api/schemes/:id", h.GetScheme)
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestCatalogHandler_Specialists(t *testing.T) {
	r := newCatalogRouter(db.StaticSchemes{})

	w := get(r, "/api/specialists")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Specialists []catalog.Specialist `json:"specialists"`
		Count       int                  `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, len(catalog.Keys()), body.Count)
	assert.Equal(t, catalog.Rheumatologist, body.Specialists[0].Key)
}

func TestCatalogHandler_SpecialistSchemes(t *testing.T) {
	r := newCatalogRouter(db.StaticSchemes{})

	w := get(r, "/api/specialists/Cardiologist/schemes")
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Schemes []catalog.Scheme `json:"schemes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Schemes, len(catalog.SchemesForSpecialist(catalog.Cardiologist)))

	assert.Equal(t, http.StatusNotFound, get(r, "/api/specialists/Astrologer/schemes").Code)
}

func TestCatalogHandler_Schemes(t *testing.T) {
	r := newCatalogRouter(db.StaticSchemes{})

	w := get(r, "/api/schemes?state=Jaipur")
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		State   string                `json:"state"`
		Schemes []catalog.StateScheme `json:"schemes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Rajasthan", body.State)
	require.NotEmpty(t, body.Schemes)
	assert.True(t, body.Schemes[0].IsNational)

	w = get(r, "/api/schemes/states")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Kerala")

	w = get(r, "/api/schemes/kasp")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"state":"Kerala"`)

	assert.Equal(t, http.StatusNotFound, get(r, "/api/schemes/unknown-scheme").Code)
}

func TestCatalogHandler_StoreErrors(t *testing.T) {
	r := newCatalogRouter(brokenStore{})

	assert.Equal(t, http.StatusInternalServerError, get(r, "/api/schemes?state=Kerala").Code)
	assert.Equal(t, http.StatusInternalServerError, get(r, "/api/schemes/states").Code)
	assert.Equal(t, http.StatusInternalServerError, get(r, "/api/schemes/kasp").Code)
}

func TestCatalogHandler_Portability(t *testing.T) {
	r := newCatalogRouter(db.StaticSchemes{})

	w := get(r, "/api/schemes/portability?from=Jaipur&to=Kerala")
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Rajasthan", body["from"])
	assert.Contains(t, body["info"], "When traveling from Rajasthan to Kerala")

	assert.Equal(t, http.StatusBadRequest, get(r, "/api/schemes/portability?from=Kerala").Code)
}
