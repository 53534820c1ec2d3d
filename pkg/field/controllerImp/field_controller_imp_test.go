package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmhub/database"
	"farmhub/entities"
	"farmhub/pkg/field/repositoryImp"
	"farmhub/pkg/httputil"
)

func setup(t *testing.T) (*echo.Echo, *FieldCtrl) {
	t.Helper()
	db := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	e := echo.New()
	e.Validator = httputil.NewValidator()
	return e, New(repositoryImp.New(db))
}

func call(t *testing.T, e *echo.Echo, h echo.HandlerFunc, method, uid, id, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("uid", uid)
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	require.NoError(t, h(c))
	return rec
}

func TestCreate(t *testing.T) {
	e, h := setup(t)
	rec := call(t, e, h.Create, http.MethodPost, "user-a", "",
		`{"name":"North Paddock","sizeAcres":18,"soilType":"loam","location":"past the barn","status":"active"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var f entities.Field
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &f))
	assert.Equal(t, "user-a", f.OwnerID)
	assert.Equal(t, 18.0, f.SizeAcres)
}

func TestCreate_BadSoilType(t *testing.T) {
	e, h := setup(t)
	rec := call(t, e, h.Create, http.MethodPost, "user-a", "",
		`{"name":"Bog","sizeAcres":3,"soilType":"mud","status":"active"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Errors["soilType"], "must be one of")
}

func TestList_SortedByName(t *testing.T) {
	e, h := setup(t)
	call(t, e, h.Create, http.MethodPost, "user-a", "", `{"name":"Zebra Strip","sizeAcres":2,"soilType":"clay","status":"fallow"}`)
	call(t, e, h.Create, http.MethodPost, "user-a", "", `{"name":"Acre Bottom","sizeAcres":5,"soilType":"loam","status":"active"}`)

	rec := call(t, e, h.List, http.MethodGet, "user-a", "", "")
	var listed []entities.Field
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 2)
	assert.Equal(t, "Acre Bottom", listed[0].Name)
}

func TestDelete_ScopedToOwner(t *testing.T) {
	e, h := setup(t)
	call(t, e, h.Create, http.MethodPost, "user-a", "", `{"name":"North","sizeAcres":1,"soilType":"sand","status":"active"}`)

	rec := call(t, e, h.Delete, http.MethodDelete, "user-b", "1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = call(t, e, h.Delete, http.MethodDelete, "user-a", "1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
