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
	"farmhub/pkg/crop/repository"
	"farmhub/pkg/crop/repositoryImp"
	"farmhub/pkg/httputil"
)

func setup(t *testing.T) (*echo.Echo, *CropCtrl, repository.CropRepository) {
	t.Helper()
	db := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	repo := repositoryImp.New(db)
	e := echo.New()
	e.Validator = httputil.NewValidator()
	return e, New(repo), repo
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

func TestCreateAndListRoundTrip(t *testing.T) {
	e, h, _ := setup(t)

	rec := call(t, e, h.Create, http.MethodPost, "user-a", "",
		`{"name":"Winter Wheat","variety":"Skyfall","fieldName":"North Paddock","status":"planted","plantingDate":"2026-03-15","areaAcres":12.5,"notes":"drilled late"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created entities.Crop
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "user-a", created.OwnerID)

	rec = call(t, e, h.List, http.MethodGet, "user-a", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var listed []entities.Crop
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	got := listed[0]
	assert.Equal(t, "Winter Wheat", got.Name)
	assert.Equal(t, "Skyfall", got.Variety)
	assert.Equal(t, "North Paddock", got.FieldName)
	assert.Equal(t, "planted", got.Status)
	require.NotNil(t, got.PlantingDate)
	assert.Equal(t, "2026-03-15", got.PlantingDate.Format("2006-01-02"))
	require.NotNil(t, got.AreaAcres)
	assert.Equal(t, 12.5, *got.AreaAcres)
	assert.Equal(t, "drilled late", got.Notes)
}

func TestList_ScopedToOwner(t *testing.T) {
	e, h, _ := setup(t)
	call(t, e, h.Create, http.MethodPost, "user-a", "", `{"name":"Wheat","status":"planted"}`)
	call(t, e, h.Create, http.MethodPost, "user-b", "", `{"name":"Barley","status":"planned"}`)

	rec := call(t, e, h.List, http.MethodGet, "user-a", "", "")
	var listed []entities.Crop
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Wheat", listed[0].Name)
}

func TestCreate_Validation(t *testing.T) {
	e, h, _ := setup(t)
	rec := call(t, e, h.Create, http.MethodPost, "user-a", "", `{"status":"rotten"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Errors, "name")
	assert.Contains(t, resp.Errors, "status")
}

func TestCreate_UnknownFieldRejected(t *testing.T) {
	e, h, _ := setup(t)
	rec := call(t, e, h.Create, http.MethodPost, "user-a", "", `{"name":"Wheat","status":"planted","bogus":true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdate_PartialMerge(t *testing.T) {
	e, h, repo := setup(t)
	rec := call(t, e, h.Create, http.MethodPost, "user-a", "", `{"name":"Wheat","variety":"Skyfall","status":"planted"}`)
	var created entities.Crop
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = call(t, e, h.Update, http.MethodPut, "user-a", "1", `{"status":"growing"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	got, err := repo.FindOwned(created.ID, "user-a")
	require.NoError(t, err)
	assert.Equal(t, "growing", got.Status)
	assert.Equal(t, "Skyfall", got.Variety) // absent fields untouched
}

func TestUpdate_CrossOwnerLooksLikeMissing(t *testing.T) {
	e, h, repo := setup(t)
	rec := call(t, e, h.Create, http.MethodPost, "user-a", "", `{"name":"Wheat","status":"planted"}`)
	var created entities.Crop
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = call(t, e, h.Update, http.MethodPut, "user-b", "1", `{"status":"harvested"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// and the record is unchanged
	got, err := repo.FindOwned(created.ID, "user-a")
	require.NoError(t, err)
	assert.Equal(t, "planted", got.Status)
}

func TestDelete_CrossOwnerLooksLikeMissing(t *testing.T) {
	e, h, repo := setup(t)
	call(t, e, h.Create, http.MethodPost, "user-a", "", `{"name":"Wheat","status":"planted"}`)

	rec := call(t, e, h.Delete, http.MethodDelete, "user-b", "1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	_, err := repo.FindOwned(1, "user-a")
	assert.NoError(t, err)
}

func TestDelete_Idempotence(t *testing.T) {
	e, h, _ := setup(t)
	call(t, e, h.Create, http.MethodPost, "user-a", "", `{"name":"Wheat","status":"planted"}`)

	rec := call(t, e, h.Delete, http.MethodDelete, "user-a", "1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	// second delete of the same id is a plain 404, never a 500
	rec = call(t, e, h.Delete, http.MethodDelete, "user-a", "1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdate_BadID(t *testing.T) {
	e, h, _ := setup(t)
	rec := call(t, e, h.Update, http.MethodPut, "user-a", "not-a-number", `{"status":"growing"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
