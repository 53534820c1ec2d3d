package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"farmhub/database"
	"farmhub/entities"
	"farmhub/pkg/auth/controller"
	"farmhub/pkg/auth/repository"
	"farmhub/pkg/auth/repositoryImp"
	"farmhub/pkg/auth/token"
	"farmhub/pkg/httputil"
)

type env struct {
	e      *echo.Echo
	ctrl   controller.AuthController
	users  repository.UserRepository
	tokens *token.Service
}

func setup(t *testing.T) *env {
	t.Helper()
	db := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	tokens, err := token.New("test-secret", time.Hour)
	require.NoError(t, err)
	users := repositoryImp.New(db)
	e := echo.New()
	e.Validator = httputil.NewValidator()
	return &env{e: e, ctrl: New(users, tokens), users: users, tokens: tokens}
}

func (v *env) post(t *testing.T, h echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h(v.e.NewContext(req, rec)))
	return rec
}

const registerBody = `{"name":"Ann","email":"ann@farm.test","password":"hunter22",
	"farmName":"Green Acres","farmLocation":"Dorset","farmSize":42.5,"phone":"555-0101"}`

func TestRegister(t *testing.T) {
	v := setup(t)
	rec := v.post(t, v.ctrl.Register, registerBody)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Token string        `json:"token"`
		User  entities.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.User.ID)
	assert.Equal(t, "ann@farm.test", resp.User.Email)
	assert.Equal(t, "owner", resp.User.Role)

	// token resolves to the new user
	uid, err := v.tokens.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, uid)

	// stored password is a hash, never the plaintext
	stored, err := v.users.FindByID(resp.User.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("hunter22")))

	// and never serialized
	assert.NotContains(t, rec.Body.String(), stored.Password)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	v := setup(t)
	rec := v.post(t, v.ctrl.Register, registerBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	// email matching is case-insensitive
	dup := strings.Replace(registerBody, "ann@farm.test", "ANN@Farm.Test", 1)
	rec = v.post(t, v.ctrl.Register, dup)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email"`)
}

func TestRegister_Validation(t *testing.T) {
	v := setup(t)
	rec := v.post(t, v.ctrl.Register, `{"name":"Ann","email":"not-an-email","password":"abc"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Errors, "email")
	assert.Contains(t, resp.Errors, "password")
	assert.Contains(t, resp.Errors, "farmName")
}

func TestLogin(t *testing.T) {
	v := setup(t)
	v.post(t, v.ctrl.Register, registerBody)

	rec := v.post(t, v.ctrl.Login, `{"email":"Ann@Farm.Test","password":"hunter22"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Token string        `json:"token"`
		User  entities.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.User.LastLogin)
	assert.WithinDuration(t, time.Now(), *resp.User.LastLogin, 5*time.Second)
}

func TestLogin_FailureMessagesIdentical(t *testing.T) {
	// wrong password and unknown email must be indistinguishable
	v := setup(t)
	v.post(t, v.ctrl.Register, registerBody)

	message := func(rec *httptest.ResponseRecorder) string {
		var resp struct {
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		return resp.Message
	}

	wrongPw := v.post(t, v.ctrl.Login, `{"email":"ann@farm.test","password":"wrong"}`)
	unknown := v.post(t, v.ctrl.Login, `{"email":"nobody@farm.test","password":"hunter22"}`)

	assert.Equal(t, http.StatusBadRequest, wrongPw.Code)
	assert.Equal(t, http.StatusBadRequest, unknown.Code)
	assert.Equal(t, message(wrongPw), message(unknown))
}

func TestUpdateProfile(t *testing.T) {
	v := setup(t)
	rec := v.post(t, v.ctrl.Register, registerBody)
	var created struct {
		User entities.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	u, err := v.users.FindByID(created.User.ID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"farmName":"Bigger Acres"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	res := httptest.NewRecorder()
	c := v.e.NewContext(req, res)
	c.Set("user", u)
	require.NoError(t, v.ctrl.UpdateProfile(c))
	require.Equal(t, http.StatusOK, res.Code)

	updated, err := v.users.FindByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bigger Acres", updated.FarmName)
	assert.Equal(t, "Ann", updated.Name) // untouched
}
