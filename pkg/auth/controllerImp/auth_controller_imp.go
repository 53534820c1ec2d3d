package controllerImp

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"farmhub/entities"
	"farmhub/pkg/auth/controller"
	"farmhub/pkg/auth/repository"
	"farmhub/pkg/auth/token"
	"farmhub/pkg/httputil"
)

// loginFailedMsg is deliberately the same for unknown email and wrong
// password so callers cannot probe which accounts exist.
const loginFailedMsg = "invalid email or password"

type authCtrl struct {
	users  repository.UserRepository
	tokens *token.Service
}

func New(users repository.UserRepository, tokens *token.Service) controller.AuthController {
	return &authCtrl{users: users, tokens: tokens}
}

type registerReq struct {
	Name         string   `json:"name" validate:"required"`
	Email        string   `json:"email" validate:"required,email"`
	Password     string   `json:"password" validate:"required,min=6"`
	FarmName     string   `json:"farmName" validate:"required"`
	FarmLocation string   `json:"farmLocation" validate:"required"`
	FarmSize     *float64 `json:"farmSize" validate:"omitempty,gt=0"`
	Phone        string   `json:"phone"`
}

func (h *authCtrl) Register(c echo.Context) error {
	var req registerReq
	if err := httputil.BindStrict(c, &req); err != nil {
		return httputil.BadRequest(c, err)
	}

	if _, err := h.users.FindByEmail(req.Email); err == nil {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"message": "email already registered",
			"errors":  map[string]string{"email": "already registered"},
		})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return httputil.ServerError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return httputil.ServerError(c, err)
	}

	u := &entities.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		Password:     string(hash),
		FarmName:     req.FarmName,
		FarmLocation: req.FarmLocation,
		FarmSize:     req.FarmSize,
		Phone:        req.Phone,
		Role:         "owner",
	}
	if err := h.users.Create(u); err != nil {
		return httputil.ServerError(c, err)
	}

	tok, err := h.tokens.Issue(u.ID)
	if err != nil {
		return httputil.ServerError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"token": tok, "user": u})
}

type loginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *authCtrl) Login(c echo.Context) error {
	var req loginReq
	if err := httputil.BindStrict(c, &req); err != nil {
		return httputil.BadRequest(c, err)
	}

	u, err := h.users.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httputil.Message(c, http.StatusBadRequest, loginFailedMsg)
		}
		return httputil.ServerError(c, err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return httputil.Message(c, http.StatusBadRequest, loginFailedMsg)
	}

	now := time.Now()
	u.LastLogin = &now
	if err := h.users.Save(u); err != nil {
		return httputil.ServerError(c, err)
	}

	tok, err := h.tokens.Issue(u.ID)
	if err != nil {
		return httputil.ServerError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"token": tok, "user": u})
}

func (h *authCtrl) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, c.Get("user").(*entities.User))
}

type profileReq struct {
	Name         *string  `json:"name" validate:"omitempty,min=1"`
	FarmName     *string  `json:"farmName" validate:"omitempty,min=1"`
	FarmLocation *string  `json:"farmLocation" validate:"omitempty,min=1"`
	FarmSize     *float64 `json:"farmSize" validate:"omitempty,gt=0"`
	Phone        *string  `json:"phone"`
}

func (h *authCtrl) UpdateProfile(c echo.Context) error {
	var req profileReq
	if err := httputil.BindStrict(c, &req); err != nil {
		return httputil.BadRequest(c, err)
	}

	u := c.Get("user").(*entities.User)
	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.FarmName != nil {
		u.FarmName = *req.FarmName
	}
	if req.FarmLocation != nil {
		u.FarmLocation = *req.FarmLocation
	}
	if req.FarmSize != nil {
		u.FarmSize = req.FarmSize
	}
	if req.Phone != nil {
		u.Phone = *req.Phone
	}
	if err := h.users.Save(u); err != nil {
		return httputil.ServerError(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

// DeleteAccount is a stub; accounts are never hard-deleted here.
func (h *authCtrl) DeleteAccount(c echo.Context) error {
	return httputil.Message(c, http.StatusOK, "account deletion is not available yet")
}

// Logout is an acknowledgment only. Tokens are stateless and stay valid
// until expiry; the client discards its copy.
func (h *authCtrl) Logout(c echo.Context) error {
	return httputil.Message(c, http.StatusOK, "logged out")
}
