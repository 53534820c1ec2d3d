package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"farmhub/entities"
	"farmhub/pkg/equipment/repository"
	"farmhub/pkg/httputil"
)

type EquipmentCtrl struct{ repo repository.EquipmentRepository }

func New(repo repository.EquipmentRepository) *EquipmentCtrl { return &EquipmentCtrl{repo} }

type createReq struct {
	Name         string `json:"name" validate:"required"`
	Type         string `json:"type" validate:"required,oneof=tractor harvester irrigation vehicle tool other"`
	Status       string `json:"status" validate:"required,oneof=operational maintenance broken retired"`
	PurchaseDate string `json:"purchaseDate" validate:"omitempty,datetime=2006-01-02"`
	LastServiced string `json:"lastServiced" validate:"omitempty,datetime=2006-01-02"`
	Notes        string `json:"notes"`
}

type updateReq struct {
	Name         *string `json:"name" validate:"omitempty,min=1"`
	Type         *string `json:"type" validate:"omitempty,oneof=tractor harvester irrigation vehicle tool other"`
	Status       *string `json:"status" validate:"omitempty,oneof=operational maintenance broken retired"`
	PurchaseDate *string `json:"purchaseDate" validate:"omitempty,datetime=2006-01-02"`
	LastServiced *string `json:"lastServiced" validate:"omitempty,datetime=2006-01-02"`
	Notes        *string `json:"notes"`
}

func (h *EquipmentCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	out, err := h.repo.ListByOwner(uid)
	if err != nil {
		return httputil.ServerError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *EquipmentCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req createReq
	if err := httputil.BindStrict(c, &req); err != nil {
		return httputil.BadRequest(c, err)
	}
	eq := &entities.Equipment{
		OwnerID:      uid,
		Name:         req.Name,
		Type:         req.Type,
		Status:       req.Status,
		PurchaseDate: httputil.ParseDate(req.PurchaseDate),
		LastServiced: httputil.ParseDate(req.LastServiced),
		Notes:        req.Notes,
	}
	if err := h.repo.Create(eq); err != nil {
		return httputil.ServerError(c, err)
	}
	return c.JSON(http.StatusCreated, eq)
}

func (h *EquipmentCtrl) Update(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return httputil.NotFound(c)
	}
	var req updateReq
	if err := httputil.BindStrict(c, &req); err != nil {
		return httputil.BadRequest(c, err)
	}

	eq, err := h.repo.FindOwned(uint(id), uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httputil.NotFound(c)
		}
		return httputil.ServerError(c, err)
	}

	if req.Name != nil {
		eq.Name = *req.Name
	}
	if req.Type != nil {
		eq.Type = *req.Type
	}
	if req.Status != nil {
		eq.Status = *req.Status
	}
	if req.PurchaseDate != nil {
		eq.PurchaseDate = httputil.ParseDate(*req.PurchaseDate)
	}
	if req.LastServiced != nil {
		eq.LastServiced = httputil.ParseDate(*req.LastServiced)
	}
	if req.Notes != nil {
		eq.Notes = *req.Notes
	}

	if err := h.repo.Save(eq); err != nil {
		return httputil.ServerError(c, err)
	}
	return c.JSON(http.StatusOK, eq)
}

func (h *EquipmentCtrl) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return httputil.NotFound(c)
	}
	ok, err := h.repo.DeleteOwned(uint(id), uid)
	if err != nil {
		return httputil.ServerError(c, err)
	}
	if !ok {
		return httputil.NotFound(c)
	}
	return httputil.Message(c, http.StatusOK, "deleted")
}
