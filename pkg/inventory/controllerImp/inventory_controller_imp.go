package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"farmhub/entities"
	"farmhub/pkg/httputil"
	"farmhub/pkg/inventory/repository"
)

type InventoryCtrl struct{ repo repository.InventoryRepository }

func New(repo repository.InventoryRepository) *InventoryCtrl { return &InventoryCtrl{repo} }

type createReq struct {
	Name       string   `json:"name" validate:"required"`
	Category   string   `json:"category" validate:"required,oneof=seeds fertilizer pesticide feed fuel tools other"`
	Quantity   *float64 `json:"quantity" validate:"required,gte=0"`
	Unit       string   `json:"unit" validate:"required"`
	LowStockAt *float64 `json:"lowStockAt" validate:"omitempty,gte=0"`
	Notes      string   `json:"notes"`
}

type updateReq struct {
	Name       *string  `json:"name" validate:"omitempty,min=1"`
	Category   *string  `json:"category" validate:"omitempty,oneof=seeds fertilizer pesticide feed fuel tools other"`
	Quantity   *float64 `json:"quantity" validate:"omitempty,gte=0"`
	Unit       *string  `json:"unit" validate:"omitempty,min=1"`
	LowStockAt *float64 `json:"lowStockAt" validate:"omitempty,gte=0"`
	Notes      *string  `json:"notes"`
}

func (h *InventoryCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	out, err := h.repo.ListByOwner(uid)
	if err != nil {
		return httputil.ServerError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *InventoryCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req createReq
	if err := httputil.BindStrict(c, &req); err != nil {
		return httputil.BadRequest(c, err)
	}
	it := &entities.InventoryItem{
		OwnerID:    uid,
		Name:       req.Name,
		Category:   req.Category,
		Quantity:   *req.Quantity,
		Unit:       req.Unit,
		LowStockAt: req.LowStockAt,
		Notes:      req.Notes,
	}
	if err := h.repo.Create(it); err != nil {
		return httputil.ServerError(c, err)
	}
	return c.JSON(http.StatusCreated, it)
}

func (h *InventoryCtrl) Update(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return httputil.NotFound(c)
	}
	var req updateReq
	if err := httputil.BindStrict(c, &req); err != nil {
		return httputil.BadRequest(c, err)
	}

	it, err := h.repo.FindOwned(uint(id), uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httputil.NotFound(c)
		}
		return httputil.ServerError(c, err)
	}

	if req.Name != nil {
		it.Name = *req.Name
	}
	if req.Category != nil {
		it.Category = *req.Category
	}
	if req.Quantity != nil {
		it.Quantity = *req.Quantity
	}
	if req.Unit != nil {
		it.Unit = *req.Unit
	}
	if req.LowStockAt != nil {
		it.LowStockAt = req.LowStockAt
	}
	if req.Notes != nil {
		it.Notes = *req.Notes
	}

	if err := h.repo.Save(it); err != nil {
		return httputil.ServerError(c, err)
	}
	return c.JSON(http.StatusOK, it)
}

func (h *InventoryCtrl) Delete(c echo.Context) error {
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
