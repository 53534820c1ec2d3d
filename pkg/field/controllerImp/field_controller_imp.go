package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"farmhub/entities"
	"farmhub/pkg/field/repository"
	"farmhub/pkg/httputil"
)

type FieldCtrl struct{ repo repository.FieldRepository }

func New(repo repository.FieldRepository) *FieldCtrl { return &FieldCtrl{repo} }

type createReq struct {
	Name      string  `json:"name" validate:"required"`
	SizeAcres float64 `json:"sizeAcres" validate:"required,gt=0"`
	SoilType  string  `json:"soilType" validate:"required,oneof=clay loam sand silt peat"`
	Location  string  `json:"location"`
	Status    string  `json:"status" validate:"required,oneof=active fallow preparation"`
	Notes     string  `json:"notes"`
}

type updateReq struct {
	Name      *string  `json:"name" validate:"omitempty,min=1"`
	SizeAcres *float64 `json:"sizeAcres" validate:"omitempty,gt=0"`
	SoilType  *string  `json:"soilType" validate:"omitempty,oneof=clay loam sand silt peat"`
	Location  *string  `json:"location"`
	Status    *string  `json:"status" validate:"omitempty,oneof=active fallow preparation"`
	Notes     *string  `json:"notes"`
}

func (h *FieldCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	out, err := h.repo.ListByOwner(uid)
	if err != nil {
		return httputil.ServerError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FieldCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req createReq
	if err := httputil.BindStrict(c, &req); err != nil {
		return httputil.BadRequest(c, err)
	}
	f := &entities.Field{
		OwnerID:   uid,
		Name:      req.Name,
		SizeAcres: req.SizeAcres,
		SoilType:  req.SoilType,
		Location:  req.Location,
		Status:    req.Status,
		Notes:     req.Notes,
	}
	if err := h.repo.Create(f); err != nil {
		return httputil.ServerError(c, err)
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *FieldCtrl) Update(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return httputil.NotFound(c)
	}
	var req updateReq
	if err := httputil.BindStrict(c, &req); err != nil {
		return httputil.BadRequest(c, err)
	}

	f, err := h.repo.FindOwned(uint(id), uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httputil.NotFound(c)
		}
		return httputil.ServerError(c, err)
	}

	if req.Name != nil {
		f.Name = *req.Name
	}
	if req.SizeAcres != nil {
		f.SizeAcres = *req.SizeAcres
	}
	if req.SoilType != nil {
		f.SoilType = *req.SoilType
	}
	if req.Location != nil {
		f.Location = *req.Location
	}
	if req.Status != nil {
		f.Status = *req.Status
	}
	if req.Notes != nil {
		f.Notes = *req.Notes
	}

	if err := h.repo.Save(f); err != nil {
		return httputil.ServerError(c, err)
	}
	return c.JSON(http.StatusOK, f)
}

// Delete removes the field only. Crops referencing it do so by name and
// are left untouched.
func (h *FieldCtrl) Delete(c echo.Context) error {
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
