package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"farmhub/entities"
	"farmhub/pkg/crop/repository"
	"farmhub/pkg/httputil"
)

type CropCtrl struct{ repo repository.CropRepository }

func New(repo repository.CropRepository) *CropCtrl { return &CropCtrl{repo} }

type createReq struct {
	Name            string   `json:"name" validate:"required"`
	Variety         string   `json:"variety"`
	FieldName       string   `json:"fieldName"`
	Status          string   `json:"status" validate:"required,oneof=planned planted growing harvested"`
	PlantingDate    string   `json:"plantingDate" validate:"omitempty,datetime=2006-01-02"`
	ExpectedHarvest string   `json:"expectedHarvest" validate:"omitempty,datetime=2006-01-02"`
	AreaAcres       *float64 `json:"areaAcres" validate:"omitempty,gt=0"`
	Notes           string   `json:"notes"`
}

type updateReq struct {
	Name            *string  `json:"name" validate:"omitempty,min=1"`
	Variety         *string  `json:"variety"`
	FieldName       *string  `json:"fieldName"`
	Status          *string  `json:"status" validate:"omitempty,oneof=planned planted growing harvested"`
	PlantingDate    *string  `json:"plantingDate" validate:"omitempty,datetime=2006-01-02"`
	ExpectedHarvest *string  `json:"expectedHarvest" validate:"omitempty,datetime=2006-01-02"`
	AreaAcres       *float64 `json:"areaAcres" validate:"omitempty,gt=0"`
	Notes           *string  `json:"notes"`
}

func (h *CropCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	out, err := h.repo.ListByOwner(uid)
	if err != nil {
		return httputil.ServerError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CropCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req createReq
	if err := httputil.BindStrict(c, &req); err != nil {
		return httputil.BadRequest(c, err)
	}
	cr := &entities.Crop{
		OwnerID:         uid,
		Name:            req.Name,
		Variety:         req.Variety,
		FieldName:       req.FieldName,
		Status:          req.Status,
		PlantingDate:    httputil.ParseDate(req.PlantingDate),
		ExpectedHarvest: httputil.ParseDate(req.ExpectedHarvest),
		AreaAcres:       req.AreaAcres,
		Notes:           req.Notes,
	}
	if err := h.repo.Create(cr); err != nil {
		return httputil.ServerError(c, err)
	}
	return c.JSON(http.StatusCreated, cr)
}

func (h *CropCtrl) Update(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return httputil.NotFound(c)
	}
	var req updateReq
	if err := httputil.BindStrict(c, &req); err != nil {
		return httputil.BadRequest(c, err)
	}

	cr, err := h.repo.FindOwned(uint(id), uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httputil.NotFound(c)
		}
		return httputil.ServerError(c, err)
	}

	if req.Name != nil {
		cr.Name = *req.Name
	}
	if req.Variety != nil {
		cr.Variety = *req.Variety
	}
	if req.FieldName != nil {
		cr.FieldName = *req.FieldName
	}
	if req.Status != nil {
		cr.Status = *req.Status
	}
	if req.PlantingDate != nil {
		cr.PlantingDate = httputil.ParseDate(*req.PlantingDate)
	}
	if req.ExpectedHarvest != nil {
		cr.ExpectedHarvest = httputil.ParseDate(*req.ExpectedHarvest)
	}
	if req.AreaAcres != nil {
		cr.AreaAcres = req.AreaAcres
	}
	if req.Notes != nil {
		cr.Notes = *req.Notes
	}

	if err := h.repo.Save(cr); err != nil {
		return httputil.ServerError(c, err)
	}
	return c.JSON(http.StatusOK, cr)
}

func (h *CropCtrl) Delete(c echo.Context) error {
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
