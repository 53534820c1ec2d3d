package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"farmhub/entities"
	"farmhub/pkg/finance/repository"
	"farmhub/pkg/finance/service"
	"farmhub/pkg/httputil"
)

type FinanceCtrl struct {
	repo repository.TransactionRepository
	svc  service.FinanceService
}

func New(repo repository.TransactionRepository, svc service.FinanceService) *FinanceCtrl {
	return &FinanceCtrl{repo: repo, svc: svc}
}

type createReq struct {
	Type        string   `json:"type" validate:"required,oneof=income expense"`
	Category    string   `json:"category" validate:"required"`
	Amount      *float64 `json:"amount" validate:"required,gt=0"`
	Date        string   `json:"date" validate:"required,datetime=2006-01-02"`
	Description string   `json:"description"`
}

type updateReq struct {
	Type        *string  `json:"type" validate:"omitempty,oneof=income expense"`
	Category    *string  `json:"category" validate:"omitempty,min=1"`
	Amount      *float64 `json:"amount" validate:"omitempty,gt=0"`
	Date        *string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Description *string  `json:"description"`
}

func (h *FinanceCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	out, err := h.repo.ListByOwner(uid)
	if err != nil {
		return httputil.ServerError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FinanceCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req createReq
	if err := httputil.BindStrict(c, &req); err != nil {
		return httputil.BadRequest(c, err)
	}
	tx := &entities.Transaction{
		OwnerID:     uid,
		Type:        req.Type,
		Category:    req.Category,
		Amount:      *req.Amount,
		Date:        *httputil.ParseDate(req.Date),
		Description: req.Description,
	}
	if err := h.repo.Create(tx); err != nil {
		return httputil.ServerError(c, err)
	}
	return c.JSON(http.StatusCreated, tx)
}

func (h *FinanceCtrl) Update(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return httputil.NotFound(c)
	}
	var req updateReq
	if err := httputil.BindStrict(c, &req); err != nil {
		return httputil.BadRequest(c, err)
	}

	tx, err := h.repo.FindOwned(uint(id), uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httputil.NotFound(c)
		}
		return httputil.ServerError(c, err)
	}

	if req.Type != nil {
		tx.Type = *req.Type
	}
	if req.Category != nil {
		tx.Category = *req.Category
	}
	if req.Amount != nil {
		tx.Amount = *req.Amount
	}
	if req.Date != nil {
		if d := httputil.ParseDate(*req.Date); d != nil {
			tx.Date = *d
		}
	}
	if req.Description != nil {
		tx.Description = *req.Description
	}

	if err := h.repo.Save(tx); err != nil {
		return httputil.ServerError(c, err)
	}
	return c.JSON(http.StatusOK, tx)
}

func (h *FinanceCtrl) Delete(c echo.Context) error {
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

func (h *FinanceCtrl) Summary(c echo.Context) error {
	uid := c.Get("uid").(string)
	sum, err := h.svc.Summary(uid)
	if err != nil {
		return httputil.ServerError(c, err)
	}
	return c.JSON(http.StatusOK, sum)
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *FinanceCtrl) Export(c echo.Context) error {
	uid := c.Get("uid").(string)
	f, err := h.svc.Report(uid)
	if err != nil {
		return httputil.ServerError(c, err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return httputil.ServerError(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="finance-report.xlsx"`)
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}
