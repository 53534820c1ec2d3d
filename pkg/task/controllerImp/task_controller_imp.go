package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"farmhub/entities"
	"farmhub/pkg/httputil"
	"farmhub/pkg/task/repository"
)

const statusCompleted = "completed"

type TaskCtrl struct{ repo repository.TaskRepository }

func New(repo repository.TaskRepository) *TaskCtrl { return &TaskCtrl{repo} }

type createReq struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category" validate:"required,oneof=planting irrigation fertilizing harvesting maintenance other"`
	Status      string `json:"status" validate:"required,oneof=pending in_progress completed"`
	Priority    string `json:"priority" validate:"required,oneof=low medium high"`
	DueDate     string `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
	CompletedAt string `json:"completedAt" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Notes       string `json:"notes"`
}

type updateReq struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Category    *string `json:"category" validate:"omitempty,oneof=planting irrigation fertilizing harvesting maintenance other"`
	Status      *string `json:"status" validate:"omitempty,oneof=pending in_progress completed"`
	Priority    *string `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     *string `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
	CompletedAt *string `json:"completedAt" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Notes       *string `json:"notes"`
}

func (h *TaskCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	out, err := h.repo.ListByOwner(uid)
	if err != nil {
		return httputil.ServerError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TaskCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req createReq
	if err := httputil.BindStrict(c, &req); err != nil {
		return httputil.BadRequest(c, err)
	}
	t := &entities.Task{
		OwnerID:     uid,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     httputil.ParseDate(req.DueDate),
		CompletedAt: httputil.ParseTime(req.CompletedAt),
		Notes:       req.Notes,
	}
	if t.Status == statusCompleted && t.CompletedAt == nil {
		now := time.Now()
		t.CompletedAt = &now
	}
	if err := h.repo.Create(t); err != nil {
		return httputil.ServerError(c, err)
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *TaskCtrl) Update(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return httputil.NotFound(c)
	}
	var req updateReq
	if err := httputil.BindStrict(c, &req); err != nil {
		return httputil.BadRequest(c, err)
	}

	t, err := h.repo.FindOwned(uint(id), uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httputil.NotFound(c)
		}
		return httputil.ServerError(c, err)
	}

	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Category != nil {
		t.Category = *req.Category
	}
	if req.Priority != nil {
		t.Priority = *req.Priority
	}
	if req.DueDate != nil {
		t.DueDate = httputil.ParseDate(*req.DueDate)
	}
	if req.CompletedAt != nil {
		t.CompletedAt = httputil.ParseTime(*req.CompletedAt)
	}
	if req.Status != nil {
		t.Status = *req.Status
		// completing without an explicit timestamp stamps the current time
		if t.Status == statusCompleted && req.CompletedAt == nil && t.CompletedAt == nil {
			now := time.Now()
			t.CompletedAt = &now
		}
	}
	if req.Notes != nil {
		t.Notes = *req.Notes
	}

	if err := h.repo.Save(t); err != nil {
		return httputil.ServerError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

func (h *TaskCtrl) Delete(c echo.Context) error {
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
