package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumina-app/lumina-engine/internal/core/domain"
	"github.com/lumina-app/lumina-engine/internal/core/services"
	"github.com/lumina-app/lumina-engine/internal/core/workers"
)

type TaskHandler struct {
	svc      *services.TaskService
	settings *services.SettingsService
	worker   *workers.MessageWorker
}

// NewTaskHandler wires the task service with the optional encouragement
// worker. A nil worker disables message generation entirely.
func NewTaskHandler(svc *services.TaskService, settings *services.SettingsService, worker *workers.MessageWorker) *TaskHandler {
	return &TaskHandler{svc: svc, settings: settings, worker: worker}
}

type upsertTaskRequest struct {
	Completed *int `json:"completed" binding:"required"`
	Target    *int `json:"target" binding:"required"`
}

func (h *TaskHandler) RegisterRoutes(router *gin.RouterGroup) {
	tasks := router.Group("/tasks")
	{
		tasks.GET("", h.List)
		tasks.GET("/:date", h.Get)
		tasks.PUT("/:date", h.Upsert)
	}
}

// List godoc
// @Summary  List all daily task records
// @Tags     tasks
// @Produce  json
// @Success  200 {array} domain.TaskRecord
// @Router   /tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	records, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, records)
}

// Get godoc
// @Summary  Get the task record for a date
// @Tags     tasks
// @Produce  json
// @Param    date path string true "Date (YYYY-MM-DD)"
// @Success  200 {object} domain.TaskRecord
// @Failure  404 {object} map[string]string
// @Router   /tasks/{date} [get]
func (h *TaskHandler) Get(c *gin.Context) {
	record, err := h.svc.Get(c.Request.Context(), c.Param("date"))
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "task record not found"})
			return
		}
		if errors.Is(err, domain.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, record)
}

// Upsert godoc
// @Summary  Record daily task progress for a date
// @Description Updates completed/target counts. When progress changes, a
// @Description fresh encouragement message is generated in the background.
// @Tags     tasks
// @Accept   json
// @Produce  json
// @Param    date path string true "Date (YYYY-MM-DD)"
// @Param    progress body upsertTaskRequest true "Progress counts"
// @Success  200 {object} domain.TaskRecord
// @Failure  400 {object} map[string]string
// @Router   /tasks/{date} [put]
func (h *TaskHandler) Upsert(c *gin.Context) {
	var req upsertTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date := c.Param("date")

	existing, err := h.svc.Get(c.Request.Context(), date)
	if err != nil && !errors.Is(err, domain.ErrTaskNotFound) {
		if errors.Is(err, domain.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	input := services.UpsertTaskInput{
		Date:      date,
		Completed: *req.Completed,
		Target:    *req.Target,
	}

	record, err := h.svc.Upsert(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDate) ||
			errors.Is(err, domain.ErrNegativeCompleted) ||
			errors.Is(err, domain.ErrInvalidTarget) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if h.worker != nil && workers.ShouldRegenerate(existing, *req.Completed, *req.Target) {
		userName := ""
		if settings, err := h.settings.Get(c.Request.Context()); err == nil {
			userName = settings.Name
		}

		h.worker.Enqueue(workers.MessageJob{
			Date:      date,
			Completed: *req.Completed,
			Target:    *req.Target,
			UserName:  userName,
		})
	}

	c.JSON(http.StatusOK, record)
}
