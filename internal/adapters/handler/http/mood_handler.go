package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumina-app/lumina-engine/internal/core/domain"
	"github.com/lumina-app/lumina-engine/internal/core/services"
)

type MoodHandler struct {
	svc *services.JournalService
}

func NewMoodHandler(svc *services.JournalService) *MoodHandler {
	return &MoodHandler{svc: svc}
}

type upsertMoodRequest struct {
	Mood             string   `json:"mood" binding:"required"`
	SpecificEmotions []string `json:"specificEmotions"`
	Factors          []string `json:"factors"`
	Note             string   `json:"note"`
	Therapy          bool     `json:"therapy"`
}

type appendActivitiesRequest struct {
	Activities []string `json:"activities" binding:"required"`
}

func (h *MoodHandler) RegisterRoutes(router *gin.RouterGroup) {
	moods := router.Group("/moods")
	{
		moods.GET("", h.List)
		moods.GET("/:date", h.Get)
		moods.PUT("/:date", h.Upsert)
		moods.POST("/:date/activities", h.AppendActivities)
	}
}

// List godoc
// @Summary  List all day records
// @Tags     moods
// @Produce  json
// @Success  200 {array} domain.DayRecord
// @Router   /moods [get]
func (h *MoodHandler) List(c *gin.Context) {
	records, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, records)
}

// Get godoc
// @Summary  Get the day record for a date
// @Tags     moods
// @Produce  json
// @Param    date path string true "Date (YYYY-MM-DD)"
// @Success  200 {object} domain.DayRecord
// @Failure  404 {object} map[string]string
// @Router   /moods/{date} [get]
func (h *MoodHandler) Get(c *gin.Context) {
	record, err := h.svc.Get(c.Request.Context(), c.Param("date"))
	if err != nil {
		if errors.Is(err, domain.ErrDayRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "day record not found"})
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
// @Summary  Create or replace the mood entry for a date
// @Tags     moods
// @Accept   json
// @Produce  json
// @Param    date path string true "Date (YYYY-MM-DD)"
// @Param    record body upsertMoodRequest true "Mood entry"
// @Success  200 {object} domain.DayRecord
// @Failure  400 {object} map[string]string
// @Router   /moods/{date} [put]
func (h *MoodHandler) Upsert(c *gin.Context) {
	var req upsertMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := services.UpsertMoodInput{
		Date:             c.Param("date"),
		Mood:             domain.MoodType(req.Mood),
		SpecificEmotions: req.SpecificEmotions,
		Factors:          req.Factors,
		Note:             req.Note,
		Therapy:          req.Therapy,
	}

	record, err := h.svc.UpsertMood(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDate) || errors.Is(err, domain.ErrInvalidMood) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, record)
}

// AppendActivities godoc
// @Summary  Append completed activities to a date
// @Tags     moods
// @Accept   json
// @Produce  json
// @Param    date path string true "Date (YYYY-MM-DD)"
// @Param    activities body appendActivitiesRequest true "Activity names"
// @Success  200 {object} domain.DayRecord
// @Failure  400 {object} map[string]string
// @Router   /moods/{date}/activities [post]
func (h *MoodHandler) AppendActivities(c *gin.Context) {
	var req appendActivitiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.svc.AppendActivities(c.Request.Context(), c.Param("date"), req.Activities)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDate) || errors.Is(err, domain.ErrNoActivities) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, record)
}
