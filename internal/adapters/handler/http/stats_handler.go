package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lumina-app/lumina-engine/internal/core/domain"
	"github.com/lumina-app/lumina-engine/internal/core/services"
)

type StatsHandler struct {
	stats    *services.StatsService
	reports  *services.ReportService
	settings *services.SettingsService
}

func NewStatsHandler(stats *services.StatsService, reports *services.ReportService, settings *services.SettingsService) *StatsHandler {
	return &StatsHandler{stats: stats, reports: reports, settings: settings}
}

func (h *StatsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/stats", h.Get)
	router.GET("/reports/monthly", h.MonthlyReport)
}

// Get godoc
// @Summary  Derived analytics for a time window
// @Tags     stats
// @Produce  json
// @Param    timeframe query string false "DAY, MONTH or YEAR" default(MONTH)
// @Param    date query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Success  200 {object} domain.Statistics
// @Failure  400 {object} map[string]string
// @Router   /stats [get]
func (h *StatsHandler) Get(c *gin.Context) {
	tf := domain.TimeFrame(c.DefaultQuery("timeframe", string(domain.TimeFrameMonth)))
	if !domain.ValidTimeFrame(tf) {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidTimeFrame.Error()})
		return
	}

	ref := time.Now().UTC()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, expected YYYY-MM-DD"})
			return
		}
		ref = parsed
	}

	stats, err := h.stats.Get(c.Request.Context(), domain.StatsInput{TimeFrame: tf, Date: ref})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute statistics"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// MonthlyReport godoc
// @Summary  Cached monthly wellbeing narrative
// @Description Returns the cached report when the month's data has not
// @Description changed, otherwise regenerates it through the AI gateway.
// @Tags     stats
// @Produce  json
// @Param    year query int false "Year, defaults to current"
// @Param    month query int false "Month 1-12, defaults to current"
// @Success  200 {object} map[string]string
// @Failure  400 {object} map[string]string
// @Router   /reports/monthly [get]
func (h *StatsHandler) MonthlyReport(c *gin.Context) {
	now := time.Now().UTC()

	year := now.Year()
	if yearStr := c.Query("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil || parsed < 1970 || parsed > 9999 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
			return
		}
		year = parsed
	}

	month := int(now.Month())
	if monthStr := c.Query("month"); monthStr != "" {
		parsed, err := strconv.Atoi(monthStr)
		if err != nil || parsed < 1 || parsed > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month, expected 1-12"})
			return
		}
		month = parsed
	}

	userName := ""
	if settings, err := h.settings.Get(c.Request.Context()); err == nil {
		userName = settings.Name
	}

	report, err := h.reports.MonthlyReport(c.Request.Context(), userName, year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": report})
}
