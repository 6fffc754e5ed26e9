package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lumina-app/lumina-engine/internal/core/domain"
	"github.com/lumina-app/lumina-engine/internal/core/services"
)

type SettingsHandler struct {
	svc    *services.SettingsService
	export *services.ExportService
}

func NewSettingsHandler(svc *services.SettingsService, export *services.ExportService) *SettingsHandler {
	return &SettingsHandler{svc: svc, export: export}
}

type onboardingRequest struct {
	Name    string             `json:"name" binding:"required"`
	Profile domain.UserProfile `json:"profile"`
}

type clearAllRequest struct {
	Confirm bool `json:"confirm"`
}

func (h *SettingsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/settings", h.Get)
	router.PUT("/settings", h.Update)
	router.POST("/onboarding", h.CompleteOnboarding)
	router.POST("/clear-all", h.ClearAll)
	router.GET("/export", h.Export)
}

// Get godoc
// @Summary  Current user settings
// @Tags     settings
// @Produce  json
// @Success  200 {object} domain.UserSettings
// @Router   /settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.svc.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, settings)
}

// Update godoc
// @Summary  Replace user settings
// @Tags     settings
// @Accept   json
// @Produce  json
// @Param    settings body domain.UserSettings true "Settings"
// @Success  200 {object} domain.UserSettings
// @Failure  400 {object} map[string]string
// @Router   /settings [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	var settings domain.UserSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.svc.Update(c.Request.Context(), settings); err != nil {
		if errors.Is(err, domain.ErrUnknownTheme) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, settings)
}

// CompleteOnboarding godoc
// @Summary  Finish onboarding with a name and optional profile
// @Tags     settings
// @Accept   json
// @Produce  json
// @Param    onboarding body onboardingRequest true "Onboarding data"
// @Success  200 {object} domain.UserSettings
// @Failure  400 {object} map[string]string
// @Router   /onboarding [post]
func (h *SettingsHandler) CompleteOnboarding(c *gin.Context) {
	var req onboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := h.svc.CompleteOnboarding(c.Request.Context(), req.Name, req.Profile)
	if err != nil {
		if errors.Is(err, domain.ErrNameRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, settings)
}

// ClearAll godoc
// @Summary  Erase every stored record and restore default settings
// @Description Destructive. Requires an explicit confirm flag in the body.
// @Tags     settings
// @Accept   json
// @Produce  json
// @Param    confirmation body clearAllRequest true "Confirmation"
// @Success  200 {object} map[string]string
// @Failure  400 {object} map[string]string
// @Router   /clear-all [post]
func (h *SettingsHandler) ClearAll(c *gin.Context) {
	var req clearAllRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.Confirm {
		c.JSON(http.StatusBadRequest, gin.H{"error": "confirmation required to clear all data"})
		return
	}

	if err := h.svc.ClearAll(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

// Export godoc
// @Summary  Download a full backup of the user's data
// @Tags     settings
// @Produce  json
// @Success  200 {object} services.ExportDocument
// @Router   /export [get]
func (h *SettingsHandler) Export(c *gin.Context) {
	payload, err := h.export.Render(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build export"})
		return
	}

	fileName := h.export.FileName(time.Now().UTC())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, "application/json", payload)
}
