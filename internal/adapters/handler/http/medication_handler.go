package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumina-app/lumina-engine/internal/core/domain"
	"github.com/lumina-app/lumina-engine/internal/core/services"
)

type MedicationHandler struct {
	svc *services.MedicationService
}

func NewMedicationHandler(svc *services.MedicationService) *MedicationHandler {
	return &MedicationHandler{svc: svc}
}

type addMedicationRequest struct {
	Name string `json:"name" binding:"required"`
}

type toggleDoseRequest struct {
	Date  string `json:"date" binding:"required"`
	Index *int   `json:"index" binding:"required"`
}

func (h *MedicationHandler) RegisterRoutes(router *gin.RouterGroup) {
	meds := router.Group("/medications")
	{
		meds.GET("", h.List)
		meds.POST("", h.Add)
		meds.PUT("/:id", h.Update)
		meds.DELETE("/:id", h.Remove)
		meds.POST("/:id/doses", h.ToggleDose)
	}
}

// List godoc
// @Summary  List medications
// @Tags     medications
// @Produce  json
// @Success  200 {array} domain.Medication
// @Router   /medications [get]
func (h *MedicationHandler) List(c *gin.Context) {
	meds, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, meds)
}

// Add godoc
// @Summary  Add a medication by name
// @Tags     medications
// @Accept   json
// @Produce  json
// @Param    medication body addMedicationRequest true "Medication name"
// @Success  201 {object} domain.Medication
// @Failure  400 {object} map[string]string
// @Router   /medications [post]
func (h *MedicationHandler) Add(c *gin.Context) {
	var req addMedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	med, err := h.svc.Add(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrMedicationNameEmpty) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, med)
}

// Update godoc
// @Summary  Replace a medication's configuration
// @Tags     medications
// @Accept   json
// @Produce  json
// @Param    id path string true "Medication ID"
// @Param    medication body domain.Medication true "Medication"
// @Success  200 {object} domain.Medication
// @Failure  404 {object} map[string]string
// @Router   /medications/{id} [put]
func (h *MedicationHandler) Update(c *gin.Context) {
	var med domain.Medication
	if err := c.ShouldBindJSON(&med); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	med.ID = c.Param("id")

	updated, err := h.svc.Update(c.Request.Context(), med)
	if err != nil {
		if errors.Is(err, domain.ErrMedicationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "medication not found"})
			return
		}
		if errors.Is(err, domain.ErrMedicationNameEmpty) ||
			errors.Is(err, domain.ErrInvalidFrequency) ||
			errors.Is(err, domain.ErrInvalidDosageCount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Remove godoc
// @Summary  Delete a medication
// @Tags     medications
// @Param    id path string true "Medication ID"
// @Success  204
// @Failure  404 {object} map[string]string
// @Router   /medications/{id} [delete]
func (h *MedicationHandler) Remove(c *gin.Context) {
	err := h.svc.Remove(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrMedicationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "medication not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}

// ToggleDose godoc
// @Summary  Toggle a dose checkbox for a date
// @Description Checking the next pending dose advances the count, checking
// @Description an earlier one rolls back to it, anything past the next dose
// @Description is ignored.
// @Tags     medications
// @Accept   json
// @Produce  json
// @Param    id path string true "Medication ID"
// @Param    dose body toggleDoseRequest true "Date and dose index"
// @Success  200 {object} domain.Medication
// @Failure  404 {object} map[string]string
// @Router   /medications/{id}/doses [post]
func (h *MedicationHandler) ToggleDose(c *gin.Context) {
	var req toggleDoseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	med, err := h.svc.ToggleDose(c.Request.Context(), c.Param("id"), req.Date, *req.Index)
	if err != nil {
		if errors.Is(err, domain.ErrMedicationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "medication not found"})
			return
		}
		if errors.Is(err, domain.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, med)
}
