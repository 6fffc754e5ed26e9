package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumina-app/lumina-engine/internal/core/services"
)

// AIHandler exposes the raw generation proxy plus the curated
// activity-suggestion endpoint.
type AIHandler struct {
	gen services.TextGenerator
	svc *services.AIService
}

func NewAIHandler(gen services.TextGenerator, svc *services.AIService) *AIHandler {
	return &AIHandler{gen: gen, svc: svc}
}

type proxyRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

func (h *AIHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/suggestions", h.Suggestions)
}

// RegisterProxy mounts the generation proxy outside the versioned group,
// preserving the path the web client already calls.
func (h *AIHandler) RegisterProxy(router *gin.Engine) {
	router.POST("/api/gemini", h.Proxy)
}

// Proxy godoc
// @Summary  Forward a prompt to the text-generation API
// @Description Keeps the API key server-side. The client sends a prompt and
// @Description receives the generated text verbatim.
// @Tags     ai
// @Accept   json
// @Produce  json
// @Param    prompt body proxyRequest true "Prompt"
// @Success  200 {object} map[string]string
// @Failure  400 {object} map[string]string
// @Failure  502 {object} map[string]string
// @Router   /api/gemini [post]
func (h *AIHandler) Proxy(c *gin.Context) {
	var req proxyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prompt is required"})
		return
	}

	text, err := h.gen.Generate(c.Request.Context(), req.Prompt)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"text": text})
}

// Suggestions godoc
// @Summary  Gentle activity suggestions for a context
// @Description SELF_CARE is served from a fixed local list; OUTDOOR and
// @Description INDOOR are generated, with local fallbacks when the gateway
// @Description is unavailable.
// @Tags     ai
// @Produce  json
// @Param    context query string false "OUTDOOR, INDOOR or SELF_CARE" default(INDOOR)
// @Success  200 {object} map[string][]string
// @Router   /suggestions [get]
func (h *AIHandler) Suggestions(c *gin.Context) {
	activityContext := c.DefaultQuery("context", services.ContextIndoor)

	switch activityContext {
	case services.ContextOutdoor, services.ContextIndoor, services.ContextSelfCare:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "context must be OUTDOOR, INDOOR or SELF_CARE"})
		return
	}

	suggestions := h.svc.ActivitySuggestions(c.Request.Context(), activityContext)
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}
