// internal/handlers/consultant.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pranaara/pranaara-backend/internal/i18n"
	"github.com/pranaara/pranaara-backend/internal/services"
	"github.com/pranaara/pranaara-backend/internal/utils"
)

// ConsultantHandler serves the AI perfume consultant. Its wire format is the
// chat contract the storefront widget consumes, so responses here use the
// consultant's own shapes rather than the standard API envelope.
type ConsultantHandler struct {
	consultantService *services.ConsultantService
}

func NewConsultantHandler(consultantService *services.ConsultantService) *ConsultantHandler {
	return &ConsultantHandler{consultantService: consultantService}
}

// POST /ai-consultant
func (h *ConsultantHandler) Consult(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	if !h.consultantService.Configured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": i18n.T(lang, i18n.KeyConsultantNotConfigured),
		})
		return
	}

	var req services.ConsultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Conversation messages are required",
		})
		return
	}

	resp, err := h.consultantService.Consult(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GET /ai-consultant
//
// Liveness only: reports that the route is up without touching the database
// or the completion provider.
func (h *ConsultantHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "AI Consultant",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
