// internal/handlers/engagement.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/pranaara/pranaara-backend/internal/i18n"
	"github.com/pranaara/pranaara-backend/internal/services"
	"github.com/pranaara/pranaara-backend/internal/utils"
)

type EngagementHandler struct {
	engagementService *services.EngagementService
}

func NewEngagementHandler(engagementService *services.EngagementService) *EngagementHandler {
	return &EngagementHandler{engagementService: engagementService}
}

// POST /contact
func (h *EngagementHandler) SubmitContact(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if _, err := h.engagementService.SubmitContactMessage(&req); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyContactReceived),
	})
}

// POST /newsletter/subscribe
func (h *EngagementHandler) SubscribeNewsletter(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if _, err := h.engagementService.SubscribeNewsletter(&req); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyNewsletterSubscribed),
	})
}

// GET /admin/contact-messages
func (h *EngagementHandler) ListContactMessages(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	messages, total, err := h.engagementService.ListContactMessages(params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(messages, total, params)
	utils.PaginatedResponse(c, result)
}
