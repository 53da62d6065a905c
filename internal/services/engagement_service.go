// internal/services/engagement_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/pranaara/pranaara-backend/internal/models"
	"github.com/pranaara/pranaara-backend/internal/utils"
)

type EngagementService struct {
	db *gorm.DB
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"max=20"`
	Subject string `json:"subject" validate:"required,min=3,max=200"`
	Message string `json:"message" validate:"required,min=10,max=5000"`
}

type NewsletterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"max=100"`
}

func NewEngagementService(db *gorm.DB) *EngagementService {
	return &EngagementService{db: db}
}

func (s *EngagementService) SubmitContactMessage(req *ContactRequest) (*models.ContactMessage, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	message := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := s.db.Create(message).Error; err != nil {
		return nil, fmt.Errorf("failed to save contact message: %w", err)
	}

	return message, nil
}

// SubscribeNewsletter is idempotent: re-subscribing an existing address
// returns the existing row instead of a conflict.
func (s *EngagementService) SubscribeNewsletter(req *NewsletterRequest) (*models.NewsletterSubscriber, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var subscriber models.NewsletterSubscriber
	err := s.db.Where("email = ?", req.Email).First(&subscriber).Error
	if err == nil {
		return &subscriber, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("database error: %w", err)
	}

	subscriber = models.NewsletterSubscriber{
		Email:     req.Email,
		FirstName: req.FirstName,
	}

	if err := s.db.Create(&subscriber).Error; err != nil {
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	return &subscriber, nil
}

func (s *EngagementService) ListContactMessages(params utils.PaginationParams) ([]models.ContactMessage, int64, error) {
	query := s.db.Model(&models.ContactMessage{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count contact messages: %w", err)
	}

	query = utils.ApplySort(query, params, []string{"created_at"})
	query = utils.ApplyPagination(query, params)

	var messages []models.ContactMessage
	if err := query.Find(&messages).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch contact messages: %w", err)
	}

	return messages, total, nil
}
