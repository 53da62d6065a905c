// internal/services/review_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pranaara/pranaara-backend/internal/database"
	"github.com/pranaara/pranaara-backend/internal/models"
	"github.com/pranaara/pranaara-backend/internal/utils"
)

type ReviewService struct {
	db *gorm.DB
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Title   string `json:"title" validate:"max=200"`
	Comment string `json:"comment" validate:"required,min=10,max=2000"`
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

func (s *ReviewService) CreateReview(productID, userID uuid.UUID, req *CreateReviewRequest) (*models.Review, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var product models.Product
	if err := s.db.Where("id = ? AND status = ?", productID, models.ProductStatusActive).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	// One review per user per product
	var existing models.Review
	if err := s.db.Where("product_id = ? AND user_id = ?", productID, userID).
		First(&existing).Error; err == nil {
		return nil, errors.New("you have already reviewed this product")
	}

	review := &models.Review{
		ProductID: productID,
		UserID:    userID,
		Rating:    req.Rating,
		Title:     req.Title,
		Comment:   req.Comment,
	}

	// Review row and product aggregates move together
	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			return fmt.Errorf("failed to create review: %w", err)
		}
		return refreshProductAggregates(tx, productID)
	})
	if err != nil {
		return nil, err
	}

	s.db.Preload("User").First(review, review.ID)

	return review, nil
}

func (s *ReviewService) GetProductReviews(productID uuid.UUID, params utils.PaginationParams) ([]models.Review, int64, error) {
	query := s.db.Model(&models.Review{}).
		Where("product_id = ?", productID).
		Preload("User")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	allowedSortFields := []string{"created_at", "rating"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var reviews []models.Review
	if err := query.Find(&reviews).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch reviews: %w", err)
	}

	return reviews, total, nil
}

func (s *ReviewService) DeleteReview(reviewID, userID uuid.UUID, isAdmin bool) error {
	var review models.Review
	if err := s.db.First(&review, reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("review not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if !isAdmin && review.UserID != userID {
		return errors.New("not allowed to delete this review")
	}

	return database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if err := tx.Delete(&review).Error; err != nil {
			return fmt.Errorf("failed to delete review: %w", err)
		}
		return refreshProductAggregates(tx, review.ProductID)
	})
}

// refreshProductAggregates recomputes the denormalized rating and review
// count stored on the product row. The stored rating averages all reviews;
// the consultant snapshot derives its own top-five figure at read time.
func refreshProductAggregates(db *gorm.DB, productID uuid.UUID) error {
	var stats struct {
		Avg   float64
		Count int64
	}

	if err := db.Model(&models.Review{}).
		Where("product_id = ?", productID).
		Select("COALESCE(AVG(rating), 0) as avg, COUNT(*) as count").
		Scan(&stats).Error; err != nil {
		return fmt.Errorf("failed to compute review stats: %w", err)
	}

	if err := db.Model(&models.Product{}).
		Where("id = ?", productID).
		Updates(map[string]interface{}{
			"rating":       stats.Avg,
			"review_count": stats.Count,
		}).Error; err != nil {
		return fmt.Errorf("failed to update product aggregates: %w", err)
	}

	return nil
}
