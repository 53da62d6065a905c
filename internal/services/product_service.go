// internal/services/product_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/pranaara/pranaara-backend/internal/models"
	"github.com/pranaara/pranaara-backend/internal/utils"
)

type ProductService struct {
	db *gorm.DB
}

type ProductSearchParams struct {
	utils.PaginationParams
	Gender          *models.Gender `json:"gender,omitempty"`
	FragranceFamily string         `json:"fragrance_family,omitempty"`
	Season          string         `json:"season,omitempty"`
	Occasion        string         `json:"occasion,omitempty"`
	PriceMin        *float64       `json:"price_min,omitempty"`
	PriceMax        *float64       `json:"price_max,omitempty"`
	Featured        *bool          `json:"featured,omitempty"`
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

func (s *ProductService) SearchProducts(params ProductSearchParams) ([]models.Product, int64, error) {
	query := s.db.Model(&models.Product{}).
		Where("status = ?", models.ProductStatusActive).
		Preload("Category")

	// Apply filters
	if params.Category != "" {
		query = query.Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.slug = ?", params.Category)
	}

	if params.Gender != nil {
		query = query.Where("gender = ?", *params.Gender)
	}

	if params.FragranceFamily != "" {
		query = query.Where("fragrance_family = ?", params.FragranceFamily)
	}

	if params.Season != "" {
		query = query.Where("? = ANY(season)", params.Season)
	}

	if params.Occasion != "" {
		query = query.Where("? = ANY(occasion)", params.Occasion)
	}

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(products.name) LIKE ? OR LOWER(products.description) LIKE ?", searchTerm, searchTerm)
	}

	if params.PriceMin != nil {
		query = query.Where("price >= ?", *params.PriceMin)
	}

	if params.PriceMax != nil {
		query = query.Where("price <= ?", *params.PriceMax)
	}

	if params.Featured != nil {
		query = query.Where("featured = ?", *params.Featured)
	}

	// Get total count
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	// Apply sorting
	allowedSortFields := []string{"created_at", "updated_at", "name", "price", "rating", "view_count"}
	query = utils.ApplySort(query, params.PaginationParams, allowedSortFields)

	// Apply pagination
	query = utils.ApplyPagination(query, params.PaginationParams)

	// Execute query
	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, total, nil
}

func (s *ProductService) GetProductBySlug(slug string) (*models.Product, error) {
	var product models.Product
	query := s.db.Preload("Category").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC").Limit(20)
		}).
		Preload("Reviews.User")

	if err := query.Where("slug = ? AND status = ?", slug, models.ProductStatusActive).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	go s.incrementViewCount(product.ID.String())

	return &product, nil
}

func (s *ProductService) GetFeaturedProducts(limit int) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Where("status = ? AND featured = ?", models.ProductStatusActive, true).
		Order("created_at DESC").
		Limit(limit).
		Preload("Category").
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch featured products: %w", err)
	}

	return products, nil
}

func (s *ProductService) GetRelatedProducts(product *models.Product, limit int) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Where("status = ? AND category_id = ? AND id != ?",
		models.ProductStatusActive, product.CategoryID, product.ID).
		Order("rating DESC, view_count DESC").
		Limit(limit).
		Preload("Category").
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch related products: %w", err)
	}

	return products, nil
}

func (s *ProductService) GetCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	return categories, nil
}

// CatalogSnapshot projects the active catalog into the denormalized form the
// consultant pipeline embeds into its prompt. The rating aggregate is the
// mean of the five highest-rated reviews per product, zero when unreviewed.
// Any storage error degrades to an empty snapshot so the consultant can still
// hold a conversation without recommendations.
func (s *ProductService) CatalogSnapshot(ctx context.Context, limit int) []CatalogSnapshotItem {
	var products []models.Product
	err := s.db.WithContext(ctx).
		Where("status = ?", models.ProductStatusActive).
		Preload("Category").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("rating DESC")
		}).
		Limit(limit).
		Find(&products).Error
	if err != nil {
		logrus.WithError(err).Warn("Catalog snapshot unavailable, continuing with empty catalog")
		return []CatalogSnapshotItem{}
	}

	items := make([]CatalogSnapshotItem, 0, len(products))
	for _, product := range products {
		item := CatalogSnapshotItem{
			ID:               product.ID.String(),
			Name:             product.Name,
			Slug:             product.Slug,
			Description:      product.Description,
			ShortDescription: product.ShortDescription,
			Price:            product.Price,
			CompareAtPrice:   product.CompareAtPrice,
			Category:         product.Category.Name,
			FragranceFamily:  product.FragranceFamily,
			TopNotes:         product.TopNotes,
			HeartNotes:       product.HeartNotes,
			BaseNotes:        product.BaseNotes,
			Sillage:          product.Sillage,
			Longevity:        product.Longevity,
			Season:           strings.Join(product.Season, ", "),
			Occasion:         strings.Join(product.Occasion, ", "),
			Gender:           string(product.Gender),
			Image:            defaultProductImage,
			ReviewCount:      len(product.Reviews),
		}

		if len(product.Images) > 0 {
			item.Image = product.Images[0]
		}

		// Mean of the top five reviews; Reviews are preloaded rating-desc.
		topReviews := product.Reviews
		if len(topReviews) > 5 {
			topReviews = topReviews[:5]
		}
		if len(topReviews) > 0 {
			sum := 0
			for _, review := range topReviews {
				sum += review.Rating
			}
			item.Rating = float64(sum) / float64(len(topReviews))
			item.ReviewCount = len(topReviews)
		}

		items = append(items, item)
	}

	return items
}

// Helper methods

func (s *ProductService) incrementViewCount(productID string) {
	s.db.Model(&models.Product{}).Where("id = ?", productID).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))
}
