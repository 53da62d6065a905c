// internal/models/product.go
package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Category struct {
	BaseModel
	Name        string `json:"name" gorm:"size:100;not null"`
	Slug        string `json:"slug" gorm:"uniqueIndex;size:100;not null"`
	Description string `json:"description" gorm:"type:text"`

	Products []Product `json:"products,omitempty" gorm:"foreignKey:CategoryID"`
}

type Product struct {
	BaseModel
	CategoryID       uuid.UUID      `json:"category_id" gorm:"type:uuid;not null;index"`
	Name             string         `json:"name" gorm:"size:255;not null"`
	Slug             string         `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	Description      string         `json:"description" gorm:"type:text"`
	ShortDescription string         `json:"short_description" gorm:"size:500"`
	Price            float64        `json:"price" gorm:"type:decimal(10,2);not null"`
	CompareAtPrice   *float64       `json:"compare_at_price,omitempty" gorm:"type:decimal(10,2)"`
	Quantity         int            `json:"quantity" gorm:"default:0"`
	WeightValue      float64        `json:"weight_value" gorm:"type:decimal(8,2)"`
	WeightUnit       string         `json:"weight_unit" gorm:"size:10;default:'ml'"`
	FragranceFamily  string         `json:"fragrance_family" gorm:"size:100;index"`
	TopNotes         string         `json:"top_notes" gorm:"size:500"`
	HeartNotes       string         `json:"heart_notes" gorm:"size:500"`
	BaseNotes        string         `json:"base_notes" gorm:"size:500"`
	Sillage          string         `json:"sillage" gorm:"size:50"`
	Longevity        string         `json:"longevity" gorm:"size:50"`
	Season           pq.StringArray `json:"season" gorm:"type:text[]"`
	Occasion         pq.StringArray `json:"occasion" gorm:"type:text[]"`
	Gender           Gender         `json:"gender" gorm:"type:varchar(10);default:'unisex';index"`
	Images           pq.StringArray `json:"images" gorm:"type:text[]"`
	Featured         bool           `json:"featured" gorm:"default:false;index"`
	Status           ProductStatus  `json:"status" gorm:"type:varchar(20);default:'draft';index"`
	ViewCount        int64          `json:"view_count" gorm:"default:0"`
	Rating           float64        `json:"rating" gorm:"type:decimal(3,2);default:0"`
	ReviewCount      int64          `json:"review_count" gorm:"default:0"`

	// Relationships
	Category Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Reviews  []Review `json:"reviews,omitempty" gorm:"foreignKey:ProductID"`
}
