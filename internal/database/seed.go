// internal/database/seed.go
package database

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/pranaara/pranaara-backend/internal/models"
	"github.com/pranaara/pranaara-backend/internal/utils"
)

type seedCategory struct {
	Name        string
	Slug        string
	Description string
}

type seedProduct struct {
	Name             string
	Slug             string
	Description      string
	ShortDescription string
	Price            float64
	CompareAtPrice   float64
	CategorySlug     string
	Quantity         int
	WeightValue      float64
	FragranceFamily  string
	TopNotes         string
	HeartNotes       string
	BaseNotes        string
	Sillage          string
	Longevity        string
	Season           []string
	Occasion         []string
	Gender           models.Gender
	Images           []string
	Featured         bool
}

var seedCategories = []seedCategory{
	{"Luxury Collection", "luxury", "Premium luxury fragrances with rare and precious ingredients"},
	{"Floral Fragrances", "floral", "Beautiful floral fragrances inspired by nature's finest blooms"},
	{"Woody & Earthy", "woody", "Rich woody and earthy fragrances with depth and character"},
	{"Oriental & Spicy", "oriental", "Exotic oriental fragrances with spices, incense and warm notes"},
	{"Fresh & Aquatic", "fresh", "Light and refreshing fragrances for everyday wear"},
	{"Oud Collection", "oud", "Premium oud fragrances with authentic agarwood"},
	{"Traditional Attar", "attar", "Traditional Indian attars and concentrated oils"},
}

var seedProducts = []seedProduct{
	{
		Name:             "Majestic Oud Royal",
		Slug:             "majestic-oud-royal",
		Description:      "An opulent masterpiece featuring authentic Cambodian oud aged for over 20 years. This royal fragrance opens with bergamot and saffron, revealing a heart of Bulgarian rose and pure oud, before settling into a magnificent base of amber, sandalwood, and white musk.",
		ShortDescription: "Premium aged Cambodian oud with Bulgarian rose and saffron",
		Price:            8999.00,
		CompareAtPrice:   12999.00,
		CategorySlug:     "luxury",
		Quantity:         15,
		WeightValue:      100,
		FragranceFamily:  "Oriental Woody",
		TopNotes:         "Bergamot, Saffron, Pink Pepper",
		HeartNotes:       "Bulgarian Rose, Cambodian Oud, Jasmine",
		BaseNotes:        "Amber, Sandalwood, White Musk, Vanilla",
		Sillage:          "Very Strong",
		Longevity:        "12+ hours",
		Season:           []string{"Fall", "Winter"},
		Occasion:         []string{"Evening", "Special Events", "Formal"},
		Gender:           models.GenderUnisex,
		Images:           []string{"/images/products/golden-packaging-ornate.png"},
		Featured:         true,
	},
	{
		Name:             "Golden Saffron Elixir",
		Slug:             "golden-saffron-elixir",
		Description:      "A precious blend of the world's most expensive spice - saffron - with rare Turkish rose and Indian sandalwood. This luxurious fragrance captures the essence of ancient royal courts with its rich, warm, and intoxicating aroma.",
		ShortDescription: "Precious saffron with Turkish rose and sandalwood",
		Price:            6999.00,
		CompareAtPrice:   8999.00,
		CategorySlug:     "luxury",
		Quantity:         25,
		WeightValue:      75,
		FragranceFamily:  "Oriental Spicy",
		TopNotes:         "Saffron, Cardamom, Orange Blossom",
		HeartNotes:       "Turkish Rose, Iris, Cinnamon",
		BaseNotes:        "Sandalwood, Amber, Musk",
		Sillage:          "Strong",
		Longevity:        "10-12 hours",
		Season:           []string{"Fall", "Winter", "Spring"},
		Occasion:         []string{"Evening", "Special Events"},
		Gender:           models.GenderUnisex,
		Images:           []string{"/images/products/golden-packaging-ornate.png"},
		Featured:         true,
	},
	{
		Name:             "Rose Symphony Absolute",
		Slug:             "rose-symphony-absolute",
		Description:      "A harmonious symphony of roses from around the world. This exquisite fragrance features Damask rose, Bulgarian rose, and French rose absolute, creating a multi-dimensional floral masterpiece that evolves beautifully on the skin.",
		ShortDescription: "Multi-rose composition with three types of precious roses",
		Price:            4999.00,
		CompareAtPrice:   6499.00,
		CategorySlug:     "floral",
		Quantity:         40,
		WeightValue:      50,
		FragranceFamily:  "Floral",
		TopNotes:         "Bergamot, Lemon, Pink Pepper",
		HeartNotes:       "Damask Rose, Bulgarian Rose, French Rose Absolute, Peony",
		BaseNotes:        "White Musk, Sandalwood, Cedar",
		Sillage:          "Moderate to Strong",
		Longevity:        "8-10 hours",
		Season:           []string{"Spring", "Summer", "Fall"},
		Occasion:         []string{"Daytime", "Romantic", "Special Events"},
		Gender:           models.GenderFemale,
		Images:           []string{"/images/models/model-portrait-perfume.png"},
		Featured:         true,
	},
	{
		Name:             "Jasmine Nights Enchantment",
		Slug:             "jasmine-nights-enchantment",
		Description:      "A captivating evening fragrance featuring night-blooming jasmine sambac and grandiflorum. Enhanced with tuberose and orange blossom, this romantic scent is perfect for intimate moments and special occasions.",
		ShortDescription: "Enchanting night-blooming jasmine for romantic evenings",
		Price:            3999.00,
		CompareAtPrice:   5299.00,
		CategorySlug:     "floral",
		Quantity:         50,
		WeightValue:      50,
		FragranceFamily:  "Floral Oriental",
		TopNotes:         "Mandarin, Green Leaves, Ylang-Ylang",
		HeartNotes:       "Jasmine Sambac, Jasmine Grandiflorum, Tuberose, Orange Blossom",
		BaseNotes:        "Vanilla, Sandalwood, White Musk",
		Sillage:          "Moderate",
		Longevity:        "6-8 hours",
		Season:           []string{"Spring", "Summer", "Fall"},
		Occasion:         []string{"Evening", "Date Night", "Romantic"},
		Gender:           models.GenderFemale,
		Images:           []string{"/images/models/model-black-dress.png"},
		Featured:         true,
	},
	{
		Name:             "Mysore Sandalwood Supreme",
		Slug:             "mysore-sandalwood-supreme",
		Description:      "Pure Mysore sandalwood at its finest. This masculine fragrance celebrates the sacred wood with complementary warm spices and precious resins. A sophisticated scent for the modern gentleman who appreciates timeless elegance.",
		ShortDescription: "Pure Mysore sandalwood with warm spices and resins",
		Price:            5499.00,
		CompareAtPrice:   7299.00,
		CategorySlug:     "woody",
		Quantity:         30,
		WeightValue:      75,
		FragranceFamily:  "Woody Oriental",
		TopNotes:         "Cardamom, Nutmeg, Bergamot",
		HeartNotes:       "Mysore Sandalwood, Clove, Cinnamon",
		BaseNotes:        "Amber, Vanilla, Benzoin, Cedar",
		Sillage:          "Strong",
		Longevity:        "10-12 hours",
		Season:           []string{"Fall", "Winter"},
		Occasion:         []string{"Office", "Evening", "Formal"},
		Gender:           models.GenderMale,
		Images:           []string{"/images/models/model-portrait-perfume.png"},
		Featured:         true,
	},
	{
		Name:             "Cedarwood & Vetiver Elite",
		Slug:             "cedarwood-vetiver-elite",
		Description:      "A sophisticated blend of Himalayan cedarwood and Haitian vetiver. This refined fragrance offers a perfect balance of freshness and warmth, making it ideal for the discerning gentleman.",
		ShortDescription: "Sophisticated cedarwood and vetiver for the modern man",
		Price:            3499.00,
		CompareAtPrice:   4699.00,
		CategorySlug:     "woody",
		Quantity:         60,
		WeightValue:      50,
		FragranceFamily:  "Woody Aromatic",
		TopNotes:         "Grapefruit, Black Pepper, Elemi",
		HeartNotes:       "Cedarwood, Vetiver, Geranium",
		BaseNotes:        "Patchouli, Oakmoss, Ambergris",
		Sillage:          "Moderate",
		Longevity:        "7-9 hours",
		Season:           []string{"Spring", "Fall"},
		Occasion:         []string{"Office", "Casual", "Daytime"},
		Gender:           models.GenderMale,
	},
	{
		Name:             "Oriental Spice Bazaar",
		Slug:             "oriental-spice-bazaar",
		Description:      "Journey through the ancient spice markets with this exotic blend of cardamom, cinnamon, star anise, and precious amber. A warm and sensual fragrance that wraps you in golden warmth and mystery.",
		ShortDescription: "Exotic spice market blend with amber and warm spices",
		Price:            4299.00,
		CompareAtPrice:   5799.00,
		CategorySlug:     "oriental",
		Quantity:         45,
		WeightValue:      60,
		FragranceFamily:  "Oriental Spicy",
		TopNotes:         "Cardamom, Coriander, Ginger, Orange",
		HeartNotes:       "Cinnamon, Star Anise, Black Pepper, Rose",
		BaseNotes:        "Amber, Labdanum, Sandalwood, Tonka Bean",
		Sillage:          "Strong",
		Longevity:        "8-10 hours",
		Season:           []string{"Fall", "Winter"},
		Occasion:         []string{"Evening", "Special Events"},
		Gender:           models.GenderUnisex,
		Images:           []string{"/images/models/model-black-dress.png"},
		Featured:         true,
	},
	{
		Name:             "Ocean Breeze Serenity",
		Slug:             "ocean-breeze-serenity",
		Description:      "Fresh aquatic fragrance that captures the essence of ocean breeze on a summer morning. Light, airy and perfect for daily wear, this refreshing scent energizes and uplifts your spirit.",
		ShortDescription: "Fresh aquatic scent perfect for summer days",
		Price:            2299.00,
		CompareAtPrice:   2999.00,
		CategorySlug:     "fresh",
		Quantity:         80,
		WeightValue:      50,
		FragranceFamily:  "Aquatic Fresh",
		TopNotes:         "Sea Salt, Bergamot, Lemon, Lime",
		HeartNotes:       "Marine Notes, Jasmine, Cyclamen",
		BaseNotes:        "White Musk, Cedar, Light Amber",
		Sillage:          "Light to Moderate",
		Longevity:        "4-6 hours",
		Season:           []string{"Spring", "Summer"},
		Occasion:         []string{"Daytime", "Casual", "Sport", "Office"},
		Gender:           models.GenderUnisex,
	},
	{
		Name:             "Black Oud Royale",
		Slug:             "black-oud-royale",
		Description:      "Deep, dark and intensely mysterious oud fragrance. For those who dare to stand out with bold sophistication. This powerful oud is balanced with rose and warm spices for an unforgettable presence.",
		ShortDescription: "Intense and mysterious black oud for bold sophistication",
		Price:            7999.00,
		CompareAtPrice:   10999.00,
		CategorySlug:     "oud",
		Quantity:         20,
		WeightValue:      50,
		FragranceFamily:  "Oriental Woody",
		TopNotes:         "Black Pepper, Saffron, Nutmeg",
		HeartNotes:       "Oud Wood, Rose, Patchouli",
		BaseNotes:        "Amber, Musk, Vanilla, Sandalwood",
		Sillage:          "Very Strong",
		Longevity:        "12+ hours",
		Season:           []string{"Fall", "Winter"},
		Occasion:         []string{"Evening", "Special Events", "Formal"},
		Gender:           models.GenderUnisex,
		Featured:         true,
	},
	{
		Name:             "Pure Rose Attar",
		Slug:             "pure-rose-attar",
		Description:      "Traditional Indian rose attar made from pure rose petals distilled over sandalwood. This concentrated oil fragrance offers intense longevity and beautiful floral richness in the authentic attar tradition.",
		ShortDescription: "Traditional pure rose attar in sandalwood base",
		Price:            2999.00,
		CompareAtPrice:   3999.00,
		CategorySlug:     "attar",
		Quantity:         50,
		WeightValue:      10,
		FragranceFamily:  "Floral",
		TopNotes:         "Rose Petals",
		HeartNotes:       "Damask Rose, Rose Absolute",
		BaseNotes:        "Sandalwood Base",
		Sillage:          "Moderate",
		Longevity:        "8-12 hours",
		Season:           []string{"All Seasons"},
		Occasion:         []string{"All Occasions", "Traditional Events"},
		Gender:           models.GenderUnisex,
	},
	{
		Name:             "Vanilla Dreams Gourmand",
		Slug:             "vanilla-dreams-gourmand",
		Description:      "Sweet and comforting vanilla fragrance with warm spices and gourmand notes. Perfect for cozy evenings and casual wear, this delicious scent is both comforting and alluring.",
		ShortDescription: "Sweet vanilla gourmand with warm spices",
		Price:            2799.00,
		CompareAtPrice:   3599.00,
		CategorySlug:     "oriental",
		Quantity:         70,
		WeightValue:      50,
		FragranceFamily:  "Oriental Gourmand",
		TopNotes:         "Cinnamon, Orange, Apple",
		HeartNotes:       "Vanilla, Caramel, Honey",
		BaseNotes:        "Sandalwood, Musk, Amber",
		Sillage:          "Moderate",
		Longevity:        "6-8 hours",
		Season:           []string{"Fall", "Winter"},
		Occasion:         []string{"Casual", "Evening", "Date Night"},
		Gender:           models.GenderFemale,
	},
}

// SeedCatalog upserts the launch catalog. Safe to run repeatedly.
func SeedCatalog(db *gorm.DB) error {
	log.Println("Seeding catalog...")

	categoryIDs := make(map[string]models.Category)
	for _, sc := range seedCategories {
		var category models.Category
		err := db.Where("slug = ?", sc.Slug).First(&category).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			category = models.Category{
				Name:        sc.Name,
				Slug:        sc.Slug,
				Description: sc.Description,
			}
			if err := db.Create(&category).Error; err != nil {
				return fmt.Errorf("failed to create category %s: %w", sc.Slug, err)
			}
		} else if err != nil {
			return fmt.Errorf("failed to look up category %s: %w", sc.Slug, err)
		}
		categoryIDs[sc.Slug] = category
	}

	log.Printf("Categories ready: %d", len(categoryIDs))

	created := 0
	for _, sp := range seedProducts {
		slug := sp.Slug
		if slug == "" {
			slug = utils.Slugify(sp.Name)
		}

		var count int64
		if err := db.Model(&models.Product{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to look up product %s: %w", slug, err)
		}
		if count > 0 {
			continue
		}

		category, ok := categoryIDs[sp.CategorySlug]
		if !ok {
			return fmt.Errorf("unknown category slug %s for product %s", sp.CategorySlug, slug)
		}

		compareAt := sp.CompareAtPrice
		product := models.Product{
			CategoryID:       category.ID,
			Name:             sp.Name,
			Slug:             slug,
			Description:      sp.Description,
			ShortDescription: sp.ShortDescription,
			Price:            sp.Price,
			CompareAtPrice:   &compareAt,
			Quantity:         sp.Quantity,
			WeightValue:      sp.WeightValue,
			WeightUnit:       "ml",
			FragranceFamily:  sp.FragranceFamily,
			TopNotes:         sp.TopNotes,
			HeartNotes:       sp.HeartNotes,
			BaseNotes:        sp.BaseNotes,
			Sillage:          sp.Sillage,
			Longevity:        sp.Longevity,
			Season:           sp.Season,
			Occasion:         sp.Occasion,
			Gender:           sp.Gender,
			Images:           sp.Images,
			Featured:         sp.Featured,
			Status:           models.ProductStatusActive,
		}

		if err := db.Create(&product).Error; err != nil {
			return fmt.Errorf("failed to create product %s: %w", slug, err)
		}
		created++
	}

	log.Printf("Catalog seeding completed, %d products created", created)
	return nil
}

// SeedAdminUser creates the default admin account when none exists.
func SeedAdminUser(db *gorm.DB) error {
	var adminCount int64
	db.Model(&models.User{}).Where("role = ?", models.UserRoleAdmin).Count(&adminCount)

	if adminCount > 0 {
		return nil
	}

	admin := &models.User{
		Name:     "Store Administrator",
		Email:    "admin@pranaara.com",
		Provider: models.AuthProviderLocal,
		Role:     models.UserRoleAdmin,
		Status:   models.UserStatusActive,
	}

	if err := admin.SetPassword("ChangeMe123!@#"); err != nil {
		return fmt.Errorf("failed to set admin password: %w", err)
	}

	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Println("Default admin user created successfully")
	return nil
}
