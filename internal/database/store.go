package database

import (
	"cremoso-backend/internal/catalog"
	"cremoso-backend/internal/models"
)

// LoadCatalog reads the full menu (categories with their items, plus the
// special products with their sizes) into an in-memory snapshot for the
// catalog and pricing logic to work on.
func LoadCatalog() (*catalog.Catalog, error) {
	var categories []models.MenuCategory
	if err := DB.Preload("Items").Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}

	var specials []models.SpecialProduct
	if err := DB.Preload("Sizes").Order("id").Find(&specials).Error; err != nil {
		return nil, err
	}

	return &catalog.Catalog{Categories: categories, Specials: specials}, nil
}

// SaveOrder persists a complete order in one transaction. GORM inserts
// the nested lines together with the header, so either everything is
// stored or nothing is.
func SaveOrder(o *models.Order) error {
	tx := DB.Begin()
	if err := tx.Create(o).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

// OrdersForUser returns a user's order history, newest first, with lines
// preloaded. An empty username returns every order (shop-wide view).
func OrdersForUser(username string) ([]models.Order, error) {
	var orders []models.Order
	q := DB.Preload("Lines").Order("created_at desc")
	if username != "" {
		q = q.Where("user = ?", username)
	}
	if err := q.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// OrderByID fetches one order with its lines.
func OrderByID(id uint) (*models.Order, error) {
	var o models.Order
	if err := DB.Preload("Lines").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}
