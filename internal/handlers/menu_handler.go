package handlers

import (
	"errors"
	"net/http"

	"cremoso-backend/internal/catalog"
	"cremoso-backend/internal/database"
	"cremoso-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// --- GET: Full menu (categories with their flavors) ---
func GetMenu(c *gin.Context) {
	cat, err := database.LoadCatalog()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu"})
		return
	}
	c.JSON(http.StatusOK, cat.ListCategories())
}

// --- GET: Special products (cakes, brownies, ...) ---
func GetSpecialProducts(c *gin.Context) {
	cat, err := database.LoadCatalog()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch special products"})
		return
	}
	c.JSON(http.StatusOK, cat.ListSpecials())
}

// AddItemRequest mirrors what the admin screen sends. Price is only
// needed when the category does not exist yet.
type AddItemRequest struct {
	Category    string           `json:"category" binding:"required"`
	Item        string           `json:"item" binding:"required"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
}

// --- POST: Add a flavor to a category (admin) ---
func AddMenuItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	cat, err := database.LoadCatalog()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu"})
		return
	}

	existing := cat.FindCategory(req.Category)

	// Duplicate items and missing prices both come back as input errors
	if err := cat.AddItem(req.Category, req.Item, req.Description, req.Price); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The snapshot accepted the change; persist it.
	if existing != nil {
		item := models.MenuItem{CategoryID: existing.ID, Name: req.Item, Description: req.Description}
		if err := database.DB.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item added successfully!"})
		return
	}

	newCategory := models.MenuCategory{
		Name:  req.Category,
		Price: *req.Price,
		Items: []models.MenuItem{{Name: req.Item, Description: req.Description}},
	}
	if err := database.DB.Create(&newCategory).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save category"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "New category created and item added successfully!"})
}

type RemoveItemRequest struct {
	Category string `json:"category" binding:"required"`
	Item     string `json:"item" binding:"required"`
}

// --- POST: Remove a flavor from a category (admin) ---
// The category itself stays, even when it ends up empty.
func RemoveMenuItem(c *gin.Context) {
	var req RemoveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	cat, err := database.LoadCatalog()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu"})
		return
	}

	category := cat.FindCategory(req.Category)

	if err := cat.RemoveItem(req.Category, req.Item); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, catalog.ErrCategoryNotFound) || errors.Is(err, catalog.ErrItemNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	result := database.DB.Where("category_id = ? AND name = ?", category.ID, req.Item).Delete(&models.MenuItem{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item removed successfully"})
}
