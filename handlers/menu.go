package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"restaurant-menu-api/config"
	"restaurant-menu-api/models"

	"github.com/gin-gonic/gin"
)

type MenuItemRequest struct {
	Name        string              `json:"name" binding:"required,min=2"`
	Description string              `json:"description" binding:"required,min=10"`
	Price       *float64            `json:"price" binding:"required,gte=0"`
	Category    models.MenuCategory `json:"category" binding:"required,oneof='Appetizers' 'Main Courses' 'Dessert' 'Drinks'"`
	ImageURL    string              `json:"image_url"`
}

// ListMenuItems returns the catalog (public). Supports filtering by
// category, an inclusive price range, and a case-insensitive substring
// search over name and description.
func ListMenuItems(c *gin.Context) {
	query := config.DB.Model(&models.MenuItem{})

	if category := c.Query("category"); category != "" {
		if !models.IsValidCategory(models.MenuCategory(category)) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Category must be one of: Appetizers, Main Courses, Dessert, Drinks",
			})
			return
		}
		query = query.Where("category = ?", category)
	}
	if minPrice := c.Query("minPrice"); minPrice != "" {
		v, err := strconv.ParseFloat(minPrice, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "minPrice must be a number"})
			return
		}
		query = query.Where("price >= ?", v)
	}
	if maxPrice := c.Query("maxPrice"); maxPrice != "" {
		v, err := strconv.ParseFloat(maxPrice, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "maxPrice must be a number"})
			return
		}
		query = query.Where("price <= ?", v)
	}
	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	items := []models.MenuItem{}
	if err := query.Order("created_at desc").Find(&items).Error; err != nil {
		internalError(c, "Failed to retrieve menu items", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": len(items), "data": items})
}

// GetMenuItem returns a single menu item (public)
func GetMenuItem(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu item ID"})
		return
	}

	var item models.MenuItem
	if err := config.DB.First(&item, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": item})
}

// CreateMenuItem adds a catalog entry (admin only)
func CreateMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item := models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	}
	if item.ImageURL == "" {
		item.ImageURL = models.DefaultImageURL
	}

	if err := config.DB.Create(&item).Error; err != nil {
		internalError(c, "Failed to create menu item", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Menu item created successfully",
		"data":    item,
	})
}

// UpdateMenuItem replaces a catalog entry (admin only). Full-document
// semantics: the request must re-state every required field.
func UpdateMenuItem(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu item ID"})
		return
	}

	var item models.MenuItem
	if err := config.DB.First(&item, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	var req MenuItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item.Name = req.Name
	item.Description = req.Description
	item.Price = *req.Price
	item.Category = req.Category
	if req.ImageURL != "" {
		item.ImageURL = req.ImageURL
	}

	if err := config.DB.Save(&item).Error; err != nil {
		internalError(c, "Failed to update menu item", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Menu item updated successfully",
		"data":    item,
	})
}

// DeleteMenuItem removes a catalog entry (admin only). Historical orders
// keep their price snapshots; reviews of the deleted item are left in place.
func DeleteMenuItem(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu item ID"})
		return
	}

	var item models.MenuItem
	if err := config.DB.First(&item, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	if err := config.DB.Delete(&item).Error; err != nil {
		internalError(c, "Failed to delete menu item", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Menu item deleted successfully",
		"data":    item,
	})
}
