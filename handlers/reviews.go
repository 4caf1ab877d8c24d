package handlers

import (
	"fmt"
	"net/http"

	"restaurant-menu-api/config"
	"restaurant-menu-api/middleware"
	"restaurant-menu-api/models"

	"github.com/gin-gonic/gin"
)

type CreateReviewRequest struct {
	MenuItemID uint   `json:"menu_item_id" binding:"required"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	Comment    string `json:"comment" binding:"required,min=5,max=500"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" binding:"omitempty,min=5,max=500"`
}

// ListReviews returns all reviews, optionally filtered by menu item (public)
func ListReviews(c *gin.Context) {
	query := config.DB.Preload("User").Preload("MenuItem")

	if menuItem := c.Query("menuItem"); menuItem != "" {
		id, err := parseID(menuItem)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu item ID"})
			return
		}
		query = query.Where("menu_item_id = ?", id)
	}

	reviews := []models.Review{}
	if err := query.Order("created_at desc").Find(&reviews).Error; err != nil {
		internalError(c, "Failed to retrieve reviews", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": len(reviews), "data": reviews})
}

// GetReviewsByMenuItem returns one item's reviews plus their mean rating,
// rounded to one decimal and reported as "0.0" when the item has none.
func GetReviewsByMenuItem(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu item ID"})
		return
	}

	reviews := []models.Review{}
	if err := config.DB.Preload("User").
		Where("menu_item_id = ?", id).
		Order("created_at desc").
		Find(&reviews).Error; err != nil {
		internalError(c, "Failed to retrieve reviews", err)
		return
	}

	var average float64
	if len(reviews) > 0 {
		var sum int
		for _, r := range reviews {
			sum += r.Rating
		}
		average = float64(sum) / float64(len(reviews))
	}

	c.JSON(http.StatusOK, gin.H{
		"count":         len(reviews),
		"averageRating": fmt.Sprintf("%.1f", average),
		"data":          reviews,
	})
}

// GetReview returns a single review (public)
func GetReview(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID"})
		return
	}

	var review models.Review
	if err := config.DB.Preload("User").Preload("MenuItem").First(&review, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": review})
}

// CreateReview records the caller's review of a menu item. One review per
// (user, menu item) pair; the composite unique index catches the race two
// concurrent submissions would otherwise win together.
func CreateReview(c *gin.Context) {
	caller := middleware.CurrentUser(c)

	var req CreateReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	var menuItem models.MenuItem
	if err := config.DB.First(&menuItem, req.MenuItemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	var existing models.Review
	if err := config.DB.Where("user_id = ? AND menu_item_id = ?", caller.ID, req.MenuItemID).
		First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You have already reviewed this menu item"})
		return
	}

	review := models.Review{
		UserID:     caller.ID,
		MenuItemID: req.MenuItemID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	if err := config.DB.Create(&review).Error; err != nil {
		if isDuplicateErr(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "You have already reviewed this menu item"})
			return
		}
		internalError(c, "Failed to create review", err)
		return
	}

	config.DB.Preload("User").Preload("MenuItem").First(&review, review.ID)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Review created successfully",
		"data":    review,
	})
}

// UpdateReview changes rating and/or comment — owner or admin only. Fields
// absent from the body keep their current values.
func UpdateReview(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID"})
		return
	}

	var review models.Review
	if err := config.DB.First(&review, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}

	caller := middleware.CurrentUser(c)
	if !middleware.IsOwnerOrAdmin(caller, review.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied. You can only update your own reviews."})
		return
	}

	var req UpdateReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Comment != nil {
		review.Comment = *req.Comment
	}

	if err := config.DB.Save(&review).Error; err != nil {
		internalError(c, "Failed to update review", err)
		return
	}

	config.DB.Preload("User").Preload("MenuItem").First(&review, review.ID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Review updated successfully",
		"data":    review,
	})
}

// DeleteReview removes a review — owner or admin only
func DeleteReview(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID"})
		return
	}

	var review models.Review
	if err := config.DB.First(&review, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}

	caller := middleware.CurrentUser(c)
	if !middleware.IsOwnerOrAdmin(caller, review.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied. You can only delete your own reviews."})
		return
	}

	if err := config.DB.Delete(&review).Error; err != nil {
		internalError(c, "Failed to delete review", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Review deleted successfully",
		"data":    review,
	})
}
