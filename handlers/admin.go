package handlers

import (
	"net/http"

	"restaurant-menu-api/config"
	"restaurant-menu-api/middleware"
	"restaurant-menu-api/models"

	"github.com/gin-gonic/gin"
)

type RoleChangeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// GetAllUsers returns every account, newest first — admin only. Password
// hashes never serialize (json:"-" on the model).
func GetAllUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Order("created_at desc").Find(&users).Error; err != nil {
		internalError(c, "Failed to retrieve users", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(users), "data": users})
}

// PromoteToAdmin grants the admin role to the user with the given email.
func PromoteToAdmin(c *gin.Context) {
	var req RoleChangeRequest
	if !bindJSON(c, &req) {
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if user.Role == models.RoleAdmin {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User is already an admin"})
		return
	}

	if err := config.DB.Model(&user).Update("role", models.RoleAdmin).Error; err != nil {
		internalError(c, "Failed to promote user", err)
		return
	}
	user.Role = models.RoleAdmin

	c.JSON(http.StatusOK, gin.H{
		"message": "User promoted to admin successfully",
		"user":    user.Public(),
	})
}

// DemoteToUser revokes the admin role. An admin can never demote their own
// account; that would allow the last admin to lock everyone out.
func DemoteToUser(c *gin.Context) {
	var req RoleChangeRequest
	if !bindJSON(c, &req) {
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if user.Role == models.RoleUser {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User is already a regular user"})
		return
	}

	caller := middleware.CurrentUser(c)
	if user.ID == caller.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot demote yourself"})
		return
	}

	if err := config.DB.Model(&user).Update("role", models.RoleUser).Error; err != nil {
		internalError(c, "Failed to demote user", err)
		return
	}
	user.Role = models.RoleUser

	c.JSON(http.StatusOK, gin.H{
		"message": "Admin demoted to user successfully",
		"user":    user.Public(),
	})
}
