package handlers

import (
	"fmt"
	"net/http"

	"restaurant-menu-api/config"
	"restaurant-menu-api/middleware"
	"restaurant-menu-api/models"

	"github.com/gin-gonic/gin"
)

type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items"`
}

type OrderItemRequest struct {
	MenuItemID uint `json:"menu_item_id"`
	Quantity   int  `json:"quantity"`
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// ListOrders returns orders newest first. Admins see every order; everyone
// else is scoped to their own at query time.
func ListOrders(c *gin.Context) {
	caller := middleware.CurrentUser(c)

	query := config.DB.Preload("Items").Preload("User")
	if !caller.IsAdmin() {
		query = query.Where("user_id = ?", caller.ID)
	}

	orders := []models.Order{}
	if err := query.Order("created_at desc").Find(&orders).Error; err != nil {
		internalError(c, "Failed to retrieve orders", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": len(orders), "data": orders})
}

// GetOrder returns a single order, visible only to its owner or an admin.
func GetOrder(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	var order models.Order
	if err := config.DB.Preload("Items").Preload("User").First(&order, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	caller := middleware.CurrentUser(c)
	if !middleware.IsOwnerOrAdmin(caller, order.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied. You can only view your own orders."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": order})
}

// CreateOrder places an order for the authenticated caller. Every
// referenced menu item is validated before anything is written, so a bad
// line item can never leave a partial order behind. Name and price are
// snapshotted from the catalog at this moment.
func CreateOrder(c *gin.Context) {
	caller := middleware.CurrentUser(c)

	var req CreateOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	if len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order must contain at least one item"})
		return
	}

	var orderItems []models.OrderItem
	var total float64
	for _, reqItem := range req.Items {
		var menuItem models.MenuItem
		if err := config.DB.First(&menuItem, reqItem.MenuItemID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{
				"error": fmt.Sprintf("Menu item with ID %d not found", reqItem.MenuItemID),
			})
			return
		}
		if reqItem.Quantity < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be at least 1"})
			return
		}

		total += menuItem.Price * float64(reqItem.Quantity)
		orderItems = append(orderItems, models.OrderItem{
			MenuItemID: menuItem.ID,
			Name:       menuItem.Name,
			Quantity:   reqItem.Quantity,
			Price:      menuItem.Price,
		})
	}

	order := models.Order{
		UserID:     caller.ID,
		Status:     models.StatusPending,
		TotalPrice: total,
		Items:      orderItems,
	}

	if err := config.DB.Create(&order).Error; err != nil {
		internalError(c, "Failed to create order", err)
		return
	}

	config.DB.Preload("Items").Preload("User").First(&order, order.ID)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order created successfully",
		"data":    order,
	})
}

// UpdateOrderStatus sets the status field (admin only). Nothing else about
// an order is mutable after creation.
func UpdateOrderStatus(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	var req UpdateOrderStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	if !models.IsValidOrderStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Status must be one of: pending, confirmed, completed, cancelled",
		})
		return
	}

	var order models.Order
	if err := config.DB.First(&order, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if err := config.DB.Model(&order).Update("status", req.Status).Error; err != nil {
		internalError(c, "Failed to update order", err)
		return
	}

	config.DB.Preload("Items").Preload("User").First(&order, order.ID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Order status updated successfully",
		"data":    order,
	})
}

// DeleteOrder removes an order and its line items (admin only)
func DeleteOrder(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	var order models.Order
	if err := config.DB.Preload("Items").First(&order, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if err := config.DB.Select("Items").Delete(&order).Error; err != nil {
		internalError(c, "Failed to delete order", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order deleted successfully",
		"data":    order,
	})
}
