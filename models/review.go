package models

import "time"

// Review is one user's opinion of one menu item. The composite unique index
// on (user_id, menu_item_id) is what actually enforces the one-review-per-
// dish rule; application-level pre-checks only exist for friendlier messages.
type Review struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_user_menu_item"`
	User       User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	MenuItemID uint      `json:"menu_item_id" gorm:"not null;uniqueIndex:idx_user_menu_item"`
	MenuItem   MenuItem  `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Rating     int       `json:"rating" gorm:"not null"`
	Comment    string    `json:"comment" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
