package models

import "time"

// MenuCategory enumerates the fixed catalog categories
type MenuCategory string

const (
	CategoryAppetizers  MenuCategory = "Appetizers"
	CategoryMainCourses MenuCategory = "Main Courses"
	CategoryDessert     MenuCategory = "Dessert"
	CategoryDrinks      MenuCategory = "Drinks"
)

// DefaultImageURL is used when a menu item is created without an image
const DefaultImageURL = "https://via.placeholder.com/300x200?text=Kazakh+Dish"

// ValidCategories lists every accepted category value.
var ValidCategories = []MenuCategory{
	CategoryAppetizers,
	CategoryMainCourses,
	CategoryDessert,
	CategoryDrinks,
}

// IsValidCategory reports whether c is one of the fixed categories.
func IsValidCategory(c MenuCategory) bool {
	for _, v := range ValidCategories {
		if c == v {
			return true
		}
	}
	return false
}

type MenuItem struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	Name        string       `json:"name" gorm:"not null"`
	Description string       `json:"description" gorm:"not null"`
	Price       float64      `json:"price" gorm:"not null"`
	Category    MenuCategory `json:"category" gorm:"not null"`
	ImageURL    string       `json:"image_url"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
