package handlers

import (
	"testing"

	"restaurant-menu-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.User{}, &models.MenuItem{}, &models.Review{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

// Two concurrent submissions can both pass the handler's friendly pre-check.
// The composite index is what actually rejects the loser, and the resulting
// error must be recognized as a duplicate so the handler returns 400 and
// not a 500.
func TestReviewPairIndexCatchesRacingDuplicate(t *testing.T) {
	db := openTestDB(t)

	user := models.User{Name: "A", Email: "a@x.com", PasswordHash: "x", Role: models.RoleUser}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	item := models.MenuItem{Name: "Beshbarmak", Description: "Boiled meat with noodles", Price: 12.5, Category: models.CategoryMainCourses}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("failed to create menu item: %v", err)
	}

	first := models.Review{UserID: user.ID, MenuItemID: item.ID, Rating: 5, Comment: "Wonderful dish"}
	if err := db.Create(&first).Error; err != nil {
		t.Fatalf("first review must be accepted: %v", err)
	}

	second := models.Review{UserID: user.ID, MenuItemID: item.ID, Rating: 1, Comment: "Changed my mind"}
	err := db.Create(&second).Error
	if err == nil {
		t.Fatal("index must reject a second review for the same (user, menu item) pair")
	}
	if !isDuplicateErr(err) {
		t.Fatalf("constraint violation not recognized as duplicate: %v", err)
	}
}

func TestEmailIndexCatchesRacingDuplicate(t *testing.T) {
	db := openTestDB(t)

	first := models.User{Name: "A", Email: "a@x.com", PasswordHash: "x", Role: models.RoleUser}
	if err := db.Create(&first).Error; err != nil {
		t.Fatalf("first user must be accepted: %v", err)
	}

	second := models.User{Name: "B", Email: "a@x.com", PasswordHash: "y", Role: models.RoleUser}
	err := db.Create(&second).Error
	if err == nil {
		t.Fatal("index must reject a second user with the same email")
	}
	if !isDuplicateErr(err) {
		t.Fatalf("constraint violation not recognized as duplicate: %v", err)
	}
}

func TestIsDuplicateErrIgnoresOtherFailures(t *testing.T) {
	if isDuplicateErr(nil) {
		t.Fatal("nil is not a duplicate error")
	}
	if isDuplicateErr(gorm.ErrRecordNotFound) {
		t.Fatal("a missing record is not a duplicate error")
	}
}
