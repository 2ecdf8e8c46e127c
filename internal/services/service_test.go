package services

import (
	"testing"

	"github.com/lasoundguy/household-tracker/internal/database"
	"github.com/lasoundguy/household-tracker/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 内存数据库限制为单连接，连接池里的每个连接各有一份内存库
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()

	user, err := NewAuthService(db).Register(&models.UserRegisterRequest{
		Name:     name,
		Email:    email,
		Password: "secret123",
	})
	require.NoError(t, err)
	return user
}

func createTestLocation(t *testing.T, db *gorm.DB, name string) *models.Location {
	t.Helper()

	location, err := NewLocationService(db).CreateLocation(&models.LocationCreateRequest{Name: name})
	require.NoError(t, err)
	return location
}

func createTestCategory(t *testing.T, db *gorm.DB, name, color string) *models.Category {
	t.Helper()

	category, err := NewCategoryService(db).CreateCategory(&models.CategoryCreateRequest{Name: name, Color: color})
	require.NoError(t, err)
	return category
}

func strPtr(s string) *string { return &s }

func uintPtr(v uint) *uint { return &v }
