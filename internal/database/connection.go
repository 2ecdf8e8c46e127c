package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lasoundguy/household-tracker/internal/config"
	"github.com/lasoundguy/household-tracker/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect 根据配置选择驱动建立数据库连接。
// 连接句柄由调用方持有并注入各个服务，不使用包级全局变量。
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.Database.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.GetDSN())
	case "sqlite":
		if dir := filepath.Dir(cfg.Database.Path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		// 开启外键约束，保证存储层自身的引用完整性
		dialector = sqlite.Open(cfg.Database.Path + "?_pragma=foreign_keys(1)")
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}

	gormLogLevel := logger.Warn
	if cfg.Server.Mode == "debug" {
		gormLogLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if cfg.Database.Driver == "sqlite" {
		// sqlite 单文件写入，限制为单连接避免锁冲突
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// AutoMigrate 幂等地创建五张业务表及其外键约束
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Location{},
		&models.Category{},
		&models.Object{},
		&models.ObjectHistory{},
	)
	if err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}

	return nil
}

// Seed 仅在分类和位置都为空时写入默认数据
func Seed(db *gorm.DB) error {
	var categoryCount, locationCount int64
	if err := db.Model(&models.Category{}).Count(&categoryCount).Error; err != nil {
		return err
	}
	if err := db.Model(&models.Location{}).Count(&locationCount).Error; err != nil {
		return err
	}
	if categoryCount > 0 || locationCount > 0 {
		return nil
	}

	defaultCategories := []models.Category{
		{Name: "Tools", Color: "#EF4444"},
		{Name: "Seasonal Items", Color: "#F59E0B"},
		{Name: "Documents", Color: "#3B82F6"},
		{Name: "Electronics", Color: "#8B5CF6"},
		{Name: "Outdoor Equipment", Color: "#10B981"},
		{Name: "Kitchen Items", Color: "#EC4899"},
		{Name: "Storage Boxes", Color: "#6366F1"},
		{Name: "Other", Color: "#6B7280"},
	}

	mainHouse := "Primary residence"
	garage := "Attached garage"
	storageUnit := "Off-site storage facility"
	basement := "Basement storage area"
	attic := "Attic storage space"
	defaultLocations := []models.Location{
		{Name: "Main House", Description: &mainHouse},
		{Name: "Garage", Description: &garage},
		{Name: "Storage Unit", Description: &storageUnit},
		{Name: "Basement", Description: &basement},
		{Name: "Attic", Description: &attic},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&defaultCategories).Error; err != nil {
			return err
		}
		return tx.Create(&defaultLocations).Error
	})
}
