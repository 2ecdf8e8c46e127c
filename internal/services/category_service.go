package services

import (
	"errors"

	"github.com/lasoundguy/household-tracker/internal/models"

	"gorm.io/gorm"
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// GetCategories 返回全部分类及各自的物品数量，按名称排序
func (s *CategoryService) GetCategories() ([]models.Category, error) {
	categories := make([]models.Category, 0)

	err := s.db.Table("categories").
		Select("categories.*, COUNT(objects.id) AS object_count").
		Joins("LEFT JOIN objects ON objects.category_id = categories.id").
		Group("categories.id").
		Order("categories.name").
		Scan(&categories).Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}

func (s *CategoryService) CreateCategory(req *models.CategoryCreateRequest) (*models.Category, error) {
	if req.Name == "" {
		return nil, invalidInput("分类名称不能为空")
	}

	color := req.Color
	if color == "" {
		color = models.DefaultCategoryColor
	}

	category := models.Category{
		Name:  req.Name,
		Color: color,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Category{}).Where("name = ?", req.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return conflict("分类名称已存在")
		}

		return tx.Create(&category).Error
	})
	if err != nil {
		return nil, err
	}

	return &category, nil
}

func (s *CategoryService) UpdateCategory(categoryID uint, req *models.CategoryCreateRequest) (*models.Category, error) {
	if req.Name == "" {
		return nil, invalidInput("分类名称不能为空")
	}

	var category models.Category
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&category, categoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("分类不存在")
			}
			return err
		}

		// 名称不能与其他分类重复
		var count int64
		if err := tx.Model(&models.Category{}).Where("name = ? AND id <> ?", req.Name, categoryID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return conflict("分类名称已存在")
		}

		updates := map[string]interface{}{"name": req.Name}
		if req.Color != "" {
			updates["color"] = req.Color
		}
		return tx.Model(&category).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}

	return &category, nil
}

// DeleteCategory 删除分类。与位置不同，分类删除不受物品引用限制，
// 引用它的物品在同一事务内被清除分类字段。
func (s *CategoryService) DeleteCategory(categoryID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.First(&category, categoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("分类不存在")
			}
			return err
		}

		// UpdateColumn 跳过 updated_at 刷新，物品本身视为未修改
		if err := tx.Model(&models.Object{}).Where("category_id = ?", categoryID).
			UpdateColumn("category_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&category).Error
	})
}
