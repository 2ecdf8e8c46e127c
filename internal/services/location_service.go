package services

import (
	"errors"

	"github.com/lasoundguy/household-tracker/internal/models"

	"gorm.io/gorm"
)

type LocationService struct {
	db *gorm.DB
}

func NewLocationService(db *gorm.DB) *LocationService {
	return &LocationService{db: db}
}

// GetLocations 返回全部位置及各自的物品数量，按名称排序
func (s *LocationService) GetLocations() ([]models.Location, error) {
	locations := make([]models.Location, 0)

	err := s.db.Table("locations").
		Select("locations.*, COUNT(objects.id) AS object_count").
		Joins("LEFT JOIN objects ON objects.location_id = locations.id").
		Group("locations.id").
		Order("locations.name").
		Scan(&locations).Error
	if err != nil {
		return nil, err
	}

	return locations, nil
}

// GetLocation 返回位置详情及当前存放于此的物品列表
func (s *LocationService) GetLocation(locationID uint) (*models.Location, []models.ObjectDetail, error) {
	var location models.Location
	objects := make([]models.ObjectDetail, 0)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&location, locationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("位置不存在")
			}
			return err
		}

		return tx.Table("objects").
			Select("objects.*, categories.name AS category_name, categories.color AS category_color").
			Joins("LEFT JOIN categories ON objects.category_id = categories.id").
			Where("objects.location_id = ?", locationID).
			Order("objects.name").
			Scan(&objects).Error
	})
	if err != nil {
		return nil, nil, err
	}

	location.ObjectCount = int64(len(objects))
	return &location, objects, nil
}

func (s *LocationService) CreateLocation(req *models.LocationCreateRequest) (*models.Location, error) {
	if req.Name == "" {
		return nil, invalidInput("位置名称不能为空")
	}

	location := models.Location{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
	}

	if err := s.db.Create(&location).Error; err != nil {
		return nil, err
	}

	return &location, nil
}

func (s *LocationService) UpdateLocation(locationID uint, req *models.LocationCreateRequest) (*models.Location, error) {
	if req.Name == "" {
		return nil, invalidInput("位置名称不能为空")
	}

	var location models.Location
	if err := s.db.First(&location, locationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("位置不存在")
		}
		return nil, err
	}

	updates := map[string]interface{}{
		"name":        req.Name,
		"description": req.Description,
		"address":     req.Address,
	}
	if err := s.db.Model(&location).Updates(updates).Error; err != nil {
		return nil, err
	}

	return &location, nil
}

// DeleteLocation 删除位置。仍有物品存放于此时拒绝删除，检查和
// 删除放在同一事务内，保证前置条件成立时才会生效。
func (s *LocationService) DeleteLocation(locationID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var location models.Location
		if err := tx.First(&location, locationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("位置不存在")
			}
			return err
		}

		var count int64
		if err := tx.Model(&models.Object{}).Where("location_id = ?", locationID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return conflict("该位置下还有物品，请先移动或删除物品")
		}

		return tx.Delete(&location).Error
	})
}
