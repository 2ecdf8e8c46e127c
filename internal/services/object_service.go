package services

import (
	"errors"
	"strings"

	"github.com/lasoundguy/household-tracker/internal/models"

	"gorm.io/gorm"
)

type ObjectService struct {
	db *gorm.DB
}

func NewObjectService(db *gorm.DB) *ObjectService {
	return &ObjectService{db: db}
}

// detailQuery 拼接物品的读侧投影：分类名称/颜色、位置名称、添加人姓名
func (s *ObjectService) detailQuery(tx *gorm.DB) *gorm.DB {
	return tx.Table("objects").
		Select("objects.*, categories.name AS category_name, categories.color AS category_color, locations.name AS location_name, users.name AS added_by_name").
		Joins("LEFT JOIN categories ON objects.category_id = categories.id").
		Joins("LEFT JOIN locations ON objects.location_id = locations.id").
		Joins("LEFT JOIN users ON objects.added_by = users.id")
}

func (s *ObjectService) getDetail(tx *gorm.DB, objectID uint) (*models.ObjectDetail, error) {
	var detail models.ObjectDetail
	err := s.detailQuery(tx).Where("objects.id = ?", objectID).Take(&detail).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("物品不存在")
	}
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// GetObjects 按分类、位置、关键字过滤，条件之间为 AND 组合
func (s *ObjectService) GetObjects(req *models.ObjectListRequest) ([]models.ObjectDetail, error) {
	query := s.detailQuery(s.db)

	if req.Category != nil {
		query = query.Where("objects.category_id = ?", *req.Category)
	}

	if req.Location != nil {
		query = query.Where("objects.location_id = ?", *req.Location)
	}

	if req.Search != "" {
		pattern := "%" + strings.ToLower(req.Search) + "%"
		query = query.Where("LOWER(objects.name) LIKE ? OR LOWER(objects.description) LIKE ?", pattern, pattern)
	}

	objects := make([]models.ObjectDetail, 0)
	err := query.Order("objects.updated_at DESC, objects.id DESC").Scan(&objects).Error
	if err != nil {
		return nil, err
	}

	return objects, nil
}

// GetObject 返回物品详情及其完整的位置变更历史
func (s *ObjectService) GetObject(objectID uint) (*models.ObjectDetail, []models.ObjectHistoryDetail, error) {
	var detail *models.ObjectDetail
	history := make([]models.ObjectHistoryDetail, 0)

	// 详情和历史放在同一事务内，保证读取一致
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		detail, err = s.getDetail(tx, objectID)
		if err != nil {
			return err
		}

		return tx.Table("object_history").
			Select("object_history.*, fl.name AS from_location_name, tl.name AS to_location_name, users.name AS moved_by_name").
			Joins("LEFT JOIN locations fl ON object_history.from_location_id = fl.id").
			Joins("LEFT JOIN locations tl ON object_history.to_location_id = tl.id").
			Joins("LEFT JOIN users ON object_history.moved_by = users.id").
			Where("object_history.object_id = ?", objectID).
			Order("object_history.moved_at DESC, object_history.id DESC").
			Scan(&history).Error
	})
	if err != nil {
		return nil, nil, err
	}

	return detail, history, nil
}

func (s *ObjectService) CreateObject(userID uint, req *models.ObjectCreateRequest) (*models.ObjectDetail, error) {
	if req.Name == "" {
		return nil, invalidInput("物品名称不能为空")
	}

	object := models.Object{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		LocationID:  req.LocationID,
		PhotoURL:    req.PhotoURL,
		AddedBy:     userID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := checkObjectRefs(tx, req.CategoryID, req.LocationID); err != nil {
			return err
		}
		return tx.Create(&object).Error
	})
	if err != nil {
		return nil, err
	}

	return s.getDetail(s.db, object.ID)
}

// UpdateObject 整体替换物品字段。位置发生变化时，在同一事务内先写入
// 一条历史记录再应用更新，两者要么都成功要么都不生效。
func (s *ObjectService) UpdateObject(objectID, userID uint, req *models.ObjectUpdateRequest) (*models.ObjectDetail, error) {
	if req.Name == "" {
		return nil, invalidInput("物品名称不能为空")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var object models.Object
		if err := tx.First(&object, objectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("物品不存在")
			}
			return err
		}

		if err := checkObjectRefs(tx, req.CategoryID, req.LocationID); err != nil {
			return err
		}

		if req.LocationID != nil && (object.LocationID == nil || *object.LocationID != *req.LocationID) {
			history := models.ObjectHistory{
				ObjectID:       object.ID,
				FromLocationID: object.LocationID,
				ToLocationID:   req.LocationID,
				MovedBy:        userID,
			}
			if err := tx.Create(&history).Error; err != nil {
				return err
			}
		}

		updates := map[string]interface{}{
			"name":        req.Name,
			"description": req.Description,
			"category_id": req.CategoryID,
			"location_id": req.LocationID,
			"photo_url":   req.PhotoURL,
		}
		return tx.Model(&object).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}

	return s.getDetail(s.db, objectID)
}

func (s *ObjectService) DeleteObject(objectID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var object models.Object
		if err := tx.First(&object, objectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("物品不存在")
			}
			return err
		}

		// 历史记录随物品一并删除
		if err := tx.Where("object_id = ?", objectID).Delete(&models.ObjectHistory{}).Error; err != nil {
			return err
		}

		return tx.Delete(&object).Error
	})
}

// checkObjectRefs 校验引用的分类和位置存在
func checkObjectRefs(tx *gorm.DB, categoryID, locationID *uint) error {
	if categoryID != nil {
		var count int64
		if err := tx.Model(&models.Category{}).Where("id = ?", *categoryID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return notFound("分类不存在")
		}
	}

	if locationID != nil {
		var count int64
		if err := tx.Model(&models.Location{}).Where("id = ?", *locationID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return notFound("位置不存在")
		}
	}

	return nil
}
