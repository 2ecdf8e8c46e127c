package models

import (
	"time"
)

// DefaultCategoryColor is applied when a category is created without a color.
const DefaultCategoryColor = "#3B82F6"

type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;size:100;not null"`
	Color     string    `json:"color" gorm:"size:7;default:#3B82F6"`
	CreatedAt time.Time `json:"created_at"`

	Objects []Object `json:"objects,omitempty" gorm:"foreignKey:CategoryID"`

	// 计算字段，由列表查询的 COUNT 填充，不落库
	ObjectCount int64 `json:"object_count" gorm:"->;-:migration"`
}

type CategoryCreateRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}
