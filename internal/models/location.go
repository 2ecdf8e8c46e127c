package models

import (
	"time"
)

type Location struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	Description *string   `json:"description" gorm:"type:text"`
	Address     *string   `json:"address" gorm:"size:255"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Objects []Object `json:"objects,omitempty" gorm:"foreignKey:LocationID"`

	// 计算字段，由列表查询的 COUNT 填充，不落库
	ObjectCount int64 `json:"object_count" gorm:"->;-:migration"`
}

type LocationCreateRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description"`
	Address     *string `json:"address" validate:"omitempty,max=255"`
}
