package models

import (
	"time"
)

type Object struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:200;not null"`
	Description *string   `json:"description" gorm:"type:text"`
	CategoryID  *uint     `json:"category_id" gorm:"index"`
	LocationID  *uint     `json:"location_id" gorm:"index"`
	PhotoURL    *string   `json:"photo_url" gorm:"size:500"`
	AddedBy     uint      `json:"added_by" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// 关联
	Category    *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Location    *Location `json:"location,omitempty" gorm:"foreignKey:LocationID;constraint:OnDelete:SET NULL"`
	AddedByUser User      `json:"-" gorm:"foreignKey:AddedBy;constraint:OnDelete:CASCADE"`

	History []ObjectHistory `json:"history,omitempty" gorm:"foreignKey:ObjectID;constraint:OnDelete:CASCADE"`
}

// ObjectDetail 是物品的读侧投影，附带关联实体的展示字段
type ObjectDetail struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description"`
	CategoryID    *uint     `json:"category_id"`
	LocationID    *uint     `json:"location_id"`
	PhotoURL      *string   `json:"photo_url"`
	AddedBy       uint      `json:"added_by"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	CategoryName  *string   `json:"category_name"`
	CategoryColor *string   `json:"category_color"`
	LocationName  *string   `json:"location_name"`
	AddedByName   *string   `json:"added_by_name"`
}

type ObjectCreateRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Description *string `json:"description"`
	CategoryID  *uint   `json:"category_id"`
	LocationID  *uint   `json:"location_id"`
	PhotoURL    *string `json:"photo_url" validate:"omitempty,max=500"`
}

type ObjectUpdateRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Description *string `json:"description"`
	CategoryID  *uint   `json:"category_id"`
	LocationID  *uint   `json:"location_id"`
	PhotoURL    *string `json:"photo_url" validate:"omitempty,max=500"`
}

type ObjectListRequest struct {
	Category *uint  `form:"category"`
	Location *uint  `form:"location"`
	Search   string `form:"search"`
}
