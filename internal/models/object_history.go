package models

import (
	"time"
)

// ObjectHistory 记录物品位置变更的审计日志，创建后不可修改
type ObjectHistory struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	ObjectID       uint      `json:"object_id" gorm:"not null;index"`
	FromLocationID *uint     `json:"from_location_id"`
	ToLocationID   *uint     `json:"to_location_id"`
	MovedBy        uint      `json:"moved_by" gorm:"not null"`
	MovedAt        time.Time `json:"moved_at" gorm:"autoCreateTime"`
	Notes          *string   `json:"notes" gorm:"type:text"`

	// 关联
	FromLocation *Location `json:"-" gorm:"foreignKey:FromLocationID;constraint:OnDelete:SET NULL"`
	ToLocation   *Location `json:"-" gorm:"foreignKey:ToLocationID;constraint:OnDelete:SET NULL"`
	MovedByUser  User      `json:"-" gorm:"foreignKey:MovedBy;constraint:OnDelete:CASCADE"`
}

func (ObjectHistory) TableName() string {
	return "object_history"
}

// ObjectHistoryDetail 是历史记录的读侧投影
type ObjectHistoryDetail struct {
	ID               uint      `json:"id"`
	ObjectID         uint      `json:"object_id"`
	FromLocationID   *uint     `json:"from_location_id"`
	ToLocationID     *uint     `json:"to_location_id"`
	MovedBy          uint      `json:"moved_by"`
	MovedAt          time.Time `json:"moved_at"`
	Notes            *string   `json:"notes"`
	FromLocationName *string   `json:"from_location_name"`
	ToLocationName   *string   `json:"to_location_name"`
	MovedByName      *string   `json:"moved_by_name"`
}
