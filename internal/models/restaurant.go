package models

import (
	"time"

	"gorm.io/gorm"
)

// Restaurant 餐厅表
type Restaurant struct {
	ID          uint           `gorm:"primarykey" json:"id"`              // 主键
	Name        string         `gorm:"type:varchar(100);not null;index" json:"name"` // 餐厅名称
	Description string         `gorm:"type:varchar(500)" json:"description"`         // 简介
	LogoURL     string         `gorm:"type:varchar(500)" json:"logo_url"`            // Logo 地址
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                      // 创建时间
	UpdatedAt   time.Time      `gorm:"index" json:"updated_at"`                      // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                               // 软删除时间

	MenuItems []MenuItem `gorm:"foreignKey:RestaurantID" json:"menu_items,omitempty"` // 菜单项
}

// TableName 指定表名
func (Restaurant) TableName() string {
	return "restaurants"
}
