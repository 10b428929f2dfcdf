package models

import (
	"time"

	"gorm.io/gorm"
)

// MenuItem 菜单项表
type MenuItem struct {
	ID           uint           `gorm:"primarykey" json:"id"`                                  // 主键
	RestaurantID uint           `gorm:"index;not null" json:"restaurant_id"`                   // 所属餐厅ID
	Name         string         `gorm:"type:varchar(100);not null" json:"name"`                // 名称
	Description  string         `gorm:"type:varchar(500)" json:"description"`                  // 描述
	Price        Money          `gorm:"type:decimal(18,2);not null;default:0" json:"price"`   // 单价
	ImageURL     string         `gorm:"type:varchar(500)" json:"image_url"`                    // 图片地址
	IsAvailable  bool           `gorm:"not null;default:true" json:"is_available"`             // 是否可售
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                               // 创建时间
	UpdatedAt    time.Time      `gorm:"index" json:"updated_at"`                               // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                                        // 软删除时间

	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"` // 关联餐厅
}

// TableName 指定表名
func (MenuItem) TableName() string {
	return "menu_items"
}
