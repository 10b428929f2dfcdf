package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderItem 订单项表（写入后不可变）
type OrderItem struct {
	ID           uint           `gorm:"primarykey" json:"id"`                                    // 主键
	OrderID      uint           `gorm:"index;not null" json:"order_id"`                          // 订单ID
	MenuItemID   uint           `gorm:"index;not null" json:"menu_item_id"`                      // 菜单项ID
	Name         string         `gorm:"type:varchar(100);not null" json:"name"`                  // 名称快照
	Quantity     int            `gorm:"not null" json:"quantity"`                                // 数量
	UnitPrice    Money          `gorm:"type:decimal(18,2);not null;default:0" json:"unit_price"` // 下单时单价
	Subtotal     Money          `gorm:"type:decimal(18,2);not null;default:0" json:"subtotal"`   // 小计
	SpecialNotes string         `gorm:"type:varchar(500)" json:"special_notes,omitempty"`        // 特殊要求
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                                 // 创建时间
	UpdatedAt    time.Time      `gorm:"index" json:"updated_at"`                                 // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                                          // 软删除时间
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
