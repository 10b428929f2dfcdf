package models

import (
	"time"

	"gorm.io/gorm"
)

// Order 订单表（创建后除状态外不可变）
type Order struct {
	ID             uint           `gorm:"primarykey" json:"id"`                                // 主键
	OrderNo        string         `gorm:"uniqueIndex;not null" json:"order_no"`                // 订单编号
	UserID         uint           `gorm:"index;not null" json:"user_id"`                       // 下单用户ID
	RestaurantID   uint           `gorm:"index;not null" json:"restaurant_id"`                 // 餐厅ID
	Status         string         `gorm:"index;not null" json:"status"`                        // 订单状态
	Total          Money          `gorm:"type:decimal(18,2);not null;default:0" json:"total"`  // 总金额（创建时快照）
	RecipientName  string         `gorm:"type:varchar(100);not null" json:"recipient_name"`    // 收件人姓名
	RecipientPhone string         `gorm:"type:varchar(20);not null" json:"recipient_phone"`    // 收件人电话
	Address        string         `gorm:"type:varchar(500);not null" json:"address"`           // 配送地址
	Notes          string         `gorm:"type:varchar(500)" json:"notes,omitempty"`            // 备注
	OrderedAt      time.Time      `gorm:"index;not null" json:"ordered_at"`                    // 下单时间
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`                             // 创建时间
	UpdatedAt      time.Time      `gorm:"index" json:"updated_at"`                             // 更新时间
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`                                      // 软删除时间

	Items      []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"` // 订单项
	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`                   // 关联餐厅
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
