package models

import (
	"time"

	"gorm.io/gorm"
)

// User 用户表（管理员 / 客户 / 餐厅关联员工）
type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`                              // 主键
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`                 // 邮箱
	PasswordHash string         `gorm:"type:varchar(200);not null" json:"-"`               // 密码哈希
	FirstName    string         `gorm:"type:varchar(50);not null" json:"first_name"`       // 名
	LastName     string         `gorm:"type:varchar(50);not null" json:"last_name"`        // 姓
	Phone        string         `gorm:"type:varchar(20)" json:"phone"`                     // 电话
	Role         string         `gorm:"type:varchar(20);not null;index" json:"role"`       // 角色（admin/client/associate）
	Status       string         `gorm:"type:varchar(20);not null;index" json:"status"`     // 状态（active/disabled）
	RestaurantID *uint          `gorm:"index" json:"restaurant_id,omitempty"`              // 关联餐厅ID（associate 角色）
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                           // 创建时间
	UpdatedAt    time.Time      `gorm:"index" json:"updated_at"`                           // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                                    // 软删除时间

	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"` // 关联餐厅
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
