package repository

import "time"

// RestaurantListFilter 查询餐厅列表的过滤条件
type RestaurantListFilter struct {
	Page     int
	PageSize int
	Search   string
}

// MenuItemListFilter 查询菜单项列表的过滤条件
type MenuItemListFilter struct {
	Page          int
	PageSize      int
	RestaurantID  uint
	Search        string
	OnlyAvailable bool
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page         int
	PageSize     int
	UserID       uint
	RestaurantID uint
	Status       string
	OrderNo      string
	CreatedFrom  *time.Time
	CreatedTo    *time.Time
}

// UserListFilter 查询用户列表的过滤条件
type UserListFilter struct {
	Page     int
	PageSize int
	Keyword  string
	Role     string
	Status   string
}
