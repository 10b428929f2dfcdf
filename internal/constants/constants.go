package constants

// 订单状态常量
const (
	OrderStatusPending   = "pending"
	OrderStatusPreparing = "preparing"
	OrderStatusEnRoute   = "en_route"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// 用户角色常量
const (
	RoleAdmin     = "admin"
	RoleClient    = "client"
	RoleAssociate = "associate"
)

// 用户状态常量
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// 队列名称常量
const (
	QueueDefault = "default"
)

// 异步任务类型常量
const (
	TaskOrderPlaced        = "order:placed"
	TaskOrderStatusChanged = "order:status_changed"
)
