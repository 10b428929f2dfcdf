package models

import "errors"

// ErrRestaurantMismatch 购物车只允许同一家餐厅的商品
var ErrRestaurantMismatch = errors.New("cart contains items from a different restaurant")

// CartItem 购物车项（仅存在于会话中，不落库）
// 单价在加入购物车时快照，后续菜单调价不影响已有购物车。
type CartItem struct {
	MenuItemID     uint   `json:"menu_item_id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	UnitPrice      Money  `json:"unit_price"`
	ImageURL       string `json:"image_url,omitempty"`
	Quantity       int    `json:"quantity"`
	RestaurantID   uint   `json:"restaurant_id"`
	RestaurantName string `json:"restaurant_name"`
	SpecialNotes   string `json:"special_notes,omitempty"`
}

// Subtotal 行小计（单价 × 数量）
func (i CartItem) Subtotal() Money {
	return i.UnitPrice.Mul(i.Quantity)
}

// Cart 会话购物车聚合
// 不变量：非空购物车中所有项属于同一餐厅；任何项的数量 ≥ 1。
// 合计均为读取时计算，不冗余存储。
type Cart struct {
	Items []CartItem `json:"items"`
}

// NewCart 创建空购物车
func NewCart() *Cart {
	return &Cart{Items: []CartItem{}}
}

// IsEmpty 判断购物车是否为空
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Total 购物车总金额
func (c *Cart) Total() Money {
	total := Money{}
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// ItemCount 购物车商品总数量
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// RestaurantID 当前购物车所属餐厅（空购物车返回 0）
func (c *Cart) RestaurantID() uint {
	if len(c.Items) == 0 {
		return 0
	}
	return c.Items[0].RestaurantID
}

// RestaurantName 当前购物车所属餐厅名称
func (c *Cart) RestaurantName() string {
	if len(c.Items) == 0 {
		return ""
	}
	return c.Items[0].RestaurantName
}

// Item 按菜单项ID查找购物车项
func (c *Cart) Item(menuItemID uint) (CartItem, bool) {
	for _, item := range c.Items {
		if item.MenuItemID == menuItemID {
			return item, true
		}
	}
	return CartItem{}, false
}

// AddItem 添加购物车项
// 同一菜单项已存在时数量合并；跨餐厅添加返回 ErrRestaurantMismatch，
// 购物车保持原样（调用方需先清空再添加）。
func (c *Cart) AddItem(item CartItem) error {
	if item.MenuItemID == 0 || item.Quantity <= 0 {
		return errors.New("invalid cart item")
	}
	if !c.IsEmpty() && c.RestaurantID() != item.RestaurantID {
		return ErrRestaurantMismatch
	}
	for idx := range c.Items {
		if c.Items[idx].MenuItemID == item.MenuItemID {
			c.Items[idx].Quantity += item.Quantity
			if item.SpecialNotes != "" {
				c.Items[idx].SpecialNotes = item.SpecialNotes
			}
			return nil
		}
	}
	c.Items = append(c.Items, item)
	return nil
}

// RemoveItem 删除购物车项（不存在时为 no-op）
func (c *Cart) RemoveItem(menuItemID uint) {
	for idx := range c.Items {
		if c.Items[idx].MenuItemID == menuItemID {
			c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
			return
		}
	}
}

// SetQuantity 覆盖购物车项数量
// 数量 ≤ 0 等价于删除；菜单项不存在时为 no-op。
func (c *Cart) SetQuantity(menuItemID uint, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(menuItemID)
		return
	}
	for idx := range c.Items {
		if c.Items[idx].MenuItemID == menuItemID {
			c.Items[idx].Quantity = quantity
			return
		}
	}
}

// Clear 清空购物车
func (c *Cart) Clear() {
	c.Items = c.Items[:0]
}
