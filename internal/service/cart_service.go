package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/techfood-api/internal/cache"
	"github.com/techfood-api/internal/models"
	"github.com/techfood-api/internal/repository"
)

// AddToCartInput 添加购物车输入
type AddToCartInput struct {
	SessionID    string
	MenuItemID   uint
	Quantity     int
	SpecialNotes string
}

// CartService 购物车服务
// 以会话为维度读改写购物车快照，单价在加入时冻结
type CartService struct {
	store    cache.CartStore
	menuRepo repository.MenuItemRepository
}

// NewCartService 创建购物车服务
func NewCartService(store cache.CartStore, menuRepo repository.MenuItemRepository) *CartService {
	return &CartService{
		store:    store,
		menuRepo: menuRepo,
	}
}

// GetCart 获取当前会话购物车
func (s *CartService) GetCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	return s.loadCart(ctx, sessionID)
}

// ItemCount 获取购物车总件数
func (s *CartService) ItemCount(ctx context.Context, sessionID string) (int, error) {
	cart, err := s.loadCart(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return cart.ItemCount(), nil
}

// ItemQuantity 获取某菜品在购物车中的数量
func (s *CartService) ItemQuantity(ctx context.Context, sessionID string, menuItemID uint) (int, error) {
	cart, err := s.loadCart(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	if item, ok := cart.Item(menuItemID); ok {
		return item.Quantity, nil
	}
	return 0, nil
}

// AddToCart 添加菜品到购物车
// 同一菜品数量叠加；跨餐厅添加返回 ErrRestaurantMismatch，购物车不变
func (s *CartService) AddToCart(ctx context.Context, input AddToCartInput) (*models.Cart, error) {
	if input.MenuItemID == 0 || input.Quantity <= 0 {
		return nil, ErrCartItemInvalid
	}

	item, err := s.buildCartItem(input)
	if err != nil {
		return nil, err
	}

	cart, err := s.loadCart(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := cart.AddItem(*item); err != nil {
		return nil, err
	}
	if err := s.saveCart(ctx, input.SessionID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// ReplaceCart 清空购物车后添加新餐厅菜品
// 用于用户确认放弃当前餐厅的购物车
func (s *CartService) ReplaceCart(ctx context.Context, input AddToCartInput) (*models.Cart, error) {
	if input.MenuItemID == 0 || input.Quantity <= 0 {
		return nil, ErrCartItemInvalid
	}

	item, err := s.buildCartItem(input)
	if err != nil {
		return nil, err
	}

	cart := models.NewCart()
	if err := cart.AddItem(*item); err != nil {
		return nil, err
	}
	if err := s.saveCart(ctx, input.SessionID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateQuantity 设置购物车项数量，0 等同于删除
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID string, menuItemID uint, quantity int) (*models.Cart, error) {
	if menuItemID == 0 || quantity < 0 {
		return nil, ErrCartItemInvalid
	}
	cart, err := s.loadCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	cart.SetQuantity(menuItemID, quantity)
	if err := s.saveCart(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveFromCart 删除购物车项，不存在时为空操作
func (s *CartService) RemoveFromCart(ctx context.Context, sessionID string, menuItemID uint) (*models.Cart, error) {
	if menuItemID == 0 {
		return nil, ErrCartItemInvalid
	}
	cart, err := s.loadCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	cart.RemoveItem(menuItemID)
	if err := s.saveCart(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// ClearCart 清空会话购物车
func (s *CartService) ClearCart(ctx context.Context, sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return ErrCartItemInvalid
	}
	if err := s.store.Clear(ctx, sessionID); err != nil {
		return fmt.Errorf("%w: %v", ErrCartStoreUnavailable, err)
	}
	return nil
}

// buildCartItem 从菜单目录构建购物车项快照
func (s *CartService) buildCartItem(input AddToCartInput) (*models.CartItem, error) {
	menuItem, err := s.menuRepo.GetByIDWithRestaurant(input.MenuItemID)
	if err != nil {
		return nil, err
	}
	if menuItem == nil || !menuItem.IsAvailable {
		return nil, ErrMenuItemNotAvailable
	}

	restaurantName := ""
	if menuItem.Restaurant != nil {
		restaurantName = menuItem.Restaurant.Name
	}
	return &models.CartItem{
		MenuItemID:     menuItem.ID,
		Name:           menuItem.Name,
		Description:    menuItem.Description,
		UnitPrice:      menuItem.Price,
		ImageURL:       menuItem.ImageURL,
		Quantity:       input.Quantity,
		RestaurantID:   menuItem.RestaurantID,
		RestaurantName: restaurantName,
		SpecialNotes:   strings.TrimSpace(input.SpecialNotes),
	}, nil
}

func (s *CartService) loadCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrCartItemInvalid
	}
	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCartStoreUnavailable, err)
	}
	if cart == nil {
		cart = models.NewCart()
	}
	return cart, nil
}

func (s *CartService) saveCart(ctx context.Context, sessionID string, cart *models.Cart) error {
	if err := s.store.Save(ctx, sessionID, cart); err != nil {
		return fmt.Errorf("%w: %v", ErrCartStoreUnavailable, err)
	}
	return nil
}

// IsRestaurantMismatch 判断是否为跨餐厅错误
func IsRestaurantMismatch(err error) bool {
	return errors.Is(err, ErrRestaurantMismatch)
}
