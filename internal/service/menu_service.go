package service

import (
	"context"
	"strings"
	"time"

	"github.com/techfood-api/internal/cache"
	"github.com/techfood-api/internal/models"
	"github.com/techfood-api/internal/repository"
)

// MenuItemInput 菜品创建/更新输入
type MenuItemInput struct {
	RestaurantID uint
	Name         string
	Description  string
	Price        string
	ImageURL     string
	IsAvailable  *bool
}

// MenuService 菜单管理服务
type MenuService struct {
	menuRepo       repository.MenuItemRepository
	restaurantRepo repository.RestaurantRepository
}

// NewMenuService 创建菜单服务
func NewMenuService(menuRepo repository.MenuItemRepository, restaurantRepo repository.RestaurantRepository) *MenuService {
	return &MenuService{
		menuRepo:       menuRepo,
		restaurantRepo: restaurantRepo,
	}
}

// List 菜品列表
func (s *MenuService) List(filter repository.MenuItemListFilter) ([]models.MenuItem, int64, error) {
	return s.menuRepo.List(filter)
}

// GetByID 获取菜品
func (s *MenuService) GetByID(id uint) (*models.MenuItem, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	item, err := s.menuRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}
	return item, nil
}

// Create 创建菜品
func (s *MenuService) Create(input MenuItemInput) (*models.MenuItem, error) {
	name := strings.TrimSpace(input.Name)
	if input.RestaurantID == 0 || name == "" {
		return nil, ErrNotFound
	}
	restaurant, err := s.restaurantRepo.GetByID(input.RestaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, ErrNotFound
	}

	price, err := models.NewMoneyFromString(input.Price)
	if err != nil {
		return nil, err
	}

	isAvailable := true
	if input.IsAvailable != nil {
		isAvailable = *input.IsAvailable
	}

	now := time.Now()
	item := &models.MenuItem{
		RestaurantID: input.RestaurantID,
		Name:         name,
		Description:  strings.TrimSpace(input.Description),
		Price:        price,
		ImageURL:     strings.TrimSpace(input.ImageURL),
		IsAvailable:  isAvailable,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.menuRepo.Create(item); err != nil {
		return nil, err
	}
	s.invalidateMenu(item.RestaurantID)
	return item, nil
}

// Update 更新菜品
// restaurantID 非零时校验菜品归属（商家端只能改自己餐厅的菜品）
func (s *MenuService) Update(id, restaurantID uint, input MenuItemInput) (*models.MenuItem, error) {
	item, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if restaurantID != 0 && item.RestaurantID != restaurantID {
		return nil, ErrForbidden
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		item.Name = name
	}
	item.Description = strings.TrimSpace(input.Description)
	if strings.TrimSpace(input.Price) != "" {
		price, err := models.NewMoneyFromString(input.Price)
		if err != nil {
			return nil, err
		}
		item.Price = price
	}
	if imageURL := strings.TrimSpace(input.ImageURL); imageURL != "" {
		item.ImageURL = imageURL
	}
	if input.IsAvailable != nil {
		item.IsAvailable = *input.IsAvailable
	}
	item.UpdatedAt = time.Now()
	if err := s.menuRepo.Update(item); err != nil {
		return nil, err
	}
	s.invalidateMenu(item.RestaurantID)
	return item, nil
}

// SetAvailability 上架/下架菜品
func (s *MenuService) SetAvailability(id, restaurantID uint, available bool) (*models.MenuItem, error) {
	item, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if restaurantID != 0 && item.RestaurantID != restaurantID {
		return nil, ErrForbidden
	}
	item.IsAvailable = available
	item.UpdatedAt = time.Now()
	if err := s.menuRepo.Update(item); err != nil {
		return nil, err
	}
	s.invalidateMenu(item.RestaurantID)
	return item, nil
}

// Delete 删除菜品
func (s *MenuService) Delete(id, restaurantID uint) error {
	item, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if restaurantID != 0 && item.RestaurantID != restaurantID {
		return ErrForbidden
	}
	if err := s.menuRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateMenu(item.RestaurantID)
	return nil
}

// invalidateMenu 菜品变更后失效所属餐厅的菜单缓存
func (s *MenuService) invalidateMenu(restaurantID uint) {
	_ = cache.Del(context.Background(), menuCacheKey(restaurantID))
}
