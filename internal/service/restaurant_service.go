package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/techfood-api/internal/cache"
	"github.com/techfood-api/internal/models"
	"github.com/techfood-api/internal/repository"
)

// 菜单读多写少，短 TTL 缓存即可扛住点餐高峰。
const menuCacheTTL = 5 * time.Minute

func menuCacheKey(restaurantID uint) string {
	return fmt.Sprintf("menu:%d", restaurantID)
}

// RestaurantInput 餐厅创建/更新输入
type RestaurantInput struct {
	Name        string
	Description string
	LogoURL     string
}

// RestaurantService 餐厅管理服务
type RestaurantService struct {
	restaurantRepo repository.RestaurantRepository
}

// NewRestaurantService 创建餐厅服务
func NewRestaurantService(restaurantRepo repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{restaurantRepo: restaurantRepo}
}

// List 餐厅列表，支持名称搜索
func (s *RestaurantService) List(filter repository.RestaurantListFilter) ([]models.Restaurant, int64, error) {
	return s.restaurantRepo.List(filter)
}

// GetByID 获取餐厅信息
func (s *RestaurantService) GetByID(id uint) (*models.Restaurant, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	restaurant, err := s.restaurantRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, ErrNotFound
	}
	return restaurant, nil
}

// GetMenu 获取餐厅及在售菜单，优先走缓存。
func (s *RestaurantService) GetMenu(ctx context.Context, id uint) (*models.Restaurant, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var cached models.Restaurant
	if hit, err := cache.GetJSON(ctx, menuCacheKey(id), &cached); err == nil && hit {
		return &cached, nil
	}
	restaurant, err := s.restaurantRepo.GetByIDWithMenu(id)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, ErrNotFound
	}
	// 缓存写失败不影响读路径
	_ = cache.SetJSON(ctx, menuCacheKey(id), restaurant, menuCacheTTL)
	return restaurant, nil
}

// Create 创建餐厅
func (s *RestaurantService) Create(input RestaurantInput) (*models.Restaurant, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNotFound
	}
	now := time.Now()
	restaurant := &models.Restaurant{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		LogoURL:     strings.TrimSpace(input.LogoURL),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.restaurantRepo.Create(restaurant); err != nil {
		return nil, err
	}
	return restaurant, nil
}

// Update 更新餐厅
func (s *RestaurantService) Update(id uint, input RestaurantInput) (*models.Restaurant, error) {
	restaurant, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if name := strings.TrimSpace(input.Name); name != "" {
		restaurant.Name = name
	}
	restaurant.Description = strings.TrimSpace(input.Description)
	if logoURL := strings.TrimSpace(input.LogoURL); logoURL != "" {
		restaurant.LogoURL = logoURL
	}
	restaurant.UpdatedAt = time.Now()
	if err := s.restaurantRepo.Update(restaurant); err != nil {
		return nil, err
	}
	_ = cache.Del(context.Background(), menuCacheKey(id))
	return restaurant, nil
}

// Delete 删除餐厅（软删除）
func (s *RestaurantService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.restaurantRepo.Delete(id); err != nil {
		return err
	}
	_ = cache.Del(context.Background(), menuCacheKey(id))
	return nil
}
