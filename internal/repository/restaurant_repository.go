package repository

import (
	"errors"

	"github.com/techfood-api/internal/models"

	"gorm.io/gorm"
)

// RestaurantRepository 餐厅数据访问接口
type RestaurantRepository interface {
	List(filter RestaurantListFilter) ([]models.Restaurant, int64, error)
	GetByID(id uint) (*models.Restaurant, error)
	GetByIDWithMenu(id uint) (*models.Restaurant, error)
	Create(restaurant *models.Restaurant) error
	Update(restaurant *models.Restaurant) error
	Delete(id uint) error
}

// GormRestaurantRepository GORM 实现
type GormRestaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository 创建餐厅仓库
func NewRestaurantRepository(db *gorm.DB) *GormRestaurantRepository {
	return &GormRestaurantRepository{db: db}
}

// List 查询餐厅列表
func (r *GormRestaurantRepository) List(filter RestaurantListFilter) ([]models.Restaurant, int64, error) {
	query := r.db.Model(&models.Restaurant{})
	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var restaurants []models.Restaurant
	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Order("name asc").Find(&restaurants).Error; err != nil {
		return nil, 0, err
	}
	return restaurants, total, nil
}

// GetByID 根据 ID 获取餐厅（不存在时返回 nil, nil）
func (r *GormRestaurantRepository) GetByID(id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := r.db.First(&restaurant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &restaurant, nil
}

// GetByIDWithMenu 获取餐厅及其菜单
func (r *GormRestaurantRepository) GetByIDWithMenu(id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := r.db.Preload("MenuItems", "is_available = ?", true).First(&restaurant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &restaurant, nil
}

// Create 创建餐厅
func (r *GormRestaurantRepository) Create(restaurant *models.Restaurant) error {
	if restaurant == nil {
		return errors.New("restaurant is nil")
	}
	return r.db.Create(restaurant).Error
}

// Update 更新餐厅
func (r *GormRestaurantRepository) Update(restaurant *models.Restaurant) error {
	if restaurant == nil || restaurant.ID == 0 {
		return errors.New("invalid restaurant")
	}
	return r.db.Save(restaurant).Error
}

// Delete 删除餐厅
func (r *GormRestaurantRepository) Delete(id uint) error {
	if id == 0 {
		return errors.New("invalid restaurant id")
	}
	return r.db.Delete(&models.Restaurant{}, id).Error
}
