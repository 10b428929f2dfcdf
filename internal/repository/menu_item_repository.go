package repository

import (
	"errors"

	"github.com/techfood-api/internal/models"

	"gorm.io/gorm"
)

// MenuItemRepository 菜单项数据访问接口
type MenuItemRepository interface {
	List(filter MenuItemListFilter) ([]models.MenuItem, int64, error)
	GetByID(id uint) (*models.MenuItem, error)
	GetByIDWithRestaurant(id uint) (*models.MenuItem, error)
	Create(item *models.MenuItem) error
	Update(item *models.MenuItem) error
	Delete(id uint) error
}

// GormMenuItemRepository GORM 实现
type GormMenuItemRepository struct {
	db *gorm.DB
}

// NewMenuItemRepository 创建菜单项仓库
func NewMenuItemRepository(db *gorm.DB) *GormMenuItemRepository {
	return &GormMenuItemRepository{db: db}
}

// List 查询菜单项列表
func (r *GormMenuItemRepository) List(filter MenuItemListFilter) ([]models.MenuItem, int64, error) {
	query := r.db.Model(&models.MenuItem{})
	if filter.RestaurantID != 0 {
		query = query.Where("restaurant_id = ?", filter.RestaurantID)
	}
	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}
	if filter.OnlyAvailable {
		query = query.Where("is_available = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.MenuItem
	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Order("name asc").Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// GetByID 根据 ID 获取菜单项（不存在时返回 nil, nil）
func (r *GormMenuItemRepository) GetByID(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// GetByIDWithRestaurant 获取菜单项及其所属餐厅
func (r *GormMenuItemRepository) GetByIDWithRestaurant(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.db.Preload("Restaurant").First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// Create 创建菜单项
func (r *GormMenuItemRepository) Create(item *models.MenuItem) error {
	if item == nil {
		return errors.New("menu item is nil")
	}
	return r.db.Create(item).Error
}

// Update 更新菜单项
func (r *GormMenuItemRepository) Update(item *models.MenuItem) error {
	if item == nil || item.ID == 0 {
		return errors.New("invalid menu item")
	}
	return r.db.Save(item).Error
}

// Delete 删除菜单项
func (r *GormMenuItemRepository) Delete(id uint) error {
	if id == 0 {
		return errors.New("invalid menu item id")
	}
	return r.db.Delete(&models.MenuItem{}, id).Error
}
