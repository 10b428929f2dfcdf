package service

import (
	"strings"
	"time"

	"github.com/techfood-api/internal/constants"
	"github.com/techfood-api/internal/models"
	"github.com/techfood-api/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// CreateUserInput 管理端创建用户输入
type CreateUserInput struct {
	Email        string
	Password     string
	FirstName    string
	LastName     string
	Phone        string
	Role         string
	RestaurantID *uint
}

// UserService 用户管理服务（管理端）
type UserService struct {
	userRepo       repository.UserRepository
	restaurantRepo repository.RestaurantRepository
}

// NewUserService 创建用户管理服务
func NewUserService(userRepo repository.UserRepository, restaurantRepo repository.RestaurantRepository) *UserService {
	return &UserService{
		userRepo:       userRepo,
		restaurantRepo: restaurantRepo,
	}
}

// List 用户列表
func (s *UserService) List(filter repository.UserListFilter) ([]models.User, int64, error) {
	return s.userRepo.List(filter)
}

// Create 创建用户，商家角色必须绑定餐厅
func (s *UserService) Create(input CreateUserInput) (*models.User, error) {
	normalized, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if len(input.Password) < minPasswordLength {
		return nil, ErrPasswordTooWeak
	}

	role := strings.ToLower(strings.TrimSpace(input.Role))
	switch role {
	case constants.RoleAdmin, constants.RoleClient:
	case constants.RoleAssociate:
		if input.RestaurantID == nil || *input.RestaurantID == 0 {
			return nil, ErrNotFound
		}
		restaurant, err := s.restaurantRepo.GetByID(*input.RestaurantID)
		if err != nil {
			return nil, err
		}
		if restaurant == nil {
			return nil, ErrNotFound
		}
	default:
		return nil, ErrNotFound
	}

	exist, err := s.userRepo.GetByEmail(normalized)
	if err != nil {
		return nil, err
	}
	if exist != nil {
		return nil, ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		Email:        normalized,
		PasswordHash: string(hashedPassword),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Phone:        strings.TrimSpace(input.Phone),
		Role:         role,
		Status:       constants.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if role == constants.RoleAssociate {
		user.RestaurantID = input.RestaurantID
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// SetStatus 启用/禁用用户
func (s *UserService) SetStatus(userID uint, status string) error {
	normalized := strings.ToLower(strings.TrimSpace(status))
	if normalized != constants.UserStatusActive && normalized != constants.UserStatusDisabled {
		return ErrNotFound
	}
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	return s.userRepo.UpdateStatus(userID, normalized)
}

// AssignRestaurant 将商家用户绑定到餐厅
func (s *UserService) AssignRestaurant(userID, restaurantID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	if user.Role != constants.RoleAssociate {
		return nil, ErrForbidden
	}
	restaurant, err := s.restaurantRepo.GetByID(restaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, ErrNotFound
	}

	user.RestaurantID = &restaurantID
	user.UpdatedAt = time.Now()
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
