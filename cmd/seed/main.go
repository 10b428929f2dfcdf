package main

import (
	"time"

	"github.com/techfood-api/internal/config"
	"github.com/techfood-api/internal/constants"
	"github.com/techfood-api/internal/logger"
	"github.com/techfood-api/internal/models"

	"golang.org/x/crypto/bcrypt"
)

type seedMenuItem struct {
	Name        string
	Description string
	Price       string
	Available   bool
}

type seedRestaurant struct {
	Name        string
	Description string
	MenuItems   []seedMenuItem
}

type seedUser struct {
	Email      string
	Password   string
	FirstName  string
	LastName   string
	Phone      string
	Role       string
	Restaurant string
}

var seedRestaurants = []seedRestaurant{
	{
		Name:        "Burger House",
		Description: "Hamburguesas artesanales a la parrilla",
		MenuItems: []seedMenuItem{
			{Name: "Hamburguesa Clásica", Description: "Carne de res, lechuga, tomate y queso", Price: "8.99", Available: true},
			{Name: "Hamburguesa Doble", Description: "Doble carne con tocino y cheddar", Price: "12.50", Available: true},
			{Name: "Papas Fritas", Description: "Porción grande con sal de ajo", Price: "3.25", Available: true},
			{Name: "Malteada de Chocolate", Description: "Con crema batida", Price: "4.75", Available: false},
		},
	},
	{
		Name:        "Sushi Kai",
		Description: "Sushi fresco preparado al momento",
		MenuItems: []seedMenuItem{
			{Name: "Roll California", Description: "Cangrejo, aguacate y pepino", Price: "9.90", Available: true},
			{Name: "Nigiri de Salmón", Description: "Cinco piezas de salmón fresco", Price: "12.50", Available: true},
			{Name: "Sopa Miso", Description: "Con tofu y cebollín", Price: "3.50", Available: true},
		},
	},
	{
		Name:        "La Pizzería",
		Description: "Pizza al horno de leña",
		MenuItems: []seedMenuItem{
			{Name: "Pizza Margarita", Description: "Tomate, mozzarella y albahaca", Price: "10.00", Available: true},
			{Name: "Pizza Pepperoni", Description: "Extra pepperoni", Price: "11.50", Available: true},
			{Name: "Calzone", Description: "Relleno de jamón y queso", Price: "9.25", Available: true},
		},
	},
}

var seedUsers = []seedUser{
	{Email: "admin@techfood.local", Password: "admin123", FirstName: "Admin", LastName: "TechFood", Role: constants.RoleAdmin},
	{Email: "cliente@techfood.local", Password: "cliente123", FirstName: "Carlos", LastName: "Pérez", Phone: "555-0101", Role: constants.RoleClient},
	{Email: "burger@techfood.local", Password: "burger123", FirstName: "Brenda", LastName: "García", Phone: "555-0202", Role: constants.RoleAssociate, Restaurant: "Burger House"},
	{Email: "sushi@techfood.local", Password: "sushi123", FirstName: "Sergio", LastName: "Tanaka", Phone: "555-0303", Role: constants.RoleAssociate, Restaurant: "Sushi Kai"},
}

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加餐厅与菜单
	restaurantIDs := map[string]uint{}
	for _, seed := range seedRestaurants {
		var restaurant models.Restaurant
		if err := models.DB.Where("name = ?", seed.Name).First(&restaurant).Error; err != nil {
			restaurant = models.Restaurant{
				Name:        seed.Name,
				Description: seed.Description,
			}
			if err := models.DB.Create(&restaurant).Error; err != nil {
				stdLog.Printf("Failed to create restaurant %s: %v", seed.Name, err)
				continue
			}
			stdLog.Printf("Created restaurant: %s", seed.Name)
		} else {
			stdLog.Printf("Restaurant already exists: %s", seed.Name)
		}
		restaurantIDs[seed.Name] = restaurant.ID

		for _, item := range seed.MenuItems {
			var existing models.MenuItem
			if err := models.DB.Where("restaurant_id = ? AND name = ?", restaurant.ID, item.Name).First(&existing).Error; err == nil {
				continue
			}
			price, err := models.NewMoneyFromString(item.Price)
			if err != nil {
				stdLog.Printf("Invalid price for %s: %v", item.Name, err)
				continue
			}
			menuItem := models.MenuItem{
				RestaurantID: restaurant.ID,
				Name:         item.Name,
				Description:  item.Description,
				Price:        price,
				IsAvailable:  item.Available,
			}
			if err := models.DB.Create(&menuItem).Error; err != nil {
				stdLog.Printf("Failed to create menu item %s: %v", item.Name, err)
			} else {
				stdLog.Printf("Created menu item: %s / %s", seed.Name, item.Name)
			}
		}
	}

	// 添加演示用户
	for _, seed := range seedUsers {
		var existing models.User
		if err := models.DB.Where("email = ?", seed.Email).First(&existing).Error; err == nil {
			stdLog.Printf("User already exists: %s", seed.Email)
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
		if err != nil {
			stdLog.Printf("Failed to hash password for %s: %v", seed.Email, err)
			continue
		}
		now := time.Now()
		user := models.User{
			Email:        seed.Email,
			PasswordHash: string(hash),
			FirstName:    seed.FirstName,
			LastName:     seed.LastName,
			Phone:        seed.Phone,
			Role:         seed.Role,
			Status:       constants.UserStatusActive,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if seed.Restaurant != "" {
			if restaurantID, ok := restaurantIDs[seed.Restaurant]; ok {
				user.RestaurantID = &restaurantID
			}
		}
		if err := models.DB.Create(&user).Error; err != nil {
			stdLog.Printf("Failed to create user %s: %v", seed.Email, err)
		} else {
			stdLog.Printf("Created user: %s (%s)", seed.Email, seed.Role)
		}
	}

	stdLog.Printf("Seed completed")
}
