package provider

import (
	"time"

	"github.com/techfood-api/internal/authz"
	"github.com/techfood-api/internal/cache"
	"github.com/techfood-api/internal/config"
	"github.com/techfood-api/internal/logger"
	"github.com/techfood-api/internal/models"
	"github.com/techfood-api/internal/queue"
	"github.com/techfood-api/internal/repository"
	"github.com/techfood-api/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client
	CartStore   cache.CartStore

	// Repositories
	UserRepo       repository.UserRepository
	RestaurantRepo repository.RestaurantRepository
	MenuItemRepo   repository.MenuItemRepository
	OrderRepo      repository.OrderRepository

	// Services
	AuthzService      *authz.Service
	UserAuthService   *service.UserAuthService
	UserService       *service.UserService
	CaptchaService    *service.CaptchaService
	UploadService     *service.UploadService
	RestaurantService *service.RestaurantService
	MenuService       *service.MenuService
	CartService       *service.CartService
	CheckoutService   *service.CheckoutService
	OrderService      *service.OrderService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}
	c.initCartStore()
	c.initRepositories()
	c.initServices()
	return c
}

// initCartStore 选择购物车存储，Redis 不可用时退化为进程内存储
func (c *Container) initCartStore() {
	ttl := time.Duration(c.Config.Cart.SessionTTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	if cache.Enabled() {
		c.CartStore = cache.NewRedisCartStore(cache.Client(), c.Config.Redis.Prefix, ttl)
		return
	}
	logger.Warnw("provider_cart_store_fallback_memory")
	c.CartStore = cache.NewMemoryCartStore()
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.RestaurantRepo = repository.NewRestaurantRepository(db)
	c.MenuItemRepo = repository.NewMenuItemRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo)
	c.UserService = service.NewUserService(c.UserRepo, c.RestaurantRepo)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	c.UploadService = service.NewUploadService(c.Config)
	c.RestaurantService = service.NewRestaurantService(c.RestaurantRepo)
	c.MenuService = service.NewMenuService(c.MenuItemRepo, c.RestaurantRepo)
	c.CartService = service.NewCartService(c.CartStore, c.MenuItemRepo)
	c.CheckoutService = service.NewCheckoutService(models.DB, c.CartService, c.OrderRepo, c.QueueClient)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.QueueClient)
}
