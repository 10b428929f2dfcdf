package router

import (
	"fmt"
	"strings"

	"github.com/techfood-api/internal/cache"
	"github.com/techfood-api/internal/config"
	adminhandlers "github.com/techfood-api/internal/http/handlers/admin"
	associatehandlers "github.com/techfood-api/internal/http/handlers/associate"
	publichandlers "github.com/techfood-api/internal/http/handlers/public"
	"github.com/techfood-api/internal/logger"
	"github.com/techfood-api/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 初始化 Handler（按客户/管理/商家分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)
	associateHandler := associatehandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "tf"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		MessageKey:    "error.login_too_many",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// 静态文件服务（上传的图片）
	r.Static("/uploads", "./uploads")

	jwtAuth := UserJWTAuthMiddleware(c.UserAuthService, c.UserRepo)
	rbac := RoleRBACMiddleware(c.AuthzService)
	cartSession := CartSessionMiddleware(cfg.Cart)

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		public := apiV1.Group("/public")
		{
			public.GET("/restaurants", publicHandler.ListRestaurants)
			public.GET("/restaurants/:id/menu", publicHandler.GetRestaurantMenu)
			public.GET("/captcha/image", publicHandler.GetCaptcha)
		}

		// 用户认证接口
		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", publicHandler.Register)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), publicHandler.Login)
		}

		// 购物车接口（匿名会话，cookie 维持）
		cart := apiV1.Group("/cart")
		cart.Use(cartSession)
		{
			cart.GET("", publicHandler.GetCart)
			cart.GET("/count", publicHandler.GetCartCount)
			cart.POST("/items", publicHandler.AddCartItem)
			cart.PUT("/items/:id", publicHandler.UpdateCartItem)
			cart.DELETE("/items/:id", publicHandler.RemoveCartItem)
			cart.DELETE("", publicHandler.ClearCart)
		}

		// 结账（需登录 + 购物车会话）
		apiV1.POST("/checkout", cartSession, jwtAuth, publicHandler.Checkout)

		// 用户接口（需鉴权）
		me := apiV1.Group("/me")
		me.Use(jwtAuth)
		{
			me.GET("", publicHandler.GetProfile)
			me.PUT("/profile", publicHandler.UpdateProfile)
			me.PUT("/password", publicHandler.ChangePassword)
			me.GET("/orders", publicHandler.ListMyOrders)
			me.GET("/orders/:id", publicHandler.GetMyOrder)
			me.GET("/orders/by-order-no/:order_no", publicHandler.GetMyOrderByNo)
			me.POST("/orders/:id/cancel", publicHandler.CancelMyOrder)
		}

		// 管理员接口
		admin := apiV1.Group("/admin")
		admin.Use(jwtAuth, rbac)
		{
			admin.GET("/restaurants", adminHandler.ListRestaurants)
			admin.POST("/restaurants", adminHandler.CreateRestaurant)
			admin.PUT("/restaurants/:id", adminHandler.UpdateRestaurant)
			admin.DELETE("/restaurants/:id", adminHandler.DeleteRestaurant)

			admin.GET("/menu-items", adminHandler.ListMenuItems)
			admin.POST("/menu-items", adminHandler.CreateMenuItem)
			admin.PUT("/menu-items/:id", adminHandler.UpdateMenuItem)
			admin.DELETE("/menu-items/:id", adminHandler.DeleteMenuItem)

			admin.GET("/orders", adminHandler.ListOrders)
			admin.GET("/orders/:id", adminHandler.GetOrder)
			admin.PATCH("/orders/:id/status", adminHandler.UpdateOrderStatus)

			admin.GET("/users", adminHandler.ListUsers)
			admin.POST("/users", adminHandler.CreateUser)
			admin.PATCH("/users/:id/status", adminHandler.SetUserStatus)
			admin.PUT("/users/:id/restaurant", adminHandler.AssignUserRestaurant)

			admin.POST("/upload", adminHandler.UploadFile)
		}

		// 商家接口（只允许操作绑定餐厅）
		associate := apiV1.Group("/associate")
		associate.Use(jwtAuth, rbac)
		{
			associate.GET("/orders", associateHandler.ListOrders)
			associate.GET("/orders/:id", associateHandler.GetOrder)
			associate.PATCH("/orders/:id/status", associateHandler.UpdateOrderStatus)

			associate.GET("/menu-items", associateHandler.ListMenuItems)
			associate.POST("/menu-items", associateHandler.CreateMenuItem)
			associate.PUT("/menu-items/:id", associateHandler.UpdateMenuItem)
			associate.PATCH("/menu-items/:id/availability", associateHandler.SetMenuItemAvailability)
			associate.DELETE("/menu-items/:id", associateHandler.DeleteMenuItem)

			associate.POST("/upload", associateHandler.UploadFile)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
