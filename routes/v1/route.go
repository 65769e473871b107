package route

import (
	"net/http"
	"time"

	"ShopOrder/config/environment"
	"ShopOrder/controllers"
	"ShopOrder/handlers"
	"ShopOrder/middleware"
	"ShopOrder/services"
	"ShopOrder/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the engine with its middleware and every route registered.
func NewRouter(cfg *environment.Config, st store.Store, messenger services.Messenger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.ErrorHandlerMiddleware())
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	RegisterRoutes(r, cfg, st, messenger)
	return r
}

// RegisterRoutes initializes all routes
func RegisterRoutes(router *gin.Engine, cfg *environment.Config, st store.Store, messenger services.Messenger) {
	settingsService := services.NewSettingsService(st)
	menuService := services.NewMenuService(st, settingsService)
	orderService := services.NewOrderService(messenger)
	webhookService := services.NewWebhookService(cfg.Line.ChannelSecret, settingsService)

	root := router.Group("/")
	{
		handlers.RegisterMenuRoutes(root, controllers.NewMenuController(menuService))
		handlers.RegisterSettingsRoutes(root, controllers.NewSettingsController(settingsService), middleware.AdminAuthMiddleware(cfg.Admin.JWTSecret))
		handlers.RegisterOrderRoutes(root, controllers.NewOrderController(orderService))
		handlers.RegisterWebhookRoutes(root, controllers.NewWebhookController(webhookService))
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func corsConfig(origins []string) cors.Config {
	config := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = origins
	}
	return config
}
