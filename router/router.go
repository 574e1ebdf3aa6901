package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-ordering/config"
	"github.com/yeremiapane/restaurant-ordering/controllers"
	"github.com/yeremiapane/restaurant-ordering/middlewares"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	rateLimiter := middlewares.NewRateLimiter(cfg.RateLimit, cfg.RateBurst, 10*time.Minute)

	r.Use(middlewares.BodyLimit(1 << 20))
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(cfg.AllowedOrigins))
	r.Use(middlewares.LoggerMiddleware())
	r.Use(rateLimiter.RateLimit())

	userCtrl := controllers.NewUserController(db)
	restaurantCtrl := controllers.NewRestaurantController(db)
	menuCtrl := controllers.NewMenuController(db)
	tableCtrl := controllers.NewTableController(db)
	orderCtrl := controllers.NewOrderController(db)
	sessionCtrl := controllers.NewSessionController(db, cfg.SessionTTL)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	r.POST("/users", userCtrl.CreateUser)
	r.GET("/users/:user_id", userCtrl.GetUser)

	restaurants := r.Group("/restaurants")
	{
		restaurants.POST("", restaurantCtrl.CreateRestaurant)
		restaurants.GET("", restaurantCtrl.GetAllRestaurants)
		restaurants.GET("/:restaurant_id", restaurantCtrl.GetRestaurant)
		restaurants.GET("/:restaurant_id/menu-items", menuCtrl.GetRestaurantMenu)
		restaurants.GET("/:restaurant_id/tables", tableCtrl.GetRestaurantTables)
		restaurants.GET("/:restaurant_id/orders", orderCtrl.GetRestaurantOrders)
	}

	r.POST("/menu-items", menuCtrl.CreateMenuItem)
	r.GET("/menu-items/:item_id", menuCtrl.GetMenuItem)

	tables := r.Group("/tables")
	{
		tables.POST("", tableCtrl.CreateTable)
		tables.GET("/qr/:qr_code", tableCtrl.GetTableByQRCode)
		tables.GET("/:table_id", tableCtrl.GetTable)
		tables.GET("/:table_id/sessions", sessionCtrl.GetTableSessions)
	}

	r.POST("/orders", orderCtrl.CreateOrder)
	r.GET("/orders/:order_id", orderCtrl.GetOrder)

	r.POST("/sessions", sessionCtrl.CreateSession)
	r.GET("/sessions/:session_id", sessionCtrl.GetSession)

	return r
}
