package routes

import (
	"github.com/lasoundguy/household-tracker/internal/config"
	"github.com/lasoundguy/household-tracker/internal/handlers"
	"github.com/lasoundguy/household-tracker/internal/middleware"
	"github.com/lasoundguy/household-tracker/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.LoggerMiddleware())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowOrigins))
	router.Use(middleware.RateLimitMiddleware(120))

	router.Static(cfg.Upload.BaseURL, cfg.Upload.Path)

	authService := services.NewAuthService(db)
	objectService := services.NewObjectService(db)
	locationService := services.NewLocationService(db)
	categoryService := services.NewCategoryService(db)
	uploadService := services.NewUploadService(cfg.Upload.Path, cfg.Upload.BaseURL)

	authHandler := handlers.NewAuthHandler(authService, cfg)
	objectHandler := handlers.NewObjectHandler(objectService)
	locationHandler := handlers.NewLocationHandler(locationService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	uploadHandler := handlers.NewUploadHandler(uploadService, cfg)

	api := router.Group("/api")

	public := api.Group("")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}
	}

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(db, cfg))
	{
		user := protected.Group("/auth")
		{
			user.GET("/me", authHandler.GetMe)
		}

		objects := protected.Group("/objects")
		{
			objects.GET("", objectHandler.GetObjects)
			objects.POST("", objectHandler.CreateObject)
			objects.GET("/:id", objectHandler.GetObject)
			objects.PUT("/:id", objectHandler.UpdateObject)
			objects.DELETE("/:id", objectHandler.DeleteObject)
		}

		locations := protected.Group("/locations")
		{
			locations.GET("", locationHandler.GetLocations)
			locations.POST("", locationHandler.CreateLocation)
			locations.GET("/:id", locationHandler.GetLocation)
			locations.PUT("/:id", locationHandler.UpdateLocation)
			locations.DELETE("/:id", locationHandler.DeleteLocation)
		}

		categories := protected.Group("/categories")
		{
			categories.GET("", categoryHandler.GetCategories)
			categories.POST("", categoryHandler.CreateCategory)
			categories.PUT("/:id", categoryHandler.UpdateCategory)
			categories.DELETE("/:id", categoryHandler.DeleteCategory)
		}

		upload := protected.Group("/upload")
		{
			upload.POST("", uploadHandler.UploadImage)
			upload.DELETE("", uploadHandler.DeleteImage)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "服务运行正常",
		})
	})

	return router
}
