package router

import (
	"time"

	"grecale/api"
	"grecale/config"
	_ "grecale/docs"
	"grecale/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件（菜单接口对前端完全开放）
	r.Use(CORSMiddleware())

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 路由组（供菜单前端使用）
	// 接口无登录态，写操作按 IP 限流
	v1 := r.Group("/api/v1")
	v1.Use(middleware.WriteRateLimit(60, time.Minute))
	{
		categoryHandler := api.NewCategoryHandler()
		categories := v1.Group("/categories")
		{
			categories.GET("", categoryHandler.List)
			categories.GET("/:id", categoryHandler.Get)
			categories.POST("", categoryHandler.Create)
			categories.PUT("/:id", categoryHandler.Update)
			categories.DELETE("/:id", categoryHandler.Delete)
		}

		itemHandler := api.NewItemHandler()
		items := v1.Group("/items")
		{
			items.GET("", itemHandler.List)
			items.GET("/:id", itemHandler.Get)
			items.POST("", itemHandler.Create)
			items.PUT("/:id", itemHandler.Update)
			items.DELETE("/:id", itemHandler.Delete)
		}

		subcategoryHandler := api.NewSubcategoryHandler()
		subcategories := v1.Group("/subcategories")
		{
			subcategories.GET("", subcategoryHandler.List)
			subcategories.GET("/:id", subcategoryHandler.Get)
			subcategories.POST("", subcategoryHandler.Create)
			subcategories.PUT("/:id", subcategoryHandler.Update)
			subcategories.DELETE("/:id", subcategoryHandler.Delete)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
