package routes

import (
	"shop-service/controllers"
	"shop-service/middleware"
	"shop-service/models"
	"shop-service/services"

	"github.com/gin-gonic/gin"
)

// Register wires all application routes onto the engine.
func Register(
	r *gin.Engine,
	tokens *services.TokenService,
	authController *controllers.AuthController,
	productController *controllers.ProductController,
	orderController *controllers.OrderController,
	articleController *controllers.ArticleController,
) {
	auth := middleware.Auth(tokens)

	authRoutes := r.Group("/auth")
	authRoutes.Use(middleware.RateLimit())
	{
		authRoutes.POST("/register", authController.Register)
		authRoutes.POST("/login", authController.Login)
		authRoutes.POST("/logout", authController.Logout)
		authRoutes.GET("/about-me", auth, authController.AboutMe)
	}

	productRoutes := r.Group("/products")
	{
		productRoutes.GET("", productController.GetProducts)
		productRoutes.GET("/export", productController.ExportProducts)
		productRoutes.GET("/:id", productController.GetProductByID)
		productRoutes.POST("", auth, productController.CreateProduct)
		productRoutes.PUT("/:id", auth, productController.UpdateProduct)
		productRoutes.DELETE("/:id", auth, productController.DeleteProduct)
	}

	orderRoutes := r.Group("/orders")
	orderRoutes.Use(auth)
	{
		orderRoutes.GET("", orderController.ListOrders)
		orderRoutes.POST("", orderController.CreateOrder)
		orderRoutes.GET("/user/:user_id", orderController.ListUserOrders)
		orderRoutes.GET("/export/:user_id", orderController.ExportUserOrders)
		orderRoutes.GET("/:id", middleware.RequireRole(models.RoleStaff), orderController.GetOrderByID)
	}

	articleRoutes := r.Group("/articles")
	{
		articleRoutes.GET("", articleController.GetArticles)
		articleRoutes.GET("/:id", articleController.GetArticleByID)
	}
}
