package routes

import (
	"catalog-service/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all endpoints. Reads are public; writes require
// a valid access token.
func RegisterRoutes(
	r *gin.Engine,
	products *controllers.ProductController,
	categories *controllers.CategoryController,
	auth *controllers.AuthController,
	requireAuth gin.HandlerFunc,
) {
	r.POST("/token/", auth.ObtainTokenPair)
	r.POST("/token/refresh/", auth.RefreshTokenPair)
	r.POST("/auth/register/", auth.Register)

	productRoutes := r.Group("/products")
	{
		productRoutes.GET("/", products.GetProducts)
		productRoutes.GET("/:id", products.GetProductByID)
		productRoutes.POST("/", requireAuth, products.CreateProduct)
		productRoutes.PUT("/:id", requireAuth, products.UpdateProduct)
		productRoutes.PATCH("/:id", requireAuth, products.PatchProduct)
		productRoutes.DELETE("/:id", requireAuth, products.DeleteProduct)
		productRoutes.POST("/:id/reduce-stock", requireAuth, products.ReduceStock)
	}

	categoryRoutes := r.Group("/categories")
	{
		categoryRoutes.GET("/", categories.GetCategories)
		categoryRoutes.GET("/:id", categories.GetCategoryByID)
		categoryRoutes.POST("/", requireAuth, categories.CreateCategory)
		categoryRoutes.PUT("/:id", requireAuth, categories.UpdateCategory)
		categoryRoutes.PATCH("/:id", requireAuth, categories.UpdateCategory)
		categoryRoutes.DELETE("/:id", requireAuth, categories.DeleteCategory)
	}
}
