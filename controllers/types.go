package controllers

import (
	"context"
	"time"

	"catalog-service/models"
	"catalog-service/services"
)

// ProductListCacheKey is the single key the list endpoint caches under.
// It is deliberately not parameterized by filters or page: any cached
// response is served to every list request until expiry.
const ProductListCacheKey = "product_list"

// DefaultCacheTTL bounds how stale a cached product list can get.
const DefaultCacheTTL = 15 * time.Minute

// ProductServiceAPI defines the product operations the controller uses.
type ProductServiceAPI interface {
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
	ListProducts(ctx context.Context, params services.ListProductsParams) ([]models.Product, int64, error)
	CreateProduct(ctx context.Context, req services.ProductCreateRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, id uint, req services.ProductUpdateRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
	ReduceStock(ctx context.Context, id uint, quantity int) (bool, error)
}

// CategoryServiceAPI defines the category operations the controller uses.
type CategoryServiceAPI interface {
	GetCategory(ctx context.Context, id uint) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, req services.CategoryCreateRequest) (*models.Category, error)
	UpdateCategory(ctx context.Context, id uint, req services.CategoryCreateRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, id uint) error
}

// AuthServiceAPI defines the auth operations the controller uses.
type AuthServiceAPI interface {
	Login(ctx context.Context, email, password string) (*services.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	Register(ctx context.Context, req services.RegisterRequest) (*models.User, error)
}
