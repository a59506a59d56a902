package repository

import (
	"context"

	"catalog-service/models"
)

// ProductRepo defines the persistence operations used by the product service.
type ProductRepo interface {
	FindByID(ctx context.Context, id uint) (*models.Product, error)
	List(ctx context.Context, filters models.ProductFilters, ordering string, offset, limit int) ([]models.Product, int64, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, id uint, updates map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

// CategoryRepo defines the persistence operations for category management.
type CategoryRepo interface {
	FindByID(ctx context.Context, id uint) (*models.Category, error)
	FindAll(ctx context.Context) ([]models.Category, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, id uint, updates map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

// UserRepo defines user lookup and creation for the auth service.
type UserRepo interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}
