package services

import (
	"catalog-service/models"

	"github.com/shopspring/decimal"
)

// ListProductsParams contains parameters for listing products.
type ListProductsParams struct {
	Page     int
	PageSize int
	Ordering string
	Filters  models.ProductFilters
}

// ProductCreateRequest is the payload for creating a product.
type ProductCreateRequest struct {
	Name          string
	Description   *string
	Price         decimal.Decimal
	CategoryID    uint
	StockQuantity int
	SKU           *string
	ImageURL      *string
}

// ProductUpdateRequest carries a partial update; nil fields are untouched.
type ProductUpdateRequest struct {
	Name          *string
	Description   *string
	Price         *decimal.Decimal
	CategoryID    *uint
	StockQuantity *int
	ImageURL      *string
}

// CategoryCreateRequest is the payload for creating or replacing a category.
type CategoryCreateRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description"`
}

// RegisterRequest is the payload for creating a user account.
type RegisterRequest struct {
	Email       string  `json:"email" validate:"required,email,max=254"`
	Password    string  `json:"password" validate:"required,min=8"`
	Username    *string `json:"username" validate:"omitempty,max=10"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=15"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
}
