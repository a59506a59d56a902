package services

import (
	"context"
	"errors"
	"fmt"

	"catalog-service/models"
	"catalog-service/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Messages returned to clients when a field value is rejected.
const (
	msgPriceNotPositive = "Price must be greater than 0."
	msgNegativeStock    = "Stock quantity cannot be negative."
	msgCategoryMissing  = "Category does not exist."
)

type ProductService struct {
	productRepo  repository.ProductRepo
	categoryRepo repository.CategoryRepo
}

func NewProductService(pr repository.ProductRepo, cr repository.CategoryRepo) *ProductService {
	return &ProductService{productRepo: pr, categoryRepo: cr}
}

func (s *ProductService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) ListProducts(ctx context.Context, params ListProductsParams) ([]models.Product, int64, error) {
	offset := (params.Page - 1) * params.PageSize
	return s.productRepo.List(ctx, params.Filters, params.Ordering, offset, params.PageSize)
}

func (s *ProductService) CreateProduct(ctx context.Context, req ProductCreateRequest) (*models.Product, error) {
	if err := s.validatePrice(req.Price); err != nil {
		return nil, err
	}
	if err := s.validateStock(req.StockQuantity); err != nil {
		return nil, err
	}
	if err := s.validateCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	product := &models.Product{
		SKU:           req.SKU,
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		CategoryID:    req.CategoryID,
		StockQuantity: req.StockQuantity,
		ImageURL:      req.ImageURL,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	// Re-read so the response carries the nested category.
	return s.GetProduct(ctx, product.ID)
}

func (s *ProductService) UpdateProduct(ctx context.Context, id uint, req ProductUpdateRequest) (*models.Product, error) {
	if _, err := s.GetProduct(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		if err := s.validatePrice(*req.Price); err != nil {
			return nil, err
		}
		updates["price"] = *req.Price
	}
	if req.CategoryID != nil {
		if err := s.validateCategory(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		updates["category_id"] = *req.CategoryID
	}
	if req.StockQuantity != nil {
		if err := s.validateStock(*req.StockQuantity); err != nil {
			return nil, err
		}
		updates["stock_quantity"] = *req.StockQuantity
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}

	if len(updates) > 0 {
		if _, err := s.productRepo.Update(ctx, id, updates); err != nil {
			return nil, fmt.Errorf("failed to update product: %w", err)
		}
	}
	return s.GetProduct(ctx, id)
}

func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	rows, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// ReduceStock decrements the product's stock by quantity when enough is
// on hand and reports whether the reduction happened. A false return
// with a nil error means insufficient stock; state is left unchanged.
// The read and the write are separate statements, so two concurrent
// reductions on the same product can lose an update.
func (s *ProductService) ReduceStock(ctx context.Context, id uint, quantity int) (bool, error) {
	if quantity <= 0 {
		return false, ErrInvalidQuantity
	}

	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return false, err
	}

	if product.StockQuantity < quantity {
		return false, nil
	}

	updates := map[string]interface{}{"stock_quantity": product.StockQuantity - quantity}
	if _, err := s.productRepo.Update(ctx, id, updates); err != nil {
		return false, fmt.Errorf("failed to persist stock reduction: %w", err)
	}
	return true, nil
}

func (s *ProductService) validatePrice(price decimal.Decimal) error {
	if price.LessThanOrEqual(decimal.Zero) {
		return &ValidationError{Field: "price", Message: msgPriceNotPositive}
	}
	return nil
}

func (s *ProductService) validateStock(quantity int) error {
	if quantity < 0 {
		return &ValidationError{Field: "stock_quantity", Message: msgNegativeStock}
	}
	return nil
}

func (s *ProductService) validateCategory(ctx context.Context, categoryID uint) error {
	exists, err := s.categoryRepo.Exists(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("failed to check category: %w", err)
	}
	if !exists {
		return &ValidationError{Field: "category_id", Message: msgCategoryMissing}
	}
	return nil
}
