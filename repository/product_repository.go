package repository

import (
	"context"

	"catalog-service/models"

	"gorm.io/gorm"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// List applies the AND-combined filter predicates, counts the filtered
// set and returns one page ordered by the given column expression.
func (r *ProductRepository) List(ctx context.Context, filters models.ProductFilters, ordering string, offset, limit int) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Product{}).
		Joins("LEFT JOIN categories ON categories.id = products.category_id").
		Preload("Category")

	if filters.MinPrice != nil {
		query = query.Where("products.price >= ?", *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		query = query.Where("products.price <= ?", *filters.MaxPrice)
	}
	if filters.CategoryID != nil {
		query = query.Where("products.category_id = ?", *filters.CategoryID)
	}
	if filters.StockAvailable != nil {
		if *filters.StockAvailable {
			query = query.Where("products.stock_quantity > 0")
		} else {
			query = query.Where("products.stock_quantity = 0")
		}
	}
	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		query = query.Where("products.name ILIKE ? OR categories.name ILIKE ?", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if ordering == "" {
		ordering = "products.price ASC"
	}
	if err := query.Order(ordering).Offset(offset).Limit(limit).Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// Create inserts the product and, when no SKU was supplied, derives one
// from the name and the freshly assigned id in the same transaction.
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(product).Error; err != nil {
			return err
		}
		if product.SKU == nil || *product.SKU == "" {
			sku := models.GenerateSKU(product.Name, product.ID)
			if err := tx.Model(product).Update("sku", sku).Error; err != nil {
				return err
			}
			product.SKU = &sku
		}
		return nil
	})
}

func (r *ProductRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Updates(updates)
	return result.RowsAffected, result.Error
}

func (r *ProductRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.Product{}, id)
	return result.RowsAffected, result.Error
}
