package services

import (
	"context"
	"testing"

	"catalog-service/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// --- Mocks for Dependencies ---

type MockProductRepo struct{ mock.Mock }

func (m *MockProductRepo) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepo) List(ctx context.Context, filters models.ProductFilters, ordering string, offset, limit int) ([]models.Product, int64, error) {
	args := m.Called(ctx, filters, ordering, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepo) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepo) Update(ctx context.Context, id uint, updates map[string]interface{}) (int64, error) {
	args := m.Called(ctx, id, updates)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepo) Delete(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type MockCategoryRepo struct{ mock.Mock }

func (m *MockCategoryRepo) FindByID(ctx context.Context, id uint) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepo) FindAll(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepo) Exists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepo) Create(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepo) Update(ctx context.Context, id uint, updates map[string]interface{}) (int64, error) {
	args := m.Called(ctx, id, updates)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryRepo) Delete(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// --- Tests ---

func TestReduceStock(t *testing.T) {
	ctx := context.Background()

	newService := func() (*ProductService, *MockProductRepo) {
		productRepo := new(MockProductRepo)
		return NewProductService(productRepo, new(MockCategoryRepo)), productRepo
	}

	t.Run("Rejects Non-Positive Quantity", func(t *testing.T) {
		service, productRepo := newService()

		for _, quantity := range []int{0, -1, -50} {
			reduced, err := service.ReduceStock(ctx, 1, quantity)
			assert.ErrorIs(t, err, ErrInvalidQuantity)
			assert.False(t, reduced)
		}
		// Stock must be untouched: the repository is never consulted.
		productRepo.AssertNotCalled(t, "FindByID")
		productRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Decrements When Enough Stock", func(t *testing.T) {
		service, productRepo := newService()
		product := &models.Product{ID: 1, Name: "Widget", StockQuantity: 10}

		productRepo.On("FindByID", ctx, uint(1)).Return(product, nil).Once()
		productRepo.On("Update", ctx, uint(1), map[string]interface{}{"stock_quantity": 4}).
			Return(int64(1), nil).Once()

		reduced, err := service.ReduceStock(ctx, 1, 6)

		assert.NoError(t, err)
		assert.True(t, reduced)
		productRepo.AssertExpectations(t)
	})

	t.Run("Reports Failure Without Error When Insufficient", func(t *testing.T) {
		service, productRepo := newService()
		product := &models.Product{ID: 1, Name: "Widget", StockQuantity: 3}

		productRepo.On("FindByID", ctx, uint(1)).Return(product, nil).Once()

		reduced, err := service.ReduceStock(ctx, 1, 4)

		assert.NoError(t, err)
		assert.False(t, reduced)
		productRepo.AssertNotCalled(t, "Update")
		productRepo.AssertExpectations(t)
	})

	t.Run("Missing Product", func(t *testing.T) {
		service, productRepo := newService()

		productRepo.On("FindByID", ctx, uint(99)).Return(nil, gorm.ErrRecordNotFound).Once()

		reduced, err := service.ReduceStock(ctx, 99, 1)

		assert.ErrorIs(t, err, ErrNotFound)
		assert.False(t, reduced)
	})
}

func TestCreateProductValidation(t *testing.T) {
	ctx := context.Background()

	validRequest := func() ProductCreateRequest {
		return ProductCreateRequest{
			Name:          "Widget",
			Price:         decimal.NewFromFloat(19.99),
			CategoryID:    1,
			StockQuantity: 5,
		}
	}

	t.Run("Rejects Non-Positive Price", func(t *testing.T) {
		service := NewProductService(new(MockProductRepo), new(MockCategoryRepo))

		for _, price := range []decimal.Decimal{decimal.Zero, decimal.NewFromFloat(-0.01)} {
			req := validRequest()
			req.Price = price

			_, err := service.CreateProduct(ctx, req)

			ve, ok := AsValidationError(err)
			assert.True(t, ok)
			assert.Equal(t, "Price must be greater than 0.", ve.Message)
		}
	})

	t.Run("Rejects Negative Stock", func(t *testing.T) {
		service := NewProductService(new(MockProductRepo), new(MockCategoryRepo))

		req := validRequest()
		req.StockQuantity = -1

		_, err := service.CreateProduct(ctx, req)

		ve, ok := AsValidationError(err)
		assert.True(t, ok)
		assert.Equal(t, "Stock quantity cannot be negative.", ve.Message)
	})

	t.Run("Rejects Unknown Category", func(t *testing.T) {
		productRepo := new(MockProductRepo)
		categoryRepo := new(MockCategoryRepo)
		service := NewProductService(productRepo, categoryRepo)

		categoryRepo.On("Exists", ctx, uint(1)).Return(false, nil).Once()

		_, err := service.CreateProduct(ctx, validRequest())

		ve, ok := AsValidationError(err)
		assert.True(t, ok)
		assert.Equal(t, "Category does not exist.", ve.Message)
		productRepo.AssertNotCalled(t, "Create")
		categoryRepo.AssertExpectations(t)
	})

	t.Run("Persists Valid Product", func(t *testing.T) {
		productRepo := new(MockProductRepo)
		categoryRepo := new(MockCategoryRepo)
		service := NewProductService(productRepo, categoryRepo)

		categoryRepo.On("Exists", ctx, uint(1)).Return(true, nil).Once()
		productRepo.On("Create", ctx, mock.AnythingOfType("*models.Product")).
			Run(func(args mock.Arguments) {
				p := args.Get(1).(*models.Product)
				p.ID = 7
			}).
			Return(nil).Once()
		productRepo.On("FindByID", ctx, uint(7)).
			Return(&models.Product{ID: 7, Name: "Widget"}, nil).Once()

		product, err := service.CreateProduct(ctx, validRequest())

		assert.NoError(t, err)
		assert.Equal(t, uint(7), product.ID)
		productRepo.AssertExpectations(t)
		categoryRepo.AssertExpectations(t)
	})
}

func TestUpdateProductValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("Rejects Unknown Category On Update", func(t *testing.T) {
		productRepo := new(MockProductRepo)
		categoryRepo := new(MockCategoryRepo)
		service := NewProductService(productRepo, categoryRepo)

		productRepo.On("FindByID", ctx, uint(1)).
			Return(&models.Product{ID: 1, Name: "Widget"}, nil).Once()
		categoryRepo.On("Exists", ctx, uint(42)).Return(false, nil).Once()

		badCategory := uint(42)
		_, err := service.UpdateProduct(ctx, 1, ProductUpdateRequest{CategoryID: &badCategory})

		ve, ok := AsValidationError(err)
		assert.True(t, ok)
		assert.Equal(t, "Category does not exist.", ve.Message)
		productRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Missing Product", func(t *testing.T) {
		productRepo := new(MockProductRepo)
		service := NewProductService(productRepo, new(MockCategoryRepo))

		productRepo.On("FindByID", ctx, uint(9)).Return(nil, gorm.ErrRecordNotFound).Once()

		name := "New name"
		_, err := service.UpdateProduct(ctx, 9, ProductUpdateRequest{Name: &name})

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDeleteProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing Product", func(t *testing.T) {
		productRepo := new(MockProductRepo)
		service := NewProductService(productRepo, new(MockCategoryRepo))

		productRepo.On("Delete", ctx, uint(5)).Return(int64(0), nil).Once()

		err := service.DeleteProduct(ctx, 5)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Success", func(t *testing.T) {
		productRepo := new(MockProductRepo)
		service := NewProductService(productRepo, new(MockCategoryRepo))

		productRepo.On("Delete", ctx, uint(5)).Return(int64(1), nil).Once()

		assert.NoError(t, service.DeleteProduct(ctx, 5))
	})
}
