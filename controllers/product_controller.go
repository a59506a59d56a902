package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"catalog-service/models"
	"catalog-service/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CreateProductBody is the JSON payload for creating a product.
// category_id is write-only; responses carry the nested category.
type CreateProductBody struct {
	Name          string          `json:"name" validate:"required,max=255"`
	Description   *string         `json:"description"`
	Price         decimal.Decimal `json:"price" validate:"required"`
	CategoryID    uint            `json:"category_id" validate:"required"`
	StockQuantity int             `json:"stock_quantity" validate:"gte=0"`
	SKU           *string         `json:"sku" validate:"omitempty,max=50"`
	ImageURL      *string         `json:"image_url" validate:"omitempty,url,max=500"`
}

// UpdateProductBody is the JSON payload for updating a product. Absent
// fields are left untouched on PATCH; PUT requires the core fields.
type UpdateProductBody struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	CategoryID    *uint            `json:"category_id"`
	StockQuantity *int             `json:"stock_quantity"`
	ImageURL      *string          `json:"image_url"`
}

type ReduceStockBody struct {
	Quantity int `json:"quantity"`
}

type productListResponse struct {
	Count    int64            `json:"count"`
	Next     *string          `json:"next"`
	Previous *string          `json:"previous"`
	Results  []models.Product `json:"results"`
}

type ProductController struct {
	service   ProductServiceAPI
	cache     *CacheManager
	validator *RequestValidator
}

func NewProductController(service ProductServiceAPI, cache *CacheManager) *ProductController {
	return &ProductController{
		service:   service,
		cache:     cache,
		validator: NewRequestValidator(),
	}
}

// GetProducts serves the product list through the cache-aside path.
// The cache is consulted before query parameters are even parsed, so a
// cached payload is returned regardless of the current request's
// filters until it expires.
func (ctrl *ProductController) GetProducts(c *gin.Context) {
	ctx := c.Request.Context()

	if cached, ok := ctrl.cache.GetProductList(ctx); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
		return
	}

	page, pageSize, err := ctrl.validator.ParsePagination(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	filters, err := ctrl.validator.ParseFilters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	ordering, err := ctrl.validator.ParseOrdering(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	products, total, err := ctrl.service.ListProducts(ctx, services.ListProductsParams{
		Page:     page,
		PageSize: pageSize,
		Ordering: ordering,
		Filters:  filters,
	})
	if err != nil {
		zap.L().Error("Failed to list products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "An error occurred during product listing."})
		return
	}

	if products == nil {
		products = []models.Product{}
	}
	response := productListResponse{
		Count:   total,
		Results: products,
	}
	if int64(page*pageSize) < total {
		response.Next = pageLink(c, page+1)
	}
	if page > 1 {
		response.Previous = pageLink(c, page-1)
	}

	payload, err := json.Marshal(response)
	if err != nil {
		zap.L().Error("Failed to serialize product list", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "An error occurred during product listing."})
		return
	}

	ctrl.cache.SetProductList(ctx, payload)
	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}

func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	product, err := ctrl.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
			return
		}
		zap.L().Error("Failed to fetch product", zap.Error(err), zap.Uint("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error."})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var body CreateProductBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid JSON body"})
		return
	}
	if err := ctrl.validator.Struct(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	product, err := ctrl.service.CreateProduct(c.Request.Context(), services.ProductCreateRequest{
		Name:          body.Name,
		Description:   body.Description,
		Price:         body.Price,
		CategoryID:    body.CategoryID,
		StockQuantity: body.StockQuantity,
		SKU:           body.SKU,
		ImageURL:      body.ImageURL,
	})
	if err != nil {
		if ve, ok := services.AsValidationError(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"detail": ve.Message})
			return
		}
		zap.L().Error("Failed to create product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "An error occurred during product creation."})
		return
	}

	ctrl.cache.Invalidate(c.Request.Context())
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles PUT; the core writable fields are mandatory.
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	ctrl.updateProduct(c, true)
}

// PatchProduct handles PATCH; absent fields are left untouched.
func (ctrl *ProductController) PatchProduct(c *gin.Context) {
	ctrl.updateProduct(c, false)
}

func (ctrl *ProductController) updateProduct(c *gin.Context, full bool) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var body UpdateProductBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid JSON body"})
		return
	}
	if full && (body.Name == nil || body.Price == nil || body.CategoryID == nil) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "name, price and category_id are required"})
		return
	}

	product, err := ctrl.service.UpdateProduct(c.Request.Context(), id, services.ProductUpdateRequest{
		Name:          body.Name,
		Description:   body.Description,
		Price:         body.Price,
		CategoryID:    body.CategoryID,
		StockQuantity: body.StockQuantity,
		ImageURL:      body.ImageURL,
	})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": fmt.Sprintf("Product with ID %d not found.", id)})
			return
		}
		if ve, ok := services.AsValidationError(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"detail": ve.Message})
			return
		}
		// Unlike create and list, the underlying error text is echoed here.
		zap.L().Error("Failed to update product", zap.Error(err), zap.Uint("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": fmt.Sprintf("An error occurred during product update: %s", err.Error())})
		return
	}

	ctrl.cache.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, product)
}

func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ctrl.service.DeleteProduct(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": fmt.Sprintf("Product with ID %d not found.", id)})
			return
		}
		zap.L().Error("Failed to delete product", zap.Error(err), zap.Uint("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": fmt.Sprintf("An error occurred during product deletion: %s", err.Error())})
		return
	}

	ctrl.cache.Invalidate(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// ReduceStock decrements a product's stock. Insufficient stock is a
// conflict, not a server error.
func (ctrl *ProductController) ReduceStock(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var body ReduceStockBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid JSON body"})
		return
	}

	reduced, err := ctrl.service.ReduceStock(c.Request.Context(), id, body.Quantity)
	if err != nil {
		if errors.Is(err, services.ErrInvalidQuantity) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Quantity must be greater than zero."})
			return
		}
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": fmt.Sprintf("Product with ID %d not found.", id)})
			return
		}
		zap.L().Error("Failed to reduce stock", zap.Error(err), zap.Uint("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error."})
		return
	}
	if !reduced {
		c.JSON(http.StatusConflict, gin.H{"detail": "Insufficient stock."})
		return
	}

	ctrl.cache.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid ID format"})
		return 0, false
	}
	return uint(id), true
}

func pageLink(c *gin.Context, page int) *string {
	u := *c.Request.URL
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	link := u.String()
	return &link
}
