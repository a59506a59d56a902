package controllers

import (
	"errors"
	"strconv"
	"strings"

	"catalog-service/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 50
)

// supportedOrdering maps the ordering query values to column expressions.
var supportedOrdering = map[string]string{
	"price":         "products.price ASC",
	"-price":        "products.price DESC",
	"created_date":  "products.created_date ASC",
	"-created_date": "products.created_date DESC",
}

// RequestValidator handles struct validation and query-param parsing.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

func (rv *RequestValidator) Struct(s interface{}) error {
	return rv.validate.Struct(s)
}

// ParsePagination returns the 1-based page and the page size, applying
// the default and the hard cap.
func (rv *RequestValidator) ParsePagination(c *gin.Context) (int, int, error) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 0, 0, errors.New("invalid page number")
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(DefaultPageSize)))
	if err != nil || pageSize < 1 {
		return 0, 0, errors.New("invalid page size")
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	return page, pageSize, nil
}

// ParseFilters parses every filter parameter into one predicate each.
func (rv *RequestValidator) ParseFilters(c *gin.Context) (models.ProductFilters, error) {
	var filters models.ProductFilters

	if raw := strings.TrimSpace(c.Query("min_price")); raw != "" {
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return filters, errors.New("invalid min_price value")
		}
		filters.MinPrice = &v
	}
	if raw := strings.TrimSpace(c.Query("max_price")); raw != "" {
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return filters, errors.New("invalid max_price value")
		}
		filters.MaxPrice = &v
	}
	if raw := strings.TrimSpace(c.Query("category")); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return filters, errors.New("invalid category value")
		}
		cid := uint(id)
		filters.CategoryID = &cid
	}
	if raw := strings.TrimSpace(c.Query("stock_available")); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return filters, errors.New("invalid boolean value for 'stock_available'")
		}
		filters.StockAvailable = &v
	}
	filters.Search = strings.TrimSpace(c.Query("search"))

	return filters, nil
}

// ParseOrdering maps the ordering parameter to a column expression,
// defaulting to ascending price.
func (rv *RequestValidator) ParseOrdering(c *gin.Context) (string, error) {
	raw := strings.TrimSpace(c.Query("ordering"))
	if raw == "" {
		return supportedOrdering["price"], nil
	}
	expr, ok := supportedOrdering[raw]
	if !ok {
		return "", errors.New("invalid ordering value")
	}
	return expr, nil
}
