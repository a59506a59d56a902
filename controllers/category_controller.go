package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"catalog-service/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CategoryController struct {
	service   CategoryServiceAPI
	cache     *CacheManager
	validator *RequestValidator
}

func NewCategoryController(service CategoryServiceAPI, cache *CacheManager) *CategoryController {
	return &CategoryController{
		service:   service,
		cache:     cache,
		validator: NewRequestValidator(),
	}
}

func (ctrl *CategoryController) GetCategories(c *gin.Context) {
	categories, err := ctrl.service.ListCategories(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to list categories", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to fetch categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (ctrl *CategoryController) GetCategoryByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	category, err := ctrl.service.GetCategory(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
			return
		}
		zap.L().Error("Failed to fetch category", zap.Error(err), zap.Uint("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error."})
		return
	}
	c.JSON(http.StatusOK, category)
}

func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	var req services.CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid JSON body"})
		return
	}
	if err := ctrl.validator.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	category, err := ctrl.service.CreateCategory(c.Request.Context(), req)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "unique") {
			c.JSON(http.StatusConflict, gin.H{"detail": "Category with this name already exists."})
			return
		}
		zap.L().Error("Failed to create category", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (ctrl *CategoryController) UpdateCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req services.CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid JSON body"})
		return
	}
	if err := ctrl.validator.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	category, err := ctrl.service.UpdateCategory(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": fmt.Sprintf("Category with ID %d not found.", id)})
			return
		}
		zap.L().Error("Failed to update category", zap.Error(err), zap.Uint("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to update category"})
		return
	}

	// Category names surface in product payloads, drop the cached list.
	ctrl.cache.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, category)
}

func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ctrl.service.DeleteCategory(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": fmt.Sprintf("Category with ID %d not found.", id)})
			return
		}
		zap.L().Error("Failed to delete category", zap.Error(err), zap.Uint("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to delete category"})
		return
	}

	// The cascade may have removed products still present in the cache.
	ctrl.cache.Invalidate(c.Request.Context())
	c.Status(http.StatusNoContent)
}
