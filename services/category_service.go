package services

import (
	"context"
	"errors"
	"fmt"

	"catalog-service/models"
	"catalog-service/repository"

	"gorm.io/gorm"
)

type CategoryService struct {
	categoryRepo repository.CategoryRepo
}

func NewCategoryService(cr repository.CategoryRepo) *CategoryService {
	return &CategoryService{categoryRepo: cr}
}

func (s *CategoryService) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.FindAll(ctx)
}

func (s *CategoryService) CreateCategory(ctx context.Context, req CategoryCreateRequest) (*models.Category, error) {
	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id uint, req CategoryCreateRequest) (*models.Category, error) {
	updates := map[string]interface{}{"name": req.Name}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	rows, err := s.categoryRepo.Update(ctx, id, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	if rows == 0 {
		return nil, ErrNotFound
	}
	return s.GetCategory(ctx, id)
}

// DeleteCategory removes the category and, through the cascade
// constraint, every product that references it.
func (s *CategoryService) DeleteCategory(ctx context.Context, id uint) error {
	rows, err := s.categoryRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
