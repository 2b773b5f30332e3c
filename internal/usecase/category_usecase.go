package usecase

import (
	"context"

	"github.com/delwerhossain/e-com/internal/domain/entity"
	"github.com/delwerhossain/e-com/internal/domain/repository"
	"github.com/delwerhossain/e-com/pkg/errors"
)

type CategoryUseCase struct {
	categoryRepo    repository.CategoryRepository
	subCategoryRepo repository.SubCategoryRepository
}

func NewCategoryUseCase(categoryRepo repository.CategoryRepository, subCategoryRepo repository.SubCategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{categoryRepo: categoryRepo, subCategoryRepo: subCategoryRepo}
}

type CategoryInput struct {
	Name        string
	Description string
	ImageURL    string
}

func (uc *CategoryUseCase) CreateCategory(ctx context.Context, input CategoryInput) (*entity.Category, error) {
	category := &entity.Category{
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		IsActive:    true,
	}
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// GetCategory reports an inactive category as a bad request rather than
// pretending it does not exist; missing ones are a plain not found.
func (uc *CategoryUseCase) GetCategory(ctx context.Context, id string, viewer entity.Viewer) (*entity.Category, error) {
	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !category.IsActive && !viewer.Privileged() {
		return nil, errors.BadRequest("Category is inactive", nil)
	}
	return category, nil
}

func (uc *CategoryUseCase) ListCategories(ctx context.Context, includeInactive bool, viewer entity.Viewer) ([]*entity.Category, error) {
	activeOnly := !(includeInactive && viewer.Privileged())
	return uc.categoryRepo.List(ctx, activeOnly)
}

func (uc *CategoryUseCase) UpdateCategory(ctx context.Context, id string, payload map[string]interface{}) (*entity.Category, error) {
	if len(payload) == 0 {
		return nil, errors.BadRequest("Nothing to update", nil)
	}
	return uc.categoryRepo.Update(ctx, id, flattenUpdate(payload))
}

func (uc *CategoryUseCase) ToggleCategoryStatus(ctx context.Context, id string) (*entity.Category, error) {
	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.categoryRepo.Update(ctx, id, map[string]interface{}{"isActive": !category.IsActive})
}

func (uc *CategoryUseCase) DeleteCategory(ctx context.Context, id string) error {
	return uc.categoryRepo.Delete(ctx, id)
}

type SubCategoryInput struct {
	Name        string
	Description string
	ImageURL    string
	CategoryID  string
}

// CreateSubCategory requires an existing parent category.
func (uc *CategoryUseCase) CreateSubCategory(ctx context.Context, input SubCategoryInput) (*entity.SubCategory, error) {
	parent, err := uc.categoryRepo.GetByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}

	subCategory := &entity.SubCategory{
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		CategoryID:  parent.ID,
		IsActive:    true,
	}
	if err := uc.subCategoryRepo.Create(ctx, subCategory); err != nil {
		return nil, err
	}
	return subCategory, nil
}

func (uc *CategoryUseCase) GetSubCategory(ctx context.Context, id string, viewer entity.Viewer) (*entity.SubCategory, error) {
	subCategory, err := uc.subCategoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !subCategory.IsActive && !viewer.Privileged() {
		return nil, errors.BadRequest("Subcategory is inactive", nil)
	}
	return subCategory, nil
}

func (uc *CategoryUseCase) ListSubCategories(ctx context.Context, categoryID string, includeInactive bool, viewer entity.Viewer) ([]*entity.SubCategory, error) {
	activeOnly := !(includeInactive && viewer.Privileged())
	return uc.subCategoryRepo.List(ctx, categoryID, activeOnly)
}

func (uc *CategoryUseCase) UpdateSubCategory(ctx context.Context, id string, payload map[string]interface{}) (*entity.SubCategory, error) {
	if len(payload) == 0 {
		return nil, errors.BadRequest("Nothing to update", nil)
	}
	if categoryID, ok := payload["categoryId"].(string); ok {
		parent, err := uc.categoryRepo.GetByID(ctx, categoryID)
		if err != nil {
			return nil, err
		}
		payload["categoryId"] = parent.ID
	}
	return uc.subCategoryRepo.Update(ctx, id, flattenUpdate(payload))
}

func (uc *CategoryUseCase) ToggleSubCategoryStatus(ctx context.Context, id string) (*entity.SubCategory, error) {
	subCategory, err := uc.subCategoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.subCategoryRepo.Update(ctx, id, map[string]interface{}{"isActive": !subCategory.IsActive})
}

func (uc *CategoryUseCase) DeleteSubCategory(ctx context.Context, id string) error {
	return uc.subCategoryRepo.Delete(ctx, id)
}
