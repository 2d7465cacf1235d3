package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/nublack/nublack-api/internal/application/dto"
	"github.com/nublack/nublack-api/internal/domain"
	"github.com/nublack/nublack-api/internal/domain/entity"
	"github.com/nublack/nublack-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías.
// Una categoría con productos que la referencian no puede desactivarse ni eliminarse.
type CategoryUseCase struct {
	repo     repository.CategoryRepository
	products repository.ProductRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, products repository.ProductRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, products: products}
}

// Create crea una categoría. Devuelve ErrDuplicate si el nombre ya existe.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Status:      entity.CategoryStatusActivo,
		ImageURL:    in.ImageURL,
		Tallas:      in.Tallas,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	return toCategoryResponse(category), nil
}

// Update actualiza los campos enviados. Pasar a Inactivo con productos que la
// referencian produce ErrHasDependents; renombrar a un nombre tomado, ErrDuplicate.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	if in.Name != nil && *in.Name != category.Name {
		existing, err := uc.repo.GetByName(*in.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, domain.ErrDuplicate
		}
		category.Name = *in.Name
	}
	if in.Status != nil && *in.Status == entity.CategoryStatusInactivo && category.Status != entity.CategoryStatusInactivo {
		n, err := uc.products.CountByCategory(id)
		if err != nil {
			return nil, err
		}
		if n > 0 {
			return nil, domain.ErrHasDependents
		}
	}
	if in.Status != nil {
		category.Status = *in.Status
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	if in.ImageURL != nil {
		category.ImageURL = *in.ImageURL
	}
	if in.Tallas != nil {
		category.Tallas = *in.Tallas
	}
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// List lista categorías con paginación. Con soloActivas filtra las Inactivo.
func (uc *CategoryUseCase) List(limit, offset int, soloActivas bool) (*dto.CategoryListResponse, error) {
	list, total, err := uc.repo.List(0, 0) // el filtro de estado se aplica antes de paginar
	if err != nil {
		return nil, err
	}
	filtered := make([]*entity.Category, 0, len(list))
	for _, c := range list {
		if soloActivas && c.Status != entity.CategoryStatusActivo {
			continue
		}
		filtered = append(filtered, c)
	}
	total = len(filtered)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if limit <= 0 || end > total {
		end = total
	}
	items := make([]dto.CategoryResponse, 0, end-offset)
	for _, c := range filtered[offset:end] {
		items = append(items, *toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// Delete elimina una categoría. Con productos que la referencian produce ErrHasDependents.
func (uc *CategoryUseCase) Delete(id string) error {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	n, err := uc.products.CountByCategory(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrHasDependents
	}
	return uc.repo.Delete(id)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Status:      c.Status,
		ImageURL:    c.ImageURL,
		Tallas:      c.Tallas,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
