package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/nublack/nublack-api/internal/application/dto"
	"github.com/nublack/nublack-api/internal/domain"
	"github.com/nublack/nublack-api/internal/domain/entity"
	"github.com/nublack/nublack-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos del catálogo.
type ProductUseCase struct {
	repo       repository.ProductRepository
	categories repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categories repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categories: categories}
}

// Create crea un producto. El nombre es único sin distinguir mayúsculas entre
// activos e inactivos; la categoría debe existir y estar Activo; si la
// categoría define tallas, al menos una debe traer stock positivo y no se
// admiten tallas fuera de las definidas.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	category, err := uc.categories.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if category.Status != entity.CategoryStatusActivo {
		return nil, domain.ErrInvalidInput
	}
	if err := validarStock(category, in.StockPorTalla); err != nil {
		return nil, err
	}
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		OriginalPrice: in.OriginalPrice,
		CategoryID:    in.CategoryID,
		Genero:        in.Genero,
		StockPorTalla: in.StockPorTalla,
		Images:        in.Images,
		Status:        entity.ProductStatusActivo,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza los campos enviados, con las mismas reglas de unicidad,
// categoría y tallas que Create.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil && *in.Name != product.Name {
		existing, err := uc.repo.GetByName(*in.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, domain.ErrDuplicate
		}
		product.Name = *in.Name
	}
	if in.CategoryID != nil {
		category, err := uc.categories.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
		// El stock vigente debe cumplir las tallas de la nueva categoría;
		// si la petición también trae stock, se valida más abajo.
		if in.StockPorTalla == nil {
			if err := validarStock(category, product.StockPorTalla); err != nil {
				return nil, err
			}
		}
		product.CategoryID = *in.CategoryID
	}
	if in.StockPorTalla != nil {
		category, err := uc.categories.GetByID(product.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
		if err := validarStock(category, *in.StockPorTalla); err != nil {
			return nil, err
		}
		product.StockPorTalla = *in.StockPorTalla
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.OriginalPrice != nil {
		product.OriginalPrice = *in.OriginalPrice
	}
	if in.Genero != nil {
		product.Genero = *in.Genero
	}
	if in.Images != nil {
		product.Images = *in.Images
	}
	if in.Status != nil {
		product.Status = *in.Status
	}
	if in.Rating != nil {
		product.Rating = *in.Rating
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con filtros y paginación.
func (uc *ProductUseCase) List(filter repository.ProductFilter, limit, offset int) (*dto.ProductListResponse, error) {
	list, total, err := uc.repo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// validarStock aplica las reglas de tallas de la categoría al mapa de stock.
func validarStock(category *entity.Category, stock map[string]int) error {
	for talla, n := range stock {
		if n < 0 {
			return domain.ErrInvalidInput
		}
		if len(category.Tallas) > 0 && !category.DefinesTalla(talla) {
			return domain.ErrInvalidInput
		}
	}
	if len(category.Tallas) > 0 {
		alguna := false
		for _, n := range stock {
			if n > 0 {
				alguna = true
				break
			}
		}
		if !alguna {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		CategoryID:    p.CategoryID,
		Genero:        p.Genero,
		StockPorTalla: p.StockPorTalla,
		Images:        p.Images,
		Status:        p.Status,
		Rating:        p.Rating,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
