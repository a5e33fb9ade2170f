package usecase

import (
	"context"
	"iter"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// CategoryUseCase casos de uso de lectura, alta, reemplazo y parcheo de categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// List devuelve todas las categorías en el orden que define el almacén.
func (uc *CategoryUseCase) List(ctx context.Context) iter.Seq2[*dto.CategoryResponse, error] {
	return mapSeq(uc.repo.FindAll(ctx), toCategoryResponse)
}

// GetByID obtiene una categoría por ID. Devuelve (nil, nil) si no existe.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Create persiste cada categoría de la entrada con un ID asignado por el almacén.
// El ID enviado por el cliente se descarta.
func (uc *CategoryUseCase) Create(ctx context.Context, in iter.Seq2[dto.CategoryRequest, error]) iter.Seq2[*dto.CategoryResponse, error] {
	docs := mapSeq(in, func(r dto.CategoryRequest) *entity.Category {
		c := toCategory(r)
		c.ID = ""
		return &c
	})
	return mapSeq(uc.repo.SaveAll(ctx, docs), toCategoryResponse)
}

// Update reemplaza la categoría con el ID de la ruta (upsert, exista o no).
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	category := toCategory(in)
	category.ID = id
	saved, err := uc.repo.Save(ctx, &category)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(saved), nil
}

// Patch aplica los campos presentes en la entrada sobre la categoría almacenada.
// Devuelve (nil, nil) sin escribir si la categoría no existe. La lectura y la escritura
// no son atómicas: una escritura concurrente entre ambas se pierde.
func (uc *CategoryUseCase) Patch(ctx context.Context, id string, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	stored, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, nil
	}
	merged := stored.Merge(toCategory(in))
	saved, err := uc.repo.Save(ctx, &merged)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(saved), nil
}

func toCategory(in dto.CategoryRequest) entity.Category {
	return entity.Category{
		ID:          in.ID,
		Description: in.Description,
	}
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Description: c.Description,
	}
}
