package usecase

import (
	"context"
	"iter"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// VendorUseCase casos de uso de lectura, alta, reemplazo y parcheo de proveedores.
type VendorUseCase struct {
	repo repository.VendorRepository
}

// NewVendorUseCase construye el caso de uso.
func NewVendorUseCase(repo repository.VendorRepository) *VendorUseCase {
	return &VendorUseCase{repo: repo}
}

// List devuelve todos los proveedores.
func (uc *VendorUseCase) List(ctx context.Context) iter.Seq2[*dto.VendorResponse, error] {
	return mapSeq(uc.repo.FindAll(ctx), toVendorResponse)
}

// GetByID obtiene un proveedor por ID. Devuelve (nil, nil) si no existe.
func (uc *VendorUseCase) GetByID(ctx context.Context, id string) (*dto.VendorResponse, error) {
	vendor, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toVendorResponse(vendor), nil
}

// Create persiste cada proveedor de la entrada ignorando el ID del cliente.
func (uc *VendorUseCase) Create(ctx context.Context, in iter.Seq2[dto.VendorRequest, error]) iter.Seq2[*dto.VendorResponse, error] {
	docs := mapSeq(in, func(r dto.VendorRequest) *entity.Vendor {
		v := toVendor(r)
		v.ID = ""
		return &v
	})
	return mapSeq(uc.repo.SaveAll(ctx, docs), toVendorResponse)
}

// Update reemplaza el proveedor con el ID de la ruta (upsert).
func (uc *VendorUseCase) Update(ctx context.Context, id string, in dto.VendorRequest) (*dto.VendorResponse, error) {
	vendor := toVendor(in)
	vendor.ID = id
	saved, err := uc.repo.Save(ctx, &vendor)
	if err != nil {
		return nil, err
	}
	return toVendorResponse(saved), nil
}

// Patch aplica los campos presentes sobre el proveedor almacenado; (nil, nil) si no existe.
func (uc *VendorUseCase) Patch(ctx context.Context, id string, in dto.VendorRequest) (*dto.VendorResponse, error) {
	stored, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, nil
	}
	merged := stored.Merge(toVendor(in))
	saved, err := uc.repo.Save(ctx, &merged)
	if err != nil {
		return nil, err
	}
	return toVendorResponse(saved), nil
}

func toVendor(in dto.VendorRequest) entity.Vendor {
	return entity.Vendor{
		ID:        in.ID,
		FirstName: in.FirstName,
		LastName:  in.LastName,
	}
}

func toVendorResponse(v *entity.Vendor) *dto.VendorResponse {
	if v == nil {
		return nil
	}
	return &dto.VendorResponse{
		ID:        v.ID,
		FirstName: v.FirstName,
		LastName:  v.LastName,
	}
}
