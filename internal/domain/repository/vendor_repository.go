package repository

import "github.com/jhoicas/Catalogo-api/internal/domain/entity"

// VendorRepository define el puerto de persistencia para Vendor (DIP).
type VendorRepository = DocumentRepository[entity.Vendor]
