package seed

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// DemoCategories categorías de ejemplo, en orden de inserción.
var DemoCategories = []entity.Category{
	{Description: "Exotic"},
	{Description: "Nuts"},
	{Description: "Fruits"},
}

// DemoVendors proveedores de ejemplo, en orden de inserción.
var DemoVendors = []entity.Vendor{
	{FirstName: "Jonh", LastName: "Kenedy"},
	{FirstName: "Amy", LastName: "Farrafauler"},
}

// Bootstrap siembra datos de demostración en las colecciones vacías. Se ejecuta una vez al
// arrancar, fuera del camino de las peticiones.
type Bootstrap struct {
	categories repository.CategoryRepository
	vendors    repository.VendorRepository
	log        *logger.Logger
}

// NewBootstrap construye el sembrador.
func NewBootstrap(categories repository.CategoryRepository, vendors repository.VendorRepository, log *logger.Logger) *Bootstrap {
	return &Bootstrap{categories: categories, vendors: vendors, log: log}
}

// Run siembra ambas colecciones en paralelo. Una colección con documentos no se toca.
func (b *Bootstrap) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return seedCollection(ctx, b.log, "categories", b.categories, DemoCategories)
	})
	g.Go(func() error {
		return seedCollection(ctx, b.log, "vendors", b.vendors, DemoVendors)
	})
	return g.Wait()
}

func seedCollection[T any](ctx context.Context, log *logger.Logger, name string, repo repository.DocumentRepository[T], docs []T) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed %s: %w", name, err)
	}
	if count != 0 {
		log.Debug().Str("collection", name).Int64("count", count).Msg("colección con datos, sin sembrar")
		return nil
	}
	for i := range docs {
		doc := docs[i]
		if _, err := repo.Save(ctx, &doc); err != nil {
			return fmt.Errorf("seed %s: %w", name, err)
		}
	}
	log.Info().Str("collection", name).Int("inserted", len(docs)).Msg("datos de demostración insertados")
	return nil
}
