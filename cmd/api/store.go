package main

import (
	"context"
	"fmt"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/memory"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/redis"
	"github.com/jhoicas/Catalogo-api/pkg/config"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

const (
	categoriesCollection = "categories"
	vendorsCollection    = "vendors"
)

// stores agrupa los repositorios de las dos colecciones y el cierre del almacén.
type stores struct {
	categories repository.CategoryRepository
	vendors    repository.VendorRepository
	close      func()
}

// openStores abre el almacén documental elegido por STORE_DRIVER.
func openStores(ctx context.Context, cfg *config.Config, log *logger.Logger) (*stores, error) {
	switch cfg.Store.Driver {
	case config.StoreMemory:
		db, err := memory.NewDB(categoriesCollection, vendorsCollection)
		if err != nil {
			return nil, err
		}
		return &stores{
			categories: memory.NewCollection[entity.Category](db, categoriesCollection),
			vendors:    memory.NewCollection[entity.Vendor](db, vendorsCollection),
			close:      func() {},
		}, nil

	case config.StorePostgres:
		applied, err := postgres.RunMigrations(cfg.DB)
		if err != nil {
			return nil, err
		}
		if applied {
			log.Info().Msg("migraciones aplicadas")
		}
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		return &stores{
			categories: postgres.NewCollection[entity.Category](pool, categoriesCollection),
			vendors:    postgres.NewCollection[entity.Vendor](pool, vendorsCollection),
			close:      pool.Close,
		}, nil

	case config.StoreRedis:
		client, err := redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		return &stores{
			categories: redis.NewCollection[entity.Category](client, cfg.Redis.KeyPrefix, categoriesCollection),
			vendors:    redis.NewCollection[entity.Vendor](client, cfg.Redis.KeyPrefix, vendorsCollection),
			close: func() {
				if err := client.Close(); err != nil {
					log.Error().Err(err).Msg("cerrar cliente Redis")
				}
			},
		}, nil
	}
	return nil, fmt.Errorf("STORE_DRIVER no soportado: %q", cfg.Store.Driver)
}
