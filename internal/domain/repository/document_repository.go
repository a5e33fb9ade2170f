package repository

import (
	"context"
	"iter"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// DocumentRepository define el puerto de persistencia de una colección del almacén documental (DIP).
//
// FindByID devuelve (nil, nil) cuando el documento no existe; cualquier error es un fallo del almacén.
// Save es un upsert por ID y asigna un ID nuevo cuando el documento no lo trae.
// FindAll y SaveAll son secuencias perezosas de una sola pasada: se detienen en el primer error.
type DocumentRepository[T any] interface {
	FindAll(ctx context.Context) iter.Seq2[*T, error]
	FindByID(ctx context.Context, id string) (*T, error)
	Save(ctx context.Context, doc *T) (*T, error)
	SaveAll(ctx context.Context, docs iter.Seq2[*T, error]) iter.Seq2[*T, error]
	Count(ctx context.Context) (int64, error)
}

// DocumentPtr restringe los tipos que los adaptadores genéricos pueden almacenar.
type DocumentPtr[T any] interface {
	*T
	entity.Document
}

// SaveEach implementa SaveAll sobre un Save unitario: consume docs de uno en uno,
// persiste cada documento y entrega la copia persistida. Sin entradas no hay escrituras.
func SaveEach[T any](ctx context.Context, docs iter.Seq2[*T, error], save func(context.Context, *T) (*T, error)) iter.Seq2[*T, error] {
	return func(yield func(*T, error) bool) {
		for doc, err := range docs {
			if err != nil {
				yield(nil, err)
				return
			}
			saved, err := save(ctx, doc)
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(saved, nil) {
				return
			}
		}
	}
}
