package memory

import (
	"context"
	"fmt"
	"iter"

	"github.com/google/uuid"

	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// Collection adaptador genérico del puerto DocumentRepository sobre una tabla de DB.
// Guarda y devuelve copias: quien llama nunca comparte memoria con el documento almacenado.
type Collection[T any, P repository.DocumentPtr[T]] struct {
	db    *DB
	table string
}

// NewCollection construye el adaptador para la tabla indicada (debe existir en el esquema).
func NewCollection[T any, P repository.DocumentPtr[T]](db *DB, table string) *Collection[T, P] {
	return &Collection[T, P]{db: db, table: table}
}

// FindAll recorre la tabla en orden de ID sobre una instantánea de lectura.
func (c *Collection[T, P]) FindAll(ctx context.Context) iter.Seq2[*T, error] {
	return func(yield func(*T, error) bool) {
		txn := c.db.Txn(false)
		defer txn.Abort()
		it, err := txn.Get(c.table, PK)
		if err != nil {
			yield(nil, fmt.Errorf("list %s: %w", c.table, err))
			return
		}
		for raw := it.Next(); raw != nil; raw = it.Next() {
			if err := ctx.Err(); err != nil {
				yield(nil, err)
				return
			}
			doc := *raw.(*T)
			if !yield(&doc, nil) {
				return
			}
		}
	}
}

// FindByID obtiene un documento por ID; (nil, nil) si no existe.
func (c *Collection[T, P]) FindByID(ctx context.Context, id string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	txn := c.db.Txn(false)
	defer txn.Abort()
	raw, err := txn.First(c.table, PK, id)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", c.table, err)
	}
	if raw == nil {
		return nil, nil
	}
	doc := *raw.(*T)
	return &doc, nil
}

// Save inserta o reemplaza el documento; asigna un UUID si no trae ID.
func (c *Collection[T, P]) Save(ctx context.Context, doc *T) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	stored := *doc
	if P(&stored).DocumentID() == "" {
		P(&stored).SetDocumentID(uuid.NewString())
	}
	txn := c.db.Txn(true)
	if err := txn.Insert(c.table, &stored); err != nil {
		txn.Abort()
		return nil, fmt.Errorf("save %s: %w", c.table, err)
	}
	txn.Commit()
	out := stored
	return &out, nil
}

// SaveAll persiste los documentos uno a uno según se consumen.
func (c *Collection[T, P]) SaveAll(ctx context.Context, docs iter.Seq2[*T, error]) iter.Seq2[*T, error] {
	return repository.SaveEach(ctx, docs, c.Save)
}

// Count devuelve el número de documentos de la tabla.
func (c *Collection[T, P]) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	txn := c.db.Txn(false)
	defer txn.Abort()
	it, err := txn.Get(c.table, PK)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", c.table, err)
	}
	var n int64
	for raw := it.Next(); raw != nil; raw = it.Next() {
		n++
	}
	return n, nil
}
