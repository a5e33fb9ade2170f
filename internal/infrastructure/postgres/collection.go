package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var (
	_ repository.CategoryRepository = (*Collection[entity.Category, *entity.Category])(nil)
	_ repository.VendorRepository   = (*Collection[entity.Vendor, *entity.Vendor])(nil)
)

// Collection implementación genérica del puerto DocumentRepository sobre una tabla
// (id TEXT, document JSONB). El documento se guarda completo en la columna JSONB.
type Collection[T any, P repository.DocumentPtr[T]] struct {
	pool  *pgxpool.Pool
	table string
	ident string
}

// NewCollection construye el adaptador para la tabla indicada.
func NewCollection[T any, P repository.DocumentPtr[T]](pool *pgxpool.Pool, table string) *Collection[T, P] {
	return &Collection[T, P]{
		pool:  pool,
		table: table,
		ident: pgx.Identifier{table}.Sanitize(),
	}
}

// FindAll recorre la tabla por orden de inserción; las filas se leen según se consumen.
func (c *Collection[T, P]) FindAll(ctx context.Context) iter.Seq2[*T, error] {
	return func(yield func(*T, error) bool) {
		query := `SELECT id, document FROM ` + c.ident + ` ORDER BY created_at, id`
		rows, err := c.pool.Query(ctx, query)
		if err != nil {
			yield(nil, wrapErr("list", c.table, err))
			return
		}
		defer rows.Close()
		for rows.Next() {
			var (
				id  string
				raw []byte
			)
			if err := rows.Scan(&id, &raw); err != nil {
				yield(nil, wrapErr("scan", c.table, err))
				return
			}
			doc, err := c.decode(id, raw)
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(doc, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(nil, wrapErr("list", c.table, err))
		}
	}
}

// FindByID obtiene un documento por ID; (nil, nil) si no existe.
func (c *Collection[T, P]) FindByID(ctx context.Context, id string) (*T, error) {
	query := `SELECT document FROM ` + c.ident + ` WHERE id = $1`
	var raw []byte
	err := c.pool.QueryRow(ctx, query, id).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get", c.table, err)
	}
	return c.decode(id, raw)
}

// Save inserta o reemplaza el documento (upsert por ID) y devuelve lo persistido.
func (c *Collection[T, P]) Save(ctx context.Context, doc *T) (*T, error) {
	stored := *doc
	if P(&stored).DocumentID() == "" {
		P(&stored).SetDocumentID(uuid.NewString())
	}
	body, err := json.Marshal(&stored)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", c.table, err)
	}
	query := `
		INSERT INTO ` + c.ident + ` (id, document, created_at, updated_at)
		VALUES ($1, $2, now(), now())
		ON CONFLICT (id) DO UPDATE SET document = EXCLUDED.document, updated_at = now()
		RETURNING id, document`
	var (
		id  string
		raw []byte
	)
	if err := c.pool.QueryRow(ctx, query, P(&stored).DocumentID(), body).Scan(&id, &raw); err != nil {
		return nil, wrapErr("save", c.table, err)
	}
	return c.decode(id, raw)
}

// SaveAll persiste los documentos uno a uno según se consumen.
func (c *Collection[T, P]) SaveAll(ctx context.Context, docs iter.Seq2[*T, error]) iter.Seq2[*T, error] {
	return repository.SaveEach(ctx, docs, c.Save)
}

// Count devuelve el número de documentos de la tabla.
func (c *Collection[T, P]) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := c.pool.QueryRow(ctx, `SELECT count(*) FROM `+c.ident).Scan(&n); err != nil {
		return 0, wrapErr("count", c.table, err)
	}
	return n, nil
}

func (c *Collection[T, P]) decode(id string, raw []byte) (*T, error) {
	var doc T
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode %s %s: %w", c.table, id, err)
	}
	P(&doc).SetDocumentID(id)
	return &doc, nil
}
