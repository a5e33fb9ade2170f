package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// pageSize número de documentos que FindAll trae por cada MGET.
const pageSize = 100

var (
	_ repository.CategoryRepository = (*Collection[entity.Category, *entity.Category])(nil)
	_ repository.VendorRepository   = (*Collection[entity.Vendor, *entity.Vendor])(nil)
)

// Collection implementación genérica del puerto DocumentRepository sobre Redis.
//
// Cada documento es un JSON en {prefix}:{collection}:doc:{id}; el orden de inserción se guarda en
// el sorted set {prefix}:{collection}:ids con la hora de alta como score.
type Collection[T any, P repository.DocumentPtr[T]] struct {
	client goredis.UniversalClient
	prefix string
}

// NewCollection construye el adaptador para la colección indicada.
func NewCollection[T any, P repository.DocumentPtr[T]](client goredis.UniversalClient, keyPrefix, collection string) *Collection[T, P] {
	return &Collection[T, P]{client: client, prefix: keyPrefix + ":" + collection}
}

// FindAll pagina el índice y trae los documentos por lotes según se consumen.
func (c *Collection[T, P]) FindAll(ctx context.Context) iter.Seq2[*T, error] {
	return func(yield func(*T, error) bool) {
		for start := int64(0); ; start += pageSize {
			ids, err := c.client.ZRange(ctx, c.indexKey(), start, start+pageSize-1).Result()
			if err != nil {
				yield(nil, fmt.Errorf("list %s: %w", c.prefix, err))
				return
			}
			if len(ids) == 0 {
				return
			}
			keys := make([]string, len(ids))
			for i, id := range ids {
				keys[i] = c.docKey(id)
			}
			values, err := c.client.MGet(ctx, keys...).Result()
			if err != nil {
				yield(nil, fmt.Errorf("list %s: %w", c.prefix, err))
				return
			}
			for i, val := range values {
				data, err := redisValueToBytes(val, keys[i])
				if err != nil {
					yield(nil, err)
					return
				}
				if data == nil {
					continue // borrado entre ZRANGE y MGET
				}
				doc, err := c.decode(ids[i], data)
				if !yield(doc, err) || err != nil {
					return
				}
			}
			if len(ids) < pageSize {
				return
			}
		}
	}
}

// FindByID obtiene un documento por ID; (nil, nil) si no existe.
func (c *Collection[T, P]) FindByID(ctx context.Context, id string) (*T, error) {
	data, err := c.client.Get(ctx, c.docKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", c.prefix, err)
	}
	return c.decode(id, data)
}

// Save escribe el documento y su entrada en el índice en una sola transacción MULTI/EXEC.
func (c *Collection[T, P]) Save(ctx context.Context, doc *T) (*T, error) {
	stored := *doc
	if P(&stored).DocumentID() == "" {
		P(&stored).SetDocumentID(uuid.NewString())
	}
	id := P(&stored).DocumentID()
	data, err := json.Marshal(&stored)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", c.prefix, err)
	}
	_, err = c.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Set(ctx, c.docKey(id), data, 0)
		pipe.ZAddNX(ctx, c.indexKey(), goredis.Z{Score: float64(time.Now().UnixMicro()), Member: id})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("save %s: %w", c.prefix, err)
	}
	return &stored, nil
}

// SaveAll persiste los documentos uno a uno según se consumen.
func (c *Collection[T, P]) SaveAll(ctx context.Context, docs iter.Seq2[*T, error]) iter.Seq2[*T, error] {
	return repository.SaveEach(ctx, docs, c.Save)
}

// Count devuelve el número de documentos indexados.
func (c *Collection[T, P]) Count(ctx context.Context) (int64, error) {
	n, err := c.client.ZCard(ctx, c.indexKey()).Result()
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", c.prefix, err)
	}
	return n, nil
}

func (c *Collection[T, P]) decode(id string, data []byte) (*T, error) {
	var doc T
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode %s %s: %w", c.prefix, id, err)
	}
	P(&doc).SetDocumentID(id)
	return &doc, nil
}

// docKey devuelve la clave Redis de un documento.
func (c *Collection[T, P]) docKey(id string) string {
	return c.prefix + ":doc:" + id
}

// indexKey devuelve la clave del sorted set con los IDs de la colección.
func (c *Collection[T, P]) indexKey() string {
	return c.prefix + ":ids"
}

// redisValueToBytes convierte un valor de MGET en []byte; nil si la clave no existe.
func redisValueToBytes(val interface{}, key string) ([]byte, error) {
	switch v := val.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("tipo inesperado en Redis para %s: %T", key, val)
	}
}
