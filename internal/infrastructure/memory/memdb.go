package memory

import (
	"fmt"

	hcmemdb "github.com/hashicorp/go-memdb"
)

// PK nombre del índice primario de cada tabla.
const PK = "id"

// DB almacén documental en memoria sobre go-memdb: una tabla por colección, indexada por el
// campo ID de la entidad. Las lecturas trabajan sobre instantáneas inmutables.
type DB struct {
	*hcmemdb.MemDB
}

// NewDB crea la base con una tabla por cada colección indicada.
func NewDB(collections ...string) (*DB, error) {
	tables := make(map[string]*hcmemdb.TableSchema, len(collections))
	for _, name := range collections {
		tables[name] = &hcmemdb.TableSchema{
			Name: name,
			Indexes: map[string]*hcmemdb.IndexSchema{
				PK: {
					Name:    PK,
					Unique:  true,
					Indexer: &hcmemdb.StringFieldIndex{Field: "ID"},
				},
			},
		}
	}
	db, err := hcmemdb.NewMemDB(&hcmemdb.DBSchema{Tables: tables})
	if err != nil {
		return nil, fmt.Errorf("crear memdb: %w", err)
	}
	return &DB{MemDB: db}, nil
}
