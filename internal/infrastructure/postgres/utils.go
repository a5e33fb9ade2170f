package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUndefinedTable verifica si un error es por tabla inexistente (42P01).
func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "42P01" // undefined_table
	}
	return false
}

// wrapErr añade la operación y, si falta la tabla, una pista para ejecutar las migraciones.
func wrapErr(op, table string, err error) error {
	if isUndefinedTable(err) {
		return fmt.Errorf("%s %s: tabla inexistente, ejecute las migraciones: %w", op, table, err)
	}
	return fmt.Errorf("%s %s: %w", op, table, err)
}
