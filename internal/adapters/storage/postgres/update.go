package postgres

import (
	"fmt"
	"strings"
	"time"

	"cattery-breeding/internal/adapters/storage/schema"
)

// updateSQL arma un UPDATE parcial: $1 es el id, luego las columnas del patch
// y al final updated_at.
func updateSQL(table string, as []schema.Assignment, id string, updatedAt time.Time) (string, []any) {
	parts := make([]string, 0, len(as)+1)
	args := make([]any, 0, len(as)+2)
	args = append(args, id)

	for _, a := range as {
		args = append(args, a.Value)
		parts = append(parts, fmt.Sprintf("%s = $%d", a.Column, len(args)))
	}
	args = append(args, updatedAt)
	parts = append(parts, fmt.Sprintf("updated_at = $%d", len(args)))

	q := fmt.Sprintf("UPDATE %s SET %s WHERE id = $1", table, strings.Join(parts, ", "))
	return q, args
}
