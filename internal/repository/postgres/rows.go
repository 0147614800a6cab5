package postgres

import (
	"database/sql"
	"fmt"

	"github.com/aws11/account-api/internal/dbutil"
)

// dbutilWhere builds an equality predicate over conditions with placeholders
// numbered from $1.
func dbutilWhere(conditions map[string]any) (string, []any) {
	return dbutil.BuildWhereClause(conditions, 1)
}

// rowsToCamelMaps drains rows into maps keyed by camelCase field names.
// Column names arrive in the store's snake_case convention; the camelCase
// keys are the application-side naming contract.
func rowsToCamelMaps(rows *sql.Rows) ([]map[string]any, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("row columns: %w", err)
	}

	var out []map[string]any
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		m := make(map[string]any, len(cols))
		for i, c := range cols {
			v := vals[i]
			// Text columns come back as []byte from lib/pq; strings read better.
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			m[c] = v
		}
		out = append(out, dbutil.KeysToCamelCase(m))
	}
	return out, rows.Err()
}
