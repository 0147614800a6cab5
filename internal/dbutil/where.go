package dbutil

import (
	"fmt"
	"sort"
	"strings"
)

// BuildWhereClause builds an ANDed equality predicate over the non-nil
// entries of conditions, numbering placeholders sequentially from startIndex.
// Fields are emitted in sorted key order so the generated SQL is stable.
//
// Returns ("", nil) when no entries remain. Callers must treat the empty
// clause as "no filter", never as "match nothing".
func BuildWhereClause(conditions map[string]any, startIndex int) (string, []any) {
	keys := make([]string, 0, len(conditions))
	for k, v := range conditions {
		if v == nil {
			continue
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return "", nil
	}
	sort.Strings(keys)

	clauses := make([]string, len(keys))
	values := make([]any, len(keys))
	for i, k := range keys {
		clauses[i] = fmt.Sprintf("%s = $%d", k, startIndex+i)
		values[i] = conditions[k]
	}
	return "WHERE " + strings.Join(clauses, " AND "), values
}
