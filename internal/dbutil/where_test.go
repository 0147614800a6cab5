package dbutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildWhereClause(t *testing.T) {
	clause, values := BuildWhereClause(map[string]any{
		"a": 1,
		"b": nil,
		"c": "x",
	}, 1)

	// nil entries are skipped entirely and numbering stays contiguous.
	assert.Equal(t, "WHERE a = $1 AND c = $2", clause)
	assert.Equal(t, []any{1, "x"}, values)
}

func TestBuildWhereClauseEmpty(t *testing.T) {
	clause, values := BuildWhereClause(map[string]any{}, 1)
	assert.Empty(t, clause)
	assert.Empty(t, values)

	clause, values = BuildWhereClause(map[string]any{"a": nil}, 1)
	assert.Empty(t, clause)
	assert.Empty(t, values)
}

func TestBuildWhereClauseStartIndex(t *testing.T) {
	clause, values := BuildWhereClause(map[string]any{
		"status":      "pending",
		"reporter_id": "u1",
	}, 3)

	assert.Equal(t, "WHERE reporter_id = $3 AND status = $4", clause)
	assert.Equal(t, []any{"u1", "pending"}, values)
}
