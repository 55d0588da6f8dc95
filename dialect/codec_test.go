package dialect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/graphocean/dialect"
)

func TestResultSetCodec(t *testing.T) {
	node := dialect.Node{
		ID:   dialect.ValueOf("p1"),
		Tags: []string{"player"},
		Properties: map[string]map[string]dialect.Value{
			"player": {"name": dialect.ValueOf("Tim"), "age": dialect.ValueOf(42)},
		},
	}
	rel := dialect.Relationship{
		Src:        dialect.ValueOf("p1"),
		Dst:        dialect.ValueOf("p2"),
		Name:       "follow",
		Ranking:    2,
		Properties: map[string]dialect.Value{"degree": dialect.ValueOf(90)},
	}
	rs := dialect.NewResultSet(
		[]string{"i", "b", "f", "s", "d", "dt", "t", "n", "l", "node", "rel", "path"},
		[]any{
			int64(-7), true, 2.5, "姚明",
			dialect.Date{Year: 2024, Month: 1, Day: 2},
			dialect.DateTime{Year: 2024, Month: 1, Day: 2, Hour: 3, Microsecond: 4},
			dialect.Time{Hour: 5},
			nil,
			[]dialect.Value{dialect.ValueOf(1), dialect.ValueOf("x")},
			node, rel,
			dialect.Path{Nodes: []dialect.Node{node}, Relationships: []dialect.Relationship{rel}},
		},
	)

	b, err := dialect.EncodeResultSet(rs)
	require.NoError(t, err)
	got, err := dialect.DecodeResultSet(b)
	require.NoError(t, err)

	require.Equal(t, rs.Columns, got.Columns)
	require.Len(t, got.Rows, 1)
	for i, want := range rs.Rows[0] {
		assert.Equal(t, want.Kind(), got.Rows[0][i].Kind(), rs.Columns[i])
		assert.Equal(t, want.String(), got.Rows[0][i].String(), rs.Columns[i])
	}

	n, err := got.Rows[0][9].AsNode()
	require.NoError(t, err)
	age, err := n.Props("player")["age"].AsInt()
	require.NoError(t, err)
	assert.Equal(t, int64(42), age)

	r, err := got.Rows[0][10].AsRelationship()
	require.NoError(t, err)
	assert.Equal(t, int64(2), r.Ranking)

	_, err = dialect.DecodeResultSet([]byte{0xc1})
	require.Error(t, err)
}
