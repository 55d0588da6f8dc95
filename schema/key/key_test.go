package key_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/graphocean/schema/key"
)

func TestLiteral(t *testing.T) {
	tests := []struct {
		policy key.Policy
		id     string
		want   string
	}{
		{key.StringKey, "p1", `"p1"`},
		{key.StringKey, `say "hi"`, `"say \"hi\""`},
		{key.Hash, "p1", `hash("p1")`},
		{key.Int64, "42", "42"},
	}
	for _, tt := range tests {
		t.Run(tt.policy.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, key.Literal(tt.policy, tt.id))
			// Deterministic policies return the same literal every time.
			assert.Equal(t, key.Literal(tt.policy, tt.id), key.Literal(tt.policy, tt.id))
		})
	}
}

func TestLiteralUUID(t *testing.T) {
	a := key.Literal(key.UUID, "ignored")
	b := key.Literal(key.UUID, "ignored")
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 38)
	assert.Equal(t, byte('"'), a[0])
}

func TestLiterals(t *testing.T) {
	assert.Equal(t, []string{"1", "2"}, key.Literals(key.Int64, []string{"1", "2"}))
	assert.Empty(t, key.Literals(key.Hash, nil))
}

func TestReversible(t *testing.T) {
	assert.True(t, key.StringKey.Reversible())
	assert.True(t, key.Int64.Reversible())
	assert.False(t, key.Hash.Reversible())
	assert.False(t, key.UUID.Reversible())
}

func TestParse(t *testing.T) {
	for _, p := range []key.Policy{key.StringKey, key.Hash, key.UUID, key.Int64} {
		got, err := key.Parse(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	_, err := key.Parse("md5")
	require.Error(t, err)
	assert.Equal(t, "Policy(9)", key.Policy(9).String())
}
