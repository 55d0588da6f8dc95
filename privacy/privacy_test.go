package privacy_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/graphocean/privacy"
)

var (
	query  = privacy.Operation{Op: privacy.OpQuery, Space: "nba", Statement: "FETCH PROP ON player \"p1\" YIELD player.name AS name"}
	write  = privacy.Operation{Op: privacy.OpMutation, Space: "nba", Statement: "UPSERT VERTEX ON player \"p1\" SET name=\"Tim\""}
	create = privacy.Operation{Op: privacy.OpSchemaChange, Space: "nba", Statement: "DROP SPACE IF EXISTS `nba`"}
)

func TestDecisionErrors(t *testing.T) {
	tests := []struct {
		name     string
		decision error
		want     error
	}{
		{"allow", privacy.Allow, privacy.Allow},
		{"deny", privacy.Deny, privacy.Deny},
		{"skip", privacy.Skip, privacy.Skip},
		{"allowf", privacy.Allowf("viewer %s", "u1"), privacy.Allow},
		{"denyf", privacy.Denyf("space %q", "nba"), privacy.Deny},
		{"skipf", privacy.Skipf("no opinion"), privacy.Skip},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.decision, tt.want)
		})
	}
	assert.Equal(t, `space "nba": graphocean/privacy: deny rule`, privacy.Denyf("space %q", "nba").Error())
}

func TestOp(t *testing.T) {
	assert.True(t, privacy.OpQuery.Is(privacy.OpQuery|privacy.OpMutation))
	assert.False(t, privacy.OpSchemaChange.Is(privacy.OpQuery|privacy.OpMutation))
	assert.Equal(t, "query", privacy.OpQuery.String())
	assert.Equal(t, "mutation|schema change", (privacy.OpMutation | privacy.OpSchemaChange).String())
	assert.Equal(t, "Op(0)", privacy.Op(0).String())
}

func TestPolicyEval(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty", func(t *testing.T) {
		assert.NoError(t, privacy.Policy{}.Eval(ctx, write))
	})

	t.Run("FirstDecisionWins", func(t *testing.T) {
		p := privacy.Policy{
			privacy.ContextRule(func(context.Context) error { return nil }),
			privacy.AlwaysAllowRule(),
			privacy.AlwaysDenyRule(),
		}
		assert.NoError(t, p.Eval(ctx, write))

		p = privacy.Policy{privacy.AlwaysDenyRule(), privacy.AlwaysAllowRule()}
		assert.ErrorIs(t, p.Eval(ctx, write), privacy.Deny)
	})

	t.Run("OtherErrors", func(t *testing.T) {
		boom := errors.New("boom")
		p := privacy.Policy{
			privacy.RuleFunc(func(context.Context, privacy.Operation) error { return boom }),
			privacy.AlwaysAllowRule(),
		}
		assert.ErrorIs(t, p.Eval(ctx, query), boom)
	})

	t.Run("OnOperation", func(t *testing.T) {
		p := privacy.Policy{
			privacy.OnOperation(privacy.AlwaysAllowRule(), privacy.OpQuery),
			privacy.AlwaysDenyRule(),
		}
		assert.NoError(t, p.Eval(ctx, query))
		assert.ErrorIs(t, p.Eval(ctx, write), privacy.Deny)
	})

	t.Run("OnSpace", func(t *testing.T) {
		p := privacy.Policy{privacy.OnSpace(privacy.AlwaysDenyRule(), "prod")}
		assert.NoError(t, p.Eval(ctx, write))
		assert.ErrorIs(t, p.Eval(ctx, privacy.Operation{Op: privacy.OpMutation, Space: "prod"}), privacy.Deny)
	})

	t.Run("DenyOperationRule", func(t *testing.T) {
		p := privacy.Policy{privacy.DenyOperationRule(privacy.OpSchemaChange)}
		assert.NoError(t, p.Eval(ctx, write))
		err := p.Eval(ctx, create)
		require.ErrorIs(t, err, privacy.Deny)
		assert.Contains(t, err.Error(), `schema change on space "nba"`)
	})
}

func TestDecisionContext(t *testing.T) {
	p := privacy.Policy{privacy.AlwaysDenyRule()}

	ctx := privacy.DecisionContext(context.Background(), privacy.Allow)
	assert.NoError(t, p.Eval(ctx, write))

	ctx = privacy.DecisionContext(context.Background(), privacy.Skip)
	_, ok := privacy.DecisionFromContext(ctx)
	assert.False(t, ok)
	assert.ErrorIs(t, p.Eval(ctx, write), privacy.Deny)

	ctx = privacy.DecisionContext(context.Background(), privacy.Denyf("maintenance"))
	open := privacy.Policy{privacy.AlwaysAllowRule()}
	assert.ErrorIs(t, open.Eval(ctx, query), privacy.Deny)
}

func TestViewerRules(t *testing.T) {
	p := privacy.Policy{
		privacy.OnOperation(privacy.AlwaysAllowRule(), privacy.OpQuery),
		privacy.DenyIfNoViewer(),
		privacy.HasAnyRole("writer", "admin"),
		privacy.AlwaysDenyRule(),
	}
	anonymous := context.Background()
	reader := privacy.WithViewer(anonymous, &privacy.SimpleViewer{UserID: "u1", Roles: []string{"reader"}})
	writer := privacy.WithViewer(anonymous, &privacy.SimpleViewer{UserID: "u2", Roles: []string{"writer"}})

	assert.NoError(t, p.Eval(anonymous, query))
	assert.ErrorContains(t, p.Eval(anonymous, write), "viewer required")
	assert.ErrorIs(t, p.Eval(reader, write), privacy.Deny)
	assert.NoError(t, p.Eval(writer, write))

	assert.Nil(t, privacy.ViewerFromContext(anonymous))
	assert.Equal(t, "u2", privacy.ViewerFromContext(writer).GetID())

	admin := privacy.Policy{privacy.HasRole("admin"), privacy.AlwaysDenyRule()}
	assert.ErrorIs(t, admin.Eval(writer, create), privacy.Deny)
}
