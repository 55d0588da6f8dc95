package privacy

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Policy decisions. Rules return them, possibly wrapped; check them with
// errors.Is.
var (
	// Allow ends the evaluation and lets the operation run.
	Allow = errors.New("graphocean/privacy: allow rule")

	// Deny ends the evaluation and rejects the operation.
	Deny = errors.New("graphocean/privacy: deny rule")

	// Skip defers to the next rule.
	Skip = errors.New("graphocean/privacy: skip rule")
)

// Allowf returns a formatted wrapped Allow decision.
func Allowf(format string, a ...any) error {
	return fmt.Errorf(format+": %w", append(a, Allow)...)
}

// Denyf returns a formatted wrapped Deny decision.
func Denyf(format string, a ...any) error {
	return fmt.Errorf(format+": %w", append(a, Deny)...)
}

// Skipf returns a formatted wrapped Skip decision.
func Skipf(format string, a ...any) error {
	return fmt.Errorf(format+": %w", append(a, Skip)...)
}

// Op is the kind of an operation. Kinds combine as a bit set.
type Op uint8

// Operation kinds.
const (
	OpQuery Op = 1 << iota
	OpMutation
	OpSchemaChange
)

// Is reports whether o is one of the kinds in ops.
func (o Op) Is(ops Op) bool { return o&ops != 0 }

func (o Op) String() string {
	var kinds []string
	for _, k := range []struct {
		op   Op
		name string
	}{
		{OpQuery, "query"},
		{OpMutation, "mutation"},
		{OpSchemaChange, "schema change"},
	} {
		if o.Is(k.op) {
			kinds = append(kinds, k.name)
		}
	}
	if len(kinds) == 0 {
		return fmt.Sprintf("Op(%d)", uint8(o))
	}
	return strings.Join(kinds, "|")
}

// Operation is a statement about to run.
type Operation struct {
	Op        Op
	Space     string
	Statement string
}

// Rule decides on an operation.
type Rule interface {
	Eval(context.Context, Operation) error
}

// RuleFunc adapts a function to a Rule.
type RuleFunc func(context.Context, Operation) error

// Eval returns f(ctx, o).
func (f RuleFunc) Eval(ctx context.Context, o Operation) error {
	return f(ctx, o)
}

// Policy evaluates its rules in order.
type Policy []Rule

// Eval returns nil when o may run, and the deciding error otherwise.
// A decision attached with DecisionContext replaces the evaluation.
func (p Policy) Eval(ctx context.Context, o Operation) error {
	if decision, ok := DecisionFromContext(ctx); ok {
		return decision
	}
	for _, rule := range p {
		switch decision := rule.Eval(ctx, o); {
		case decision == nil || errors.Is(decision, Skip):
		case errors.Is(decision, Allow):
			return nil
		default:
			return decision
		}
	}
	return nil
}

// AlwaysAllowRule returns a rule allowing every operation.
func AlwaysAllowRule() Rule {
	return fixedDecision{Allow}
}

// AlwaysDenyRule returns a rule denying every operation.
func AlwaysDenyRule() Rule {
	return fixedDecision{Deny}
}

// ContextRule returns a rule deciding from the context alone. A nil
// result is a Skip.
func ContextRule(eval func(context.Context) error) Rule {
	return RuleFunc(func(ctx context.Context, _ Operation) error {
		return eval(ctx)
	})
}

// OnOperation evaluates rule only for operations of the kinds in ops.
func OnOperation(rule Rule, ops Op) Rule {
	return RuleFunc(func(ctx context.Context, o Operation) error {
		if o.Op.Is(ops) {
			return rule.Eval(ctx, o)
		}
		return Skip
	})
}

// OnSpace evaluates rule only for operations on one of spaces.
func OnSpace(rule Rule, spaces ...string) Rule {
	return RuleFunc(func(ctx context.Context, o Operation) error {
		for _, s := range spaces {
			if s == o.Space {
				return rule.Eval(ctx, o)
			}
		}
		return Skip
	})
}

// DenyOperationRule returns a rule denying operations of the kinds in ops.
func DenyOperationRule(ops Op) Rule {
	return OnOperation(RuleFunc(func(_ context.Context, o Operation) error {
		return Denyf("graphocean/privacy: %s on space %q is not allowed", o.Op, o.Space)
	}), ops)
}

type decisionCtxKey struct{}

// DecisionContext returns a copy of parent carrying decision. Skip and nil
// leave parent unchanged.
func DecisionContext(parent context.Context, decision error) context.Context {
	if decision == nil || errors.Is(decision, Skip) {
		return parent
	}
	return context.WithValue(parent, decisionCtxKey{}, decision)
}

// DecisionFromContext returns the decision carried by ctx. An Allow
// decision is reported as nil.
func DecisionFromContext(ctx context.Context) (error, bool) {
	decision, ok := ctx.Value(decisionCtxKey{}).(error)
	if ok && errors.Is(decision, Allow) {
		decision = nil
	}
	return decision, ok
}

type fixedDecision struct {
	decision error
}

func (f fixedDecision) Eval(context.Context, Operation) error {
	return f.decision
}
