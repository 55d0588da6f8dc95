// Package privacy decides whether a statement may run before it reaches
// the graph store.
//
// A Policy is an ordered list of rules. Each rule sees the Operation about
// to run (its kind, space and statement) and returns a decision:
//
//   - Allow grants access and stops the evaluation.
//   - Deny rejects the operation and stops the evaluation.
//   - Skip, or nil, defers to the next rule.
//
// An operation no rule decides on is allowed. End a policy with
// AlwaysDenyRule to deny by default:
//
//	policy := privacy.Policy{
//		privacy.OnOperation(privacy.AlwaysAllowRule(), privacy.OpQuery),
//		privacy.DenyIfNoViewer(),
//		privacy.HasRole("writer"),
//		privacy.AlwaysDenyRule(),
//	}
//	m, err := mapper.New(pool, cfg, mapper.WithPolicy(policy))
//
// Any error other than the three decisions is returned as is and rejects
// the operation.
//
// # Viewers
//
// The caller identity travels in the context:
//
//	ctx = privacy.WithViewer(ctx, &privacy.SimpleViewer{UserID: "u1", Roles: []string{"writer"}})
//
// # Decision Override
//
// DecisionContext attaches a decision that replaces the evaluation for
// every operation run with the context, e.g. to let a migration bypass
// the policy:
//
//	ctx = privacy.DecisionContext(ctx, privacy.Allow)
package privacy
