// Package mapper runs typed entity operations against a graph space.
//
// A Mapper owns a session pool and a configuration. Writes compile
// entities to upsert statements and send them in windows of
// Config.BatchSize statements, one session per window:
//
//	m, err := mapper.New(pool, cfg)
//	if err != nil {
//		return err
//	}
//	if err := mapper.SaveVertices(ctx, m, players...); err != nil {
//		return err
//	}
//	got, err := mapper.FetchVertices[Player](ctx, m, "p1", "p2")
//
// Operations on an entity type are package functions taking the Mapper,
// since methods cannot carry type parameters.
package mapper
