package mapper

import (
	"context"
	"errors"
	"log/slog"

	"github.com/syssam/graphocean"
	"github.com/syssam/graphocean/dialect"
	"github.com/syssam/graphocean/graph"
	"github.com/syssam/graphocean/privacy"
	"github.com/syssam/graphocean/schema"
)

// Mapper runs statements against the configured space.
type Mapper struct {
	pool     dialect.Pool
	cfg      Config
	charset  dialect.Charset
	log      *slog.Logger
	cache    graphocean.Cache
	registry *schema.Registry
	policy   privacy.Policy
}

// Option configures a Mapper.
type Option func(*Mapper)

// WithLogger sets the logger. Statements are logged at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(m *Mapper) {
		m.log = l
	}
}

// WithCache caches query results. Any write or schema change through the
// mapper drops the cached results of its space.
func WithCache(c graphocean.Cache) Option {
	return func(m *Mapper) {
		m.cache = c
	}
}

// WithRegistry sets the registry entity types are resolved from.
// It defaults to schema.Default.
func WithRegistry(r *schema.Registry) Option {
	return func(m *Mapper) {
		m.registry = r
	}
}

// WithPolicy checks every statement against p before it runs.
func WithPolicy(p privacy.Policy) Option {
	return func(m *Mapper) {
		m.policy = p
	}
}

// New returns a Mapper over pool.
func New(pool dialect.Pool, cfg Config, opts ...Option) (*Mapper, error) {
	if pool == nil {
		return nil, errors.New("mapper: nil pool")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	charset, err := dialect.LookupCharset(cfg.Charset)
	if err != nil {
		return nil, err
	}
	m := &Mapper{
		pool:     pool,
		cfg:      cfg,
		charset:  charset,
		log:      slog.Default(),
		registry: schema.Default,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Config returns the mapper settings.
func (m *Mapper) Config() Config { return m.cfg }

// Space returns the space statements run against.
func (m *Mapper) Space() string { return m.cfg.Space }

func (m *Mapper) scanOptions() []graph.ScanOption {
	return []graph.ScanOption{graph.WithCharset(m.charset)}
}

// withSession runs fn on a session acquired for it, released on return.
func (m *Mapper) withSession(ctx context.Context, fn func(dialect.Session) error) error {
	s, err := m.pool.Acquire(ctx)
	if err != nil {
		return executeError("", err)
	}
	defer s.Release()
	return fn(s)
}

// ExecuteUpdate runs a write statement in the configured space.
func (m *Mapper) ExecuteUpdate(ctx context.Context, stmt string) error {
	stmt = dialect.Use(m.cfg.Space, stmt)
	if err := m.authorize(ctx, privacy.OpMutation, m.cfg.Space, stmt); err != nil {
		return err
	}
	err := m.withSession(ctx, func(s dialect.Session) error {
		m.log.DebugContext(ctx, "execute update", "statement", stmt)
		return s.ExecuteMutation(ctx, stmt)
	})
	if err != nil {
		return m.failed(ctx, stmt, err)
	}
	m.invalidate(ctx, m.cfg.Space)
	return nil
}

// ExecuteQuery runs a read statement in the configured space. Results are
// served from the cache when one is set.
func (m *Mapper) ExecuteQuery(ctx context.Context, stmt string) (*dialect.ResultSet, error) {
	return m.query(ctx, m.cfg.Space, stmt, m.cache != nil)
}

func (m *Mapper) query(ctx context.Context, space, stmt string, cached bool) (*dialect.ResultSet, error) {
	stmt = dialect.Use(space, stmt)
	if err := m.authorize(ctx, privacy.OpQuery, space, stmt); err != nil {
		return nil, err
	}
	k := graphocean.CacheKey{Space: space, Statement: stmt}
	if cached {
		if rs, ok := m.cached(ctx, k); ok {
			return rs, nil
		}
	}
	var rs *dialect.ResultSet
	err := m.withSession(ctx, func(s dialect.Session) (err error) {
		m.log.DebugContext(ctx, "execute query", "statement", stmt)
		rs, err = s.ExecuteQuery(ctx, stmt)
		return err
	})
	if err != nil {
		return nil, m.failed(ctx, stmt, err)
	}
	if cached {
		m.store(ctx, k, rs)
	}
	return rs, nil
}

// schemaChange runs a DDL statement as given.
func (m *Mapper) schemaChange(ctx context.Context, space, stmt string) error {
	if err := m.authorize(ctx, privacy.OpSchemaChange, space, stmt); err != nil {
		return err
	}
	err := m.withSession(ctx, func(s dialect.Session) error {
		m.log.DebugContext(ctx, "execute schema change", "statement", stmt)
		return s.ExecuteSchemaChange(ctx, stmt)
	})
	if err != nil {
		return m.failed(ctx, stmt, err)
	}
	m.invalidate(ctx, space)
	return nil
}

// authorize evaluates the policy for stmt.
func (m *Mapper) authorize(ctx context.Context, op privacy.Op, space, stmt string) error {
	if len(m.policy) == 0 {
		return nil
	}
	err := m.policy.Eval(ctx, privacy.Operation{Op: op, Space: space, Statement: stmt})
	if err != nil {
		m.log.WarnContext(ctx, "statement rejected", "op", op.String(), "space", space, "statement", stmt, "error", err)
	}
	return err
}

func (m *Mapper) cached(ctx context.Context, k graphocean.CacheKey) (*dialect.ResultSet, bool) {
	b, err := m.cache.Get(ctx, k.String())
	if err != nil {
		m.log.WarnContext(ctx, "cache get failed", "key", k.String(), "error", err)
		return nil, false
	}
	if b == nil {
		return nil, false
	}
	rs, err := dialect.DecodeResultSet(b)
	if err != nil {
		m.log.WarnContext(ctx, "cache entry corrupted", "key", k.String(), "error", err)
		return nil, false
	}
	return rs, true
}

func (m *Mapper) store(ctx context.Context, k graphocean.CacheKey, rs *dialect.ResultSet) {
	b, err := dialect.EncodeResultSet(rs)
	if err == nil {
		err = m.cache.Set(ctx, k.String(), b, m.cfg.CacheTTL)
	}
	if err != nil {
		m.log.WarnContext(ctx, "cache set failed", "key", k.String(), "error", err)
	}
}

func (m *Mapper) invalidate(ctx context.Context, space string) {
	if m.cache == nil {
		return
	}
	k := graphocean.CacheKey{Space: space}
	if err := m.cache.DeletePrefix(ctx, k.Prefix()); err != nil {
		m.log.WarnContext(ctx, "cache invalidation failed", "space", space, "error", err)
	}
}

// failed logs and returns the execution failure of stmt.
func (m *Mapper) failed(ctx context.Context, stmt string, err error) error {
	err = executeError(stmt, err)
	var ee *graphocean.ExecuteError
	if errors.As(err, &ee) {
		m.log.ErrorContext(ctx, "execute failed",
			"code", dialect.ErrorCode(ee.Code), "message", ee.Message, "statement", stmt, "error", ee.Err)
	}
	return err
}

// executeError reports err as an *graphocean.ExecuteError of stmt.
// Context errors and errors that already are ExecuteErrors are kept.
func executeError(stmt string, err error) error {
	var ee *graphocean.ExecuteError
	switch {
	case errors.As(err, &ee):
		if ee.Statement == "" && stmt != "" {
			cp := *ee
			cp.Statement = stmt
			return &cp
		}
		return err
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	}
	return &graphocean.ExecuteError{Code: int(dialect.ErrorRPCFailure), Statement: stmt, Err: err}
}
