package dialect

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// ExecStats holds statement execution statistics.
type ExecStats struct {
	// TotalQueries is the total number of read statements executed.
	TotalQueries atomic.Int64
	// TotalMutations is the total number of mutation statements executed.
	TotalMutations atomic.Int64
	// TotalSchemaChanges is the total number of DDL statements executed.
	TotalSchemaChanges atomic.Int64
	// TotalDuration is the total time spent executing statements.
	TotalDuration atomic.Int64 // nanoseconds
	// SlowStatements is the count of statements exceeding the slow threshold.
	SlowStatements atomic.Int64
	// Errors is the count of failed statements.
	Errors atomic.Int64
}

// Stats returns a snapshot of the current statistics.
func (s *ExecStats) Stats() StatsSnapshot {
	return StatsSnapshot{
		TotalQueries:       s.TotalQueries.Load(),
		TotalMutations:     s.TotalMutations.Load(),
		TotalSchemaChanges: s.TotalSchemaChanges.Load(),
		TotalDuration:      time.Duration(s.TotalDuration.Load()),
		SlowStatements:     s.SlowStatements.Load(),
		Errors:             s.Errors.Load(),
	}
}

// Reset resets all statistics to zero.
func (s *ExecStats) Reset() {
	s.TotalQueries.Store(0)
	s.TotalMutations.Store(0)
	s.TotalSchemaChanges.Store(0)
	s.TotalDuration.Store(0)
	s.SlowStatements.Store(0)
	s.Errors.Store(0)
}

// StatsSnapshot is a point-in-time snapshot of execution statistics.
type StatsSnapshot struct {
	TotalQueries       int64
	TotalMutations     int64
	TotalSchemaChanges int64
	TotalDuration      time.Duration
	SlowStatements     int64
	Errors             int64
}

// Total returns the number of statements executed.
func (s StatsSnapshot) Total() int64 {
	return s.TotalQueries + s.TotalMutations + s.TotalSchemaChanges
}

// AvgDuration returns the average statement duration.
func (s StatsSnapshot) AvgDuration() time.Duration {
	total := s.Total()
	if total == 0 {
		return 0
	}
	return s.TotalDuration / time.Duration(total)
}

// String returns a human-readable summary of the statistics.
func (s StatsSnapshot) String() string {
	return fmt.Sprintf(
		"queries=%d mutations=%d schema=%d duration=%s avg=%s slow=%d errors=%d",
		s.TotalQueries, s.TotalMutations, s.TotalSchemaChanges, s.TotalDuration,
		s.AvgDuration(), s.SlowStatements, s.Errors,
	)
}

// SlowStatementHook is a function called when a slow statement is detected.
type SlowStatementHook func(ctx context.Context, stmt string, duration time.Duration)

// StatsPool wraps a Pool so every acquired session records statistics
// into one shared ExecStats.
type StatsPool struct {
	Pool
	stats         *ExecStats
	slowThreshold time.Duration
	slowHook      SlowStatementHook
	mu            sync.RWMutex
}

// StatsOption configures the StatsPool.
type StatsOption func(*StatsPool)

// WithSlowThreshold sets the threshold for slow statement detection.
// Default is 100ms.
func WithSlowThreshold(d time.Duration) StatsOption {
	return func(s *StatsPool) {
		s.slowThreshold = d
	}
}

// WithSlowStatementHook sets a callback function for slow statements.
func WithSlowStatementHook(hook SlowStatementHook) StatsOption {
	return func(s *StatsPool) {
		s.slowHook = hook
	}
}

// WithSlowStatementLog logs slow statements to the default logger.
func WithSlowStatementLog() StatsOption {
	return WithSlowStatementHook(func(_ context.Context, stmt string, duration time.Duration) {
		slog.Warn("slow statement detected", "duration", duration, "statement", stmt)
	})
}

// NewStatsPool wraps a Pool with statistics collection.
//
// Example:
//
//	pool := dialect.NewStatsPool(transport,
//	    dialect.WithSlowThreshold(200*time.Millisecond),
//	    dialect.WithSlowStatementLog(),
//	)
//	m, err := mapper.New(pool, cfg)
//
//	// Later, check statistics:
//	fmt.Println(pool.ExecStats().Stats())
func NewStatsPool(p Pool, opts ...StatsOption) *StatsPool {
	s := &StatsPool{
		Pool:          p,
		stats:         &ExecStats{},
		slowThreshold: 100 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ExecStats returns the underlying ExecStats for reading statistics.
func (p *StatsPool) ExecStats() *ExecStats {
	return p.stats
}

// SlowThreshold returns the current slow statement threshold.
func (p *StatsPool) SlowThreshold() time.Duration {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.slowThreshold
}

// SetSlowThreshold updates the slow statement threshold.
func (p *StatsPool) SetSlowThreshold(threshold time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.slowThreshold = threshold
}

// Acquire acquires a session that records statistics.
func (p *StatsPool) Acquire(ctx context.Context) (Session, error) {
	s, err := p.Pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return &StatsSession{Session: s, pool: p}, nil
}

type statementKind uint8

const (
	kindQuery statementKind = iota
	kindMutation
	kindSchemaChange
)

func (p *StatsPool) record(ctx context.Context, stmt string, start time.Time, err error, kind statementKind) {
	duration := time.Since(start)
	switch kind {
	case kindQuery:
		p.stats.TotalQueries.Add(1)
	case kindMutation:
		p.stats.TotalMutations.Add(1)
	default:
		p.stats.TotalSchemaChanges.Add(1)
	}
	p.stats.TotalDuration.Add(int64(duration))

	if err != nil {
		p.stats.Errors.Add(1)
	}

	p.mu.RLock()
	threshold := p.slowThreshold
	hook := p.slowHook
	p.mu.RUnlock()

	if duration > threshold {
		p.stats.SlowStatements.Add(1)
		if hook != nil {
			hook(ctx, stmt, duration)
		}
	}
}

// StatsSession wraps a session with statistics collection.
type StatsSession struct {
	Session
	pool *StatsPool
}

// ExecuteQuery executes a read statement and records statistics.
func (s *StatsSession) ExecuteQuery(ctx context.Context, stmt string) (*ResultSet, error) {
	start := time.Now()
	rs, err := s.Session.ExecuteQuery(ctx, stmt)
	s.pool.record(ctx, stmt, start, err, kindQuery)
	return rs, err
}

// ExecuteMutation executes a mutation and records statistics.
func (s *StatsSession) ExecuteMutation(ctx context.Context, stmt string) error {
	start := time.Now()
	err := s.Session.ExecuteMutation(ctx, stmt)
	s.pool.record(ctx, stmt, start, err, kindMutation)
	return err
}

// ExecuteSchemaChange executes a DDL statement and records statistics.
func (s *StatsSession) ExecuteSchemaChange(ctx context.Context, stmt string) error {
	start := time.Now()
	err := s.Session.ExecuteSchemaChange(ctx, stmt)
	s.pool.record(ctx, stmt, start, err, kindSchemaChange)
	return err
}

// DebugPool wraps a Pool so every acquired session logs its statements.
type DebugPool struct {
	Pool
	log func(context.Context, ...any)
}

// DebugOption configures the DebugPool.
type DebugOption func(*DebugPool)

// DebugWithLog sets a custom log function.
func DebugWithLog(logFunc func(context.Context, ...any)) DebugOption {
	return func(d *DebugPool) {
		d.log = logFunc
	}
}

// NewDebugPool wraps a Pool with debug logging.
func NewDebugPool(p Pool, opts ...DebugOption) *DebugPool {
	d := &DebugPool{
		Pool: p,
		log: func(_ context.Context, v ...any) {
			slog.Info(fmt.Sprint(v...))
		},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Acquire acquires a session that logs its statements.
func (p *DebugPool) Acquire(ctx context.Context) (Session, error) {
	s, err := p.Pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return &DebugSession{Session: s, log: p.log}, nil
}

// DebugSession wraps a session with debug logging.
type DebugSession struct {
	Session
	log func(context.Context, ...any)
}

// ExecuteQuery logs and executes a read statement.
func (s *DebugSession) ExecuteQuery(ctx context.Context, stmt string) (*ResultSet, error) {
	s.log(ctx, fmt.Sprintf("query: %s", stmt))
	return s.Session.ExecuteQuery(ctx, stmt)
}

// ExecuteMutation logs and executes a mutation.
func (s *DebugSession) ExecuteMutation(ctx context.Context, stmt string) error {
	s.log(ctx, fmt.Sprintf("mutation: %s", stmt))
	return s.Session.ExecuteMutation(ctx, stmt)
}

// ExecuteSchemaChange logs and executes a DDL statement.
func (s *DebugSession) ExecuteSchemaChange(ctx context.Context, stmt string) error {
	s.log(ctx, fmt.Sprintf("schema change: %s", stmt))
	return s.Session.ExecuteSchemaChange(ctx, stmt)
}

// Ensure interfaces are implemented.
var (
	_ Pool    = (*StatsPool)(nil)
	_ Session = (*StatsSession)(nil)
	_ Pool    = (*DebugPool)(nil)
	_ Session = (*DebugSession)(nil)
)
