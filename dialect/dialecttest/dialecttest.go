// Package dialecttest provides a scripted dialect.Pool for tests.
//
// Expectations are matched in order, like go-sqlmock:
//
//	pool := dialecttest.NewPool()
//	pool.ExpectQuery(`USE basketball ; FETCH PROP ON player "p1" YIELD ... ;`).
//	    WillReturnRows(dialect.NewResultSet([]string{"name"}, []any{"Tim"}))
//	pool.ExpectMutation("").WillReturnError(err) // "" matches any statement
//
//	// run code under test
//
//	require.NoError(t, pool.ExpectationsWereMet())
package dialecttest

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/syssam/graphocean/dialect"
)

// Op is the session primitive of a call.
type Op string

// Session primitives.
const (
	OpMutation     Op = "mutation"
	OpQuery        Op = "query"
	OpSchemaChange Op = "schema change"
)

// Call is a recorded statement.
type Call struct {
	Op        Op
	Statement string
}

// Expectation is a scripted response to one statement.
type Expectation struct {
	op   Op
	stmt string
	rs   *dialect.ResultSet
	err  error
}

// WillReturnRows sets the result of a query expectation.
func (e *Expectation) WillReturnRows(rs *dialect.ResultSet) *Expectation {
	e.rs = rs
	return e
}

// WillReturnError makes the statement fail with err.
func (e *Expectation) WillReturnError(err error) *Expectation {
	e.err = err
	return e
}

// Pool is a scripted dialect.Pool. It is safe for concurrent use.
type Pool struct {
	mu         sync.Mutex
	expected   []*Expectation
	calls      []Call
	acquired   int
	released   int
	acquireErr error
	strict     bool
}

// NewPool returns a pool without expectations. Unexpected statements fail.
func NewPool() *Pool {
	return &Pool{strict: true}
}

// NewLenientPool returns a pool that accepts any statement once its
// expectations are used up, returning empty results.
func NewLenientPool() *Pool {
	return &Pool{}
}

// FailAcquire makes Acquire fail with err.
func (p *Pool) FailAcquire(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.acquireErr = err
}

// ExpectMutation expects a mutation statement.
func (p *Pool) ExpectMutation(stmt string) *Expectation {
	return p.expect(OpMutation, stmt)
}

// ExpectQuery expects a read statement.
func (p *Pool) ExpectQuery(stmt string) *Expectation {
	return p.expect(OpQuery, stmt)
}

// ExpectSchemaChange expects a DDL statement.
func (p *Pool) ExpectSchemaChange(stmt string) *Expectation {
	return p.expect(OpSchemaChange, stmt)
}

func (p *Pool) expect(op Op, stmt string) *Expectation {
	p.mu.Lock()
	defer p.mu.Unlock()
	e := &Expectation{op: op, stmt: stmt}
	p.expected = append(p.expected, e)
	return e
}

// Acquire implements dialect.Pool.
func (p *Pool) Acquire(context.Context) (dialect.Session, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.acquireErr != nil {
		return nil, p.acquireErr
	}
	p.acquired++
	return &session{pool: p}, nil
}

// Calls returns the recorded statements in execution order.
func (p *Pool) Calls() []Call {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Call(nil), p.calls...)
}

// Statements returns the recorded statements of the given primitive.
func (p *Pool) Statements(op Op) []string {
	var out []string
	for _, c := range p.Calls() {
		if c.Op == op {
			out = append(out, c.Statement)
		}
	}
	return out
}

// Acquired returns the number of sessions handed out.
func (p *Pool) Acquired() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.acquired
}

// Released returns the number of sessions released.
func (p *Pool) Released() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.released
}

// ExpectationsWereMet returns an error if expectations are left or a
// session was not released.
func (p *Pool) ExpectationsWereMet() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.expected) > 0 {
		var sb strings.Builder
		for _, e := range p.expected {
			fmt.Fprintf(&sb, "\n  %s: %s", e.op, e.stmt)
		}
		return fmt.Errorf("dialecttest: %d expectations were not met:%s", len(p.expected), sb.String())
	}
	if p.acquired != p.released {
		return fmt.Errorf("dialecttest: %d sessions acquired, %d released", p.acquired, p.released)
	}
	return nil
}

func (p *Pool) next(op Op, stmt string) (*dialect.ResultSet, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, Call{Op: op, Statement: stmt})
	if len(p.expected) == 0 {
		if p.strict {
			return nil, fmt.Errorf("dialecttest: unexpected %s: %s", op, stmt)
		}
		return &dialect.ResultSet{}, nil
	}
	e := p.expected[0]
	if e.op != op || (e.stmt != "" && e.stmt != stmt) {
		return nil, fmt.Errorf("dialecttest: expected %s %q, got %s %q", e.op, e.stmt, op, stmt)
	}
	p.expected = p.expected[1:]
	if e.err != nil {
		return nil, e.err
	}
	if e.rs == nil {
		return &dialect.ResultSet{}, nil
	}
	return e.rs, nil
}

type session struct {
	pool     *Pool
	released bool
}

func (s *session) ExecuteMutation(_ context.Context, stmt string) error {
	_, err := s.pool.next(OpMutation, stmt)
	return err
}

func (s *session) ExecuteQuery(_ context.Context, stmt string) (*dialect.ResultSet, error) {
	return s.pool.next(OpQuery, stmt)
}

func (s *session) ExecuteSchemaChange(_ context.Context, stmt string) error {
	_, err := s.pool.next(OpSchemaChange, stmt)
	return err
}

func (s *session) Release() {
	s.pool.mu.Lock()
	defer s.pool.mu.Unlock()
	if s.released {
		panic("dialecttest: session released twice")
	}
	s.released = true
	s.pool.released++
}

var _ dialect.Pool = (*Pool)(nil)
