package dialect

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/syssam/graphocean"
)

// Session executes statements on one store session.
type Session interface {
	// ExecuteMutation runs a data-changing statement.
	ExecuteMutation(ctx context.Context, stmt string) error
	// ExecuteQuery runs a read statement and returns its rows.
	ExecuteQuery(ctx context.Context, stmt string) (*ResultSet, error)
	// ExecuteSchemaChange runs a DDL statement. Its effects propagate
	// asynchronously on the server.
	ExecuteSchemaChange(ctx context.Context, stmt string) error
	// Release returns the session to its pool.
	Release()
}

// Pool hands out sessions.
type Pool interface {
	Acquire(ctx context.Context) (Session, error)
}

// PoolFunc adapts a function to a Pool.
type PoolFunc func(ctx context.Context) (Session, error)

// Acquire calls f(ctx).
func (f PoolFunc) Acquire(ctx context.Context) (Session, error) {
	return f(ctx)
}

// Response is the raw outcome of one statement.
type Response struct {
	Code    ErrorCode
	Message string
	Result  *ResultSet
}

// Executor runs raw statements. Transports that expose a single execute
// primitive implement Executor and are lifted to a Session by Wrap.
type Executor interface {
	Execute(ctx context.Context, stmt string) (*Response, error)
}

// ExecutorFunc adapts a function to an Executor.
type ExecutorFunc func(ctx context.Context, stmt string) (*Response, error)

// Execute calls f(ctx, stmt).
func (f ExecutorFunc) Execute(ctx context.Context, stmt string) (*Response, error) {
	return f(ctx, stmt)
}

// Wrap returns a Session running statements on exec. Non-zero response codes
// become *graphocean.ExecuteError values, transport errors are reported with
// ErrorRPCFailure. release is called once by the first Release.
func Wrap(exec Executor, release func()) Session {
	return &session{exec: exec, release: release}
}

type session struct {
	exec    Executor
	release func()
	once    sync.Once
}

func (s *session) ExecuteMutation(ctx context.Context, stmt string) error {
	_, err := s.execute(ctx, stmt)
	return err
}

func (s *session) ExecuteQuery(ctx context.Context, stmt string) (*ResultSet, error) {
	resp, err := s.execute(ctx, stmt)
	if err != nil {
		return nil, err
	}
	if resp.Result == nil {
		return &ResultSet{}, nil
	}
	return resp.Result, nil
}

func (s *session) ExecuteSchemaChange(ctx context.Context, stmt string) error {
	_, err := s.execute(ctx, stmt)
	return err
}

func (s *session) Release() {
	s.once.Do(func() {
		if s.release != nil {
			s.release()
		}
	})
}

func (s *session) execute(ctx context.Context, stmt string) (*Response, error) {
	resp, err := s.exec.Execute(ctx, stmt)
	switch {
	case err != nil:
		var ee *graphocean.ExecuteError
		if errors.As(err, &ee) {
			return nil, err
		}
		return nil, &graphocean.ExecuteError{Code: int(ErrorRPCFailure), Statement: stmt, Err: err}
	case resp == nil:
		return nil, &graphocean.ExecuteError{Code: int(ErrorRPCFailure), Message: "empty response", Statement: stmt}
	case resp.Code != ErrorSucceeded:
		return nil, graphocean.NewExecuteError(int(resp.Code), resp.Message, stmt)
	}
	return resp, nil
}

// Use prefixes stmt with the space selection: USE <space> ; <stmt> ;
func Use(space, stmt string) string {
	return fmt.Sprintf("USE %s ; %s ;", space, stmt)
}

var quoter = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// Quote returns s as a double-quoted statement string literal.
func Quote(s string) string {
	return `"` + quoter.Replace(s) + `"`
}

// Ident returns name as a back-quoted identifier.
func Ident(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "") + "`"
}
