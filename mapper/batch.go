package mapper

import (
	"context"
	"fmt"
	"strings"

	"github.com/syssam/graphocean/dialect"
	"github.com/syssam/graphocean/privacy"
)

// BatchError reports the window a batch stopped at. Windows before it
// were applied.
type BatchError struct {
	Window  int
	Windows int
	Err     error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("mapper: batch window %d of %d: %v", e.Window+1, e.Windows, e.Err)
}

func (e *BatchError) Unwrap() error { return e.Err }

// ExecuteBatch sends stmts in windows of Config.BatchSize statements.
// Each window is joined with ";" and runs on its own session. Windows
// run in order and the first failure stops the batch.
func (m *Mapper) ExecuteBatch(ctx context.Context, stmts []string) error {
	windows := window(stmts, m.cfg.BatchSize)
	for i, w := range windows {
		stmt := dialect.Use(m.cfg.Space, strings.Join(w, ";"))
		err := ctx.Err()
		if err == nil {
			err = m.authorize(ctx, privacy.OpMutation, m.cfg.Space, stmt)
		}
		if err == nil {
			err = m.withSession(ctx, func(s dialect.Session) error {
				m.log.DebugContext(ctx, "execute batch window",
					"window", i+1, "windows", len(windows), "statements", len(w))
				return s.ExecuteMutation(ctx, stmt)
			})
			if err != nil {
				err = m.failed(ctx, stmt, err)
			}
		}
		if err != nil {
			if i > 0 {
				m.invalidate(ctx, m.cfg.Space)
			}
			return &BatchError{Window: i, Windows: len(windows), Err: err}
		}
	}
	if len(windows) > 0 {
		m.invalidate(ctx, m.cfg.Space)
	}
	return nil
}

// window splits stmts into consecutive slices of at most size statements.
func window(stmts []string, size int) [][]string {
	if len(stmts) == 0 {
		return nil
	}
	out := make([][]string, 0, (len(stmts)+size-1)/size)
	for size < len(stmts) {
		stmts, out = stmts[size:], append(out, stmts[:size:size])
	}
	return append(out, stmts)
}
