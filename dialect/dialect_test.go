package dialect_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/graphocean"
	"github.com/syssam/graphocean/dialect"
)

func TestWrap(t *testing.T) {
	ctx := context.Background()

	t.Run("Succeeded", func(t *testing.T) {
		rs := dialect.NewResultSet([]string{"n"}, []any{int64(1)})
		var got []string
		s := dialect.Wrap(dialect.ExecutorFunc(func(_ context.Context, stmt string) (*dialect.Response, error) {
			got = append(got, stmt)
			return &dialect.Response{Result: rs}, nil
		}), nil)

		require.NoError(t, s.ExecuteMutation(ctx, "m"))
		require.NoError(t, s.ExecuteSchemaChange(ctx, "ddl"))
		out, err := s.ExecuteQuery(ctx, "q")
		require.NoError(t, err)
		assert.Same(t, rs, out)
		assert.Equal(t, []string{"m", "ddl", "q"}, got)
	})

	t.Run("EmptyResult", func(t *testing.T) {
		s := dialect.Wrap(dialect.ExecutorFunc(func(context.Context, string) (*dialect.Response, error) {
			return &dialect.Response{}, nil
		}), nil)
		rs, err := s.ExecuteQuery(ctx, "q")
		require.NoError(t, err)
		assert.True(t, rs.IsEmpty())
	})

	t.Run("ErrorCode", func(t *testing.T) {
		s := dialect.Wrap(dialect.ExecutorFunc(func(context.Context, string) (*dialect.Response, error) {
			return &dialect.Response{Code: dialect.ErrorSyntaxError, Message: "syntax error near `X'"}, nil
		}), nil)
		err := s.ExecuteMutation(ctx, "X")
		require.Error(t, err)
		var ee *graphocean.ExecuteError
		require.True(t, errors.As(err, &ee))
		assert.Equal(t, int(dialect.ErrorSyntaxError), ee.Code)
		assert.Equal(t, "X", ee.Statement)
		assert.True(t, dialect.IsSyntaxError(err))
		assert.False(t, dialect.IsRPCFailure(err))
	})

	t.Run("TransportError", func(t *testing.T) {
		cause := errors.New("broken pipe")
		s := dialect.Wrap(dialect.ExecutorFunc(func(context.Context, string) (*dialect.Response, error) {
			return nil, cause
		}), nil)
		_, err := s.ExecuteQuery(ctx, "q")
		require.Error(t, err)
		assert.True(t, errors.Is(err, cause))
		assert.True(t, dialect.IsRPCFailure(err))
		code, ok := dialect.CodeOf(err)
		require.True(t, ok)
		assert.Equal(t, dialect.ErrorRPCFailure, code)
	})

	t.Run("ReleaseOnce", func(t *testing.T) {
		n := 0
		s := dialect.Wrap(dialect.ExecutorFunc(func(context.Context, string) (*dialect.Response, error) {
			return &dialect.Response{}, nil
		}), func() { n++ })
		s.Release()
		s.Release()
		assert.Equal(t, 1, n)
	})
}

func TestErrorCodes(t *testing.T) {
	assert.Equal(t, "E_BAD_PERMISSION", dialect.ErrorBadPermission.String())
	assert.Equal(t, "ErrorCode(-42)", dialect.ErrorCode(-42).String())

	err := graphocean.NewExecuteError(int(dialect.ErrorBadPermission), "denied", "")
	assert.True(t, dialect.IsPermissionError(err))
	assert.False(t, dialect.IsSessionError(err))
	assert.True(t, dialect.IsSessionError(graphocean.NewExecuteError(int(dialect.ErrorSessionTimeout), "", "")))

	_, ok := dialect.CodeOf(errors.New("plain"))
	assert.False(t, ok)
	assert.False(t, dialect.IsRPCFailure(nil))
}

func TestUse(t *testing.T) {
	assert.Equal(t, "USE basketball ; SHOW TAGS ;", dialect.Use("basketball", "SHOW TAGS"))
}

func TestQuote(t *testing.T) {
	tests := []struct{ in, want string }{
		{"p1", `"p1"`},
		{`a"b`, `"a\"b"`},
		{`c:\dir`, `"c:\\dir"`},
		{"line\nbreak\ttab", `"line\nbreak\ttab"`},
		{"姚明", `"姚明"`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, dialect.Quote(tt.in))
	}
	assert.Equal(t, "`player`", dialect.Ident("player"))
	assert.Equal(t, "`drop`", dialect.Ident("dr`op"))
}
