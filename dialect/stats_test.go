package dialect_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/graphocean/dialect"
	"github.com/syssam/graphocean/dialect/dialecttest"
)

func TestStatsPool(t *testing.T) {
	ctx := context.Background()
	fake := dialecttest.NewPool()
	fake.ExpectQuery("q")
	fake.ExpectMutation("m").WillReturnError(errors.New("boom"))
	fake.ExpectSchemaChange("ddl")

	var slow []string
	pool := dialect.NewStatsPool(fake,
		dialect.WithSlowThreshold(-1),
		dialect.WithSlowStatementHook(func(_ context.Context, stmt string, _ time.Duration) {
			slow = append(slow, stmt)
		}),
	)
	assert.Equal(t, time.Duration(-1), pool.SlowThreshold())

	s, err := pool.Acquire(ctx)
	require.NoError(t, err)
	_, err = s.ExecuteQuery(ctx, "q")
	require.NoError(t, err)
	require.Error(t, s.ExecuteMutation(ctx, "m"))
	require.NoError(t, s.ExecuteSchemaChange(ctx, "ddl"))
	s.Release()

	stats := pool.ExecStats().Stats()
	assert.Equal(t, int64(1), stats.TotalQueries)
	assert.Equal(t, int64(1), stats.TotalMutations)
	assert.Equal(t, int64(1), stats.TotalSchemaChanges)
	assert.Equal(t, int64(3), stats.Total())
	assert.Equal(t, int64(1), stats.Errors)
	assert.Equal(t, int64(3), stats.SlowStatements)
	assert.Equal(t, []string{"q", "m", "ddl"}, slow)
	assert.Contains(t, stats.String(), "queries=1 mutations=1 schema=1")
	require.NoError(t, fake.ExpectationsWereMet())

	pool.ExecStats().Reset()
	assert.Equal(t, int64(0), pool.ExecStats().Stats().Total())
	assert.Equal(t, time.Duration(0), pool.ExecStats().Stats().AvgDuration())
}

func TestDebugPool(t *testing.T) {
	ctx := context.Background()
	fake := dialecttest.NewLenientPool()

	var logged []any
	pool := dialect.NewDebugPool(fake, dialect.DebugWithLog(func(_ context.Context, v ...any) {
		logged = append(logged, v...)
	}))
	s, err := pool.Acquire(ctx)
	require.NoError(t, err)
	defer s.Release()

	_, err = s.ExecuteQuery(ctx, "SHOW SPACES")
	require.NoError(t, err)
	require.NoError(t, s.ExecuteMutation(ctx, "UPSERT"))
	require.NoError(t, s.ExecuteSchemaChange(ctx, "CREATE TAG"))
	assert.Equal(t, []any{"query: SHOW SPACES", "mutation: UPSERT", "schema change: CREATE TAG"}, logged)
}

func TestAcquireError(t *testing.T) {
	fake := dialecttest.NewPool()
	fake.FailAcquire(errors.New("pool closed"))
	_, err := dialect.NewStatsPool(fake).Acquire(context.Background())
	require.Error(t, err)
	_, err = dialect.NewDebugPool(fake).Acquire(context.Background())
	require.Error(t, err)
}
