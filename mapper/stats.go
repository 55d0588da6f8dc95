package mapper

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/syssam/graphocean/dialect"
	"github.com/syssam/graphocean/dialect/ngql"
)

// Job states reported by SHOW JOB.
const (
	JobFinished = "FINISHED"
	JobFailed   = "FAILED"
	JobStopped  = "STOPPED"
)

// ErrJobFailed is returned when a statistics job ends without finishing.
var ErrJobFailed = errors.New("mapper: statistics job did not finish")

// SpaceStats holds the element counts of a space.
type SpaceStats struct {
	Vertices  int64
	Edges     int64
	Tags      map[string]int64
	EdgeTypes map[string]int64
}

// StatsSpace submits a statistics job on space, the configured space when
// empty, waits for it and returns the counts it computed. The job status
// is checked every Config.StatsPollInterval until it finishes or
// Config.StatsTimeout expires.
func (m *Mapper) StatsSpace(ctx context.Context, space string) (*SpaceStats, error) {
	if space == "" {
		space = m.cfg.Space
	}
	ctx, cancel := context.WithTimeout(ctx, m.cfg.StatsTimeout)
	defer cancel()

	rs, err := m.query(ctx, space, ngql.SubmitStatsJob, false)
	if err != nil {
		return nil, err
	}
	if rs.IsEmpty() {
		return nil, fmt.Errorf("mapper: submit stats job on %s: no job id", space)
	}
	id, err := rs.Records()[0].At(0).AsInt()
	if err != nil {
		return nil, fmt.Errorf("mapper: submit stats job on %s: %w", space, err)
	}
	m.log.DebugContext(ctx, "stats job submitted", "space", space, "job", id)
	if err := m.waitJob(ctx, space, id); err != nil {
		return nil, err
	}

	rs, err = m.query(ctx, space, ngql.ShowStats, false)
	if err != nil {
		return nil, err
	}
	stats := &SpaceStats{Tags: make(map[string]int64), EdgeTypes: make(map[string]int64)}
	for _, r := range rs.Records() {
		typ, name, count, err := statsRow(r)
		if err != nil {
			return nil, fmt.Errorf("mapper: show stats on %s: %w", space, err)
		}
		switch {
		case strings.EqualFold(typ, "Tag"):
			stats.Tags[name] = count
		case strings.EqualFold(typ, "Edge"):
			stats.EdgeTypes[name] = count
		case strings.EqualFold(typ, "Space") && strings.EqualFold(name, "vertices"):
			stats.Vertices = count
		case strings.EqualFold(typ, "Space") && strings.EqualFold(name, "edges"):
			stats.Edges = count
		}
	}
	return stats, nil
}

// waitJob polls the status of job id until it finishes.
func (m *Mapper) waitJob(ctx context.Context, space string, id int64) error {
	ticker := time.NewTicker(m.cfg.StatsPollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("mapper: wait for job %d: %w", id, ctx.Err())
		case <-ticker.C:
		}
		rs, err := m.query(ctx, space, ngql.ShowJob(id), false)
		if err != nil {
			return err
		}
		status := jobStatus(rs)
		m.log.DebugContext(ctx, "stats job status", "space", space, "job", id, "status", status)
		switch status {
		case JobFinished:
			return nil
		case JobFailed, JobStopped:
			return fmt.Errorf("%w: job %d is %s", ErrJobFailed, id, status)
		}
	}
}

// jobStatus returns the Status cell of the first row.
func jobStatus(rs *dialect.ResultSet) string {
	col := rs.Column("Status")
	if len(col) == 0 {
		return ""
	}
	s, _ := col[0].AsString()
	return strings.ToUpper(s)
}

func statsRow(r dialect.Record) (typ, name string, count int64, err error) {
	get := func(col string) dialect.Value {
		v, _ := r.Get(col)
		return v
	}
	if typ, err = get("Type").AsString(); err != nil {
		return "", "", 0, err
	}
	if name, err = get("Name").AsString(); err != nil {
		return "", "", 0, err
	}
	count, err = get("Count").AsInt()
	return typ, name, count, err
}
