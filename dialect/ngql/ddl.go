package ngql

import (
	"fmt"
	"strings"

	"github.com/syssam/graphocean"
	"github.com/syssam/graphocean/dialect"
	"github.com/syssam/graphocean/schema"
)

// Vertex id types of a space.
const (
	VIDInt64 = "INT64"
)

// VIDFixedString returns the FIXED_STRING(n) vertex id type.
func VIDFixedString(n int) string {
	return fmt.Sprintf("FIXED_STRING(%d)", n)
}

// SpaceOptions are the creation options of a graph space. Zero fields
// take their defaults: one partition, one replica, INT64 ids.
type SpaceOptions struct {
	PartitionNum  int
	ReplicaFactor int
	VIDType       string
}

func (o SpaceOptions) withDefaults() SpaceOptions {
	if o.PartitionNum <= 0 {
		o.PartitionNum = 1
	}
	if o.ReplicaFactor <= 0 {
		o.ReplicaFactor = 1
	}
	if o.VIDType == "" {
		o.VIDType = VIDInt64
	}
	return o
}

// CreateSpace compiles the creation of a graph space.
func CreateSpace(name string, opts SpaceOptions) string {
	opts = opts.withDefaults()
	return fmt.Sprintf("CREATE SPACE IF NOT EXISTS %s (partition_num = %d, replica_factor = %d, vid_type = %s)",
		dialect.Ident(name), opts.PartitionNum, opts.ReplicaFactor, opts.VIDType)
}

// CloneSpace compiles the creation of space name with the schema of from.
func CloneSpace(from, name string) string {
	return fmt.Sprintf("CREATE SPACE IF NOT EXISTS %s AS %s", dialect.Ident(name), dialect.Ident(from))
}

// ClearSpace compiles the removal of all data of a space, followed by a
// compaction job.
func ClearSpace(name string) string {
	return fmt.Sprintf("CLEAR SPACE IF EXISTS %[1]s; USE %[1]s; SUBMIT JOB COMPACT", dialect.Ident(name))
}

// DropSpace compiles the removal of a space.
func DropSpace(name string) string {
	return "DROP SPACE IF EXISTS " + dialect.Ident(name)
}

// CreateLabel compiles the creation of the tag or edge type of l:
//
//	CREATE TAG IF NOT EXISTS `player` (`no` string NOT NULL, `age` int64 DEFAULT 18) COMMENT = "player"
//
// The label name is taken from l, else from name. The comment is the one
// declared on l, else comment, else the label name.
func CreateLabel(l schema.Label, name, comment string) (string, error) {
	if l.Name() != "" {
		name = l.Name()
	}
	if name == "" {
		return "", graphocean.NewPreconditionError("create "+strings.ToLower(l.Kind().String()), graphocean.ErrMissingRole, "label has no name")
	}
	switch {
	case l.Comment() != "":
		comment = l.Comment()
	case comment == "":
		comment = name
	}
	return fmt.Sprintf("CREATE %s IF NOT EXISTS %s (%s) COMMENT = %s",
		l.Kind(), dialect.Ident(name), propertyList(l), dialect.Quote(comment)), nil
}

// propertyList returns the column definitions of the typed properties of l.
func propertyList(l schema.Label) string {
	defs := make([]string, 0, len(l.Properties()))
	for _, p := range l.Properties() {
		if !p.Type.Valid() {
			continue
		}
		var b strings.Builder
		b.WriteString(dialect.Ident(p.Name))
		b.WriteByte(' ')
		b.WriteString(p.Type.Nebula(p.Size))
		if p.Must {
			b.WriteString(" NOT NULL")
		}
		if p.Default != "" {
			b.WriteString(" DEFAULT ")
			b.WriteString(p.Default)
		}
		if p.Comment != "" {
			b.WriteString(" COMMENT ")
			b.WriteString(dialect.Quote(p.Comment))
		}
		defs = append(defs, b.String())
	}
	return strings.Join(defs, ", ")
}

// CreateLabelIndex compiles the creation of the property-less index
// idx_<name> of the tag or edge type of l, named name when l is
// dynamically named.
func CreateLabelIndex(l schema.Label, name string) (string, error) {
	if l.Name() != "" {
		name = l.Name()
	}
	if name == "" {
		return "", graphocean.NewPreconditionError("create index", graphocean.ErrMissingRole, "label has no name")
	}
	return fmt.Sprintf("CREATE %s INDEX IF NOT EXISTS %s ON %s()", l.Kind(), dialect.Ident("idx_"+name), dialect.Ident(name)), nil
}

// Job statements.
const (
	SubmitStatsJob = "SUBMIT JOB STATS"
	ShowStats      = "SHOW STATS"
)

// ShowJob compiles the status query of a job.
func ShowJob(id int64) string {
	return fmt.Sprintf("SHOW JOB %d", id)
}
