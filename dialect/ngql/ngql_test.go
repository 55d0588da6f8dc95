package ngql_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/graphocean"
	"github.com/syssam/graphocean/dialect/ngql"
	"github.com/syssam/graphocean/graph"
	"github.com/syssam/graphocean/schema"
	"github.com/syssam/graphocean/schema/field"
	"github.com/syssam/graphocean/schema/key"
	"github.com/syssam/graphocean/schema/mixin"
)

type Player struct {
	No   string
	Name string
	Age  *int64
	Nick any
}

func (Player) Vertex() schema.VertexConfig { return schema.Tag("player") }

func (Player) Fields() []field.Field[Player] {
	return []field.Field[Player]{
		field.Value("no", func(p *Player) *string { return &p.No }).VertexID(),
		field.Value("name", func(p *Player) *string { return &p.Name }).Comment("full name"),
		field.Nillable("age", func(p *Player) **int64 { return &p.Age }).Default("18"),
		field.Any("nick", func(p *Player) *any { return &p.Nick }),
	}
}

type Follow struct {
	Follower string
	Followed string
	Degree   int64
}

func (Follow) Edge() schema.EdgeConfig {
	return schema.EdgeType("follow").WithIDsAsFields(false, false).WithComment("follows")
}

func (Follow) Fields() []field.Field[Follow] {
	return []field.Field[Follow]{
		field.Value("follower", func(f *Follow) *string { return &f.Follower }).SrcID(),
		field.Value("followed", func(f *Follow) *string { return &f.Followed }).DstID(),
		field.Value("degree", func(f *Follow) *int64 { return &f.Degree }),
	}
}

type Host struct {
	mixin.Labeled
	ID int64
}

func (Host) Vertex() schema.VertexConfig {
	return schema.Tag("").WithKeyPolicy(key.Int64).WithIDAsField(false)
}

func (Host) Fields() []field.Field[Host] {
	return []field.Field[Host]{
		field.Value("id", func(h *Host) *int64 { return &h.ID }).VertexID(),
	}
}

func (Host) Mixin() []mixin.Mixin[Host] {
	return []mixin.Mixin[Host]{
		mixin.Embed(func(h *Host) *mixin.Labeled { return &h.Labeled }),
	}
}

type Account struct {
	No   string
	Name string
}

func (Account) Vertex() schema.VertexConfig {
	return schema.Tag("account").WithKeyPolicy(key.Hash).WithIDAsField(false)
}

func (Account) Fields() []field.Field[Account] {
	return []field.Field[Account]{
		field.Value("no", func(a *Account) *string { return &a.No }).VertexID(),
		field.Value("name", func(a *Account) *string { return &a.Name }),
	}
}

type Transfer struct {
	From, To string
	Amount   int64
}

func (Transfer) Edge() schema.EdgeConfig {
	return schema.EdgeType("transfer").WithKeyPolicies(key.Hash, key.StringKey).WithIDsAsFields(false, false)
}

func (Transfer) Fields() []field.Field[Transfer] {
	return []field.Field[Transfer]{
		field.Value("payer", func(t *Transfer) *string { return &t.From }).SrcID(),
		field.Value("payee", func(t *Transfer) *string { return &t.To }).DstID(),
		field.Value("amount", func(t *Transfer) *int64 { return &t.Amount }),
	}
}

func typeOf[T any](t *testing.T) *schema.Type[T] {
	t.Helper()
	typ, err := schema.For[T]()
	require.NoError(t, err)
	return typ
}

func TestLiteral(t *testing.T) {
	tests := []struct {
		name string
		typ  field.Type
		v    any
		want string
	}{
		{"Nil", field.TypeInt64, nil, "NULL"},
		{"String", field.TypeString, "Tim", `"Tim"`},
		{"Escaped", field.TypeFixedString, "a\"b\\c\nd", `"a\"b\\c\nd"`},
		{"StringOfInt", field.TypeString, int64(7), `"7"`},
		{"Int", field.TypeInt64, int64(-42), "-42"},
		{"Int16", field.TypeInt16, int16(7), "7"},
		{"Bool", field.TypeBool, true, "true"},
		{"Double", field.TypeDouble, 3.25, "3.25"},
		{"IntegralDouble", field.TypeDouble, float64(3), "3.0"},
		{"Formatted", field.TypeDate, `date("2000-01-02")`, `date("2000-01-02")`},
		{"Untyped", field.TypeNull, "x", `"x"`},
		{"Timestamp", field.TypeTimestamp, time.Unix(1700000000, 0), "timestamp(1700000000)"},
		{"Date", field.TypeDate, time.Date(2000, 1, 2, 0, 0, 0, 0, time.UTC), `date("2000-01-02")`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ngql.Literal(tt.typ, tt.v))
		})
	}
	assert.Equal(t, `"a", "b"`, ngql.Literals(field.TypeString, "a", "b"))
}

func TestUpsertEdge(t *testing.T) {
	e, err := graph.NewEdge(typeOf[Follow](t), &Follow{Follower: "p1", Followed: "p2", Degree: 3})
	require.NoError(t, err)
	assert.Equal(t, `UPSERT EDGE ON follow "p1" -> "p2" SET degree=3`, ngql.UpsertEdge(e))

	e.Level = 2
	assert.Equal(t, `UPSERT EDGE ON follow "p1" -> "p2"@2 SET degree=3`, ngql.UpsertEdge(e))

	e.Properties.Delete("degree")
	assert.Equal(t, `INSERT EDGE IF NOT EXISTS follow() VALUES "p1"->"p2"@2:()`, ngql.UpsertEdge(e))
}

func TestUpsertVertex(t *testing.T) {
	typ := typeOf[Player](t)

	t.Run("AbsentAge", func(t *testing.T) {
		v, err := graph.NewVertex(typ, &Player{No: "p1", Name: "Tim", Nick: "TD"})
		require.NoError(t, err)
		assert.False(t, v.Properties.Has("age"))
		assert.Equal(t, `UPSERT VERTEX ON player "p1" SET no="p1", name="Tim"`, ngql.UpsertVertex(v), "untyped nick is never written")
	})

	t.Run("NullAge", func(t *testing.T) {
		v, err := graph.NewVertex(typ, &Player{No: "p1", Name: "Tim"})
		require.NoError(t, err)
		v.Properties.Set("age", nil)
		assert.Equal(t, `UPSERT VERTEX ON player "p1" SET no="p1", name="Tim", age=NULL`, ngql.UpsertVertex(v))
	})

	t.Run("Age", func(t *testing.T) {
		age := int64(42)
		v, err := graph.NewVertex(typ, &Player{No: "p1", Name: "Tim", Age: &age})
		require.NoError(t, err)
		assert.Equal(t, `UPSERT VERTEX ON player "p1" SET no="p1", name="Tim", age=42`, ngql.UpsertVertex(v))
	})

	t.Run("NoProperties", func(t *testing.T) {
		v, err := graph.NewVertex(typeOf[Host](t), &Host{Labeled: mixin.Labeled{Label: "server"}, ID: 7})
		require.NoError(t, err)
		assert.Equal(t, `INSERT VERTEX IF NOT EXISTS server() VALUES 7:()`, ngql.UpsertVertex(v))
	})

	t.Run("Many", func(t *testing.T) {
		vs, err := graph.NewVertices(typ, []*Player{{No: "p1"}, {No: "p2"}})
		require.NoError(t, err)
		assert.Equal(t, []string{
			`UPSERT VERTEX ON player "p1" SET no="p1", name=""`,
			`UPSERT VERTEX ON player "p2" SET no="p2", name=""`,
		}, ngql.UpsertVertices(vs))
	})
}

func TestCreateLabel(t *testing.T) {
	stmt, err := ngql.CreateLabel(typeOf[Player](t).Label(), "", "")
	require.NoError(t, err)
	assert.Equal(t, "CREATE TAG IF NOT EXISTS `player` (`no` string NOT NULL, `name` string COMMENT \"full name\", `age` int64 DEFAULT 18) COMMENT = \"player\"", stmt)

	stmt, err = ngql.CreateLabel(typeOf[Player](t).Label(), "", "players")
	require.NoError(t, err)
	assert.Contains(t, stmt, `COMMENT = "players"`)

	stmt, err = ngql.CreateLabel(typeOf[Follow](t).Label(), "", "ignored")
	require.NoError(t, err)
	assert.Equal(t, "CREATE EDGE IF NOT EXISTS `follow` (`degree` int64) COMMENT = \"follows\"", stmt)

	stmt, err = ngql.CreateLabel(typeOf[Host](t).Label(), "server", "")
	require.NoError(t, err)
	assert.Equal(t, "CREATE TAG IF NOT EXISTS `server` () COMMENT = \"server\"", stmt)

	_, err = ngql.CreateLabel(typeOf[Host](t).Label(), "", "")
	assert.ErrorIs(t, err, graphocean.ErrMissingRole)
}

func TestCreateLabelIndex(t *testing.T) {
	stmt, err := ngql.CreateLabelIndex(typeOf[Player](t).Label(), "")
	require.NoError(t, err)
	assert.Equal(t, "CREATE TAG INDEX IF NOT EXISTS `idx_player` ON `player`()", stmt)

	stmt, err = ngql.CreateLabelIndex(typeOf[Follow](t).Label(), "")
	require.NoError(t, err)
	assert.Equal(t, "CREATE EDGE INDEX IF NOT EXISTS `idx_follow` ON `follow`()", stmt)

	_, err = ngql.CreateLabelIndex(typeOf[Host](t).Label(), "")
	assert.ErrorIs(t, err, graphocean.ErrMissingRole)
}

func TestSpaces(t *testing.T) {
	assert.Equal(t, "CREATE SPACE IF NOT EXISTS `nba` (partition_num = 1, replica_factor = 1, vid_type = INT64)",
		ngql.CreateSpace("nba", ngql.SpaceOptions{}))
	assert.Equal(t, "CREATE SPACE IF NOT EXISTS `nba` (partition_num = 10, replica_factor = 3, vid_type = FIXED_STRING(32))",
		ngql.CreateSpace("nba", ngql.SpaceOptions{PartitionNum: 10, ReplicaFactor: 3, VIDType: ngql.VIDFixedString(32)}))
	assert.Equal(t, "CREATE SPACE IF NOT EXISTS `nba2` AS `nba`", ngql.CloneSpace("nba", "nba2"))
	assert.Equal(t, "CLEAR SPACE IF EXISTS `nba`; USE `nba`; SUBMIT JOB COMPACT", ngql.ClearSpace("nba"))
	assert.Equal(t, "DROP SPACE IF EXISTS `nba`", ngql.DropSpace("nba"))
	assert.Equal(t, "SHOW JOB 12", ngql.ShowJob(12))
}

func TestFetch(t *testing.T) {
	stmt, err := ngql.Fetch(typeOf[Player](t).Vertex(), "p1", "p2")
	require.NoError(t, err)
	assert.Equal(t, `FETCH PROP ON player "p1", "p2" YIELD player.no AS no, player.name AS name, player.age AS age`, stmt, "untyped nick is not a tag property")

	stmt, err = ngql.Fetch(typeOf[Account](t).Vertex(), "a1")
	require.NoError(t, err)
	assert.Equal(t, `FETCH PROP ON account hash("a1") YIELD account.name AS name`, stmt, "hashed ids do not read back")

	_, err = ngql.Fetch(typeOf[Player](t).Vertex())
	assert.ErrorIs(t, err, graphocean.ErrInvalidID)
	_, err = ngql.Fetch(typeOf[Host](t).Vertex(), "1")
	assert.ErrorIs(t, err, graphocean.ErrMissingRole)
}

func TestGo(t *testing.T) {
	l := typeOf[Follow](t).Edge()

	stmt, err := ngql.Go(l, ngql.Forward, "p1")
	require.NoError(t, err)
	assert.Equal(t, `GO FROM "p1" OVER follow YIELD follow.degree AS degree, src(edge) AS follower, dst(edge) AS followed`, stmt)

	stmt, err = ngql.Go(l, ngql.Reverse, "p2", "p3")
	require.NoError(t, err)
	assert.Equal(t, `GO FROM "p2", "p3" OVER follow REVERSELY YIELD follow.degree AS degree, src(edge) AS follower, dst(edge) AS followed`, stmt)

	_, err = ngql.Go(l, ngql.Bidirect)
	assert.ErrorIs(t, err, graphocean.ErrInvalidID)

	stmt, err = ngql.Go(typeOf[Transfer](t).Edge(), ngql.Forward, "a1")
	require.NoError(t, err)
	assert.Equal(t, `GO FROM hash("a1") OVER transfer YIELD transfer.amount AS amount, dst(edge) AS payee`, stmt)
}

func TestFindPath(t *testing.T) {
	stmt, err := ngql.FindPath([]string{"p1"}, []string{"p3", "p4"}).Query()
	require.NoError(t, err)
	assert.Equal(t, `FIND NOLOOP PATH WITH PROP FROM "p1" TO "p3", "p4" OVER * BIDIRECT YIELD path AS p`, stmt)

	stmt, err = ngql.FindPath([]string{"p1"}, []string{"p3"}).
		Over("follow", "serve").
		Direction(ngql.Forward).
		Mode(ngql.Shortest).
		WithProp(false).
		Where(ngql.IntProp("follow", "degree").GT(90)).
		UpTo(5).
		Query()
	require.NoError(t, err)
	assert.Equal(t, `FIND SHORTEST PATH FROM "p1" TO "p3" OVER follow, serve WHERE follow.degree > 90 UPTO 5 STEPS YIELD path AS p`, stmt)

	stmt, err = ngql.FindPath([]string{"1"}, []string{"2"}).KeyPolicy(key.Hash).Mode(ngql.All).Direction(ngql.Reverse).Query()
	require.NoError(t, err)
	assert.Equal(t, `FIND ALL PATH WITH PROP FROM hash("1") TO hash("2") OVER * REVERSELY YIELD path AS p`, stmt)

	_, err = ngql.FindPath([]string{"p1"}, nil).Query()
	assert.ErrorIs(t, err, graphocean.ErrInvalidID)
}

func TestGetSubgraph(t *testing.T) {
	stmt, err := ngql.GetSubgraph("p1").Query()
	require.NoError(t, err)
	assert.Equal(t, `GET SUBGRAPH WITH PROP 1 STEPS FROM "p1" YIELD VERTICES AS nodes, EDGES AS relationships`, stmt)

	stmt, err = ngql.GetSubgraph("p1", "p2").
		Steps(2).
		Both("like").
		Out("follow").
		In("serve").
		Where(ngql.IntProp("follow", "degree").GTE(80)).
		WithProp(false).
		EdgesOnly().
		Query()
	require.NoError(t, err)
	assert.Equal(t, `GET SUBGRAPH 2 STEPS FROM "p1", "p2" IN serve OUT follow BOTH like WHERE follow.degree >= 80 YIELD EDGES AS relationships`, stmt)

	_, err = ngql.GetSubgraph().Query()
	assert.ErrorIs(t, err, graphocean.ErrInvalidID)
}

func TestPredicate(t *testing.T) {
	degree := ngql.IntProp("follow", "degree")
	name := ngql.StringProp("player", "name")

	assert.Equal(t, "follow.degree == 3", degree.EQ(3).String())
	assert.Equal(t, "follow.degree != 3", degree.NEQ(3).String())
	assert.Equal(t, "follow.degree < 3", degree.LT(3).String())
	assert.Equal(t, "follow.degree <= 3", degree.LTE(3).String())
	assert.Equal(t, "follow.degree IN [1, 2]", degree.In(1, 2).String())
	assert.Equal(t, "follow.degree NOT IN [1]", degree.NotIn(1).String())
	assert.Equal(t, "follow.degree IS NULL", degree.IsNull().String())
	assert.Equal(t, `player.name == "Tim"`, name.EQ("Tim").String())
	assert.Equal(t, `player.name STARTS WITH "T"`, name.HasPrefix("T").String())
	assert.Equal(t, `player.name ENDS WITH "m"`, name.HasSuffix("m").String())
	assert.Equal(t, `player.name CONTAINS "i"`, name.Contains("i").String())
	assert.Equal(t, "serve.active == true", ngql.BoolProp("serve", "active").EQ(true).String())
	assert.Equal(t, "player.rating > 1.5", ngql.FloatProp("player", "rating").GT(1.5).String())
	assert.Equal(t, `player.born < date("2000-01-02")`,
		ngql.TimeProp("player", "born", field.TypeDate).LT(time.Date(2000, 1, 2, 0, 0, 0, 0, time.UTC)).String())

	p := ngql.And(degree.GT(1), ngql.Or(name.EQ("a"), ngql.Not(name.NotNull())), ngql.Predicate{})
	assert.Equal(t, `(follow.degree > 1 AND (player.name == "a" OR NOT (player.name IS NOT NULL)))`, p.String())
	assert.True(t, ngql.And().IsZero())
	assert.True(t, ngql.Not(ngql.Predicate{}).IsZero())
	assert.Equal(t, "x > 1", ngql.Or(ngql.Raw("x > 1")).String())
}
