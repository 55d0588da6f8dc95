package dialect

// ResultSet is the row-set of a query.
type ResultSet struct {
	Columns []string
	Rows    [][]Value
}

// NewResultSet returns a result set with the given columns and rows.
// Each row is converted with ValueOf.
func NewResultSet(columns []string, rows ...[]any) *ResultSet {
	rs := &ResultSet{Columns: columns, Rows: make([][]Value, 0, len(rows))}
	for _, r := range rows {
		row := make([]Value, len(r))
		for i, v := range r {
			row[i] = ValueOf(v)
		}
		rs.Rows = append(rs.Rows, row)
	}
	return rs
}

// Len returns the number of rows.
func (rs *ResultSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.Rows)
}

// IsEmpty reports whether the result set has no rows.
func (rs *ResultSet) IsEmpty() bool {
	return rs.Len() == 0
}

// Records returns the rows as records addressable by column name.
func (rs *ResultSet) Records() []Record {
	if rs.Len() == 0 {
		return nil
	}
	index := make(map[string]int, len(rs.Columns))
	for i, c := range rs.Columns {
		if _, ok := index[c]; !ok {
			index[c] = i
		}
	}
	records := make([]Record, len(rs.Rows))
	for i, row := range rs.Rows {
		records[i] = Record{index: index, values: row}
	}
	return records
}

// Column returns the values of the named column.
func (rs *ResultSet) Column(name string) []Value {
	at := -1
	for i, c := range rs.Columns {
		if c == name {
			at = i
			break
		}
	}
	if at < 0 {
		return nil
	}
	values := make([]Value, 0, len(rs.Rows))
	for _, row := range rs.Rows {
		if at < len(row) {
			values = append(values, row[at])
		}
	}
	return values
}

// Record is one row of a result set.
type Record struct {
	index  map[string]int
	values []Value
}

// Get returns the cell of the named column.
func (r Record) Get(column string) (Value, bool) {
	i, ok := r.index[column]
	if !ok || i >= len(r.values) {
		return Value{}, false
	}
	return r.values[i], true
}

// At returns the cell at column index i, or null when out of range.
func (r Record) At(i int) Value {
	if i < 0 || i >= len(r.values) {
		return Value{}
	}
	return r.values[i]
}

// Len returns the number of cells.
func (r Record) Len() int {
	return len(r.values)
}

// RecordOf returns a record of values addressed by the given columns.
func RecordOf(columns []string, values []Value) Record {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, ok := index[c]; !ok {
			index[c] = i
		}
	}
	return Record{index: index, values: values}
}
