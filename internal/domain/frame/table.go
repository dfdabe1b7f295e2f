package frame

import "fmt"

// Field describes one column of a table schema
type Field struct {
	Name string
	Type ColumnType
}

// Table is an immutable, column-oriented in-memory dataset.
// All columns have the same length.
type Table struct {
	Name    string
	columns []*Column
	index   map[string]int
	rows    int
}

// New assembles a table from columns, checking that names are unique
// and that every column has the same length.
func New(name string, columns ...*Column) (*Table, error) {
	t := &Table{
		Name:    name,
		columns: make([]*Column, 0, len(columns)),
		index:   make(map[string]int, len(columns)),
	}

	for i, col := range columns {
		if col == nil {
			return nil, fmt.Errorf("table %s: column %d is nil", name, i)
		}
		if _, dup := t.index[col.Name]; dup {
			return nil, fmt.Errorf("table %s: duplicate column %q", name, col.Name)
		}
		if i == 0 {
			t.rows = col.Len()
		} else if col.Len() != t.rows {
			return nil, fmt.Errorf("table %s: column %q has %d values, expected %d",
				name, col.Name, col.Len(), t.rows)
		}
		t.index[col.Name] = len(t.columns)
		t.columns = append(t.columns, col)
	}

	return t, nil
}

func (t *Table) NumRows() int {
	return t.rows
}

func (t *Table) NumCols() int {
	return len(t.columns)
}

// Shape returns (rows, columns)
func (t *Table) Shape() (int, int) {
	return t.rows, len(t.columns)
}

// Column looks up a column by name
func (t *Table) Column(name string) (*Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.columns[i], true
}

// Columns returns the columns in schema order
func (t *Table) Columns() []*Column {
	out := make([]*Column, len(t.columns))
	copy(out, t.columns)
	return out
}

func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.columns))
	for i, col := range t.columns {
		names[i] = col.Name
	}
	return names
}

func (t *Table) Schema() []Field {
	fields := make([]Field, len(t.columns))
	for i, col := range t.columns {
		fields[i] = Field{Name: col.Name, Type: col.Type}
	}
	return fields
}

// Select returns a table sharing the named columns, in the order given.
func (t *Table) Select(names ...string) (*Table, error) {
	cols := make([]*Column, 0, len(names))
	for _, name := range names {
		col, ok := t.Column(name)
		if !ok {
			return nil, fmt.Errorf("table %s: column %q not found", t.Name, name)
		}
		cols = append(cols, col)
	}
	out, err := New(t.Name, cols...)
	if err != nil {
		return nil, err
	}
	// keep the row count for zero-column projections
	out.rows = t.rows
	return out, nil
}
