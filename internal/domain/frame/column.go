package frame

import "fmt"

type ColumnType string

const (
	ColumnTypeInt   ColumnType = "INT"
	ColumnTypeFloat ColumnType = "FLOAT"
	ColumnTypeText  ColumnType = "TEXT"
)

// Column is a named vector of values. Only the slice matching Type is populated.
type Column struct {
	Name   string
	Type   ColumnType
	Ints   []int64
	Floats []float64
	Texts  []string

	// Valid marks non-null positions. A nil mask means every value is present.
	Valid []bool
}

func NewIntColumn(name string, values []int64) *Column {
	return &Column{Name: name, Type: ColumnTypeInt, Ints: values}
}

func NewFloatColumn(name string, values []float64) *Column {
	return &Column{Name: name, Type: ColumnTypeFloat, Floats: values}
}

func NewTextColumn(name string, values []string) *Column {
	return &Column{Name: name, Type: ColumnTypeText, Texts: values}
}

// Len returns the number of values in the column
func (c *Column) Len() int {
	switch c.Type {
	case ColumnTypeInt:
		return len(c.Ints)
	case ColumnTypeFloat:
		return len(c.Floats)
	case ColumnTypeText:
		return len(c.Texts)
	}
	return 0
}

// IsNull reports whether position i holds no value
func (c *Column) IsNull(i int) bool {
	return c.Valid != nil && !c.Valid[i]
}

// SetNull marks position i as null, allocating the validity mask on first use.
func (c *Column) SetNull(i int) {
	if c.Valid == nil {
		c.Valid = make([]bool, c.Len())
		for j := range c.Valid {
			c.Valid[j] = true
		}
	}
	c.Valid[i] = false
}

// NullCount returns the number of null positions
func (c *Column) NullCount() int {
	if c.Valid == nil {
		return 0
	}
	n := 0
	for _, ok := range c.Valid {
		if !ok {
			n++
		}
	}
	return n
}

// Numeric reports whether the column can feed arithmetic aggregations
func (c *Column) Numeric() bool {
	return c.Type == ColumnTypeInt || c.Type == ColumnTypeFloat
}

// Float returns position i widened to float64. Only valid for numeric columns.
func (c *Column) Float(i int) float64 {
	if c.Type == ColumnTypeInt {
		return float64(c.Ints[i])
	}
	return c.Floats[i]
}

// Value returns position i as an interface value, or nil when null.
func (c *Column) Value(i int) any {
	if c.IsNull(i) {
		return nil
	}
	switch c.Type {
	case ColumnTypeInt:
		return c.Ints[i]
	case ColumnTypeFloat:
		return c.Floats[i]
	case ColumnTypeText:
		return c.Texts[i]
	}
	return nil
}

// Gather builds a new column holding the values at the given positions, in order.
func (c *Column) Gather(indices []int) *Column {
	out := &Column{Name: c.Name, Type: c.Type}
	switch c.Type {
	case ColumnTypeInt:
		out.Ints = make([]int64, len(indices))
		for i, idx := range indices {
			out.Ints[i] = c.Ints[idx]
		}
	case ColumnTypeFloat:
		out.Floats = make([]float64, len(indices))
		for i, idx := range indices {
			out.Floats[i] = c.Floats[idx]
		}
	case ColumnTypeText:
		out.Texts = make([]string, len(indices))
		for i, idx := range indices {
			out.Texts[i] = c.Texts[idx]
		}
	}
	if c.Valid != nil {
		for i, idx := range indices {
			if !c.Valid[idx] {
				out.SetNull(i)
			}
		}
	}
	return out
}

func (c *Column) String() string {
	return fmt.Sprintf("%s %s[%d]", c.Name, c.Type, c.Len())
}
