// Package dataset holds one parsed tabular input: named, typed columns plus
// an ordered key-value metadata header.
//
// Column types are fixed when the dataset is built (see New); nothing
// downstream re-infers them. A Dataset is read-only once constructed.
package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind is the element type of a column.
type Kind int

const (
	Numeric Kind = iota
	Text
)

func (k Kind) String() string {
	if k == Text {
		return "text"
	}
	return "numeric"
}

// Column is one named sequence of values. Exactly one of Numbers or Strings
// is populated, according to Kind. Missing numeric cells are NaN.
type Column struct {
	Name    string
	Kind    Kind
	Numbers []float64
	Strings []string
}

// Len returns the number of values in the column.
func (c Column) Len() int {
	if c.Kind == Text {
		return len(c.Strings)
	}
	return len(c.Numbers)
}

// Dataset is one parsed input file.
type Dataset struct {
	// Source names where the dataset came from (usually a file path).
	Source   string
	columns  []Column
	metadata *Metadata
}

// New converts raw string cells into a Dataset. names gives the column
// headers in order; rows is row-major and every row must have len(names)
// cells. A column is numeric when every non-blank cell parses as a float.
func New(source string, names []string, rows [][]string, meta *Metadata) (*Dataset, error) {
	for i, r := range rows {
		if len(r) != len(names) {
			return nil, fmt.Errorf("%s: row %d has %d cells, want %d", source, i+1, len(r), len(names))
		}
	}
	cols := make([]Column, len(names))
	for j, name := range names {
		raw := make([]string, len(rows))
		for i, r := range rows {
			raw[i] = strings.TrimSpace(r[j])
		}
		cols[j] = convertColumn(name, raw)
	}
	if meta == nil {
		meta = NewMetadata()
	}
	return &Dataset{Source: source, columns: cols, metadata: meta}, nil
}

// FromColumns builds a Dataset from already typed columns. All columns must
// have the same length.
func FromColumns(source string, cols []Column, meta *Metadata) (*Dataset, error) {
	for i := 1; i < len(cols); i++ {
		if cols[i].Len() != cols[0].Len() {
			return nil, fmt.Errorf("%s: column %q has %d values, column %q has %d",
				source, cols[i].Name, cols[i].Len(), cols[0].Name, cols[0].Len())
		}
	}
	if meta == nil {
		meta = NewMetadata()
	}
	out := make([]Column, len(cols))
	copy(out, cols)
	return &Dataset{Source: source, columns: out, metadata: meta}, nil
}

func convertColumn(name string, raw []string) Column {
	nums := make([]float64, len(raw))
	for i, s := range raw {
		if s == "" {
			nums[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Column{Name: name, Kind: Text, Strings: raw}
		}
		nums[i] = v
	}
	return Column{Name: name, Kind: Numeric, Numbers: nums}
}

// NumColumns returns the column count.
func (d *Dataset) NumColumns() int { return len(d.columns) }

// NumRows returns the number of rows (0 for a dataset without columns).
func (d *Dataset) NumRows() int {
	if len(d.columns) == 0 {
		return 0
	}
	return d.columns[0].Len()
}

// Column returns the i'th column. It panics when i is out of range, like a
// slice index; callers validate first.
func (d *Dataset) Column(i int) Column { return d.columns[i] }

// ColumnNames returns the column headers in order.
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.columns))
	for i, c := range d.columns {
		names[i] = c.Name
	}
	return names
}

// ColumnIndex returns the index of the first column whose name is exactly name.
func (d *Dataset) ColumnIndex(name string) (int, bool) {
	for i, c := range d.columns {
		if c.Name == name {
			return i, true
		}
	}
	return -1, false
}

// Metadata returns the dataset's header items.
func (d *Dataset) Metadata() *Metadata { return d.metadata }

// Lookup returns the header value for key.
func (d *Dataset) Lookup(key string) (string, bool) { return d.metadata.Get(key) }
