package plot

import "github.com/paul-breen/xcsv-plot/src/dataset"

// ResolvedAxis is the column chosen for one axis of one dataset. When
// Implicit is set (x only) the values are the row positions 0..N-1 and
// there is no column name.
type ResolvedAxis struct {
	Implicit bool
	Index    int
	Name     string
	Values   []float64
}

// ResolveAxis picks the column for axis from ds according to sel:
//   - an index must satisfy 0 <= index < NumColumns
//   - a label must match a column name exactly
//   - unspecified y means the last column; unspecified x means row positions
//
// The selected column must be numeric.
func ResolveAxis(ds *dataset.Dataset, sel AxisSelector, axis AxisKind) (ResolvedAxis, error) {
	fail := func(err error) (ResolvedAxis, error) {
		return ResolvedAxis{}, &AxisError{Source: ds.Source, Axis: axis, Selector: sel, NumColumns: ds.NumColumns(), Err: err}
	}

	var idx int
	if i, ok := sel.Index(); ok {
		if i < 0 || i >= ds.NumColumns() {
			return fail(ErrAxisOutOfRange)
		}
		idx = i
	} else if l, ok := sel.Label(); ok {
		i, found := ds.ColumnIndex(l)
		if !found {
			return fail(ErrAxisLabelNotFound)
		}
		idx = i
	} else if axis == AxisX {
		return implicitAxis(ds.NumRows()), nil
	} else {
		idx = ds.NumColumns() - 1
		if idx < 0 {
			return fail(ErrAxisOutOfRange)
		}
	}

	col := ds.Column(idx)
	if col.Kind != dataset.Numeric {
		return fail(ErrColumnNotNumeric)
	}
	values := make([]float64, len(col.Numbers))
	copy(values, col.Numbers)
	return ResolvedAxis{Index: idx, Name: col.Name, Values: values}, nil
}

func implicitAxis(n int) ResolvedAxis {
	values := make([]float64, n)
	for i := range values {
		values[i] = float64(i)
	}
	return ResolvedAxis{Implicit: true, Index: -1, Values: values}
}
