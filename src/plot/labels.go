package plot

import "github.com/paul-breen/xcsv-plot/src/dataset"

// AxisLabel returns the label for a resolved axis: the override when given,
// else the column name as-is. Implicit axes have no label.
func AxisLabel(r ResolvedAxis, override string) (string, bool) {
	if override != "" {
		return override, true
	}
	if r.Implicit || r.Name == "" {
		return "", false
	}
	return r.Name, true
}

// SeriesLabel returns the legend label of ds: the value of the header item
// labelKey. An empty key, a missing item or an empty value all mean the
// series is unlabelled.
func SeriesLabel(ds *dataset.Dataset, labelKey string) (string, bool) {
	if labelKey == "" {
		return "", false
	}
	v, ok := ds.Lookup(labelKey)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
