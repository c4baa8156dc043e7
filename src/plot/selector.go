package plot

import "fmt"

// AxisKind names the axis being resolved.
type AxisKind int

const (
	AxisX AxisKind = iota
	AxisY
)

func (a AxisKind) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

type selectorKind int

const (
	unspecified selectorKind = iota
	byIndex
	byLabel
)

// AxisSelector picks the column for an axis: by zero-based index, by exact
// column name, or not at all. The zero value is unspecified.
type AxisSelector struct {
	kind  selectorKind
	index int
	label string
}

// ByIndex selects a column by zero-based index.
func ByIndex(i int) AxisSelector { return AxisSelector{kind: byIndex, index: i} }

// ByLabel selects the first column whose name is exactly label.
func ByLabel(label string) AxisSelector { return AxisSelector{kind: byLabel, label: label} }

// Unspecified leaves the axis to the default policy.
func Unspecified() AxisSelector { return AxisSelector{} }

func (s AxisSelector) Index() (int, bool)    { return s.index, s.kind == byIndex }
func (s AxisSelector) Label() (string, bool) { return s.label, s.kind == byLabel }
func (s AxisSelector) IsSpecified() bool     { return s.kind != unspecified }

func (s AxisSelector) String() string {
	switch s.kind {
	case byIndex:
		return fmt.Sprintf("index %d", s.index)
	case byLabel:
		return fmt.Sprintf("label %q", s.label)
	}
	return "unspecified"
}
