package plot

import (
	"errors"
	"fmt"
)

var (
	ErrAxisOutOfRange    = errors.New("column index out of range")
	ErrAxisLabelNotFound = errors.New("column label not found")
	ErrColumnNotNumeric  = errors.New("column is not numeric")
	ErrStyleParse        = errors.New("plot options must be a JSON object of numbers, strings or booleans")
	ErrNoDatasets        = errors.New("no datasets to plot")
	ErrBackgroundImage   = errors.New("background image unavailable")
	ErrOutputWrite       = errors.New("cannot write output")
)

// AxisError reports why an axis could not be resolved for one dataset.
// Err is one of ErrAxisOutOfRange, ErrAxisLabelNotFound or ErrColumnNotNumeric.
type AxisError struct {
	Source     string
	Axis       AxisKind
	Selector   AxisSelector
	NumColumns int
	Err        error
}

func (e *AxisError) Error() string {
	prefix := e.Axis.String() + " axis"
	if e.Source != "" {
		prefix = e.Source + ": " + prefix
	}
	switch {
	case errors.Is(e.Err, ErrAxisOutOfRange):
		i, _ := e.Selector.Index()
		return fmt.Sprintf("%s: column index %d out of range (dataset has %d columns)", prefix, i, e.NumColumns)
	case errors.Is(e.Err, ErrAxisLabelNotFound):
		l, _ := e.Selector.Label()
		return fmt.Sprintf("%s: no column labelled %q", prefix, l)
	}
	return fmt.Sprintf("%s: %s: %v", prefix, e.Selector, e.Err)
}

func (e *AxisError) Unwrap() error { return e.Err }

// StyleError reports malformed style overrides. It matches ErrStyleParse.
type StyleError struct {
	Input string
	Err   error
}

func (e *StyleError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v: %q", ErrStyleParse, e.Input)
	}
	return fmt.Sprintf("%v: %q: %v", ErrStyleParse, e.Input, e.Err)
}

func (e *StyleError) Unwrap() error { return e.Err }

func (e *StyleError) Is(target error) bool { return target == ErrStyleParse }

// BackgroundError reports a background image that could not be loaded. It is
// never fatal; the plot is produced without the background.
type BackgroundError struct {
	Path string
	Err  error
}

func (e *BackgroundError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrBackgroundImage, e.Path, e.Err)
}

func (e *BackgroundError) Unwrap() error { return e.Err }

func (e *BackgroundError) Is(target error) bool { return target == ErrBackgroundImage }

// OutputError reports a failure to serialize or display the figure.
type OutputError struct {
	Path string
	Err  error
}

func (e *OutputError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%v: %v", ErrOutputWrite, e.Err)
	}
	return fmt.Sprintf("%v: %s: %v", ErrOutputWrite, e.Path, e.Err)
}

func (e *OutputError) Unwrap() error { return e.Err }

func (e *OutputError) Is(target error) bool { return target == ErrOutputWrite }
