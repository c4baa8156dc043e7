package plot

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ValueKind is the type of a style property value.
type ValueKind int

const (
	NumberValue ValueKind = iota
	StringValue
	BoolValue
)

// Value is one style property value: a number, a string or a boolean.
type Value struct {
	kind ValueKind
	num  float64
	str  string
	b    bool
}

func Number(f float64) Value { return Value{kind: NumberValue, num: f} }
func String(s string) Value  { return Value{kind: StringValue, str: s} }
func Bool(b bool) Value      { return Value{kind: BoolValue, b: b} }

func (v Value) Kind() ValueKind { return v.kind }

// Float returns the number held by v.
func (v Value) Float() (float64, bool) { return v.num, v.kind == NumberValue }

// Text returns the string held by v.
func (v Value) Text() (string, bool) { return v.str, v.kind == StringValue }

// Boolean returns the boolean held by v.
func (v Value) Boolean() (bool, bool) { return v.b, v.kind == BoolValue }

func (v Value) String() string {
	switch v.kind {
	case NumberValue:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case BoolValue:
		return strconv.FormatBool(v.b)
	}
	return strconv.Quote(v.str)
}

// Style maps style property names to values. Property names are opaque to
// this package apart from the aliases folded by CanonicalKey.
type Style map[string]Value

// Get looks up key under its long name, then under any of its aliases.
func (s Style) Get(key string) (Value, bool) {
	key = CanonicalKey(key)
	if v, ok := s[key]; ok {
		return v, true
	}
	for alias, long := range keyAliases {
		if long != key {
			continue
		}
		if v, ok := s[alias]; ok {
			return v, true
		}
	}
	return Value{}, false
}

// Has reports whether key (or one of its aliases) is set.
func (s Style) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

func (s Style) String() string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + s[k].String()
	}
	return "{" + strings.Join(parts, " ") + "}"
}

var keyAliases = map[string]string{
	"c":  "color",
	"ls": "linestyle",
	"lw": "linewidth",
	"ms": "markersize",
}

// CanonicalKey folds the short property aliases (c, ls, lw, ms) onto their
// long names. Other keys are returned unchanged.
func CanonicalKey(k string) string {
	if long, ok := keyAliases[k]; ok {
		return long
	}
	return k
}

// ScatterPreset draws points without connecting lines.
func ScatterPreset() Style {
	return Style{
		"marker":    String("."),
		"linestyle": String(""),
	}
}

// ParseStyle parses a JSON object of style overrides. An empty input means
// no overrides. Anything other than an object whose values are numbers,
// strings or booleans fails with a *StyleError.
func ParseStyle(raw string) (Style, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var m map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil, &StyleError{Input: raw, Err: err}
	}
	if m == nil {
		return nil, &StyleError{Input: raw, Err: fmt.Errorf("not an object")}
	}
	out := make(Style, len(m))
	for k, v := range m {
		switch tv := v.(type) {
		case float64:
			out[k] = Number(tv)
		case string:
			out[k] = String(tv)
		case bool:
			out[k] = Bool(tv)
		default:
			return nil, &StyleError{Input: raw, Err: fmt.Errorf("property %q has unsupported value %v", k, v)}
		}
	}
	return out, nil
}

// Compose builds the effective style: the scatter preset when scatter is
// set, then every override replacing the property of the same canonical name.
func Compose(scatter bool, overrides Style) Style {
	eff := Style{}
	if scatter {
		for k, v := range ScatterPreset() {
			eff[k] = v
		}
	}
	// Aliases first so an explicit long name wins when both spellings are given.
	for k, v := range overrides {
		if CanonicalKey(k) != k {
			eff[CanonicalKey(k)] = v
		}
	}
	for k, v := range overrides {
		if CanonicalKey(k) == k {
			eff[k] = v
		}
	}
	return eff
}
