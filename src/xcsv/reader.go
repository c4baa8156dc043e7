// Package xcsv reads extended CSV files into datasets.
//
// An extended CSV file starts with a header section of lines prefixed by
// '#'. Each header line is either "key: value" or a continuation of the
// previous key's value. A continuation that itself contains ": " can be
// wrapped in double quotes. The first non-header record holds the column
// names and the remaining records hold the data:
//
//	# id: 1
//	# title: The title
//	time (year) [a],depth (m)
//	2012,0.575
//	2011,1.125
package xcsv

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/paul-breen/xcsv-plot/src/dataset"
)

// ErrNoColumnHeader is returned when a file has no column header record.
var ErrNoColumnHeader = errors.New("no column header record")

// ReadFile reads one dataset, choosing the format from the file extension
// (.xlsx is read as a workbook, anything else as extended CSV).
func ReadFile(path string) (*dataset.Dataset, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return ReadXLSX(path, "")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, path)
}

// ReadFiles reads every path in order, stopping at the first failure.
func ReadFiles(paths []string) ([]*dataset.Dataset, error) {
	out := make([]*dataset.Dataset, 0, len(paths))
	for _, p := range paths {
		ds, err := ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		out = append(out, ds)
	}
	return out, nil
}

// Read parses an extended CSV stream. source is recorded on the dataset and
// used in error messages.
func Read(r io.Reader, source string) (*dataset.Dataset, error) {
	br := bufio.NewReader(r)
	hp := newHeaderParser()
	var body bytes.Buffer
	lineNo := 0
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			lineNo++
			trimmed := strings.TrimSpace(line)
			switch {
			case trimmed == "":
			case isHeaderLine(trimmed):
				if perr := hp.parseLine(trimmed); perr != nil {
					return nil, fmt.Errorf("%s:%d: %w", source, lineNo, perr)
				}
			default:
				body.WriteString(line)
				if _, cerr := io.Copy(&body, br); cerr != nil {
					return nil, cerr
				}
				err = io.EOF
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	cr := csv.NewReader(&body)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %w", source, ErrNoColumnHeader)
	}
	names := make([]string, len(records[0]))
	for i, n := range records[0] {
		names[i] = strings.TrimSpace(n)
	}
	return dataset.New(source, names, records[1:], hp.meta)
}

func isHeaderLine(s string) bool {
	return strings.HasPrefix(s, "#") || strings.HasPrefix(s, `"#`)
}

type headerParser struct {
	meta    *dataset.Metadata
	lastKey string
}

func newHeaderParser() *headerParser {
	return &headerParser{meta: dataset.NewMetadata()}
}

// parseLine consumes one header line, already trimmed.
func (h *headerParser) parseLine(line string) error {
	if strings.HasPrefix(line, `"`) {
		// The whole line was quoted as a CSV field.
		cr := csv.NewReader(strings.NewReader(line))
		cr.LazyQuotes = true
		rec, err := cr.Read()
		if err != nil {
			return fmt.Errorf("header line: %w", err)
		}
		line = rec[0]
	}
	return h.parseContent(strings.TrimSpace(strings.TrimPrefix(line, "#")))
}

func (h *headerParser) parseContent(content string) error {
	if content == "" {
		return nil
	}
	if len(content) >= 2 && strings.HasPrefix(content, `"`) && strings.HasSuffix(content, `"`) {
		return h.continuation(content[1 : len(content)-1])
	}
	if key, value, ok := splitItem(content); ok {
		h.meta.Append(key, value)
		h.lastKey = key
		return nil
	}
	return h.continuation(content)
}

func (h *headerParser) continuation(s string) error {
	if h.lastKey == "" {
		return fmt.Errorf("header continuation %q has no preceding key", s)
	}
	h.meta.Append(h.lastKey, s)
	return nil
}

// splitItem splits "key: value" (or "key:" with an empty value).
func splitItem(s string) (string, string, bool) {
	if strings.HasSuffix(s, ":") && !strings.Contains(s, " ") {
		return strings.TrimSuffix(s, ":"), "", true
	}
	i := strings.Index(s, ": ")
	if i <= 0 {
		return "", "", false
	}
	return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+2:]), true
}
