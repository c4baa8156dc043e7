package xcsv

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/paul-breen/xcsv-plot/src/dataset"
)

// ReadXLSX reads a dataset from a workbook sheet laid out like an extended
// CSV file: leading rows whose first cell starts with '#' form the header,
// the next row names the columns, and the remaining rows hold data. An empty
// sheet name selects the first sheet.
func ReadXLSX(path, sheet string) (*dataset.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%s: sheet %q: %w", path, sheet, err)
	}

	hp := newHeaderParser()
	i := 0
	for ; i < len(rows); i++ {
		first := ""
		if len(rows[i]) > 0 {
			first = strings.TrimSpace(rows[i][0])
		}
		if first == "" && len(rows[i]) <= 1 {
			continue
		}
		if !strings.HasPrefix(first, "#") {
			break
		}
		if err := hp.parseContent(strings.TrimSpace(strings.TrimPrefix(first, "#"))); err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", path, i+1, err)
		}
	}
	if i >= len(rows) {
		return nil, fmt.Errorf("%s: %w", path, ErrNoColumnHeader)
	}

	names := make([]string, len(rows[i]))
	for j, n := range rows[i] {
		names[j] = strings.TrimSpace(n)
	}
	// GetRows trims trailing empty cells, so pad every data row back out.
	data := make([][]string, 0, len(rows)-i-1)
	for _, r := range rows[i+1:] {
		if len(r) > len(names) {
			return nil, fmt.Errorf("%s: data row has %d cells, want %d", path, len(r), len(names))
		}
		padded := make([]string, len(names))
		copy(padded, r)
		data = append(data, padded)
	}
	return dataset.New(path, names, data, hp.meta)
}
