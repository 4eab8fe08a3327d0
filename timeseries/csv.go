package timeseries

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// LoadPairCSV loads two named columns of a CSV file into a Pair.
// The first row must be a header naming the columns; every remaining row
// must carry a parseable float in both columns.
func LoadPairCSV(path, xCol, yCol string) (*Pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	pair, err := ReadPair(f, xCol, yCol)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pair, nil
}

// ReadPair reads CSV data from r and extracts the xCol and yCol columns.
func ReadPair(r io.Reader, xCol, yCol string) (*Pair, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	xIdx, yIdx := -1, -1
	for i, name := range header {
		switch name {
		case xCol:
			xIdx = i
		case yCol:
			yIdx = i
		}
	}
	if xIdx < 0 {
		return nil, fmt.Errorf("column %q not found in header %v", xCol, header)
	}
	if yIdx < 0 {
		return nil, fmt.Errorf("column %q not found in header %v", yCol, header)
	}

	var (
		xs, ys []float64
		row    int
	)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", row+2, err) // +2 for header + 1-based
		}

		// Skip completely empty lines
		if len(record) == 1 && record[0] == "" {
			continue
		}
		if len(record) != len(header) {
			return nil, fmt.Errorf("row %d: expected %d columns, got %d",
				row+2, len(header), len(record))
		}

		xv, err := strconv.ParseFloat(record[xIdx], 64)
		if err != nil {
			return nil, fmt.Errorf("parse %s at row %d (%q): %w", xCol, row+2, record[xIdx], err)
		}
		yv, err := strconv.ParseFloat(record[yIdx], 64)
		if err != nil {
			return nil, fmt.Errorf("parse %s at row %d (%q): %w", yCol, row+2, record[yIdx], err)
		}

		xs = append(xs, xv)
		ys = append(ys, yv)
		row++
	}

	if row == 0 {
		return nil, fmt.Errorf("no data rows")
	}

	return NewPair(NewNamed(xCol, xs), NewNamed(yCol, ys))
}
