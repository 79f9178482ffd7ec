package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Record is one row of the HDB carpark reference dataset. X and Y are
// SVY21 easting/northing in meters; nil when the cell was empty or not
// numeric.
type Record struct {
	CarParkNo string
	Address   string
	X         *float64
	Y         *float64
	Type      string
}

// Column names fixed by the upstream dataset contract.
const (
	colCarParkNo = "car_park_no"
	colAddress   = "address"
	colXCoord    = "x_coord"
	colYCoord    = "y_coord"
	colType      = "car_park_type"
)

// Load reads the reference dataset from a CSV file at the given path.
func Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %q: %w", path, err)
	}
	defer f.Close()

	records, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %q: %w", path, err)
	}
	return records, nil
}

// Read parses header-keyed CSV records from r. Column order is taken
// from the header row, so reordered exports still load. Rows that fail
// CSV-level parsing are an error; rows that merely lack fields are kept
// with nil coordinates and filtered out by the reconciler.
func Read(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := index[colCarParkNo]; !ok {
		return nil, fmt.Errorf("missing required column %q", colCarParkNo)
	}

	var records []Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		records = append(records, Record{
			CarParkNo: cell(row, index, colCarParkNo),
			Address:   cell(row, index, colAddress),
			X:         numericCell(row, index, colXCoord),
			Y:         numericCell(row, index, colYCoord),
			Type:      cell(row, index, colType),
		})
	}
	return records, nil
}

func cell(row []string, index map[string]int, name string) string {
	i, ok := index[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func numericCell(row []string, index map[string]int, name string) *float64 {
	s := cell(row, index, name)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
