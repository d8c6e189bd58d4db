package reader

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// ReadCSV reads a CSV file into generic rows.
//
// The first record is the header; each later record becomes one row map.
// An empty cell is a missing value (absent from the row map). Cells that
// parse as a float become float64 so the frame package classifies the
// column as numeric; everything else stays a string.
func ReadCSV(path string) ([]map[string]interface{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv file %s has no header row", path)
	}

	header := records[0]
	rows := make([]map[string]interface{}, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]interface{}, len(header))
		for i, name := range header {
			if i >= len(record) || record[i] == "" {
				continue // missing cell
			}
			if v, err := strconv.ParseFloat(record[i], 64); err == nil {
				row[name] = v
			} else {
				row[name] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
