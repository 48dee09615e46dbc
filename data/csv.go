package data

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// ReadRawCSV reads a track log with a header row into raw records. Columns are matched by header name;
// unknown columns are ignored and missing ones stay empty.
func ReadRawCSV(r io.Reader) ([]RawRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	column := make(map[string]int, len(header))
	for i, name := range header {
		column[strings.ToLower(strings.TrimSpace(name))] = i
	}

	field := func(row []string, name string) string {
		if i, ok := column[name]; ok && i < len(row) {
			return row[i]
		}
		return ""
	}

	var records []RawRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		records = append(records, RawRecord{
			Time:      field(row, "time"),
			Alt:       field(row, "alt"),
			Longitude: field(row, "longitude"),
			Latitude:  field(row, "latitude"),
			Segment:   field(row, "segment"),
		})
	}

	return records, nil
}

// ConvertRawCSV turns a CSV track log into the JSON raw log format.
func ConvertRawCSV(r io.Reader, w io.Writer) (int, error) {
	records, err := ReadRawCSV(r)
	if err != nil {
		return 0, err
	}

	if records == nil {
		records = []RawRecord{}
	}

	return len(records), json.NewEncoder(w).Encode(records)
}
