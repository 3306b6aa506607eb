package records

import (
	"encoding/csv"
	"os"

	"campus-chatbot-be/internal/entity"
)

// LoadCSV reads one department CSV into records. The first row is the
// header; column names are normalized before any record is built. Rows
// with fewer cells than headers are padded implicitly by buildRecord.
func LoadCSV(path string, schema Schema, department entity.Department) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, nil
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = NormalizeKey(h)
	}

	out := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if rec, ok := buildRecord(headers, row, schema, department); ok {
			out = append(out, rec)
		}
	}
	return out, nil
}
