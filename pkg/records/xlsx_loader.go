package records

import (
	"github.com/xuri/excelize/v2"

	"campus-chatbot-be/internal/entity"
)

// LoadXLSX reads the first sheet of an Excel workbook into records.
// Student rosters are maintained as .xlsx exports, so only the first
// sheet is considered; additional sheets hold manual notes.
func LoadXLSX(path string, schema Schema, department entity.Department) ([]Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	rows, err := f.GetRows(sheets[0])
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
