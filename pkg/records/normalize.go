package records

import (
	"regexp"
	"strings"

	"campus-chatbot-be/internal/entity"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// keyVariants folds the column spellings observed in real source files
// onto the normalized constants. Applied after the mechanical cleanup in
// NormalizeKey, so entries here are already lowercase snake_case.
var keyVariants = map[string]string{
	"nameof_students":  FieldStudentName,
	"name_of_students": FieldStudentName,
	"student_name":     FieldStudentName,
	"teacher_name":     FieldTeacherName,
	"name_of_teachers": FieldTeacherName,
	"sem":              FieldSemester,
	"phone_number":     FieldPhone,
	"contact_number":   FieldPhone,
	"family_info":      FieldFamily,
	"dept":             FieldDepartment,
}

// NormalizeKey maps a raw column header to its canonical snake_case name.
// Normalization happens once at load time; query-time code only ever sees
// canonical keys.
func NormalizeKey(raw string) string {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = nonAlnum.ReplaceAllString(key, "_")
	key = strings.Trim(key, "_")
	if canonical, ok := keyVariants[key]; ok {
		return canonical
	}
	return key
}

// cleanValue trims a raw cell. Pandas-exported sheets leave literal "nan"
// in empty cells; treat those as absent.
func cleanValue(raw string) (string, bool) {
	v := strings.TrimSpace(raw)
	if v == "" || strings.EqualFold(v, "nan") {
		return "", false
	}
	return v, true
}

func buildRecord(headers []string, row []string, schema Schema, department entity.Department) (Record, bool) {
	fields := make(map[string]string, len(headers))
	for i, header := range headers {
		if header == "" || i >= len(row) {
			continue
		}
		if v, ok := cleanValue(row[i]); ok {
			fields[header] = v
		}
	}
	if len(fields) == 0 {
		return Record{}, false
	}
	return Record{Schema: schema, Department: department, Fields: fields}, true
}
