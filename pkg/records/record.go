package records

import (
	"strings"

	"campus-chatbot-be/internal/entity"
)

// Schema tags which shape of tabular source a record came from. Teacher
// rows and student rows carry different columns, so the designated name
// field depends on the schema.
type Schema string

const (
	SchemaTeacher Schema = "teacher"
	SchemaStudent Schema = "student"
)

// Normalized column names. Source files spell these inconsistently
// ("Nameof students", "Semester ", ...); NormalizeKey folds every variant
// onto these constants at load time.
const (
	FieldTeacherName = "name_of_teacher"
	FieldStudentName = "name_of_student"
	FieldSubject     = "subject"
	FieldSemester    = "semester"
	FieldDepartment  = "department"
	FieldPhone       = "phone"
	FieldFamily      = "family"
	FieldReligion    = "religion"
	FieldCaste       = "caste"
)

// Record is one structured entry from a department source file: a mapping
// from normalized column name to an optional scalar. Absent columns are
// absent keys, never empty strings.
type Record struct {
	Schema     Schema
	Department entity.Department
	Fields     map[string]string
}

// Get returns the value for a normalized column name.
func (r Record) Get(key string) (string, bool) {
	v, ok := r.Fields[key]
	return v, ok
}

// Name returns the designated name field for the record's schema, or the
// empty string when the column is absent.
func (r Record) Name() string {
	key := FieldTeacherName
	if r.Schema == SchemaStudent {
		key = FieldStudentName
	}
	return r.Fields[key]
}

// Semester returns the trimmed semester value.
func (r Record) Semester() string {
	return strings.TrimSpace(r.Fields[FieldSemester])
}
