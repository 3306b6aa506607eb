package records

import "testing"

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Name of Teacher", FieldTeacherName},
		{"Nameof students", FieldStudentName},
		{"Name_of_student", FieldStudentName},
		{"Student Name", FieldStudentName},
		{"Semester ", FieldSemester},
		{"SEM", FieldSemester},
		{"Phone Number", FieldPhone},
		{"Contact-Number", FieldPhone},
		{"Dept.", FieldDepartment},
		{"Subject", FieldSubject},
		{"  Religion  ", FieldReligion},
		{"Some Unknown Column", "some_unknown_column"},
	}

	for _, tt := range tests {
		if got := NormalizeKey(tt.raw); got != tt.want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestCleanValue(t *testing.T) {
	tests := []struct {
		raw    string
		want   string
		wantOK bool
	}{
		{"Ram Sharma", "Ram Sharma", true},
		{"  padded  ", "padded", true},
		{"", "", false},
		{"   ", "", false},
		{"nan", "", false},
		{"NaN", "", false},
		{"nancy", "nancy", true},
	}

	for _, tt := range tests {
		got, ok := cleanValue(tt.raw)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("cleanValue(%q) = (%q, %v), want (%q, %v)", tt.raw, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestBuildRecordSkipsEmptyRows(t *testing.T) {
	headers := []string{FieldTeacherName, FieldSubject}

	if _, ok := buildRecord(headers, []string{"", "nan"}, SchemaTeacher, "BIT"); ok {
		t.Error("a row with no usable cells must be dropped")
	}

	rec, ok := buildRecord(headers, []string{"Ram Sharma", ""}, SchemaTeacher, "BIT")
	if !ok {
		t.Fatal("row with one usable cell must survive")
	}
	if _, present := rec.Get(FieldSubject); present {
		t.Error("empty cells must be absent keys, not empty strings")
	}
	if rec.Name() != "Ram Sharma" {
		t.Errorf("Name() = %q, want Ram Sharma", rec.Name())
	}
}

func TestBuildRecordIgnoresShortRows(t *testing.T) {
	headers := []string{FieldTeacherName, FieldSubject, FieldSemester}
	rec, ok := buildRecord(headers, []string{"Ram Sharma"}, SchemaTeacher, "BIT")
	if !ok {
		t.Fatal("short row with a usable cell must survive")
	}
	if len(rec.Fields) != 1 {
		t.Errorf("expected 1 field, got %d", len(rec.Fields))
	}
}
