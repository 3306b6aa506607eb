package match

import (
	"fmt"
	"reflect"
	"testing"

	"campus-chatbot-be/internal/entity"
	"campus-chatbot-be/pkg/assist/keyword"
	"campus-chatbot-be/pkg/records"
)

func teacherRecord(name, subject, semester string) records.Record {
	return records.Record{
		Schema:     records.SchemaTeacher,
		Department: entity.DepartmentBscCsit,
		Fields: map[string]string{
			records.FieldTeacherName: name,
			records.FieldSubject:     subject,
			records.FieldSemester:    semester,
		},
	}
}

func TestMatchExactNameTakesPrecedence(t *testing.T) {
	recs := []records.Record{
		teacherRecord("Ram Sharma", "C Programming", "1"),
		teacherRecord("Sita Koirala", "Digital Logic", "1"),
	}
	m := NewSubstringMatcher()

	query := "Tell me about Ram Sharma"
	got := m.Match(recs, keyword.Extract(query), query)

	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	if got[0].Name() != "Ram Sharma" {
		t.Errorf("matched %q, want Ram Sharma", got[0].Name())
	}
}

// An exact name hit must skip the keyword fallback entirely, even when
// keywords would have matched other records.
func TestMatchExactPassShortCircuitsFallback(t *testing.T) {
	recs := []records.Record{
		teacherRecord("Ram Sharma", "C Programming", "1"),
		teacherRecord("Sita Koirala", "C Programming", "2"),
	}
	m := NewSubstringMatcher()

	query := "Ram Sharma programming"
	got := m.Match(recs, keyword.Extract(query), query)

	if len(got) != 1 || got[0].Name() != "Ram Sharma" {
		t.Fatalf("expected only the exact name match, got %v", names(got))
	}
}

func TestMatchPartialNameSubstring(t *testing.T) {
	recs := []records.Record{
		teacherRecord("Ram Prasad Sharma", "C Programming", "1"),
	}
	m := NewSubstringMatcher()

	// The window "ram prasad" is a substring of the stored name.
	query := "who is ram prasad"
	got := m.Match(recs, keyword.Extract(query), query)

	if len(got) != 1 {
		t.Fatalf("expected substring window to match, got %d records", len(got))
	}
}

func TestMatchSingleWordQueryHasNoNameWindows(t *testing.T) {
	recs := []records.Record{
		teacherRecord("Networking", "Computer Networks", "3"),
	}
	m := NewSubstringMatcher()

	got := m.Match(recs, keyword.Extract("networking"), "networking")

	// No windows, so the keyword fallback runs and still finds the record.
	if len(got) != 1 {
		t.Fatalf("expected keyword fallback match, got %d records", len(got))
	}
}

func TestMatchKeywordFallbackWithSemester(t *testing.T) {
	recs := []records.Record{
		teacherRecord("Ram Sharma", "C Programming", "1"),
		teacherRecord("Sita Koirala", "Digital Logic", "1"),
		teacherRecord("Hari Thapa", "Data Structures", "3"),
	}
	m := NewSubstringMatcher()

	query := "Who teaches C Programming in first semester?"
	got := m.Match(recs, keyword.Extract(query), query)

	// "programming" hits the first record; "first" pulls in every
	// semester-1 record; dedup folds the overlap.
	want := []string{"Ram Sharma", "Sita Koirala"}
	if !reflect.DeepEqual(names(got), want) {
		t.Errorf("got %v, want %v", names(got), want)
	}
}

// Only the first semester hint branch fires, even when the keyword set
// mentions several semesters.
func TestMatchSemesterChainIsMutuallyExclusive(t *testing.T) {
	recs := []records.Record{
		teacherRecord("A One", "X", "1"),
		teacherRecord("B Two", "Y", "2"),
	}
	m := NewSubstringMatcher()

	query := "subjects in first and second semester"
	got := m.Match(recs, keyword.Extract(query), query)

	if !reflect.DeepEqual(names(got), []string{"A One"}) {
		t.Errorf("got %v, want only the semester-1 record", names(got))
	}
}

func TestMatchDedupIgnoresDepartment(t *testing.T) {
	a := teacherRecord("Ram Sharma", "C Programming", "1")
	b := teacherRecord("Ram Sharma", "C Programming", "1")
	b.Department = entity.DepartmentBit

	m := NewSubstringMatcher()
	got := m.Match([]records.Record{a, b}, []string{"programming"}, "programming")

	if len(got) != 1 {
		t.Errorf("records identical up to department must collapse, got %d", len(got))
	}
}

func TestMatchCapsResults(t *testing.T) {
	var recs []records.Record
	for i := 0; i < 12; i++ {
		recs = append(recs, teacherRecord(fmt.Sprintf("Teacher %d", i), "Math", "2"))
	}
	m := NewSubstringMatcher()

	got := m.Match(recs, []string{"math"}, "math")
	if len(got) != MaxResults {
		t.Errorf("expected cap of %d, got %d", MaxResults, len(got))
	}
}

func TestMatchIdempotent(t *testing.T) {
	recs := []records.Record{
		teacherRecord("Ram Sharma", "C Programming", "1"),
		teacherRecord("Hari Thapa", "Data Structures", "3"),
	}
	m := NewSubstringMatcher()

	query := "data structures third semester"
	kws := keyword.Extract(query)
	first := m.Match(recs, kws, query)
	second := m.Match(recs, kws, query)

	if !reflect.DeepEqual(names(first), names(second)) {
		t.Errorf("matcher not stable: %v vs %v", names(first), names(second))
	}
}

func TestMatchEmptyInputs(t *testing.T) {
	m := NewSubstringMatcher()
	if got := m.Match(nil, []string{"anything"}, "anything"); got != nil {
		t.Errorf("no records must match nothing, got %v", got)
	}
	recs := []records.Record{teacherRecord("Ram Sharma", "C Programming", "1")}
	if got := m.Match(recs, nil, ""); len(got) != 0 {
		t.Errorf("no keywords and no windows must match nothing, got %v", names(got))
	}
}

func names(recs []records.Record) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Name())
	}
	return out
}
