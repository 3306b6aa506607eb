package keyword

import (
	"reflect"
	"testing"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "drops stop words and short tokens",
			query: "Tell me about the fee structure",
			want:  []string{"fee", "structure"},
		},
		{
			name:  "lowercases tokens",
			query: "Who teaches C Programming",
			want:  []string{"who", "teaches", "programming"},
		},
		{
			name:  "splits on punctuation",
			query: "result,grade;marks",
			want:  []string{"result", "grade", "marks"},
		},
		{
			name:  "dedupes preserving first occurrence order",
			query: "semester semester exam Semester",
			want:  []string{"semester", "exam"},
		},
		{
			name:  "empty query",
			query: "",
			want:  []string{},
		},
		{
			name:  "all filtered",
			query: "is of in at",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.query)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestExtractIsPure(t *testing.T) {
	query := "who teaches networking in third semester"
	first := Extract(query)
	second := Extract(query)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Extract not stable: %v vs %v", first, second)
	}
}
