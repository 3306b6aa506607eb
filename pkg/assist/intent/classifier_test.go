package intent

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Intent
	}{
		{"admission keyword", "How do I apply for admission?", AdmissionInfo},
		{"enroll keyword", "Can I still enroll this year?", AdmissionInfo},
		{"result keyword", "When will the result be published?", ExamResult},
		{"marks keyword", "What marks did I get?", ExamResult},
		{"salary keyword", "What is the salary of the principal?", ConfidentialFinance},
		{"budget keyword", "Show me the department budget", ConfidentialFinance},
		{"teacher keyword", "Who is the teacher for networking?", TeacherInfo},
		{"faculty keyword", "List the faculty members", TeacherInfo},
		{"student contact pair", "Give me the student contact list", StudentContact},
		{"student phone pair", "What is that student's phone number?", StudentContact},
		{"student alone is general", "How many students are there?", General},
		{"contact alone is general", "How do I contact the office?", General},
		{"no keyword", "What courses do you offer?", General},
		{"case insensitive", "ADMISSION requirements?", AdmissionInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.message); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

// Rule order matters: a message hitting several rules takes the first one.
func TestClassifyPriority(t *testing.T) {
	tests := []struct {
		message string
		want    Intent
	}{
		{"admission result for this year", AdmissionInfo},
		{"teacher salary details", ConfidentialFinance},
		{"result of the student contact survey", ExamResult},
	}

	for _, tt := range tests {
		if got := Classify(tt.message); got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.message, got, tt.want)
		}
	}
}
