package intent

import "strings"

// Intent is the coarse topic label assigned to a query for gating
// purposes. The actual answer always comes from the generation agent;
// the label only drives the access decision.
type Intent string

const (
	AdmissionInfo       Intent = "admission_info"
	ExamResult          Intent = "exam_result"
	ConfidentialFinance Intent = "confidential_finance"
	TeacherInfo         Intent = "teacher_info"
	StudentContact      Intent = "student_contact"
	General             Intent = "general"
)

// Classify labels a query with fixed substring rules, first match wins.
// Pure and case-insensitive.
func Classify(message string) Intent {
	m := strings.ToLower(message)
	switch {
	case strings.Contains(m, "admission") || strings.Contains(m, "enroll"):
		return AdmissionInfo
	case strings.Contains(m, "result") || strings.Contains(m, "grade") || strings.Contains(m, "marks"):
		return ExamResult
	case strings.Contains(m, "salary") || strings.Contains(m, "budget") || strings.Contains(m, "finance"):
		return ConfidentialFinance
	case strings.Contains(m, "teacher") || strings.Contains(m, "faculty") || strings.Contains(m, "lecturer"):
		return TeacherInfo
	case strings.Contains(m, "student") &&
		(strings.Contains(m, "contact") || strings.Contains(m, "email") || strings.Contains(m, "phone")):
		return StudentContact
	default:
		return General
	}
}
