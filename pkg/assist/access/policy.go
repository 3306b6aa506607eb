package access

import (
	"campus-chatbot-be/internal/entity"
	"campus-chatbot-be/pkg/assist/intent"
)

// Allowed decides whether a role may ask about a topic. Pure function of
// (intent, role); total over both enumerations. Unrecognized roles get
// the most restrictive default: general questions only.
func Allowed(topic intent.Intent, role entity.UserRole) bool {
	switch role {
	case entity.UserRoleGuest:
		return topic == intent.General || topic == intent.AdmissionInfo || topic == intent.TeacherInfo
	case entity.UserRoleStudent:
		return topic != intent.ConfidentialFinance && topic != intent.StudentContact
	case entity.UserRoleTeacher:
		return true
	}
	return topic == intent.General
}
