package prompt

import (
	"fmt"
	"sort"
	"strings"

	"campus-chatbot-be/internal/entity"
	"campus-chatbot-be/pkg/records"
)

// StudentRefusalTemplate is the canned sentence the agent must answer with
// when a student asks about another department's records. Parameterized by
// the caller's department display name.
const StudentRefusalTemplate = "I can only provide information about %s department students."

// Builder composes the access-scoped instruction block that is prepended
// to the caller's raw query before the generation round trip. It shapes
// the request only; the agent's response is never inspected here.
type Builder struct {
	role       entity.UserRole
	department entity.Department
	callerName string
	query      string
	matched    []records.Record
}

func NewBuilder(role entity.UserRole, department entity.Department, callerName, query string) *Builder {
	return &Builder{
		role:       role,
		department: department,
		callerName: callerName,
		query:      query,
	}
}

// WithMatchedRecords attaches record-lookup context to the instruction.
func (b *Builder) WithMatchedRecords(matched []records.Record) *Builder {
	b.matched = matched
	return b
}

func (b *Builder) Build() string {
	var out strings.Builder

	b.writeHeader(&out)
	b.writeIdentity(&out)
	b.writeMatchedRecords(&out)
	b.writeQuestion(&out)
	b.writeRestrictions(&out)

	return out.String()
}

func (b *Builder) writeHeader(out *strings.Builder) {
	switch b.role {
	case entity.UserRoleStudent:
		fmt.Fprintf(out, "[ACCESS LEVEL: STUDENT - Department: %s]\n", b.department.DisplayName())
	case entity.UserRoleTeacher:
		out.WriteString("[ACCESS LEVEL: TEACHER]\n")
	default:
		// Guests and unrecognized roles share the guest header.
		out.WriteString("[ACCESS LEVEL: GUEST]\n")
	}
}

func (b *Builder) writeIdentity(out *strings.Builder) {
	if b.callerName != "" {
		fmt.Fprintf(out, "User: %s\n", b.callerName)
	} else {
		out.WriteString("User\n")
	}
}

func (b *Builder) writeMatchedRecords(out *strings.Builder) {
	if len(b.matched) == 0 {
		return
	}
	out.WriteString("\nMatched institution records:\n")
	for i, rec := range b.matched {
		fmt.Fprintf(out, "%d. %s\n", i+1, renderRecord(rec))
	}
}

func (b *Builder) writeQuestion(out *strings.Builder) {
	fmt.Fprintf(out, "User question: %s\n", b.query)
}

func (b *Builder) writeRestrictions(out *strings.Builder) {
	switch b.role {
	case entity.UserRoleStudent:
		dept := b.department.DisplayName()
		out.WriteString("\nCRITICAL INSTRUCTION: You MUST check the department field of each student record before responding.\n")
		fmt.Fprintf(out, "- If the student's department matches %q, provide their information\n", dept)
		fmt.Fprintf(out, "- If the student's department does NOT match %q, respond: %q\n", dept, fmt.Sprintf(StudentRefusalTemplate, dept))
		out.WriteString("- NEVER show information from other departments\n")
		out.WriteString("- NO phone numbers, family info, religion, caste\n")
	case entity.UserRoleTeacher:
		out.WriteString("\nFull access to all information.\n")
	default:
		out.WriteString("\nRESTRICTION: No personal information about students or teachers. Only general college information.\n")
	}
}

func renderRecord(rec records.Record) string {
	keys := make([]string, 0, len(rec.Fields))
	for k := range rec.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%s", k, rec.Fields[k]))
	}
	return strings.Join(pairs, ", ")
}
