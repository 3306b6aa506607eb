// FILE: internal/entity/department_entity.go
package entity

import "strings"

// Department is the organizational scope a record and an institutional
// caller belong to. A record belongs to exactly one department, determined
// by the source file it was loaded from.
type Department string

const (
	DepartmentBscCsit Department = "BSC_CSIT"
	DepartmentBit     Department = "BIT"
	DepartmentBca     Department = "BCA"
)

// Departments lists every known department in a stable order.
func Departments() []Department {
	return []Department{DepartmentBscCsit, DepartmentBit, DepartmentBca}
}

// ParseDepartment accepts the spelling variants that show up in request
// payloads and source files ("BSc CSIT", "bsc_csit", ...).
func ParseDepartment(raw string) (Department, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	normalized = strings.NewReplacer(" ", "_", "-", "_", ".", "").Replace(normalized)
	switch normalized {
	case "BSC_CSIT", "BSCCSIT", "CSIT":
		return DepartmentBscCsit, true
	case "BIT":
		return DepartmentBit, true
	case "BCA":
		return DepartmentBca, true
	}
	return "", false
}

// DisplayName is the human-facing spelling used inside composed prompts.
func (d Department) DisplayName() string {
	switch d {
	case DepartmentBscCsit:
		return "BSc CSIT"
	case DepartmentBit:
		return "BIT"
	case DepartmentBca:
		return "BCA"
	}
	return string(d)
}
