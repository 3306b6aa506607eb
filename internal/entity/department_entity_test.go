// FILE: internal/entity/department_entity_test.go
package entity

import "testing"

func TestParseDepartment(t *testing.T) {
	tests := []struct {
		raw    string
		want   Department
		wantOK bool
	}{
		{"BSC_CSIT", DepartmentBscCsit, true},
		{"BSc CSIT", DepartmentBscCsit, true},
		{"bsc csit", DepartmentBscCsit, true},
		{"csit", DepartmentBscCsit, true},
		{"bsc-csit", DepartmentBscCsit, true},
		{"BIT", DepartmentBit, true},
		{" bit ", DepartmentBit, true},
		{"BCA", DepartmentBca, true},
		{"MBA", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseDepartment(tt.raw)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseDepartment(%q) = (%q, %v), want (%q, %v)", tt.raw, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		dept Department
		want string
	}{
		{DepartmentBscCsit, "BSc CSIT"},
		{DepartmentBit, "BIT"},
		{DepartmentBca, "BCA"},
	}

	for _, tt := range tests {
		if got := tt.dept.DisplayName(); got != tt.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.dept, got, tt.want)
		}
	}
}
