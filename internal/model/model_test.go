package model

import "testing"

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusProgress, StatusResolved, StatusUnresolved} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false", s)
		}
	}
	for _, s := range []string{"", "done", "in_progress", "PENDING", "rejected"} {
		if ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = true", s)
		}
	}
}

func TestValidDepartment(t *testing.T) {
	for _, d := range Departments {
		if !ValidDepartment(d) {
			t.Errorf("ValidDepartment(%q) = false", d)
		}
	}
	for _, d := range []string{"", "water", "Water_Supply_Department", "parks_department"} {
		if ValidDepartment(d) {
			t.Errorf("ValidDepartment(%q) = true", d)
		}
	}
}

func TestValidRole(t *testing.T) {
	for _, r := range []string{RoleCitizen, RoleDepartment, RoleAdmin} {
		if !ValidRole(r) {
			t.Errorf("ValidRole(%q) = false", r)
		}
	}
	if ValidRole("moderator") {
		t.Error("ValidRole(moderator) = true")
	}
}
