package util

import (
	"testing"
	"time"

	"github.com/civitrack/civitrack/internal/model"
)

func TestParseDateLenient(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  time.Time
		ok    bool
	}{
		{"RFC3339", "2025-04-05T14:30:45Z", time.Date(2025, 4, 5, 14, 30, 45, 0, time.UTC), true},
		{"Date Only", "2025-04-05", time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC), true},
		{"Day First Dashes", "05-04-2025", time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC), true},
		{"Day First Slashes", "05/04/2025", time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC), true},
		{"Whitespace", "  2025-04-05  ", time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC), true},
		{"Empty", "", time.Time{}, false},
		{"Garbage", "last tuesday", time.Time{}, false},
		{"Millis Epoch", "1743863445000", time.Time{}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseDateLenient(tc.input)
			if ok != tc.ok {
				t.Fatalf("ParseDateLenient(%q) ok = %v, want %v", tc.input, ok, tc.ok)
			}
			if ok && !got.Equal(tc.want) {
				t.Errorf("ParseDateLenient(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestValidateCreateReportRequest(t *testing.T) {
	valid := model.CreateReportRequest{
		Title:       "Burst pipe on Elm Street",
		Description: "Water flooding the sidewalk since this morning",
		Category:    "water_leak",
		Department:  model.DepartmentWaterSupply,
	}
	if err := ValidateStruct(valid); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	testCases := []struct {
		name   string
		mutate func(*model.CreateReportRequest)
	}{
		{"missing title", func(r *model.CreateReportRequest) { r.Title = "" }},
		{"missing description", func(r *model.CreateReportRequest) { r.Description = "" }},
		{"missing category", func(r *model.CreateReportRequest) { r.Category = "" }},
		{"unknown department", func(r *model.CreateReportRequest) { r.Department = "parks_department" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			tc.mutate(&req)
			if err := ValidateStruct(req); err == nil {
				t.Errorf("expected validation error for %s", tc.name)
			}
		})
	}
}

func TestValidateTransitionRequest(t *testing.T) {
	for _, status := range []string{model.StatusPending, model.StatusProgress, model.StatusResolved, model.StatusUnresolved} {
		req := model.TransitionRequest{Status: status, ResolutionDescription: "Pipe replaced"}
		if err := ValidateStruct(req); err != nil {
			t.Errorf("status %q rejected: %v", status, err)
		}
	}

	for _, status := range []string{"", "closed", "RESOLVED"} {
		req := model.TransitionRequest{Status: status}
		if err := ValidateStruct(req); err == nil {
			t.Errorf("status %q accepted", status)
		}
	}
}

func TestNotBlank(t *testing.T) {
	if NotBlank("   ") {
		t.Error("whitespace-only string reported as not blank")
	}
	if !NotBlank(" x ") {
		t.Error("non-blank string reported as blank")
	}
}
