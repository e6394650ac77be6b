package rest

import (
	"context"
	"errors"
	"testing"

	"github.com/civitrack/civitrack/internal/model"
	"github.com/civitrack/civitrack/util"
	"github.com/civitrack/civitrack/util/errs"
	"github.com/civitrack/civitrack/util/values"
	"github.com/google/uuid"
)

// The validation layer rejects bad input before any storage call, so
// these run against a zero API.

func TestTransitionRejectsUnknownStatus(t *testing.T) {
	api := &API{}

	for _, status := range []string{"", "closed", "RESOLVED", "in_progress"} {
		req := model.TransitionRequest{Status: status}
		_, err := api.TransitionReportHelper(context.Background(), "some-id", req, model.RoleAdmin, "")
		if !errs.IsValidation(err) {
			t.Errorf("status %q: expected validation error, got %v", status, err)
		}
	}
}

func TestUpdateFieldsRejectsVerificationRevoke(t *testing.T) {
	api := &API{}

	revoke := false
	req := model.UpdateReportFieldsRequest{IsVerifiedByAdmin: &revoke}
	_, err := api.UpdateReportFieldsHelper(context.Background(), "some-id", req)
	if !errs.IsValidation(err) {
		t.Errorf("expected validation error on verification revoke, got %v", err)
	}
}

func TestUpdateFieldsRejectsUnknownStatus(t *testing.T) {
	api := &API{}

	bad := "abandoned"
	req := model.UpdateReportFieldsRequest{Status: &bad}
	_, err := api.UpdateReportFieldsHelper(context.Background(), "some-id", req)
	if !errs.IsValidation(err) {
		t.Errorf("expected validation error for status %q, got %v", bad, err)
	}
}

func TestClassifyReporterLookupKeepsTransientRetryable(t *testing.T) {
	userID := util.GenerateUUID()

	// A store failure must come back unchanged so it still maps to a
	// retryable 500, not bad input.
	cause := errs.Transient(errors.New("connection reset"), "querying user by id")
	status, _, err := classifyReporterLookup(cause, userID)
	if status != values.Error {
		t.Errorf("status = %q, want %q", status, values.Error)
	}
	if !errs.IsTransient(err) {
		t.Errorf("expected transient error to pass through, got %v", err)
	}

	// A vanished account is the caller's problem.
	status, _, err = classifyReporterLookup(errs.NotFound("user gone"), userID)
	if status != values.BadRequestBody {
		t.Errorf("status = %q, want %q", status, values.BadRequestBody)
	}
	if !errs.IsValidation(err) {
		t.Errorf("expected validation error for missing account, got %v", err)
	}
}

func TestCanModifyReport(t *testing.T) {
	owner := util.GenerateUUID()
	stranger := util.GenerateUUID()

	testCases := []struct {
		name   string
		caller uuid.UUID
		role   string
		want   bool
	}{
		{"owner", owner, model.RoleCitizen, true},
		{"admin", stranger, model.RoleAdmin, true},
		{"other citizen", stranger, model.RoleCitizen, false},
		{"department staff", stranger, model.RoleDepartment, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := canModifyReport(owner, tc.caller, tc.role); got != tc.want {
				t.Errorf("canModifyReport = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPerformanceAlertRejectsUnknownDepartment(t *testing.T) {
	api := &API{}

	_, err := api.SendPerformanceAlertHelper(context.Background(), "parks_department", 50)
	if !errs.IsValidation(err) {
		t.Errorf("expected validation error for unknown department, got %v", err)
	}
}
