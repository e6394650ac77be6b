package rest

import (
	"errors"
	"net/http"
	"testing"

	"github.com/civitrack/civitrack/util/errs"
	"github.com/civitrack/civitrack/util/tracing"
	"github.com/civitrack/civitrack/util/values"
)

func TestRespondWithTypedError(t *testing.T) {
	tc := &tracing.Context{RequestID: "test-request"}

	testCases := []struct {
		name       string
		err        error
		wantStatus string
		wantCode   int
	}{
		{"validation", errs.Validation("title is required"), values.BadRequestBody, http.StatusBadRequest},
		{"not found", errs.NotFound("report gone"), values.NotFound, http.StatusNotFound},
		{"no work", errs.NoWork("no reports pending verification"), values.NoWork, http.StatusOK},
		{"transient", errs.Transient(errors.New("timeout"), "querying"), values.Error, http.StatusInternalServerError},
		{"untyped", errors.New("boom"), values.Error, http.StatusInternalServerError},
	}

	for _, tc2 := range testCases {
		t.Run(tc2.name, func(t *testing.T) {
			resp := respondWithTypedError(tc2.err, "fallback", tc)
			if resp.Status != tc2.wantStatus {
				t.Errorf("Status = %q, want %q", resp.Status, tc2.wantStatus)
			}
			if resp.StatusCode != tc2.wantCode {
				t.Errorf("StatusCode = %d, want %d", resp.StatusCode, tc2.wantCode)
			}
		})
	}
}

func TestNoWorkIsNotAnErrorStatus(t *testing.T) {
	// UIs tell "nothing to verify" apart from "verification failed" by
	// status alone.
	benign := respondWithTypedError(errs.NoWork("nothing to do"), "fallback", nil)
	failed := respondWithTypedError(errs.Transient(errors.New("io"), "update"), "fallback", nil)
	if benign.Status == failed.Status {
		t.Errorf("no-work and failure must be distinguishable, both %q", benign.Status)
	}
	if benign.StatusCode >= 400 {
		t.Errorf("no-work should not be an HTTP error, got %d", benign.StatusCode)
	}
}
