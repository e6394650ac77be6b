package errs

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindPredicates(t *testing.T) {
	base := errors.New("connection reset")

	testCases := []struct {
		name string
		err  error
		want func(error) bool
	}{
		{"validation", Validation("title is required"), IsValidation},
		{"not found", NotFound("report %s not found", "abc"), IsNotFound},
		{"no work", NoWork("no reports pending verification"), IsNoWork},
		{"transient", Transient(base, "querying reports"), IsTransient},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.want(tc.err) {
				t.Errorf("predicate did not match %v", tc.err)
			}
			// Each error belongs to exactly one kind.
			matches := 0
			for _, pred := range []func(error) bool{IsValidation, IsNotFound, IsNoWork, IsTransient} {
				if pred(tc.err) {
					matches++
				}
			}
			if matches != 1 {
				t.Errorf("expected exactly one kind match, got %d for %v", matches, tc.err)
			}
		})
	}
}

func TestPredicatesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("transition failed: %w", NotFound("report gone"))
	if !IsNotFound(err) {
		t.Errorf("IsNotFound should see through fmt.Errorf wrapping")
	}
	if IsValidation(err) {
		t.Errorf("wrapped not-found should not match validation")
	}
}

func TestPredicatesOnForeignErrors(t *testing.T) {
	if IsNotFound(errors.New("plain")) {
		t.Error("plain error should not match any kind")
	}
	if IsNotFound(nil) {
		t.Error("nil should not match any kind")
	}
}

func TestTransientUnwrap(t *testing.T) {
	base := errors.New("dial timeout")
	err := Transient(base, "inserting notification")
	if !errors.Is(err, base) {
		t.Errorf("Transient should preserve the wrapped cause")
	}
}
