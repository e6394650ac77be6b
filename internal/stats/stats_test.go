package stats

import (
	"math"
	"testing"

	"github.com/civitrack/civitrack/internal/model"
	"github.com/google/uuid"
)

func report(dept, status string) model.Report {
	return model.Report{ID: uuid.New(), Department: dept, Status: status}
}

func repeat(n int, dept, status string) []model.Report {
	out := make([]model.Report, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, report(dept, status))
	}
	return out
}

func TestGlobalCounts(t *testing.T) {
	reports := []model.Report{
		report(model.DepartmentWaterSupply, model.StatusPending),
		report(model.DepartmentWaterSupply, model.StatusResolved),
		report(model.DepartmentElectricity, model.StatusProgress),
		report(model.DepartmentDrainage, model.StatusUnresolved),
		report(model.DepartmentDrainage, model.StatusResolved),
	}

	got := Global(reports)
	want := Counts{Total: 5, Pending: 1, Progress: 1, Resolved: 2, Unresolved: 1}
	if got != want {
		t.Errorf("Global = %+v, want %+v", got, want)
	}
}

func TestGlobalCountsAnomalousStatus(t *testing.T) {
	reports := []model.Report{
		report(model.DepartmentWaterSupply, model.StatusPending),
		report(model.DepartmentWaterSupply, "corrupted"),
	}

	got := Global(reports)
	if got.Total != 2 {
		t.Errorf("anomalous report must still count toward total, got %d", got.Total)
	}
	sum := got.Pending + got.Progress + got.Resolved + got.Unresolved
	if sum != 1 {
		t.Errorf("anomalous report must not count toward any status bucket, sum=%d", sum)
	}
}

func TestGlobalCountsInvariant(t *testing.T) {
	// pending+progress+resolved+unresolved <= total, equality without anomalies.
	clean := repeat(4, model.DepartmentDrainage, model.StatusPending)
	c := Global(clean)
	if c.Pending+c.Progress+c.Resolved+c.Unresolved != c.Total {
		t.Errorf("clean set should satisfy equality, got %+v", c)
	}

	dirty := append(clean, report(model.DepartmentDrainage, "???"))
	c = Global(dirty)
	if c.Pending+c.Progress+c.Resolved+c.Unresolved > c.Total {
		t.Errorf("bucket sum exceeds total: %+v", c)
	}
}

func TestGlobalCountsEmpty(t *testing.T) {
	if got := Global(nil); got != (Counts{}) {
		t.Errorf("Global(nil) = %+v, want zero counts", got)
	}
}

func TestByDepartmentRatio(t *testing.T) {
	// 10 resolved, 5 pending, 5 progress, 10 unresolved -> 10/30 ≈ 33.3%.
	var reports []model.Report
	reports = append(reports, repeat(10, model.DepartmentWaterSupply, model.StatusResolved)...)
	reports = append(reports, repeat(5, model.DepartmentWaterSupply, model.StatusPending)...)
	reports = append(reports, repeat(5, model.DepartmentWaterSupply, model.StatusProgress)...)
	reports = append(reports, repeat(10, model.DepartmentWaterSupply, model.StatusUnresolved)...)

	byDept := ByDepartment(reports)
	water := byDept[model.DepartmentWaterSupply]
	if water.Total != 30 || water.Resolved != 10 {
		t.Fatalf("unexpected counts: %+v", water)
	}
	if math.Abs(water.ResolvingRatio-10.0/30.0) > 1e-9 {
		t.Errorf("ResolvingRatio = %v, want %v", water.ResolvingRatio, 10.0/30.0)
	}

	low := LowPerformers(byDept, DefaultThreshold)
	found := false
	for _, d := range low {
		if d == model.DepartmentWaterSupply {
			found = true
		}
	}
	if !found {
		t.Errorf("33.3%% resolving ratio should flag %s as a low performer", model.DepartmentWaterSupply)
	}
}

func TestByDepartmentZeroReports(t *testing.T) {
	byDept := ByDepartment(nil)
	for _, d := range model.Departments {
		dc, ok := byDept[d]
		if !ok {
			t.Fatalf("department %s missing from grouping", d)
		}
		if dc.ResolvingRatio != 0 {
			t.Errorf("%s ratio = %v, want 0 with zero reports", d, dc.ResolvingRatio)
		}
	}
}

func TestByDepartmentRatioBounds(t *testing.T) {
	reports := append(
		repeat(3, model.DepartmentElectricity, model.StatusResolved),
		repeat(2, model.DepartmentStreetLighting, model.StatusPending)...,
	)
	for name, dc := range ByDepartment(reports) {
		if dc.ResolvingRatio < 0 || dc.ResolvingRatio > 1 {
			t.Errorf("%s ratio %v out of [0,1]", name, dc.ResolvingRatio)
		}
	}
}

func TestLowPerformersThreshold(t *testing.T) {
	var reports []model.Report
	// electricity: 100% resolved. drainage: 40% resolved.
	reports = append(reports, repeat(4, model.DepartmentElectricity, model.StatusResolved)...)
	reports = append(reports, repeat(2, model.DepartmentDrainage, model.StatusResolved)...)
	reports = append(reports, repeat(3, model.DepartmentDrainage, model.StatusPending)...)

	byDept := ByDepartment(reports)

	low := LowPerformers(byDept, 50)
	for _, d := range low {
		if d == model.DepartmentElectricity {
			t.Errorf("fully resolved department flagged as low performer")
		}
	}

	// A department sitting exactly on the threshold is not below it.
	if got := LowPerformers(map[string]DepartmentCounts{
		"x": {Counts: Counts{Total: 2, Resolved: 1}, ResolvingRatio: 0.5},
	}, 50); len(got) != 0 {
		t.Errorf("ratio exactly at threshold should not be flagged, got %v", got)
	}
}
