package stats

import (
	"log"
	"sort"

	"github.com/civitrack/civitrack/internal/model"
)

// DefaultThreshold is the resolving-ratio percentage below which a
// department counts as a low performer.
const DefaultThreshold = 50.0

type Counts struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	Progress   int `json:"progress"`
	Resolved   int `json:"resolved"`
	Unresolved int `json:"unresolved"`
}

type DepartmentCounts struct {
	Counts
	// ResolvingRatio is resolved/total in [0,1]; 0 when the department
	// has no reports.
	ResolvingRatio float64 `json:"resolving_ratio"`
}

func (c *Counts) add(r model.Report) {
	c.Total++
	switch r.Status {
	case model.StatusPending:
		c.Pending++
	case model.StatusProgress:
		c.Progress++
	case model.StatusResolved:
		c.Resolved++
	case model.StatusUnresolved:
		c.Unresolved++
	default:
		// Anomalous rows still count toward the total; aggregation
		// never drops them and never fails.
		log.Printf("[stats]: report %s has unknown status %q", r.ID, r.Status)
	}
}

// Global computes counts over the whole report set in one pass.
func Global(reports []model.Report) Counts {
	var c Counts
	for _, r := range reports {
		c.add(r)
	}
	return c
}

// ByDepartment groups counts per department and derives each
// department's resolving ratio. Computed from the snapshot it is given;
// results are never cached.
func ByDepartment(reports []model.Report) map[string]DepartmentCounts {
	byDept := make(map[string]DepartmentCounts, len(model.Departments))
	for _, d := range model.Departments {
		byDept[d] = DepartmentCounts{}
	}
	for _, r := range reports {
		dc := byDept[r.Department]
		dc.add(r)
		byDept[r.Department] = dc
	}
	for name, dc := range byDept {
		if dc.Total > 0 {
			dc.ResolvingRatio = float64(dc.Resolved) / float64(dc.Total)
		}
		byDept[name] = dc
	}
	return byDept
}

// LowPerformers returns the departments whose resolving ratio, as a
// percentage, falls below threshold. Departments with zero reports have
// ratio 0 and are therefore flagged. Sorted for stable output.
func LowPerformers(byDept map[string]DepartmentCounts, threshold float64) []string {
	var low []string
	for name, dc := range byDept {
		if dc.ResolvingRatio*100 < threshold {
			low = append(low, name)
		}
	}
	sort.Strings(low)
	return low
}
