package rest

import (
	"context"
	"fmt"
	"time"

	"github.com/civitrack/civitrack/internal/model"
	"github.com/civitrack/civitrack/util/errs"
)

// DepartmentReportsParams filters a department's report view. Nil date
// bounds mean unbounded; a bounded query simply excludes rows whose
// reported date cannot satisfy it.
type DepartmentReportsParams struct {
	Department     string
	OnlyUnverified bool
	From           *time.Time
	To             *time.Time
}

// ListReportsByDepartmentRepo projects the global report set into one
// department's view, verified and unverified alike unless filtered.
func (api *API) ListReportsByDepartmentRepo(ctx context.Context, params DepartmentReportsParams) ([]model.Report, error) {
	query := `SELECT` + reportColumns + ` FROM reports WHERE department = $1`

	args := []interface{}{params.Department}
	argCount := 1

	if params.OnlyUnverified {
		query += " AND NOT is_verified_by_admin"
	}
	if params.From != nil {
		argCount++
		query += fmt.Sprintf(" AND reported_date >= $%d", argCount)
		args = append(args, *params.From)
	}
	if params.To != nil {
		argCount++
		query += fmt.Sprintf(" AND reported_date <= $%d", argCount)
		args = append(args, *params.To)
	}

	query += " ORDER BY reported_date DESC"

	rows, err := api.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, errs.Transient(err, "querying department reports")
	}
	return collectReports(rows)
}
