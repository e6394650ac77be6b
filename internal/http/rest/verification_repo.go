package rest

import (
	"context"
	"errors"

	"github.com/civitrack/civitrack/util/errs"
	"github.com/jackc/pgx/v5"
)

// VerifyReportRepo flags a single report as admin-verified. Verifying an
// already-verified report is a no-op success, and the flag never reverts.
func (api *API) VerifyReportRepo(ctx context.Context, id string) error {
	result, err := api.DB.Exec(ctx, `
        UPDATE reports
        SET is_verified_by_admin = TRUE, last_updated = NOW()
        WHERE id = $1 AND NOT is_verified_by_admin
    `, id)
	if err != nil {
		return errs.Transient(err, "verifying report")
	}
	if result.RowsAffected() > 0 {
		return nil
	}

	// Nothing updated: either already verified (fine) or gone.
	var exists bool
	err = api.DB.QueryRow(ctx, `SELECT TRUE FROM reports WHERE id = $1`, id).Scan(&exists)
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.NotFound("report %s not found", id)
	}
	if err != nil {
		return errs.Transient(err, "checking report existence")
	}
	return nil
}

// VerifyAllReportsRepo verifies every currently-unverified report in one
// statement, so the batch is atomic as a whole. Returns how many rows
// were flagged; zero pending rows is reported as benign no-work.
func (api *API) VerifyAllReportsRepo(ctx context.Context) (int64, error) {
	result, err := api.DB.Exec(ctx, `
        UPDATE reports
        SET is_verified_by_admin = TRUE, last_updated = NOW()
        WHERE NOT is_verified_by_admin
    `)
	if err != nil {
		return 0, errs.Transient(err, "bulk verifying reports")
	}
	count := result.RowsAffected()
	if count == 0 {
		return 0, errs.NoWork("no reports pending verification")
	}
	return count, nil
}
