package rest

import (
	"context"
	"errors"

	"github.com/civitrack/civitrack/internal/model"
	"github.com/civitrack/civitrack/util/errs"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const reportColumns = `
        id, user_id, reporter_name, reporter_email, title, description,
        category, department, address, photo_urls, is_verified_by_admin,
        status, resolution_description, reported_date, last_updated`

func scanReport(row pgx.Row) (model.Report, error) {
	var r model.Report
	err := row.Scan(
		&r.ID, &r.ReportedBy.UID, &r.ReportedBy.Name, &r.ReportedBy.Email,
		&r.Title, &r.Description, &r.Category, &r.Department, &r.Address,
		&r.PhotoURLs, &r.IsVerifiedByAdmin, &r.Status,
		&r.ResolutionDescription, &r.ReportedDate, &r.LastUpdated,
	)
	return r, err
}

func collectReports(rows pgx.Rows) ([]model.Report, error) {
	defer rows.Close()

	var reports []model.Report
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, errs.Transient(err, "scanning report")
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Transient(err, "iterating reports")
	}
	return reports, nil
}

// CreateReportRepo inserts a new report. Status, verification flag and
// both timestamps are server-assigned defaults.
func (api *API) CreateReportRepo(ctx context.Context, reporter model.Reporter, req model.CreateReportRequest) (model.Report, error) {
	query := `
        INSERT INTO reports (
            user_id, reporter_name, reporter_email, title, description,
            category, department, address, photo_urls
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, COALESCE($9, '{}'))
        RETURNING` + reportColumns

	photoURLs := req.PhotoURLs
	if photoURLs == nil {
		photoURLs = []string{}
	}

	report, err := scanReport(api.DB.QueryRow(ctx, query,
		reporter.UID, reporter.Name, reporter.Email, req.Title,
		req.Description, req.Category, req.Department, req.Address, photoURLs,
	))
	if err != nil {
		return model.Report{}, errs.Transient(err, "inserting report")
	}
	return report, nil
}

// GetAllReportsRepo returns every report across every owner. Order is
// unspecified; callers sort if they care.
func (api *API) GetAllReportsRepo(ctx context.Context) ([]model.Report, error) {
	query := `SELECT` + reportColumns + ` FROM reports`

	rows, err := api.DB.Query(ctx, query)
	if err != nil {
		return nil, errs.Transient(err, "querying reports")
	}
	return collectReports(rows)
}

func (api *API) GetReportByIDRepo(ctx context.Context, id string) (model.Report, error) {
	query := `SELECT` + reportColumns + ` FROM reports WHERE id = $1`

	report, err := scanReport(api.DB.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Report{}, errs.NotFound("report %s not found", id)
	}
	if err != nil {
		return model.Report{}, errs.Transient(err, "querying report")
	}
	return report, nil
}

// FindReportOwnerRepo resolves a report id to the citizen who filed it.
// An index read, not a scan over owners.
func (api *API) FindReportOwnerRepo(ctx context.Context, id string) (uuid.UUID, error) {
	var owner uuid.UUID
	err := api.DB.QueryRow(ctx, `SELECT user_id FROM reports WHERE id = $1`, id).Scan(&owner)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, errs.NotFound("report %s not found", id)
	}
	if err != nil {
		return uuid.Nil, errs.Transient(err, "querying report owner")
	}
	return owner, nil
}

func (api *API) ListReportsByUserRepo(ctx context.Context, userID string) ([]model.Report, error) {
	query := `SELECT` + reportColumns + ` FROM reports WHERE user_id = $1 ORDER BY reported_date DESC`

	rows, err := api.DB.Query(ctx, query, userID)
	if err != nil {
		return nil, errs.Transient(err, "querying user reports")
	}
	return collectReports(rows)
}

// DeleteReportRepo removes the report. Notifications already sent about
// it are left alone.
func (api *API) DeleteReportRepo(ctx context.Context, id string) error {
	result, err := api.DB.Exec(ctx, `DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		return errs.Transient(err, "deleting report")
	}
	if result.RowsAffected() == 0 {
		return errs.NotFound("report %s not found", id)
	}
	return nil
}

// UpdateReportFieldsRepo merges the mutable fields into the existing
// report and refreshes last_updated. The verification flag only ever
// moves to true; the OR keeps a concurrent verify from being undone.
func (api *API) UpdateReportFieldsRepo(ctx context.Context, id string, req model.UpdateReportFieldsRequest) (model.Report, error) {
	query := `
        UPDATE reports
        SET
            status = COALESCE($2, status),
            resolution_description = COALESCE($3, resolution_description),
            is_verified_by_admin = is_verified_by_admin OR COALESCE($4, FALSE),
            last_updated = NOW()
        WHERE id = $1
        RETURNING` + reportColumns

	report, err := scanReport(api.DB.QueryRow(ctx, query, id, req.Status, req.ResolutionDescription, req.IsVerifiedByAdmin))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Report{}, errs.NotFound("report %s not found", id)
	}
	if err != nil {
		return model.Report{}, errs.Transient(err, "updating report fields")
	}
	return report, nil
}

// TransitionReportRepo applies a caller-directed status change. The
// returned row carries the owner for the follow-up notification.
func (api *API) TransitionReportRepo(ctx context.Context, id, status, resolution string) (model.Report, error) {
	query := `
        UPDATE reports
        SET status = $2, resolution_description = $3, last_updated = NOW()
        WHERE id = $1
        RETURNING` + reportColumns

	report, err := scanReport(api.DB.QueryRow(ctx, query, id, status, resolution))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Report{}, errs.NotFound("report %s not found", id)
	}
	if err != nil {
		return model.Report{}, errs.Transient(err, "transitioning report")
	}
	return report, nil
}

func (api *API) AppendReportPhotoRepo(ctx context.Context, id, url string) (model.Report, error) {
	query := `
        UPDATE reports
        SET photo_urls = array_append(photo_urls, $2), last_updated = NOW()
        WHERE id = $1
        RETURNING` + reportColumns

	report, err := scanReport(api.DB.QueryRow(ctx, query, id, url))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Report{}, errs.NotFound("report %s not found", id)
	}
	if err != nil {
		return model.Report{}, errs.Transient(err, "appending report photo")
	}
	return report, nil
}
