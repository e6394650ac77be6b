package rest

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"

	"github.com/civitrack/civitrack/internal/model"
	"github.com/civitrack/civitrack/util"
	"github.com/civitrack/civitrack/util/errs"
	"github.com/civitrack/civitrack/util/values"
	"github.com/google/uuid"
)

func (api *API) CreateReportHelper(ctx context.Context, userID uuid.UUID, req model.CreateReportRequest) (model.Report, string, string, error) {
	if err := util.ValidateStruct(req); err != nil {
		return model.Report{}, values.BadRequestBody, "invalid report", errs.Validation("invalid report: %v", err)
	}

	// Snapshot the filer's identity; it stays on the report even if the
	// account changes later.
	user, err := api.GetUserByID(ctx, userID.String())
	if err != nil {
		status, message, lookupErr := classifyReporterLookup(err, userID)
		return model.Report{}, status, message, lookupErr
	}

	reporter := model.Reporter{UID: user.ID, Name: user.Name, Email: user.Email}
	report, err := api.CreateReportRepo(ctx, reporter, req)
	if err != nil {
		return model.Report{}, values.Error, "Failed to create report", err
	}
	return report, values.Created, "Report created successfully", nil
}

func (api *API) GetAllReportsHelper(ctx context.Context) ([]model.Report, string, string, error) {
	reports, err := api.GetAllReportsRepo(ctx)
	if err != nil {
		return nil, values.Error, "Failed to fetch all reports", err
	}
	return reports, values.Success, "All reports fetched successfully", nil
}

func (api *API) GetMyReportsHelper(ctx context.Context, userID uuid.UUID) ([]model.Report, string, string, error) {
	reports, err := api.ListReportsByUserRepo(ctx, userID.String())
	if err != nil {
		return nil, values.Error, "Failed to fetch reports", err
	}
	return reports, values.Success, "Reports fetched successfully", nil
}

func (api *API) UpdateReportFieldsHelper(ctx context.Context, id string, req model.UpdateReportFieldsRequest) (model.Report, error) {
	if err := util.ValidateStruct(req); err != nil {
		return model.Report{}, errs.Validation("invalid update: %v", err)
	}
	// Verification is monotone: once true it never reverts.
	if req.IsVerifiedByAdmin != nil && !*req.IsVerifiedByAdmin {
		return model.Report{}, errs.Validation("verification cannot be revoked")
	}
	return api.UpdateReportFieldsRepo(ctx, id, req)
}

// TransitionReportHelper applies a caller-directed status change and
// dispatches exactly one notification to the filer. Backward transitions
// (resolved -> pending) stay legal as manual corrections.
func (api *API) TransitionReportHelper(ctx context.Context, id string, req model.TransitionRequest, actorRole, actorDepartment string) (model.Report, error) {
	if err := util.ValidateStruct(req); err != nil {
		return model.Report{}, errs.Validation("invalid transition: %v", err)
	}

	if actorRole == model.RoleDepartment {
		current, err := api.GetReportByIDRepo(ctx, id)
		if err != nil {
			return model.Report{}, err
		}
		if current.Department != actorDepartment {
			return model.Report{}, errs.Validation("report belongs to %s", current.Department)
		}
	}

	report, err := api.TransitionReportRepo(ctx, id, req.Status, req.ResolutionDescription)
	if err != nil {
		return model.Report{}, err
	}

	// Best effort: the status change stands even if delivery fails.
	message := fmt.Sprintf("Your report %q is now %s.", report.Title, report.Status)
	if report.ResolutionDescription != "" {
		message = fmt.Sprintf("%s %s", message, report.ResolutionDescription)
	}
	if _, err := api.NotifyUserHelper(ctx, report.ReportedBy.UID, "Report status updated", message, report.Department); err != nil {
		log.Printf("status notification for report %s failed: %v", report.ID, err)
	}

	return report, nil
}

// classifyReporterLookup keeps the failure kinds apart: a vanished
// account is the caller's problem, but a store failure stays retryable
// and must not be downgraded to bad input.
func classifyReporterLookup(err error, userID uuid.UUID) (string, string, error) {
	if errs.IsNotFound(err) {
		return values.BadRequestBody, "no authenticated identity", errs.Validation("no authenticated identity for %s", userID)
	}
	return values.Error, "failed to resolve reporter", err
}

// canModifyReport limits attachment changes to the report's owner;
// admins may touch any report.
func canModifyReport(owner, caller uuid.UUID, role string) bool {
	return role == model.RoleAdmin || owner == caller
}

func (api *API) UploadReportPhotoHelper(ctx context.Context, id string, caller uuid.UUID, role string, file multipart.File) (model.Report, error) {
	owner, err := api.FindReportOwnerRepo(ctx, id)
	if err != nil {
		return model.Report{}, err
	}
	if !canModifyReport(owner, caller, role) {
		return model.Report{}, errs.Validation("report belongs to another citizen")
	}

	url, err := api.Deps.Cloudinary.UploadImage(ctx, file, "reports")
	if err != nil {
		return model.Report{}, errs.Transient(err, "uploading report photo")
	}
	return api.AppendReportPhotoRepo(ctx, id, url)
}
