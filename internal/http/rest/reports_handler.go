package rest

import (
	"net/http"

	"github.com/civitrack/civitrack/internal/model"
	"github.com/civitrack/civitrack/util"
	"github.com/civitrack/civitrack/util/tracing"
	"github.com/civitrack/civitrack/util/values"
	"github.com/go-chi/chi/v5"
)

func (api *API) ReportRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)
		r.Method(http.MethodPost, "/", Handler(api.CreateReport))
		r.Method(http.MethodGet, "/mine", Handler(api.GetMyReports))
		r.Method(http.MethodGet, "/{reportID}", Handler(api.GetReportByID))
		r.Method(http.MethodPost, "/{reportID}/photos", Handler(api.UploadReportPhoto))

		r.With(api.RequireRole(model.RoleDepartment, model.RoleAdmin)).
			Method(http.MethodPost, "/{reportID}/status", Handler(api.TransitionReport))

		r.Group(func(ra chi.Router) {
			ra.Use(api.RequireAdmin)
			ra.Method(http.MethodGet, "/", Handler(api.GetAllReports))
			ra.Method(http.MethodDelete, "/{reportID}", Handler(api.DeleteReport))
			ra.Method(http.MethodPatch, "/{reportID}", Handler(api.UpdateReportFields))
		})
	})

	return mux
}

func (api *API) CreateReport(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.CreateReportRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	report, status, message, err := api.CreateReportHelper(r.Context(), userID, req)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       report,
	}
}

func (api *API) GetAllReports(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	reports, status, message, err := api.GetAllReportsHelper(r.Context())
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}
	if reports == nil {
		reports = []model.Report{}
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       reports,
	}
}

func (api *API) GetMyReports(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	reports, status, message, err := api.GetMyReportsHelper(r.Context(), userID)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}
	if reports == nil {
		reports = []model.Report{}
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       reports,
	}
}

func (api *API) GetReportByID(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	reportID := chi.URLParam(r, "reportID")

	report, err := api.GetReportByIDRepo(r.Context(), reportID)
	if err != nil {
		return respondWithTypedError(err, "failed to get report", &tc)
	}

	return &ServerResponse{
		Message:    "Report fetched successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       report,
	}
}

func (api *API) DeleteReport(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	reportID := chi.URLParam(r, "reportID")

	if err := api.DeleteReportRepo(r.Context(), reportID); err != nil {
		return respondWithTypedError(err, "failed to delete report", &tc)
	}

	return &ServerResponse{
		Message:    "Report deleted successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
	}
}

func (api *API) UpdateReportFields(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	reportID := chi.URLParam(r, "reportID")

	var req model.UpdateReportFieldsRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	report, err := api.UpdateReportFieldsHelper(r.Context(), reportID, req)
	if err != nil {
		return respondWithTypedError(err, "failed to update report", &tc)
	}

	return &ServerResponse{
		Message:    "Report updated successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       report,
	}
}

func (api *API) TransitionReport(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	reportID := chi.URLParam(r, "reportID")

	var req model.TransitionRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	role, err := util.GetUserRoleFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user role from context", values.NotAuthorised, &tc)
	}
	department := util.GetUserDepartmentFromContext(r.Context())

	report, err := api.TransitionReportHelper(r.Context(), reportID, req, role, department)
	if err != nil {
		return respondWithTypedError(err, "failed to transition report", &tc)
	}

	return &ServerResponse{
		Message:    "Report status updated",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       report,
	}
}

func (api *API) UploadReportPhoto(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	reportID := chi.URLParam(r, "reportID")

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}
	role, err := util.GetUserRoleFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user role from context", values.NotAuthorised, &tc)
	}

	file, _, err := r.FormFile("photo")
	if err != nil {
		return respondWithError(err, "missing photo file", values.BadRequestBody, &tc)
	}
	defer file.Close()

	report, err := api.UploadReportPhotoHelper(r.Context(), reportID, userID, role, file)
	if err != nil {
		return respondWithTypedError(err, "failed to upload photo", &tc)
	}

	return &ServerResponse{
		Message:    "Photo uploaded successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       report,
	}
}
