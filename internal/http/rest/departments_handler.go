package rest

import (
	"net/http"

	"github.com/civitrack/civitrack/internal/model"
	"github.com/civitrack/civitrack/util"
	"github.com/civitrack/civitrack/util/tracing"
	"github.com/civitrack/civitrack/util/values"
	"github.com/go-chi/chi/v5"
)

func (api *API) DepartmentRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)
		r.Use(api.RequireRole(model.RoleDepartment, model.RoleAdmin))
		r.Method(http.MethodGet, "/{department}/reports", Handler(api.GetDepartmentReports))
		r.Method(http.MethodGet, "/{department}/reports/unverified", Handler(api.GetUnverifiedDepartmentReports))
	})

	return mux
}

// departmentScope resolves and authorizes the department a request
// targets: staff are confined to their own department, admins see any.
func (api *API) departmentScope(r *http.Request) (string, string) {
	department := chi.URLParam(r, "department")
	if !model.ValidDepartment(department) {
		return "", values.BadRequestBody
	}

	role, _ := util.GetUserRoleFromContext(r.Context())
	if role == model.RoleDepartment && util.GetUserDepartmentFromContext(r.Context()) != department {
		return "", values.NotAllowed
	}
	return department, ""
}

func (api *API) listDepartmentReports(r *http.Request, onlyUnverified bool) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	department, failStatus := api.departmentScope(r)
	if failStatus != "" {
		return respondWithError(nil, "invalid department request", failStatus, &tc)
	}

	params := DepartmentReportsParams{
		Department:     department,
		OnlyUnverified: onlyUnverified,
	}

	// Date bounds are lenient: an unparseable value is treated as absent
	// rather than failing the query.
	if from, ok := util.ParseDateLenient(r.URL.Query().Get("from")); ok {
		params.From = &from
	}
	if to, ok := util.ParseDateLenient(r.URL.Query().Get("to")); ok {
		params.To = &to
	}

	reports, err := api.ListReportsByDepartmentRepo(r.Context(), params)
	if err != nil {
		return respondWithTypedError(err, "failed to fetch department reports", &tc)
	}
	if reports == nil {
		reports = []model.Report{}
	}

	return &ServerResponse{
		Message:    "Department reports fetched successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       reports,
	}
}

func (api *API) GetDepartmentReports(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	return api.listDepartmentReports(r, false)
}

func (api *API) GetUnverifiedDepartmentReports(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	return api.listDepartmentReports(r, true)
}
