package rest

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/civitrack/civitrack/internal/stats"
	"github.com/civitrack/civitrack/util"
	"github.com/civitrack/civitrack/util/tracing"
	"github.com/civitrack/civitrack/util/values"
	"github.com/go-chi/chi/v5"
)

func (api *API) AdminRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)
		r.Use(api.RequireAdmin)
		r.Method(http.MethodPost, "/reports/{reportID}/verify", Handler(api.VerifyReport))
		r.Method(http.MethodPost, "/reports/verify-all", Handler(api.VerifyAllReports))
		r.Method(http.MethodGet, "/stats", Handler(api.GetGlobalStats))
		r.Method(http.MethodGet, "/stats/departments", Handler(api.GetDepartmentStats))
		r.Method(http.MethodPost, "/departments/{department}/alert", Handler(api.SendPerformanceAlert))
	})

	return mux
}

func (api *API) VerifyReport(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	reportID := chi.URLParam(r, "reportID")
	if err := api.VerifyReportRepo(r.Context(), reportID); err != nil {
		return respondWithTypedError(err, "failed to verify report", &tc)
	}

	return &ServerResponse{
		Message:    "Report verified",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
	}
}

func (api *API) VerifyAllReports(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	count, err := api.VerifyAllReportsRepo(r.Context())
	if err != nil {
		// "Nothing to verify" comes back as benign no-work, distinct
		// from a verification failure.
		return respondWithTypedError(err, "failed to verify reports", &tc)
	}

	return &ServerResponse{
		Message:    fmt.Sprintf("%d reports verified", count),
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       map[string]int64{"verified": count},
	}
}

func (api *API) GetGlobalStats(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	reports, err := api.GetAllReportsRepo(r.Context())
	if err != nil {
		return respondWithTypedError(err, "failed to compute statistics", &tc)
	}

	return &ServerResponse{
		Message:    "Statistics computed successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       stats.Global(reports),
	}
}

func (api *API) GetDepartmentStats(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	threshold := api.alertThreshold(r.URL.Query().Get("threshold"))

	reports, err := api.GetAllReportsRepo(r.Context())
	if err != nil {
		return respondWithTypedError(err, "failed to compute statistics", &tc)
	}

	byDept := stats.ByDepartment(reports)
	return &ServerResponse{
		Message:    "Statistics computed successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data: map[string]interface{}{
			"departments":    byDept,
			"threshold":      threshold,
			"low_performers": stats.LowPerformers(byDept, threshold),
		},
	}
}

func (api *API) SendPerformanceAlert(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	department := chi.URLParam(r, "department")
	threshold := api.alertThreshold(r.URL.Query().Get("threshold"))

	sent, err := api.SendPerformanceAlertHelper(r.Context(), department, threshold)
	if err != nil {
		return respondWithTypedError(err, "failed to send performance alert", &tc)
	}

	return &ServerResponse{
		Message:    fmt.Sprintf("Performance alert sent to %d contacts", sent),
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       map[string]int{"notified": sent},
	}
}

// alertThreshold prefers an explicit query value, then config, then the
// engine default.
func (api *API) alertThreshold(raw string) float64 {
	if raw != "" {
		if t, err := strconv.ParseFloat(raw, 64); err == nil && t > 0 && t <= 100 {
			return t
		}
	}
	if api.Config.AlertThreshold > 0 {
		return api.Config.AlertThreshold
	}
	return stats.DefaultThreshold
}
