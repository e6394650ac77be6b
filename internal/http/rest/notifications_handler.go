package rest

import (
	"net/http"

	"github.com/civitrack/civitrack/internal/model"
	"github.com/civitrack/civitrack/util"
	"github.com/civitrack/civitrack/util/tracing"
	"github.com/civitrack/civitrack/util/values"
	"github.com/go-chi/chi/v5"
)

func (api *API) NotificationRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)
		r.Method(http.MethodGet, "/", Handler(api.GetNotifications))
		r.Method(http.MethodPatch, "/{notificationID}/read", Handler(api.MarkNotificationRead))
		r.Method(http.MethodDelete, "/{notificationID}", Handler(api.DeleteNotification))
		r.Get("/ws", api.SubscribeNotifications)
	})

	return mux
}

func (api *API) GetNotifications(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	notifications, err := api.ListNotificationsRepo(r.Context(), userID.String())
	if err != nil {
		return respondWithTypedError(err, "failed to fetch notifications", &tc)
	}
	if notifications == nil {
		notifications = []model.Notification{}
	}

	return &ServerResponse{
		Message:    "Notifications fetched successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       notifications,
	}
}

func (api *API) MarkNotificationRead(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	notificationID := chi.URLParam(r, "notificationID")
	if err := api.MarkNotificationReadRepo(r.Context(), userID.String(), notificationID); err != nil {
		return respondWithTypedError(err, "failed to mark notification read", &tc)
	}

	return &ServerResponse{
		Message:    "Notification marked as read",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
	}
}

func (api *API) DeleteNotification(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	notificationID := chi.URLParam(r, "notificationID")
	if err := api.DeleteNotificationRepo(r.Context(), userID.String(), notificationID); err != nil {
		return respondWithTypedError(err, "failed to delete notification", &tc)
	}

	return &ServerResponse{
		Message:    "Notification deleted successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
	}
}

// SubscribeNotifications upgrades to a websocket and streams future
// notifications to the caller until the connection drops.
func (api *API) SubscribeNotifications(w http.ResponseWriter, r *http.Request) {
	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		writeErrorResponse(w, err, values.NotAuthorised, "unable to get user ID from context")
		return
	}

	api.Deps.WebSocket.HandleConnection(w, r, userID.String())
}
