package rest

import (
	"context"
	"fmt"

	"github.com/civitrack/civitrack/internal/model"
	"github.com/civitrack/civitrack/internal/stats"
	"github.com/civitrack/civitrack/util"
	"github.com/civitrack/civitrack/util/errs"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// NotifyUserHelper persists one notification in the recipient's inbox,
// then pushes it over the websocket hub if they are connected. The push
// is best effort; the row is the delivery guarantee.
func (api *API) NotifyUserHelper(ctx context.Context, recipient uuid.UUID, title, message, department string) (model.Notification, error) {
	n := model.Notification{
		ID:         util.GenerateUUID(),
		UserID:     recipient,
		Title:      title,
		Message:    message,
		Department: department,
	}

	saved, err := api.InsertNotificationRepo(ctx, n)
	if err != nil {
		return model.Notification{}, err
	}

	api.Deps.WebSocket.PushToUser(recipient.String(), saved)
	return saved, nil
}

// SendPerformanceAlertHelper fans a low-resolving-ratio alert out to
// every registered contact of a department. Eligibility is recomputed
// from the current snapshot: alerting a department at or above the
// threshold is benign no-work, as is a department with no contacts.
// The inserts run in one transaction, so either every contact gets the
// alert or none does.
func (api *API) SendPerformanceAlertHelper(ctx context.Context, department string, threshold float64) (int, error) {
	if !model.ValidDepartment(department) {
		return 0, errs.Validation("unknown department %q", department)
	}

	reports, err := api.GetAllReportsRepo(ctx)
	if err != nil {
		return 0, err
	}
	byDept := stats.ByDepartment(reports)
	dc := byDept[department]
	if dc.Total > 0 && dc.ResolvingRatio*100 >= threshold {
		return 0, errs.NoWork("department %s resolves %.1f%% of reports, at or above the %.1f%% threshold",
			department, dc.ResolvingRatio*100, threshold)
	}

	contacts, err := api.ListDepartmentContactsRepo(ctx, department)
	if err != nil {
		return 0, err
	}
	if len(contacts) == 0 {
		return 0, errs.NoWork("department %s has no registered contacts", department)
	}

	title := "Performance alert"
	message := fmt.Sprintf(
		"%s is resolving %.1f%% of its reports (%d of %d), below the %.1f%% target. Please review pending reports.",
		department, dc.ResolvingRatio*100, dc.Resolved, dc.Total, threshold,
	)

	sent := make([]model.Notification, 0, len(contacts))
	err = api.Deps.DB.RunInTx(ctx, func(tx pgx.Tx) error {
		for _, contact := range contacts {
			n := model.Notification{
				ID:         util.GenerateUUID(),
				UserID:     contact.ID,
				Title:      title,
				Message:    message,
				Department: department,
			}
			saved, txErr := api.InsertNotificationTx(ctx, tx, n)
			if txErr != nil {
				return txErr
			}
			sent = append(sent, saved)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	for _, n := range sent {
		api.Deps.WebSocket.PushToUser(n.UserID.String(), n)
	}
	return len(sent), nil
}
