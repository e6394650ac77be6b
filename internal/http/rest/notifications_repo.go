package rest

import (
	"context"

	"github.com/civitrack/civitrack/internal/model"
	"github.com/civitrack/civitrack/util/errs"
	"github.com/jackc/pgx/v5"
)

// InsertNotificationRepo appends one entry to the recipient's inbox.
// Inserts never overwrite, so concurrent fan-outs to the same recipient
// cannot lose each other; the inbox exists implicitly.
func (api *API) InsertNotificationRepo(ctx context.Context, n model.Notification) (model.Notification, error) {
	query := `
        INSERT INTO notifications (id, user_id, title, message, department)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, user_id, title, message, department, is_read, created_at
    `
	err := api.DB.QueryRow(ctx, query, n.ID, n.UserID, n.Title, n.Message, n.Department).Scan(
		&n.ID, &n.UserID, &n.Title, &n.Message, &n.Department, &n.IsRead, &n.CreatedAt,
	)
	if err != nil {
		return model.Notification{}, errs.Transient(err, "inserting notification")
	}
	return n, nil
}

// InsertNotificationTx is the transactional variant used when one alert
// fans out to several recipients atomically.
func (api *API) InsertNotificationTx(ctx context.Context, tx pgx.Tx, n model.Notification) (model.Notification, error) {
	query := `
        INSERT INTO notifications (id, user_id, title, message, department)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, user_id, title, message, department, is_read, created_at
    `
	err := tx.QueryRow(ctx, query, n.ID, n.UserID, n.Title, n.Message, n.Department).Scan(
		&n.ID, &n.UserID, &n.Title, &n.Message, &n.Department, &n.IsRead, &n.CreatedAt,
	)
	if err != nil {
		return model.Notification{}, errs.Transient(err, "inserting notification in tx")
	}
	return n, nil
}

func (api *API) ListNotificationsRepo(ctx context.Context, userID string) ([]model.Notification, error) {
	query := `
        SELECT id, user_id, title, message, department, is_read, created_at
        FROM notifications
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := api.DB.Query(ctx, query, userID)
	if err != nil {
		return nil, errs.Transient(err, "querying notifications")
	}
	defer rows.Close()

	var notifications []model.Notification
	for rows.Next() {
		var n model.Notification
		err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Department, &n.IsRead, &n.CreatedAt)
		if err != nil {
			return nil, errs.Transient(err, "scanning notification")
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Transient(err, "iterating notifications")
	}
	return notifications, nil
}

// MarkNotificationReadRepo flips is_read to true. Marking an
// already-read entry again is a no-op success; the flag never reverts.
func (api *API) MarkNotificationReadRepo(ctx context.Context, userID, notificationID string) error {
	result, err := api.DB.Exec(ctx, `
        UPDATE notifications
        SET is_read = TRUE
        WHERE id = $1 AND user_id = $2
    `, notificationID, userID)
	if err != nil {
		return errs.Transient(err, "marking notification read")
	}
	if result.RowsAffected() == 0 {
		return errs.NotFound("notification %s not found", notificationID)
	}
	return nil
}

func (api *API) DeleteNotificationRepo(ctx context.Context, userID, notificationID string) error {
	result, err := api.DB.Exec(ctx, `
        DELETE FROM notifications
        WHERE id = $1 AND user_id = $2
    `, notificationID, userID)
	if err != nil {
		return errs.Transient(err, "deleting notification")
	}
	if result.RowsAffected() == 0 {
		return errs.NotFound("notification %s not found", notificationID)
	}
	return nil
}
