package rest

import (
	"context"
	"errors"

	"github.com/civitrack/civitrack/internal/model"
	"github.com/civitrack/civitrack/util/errs"
	"github.com/jackc/pgx/v5"
)

var (
	errUserExists           = errors.New("user already exists")
	errNoPassword           = errors.New("account has no password login")
	errMissingDepartment    = errors.New("missing department")
	errUnexpectedDepartment = errors.New("unexpected department")
)

func (api *API) CreateNewUserRepo(ctx context.Context, user model.User) error {
	stmt := `
        INSERT INTO users (id, name, email, password_hash, auth_provider, role, department, is_verified)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err := api.DB.Exec(ctx, stmt,
		user.ID, user.Name, user.Email, user.PasswordHash,
		user.AuthProvider, user.Role, user.Department, user.IsVerified,
	)
	if err != nil {
		return errs.Transient(err, "inserting user")
	}
	return nil
}

func (api *API) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	var user model.User
	stmt := `
        SELECT id, name, email, password_hash, auth_provider, role, department, is_verified, created_at, updated_at
        FROM users
        WHERE email = $1
    `
	err := api.DB.QueryRow(ctx, stmt, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.AuthProvider, &user.Role, &user.Department, &user.IsVerified,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, errs.NotFound("user %s not found", email)
	}
	if err != nil {
		return model.User{}, errs.Transient(err, "querying user by email")
	}
	return user, nil
}

func (api *API) GetUserByID(ctx context.Context, id string) (model.User, error) {
	var user model.User
	stmt := `
        SELECT id, name, email, password_hash, auth_provider, role, department, is_verified, created_at, updated_at
        FROM users
        WHERE id = $1
    `
	err := api.DB.QueryRow(ctx, stmt, id).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.AuthProvider, &user.Role, &user.Department, &user.IsVerified,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, errs.NotFound("user %s not found", id)
	}
	if err != nil {
		return model.User{}, errs.Transient(err, "querying user by id")
	}
	return user, nil
}

// ListDepartmentContactsRepo returns the staff accounts registered to a
// department; they are the recipients of performance alerts.
func (api *API) ListDepartmentContactsRepo(ctx context.Context, department string) ([]model.User, error) {
	stmt := `
        SELECT id, name, email, role, department, is_verified, created_at, updated_at
        FROM users
        WHERE role = $1 AND department = $2
    `
	rows, err := api.DB.Query(ctx, stmt, model.RoleDepartment, department)
	if err != nil {
		return nil, errs.Transient(err, "querying department contacts")
	}
	defer rows.Close()

	var contacts []model.User
	for rows.Next() {
		var user model.User
		err := rows.Scan(
			&user.ID, &user.Name, &user.Email, &user.Role, &user.Department,
			&user.IsVerified, &user.CreatedAt, &user.UpdatedAt,
		)
		if err != nil {
			return nil, errs.Transient(err, "scanning department contact")
		}
		contacts = append(contacts, user)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Transient(err, "iterating department contacts")
	}
	return contacts, nil
}
