package rest

import (
	"context"
	"strings"
	"time"

	"github.com/civitrack/civitrack/internal/model"
	"github.com/civitrack/civitrack/util"
	"github.com/civitrack/civitrack/util/values"
	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"
)

type TokenClaims struct {
	UserID string `json:"sub"`
	Type   string `json:"typ"`
	Exp    int64  `json:"exp"`
}

func (api *API) createToken(id string) (string, time.Time, error) {
	expTime, err := time.ParseDuration(api.Config.JwtExpires)
	if err != nil {
		return "", time.Time{}, err
	}
	expiresAt := time.Now().Add(expTime)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": id,
		"exp": expiresAt.Unix(),
		"iat": time.Now().Unix(),
		"typ": "access",
	})

	tokenString, err := token.SignedString([]byte(api.Config.JwtSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

func (api *API) createRefreshToken(id string) (string, time.Time, error) {
	expTime, err := time.ParseDuration(api.Config.RefreshExpiry)
	if err != nil {
		return "", time.Time{}, err
	}
	expiresAt := time.Now().Add(expTime)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": id,
		"exp": expiresAt.Unix(),
		"iat": time.Now().Unix(),
		"typ": "refresh",
	})

	tokenString, err := token.SignedString([]byte(api.Config.RefreshSecret))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

func (api *API) CreateNewUser(ctx context.Context, req model.RegisterRequest) (*model.LoginUserResponse, string, string, error) {
	req.Email = strings.TrimSpace(req.Email)

	if err := util.ValidateStruct(req); err != nil {
		return nil, values.BadRequestBody, "invalid registration request", err
	}

	role := req.Role
	if role == "" {
		role = model.RoleCitizen
	}

	// Staff accounts must be scoped to a department; citizens and admins
	// must not be.
	if role == model.RoleDepartment && req.Department == "" {
		return nil, values.BadRequestBody, "department staff must name a department", errMissingDepartment
	}
	if role != model.RoleDepartment && req.Department != "" {
		return nil, values.BadRequestBody, "only department staff carry a department", errUnexpectedDepartment
	}

	if _, err := api.GetUserByEmail(ctx, req.Email); err == nil {
		return nil, values.Conflict, "user already exists", errUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, values.Error, "failed to hash password", err
	}
	hashStr := string(hash)

	user := model.User{
		ID:           util.GenerateUUID(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: &hashStr,
		AuthProvider: "local",
		Role:         role,
	}
	if req.Department != "" {
		user.Department = &req.Department
	}

	if err := api.CreateNewUserRepo(ctx, user); err != nil {
		return nil, values.Error, "failed to create user", err
	}

	return &model.LoginUserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       user.Role,
		Department: user.Department,
	}, values.Created, "Account created successfully", nil
}

func (api *API) LoginUser(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, string, string, error) {
	if err := util.ValidateStruct(req); err != nil {
		return nil, values.BadRequestBody, "invalid login request", err
	}

	user, err := api.GetUserByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		return nil, values.NotAuthorised, "invalid credentials", err
	}

	if user.PasswordHash == nil {
		return nil, values.NotAuthorised, "invalid credentials", errNoPassword
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, values.NotAuthorised, "invalid credentials", err
	}

	token, _, err := api.createToken(user.ID.String())
	if err != nil {
		return nil, values.Error, "failed to create token", err
	}
	refresh, _, err := api.createRefreshToken(user.ID.String())
	if err != nil {
		return nil, values.Error, "failed to create refresh token", err
	}

	return &model.LoginResponse{
		User: &model.LoginUserResponse{
			ID:         user.ID,
			Name:       user.Name,
			Email:      user.Email,
			Role:       user.Role,
			Department: user.Department,
			IsVerified: user.IsVerified,
		},
		Token:        token,
		RefreshToken: refresh,
	}, values.Success, "Login successful", nil
}
