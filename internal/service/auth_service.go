package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/schoolsync/ptm-api/internal/models"
	appErrors "github.com/schoolsync/ptm-api/pkg/errors"
)

type authRepository interface {
	FindByCredentials(ctx context.Context, username, password string, role models.Role) (*models.User, error)
}

// LoginRequest holds the credential triple. All three fields are required;
// role selects the account table the lookup hits.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=parent teacher"`
}

// AuthService verifies credentials. Session issuance is the caller's
// concern; verification has no side effects beyond the read.
type AuthService struct {
	repo      authRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAuthService constructs an AuthService.
func NewAuthService(repo authRepository, validate *validator.Validate, logger *zap.Logger) *AuthService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{repo: repo, validator: validate, logger: logger}
}

// Login returns the matching user or an invalid-credentials failure.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Missing required fields")
	}

	user, err := s.repo.FindByCredentials(ctx, req.Username, req.Password, models.Role(req.Role))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "Invalid credentials")
		}
		s.logger.Error("credential lookup failed", zap.String("role", req.Role), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Internal server error")
	}

	return user, nil
}
