package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/freelancehub/backend/internal/api/domain"
	"github.com/freelancehub/backend/internal/api/dto"
	"github.com/freelancehub/backend/internal/api/model"
	"github.com/freelancehub/backend/shared/auth"
)

const (
	minUsernameLen = 3
	minPasswordLen = 8
)

// UserService owns registration, login and profile management.
type UserService struct {
	users  UserStore
	tokens *auth.TokenIssuer
	logger *slog.Logger
}

// NewUserService creates a UserService.
func NewUserService(users UserStore, tokens *auth.TokenIssuer, logger *slog.Logger) *UserService {
	return &UserService{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

// Register creates a new account with the given role and returns the
// stored user. Usernames and emails are unique across all accounts.
func (s *UserService) Register(ctx context.Context, req *dto.RegisterRequest) (*model.User, error) {
	fields := map[string]string{}

	username := strings.TrimSpace(req.Username)
	if utf8.RuneCountInString(username) < minUsernameLen {
		fields["username"] = fmt.Sprintf("must be at least %d characters long", minUsernameLen)
	}

	email := strings.TrimSpace(req.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		fields["email"] = "must be a valid email address"
	}

	if len(req.Password) < minPasswordLen {
		fields["password"] = fmt.Sprintf("must be at least %d characters long", minPasswordLen)
	}

	if !domain.ValidRole(req.Role) {
		fields["role"] = "must be either client or freelancer"
	}

	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &model.User{
		UserID:       uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         req.Role,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Bio:          strings.TrimSpace(req.Bio),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		slog.String("user_id", user.UserID),
		slog.String("username", user.Username),
		slog.String("role", user.Role),
	)

	return user, nil
}

// Login verifies the credentials and returns the user with a signed
// bearer token. An unknown username and a wrong password produce the
// same error.
func (s *UserService) Login(ctx context.Context, req *dto.LoginRequest) (*model.User, string, error) {
	user, err := s.users.GetUserByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("get user: %w", err)
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.UserID, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info("user logged in", slog.String("user_id", user.UserID))

	return user, token, nil
}

// Get returns the caller's own account.
func (s *UserService) Get(ctx context.Context, caller domain.Caller) (*model.User, error) {
	if caller.IsAnonymous() {
		return nil, domain.ErrUnauthenticated
	}

	return s.users.GetUserByID(ctx, caller.ID)
}

// UpdateProfile changes the caller's profile fields. Only fields present
// in the request are touched; username, password and role never change
// here.
func (s *UserService) UpdateProfile(ctx context.Context, caller domain.Caller, req *dto.UpdateProfileRequest) (*model.User, error) {
	if caller.IsAnonymous() {
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.users.GetUserByID(ctx, caller.ID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, domain.NewValidationError("email", "must be a valid email address")
		}
		user.Email = email
	}
	if req.FirstName != nil {
		user.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		user.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Bio != nil {
		user.Bio = strings.TrimSpace(*req.Bio)
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("profile updated", slog.String("user_id", user.UserID))

	return user, nil
}
