package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freelancehub/backend/internal/api/domain"
	"github.com/freelancehub/backend/internal/api/dto"
	"github.com/freelancehub/backend/internal/api/model"
	"github.com/freelancehub/backend/shared/auth"
)

func testTokenIssuer() *auth.TokenIssuer {
	return &auth.TokenIssuer{
		Secret: []byte("test-secret-test-secret-test-1234"),
		Issuer: "freelancehub-test",
		TTL:    time.Hour,
	}
}

func TestUserService_Register(t *testing.T) {
	validReq := func() *dto.RegisterRequest {
		return &dto.RegisterRequest{
			Username: "freelancer1",
			Email:    "freelancer1@example.com",
			Password: "s3cret-passw0rd",
			Role:     "freelancer",
		}
	}

	t.Run("valid registration", func(t *testing.T) {
		var stored *model.User
		users := &fakeUserStore{
			createUserFn: func(_ context.Context, user *model.User) error {
				stored = user
				return nil
			},
		}
		svc := NewUserService(users, testTokenIssuer(), testLogger())

		got, err := svc.Register(context.Background(), validReq())

		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.NotEmpty(t, got.UserID)
		assert.Equal(t, "freelancer1", got.Username)
		assert.NotEmpty(t, got.PasswordHash)
		assert.NotEqual(t, "s3cret-passw0rd", got.PasswordHash)
	})

	t.Run("validation failures are collected per field", func(t *testing.T) {
		svc := NewUserService(&fakeUserStore{}, testTokenIssuer(), testLogger())

		_, err := svc.Register(context.Background(), &dto.RegisterRequest{
			Username: "ab",
			Email:    "not-an-email",
			Password: "short",
			Role:     "admin",
		})

		ve, ok := domain.AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, ve.Fields, "username")
		assert.Contains(t, ve.Fields, "email")
		assert.Contains(t, ve.Fields, "password")
		assert.Contains(t, ve.Fields, "role")
	})

	t.Run("username minimum counts characters, not bytes", func(t *testing.T) {
		users := &fakeUserStore{
			createUserFn: func(context.Context, *model.User) error {
				return nil
			},
		}
		svc := NewUserService(users, testTokenIssuer(), testLogger())

		req := validReq()
		req.Username = "山田" // two characters, six bytes

		_, err := svc.Register(context.Background(), req)

		ve, ok := domain.AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, ve.Fields, "username")

		req.Username = "山田太郎"
		_, err = svc.Register(context.Background(), req)
		require.NoError(t, err)
	})

	t.Run("taken username propagates", func(t *testing.T) {
		users := &fakeUserStore{
			createUserFn: func(context.Context, *model.User) error {
				return domain.ErrUsernameTaken
			},
		}
		svc := NewUserService(users, testTokenIssuer(), testLogger())

		_, err := svc.Register(context.Background(), validReq())

		assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	})
}

func TestUserService_Login(t *testing.T) {
	password := "s3cret-passw0rd"
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	storedUser := &model.User{
		UserID:       "user-1",
		Username:     "freelancer1",
		Email:        "freelancer1@example.com",
		PasswordHash: hash,
		Role:         "freelancer",
	}

	users := func(u *model.User) *fakeUserStore {
		return &fakeUserStore{
			getUserByUsernameFn: func(_ context.Context, username string) (*model.User, error) {
				if u == nil || u.Username != username {
					return nil, domain.ErrUserNotFound
				}
				return u, nil
			},
		}
	}

	t.Run("valid credentials return user and token", func(t *testing.T) {
		issuer := testTokenIssuer()
		svc := NewUserService(users(storedUser), issuer, testLogger())

		got, token, err := svc.Login(context.Background(), &dto.LoginRequest{
			Username: "freelancer1",
			Password: password,
		})

		require.NoError(t, err)
		assert.Equal(t, storedUser.UserID, got.UserID)

		claims, err := issuer.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, storedUser.UserID, claims.UserID)
		assert.Equal(t, storedUser.Role, claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc := NewUserService(users(storedUser), testTokenIssuer(), testLogger())

		_, _, err := svc.Login(context.Background(), &dto.LoginRequest{
			Username: "freelancer1",
			Password: "wrong",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown username yields the same error", func(t *testing.T) {
		svc := NewUserService(users(nil), testTokenIssuer(), testLogger())

		_, _, err := svc.Login(context.Background(), &dto.LoginRequest{
			Username: "nobody",
			Password: password,
		})

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	caller := domain.Caller{ID: "user-1", Role: domain.RoleFreelancer}

	current := func() *model.User {
		return &model.User{
			UserID:    "user-1",
			Username:  "freelancer1",
			Email:     "freelancer1@example.com",
			Role:      "freelancer",
			FirstName: "Ada",
			Bio:       "old bio",
		}
	}

	t.Run("only provided fields change", func(t *testing.T) {
		var stored *model.User
		users := &fakeUserStore{
			getUserByIDFn: func(context.Context, string) (*model.User, error) {
				return current(), nil
			},
			updateUserFn: func(_ context.Context, user *model.User) error {
				stored = user
				return nil
			},
		}
		svc := NewUserService(users, testTokenIssuer(), testLogger())

		bio := "new bio"
		got, err := svc.UpdateProfile(context.Background(), caller, &dto.UpdateProfileRequest{Bio: &bio})

		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "new bio", got.Bio)
		assert.Equal(t, "Ada", got.FirstName)
		assert.Equal(t, "freelancer1@example.com", got.Email)
	})

	t.Run("invalid email is rejected", func(t *testing.T) {
		users := &fakeUserStore{
			getUserByIDFn: func(context.Context, string) (*model.User, error) {
				return current(), nil
			},
		}
		svc := NewUserService(users, testTokenIssuer(), testLogger())

		bad := "not-an-email"
		_, err := svc.UpdateProfile(context.Background(), caller, &dto.UpdateProfileRequest{Email: &bad})

		ve, ok := domain.AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, ve.Fields, "email")
	})

	t.Run("anonymous caller", func(t *testing.T) {
		svc := NewUserService(&fakeUserStore{}, testTokenIssuer(), testLogger())

		_, err := svc.UpdateProfile(context.Background(), domain.Caller{}, &dto.UpdateProfileRequest{})

		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})
}
