package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/nabilath/portfolio-api/internal/models"
	pgrepo "github.com/nabilath/portfolio-api/internal/repositories/postgres"
	"github.com/nabilath/portfolio-api/internal/utils"
)

// AuthService verifies the admin credential and issues the self-contained
// session token. Tokens are stateless: there is no revocation list, so a
// token stays valid until expiry even after logout. The short TTL bounds
// the exposure.
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, ttl time.Duration, err error)
	SeedAdmin(ctx context.Context, email, password string) error
}

type authService struct {
	users  pgrepo.UserRepository
	secret []byte
	ttl    time.Duration
}

func NewAuthService(users pgrepo.UserRepository, secret string, ttl time.Duration) AuthService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &authService{users: users, secret: []byte(secret), ttl: ttl}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, time.Duration, error) {
	const op = "AuthService.Login"

	if email == "" || password == "" {
		return "", 0, utils.E(utils.CodeInvalidArgument, op, "email and password are required", nil)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			// same answer as a bad password; do not leak which one failed
			return "", 0, utils.E(utils.CodeUnauthorized, op, "invalid email or password", nil)
		}
		return "", 0, utils.E(utils.CodeInternal, op, "failed to load user", err)
	}
	if err := utils.CheckPassword(user.PasswordHash, password); err != nil {
		return "", 0, utils.E(utils.CodeUnauthorized, op, "invalid email or password", nil)
	}

	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   user.Email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", 0, utils.E(utils.CodeInternal, op, "failed to sign token", err)
	}
	return token, s.ttl, nil
}

// SeedAdmin creates the admin account on first boot when the configured
// email is not present yet. A no-op when credentials are unset or the
// account already exists.
func (s *authService) SeedAdmin(ctx context.Context, email, password string) error {
	const op = "AuthService.SeedAdmin"

	if email == "" || password == "" {
		return nil
	}

	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, utils.ErrNotFound) {
		return utils.E(utils.CodeInternal, op, "failed to check admin user", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return utils.E(utils.CodeInternal, op, "failed to hash password", err)
	}
	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to create admin user", err)
	}
	return nil
}
