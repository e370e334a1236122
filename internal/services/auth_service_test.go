package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	pgrepo "github.com/nabilath/portfolio-api/internal/repositories/postgres"
	"github.com/nabilath/portfolio-api/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newAuthSvc(t *testing.T) AuthService {
	t.Helper()
	svc := NewAuthService(pgrepo.NewUserRepo(newServiceDB(t)), testSecret, time.Hour)
	require.NoError(t, svc.SeedAdmin(context.Background(), "admin@example.com", "hunter2"))
	return svc
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	svc := newAuthSvc(t)

	token, ttl, err := svc.Login(context.Background(), "admin@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, time.Hour, ttl)

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return []byte(testSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	assert.Equal(t, "admin@example.com", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	svc := newAuthSvc(t)

	_, _, err := svc.Login(context.Background(), "admin@example.com", "wrong")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeUnauthorized))
}

func TestLoginUnknownEmailIndistinguishableFromBadPassword(t *testing.T) {
	svc := newAuthSvc(t)

	_, _, errUnknown := svc.Login(context.Background(), "nobody@example.com", "hunter2")
	_, _, errWrong := svc.Login(context.Background(), "admin@example.com", "wrong")
	require.Error(t, errUnknown)
	require.Error(t, errWrong)

	var aeUnknown, aeWrong *utils.AppError
	require.ErrorAs(t, errUnknown, &aeUnknown)
	require.ErrorAs(t, errWrong, &aeWrong)
	assert.Equal(t, aeWrong.Message, aeUnknown.Message)
	assert.Equal(t, aeWrong.Code, aeUnknown.Code)
}

func TestSeedAdminIsIdempotent(t *testing.T) {
	repo := pgrepo.NewUserRepo(newServiceDB(t))
	svc := NewAuthService(repo, testSecret, time.Hour)

	require.NoError(t, svc.SeedAdmin(context.Background(), "admin@example.com", "hunter2"))
	require.NoError(t, svc.SeedAdmin(context.Background(), "admin@example.com", "different"))

	// The original password still works: the second seed was a no-op.
	_, _, err := svc.Login(context.Background(), "admin@example.com", "hunter2")
	require.NoError(t, err)
}

func TestSeedAdminSkipsWhenUnconfigured(t *testing.T) {
	svc := NewAuthService(pgrepo.NewUserRepo(newServiceDB(t)), testSecret, time.Hour)

	require.NoError(t, svc.SeedAdmin(context.Background(), "", ""))

	_, _, err := svc.Login(context.Background(), "admin@example.com", "hunter2")
	require.Error(t, err)
}
