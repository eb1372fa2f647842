package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"atelier/internal/config"
	"atelier/internal/domain"
	apperrors "atelier/internal/errors"
)

type mockStaffRepository struct {
	FindByEmailFunc func(ctx context.Context, email string) (*domain.StaffUser, error)
}

func (m *mockStaffRepository) FindByEmail(ctx context.Context, email string) (*domain.StaffUser, error) {
	return m.FindByEmailFunc(ctx, email)
}

func newTestService(repo StaffRepository) *Service {
	return NewService(repo, config.AuthConfig{
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
	}, zap.NewNop())
}

func staffWithPassword(t *testing.T, password string) *domain.StaffUser {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.StaffUser{ID: 7, Email: "staff@example.com", PasswordHash: string(hash)}
}

func TestLogin_Success(t *testing.T) {
	staff := staffWithPassword(t, "hunter22")
	svc := newTestService(&mockStaffRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.StaffUser, error) {
			return staff, nil
		},
	})

	token, err := svc.Login(context.Background(), "staff@example.com", "hunter22")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.StaffID)
	assert.Equal(t, "staff@example.com", claims.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	staff := staffWithPassword(t, "hunter22")
	svc := newTestService(&mockStaffRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.StaffUser, error) {
			return staff, nil
		},
	})

	_, err := svc.Login(context.Background(), "staff@example.com", "wrong")
	_, ok := apperrors.IsUnauthorizedError(err)
	assert.True(t, ok)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newTestService(&mockStaffRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.StaffUser, error) {
			return nil, apperrors.NewNotFoundError("staff user not found")
		},
	})

	_, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	ue, ok := apperrors.IsUnauthorizedError(err)
	require.True(t, ok)
	assert.Equal(t, "invalid credentials", ue.Message, "unknown email is indistinguishable from a wrong password")
}

func TestParseToken_Garbage(t *testing.T) {
	svc := newTestService(&mockStaffRepository{})

	_, err := svc.ParseToken("not-a-token")
	_, ok := apperrors.IsUnauthorizedError(err)
	assert.True(t, ok)
}

func TestMiddleware(t *testing.T) {
	staff := staffWithPassword(t, "hunter22")
	svc := newTestService(&mockStaffRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.StaffUser, error) {
			return staff, nil
		},
	})
	token, err := svc.Login(context.Background(), "staff@example.com", "hunter22")
	require.NoError(t, err)

	var sawClaims bool
	handler := svc.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		sawClaims = ok && claims.StaffID == 7
		w.WriteHeader(http.StatusOK)
	}))

	// No token.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/products?id=1", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Bad token.
	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/products?id=1", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Valid token.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/products?id=1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, sawClaims)
}
