package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"atelier/internal/config"
	"atelier/internal/domain"
	apperrors "atelier/internal/errors"
)

type StaffRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.StaffUser, error)
}

type Claims struct {
	StaffID uint   `json:"staffId"`
	Email   string `json:"email"`
	jwt.StandardClaims
}

// Service issues and validates the stateless staff session tokens. There is
// no server-side session record; the signed token is the whole session.
type Service struct {
	repo   StaffRepository
	secret []byte
	ttl    time.Duration
	logger *zap.Logger
}

func NewService(repo StaffRepository, cfg config.AuthConfig, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.TokenTTL,
		logger: logger,
	}
}

// Login checks credentials and returns a signed session token. Unknown email
// and wrong password produce the same generic error.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	staff, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return "", apperrors.NewUnauthorizedError("invalid credentials")
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(password)) != nil {
		return "", apperrors.NewUnauthorizedError("invalid credentials")
	}

	claims := Claims{
		StaffID: staff.ID,
		Email:   staff.Email,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(s.ttl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}

	s.logger.Info("staff login", zap.String("email", staff.Email), zap.Uint("staffId", staff.ID))
	return signed, nil
}

// ParseToken validates a signed session token and returns its claims.
func (s *Service) ParseToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("invalid token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.NewUnauthorizedError("invalid token")
	}
	return claims, nil
}
