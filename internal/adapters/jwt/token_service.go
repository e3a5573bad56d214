package token_adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"handmedown-service/internal/contextkeys"
	"handmedown-service/internal/core/domain"
	"handmedown-service/internal/core/port"
)

// TokenService - реализация TokenServicePort для JWT.
type TokenService struct {
	// Секретный ключ для подписи токенов. Приходит из конфига.
	signingKey []byte
}

func NewTokenService(signingKey string) (*TokenService, error) {
	if signingKey == "" {
		return nil, fmt.Errorf("JWT signing key cannot be empty")
	}
	return &TokenService{signingKey: []byte(signingKey)}, nil
}

// jwtCustomClaims - наши claims поверх стандартных.
type jwtCustomClaims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken создает новый JWT токен с подписью HS256.
func (s *TokenService) GenerateToken(ctx context.Context, user *domain.User, ttl time.Duration) (string, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "TokenService",
		"method":    "GenerateToken",
		"user_id":   user.ID.String(),
	})

	claims := &jwtCustomClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "handmedown-service",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(s.signingKey)
	if err != nil {
		logger.Error("Failed to sign token", err, nil)
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	logger.Debug("Token generated successfully.", port.Fields{"ttl": ttl.String()})
	return signedToken, nil
}

// ValidateToken проверяет токен. Любая причина отказа (подпись, срок,
// формат) схлопывается в ErrTokenInvalid, детали остаются в логах.
func (s *TokenService) ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "TokenService",
		"method":    "ValidateToken",
	})

	token, err := jwt.ParseWithClaims(tokenString, &jwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			// Токен истек: claims читаемы, но токен уже не действителен
			if claims, ok := token.Claims.(*jwtCustomClaims); ok {
				logger.Warn("Token has expired", port.Fields{"user_id": claims.UserID.String()})
			}
		} else {
			logger.Error("Invalid token format or signature", err, nil)
		}
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(*jwtCustomClaims)
	if !ok || !token.Valid {
		logger.Error("Token was parsed without error, but claims type assertion failed", nil, nil)
		return nil, domain.ErrTokenInvalid
	}

	return &domain.Claims{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}
