// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"accounts/config"
	"accounts/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrUnexpectedTokenType is returned when a valid token carries the wrong "type" claim.
var ErrUnexpectedTokenType = errors.New("unexpected token type")

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret string        // Secret key for verifying access tokens.
	syncSecret   string        // Secret key for signing device sync tokens.
	syncTTL      time.Duration // Time-to-live for sync tokens.
	now          func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Sync == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	syncTTL := 10 * time.Minute
	if cfg.SyncToken != nil && cfg.SyncToken.TTL > 0 {
		syncTTL = cfg.SyncToken.TTL
	}

	return &jwtService{
		accessSecret: cfg.SecretKey.Access,
		syncSecret:   cfg.SecretKey.Sync,
		syncTTL:      syncTTL,
		now:          time.Now,
	}, nil
}

// ValidateAccessToken checks an access token and returns its claims.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.AccessClaims, error) {
	claims := &service.AccessClaims{}
	if err := parse(tokenString, claims, s.accessSecret); err != nil {
		return nil, err
	}

	// Tokens minted upstream may omit the type claim.
	if claims.Type != "" && claims.Type != service.TokenTypeAccess {
		return nil, errors.Wrapf(ErrUnexpectedTokenType, "got %q", claims.Type)
	}
	if claims.DeviceID == "" {
		return nil, errors.New("device_id claim is missing")
	}

	return claims, nil
}

// GenerateSyncToken creates a single-use token pairing two devices.
func (s *jwtService) GenerateSyncToken(deviceID, otherDeviceID string) (string, *service.SyncClaims, error) {
	now := s.now()
	claims := &service.SyncClaims{
		DeviceID:  deviceID,
		DeviceID2: otherDeviceID,
		Type:      service.TokenTypeSync,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   deviceID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.syncTTL)),
		},
	}

	token, err := sign(claims, s.syncSecret)
	if err != nil {
		return "", nil, err
	}

	return token, claims, nil
}

// ValidateSyncToken checks a sync token and returns its claims.
func (s *jwtService) ValidateSyncToken(tokenString string) (*service.SyncClaims, error) {
	claims := &service.SyncClaims{}
	if err := parse(tokenString, claims, s.syncSecret); err != nil {
		return nil, err
	}

	if claims.Type != service.TokenTypeSync {
		return nil, errors.Wrapf(ErrUnexpectedTokenType, "got %q", claims.Type)
	}
	if claims.DeviceID == "" || claims.DeviceID2 == "" {
		return nil, errors.New("sync token must name both devices")
	}

	return claims, nil
}

// GetSyncTokenDuration returns the configured duration for sync tokens.
func (s *jwtService) GetSyncTokenDuration() time.Duration {
	return s.syncTTL
}

func sign(claims jwt.Claims, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

func parse(tokenString string, claims jwt.Claims, secret string) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return errors.New("token is not valid")
	}

	return nil
}
