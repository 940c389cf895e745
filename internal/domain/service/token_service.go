package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token types carried in the "type" claim.
const (
	TokenTypeAccess = "access"
	TokenTypeSync   = "sync"
)

// AccessClaims are the claims of a bearer access token.
type AccessClaims struct {
	DeviceID string `json:"device_id"`
	Role     string `json:"role,omitempty"`
	Type     string `json:"type"`
	jwt.RegisteredClaims
}

// SyncClaims are the claims of a single-use device sync token. The token ID (jti) is the
// key used to reject replays.
type SyncClaims struct {
	DeviceID  string `json:"device_id"`
	DeviceID2 string `json:"device_id_2"`
	Type      string `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// ValidateAccessToken checks an access token and returns its claims.
	ValidateAccessToken(tokenString string) (*AccessClaims, error)

	// GenerateSyncToken creates a sync token pairing two devices.
	GenerateSyncToken(deviceID, otherDeviceID string) (string, *SyncClaims, error)

	// ValidateSyncToken checks a sync token and returns its claims.
	ValidateSyncToken(tokenString string) (*SyncClaims, error)

	// GetSyncTokenDuration returns the configured lifetime of sync tokens.
	GetSyncTokenDuration() time.Duration
}
