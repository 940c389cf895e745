package qrcode

import (
	"encoding/json"
	"fmt"

	"accounts/config"
	"accounts/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

// TypeDeviceSync marks a QR payload carrying a device sync token.
const TypeDeviceSync = "device-sync"

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	Token string `json:"token"`
	Type  string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(errorCorrectionLevel),
	}
}

// NewQRCodeServiceFromConfig creates the service from the optional qrcode config section.
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch level {
	case "L":
		return qrcode.Low
	case "M":
		return qrcode.Medium
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateSyncQR renders a sync token as a PNG QR code
func (s *qrcodeService) GenerateSyncQR(token string) ([]byte, error) {
	if token == "" {
		return nil, fmt.Errorf("sync token is empty")
	}

	jsonData, err := json.Marshal(QRCodeData{Token: token, Type: TypeDeviceSync})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseSyncQR parses scanned QR code data and returns the sync token
func (s *qrcodeService) ParseSyncQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != TypeDeviceSync {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.Token == "" {
		return "", fmt.Errorf("QR code carries no sync token")
	}

	return data.Token, nil
}
