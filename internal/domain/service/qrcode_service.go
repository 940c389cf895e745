package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateSyncQR renders a sync token as a PNG QR code
	GenerateSyncQR(token string) ([]byte, error)

	// ParseSyncQR parses scanned QR code data and returns the sync token
	ParseSyncQR(qrData string) (string, error)
}
