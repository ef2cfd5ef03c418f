package qrcode

import (
	"encoding/json"
	"fmt"

	"cafemeetup/internal/domain/entity"
	"cafemeetup/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	DateID string `json:"date_id"`
	Code   string `json:"code"`
	Type   string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateAttendanceQR renders a confirmed date's attendance code as a PNG
// the other party can scan at the venue.
func (s *qrcodeService) GenerateAttendanceQR(dateID uuid.UUID, code string) ([]byte, error) {
	data := QRCodeData{
		DateID: dateID.String(),
		Code:   code,
		Type:   "attendance",
	}

	jsonData, err := json.Marshal(data)
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

// ParseAttendanceQR parses scanned QR payload and returns the date ID and
// confirmation code it carries.
func (s *qrcodeService) ParseAttendanceQR(qrData string) (uuid.UUID, string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != "attendance" {
		return uuid.Nil, "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if !entity.ValidConfirmationCode(data.Code) {
		return uuid.Nil, "", fmt.Errorf("invalid confirmation code format")
	}

	dateID, err := uuid.Parse(data.DateID)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("failed to parse date ID: %w", err)
	}

	return dateID, data.Code, nil
}
