package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing.
// Attendance QR codes carry the date ID and confirmation code so the other
// party can verify by scanning instead of typing.
type QRCodeService interface {
	// GenerateAttendanceQR generates a QR code image for an attendance code.
	GenerateAttendanceQR(dateID uuid.UUID, code string) ([]byte, error)

	// ParseAttendanceQR parses QR code data back into a date ID and code.
	ParseAttendanceQR(qrData string) (uuid.UUID, string, error)
}
