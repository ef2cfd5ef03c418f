package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateAttendanceQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	dateID := uuid.New()

	qrBytes, err := service.GenerateAttendanceQR(dateID, "0042")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_ParseAttendanceQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	dateID := uuid.New()

	data := QRCodeData{
		DateID: dateID.String(),
		Code:   "0042",
		Type:   "attendance",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsedID, code, err := service.ParseAttendanceQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, dateID, parsedID)
	assert.Equal(t, "0042", code)
}

func TestQRCodeService_ParseAttendanceQR_InvalidJSON(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, _, err := service.ParseAttendanceQR("invalid json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal QR code data")
}

func TestQRCodeService_ParseAttendanceQR_InvalidType(t *testing.T) {
	service := NewQRCodeService(256, "M")

	data := QRCodeData{
		DateID: uuid.New().String(),
		Code:   "0042",
		Type:   "invalid_type",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, _, err = service.ParseAttendanceQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid QR code type")
}

func TestQRCodeService_ParseAttendanceQR_MalformedCode(t *testing.T) {
	service := NewQRCodeService(256, "M")

	for _, code := range []string{"", "42", "12345", "12a4"} {
		data := QRCodeData{
			DateID: uuid.New().String(),
			Code:   code,
			Type:   "attendance",
		}
		jsonData, err := json.Marshal(data)
		require.NoError(t, err)

		_, _, err = service.ParseAttendanceQR(string(jsonData))
		assert.Error(t, err, "code %q should be rejected", code)
	}
}

func TestQRCodeService_ParseAttendanceQR_InvalidUUID(t *testing.T) {
	service := NewQRCodeService(256, "M")

	data := QRCodeData{
		DateID: "not-a-valid-uuid",
		Code:   "0042",
		Type:   "attendance",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, _, err = service.ParseAttendanceQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse date ID")
}
