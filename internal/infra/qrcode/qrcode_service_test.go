package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"fishers/config"

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
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_Encode(t *testing.T) {
	service := NewQRCodeService(200, "M")

	qrBytes, err := service.Encode("http://localhost:8080/receipts/12/verify?t=0123456789abcdef")
	require.NoError(t, err)
	require.NotEmpty(t, qrBytes)

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
}

func TestQRCodeService_EncodeEmpty(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.Encode("")
	assert.Error(t, err)
}

func TestNewFromConfig(t *testing.T) {
	service := NewFromConfig(&config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H"}})

	qrBytes, err := service.Encode("1")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())

	assert.NotNil(t, NewFromConfig(&config.Config{}))
}
