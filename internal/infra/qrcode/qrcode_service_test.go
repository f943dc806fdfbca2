package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
	}{
		{"Low error correction", "L"},
		{"Medium error correction", "M"},
		{"High error correction", "Q"},
		{"Highest error correction", "H"},
		{"Default error correction", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, NewQRCodeService(256, tt.errorCorrectionLevel))
		})
	}
}

func TestQRCodeService_GenerateTableQR(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		qrBytes, err := NewQRCodeService(size, "M").GenerateTableQR(4)
		require.NoError(t, err)
		require.Greater(t, len(qrBytes), len(pngMagic))
		assert.Equal(t, pngMagic, qrBytes[:4])
	}
}

func TestQRCodeService_GenerateTableQR_InvalidNumber(t *testing.T) {
	_, err := NewQRCodeService(256, "M").GenerateTableQR(0)
	assert.Error(t, err)
}

func TestQRCodeService_ParseTableQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	payload, err := json.Marshal(TableQRData{TableNumber: 7, Type: "table"})
	require.NoError(t, err)

	number, err := service.ParseTableQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, 7, number)
}

func TestQRCodeService_ParseTableQR_Errors(t *testing.T) {
	service := NewQRCodeService(256, "M")

	tests := []struct {
		name string
		data string
	}{
		{"not json", "table-7"},
		{"wrong type", `{"table_number":7,"type":"subscription"}`},
		{"missing number", `{"type":"table"}`},
		{"negative number", `{"table_number":-2,"type":"table"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ParseTableQR(tt.data)
			assert.Error(t, err)
		})
	}
}
