package qrcode

import (
	"encoding/json"
	"fmt"

	"coffeeshop/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const tableQRType = "table"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// TableQRData is the payload encoded on a table's QR code
type TableQRData struct {
	TableNumber int    `json:"table_number"`
	Type        string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
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

// GenerateTableQR generates a PNG QR code identifying a dining table
func (s *qrcodeService) GenerateTableQR(tableNumber int) ([]byte, error) {
	if tableNumber <= 0 {
		return nil, fmt.Errorf("invalid table number: %d", tableNumber)
	}

	jsonData, err := json.Marshal(TableQRData{
		TableNumber: tableNumber,
		Type:        tableQRType,
	})
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

// ParseTableQR parses scanned QR code data and returns the table number
func (s *qrcodeService) ParseTableQR(qrData string) (int, error) {
	var data TableQRData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return 0, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != tableQRType {
		return 0, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.TableNumber <= 0 {
		return 0, fmt.Errorf("invalid table number: %d", data.TableNumber)
	}

	return data.TableNumber, nil
}
