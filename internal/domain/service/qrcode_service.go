package service

// QRCodeService generates and parses the QR codes printed on tables
type QRCodeService interface {
	// GenerateTableQR returns a PNG encoding the table number
	GenerateTableQR(tableNumber int) ([]byte, error)

	// ParseTableQR decodes scanned QR payload data back to a table number
	ParseTableQR(qrData string) (int, error)
}
