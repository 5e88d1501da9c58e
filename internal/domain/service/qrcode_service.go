package service

// QRCodeService renders and parses pairing QR codes
type QRCodeService interface {
	// GeneratePairingQR renders a PNG QR code carrying the connection code.
	GeneratePairingQR(code string) ([]byte, error)

	// ParsePairingQR extracts the connection code from scanned QR content.
	ParsePairingQR(qrData string) (string, error)
}
