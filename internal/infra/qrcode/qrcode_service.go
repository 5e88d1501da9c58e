package qrcode

import (
	"encoding/json"
	"regexp"

	"lifeline/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const pairingType = "pairing"

var codePattern = regexp.MustCompile(`^[0-9]{4}$`)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData is the JSON carried inside a pairing QR code
type QRCodeData struct {
	Code string `json:"code"`
	Type string `json:"type"`
	URL  string `json:"url,omitempty"` // Deep link for watcher apps
}

// NewQRCodeService creates a QR code service. level accepts low, medium,
// high, highest or their L/M/Q/H shorthands.
func NewQRCodeService(size int, level, baseURL string) service.QRCodeService {
	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(level),
		baseURL:              baseURL,
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch level {
	case "L", "low":
		return qrcode.Low
	case "Q", "high":
		return qrcode.High
	case "H", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GeneratePairingQR renders the connection code as a PNG QR code
func (s *qrcodeService) GeneratePairingQR(code string) ([]byte, error) {
	qrCode, err := newPairingQR(code, s.baseURL, s.errorCorrectionLevel)
	if err != nil {
		return nil, err
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// RenderTerminal renders the same pairing QR code as block characters for a
// terminal.
func RenderTerminal(code, baseURL, level string) (string, error) {
	qrCode, err := newPairingQR(code, baseURL, parseRecoveryLevel(level))
	if err != nil {
		return "", err
	}

	return qrCode.ToSmallString(false), nil
}

func newPairingQR(code, baseURL string, level qrcode.RecoveryLevel) (*qrcode.QRCode, error) {
	if !codePattern.MatchString(code) {
		return nil, errors.Errorf("invalid connection code %q", code)
	}

	data := QRCodeData{Code: code, Type: pairingType}
	if baseURL != "" {
		data.URL = baseURL + "?code=" + code
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), level)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	return qrCode, nil
}

// ParsePairingQR extracts the connection code from scanned QR JSON
func (s *qrcodeService) ParsePairingQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != pairingType {
		return "", errors.Errorf("invalid QR code type: %s", data.Type)
	}

	if !codePattern.MatchString(data.Code) {
		return "", errors.Errorf("invalid connection code %q", data.Code)
	}

	return data.Code, nil
}
