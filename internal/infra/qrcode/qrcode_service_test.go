package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		in   string
		want qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"low", qrcode.Low},
		{"medium", qrcode.Medium},
		{"Q", qrcode.High},
		{"highest", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.in))
		})
	}
}

func TestQRCodeService_GeneratePairingQR(t *testing.T) {
	service := NewQRCodeService(256, "medium", "lifeline://pair")

	qrBytes, err := service.GeneratePairingQR("0420")
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GeneratePairingQR_RejectsMalformedCode(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	for _, code := range []string{"", "123", "12345", "12a4"} {
		_, err := service.GeneratePairingQR(code)
		assert.Error(t, err, code)
	}
}

func TestQRCodeService_ParsePairingQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	raw, err := json.Marshal(QRCodeData{Code: "0007", Type: "pairing"})
	require.NoError(t, err)

	code, err := service.ParsePairingQR(string(raw))
	require.NoError(t, err)
	assert.Equal(t, "0007", code)
}

func TestQRCodeService_ParsePairingQR_Invalid(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	tests := []struct {
		name    string
		data    string
		wantMsg string
	}{
		{name: "not json", data: "invalid json", wantMsg: "failed to unmarshal QR code data"},
		{name: "wrong type", data: `{"code":"1234","type":"subscription"}`, wantMsg: "invalid QR code type"},
		{name: "bad code", data: `{"code":"12","type":"pairing"}`, wantMsg: "invalid connection code"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ParsePairingQR(tt.data)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestRenderTerminal(t *testing.T) {
	out, err := RenderTerminal("0427", "", "low")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.Contains(t, out, "\n")

	_, err = RenderTerminal("42", "", "low")
	assert.Error(t, err)
}
