package qrcode

import (
	"testing"

	"insureflow/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePayment() *service.PaymentQRData {
	return &service.PaymentQRData{
		Reference:   "IF3F2A9C1E7B",
		BankCode:    "VCB",
		Amount:      480_000,
		Currency:    "VND",
		PackageID:   "vehicle-basic",
		Description: "Thanh toan IF3F2A9C1E7B",
	}
}

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
			svc := NewQRCodeService(tt.size, tt.errorCorrectionLevel)

			qrBytes, err := svc.GeneratePaymentQR(samplePayment())
			require.NoError(t, err)
			assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, qrBytes[:4])
		})
	}
}

func TestQRCodeService_GeneratePaymentQR_Rejects(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	noReference := samplePayment()
	noReference.Reference = ""
	zeroAmount := samplePayment()
	zeroAmount.Amount = 0

	for name, data := range map[string]*service.PaymentQRData{
		"nil":          nil,
		"no reference": noReference,
		"zero amount":  zeroAmount,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.GeneratePaymentQR(data)
			require.Error(t, err)
		})
	}
}

func TestQRCodeService_ParsePaymentQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	parsed, err := svc.ParsePaymentQR(`{"type":"payment","reference":"IF3F2A9C1E7B","bank_code":"VCB","amount":480000,"currency":"VND","package_id":"vehicle-basic","description":"Thanh toan IF3F2A9C1E7B"}`)

	require.NoError(t, err)
	assert.Equal(t, samplePayment(), parsed)
}

func TestQRCodeService_ParsePaymentQR_Invalid(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	tests := []struct {
		name   string
		qrData string
	}{
		{"Invalid JSON", "not json"},
		{"Wrong type", `{"type":"subscription","reference":"IF1"}`},
		{"Missing reference", `{"type":"payment","amount":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParsePaymentQR(tt.qrData)
			require.Error(t, err)
		})
	}
}
