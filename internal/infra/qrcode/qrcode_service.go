package qrcode

import (
	"encoding/json"

	"insureflow/internal/domain/service"
	"insureflow/internal/errors"

	"github.com/skip2/go-qrcode"
)

const paymentQRType = "payment"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// paymentQRPayload is the JSON encoded into a payment QR code
type paymentQRPayload struct {
	Type string `json:"type"`
	service.PaymentQRData
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePaymentQR renders the transfer details of a simulated payment as a PNG
func (s *qrcodeService) GeneratePaymentQR(data *service.PaymentQRData) ([]byte, error) {
	if data == nil || data.Reference == "" {
		return nil, errors.New("payment reference is required")
	}
	if data.Amount <= 0 {
		return nil, errors.Errorf("invalid payment amount: %d", data.Amount)
	}

	jsonData, err := json.Marshal(paymentQRPayload{Type: paymentQRType, PaymentQRData: *data})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParsePaymentQR decodes the content of a payment QR code
func (s *qrcodeService) ParsePaymentQR(qrData string) (*service.PaymentQRData, error) {
	var payload paymentQRPayload
	if err := json.Unmarshal([]byte(qrData), &payload); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if payload.Type != paymentQRType {
		return nil, errors.Errorf("invalid QR code type: %s", payload.Type)
	}
	if payload.Reference == "" {
		return nil, errors.New("QR code has no payment reference")
	}

	return &payload.PaymentQRData, nil
}
