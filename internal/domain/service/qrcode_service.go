package service

// PaymentQRData is the payload encoded into a payment QR code
type PaymentQRData struct {
	Reference   string `json:"reference"`
	BankCode    string `json:"bank_code"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	PackageID   string `json:"package_id"`
	Description string `json:"description"`
}

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GeneratePaymentQR generates a PNG QR code for a simulated payment
	GeneratePaymentQR(data *PaymentQRData) ([]byte, error)

	// ParsePaymentQR parses QR code content back into its payment payload
	ParsePaymentQR(qrData string) (*PaymentQRData, error)
}
