package service

// QRCodeService renders QR codes for payment links.
type QRCodeService interface {
	// GeneratePaymentQR renders the pay-start URL as a PNG image.
	GeneratePaymentQR(paymentURL string) ([]byte, error)
}
