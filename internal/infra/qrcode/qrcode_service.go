// Package qrcode renders payment links as PNG QR codes.
package qrcode

import (
	"net/url"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256
	minSize     = 64
	maxSize     = 1024
)

// recoveryLevels maps the conventional L/M/Q/H names to go-qrcode levels.
var recoveryLevels = map[string]qrcode.RecoveryLevel{
	"L": qrcode.Low,
	"M": qrcode.Medium,
	"Q": qrcode.High,
	"H": qrcode.Highest,
}

type paymentQR struct {
	size  int
	level qrcode.RecoveryLevel
}

// NewQRCodeService falls back to 256px and level M for out-of-range settings.
func NewQRCodeService(size int, level string) service.QRCodeService {
	qr := &paymentQR{size: size, level: qrcode.Medium}
	if l, ok := recoveryLevels[level]; ok {
		qr.level = l
	}
	if size < minSize || size > maxSize {
		qr.size = defaultSize
	}

	return qr
}

func (q *paymentQR) GeneratePaymentQR(paymentURL string) ([]byte, error) {
	u, err := url.Parse(paymentURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return nil, errors.Errorf("payment URL %q is not absolute", paymentURL)
	}

	png, err := qrcode.Encode(u.String(), q.level, q.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render payment QR")
	}

	return png, nil
}
