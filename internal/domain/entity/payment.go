package entity

// Payment gateway status codes. The values are part of the provider protocol.
const (
	PaymentStatusSuccess         = 100
	PaymentStatusAlreadyVerified = 101
	PaymentStatusCanceledByUser  = 200
)

// PaymentRequestResult is the outcome of asking the gateway to open a payment.
type PaymentRequestResult struct {
	Success    bool   `json:"success"`
	Authority  string `json:"authority,omitempty"`
	PaymentURL string `json:"payment_url,omitempty"`
	Message    string `json:"message"`
	Code       int    `json:"code,omitempty"`
}

// PaymentVerification is the outcome of verifying a completed payment.
type PaymentVerification struct {
	Success    bool   `json:"success"`
	RefID      string `json:"ref_id,omitempty"`
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}
