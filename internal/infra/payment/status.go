package payment

import "fmt"

// Verification errors occupy a contiguous block of provider codes.
const (
	verificationErrorFirst = -102
	verificationErrorLast  = -200
)

var statusDescriptions = map[int]string{
	100:  "Payment successful",
	101:  "Payment already verified",
	200:  "Payment canceled by user",
	-1:   "Submitted information is incomplete",
	-2:   "Merchant IP or merchant code is invalid",
	-3:   "Amount must be between 10,000 and 50,000,000",
	-4:   "Merchant level is below silver",
	-11:  "Request not found",
	-12:  "Request cannot be edited",
	-21:  "No financial operation found for this transaction",
	-22:  "Transaction failed",
	-33:  "Transaction amount does not match the paid amount",
	-34:  "Transaction split limit exceeded by count or amount",
	-40:  "Access to the requested method is not allowed",
	-41:  "Invalid AdditionalData",
	-42:  "Payment identifier lifetime must be between 3 minutes and 45 days",
	-54:  "Request has been archived",
	-101: "Payment operation failed",
}

// StatusDescription maps a provider status code to English text.
func StatusDescription(code int) string {
	if desc, ok := statusDescriptions[code]; ok {
		return desc
	}
	if code <= verificationErrorFirst && code >= verificationErrorLast {
		return "Payment verification error"
	}

	return fmt.Sprintf("unknown status: %d", code)
}
