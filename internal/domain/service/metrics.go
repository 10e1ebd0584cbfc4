package service

// Outcome labels for operation metrics.
const (
	MetricStatusSuccess = "success"
	MetricStatusFailure = "failure"
)

// OperationMetrics counts business operations.
type OperationMetrics interface {
	// ObserveOrderOperation counts an order operation (create, cancel, pay, status).
	ObserveOrderOperation(operation, status string)

	// ObserveGatewayRequest counts a call to the payment gateway.
	ObserveGatewayRequest(endpoint, status string)
}
