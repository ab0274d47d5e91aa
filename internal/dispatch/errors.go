package dispatch

// FailureKind classifies why a dispatch attempt left a registration failed.
// The three kinds surface differently: configuration faults need operator
// action, delivery faults are eligible for manual resend, malformed input
// points at a caller bug.
type FailureKind string

const (
	FailureConfiguration  FailureKind = "configuration_error"
	FailureDelivery       FailureKind = "delivery_error"
	FailureMalformedInput FailureKind = "malformed_input"
)
