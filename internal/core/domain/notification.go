package domain

// EmailMessage is an outbound email, independent of the transport.
type EmailMessage struct {
	To       string
	From     string
	Subject  string
	TextBody string
	HTMLBody string
}

// DeliveryFailure classifies why a notification was not delivered.
type DeliveryFailure string

const (
	DeliveryOK DeliveryFailure = ""
	// DeliveryNoRecipient means there was no address to send to, so nothing was attempted.
	DeliveryNoRecipient DeliveryFailure = "no_recipient"
	// DeliveryRenderFailed means the message body could not be built.
	DeliveryRenderFailed DeliveryFailure = "render_failed"
	// DeliveryTransportFailed means the mail transport rejected or failed the single attempt.
	DeliveryTransportFailed DeliveryFailure = "transport_failed"
)

// DeliveryResult reports the outcome of one notification attempt. Failures are
// values rather than errors: a failed notice never undoes the state change that triggered it.
type DeliveryResult struct {
	Delivered bool
	Failure   DeliveryFailure
	Err       error
}

// DeliverySucceeded returns a successful result.
func DeliverySucceeded() DeliveryResult {
	return DeliveryResult{Delivered: true}
}

// NotDelivered returns a failed result of the given kind.
func NotDelivered(kind DeliveryFailure, err error) DeliveryResult {
	return DeliveryResult{Failure: kind, Err: err}
}
