package v1

import "errors"

var (
	errForbidden        = errors.New("you may only manage your own months")
	errSelfDeactivation = errors.New("you cannot deactivate your own account")
	errAmountTooSmall   = errors.New("amounts must be at least 0.01")
	errUpstream         = errors.New("an external service failed to process the request")
)

// Upload errors
var (
	errFileMissing  = errors.New("you must send a file in the 'file' form field")
	errFileTooLarge = errors.New("the file is too large")
)

// Webhook errors
var (
	errWebhookNotConfigured = errors.New("the webhook secret is not configured")
	errWebhookSignature     = errors.New("the webhook signature is missing or invalid")
	errWebhookTimestamp     = errors.New("the webhook timestamp is invalid or outside the allowed tolerance")
	errWebhookPayload       = errors.New("the webhook payload is invalid")
)

var errFeaturesInvalid = errors.New("the plan features must be a list of objects with name and included")
