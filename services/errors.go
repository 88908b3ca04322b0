package services

import "errors"

var (
	// ErrAlreadyRegistered reports a duplicate (event, user) registration.
	ErrAlreadyRegistered = errors.New("already registered")

	// ErrPaymentNotProcessed reports a completion notification for a session
	// that is not complete and was never processed before.
	ErrPaymentNotProcessed = errors.New("payment not processed")

	// ErrUpstream reports a failure talking to the checkout provider.
	ErrUpstream = errors.New("upstream provider error")
)
