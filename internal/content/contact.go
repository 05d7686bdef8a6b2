package content

import (
	"strings"

	"github.com/Olga-Zydziak/website-of-publishing-house/internal/relay"
)

// Fallback copy for contact details the operator left blank.
const (
	defaultPhoneLabel        = "Telefon"
	defaultEmailLabel        = "E-mail"
	defaultSubmittingMessage = "Sending your message…"
)

// NormalizeContactDetails fills in display labels and form copy, resolves
// the relay endpoint, and mirrors the email address into FormRecipient.
// It returns nil when there is neither an email address nor a phone number,
// which hides the contact section entirely. Normalizing an already
// normalized value is a no-op.
func NormalizeContactDetails(details *ContactDetails) *ContactDetails {
	if details == nil {
		details = &ContactDetails{}
	}

	email := strings.TrimSpace(details.EmailAddress)
	if email == "" {
		email = strings.TrimSpace(details.FormRecipient)
	}
	phone := strings.TrimSpace(details.PhoneNumber)

	if email == "" && phone == "" {
		return nil
	}

	out := &ContactDetails{
		PhoneLabel:        valueOr(details.PhoneLabel, defaultPhoneLabel),
		PhoneNumber:       phone,
		EmailLabel:        valueOr(details.EmailLabel, defaultEmailLabel),
		EmailAddress:      email,
		FormRecipient:     email,
		SubmittingMessage: valueOr(details.SubmittingMessage, defaultSubmittingMessage),
		SuccessMessage:    valueOr(details.SuccessMessage, relay.DefaultSuccessMessage),
		ErrorMessage:      valueOr(details.ErrorMessage, relay.DefaultErrorMessage),
		Subject:           valueOr(details.Subject, relay.DefaultSubject),
	}
	out.FormEndpoint = relay.BuildEndpoint(relay.DefaultBaseURL, email, details.FormEndpoint)
	return out
}

func valueOr(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
