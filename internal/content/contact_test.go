package content

import (
	"reflect"
	"testing"
)

func TestNormalizeContactDetailsDefaults(t *testing.T) {
	got := NormalizeContactDetails(&ContactDetails{EmailAddress: " a@b.com "})
	if got == nil {
		t.Fatal("details with an email address must not normalize to nil")
	}

	want := &ContactDetails{
		PhoneLabel:        "Telefon",
		EmailLabel:        "E-mail",
		EmailAddress:      "a@b.com",
		FormRecipient:     "a@b.com",
		FormEndpoint:      "https://formsubmit.co/ajax/a%40b.com",
		SubmittingMessage: "Sending your message…",
		SuccessMessage:    "Thank you! We will be in touch shortly.",
		ErrorMessage:      "Sorry, something went wrong. Please try again later.",
		Subject:           "New inquiry from the Publishing Portfolio contact form",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeContactDetails() = %+v, want %+v", got, want)
	}
}

func TestNormalizeContactDetailsNilWhenUnreachable(t *testing.T) {
	if got := NormalizeContactDetails(nil); got != nil {
		t.Errorf("nil details should stay nil, got %+v", got)
	}
	if got := NormalizeContactDetails(&ContactDetails{PhoneLabel: "Telefon"}); got != nil {
		t.Errorf("labels alone should normalize to nil, got %+v", got)
	}
	if got := NormalizeContactDetails(&ContactDetails{PhoneNumber: "+48 123 456 789"}); got == nil {
		t.Error("a phone number alone should keep the section")
	}
}

func TestNormalizeContactDetailsIdempotent(t *testing.T) {
	first := NormalizeContactDetails(DefaultContent()[TabContact].ContactDetails)
	if first == nil {
		t.Fatal("default contact details must normalize")
	}
	second := NormalizeContactDetails(first)
	if !reflect.DeepEqual(second, first) {
		t.Errorf("second pass changed the details:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestNormalizeContactDetailsRecipientFallback(t *testing.T) {
	got := NormalizeContactDetails(&ContactDetails{FormRecipient: "only@recipient.pl"})
	if got == nil {
		t.Fatal("a form recipient alone must keep the section")
	}
	if got.EmailAddress != "only@recipient.pl" {
		t.Errorf("EmailAddress = %q, want the recipient mirrored", got.EmailAddress)
	}
}

func TestNormalizeContactDetailsExplicitEndpoint(t *testing.T) {
	// A configured endpoint wins only while it still targets the recipient.
	kept := NormalizeContactDetails(&ContactDetails{
		EmailAddress: "a@b.com",
		FormEndpoint: "https://relay.example/ajax/a%40b.com",
	})
	if kept.FormEndpoint != "https://relay.example/ajax/a%40b.com" {
		t.Errorf("FormEndpoint = %q, want the explicit endpoint kept", kept.FormEndpoint)
	}

	stale := NormalizeContactDetails(&ContactDetails{
		EmailAddress: "new@b.com",
		FormEndpoint: "https://relay.example/ajax/a%40b.com",
	})
	if stale.FormEndpoint != "https://formsubmit.co/ajax/new%40b.com" {
		t.Errorf("FormEndpoint = %q, want rebuilt for the new recipient", stale.FormEndpoint)
	}
}
