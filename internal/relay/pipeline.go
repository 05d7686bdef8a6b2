package relay

import (
	"context"
	"net/url"
	"regexp"
	"strings"
)

// Default user-facing copy; overridable through Options.
const (
	DefaultSubject        = "New inquiry from the Publishing Portfolio contact form"
	DefaultSuccessMessage = "Thank you! We will be in touch shortly."
	DefaultErrorMessage   = "Sorry, something went wrong. Please try again later."

	// DefaultVerificationNote is appended when the submission went out over
	// the opaque fallback, where the relay may still require address
	// confirmation before delivering.
	DefaultVerificationNote = "Jeśli to Twoja pierwsza wiadomość, sprawdź skrzynkę e-mail w celu potwierdzenia formularza."

	// fallbackHint replaces generic transport errors when every attempt
	// failed outright.
	fallbackHint = " If this is your first submission, check your inbox for a verification email from the form provider."
)

var (
	genericFailurePattern = regexp.MustCompile(`(?i)request failed`)
	verifyPattern         = regexp.MustCompile(`(?i)verify`)
)

// Pipeline drives a submission through the ordered transport chain:
// urlencoded, then JSON, then multipart, and finally the opaque form-post
// fallback. Submissions with attachments skip the direct transports, since
// only multipart can carry files and the relay's AJAX endpoint rejects them.
type Pipeline struct {
	client           *Client
	baseURL          string
	verificationNote string
}

// NewPipeline creates a pipeline posting to the given relay base URL.
// An empty base falls back to DefaultBaseURL. An empty verification note
// falls back to DefaultVerificationNote.
func NewPipeline(client *Client, baseURL, verificationNote string) *Pipeline {
	if client == nil {
		client = NewClient()
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if verificationNote == "" {
		verificationNote = DefaultVerificationNote
	}
	return &Pipeline{client: client, baseURL: baseURL, verificationNote: verificationNote}
}

// Submit runs the transport chain and maps the result to a user-facing
// Outcome. It never returns an error: every failure mode folds into an
// Outcome with StatusError.
func (p *Pipeline) Submit(ctx context.Context, opts Options, sub Submission) Outcome {
	endpoint := BuildEndpoint(p.baseURL, opts.Recipient, opts.Endpoint)

	fields := p.fields(opts, sub)
	success := opts.SuccessMessage
	if success == "" {
		success = DefaultSuccessMessage
	}
	failure := opts.ErrorMessage
	if failure == "" {
		failure = DefaultErrorMessage
	}

	var lastErr error
	if len(sub.Attachments) == 0 {
		attempts := []struct {
			name string
			send func() (*result, error)
		}{
			{"urlencoded", func() (*result, error) { return p.client.sendURLEncoded(ctx, endpoint, fields) }},
			{"json", func() (*result, error) { return p.client.sendJSON(ctx, endpoint, fields) }},
			{"multipart", func() (*result, error) { return p.client.sendMultipart(ctx, endpoint, fields, nil) }},
		}
		for _, attempt := range attempts {
			res, err := attempt.send()
			if err == nil {
				message := success
				if res.Message != "" {
					message = res.Message
				}
				return Outcome{Status: StatusOK, Message: message, Transport: attempt.name}
			}
			lastErr = err
			if ctx.Err() != nil {
				break
			}
		}
	}

	fallbackFields := p.fallbackFields(fields, opts)
	if p.client.sendFallback(ctx, FallbackEndpoint(endpoint), fallbackFields, sub.Attachments) {
		return Outcome{
			Status:    StatusFallback,
			Message:   strings.TrimSpace(success + " " + p.verificationNote),
			Transport: "fallback",
		}
	}

	return Outcome{Status: StatusError, Message: failure + p.failureDetail(lastErr), Transport: ""}
}

// fields assembles the relay form fields shared by every transport.
func (p *Pipeline) fields(opts Options, sub Submission) url.Values {
	fields := url.Values{}
	fields.Set("name", sub.Name)
	fields.Set("email", sub.Email)
	fields.Set("message", sub.Message)
	fields.Set("_replyto", sub.Email)
	fields.Set("_template", "table")
	fields.Set("_captcha", "false")
	if opts.Recipient != "" {
		fields.Set("_to", opts.Recipient)
	}
	subject := opts.Subject
	if subject == "" {
		subject = DefaultSubject
	}
	fields.Set("_subject", subject)
	return fields
}

// fallbackFields copies the direct-transport fields and adds the redirect
// target the plain form post expects.
func (p *Pipeline) fallbackFields(fields url.Values, opts Options) url.Values {
	out := url.Values{}
	for key := range fields {
		out.Set(key, fields.Get(key))
	}
	if opts.NextURL != "" {
		out.Set("_next", opts.NextURL)
	}
	return out
}

// failureDetail picks the trailing detail for a total failure. Specific
// relay messages are surfaced verbatim; generic transport noise is replaced
// with the first-submission verification hint.
func (p *Pipeline) failureDetail(lastErr error) string {
	if lastErr == nil {
		return ""
	}
	msg := strings.TrimSpace(lastErr.Error())
	if msg == "" {
		return ""
	}
	if !genericFailurePattern.MatchString(msg) || verifyPattern.MatchString(msg) {
		return " " + msg
	}
	return fallbackHint
}
