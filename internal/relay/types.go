package relay

// Attachment is one file attached to a contact submission. Data may be nil
// during validation; Size is authoritative for the size caps.
type Attachment struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}

// Submission is the visitor-provided contact payload.
type Submission struct {
	Name        string
	Email       string
	Message     string
	Attachments []Attachment
}

// Options carries the operator-side delivery settings for one submission.
type Options struct {
	// Endpoint is an explicit relay endpoint. It wins over the derived one
	// only when it still targets Recipient.
	Endpoint  string
	Recipient string
	Subject   string
	// NextURL is where the opaque form-post fallback sends the browser next.
	NextURL        string
	SuccessMessage string
	ErrorMessage   string
}

// Status classifies a submission outcome.
type Status string

const (
	// StatusOK means one of the direct relay transports succeeded.
	StatusOK Status = "ok"
	// StatusFallback means only the opaque form-post fallback went through,
	// so the relay could not confirm delivery programmatically.
	StatusFallback Status = "fallback"
	// StatusError means every transport failed.
	StatusError Status = "error"
)

// Outcome is the user-facing result of a submission attempt.
type Outcome struct {
	Status    Status `json:"status"`
	Message   string `json:"message"`
	Transport string `json:"transport,omitempty"`
}

// Succeeded reports whether the payload is believed delivered.
func (o Outcome) Succeeded() bool { return o.Status != StatusError }
