package site

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Olga-Zydziak/website-of-publishing-house/internal/content"
	"github.com/Olga-Zydziak/website-of-publishing-house/internal/relay"
	"github.com/Olga-Zydziak/website-of-publishing-house/internal/store"
)

const (
	maxAttachmentFiles = relay.MaxAttachmentFiles
	maxFileMB          = relay.MaxAttachmentSize >> 20
	maxTotalMB         = relay.MaxCombinedAttachment >> 20
)

// maxContactBody bounds the multipart body: the combined attachment cap
// plus headroom for fields and encoding overhead.
const maxContactBody = relay.MaxCombinedAttachment + 1<<20

// Submitter delivers a validated submission. Satisfied by *relay.Pipeline.
type Submitter interface {
	Submit(ctx context.Context, opts relay.Options, sub relay.Submission) relay.Outcome
}

// handleContact accepts the contact form post, runs the relay transport
// chain, and reports the outcome as JSON. Every submission attempt is
// logged, successful or not.
func (s *Site) handleContact(w http.ResponseWriter, r *http.Request) {
	cfg := s.runtime.Current()

	details := s.contactDetails()
	if details == nil {
		writeOutcome(w, http.StatusNotFound, relay.Outcome{
			Status:  relay.StatusError,
			Message: "The contact form is not configured.",
		})
		return
	}

	sub, err := parseSubmission(r)
	if err != nil {
		writeOutcome(w, http.StatusBadRequest, relay.Outcome{
			Status:  relay.StatusError,
			Message: "Sorry, we could not read your submission. Please try again.",
		})
		return
	}

	if err := relay.Validate(sub, cfg.Relay.AttachmentAllow); err != nil {
		var verr *relay.ValidationError
		message := "Please check the form and try again."
		if errors.As(err, &verr) {
			message = verr.Message
		}
		writeOutcome(w, http.StatusBadRequest, relay.Outcome{Status: relay.StatusError, Message: message})
		return
	}

	opts := relay.Options{
		Endpoint:       details.FormEndpoint,
		Recipient:      details.FormRecipient,
		Subject:        details.Subject,
		NextURL:        nextURL(r),
		SuccessMessage: details.SuccessMessage,
		ErrorMessage:   details.ErrorMessage,
	}

	outcome := s.submitter.Submit(r.Context(), opts, sub)

	s.logSubmission(sub, outcome)

	writeOutcome(w, http.StatusOK, outcome)
}

func (s *Site) contactDetails() *content.ContactDetails {
	entry, ok := s.EffectiveContent()[content.TabContact]
	if !ok {
		return nil
	}
	return entry.ContactDetails
}

func parseSubmission(r *http.Request) (relay.Submission, error) {
	var sub relay.Submission

	r.Body = http.MaxBytesReader(nil, r.Body, maxContactBody)
	if err := r.ParseMultipartForm(4 << 20); err != nil {
		return sub, err
	}

	sub.Name = r.FormValue("name")
	sub.Email = r.FormValue("email")
	sub.Message = r.FormValue("message")

	if r.MultipartForm == nil {
		return sub, nil
	}
	for _, header := range r.MultipartForm.File["attachments"] {
		file, err := header.Open()
		if err != nil {
			return sub, err
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return sub, err
		}
		sub.Attachments = append(sub.Attachments, relay.Attachment{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        int64(len(data)),
			Data:        data,
		})
	}
	return sub, nil
}

// nextURL is where the opaque fallback redirects the relay's landing page.
func nextURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	if r.Host == "" {
		return ""
	}
	return scheme + "://" + r.Host + "/?tab=" + content.TabContact
}

func (s *Site) logSubmission(sub relay.Submission, outcome relay.Outcome) {
	var attachmentBytes int64
	for _, att := range sub.Attachments {
		attachmentBytes += att.Size
	}
	err := s.store.InsertSubmission(store.Submission{
		ID:              uuid.NewString(),
		Name:            sub.Name,
		Email:           sub.Email,
		Message:         sub.Message,
		AttachmentCount: len(sub.Attachments),
		AttachmentBytes: attachmentBytes,
		Transport:       outcome.Transport,
		Success:         outcome.Succeeded(),
		RelayMessage:    outcome.Message,
	})
	if err != nil {
		log.Printf("site: %v", err)
	}
}

func writeOutcome(w http.ResponseWriter, status int, outcome relay.Outcome) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(outcome); err != nil {
		log.Printf("site: writing outcome: %v", err)
	}
}

func contextWithTimeout(r *http.Request, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), d)
}
