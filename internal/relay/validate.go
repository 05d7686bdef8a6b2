package relay

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Attachment caps, matching the limits advertised on the contact form.
const (
	MaxAttachmentFiles    = 5
	MaxAttachmentSize     = 10 * 1024 * 1024
	MaxCombinedAttachment = 25 * 1024 * 1024
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationError is a user-facing rejection of a submission. No network
// attempt is made for an invalid submission.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// Validate checks a submission before any transport is attempted.
// allowGlobs restricts attachment filenames (doublestar patterns, matched
// case-insensitively); an empty list allows everything.
func Validate(sub Submission, allowGlobs []string) error {
	if strings.TrimSpace(sub.Name) == "" ||
		strings.TrimSpace(sub.Email) == "" ||
		strings.TrimSpace(sub.Message) == "" ||
		!emailPattern.MatchString(strings.TrimSpace(sub.Email)) {
		return invalid("Please provide a valid name, email address, and message.")
	}

	if len(sub.Attachments) == 0 {
		return nil
	}

	if len(sub.Attachments) > MaxAttachmentFiles {
		return invalid("Please upload no more than %d files.", MaxAttachmentFiles)
	}

	var total int64
	for _, att := range sub.Attachments {
		total += att.Size
		if att.Size > MaxAttachmentSize {
			return invalid("Each file must be 10 MB or smaller. Remove %q and try again.", att.Filename)
		}
		if !attachmentAllowed(att.Filename, allowGlobs) {
			return invalid("The file type of %q is not accepted.", att.Filename)
		}
	}

	if total > MaxCombinedAttachment {
		return invalid("The combined size of your attachments must be 25 MB or less.")
	}

	return nil
}

func attachmentAllowed(filename string, allowGlobs []string) bool {
	if len(allowGlobs) == 0 {
		return true
	}
	name := strings.ToLower(filename)
	for _, glob := range allowGlobs {
		if ok, err := doublestar.Match(strings.ToLower(glob), name); err == nil && ok {
			return true
		}
	}
	return false
}
