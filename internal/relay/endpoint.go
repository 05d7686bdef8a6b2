package relay

import (
	"net/url"
	"strings"
)

// DefaultBaseURL is the relay the site delivers contact submissions through.
const DefaultBaseURL = "https://formsubmit.co"

// BuildEndpoint derives the AJAX relay endpoint for a recipient address.
// An explicit endpoint is honored only when it still contains the
// URL-encoded recipient, so a stale configured endpoint can never silently
// deliver to a different mailbox after the address changes.
func BuildEndpoint(base, recipient, explicit string) string {
	recipient = strings.TrimSpace(recipient)

	if explicit != "" {
		if recipient == "" {
			return explicit
		}
		if strings.Contains(explicit, url.QueryEscape(recipient)) {
			return explicit
		}
	}

	if recipient == "" {
		return ""
	}

	if base == "" {
		base = DefaultBaseURL
	}
	return strings.TrimSuffix(base, "/") + "/ajax/" + url.QueryEscape(recipient)
}

// FallbackEndpoint rewrites an AJAX endpoint into its plain form-post
// variant by dropping the first /ajax/ path segment.
func FallbackEndpoint(endpoint string) string {
	if endpoint == "" {
		return ""
	}
	if strings.Contains(endpoint, "/ajax/") {
		return strings.Replace(endpoint, "/ajax/", "/", 1)
	}
	return endpoint
}
