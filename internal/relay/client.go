package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// fallbackTimeout bounds the opaque form-post fallback; it is the only
// explicit timeout in the submission chain.
const fallbackTimeout = 8 * time.Second

// Client speaks the relay's AJAX endpoints and the plain form-post variant.
type Client struct {
	http            *http.Client
	fallbackTimeout time.Duration
}

// NewClient creates a relay client.
func NewClient() *Client {
	return &Client{
		http:            &http.Client{Timeout: 30 * time.Second},
		fallbackTimeout: fallbackTimeout,
	}
}

// result is a successful relay response.
type result struct {
	Message string
}

// relayError is a failed direct transport attempt. Its message is shown to
// the user when it is more specific than a plain HTTP failure.
type relayError struct {
	StatusCode int
	Message    string
}

func (e *relayError) Error() string { return e.Message }

// parseResponse interprets a direct-transport relay response. The body is
// parsed as JSON when possible; a non-2xx status, or a body whose success
// field stringifies to "false", is a failure carrying the body's message.
func parseResponse(resp *http.Response) (*result, error) {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading relay response: %w", err)
	}

	var parsed map[string]any
	if len(body) > 0 {
		if err := json.Unmarshal(body, &parsed); err != nil {
			parsed = nil
		}
	}

	message, _ := parsed["message"].(string)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if message == "" {
			message = fmt.Sprintf("Request failed with status %d", resp.StatusCode)
		}
		return nil, &relayError{StatusCode: resp.StatusCode, Message: message}
	}

	if success, ok := parsed["success"]; ok {
		if strings.EqualFold(fmt.Sprint(success), "false") {
			if message == "" {
				message = "The form service rejected the submission."
			}
			return nil, &relayError{StatusCode: resp.StatusCode, Message: message}
		}
	}

	return &result{Message: message}, nil
}

func (c *Client) do(req *http.Request) (*result, error) {
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	return parseResponse(resp)
}

// sendURLEncoded posts the fields as application/x-www-form-urlencoded.
func (c *Client) sendURLEncoded(ctx context.Context, endpoint string, fields url.Values) (*result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(fields.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded;charset=UTF-8")
	return c.do(req)
}

// sendJSON posts the fields as a JSON object.
func (c *Client) sendJSON(ctx context.Context, endpoint string, fields url.Values) (*result, error) {
	payload := make(map[string]string, len(fields))
	for key := range fields {
		payload[key] = fields.Get(key)
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

// sendMultipart posts the fields and attachments as multipart/form-data.
func (c *Client) sendMultipart(ctx context.Context, endpoint string, fields url.Values, attachments []Attachment) (*result, error) {
	body, contentType, err := encodeMultipart(fields, attachments)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	return c.do(req)
}

// sendFallback performs the browser-style form post against the non-AJAX
// endpoint. The response is opaque: success means the exchange completed
// before the deadline, and neither status nor body is interpreted. It
// resolves false on timeout or send error rather than returning an error,
// so the pipeline can decide what to report.
func (c *Client) sendFallback(ctx context.Context, endpoint string, fields url.Values, attachments []Attachment) bool {
	if endpoint == "" {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, c.fallbackTimeout)
	defer cancel()

	body, contentType, err := encodeMultipart(fields, attachments)
	if err != nil {
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return false
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return true
}

// encodeMultipart builds a multipart body. A single attachment is named
// "attachment", several are "attachments[]", matching the relay contract.
func encodeMultipart(fields url.Values, attachments []Attachment) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for key := range fields {
		if err := w.WriteField(key, fields.Get(key)); err != nil {
			return nil, "", err
		}
	}

	fieldName := "attachments[]"
	if len(attachments) == 1 {
		fieldName = "attachment"
	}
	for _, att := range attachments {
		part, err := w.CreateFormFile(fieldName, att.Filename)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(att.Data); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
