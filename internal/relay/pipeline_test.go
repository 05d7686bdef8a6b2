package relay

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

// fakeRelay records every request and replies per configured handlers.
type fakeRelay struct {
	mu       sync.Mutex
	requests []recordedRequest
}

type recordedRequest struct {
	path        string
	contentType string
	form        map[string]string
}

func (f *fakeRelay) record(r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec := recordedRequest{path: r.URL.Path, contentType: r.Header.Get("Content-Type")}
	if strings.HasPrefix(rec.contentType, "application/x-www-form-urlencoded") ||
		strings.HasPrefix(rec.contentType, "multipart/form-data") {
		r.ParseMultipartForm(32 << 20)
		r.ParseForm()
		rec.form = map[string]string{}
		for key := range r.Form {
			rec.form[key] = r.Form.Get(key)
		}
	}
	f.requests = append(f.requests, rec)
}

func (f *fakeRelay) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func (f *fakeRelay) request(i int) recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[i]
}

func TestSubmitFirstTransportSucceeds(t *testing.T) {
	relay := &fakeRelay{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		relay.record(r)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":"true","message":"Delivered."}`))
	}))
	defer srv.Close()

	p := NewPipeline(NewClient(), srv.URL, "")
	out := p.Submit(context.Background(), Options{Recipient: "a@b.com"}, validSubmission())

	if out.Status != StatusOK {
		t.Fatalf("Status = %q, want %q (message %q)", out.Status, StatusOK, out.Message)
	}
	if out.Message != "Delivered." {
		t.Errorf("Message = %q, want relay message", out.Message)
	}
	if out.Transport != "urlencoded" {
		t.Errorf("Transport = %q, want urlencoded", out.Transport)
	}
	if relay.count() != 1 {
		t.Fatalf("requests = %d, want 1", relay.count())
	}

	req := relay.request(0)
	if req.path != "/ajax/a%40b.com" && req.path != "/ajax/a@b.com" {
		t.Errorf("path = %q, want the AJAX recipient endpoint", req.path)
	}
	for key, want := range map[string]string{
		"name":      "Olga",
		"_replyto":  "olga@example.com",
		"_template": "table",
		"_captcha":  "false",
		"_to":       "a@b.com",
		"_subject":  DefaultSubject,
	} {
		if got := req.form[key]; got != want {
			t.Errorf("field %s = %q, want %q", key, got, want)
		}
	}
}

func TestSubmitRejectedResponseAdvancesChain(t *testing.T) {
	relay := &fakeRelay{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		relay.record(r)
		if relay.count() == 1 {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"success":false,"message":"Slow down."}`))
			return
		}
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	p := NewPipeline(NewClient(), srv.URL, "")
	out := p.Submit(context.Background(), Options{Recipient: "a@b.com"}, validSubmission())

	if out.Status != StatusOK {
		t.Fatalf("Status = %q, want %q", out.Status, StatusOK)
	}
	if out.Transport != "json" {
		t.Errorf("Transport = %q, want json", out.Transport)
	}
	if out.Message != DefaultSuccessMessage {
		t.Errorf("Message = %q, want default success copy", out.Message)
	}
	if relay.count() != 2 {
		t.Errorf("requests = %d, want 2", relay.count())
	}
}

func TestSubmitFallsBackWhenDirectTransportsFail(t *testing.T) {
	relay := &fakeRelay{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		relay.record(r)
		if strings.HasPrefix(r.URL.Path, "/ajax/") {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := NewPipeline(NewClient(), srv.URL, "")
	out := p.Submit(context.Background(), Options{Recipient: "a@b.com", NextURL: "https://site.example/?sent=1"}, validSubmission())

	if out.Status != StatusFallback {
		t.Fatalf("Status = %q, want %q (message %q)", out.Status, StatusFallback, out.Message)
	}
	if out.Transport != "fallback" {
		t.Errorf("Transport = %q, want fallback", out.Transport)
	}
	if !strings.Contains(out.Message, DefaultVerificationNote) {
		t.Errorf("Message = %q, want verification note appended", out.Message)
	}

	// three direct attempts plus the form post
	if relay.count() != 4 {
		t.Fatalf("requests = %d, want 4", relay.count())
	}
	last := relay.request(3)
	if strings.HasPrefix(last.path, "/ajax/") {
		t.Errorf("fallback path = %q, want non-AJAX endpoint", last.path)
	}
	if got := last.form["_next"]; got != "https://site.example/?sent=1" {
		t.Errorf("_next = %q, want redirect target", got)
	}
}

func TestSubmitAttachmentsSkipDirectTransports(t *testing.T) {
	relay := &fakeRelay{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		relay.record(r)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sub := validSubmission()
	sub.Attachments = []Attachment{{
		Filename:    "manuscript.pdf",
		ContentType: "application/pdf",
		Size:        4,
		Data:        []byte("PDF."),
	}}

	p := NewPipeline(NewClient(), srv.URL, "")
	out := p.Submit(context.Background(), Options{Recipient: "a@b.com"}, sub)

	if out.Status != StatusFallback {
		t.Fatalf("Status = %q, want %q", out.Status, StatusFallback)
	}
	if relay.count() != 1 {
		t.Fatalf("requests = %d, want the fallback post only", relay.count())
	}
	req := relay.request(0)
	if strings.HasPrefix(req.path, "/ajax/") {
		t.Errorf("path = %q, want non-AJAX endpoint", req.path)
	}
	if !strings.HasPrefix(req.contentType, "multipart/form-data") {
		t.Errorf("content type = %q, want multipart", req.contentType)
	}
}

func TestSubmitTotalFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Recipient not verified. Please verify your email first."}`))
	}))
	srv.Close() // direct transports and fallback all fail to connect

	unreachable := srv.URL
	client := NewClient()
	client.fallbackTimeout = 200 * time.Millisecond

	p := NewPipeline(client, unreachable, "")
	out := p.Submit(context.Background(), Options{Recipient: "a@b.com"}, validSubmission())

	if out.Status != StatusError {
		t.Fatalf("Status = %q, want %q", out.Status, StatusError)
	}
	if !strings.HasPrefix(out.Message, DefaultErrorMessage) {
		t.Errorf("Message = %q, want default error copy first", out.Message)
	}
}

func TestSubmitSurfacesSpecificRelayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/ajax/") {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"message":"Activate your form to start receiving submissions."}`))
			return
		}
		// fallback refused too
		conn, _, err := w.(http.Hijacker).Hijack()
		if err == nil {
			conn.Close()
		}
	}))
	defer srv.Close()

	p := NewPipeline(NewClient(), srv.URL, "")
	out := p.Submit(context.Background(), Options{Recipient: "a@b.com"}, validSubmission())

	if out.Status != StatusError {
		t.Fatalf("Status = %q, want %q", out.Status, StatusError)
	}
	if !strings.Contains(out.Message, "Activate your form") {
		t.Errorf("Message = %q, want the relay's own message surfaced", out.Message)
	}
}

func TestFailureDetail(t *testing.T) {
	p := NewPipeline(NewClient(), "", "")
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil error", nil, ""},
		{"specific message kept", &relayError{Message: "Form disabled by owner."}, " Form disabled by owner."},
		{"generic failure replaced with hint", &relayError{Message: "Request failed with status 502"}, fallbackHint},
		{"verify message kept even when generic", &relayError{Message: "Request failed: please verify your email"}, " Request failed: please verify your email"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.failureDetail(tt.err); got != tt.want {
				t.Errorf("failureDetail() = %q, want %q", got, tt.want)
			}
		})
	}
}
