package manager

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/Olga-Zydziak/website-of-publishing-house/internal/content"
)

func newTestRouter(t *testing.T) (*Manager, chi.Router) {
	t.Helper()
	m := newTestManager(t)
	r := chi.NewRouter()
	m.RegisterRoutes(r)
	return m, r
}

func TestStateEndpoint(t *testing.T) {
	_, r := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/manager/state", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var state managerState
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatal(err)
	}
	if len(state.TabOrder) != 5 {
		t.Fatalf("tab order = %v", state.TabOrder)
	}
	if state.Content[content.TabPublishing].Title == "" {
		t.Fatal("default content missing from state")
	}
	if !state.EnableLogo || !state.EnableCompany {
		t.Fatal("manager sections disabled by default")
	}
}

func TestContentUpdateEndpoint(t *testing.T) {
	m, r := newTestRouter(t)

	body := strings.NewReader(`{"title":"Nowy","body":"Akapit."}`)
	req := httptest.NewRequest(http.MethodPost, "/api/manager/content/publishing", body)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if got := m.WorkingCopy()[content.TabPublishing].Title; got != "Nowy" {
		t.Fatalf("title = %q", got)
	}
}

func TestContentUpdateEndpointRejectsIncompleteEdit(t *testing.T) {
	_, r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/manager/content/publishing", strings.NewReader(`{"title":"Nowy"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", rec.Code)
	}
	var res Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if res.Message != msgContentRequired {
		t.Fatalf("message = %q", res.Message)
	}
}

func TestLogoUploadEndpoint(t *testing.T) {
	m, r := newTestRouter(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="logo"; filename="logo.png"`)
	header.Set("Content-Type", "image/png")
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatal(err)
	}
	part.Write([]byte{0x89, 0x50, 0x4e, 0x47})
	writer.WriteField("alt", "Wydawnictwo")
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/manager/logo", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	logo := m.Logo()
	if logo == nil || logo.Type != content.LogoTypeUpload || logo.Alt != "Wydawnictwo" {
		t.Fatalf("stored logo = %+v", logo)
	}
}

func TestLogoEndpointDisabled(t *testing.T) {
	m, r := newTestRouter(t)
	cfg := *m.runtime.Current()
	cfg.Manager.EnableLogo = false
	m.runtime.Replace(&cfg)

	req := httptest.NewRequest(http.MethodPost, "/api/manager/logo", strings.NewReader(`{"url":"https://example.com/logo.png"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestExportEndpoint(t *testing.T) {
	_, r := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/manager/export", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.HasPrefix(rec.Body.String(), "window.PUBLISHING_TAB_CONTENT = {") {
		t.Fatalf("body starts with %q", rec.Body.String()[:40])
	}
}
