package manager

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Olga-Zydziak/website-of-publishing-house/internal/content"
	"github.com/Olga-Zydziak/website-of-publishing-house/internal/theme"
)

// RegisterRoutes mounts the manager console and its API.
func (m *Manager) RegisterRoutes(r chi.Router) {
	r.Get("/manager", m.handleConsole)

	r.Route("/api/manager", func(r chi.Router) {
		r.Get("/state", m.handleState)
		r.Get("/export", m.handleExport)
		r.Get("/submissions", m.handleSubmissions)
		r.Get("/live", m.handleLive)

		r.Post("/content/{tab}", m.handleContentUpdate)
		r.Post("/reset/{tab}", m.handleContentReset)

		r.Post("/theme", m.handleThemeToken)
		r.Post("/theme/accent-shade", m.handleAccentShade)
		r.Post("/theme/background-shade", m.handleBackgroundShade)
		r.Post("/theme/shade-direction", m.handleShadeDirection)
		r.Post("/theme/shadow-depth", m.handleShadowDepth)
		r.Post("/theme/tabs-scale", m.handleTabsScale)
		r.Post("/theme/reset", m.handleThemeReset)

		r.Post("/logo", m.handleLogo)
		r.Delete("/logo", m.handleLogoRemove)
		r.Post("/company", m.handleCompany)
		r.Delete("/company", m.handleCompanyRemove)

		r.Post("/clear", m.handleClear)
	})
}

// managerState is the console bootstrap payload.
type managerState struct {
	Content       content.ContentMap       `json:"content"`
	Theme         theme.Snapshot           `json:"theme"`
	Logo          *content.LogoSettings    `json:"logo"`
	Company       *content.CompanySettings `json:"company"`
	EnableLogo    bool                     `json:"enableLogo"`
	EnableCompany bool                     `json:"enableCompany"`
	TabOrder      []string                 `json:"tabOrder"`
	Export        string                   `json:"export"`
}

func (m *Manager) handleState(w http.ResponseWriter, r *http.Request) {
	cfg := m.runtime.Current()
	state := managerState{
		Content:       m.WorkingCopy(),
		Theme:         m.ThemeOverrides(),
		Logo:          m.Logo(),
		Company:       m.Company(),
		EnableLogo:    cfg.Manager.EnableLogo,
		EnableCompany: cfg.Manager.EnableCompany,
		TabOrder:      content.DefaultTabOrder,
		Export:        m.Export(),
	}
	writeJSON(w, http.StatusOK, state)
}

func (m *Manager) handleExport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, m.Export())
}

func (m *Manager) handleSubmissions(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	subs, err := m.store.RecentSubmissions(limit)
	if err != nil {
		http.Error(w, `{"error":"unable to load submissions"}`, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, subs)
}

func (m *Manager) handleContentUpdate(w http.ResponseWriter, r *http.Request) {
	tab := chi.URLParam(r, "tab")
	var update contentUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}
	writeResult(w, m.UpdateContent(tab, update))
}

func (m *Manager) handleContentReset(w http.ResponseWriter, r *http.Request) {
	writeResult(w, m.ResetTab(chi.URLParam(r, "tab")))
}

func (m *Manager) handleThemeToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token string `json:"token"`
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}
	writeResult(w, m.SetToken(req.Token, req.Value))
}

func (m *Manager) handleAccentShade(w http.ResponseWriter, r *http.Request) {
	m.handlePercent(w, r, m.SetAccentShade)
}

func (m *Manager) handleBackgroundShade(w http.ResponseWriter, r *http.Request) {
	m.handlePercent(w, r, m.SetBackgroundShade)
}

func (m *Manager) handleShadowDepth(w http.ResponseWriter, r *http.Request) {
	m.handlePercent(w, r, m.SetShadowDepth)
}

func (m *Manager) handleTabsScale(w http.ResponseWriter, r *http.Request) {
	m.handlePercent(w, r, m.SetTabsScale)
}

func (m *Manager) handlePercent(w http.ResponseWriter, r *http.Request, apply func(int) Result) {
	var req struct {
		Percent int `json:"percent"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}
	writeResult(w, apply(req.Percent))
}

func (m *Manager) handleShadeDirection(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Direction string `json:"direction"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}
	writeResult(w, m.SetShadeDirection(req.Direction))
}

func (m *Manager) handleThemeReset(w http.ResponseWriter, r *http.Request) {
	writeResult(w, m.ResetTheme())
}

// handleLogo accepts either a multipart upload (field "logo") or a JSON
// body pointing at an external image URL.
func (m *Manager) handleLogo(w http.ResponseWriter, r *http.Request) {
	if !m.runtime.Current().Manager.EnableLogo {
		http.Error(w, `{"error":"logo management is disabled"}`, http.StatusNotFound)
		return
	}

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(MaxLogoBytes + 1<<20); err != nil {
			writeResult(w, errResult(msgLogoSize))
			return
		}
		file, header, err := r.FormFile("logo")
		if err != nil {
			writeResult(w, errResult("Please choose a logo file."))
			return
		}
		defer file.Close()
		data, err := io.ReadAll(io.LimitReader(file, MaxLogoBytes+1))
		if err != nil {
			writeResult(w, errResult(msgSaveFailed))
			return
		}
		writeResult(w, m.SetLogoUpload(data, header.Header.Get("Content-Type"), r.FormValue("alt")))
		return
	}

	var req struct {
		URL string `json:"url"`
		Alt string `json:"alt"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}
	writeResult(w, m.SetLogoURL(req.URL, req.Alt))
}

func (m *Manager) handleLogoRemove(w http.ResponseWriter, r *http.Request) {
	if !m.runtime.Current().Manager.EnableLogo {
		http.Error(w, `{"error":"logo management is disabled"}`, http.StatusNotFound)
		return
	}
	writeResult(w, m.RemoveLogo())
}

func (m *Manager) handleCompany(w http.ResponseWriter, r *http.Request) {
	if !m.runtime.Current().Manager.EnableCompany {
		http.Error(w, `{"error":"company management is disabled"}`, http.StatusNotFound)
		return
	}
	var settings content.CompanySettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}
	writeResult(w, m.SetCompany(settings))
}

func (m *Manager) handleCompanyRemove(w http.ResponseWriter, r *http.Request) {
	if !m.runtime.Current().Manager.EnableCompany {
		http.Error(w, `{"error":"company management is disabled"}`, http.StatusNotFound)
		return
	}
	writeResult(w, m.SetCompany(content.CompanySettings{}))
}

func (m *Manager) handleClear(w http.ResponseWriter, r *http.Request) {
	writeResult(w, m.Clear())
}

func writeResult(w http.ResponseWriter, res Result) {
	status := http.StatusOK
	if !res.OK {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, res)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
