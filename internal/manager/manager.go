package manager

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/Olga-Zydziak/website-of-publishing-house/internal/config"
	"github.com/Olga-Zydziak/website-of-publishing-house/internal/content"
	"github.com/Olga-Zydziak/website-of-publishing-house/internal/store"
	"github.com/Olga-Zydziak/website-of-publishing-house/internal/theme"
)

// Operator-facing status copy.
const (
	msgContentSaved    = "Preview updated. Refresh the home page to see your changes."
	msgContentRequired = "Please complete the title and body before updating the configuration."
	msgContactRequired = "Please provide both the phone number and contact email for the Contact section."
	msgFormReset       = "Form reset to the saved configuration."
	msgThemeUpdated    = "Theme colors updated. Refresh the home page to preview changes."
	msgThemeReset      = "Theme colors reset to the default palette."
	msgSaveFailed      = "The change could not be saved and applies to this session only."
)

// Manager is the operator console: it edits a working copy of the tab
// content, the theme overrides, and the logo and company settings, and
// persists them through the store. The working copy lets an operator stage
// edits per tab and reset back to the last saved state.
type Manager struct {
	runtime *config.Runtime
	store   *store.Store
	live    *liveHub

	mu sync.Mutex
	// working is the staged content, original the last-saved state.
	working  content.ContentMap
	original content.ContentMap
	theme    theme.Snapshot
	logo     *content.LogoSettings
	company  *content.CompanySettings
}

// New loads the saved overrides and builds the manager state.
func New(runtime *config.Runtime, st *store.Store) *Manager {
	m := &Manager{
		runtime: runtime,
		store:   st,
		live:    newLiveHub(),
	}
	m.reload()
	return m
}

// reload rebuilds the in-memory state from the store.
func (m *Manager) reload() {
	m.mu.Lock()
	defer m.mu.Unlock()

	merged, err := content.MergeContent(content.DefaultContent(), m.store.LoadTabContent())
	if err != nil {
		merged = content.DefaultContent()
	}
	m.working = merged
	m.original = merged.Clone()

	m.theme = m.store.LoadThemeOverrides()
	if m.theme == nil {
		m.theme = theme.Snapshot{}
	}
	m.logo = m.store.LoadLogo()
	m.company = m.store.LoadCompany()
}

// Result reports one manager operation back to the UI.
type Result struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

func okResult(message string) Result { return Result{OK: true, Message: message} }

func errResult(message string) Result { return Result{OK: false, Message: message} }

// contentUpdate is the operator's edit of a single tab.
type contentUpdate struct {
	Title    string `json:"title"`
	TabLabel string `json:"tabLabel"`
	Body     string `json:"body"`

	// Contact tab only.
	PhoneLabel        string `json:"phoneLabel"`
	PhoneNumber       string `json:"phoneNumber"`
	EmailLabel        string `json:"emailLabel"`
	EmailAddress      string `json:"emailAddress"`
	Subject           string `json:"subject"`
	SubmittingMessage string `json:"submittingMessage"`
	SuccessMessage    string `json:"successMessage"`
	ErrorMessage      string `json:"errorMessage"`
}

// UpdateContent applies an edit to the working copy and saves it. The
// contact tab additionally requires both a phone number and an email
// address, since without them the section disappears from the site.
func (m *Manager) UpdateContent(tabKey string, update contentUpdate) Result {
	m.mu.Lock()
	defer m.mu.Unlock()

	title := strings.TrimSpace(update.Title)
	body := strings.TrimSpace(update.Body)
	if title == "" || body == "" {
		return errResult(msgContentRequired)
	}

	entry := m.working[tabKey]
	entry.Title = title
	entry.TabLabel = strings.TrimSpace(update.TabLabel)
	if entry.TabLabel == "" {
		entry.TabLabel = title
	}
	entry.Body = content.ParseBody(body)

	if tabKey == content.TabContact {
		phone := strings.TrimSpace(update.PhoneNumber)
		email := strings.TrimSpace(update.EmailAddress)
		if phone == "" || email == "" {
			return errResult(msgContactRequired)
		}

		entry.ContactDetails = content.NormalizeContactDetails(&content.ContactDetails{
			PhoneLabel:        strings.TrimSpace(update.PhoneLabel),
			PhoneNumber:       phone,
			EmailLabel:        strings.TrimSpace(update.EmailLabel),
			EmailAddress:      email,
			Subject:           strings.TrimSpace(update.Subject),
			SubmittingMessage: strings.TrimSpace(update.SubmittingMessage),
			SuccessMessage:    strings.TrimSpace(update.SuccessMessage),
			ErrorMessage:      strings.TrimSpace(update.ErrorMessage),
		})
	}

	m.working[tabKey] = entry
	if !m.saveContentLocked() {
		return errResult(msgSaveFailed)
	}
	m.original[tabKey] = m.working.Clone()[tabKey]

	m.broadcastLocked()
	return okResult(msgContentSaved)
}

// ResetTab discards staged edits for one tab, restoring the last saved
// state.
func (m *Manager) ResetTab(tabKey string) Result {
	m.mu.Lock()
	defer m.mu.Unlock()

	if saved, exists := m.original.Clone()[tabKey]; exists {
		m.working[tabKey] = saved
	} else {
		delete(m.working, tabKey)
	}
	m.broadcastLocked()
	return okResult(msgFormReset)
}

// Clear drops every stored override: content, theme, logo, and company.
// The manager then reflects the default configuration.
func (m *Manager) Clear() Result {
	m.mu.Lock()
	defer m.mu.Unlock()

	contentCleared := m.store.ClearTabContent()
	themeCleared := m.store.SaveThemeOverrides(theme.Snapshot{})
	logoCleared := m.store.ClearLogo()
	companyCleared := m.store.ClearCompany()

	if contentCleared {
		m.working = content.DefaultContent()
		m.original = m.working.Clone()
	}
	if themeCleared {
		m.theme = theme.Snapshot{}
	}
	if logoCleared {
		m.logo = nil
	}
	if companyCleared {
		m.company = nil
	}

	if !contentCleared && !themeCleared && !logoCleared && !companyCleared {
		return errResult("Unable to clear stored changes.")
	}

	var parts []string
	if contentCleared {
		parts = append(parts, "Content overrides removed")
	}
	if themeCleared {
		parts = append(parts, "Theme overrides cleared")
	}
	if logoCleared {
		parts = append(parts, "Logo cleared")
	}
	if companyCleared {
		parts = append(parts, "Company name cleared")
	}

	m.broadcastLocked()
	return okResult(strings.Join(parts, ", ") + ". The manager now reflects the default configuration.")
}

// WorkingCopy returns a snapshot of the staged content.
func (m *Manager) WorkingCopy() content.ContentMap {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.working.Clone()
}

// ThemeOverrides returns a snapshot of the staged theme tokens.
func (m *Manager) ThemeOverrides() theme.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.theme.Clone()
}

// saveContentLocked persists the working copy. Caller holds mu.
func (m *Manager) saveContentLocked() bool {
	raw := map[string]any{}
	for key, entry := range m.working {
		record, err := toRawRecord(entry)
		if err != nil {
			return false
		}
		raw[key] = record
	}
	return m.store.SaveTabContent(raw)
}

func toRawRecord(entry content.TabEntry) (map[string]any, error) {
	data, err := json.Marshal(entry)
	if err != nil {
		return nil, err
	}
	var record map[string]any
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, err
	}
	return record, nil
}
