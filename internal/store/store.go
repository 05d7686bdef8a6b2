package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/Olga-Zydziak/website-of-publishing-house/internal/content"
	"github.com/Olga-Zydziak/website-of-publishing-house/internal/db"
	"github.com/Olga-Zydziak/website-of-publishing-house/internal/theme"
)

// Override record keys. The names predate the server and are kept so a
// snippet exported from an older deployment can be imported verbatim.
const (
	keyTabContent     = "publishingTabContent"
	keyThemeOverrides = "publishingThemeOverrides"
	keySiteLogo       = "publishingSiteLogo"
	keyCompanyName    = "publishingCompanyName"
)

// Store persists operator overrides and the contact submission log.
// Reads are forgiving: a missing or unreadable record behaves exactly like
// an absent override, so the site always falls back to its defaults instead
// of failing a page render.
type Store struct {
	db *db.DB
}

// New wraps an open database.
func New(database *db.DB) *Store {
	return &Store{db: database}
}

func (s *Store) loadJSON(key string, out any) bool {
	var value string
	err := s.db.QueryRow(`SELECT value FROM overrides WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return false
	}
	if err != nil {
		log.Printf("store: reading %s: %v", key, err)
		return false
	}
	if err := json.Unmarshal([]byte(value), out); err != nil {
		log.Printf("store: record %s holds malformed JSON, ignoring: %v", key, err)
		return false
	}
	return true
}

func (s *Store) saveJSON(key string, value any) bool {
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("store: encoding %s: %v", key, err)
		return false
	}
	_, err = s.db.Exec(`
		INSERT INTO overrides (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(data), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		log.Printf("store: writing %s: %v", key, err)
		return false
	}
	return true
}

func (s *Store) clear(key string) bool {
	if _, err := s.db.Exec(`DELETE FROM overrides WHERE key = ?`, key); err != nil {
		log.Printf("store: clearing %s: %v", key, err)
		return false
	}
	return true
}

// LoadTabContent returns the stored content overrides, or nil when none are
// saved or the record cannot be read.
func (s *Store) LoadTabContent() map[string]any {
	var overrides map[string]any
	if !s.loadJSON(keyTabContent, &overrides) {
		return nil
	}
	return overrides
}

// SaveTabContent stores the content overrides.
func (s *Store) SaveTabContent(overrides map[string]any) bool {
	if overrides == nil {
		overrides = map[string]any{}
	}
	return s.saveJSON(keyTabContent, overrides)
}

// ClearTabContent removes every content override.
func (s *Store) ClearTabContent() bool { return s.clear(keyTabContent) }

// LoadThemeOverrides returns the stored theme tokens, or nil when none are
// saved.
func (s *Store) LoadThemeOverrides() theme.Snapshot {
	var snapshot theme.Snapshot
	if !s.loadJSON(keyThemeOverrides, &snapshot) {
		return nil
	}
	return snapshot
}

// SaveThemeOverrides stores the theme tokens. Saving an empty snapshot
// clears the record, so an untouched theme round-trips as absent.
func (s *Store) SaveThemeOverrides(snapshot theme.Snapshot) bool {
	if len(snapshot) == 0 {
		return s.clear(keyThemeOverrides)
	}
	return s.saveJSON(keyThemeOverrides, snapshot)
}

// LoadLogo returns the stored logo settings, or nil when none are saved.
func (s *Store) LoadLogo() *content.LogoSettings {
	var logo content.LogoSettings
	if !s.loadJSON(keySiteLogo, &logo) {
		return nil
	}
	return &logo
}

// SaveLogo stores the logo. A logo without an image reference clears the
// record instead.
func (s *Store) SaveLogo(logo *content.LogoSettings) bool {
	if logo == nil || logo.Empty() {
		return s.clear(keySiteLogo)
	}
	return s.saveJSON(keySiteLogo, logo)
}

// ClearLogo removes the stored logo.
func (s *Store) ClearLogo() bool { return s.clear(keySiteLogo) }

// LoadCompany returns the stored company settings, or nil when none are
// saved.
func (s *Store) LoadCompany() *content.CompanySettings {
	var company content.CompanySettings
	if !s.loadJSON(keyCompanyName, &company) {
		return nil
	}
	return &company
}

// SaveCompany stores the company settings. A nameless value clears the
// record instead.
func (s *Store) SaveCompany(company *content.CompanySettings) bool {
	if company == nil || company.Empty() {
		return s.clear(keyCompanyName)
	}
	return s.saveJSON(keyCompanyName, company)
}

// ClearCompany removes the stored company settings.
func (s *Store) ClearCompany() bool { return s.clear(keyCompanyName) }
