package manager

import (
	"regexp"
	"strings"

	"github.com/Olga-Zydziak/website-of-publishing-house/internal/content"
)

// MaxLogoBytes caps uploaded logo images.
const MaxLogoBytes = 2 << 20

var logoURLPattern = regexp.MustCompile(`(?i)^https?://.+\.(png|jpe?g|svg|webp)$`)

var logoContentTypes = map[string]bool{
	"image/png":     true,
	"image/jpeg":    true,
	"image/svg+xml": true,
	"image/webp":    true,
}

const (
	msgLogoFormat = "Logo must be PNG, JPG, SVG, or WebP format."
	msgLogoSize   = "Logo file must be 2 MB or smaller."
)

// SetLogoURL points the site logo at an external image. The URL must end
// in a supported image extension.
func (m *Manager) SetLogoURL(rawURL, alt string) Result {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return errResult("Please provide a logo URL.")
	}
	if !logoURLPattern.MatchString(rawURL) {
		return errResult(msgLogoFormat)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	logo := &content.LogoSettings{
		URL:  rawURL,
		Alt:  altOrDefault(alt),
		Type: content.LogoTypeURL,
	}
	if !m.store.SaveLogo(logo) {
		return errResult(msgSaveFailed)
	}
	m.logo = logo
	m.broadcastLocked()
	return okResult("Logo updated. Refresh the home page to preview changes.")
}

// SetLogoUpload stores an uploaded logo image inline as a data URL.
func (m *Manager) SetLogoUpload(data []byte, contentType, alt string) Result {
	if len(data) == 0 {
		return errResult("Please choose a logo file.")
	}
	if len(data) > MaxLogoBytes {
		return errResult(msgLogoSize)
	}
	contentType = strings.ToLower(strings.TrimSpace(contentType))
	if !logoContentTypes[contentType] {
		return errResult(msgLogoFormat)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	logo := &content.LogoSettings{
		Src:  content.DataURL(contentType, data),
		Alt:  altOrDefault(alt),
		Type: content.LogoTypeUpload,
	}
	if !m.store.SaveLogo(logo) {
		return errResult(msgSaveFailed)
	}
	m.logo = logo
	m.broadcastLocked()
	return okResult("Logo updated. Refresh the home page to preview changes.")
}

// RemoveLogo restores the text-only masthead.
func (m *Manager) RemoveLogo() Result {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.store.ClearLogo() {
		return errResult(msgSaveFailed)
	}
	m.logo = nil
	m.broadcastLocked()
	return okResult("Logo removed. The site shows the company name instead.")
}

// Logo returns the stored logo, or nil when none is set.
func (m *Manager) Logo() *content.LogoSettings {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.logo == nil {
		return nil
	}
	logo := *m.logo
	return &logo
}

// SetCompany updates the masthead company name and its styling. Missing
// styling fields fall back to the site defaults; an empty name clears the
// stored settings.
func (m *Manager) SetCompany(settings content.CompanySettings) Result {
	settings.Name = strings.TrimSpace(settings.Name)

	m.mu.Lock()
	defer m.mu.Unlock()

	if settings.Name == "" {
		if !m.store.ClearCompany() {
			return errResult(msgSaveFailed)
		}
		m.company = nil
		m.broadcastLocked()
		return okResult("Company name cleared.")
	}

	if strings.TrimSpace(settings.Font) == "" {
		settings.Font = content.DefaultCompanyFont
	}
	if strings.TrimSpace(settings.Size) == "" {
		settings.Size = content.DefaultCompanySize
	}
	if strings.TrimSpace(settings.Color) == "" {
		settings.Color = content.DefaultCompanyColor
	}

	if !m.store.SaveCompany(&settings) {
		return errResult(msgSaveFailed)
	}
	m.company = &settings
	m.broadcastLocked()
	return okResult("Company name updated. Refresh the home page to preview changes.")
}

// Company returns the stored company settings, or nil when none are set.
func (m *Manager) Company() *content.CompanySettings {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.company == nil {
		return nil
	}
	company := *m.company
	return &company
}

func altOrDefault(alt string) string {
	alt = strings.TrimSpace(alt)
	if alt == "" {
		return content.DefaultLogoAlt
	}
	return alt
}
