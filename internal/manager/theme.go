package manager

import (
	"strconv"
	"strings"

	"github.com/Olga-Zydziak/website-of-publishing-house/internal/theme"
)

const defaultShadeDirection = "to bottom"

// SetToken stores one theme token override. An empty value removes the
// override, together with the derived tokens that depend on it: clearing
// the accent drops the muted and rgb variants, clearing the shade strength
// drops the soft and panel shades. Setting the accent recomputes both
// variants at the current accent shading; setting the strength stores it
// normalized to two decimals and recomputes its dependents.
func (m *Manager) SetToken(token, value string) Result {
	if !theme.IsToken(token) {
		return errResult("Unknown theme token.")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	value = strings.TrimSpace(value)
	if value == "" {
		delete(m.theme, token)
		switch token {
		case theme.TokenAccent:
			delete(m.theme, theme.TokenAccentMuted)
			delete(m.theme, theme.TokenAccentRGB)
		case theme.TokenShadeStrength:
			delete(m.theme, theme.TokenShadeSoft)
			delete(m.theme, theme.TokenShadePanel)
		}
		return m.saveThemeLocked(msgThemeUpdated)
	}

	switch token {
	case theme.TokenShadeStrength:
		strength := clampFloat(parseFloat(value, 0), 0, 1)
		m.theme[token] = strconv.FormatFloat(strength, 'f', 2, 64)
		m.theme[theme.TokenShadeSoft] = theme.ShadeSoft(strength)
		m.theme[theme.TokenShadePanel] = theme.ShadePanel(strength)
	case theme.TokenAccent:
		m.theme[token] = value
		alpha := m.accentAlphaLocked()
		if muted := theme.AccentMuted(value, alpha); muted != "" {
			m.theme[theme.TokenAccentMuted] = muted
		}
		if rgb := theme.AccentRGB(value); rgb != "" {
			m.theme[theme.TokenAccentRGB] = rgb
		}
	default:
		m.theme[token] = value
	}

	return m.saveThemeLocked(msgThemeUpdated)
}

// SetAccentShade adjusts the alpha of the muted accent. Percent is clamped
// to 5-60.
func (m *Manager) SetAccentShade(percent int) Result {
	m.mu.Lock()
	defer m.mu.Unlock()

	percent = clampInt(percent, 5, 60)
	accent := m.theme[theme.TokenAccent]
	if accent == "" {
		accent = theme.BaseDefaults[theme.TokenAccent]
	}
	muted := theme.AccentMuted(accent, float64(percent)/100)
	if muted == "" {
		return errResult("The accent color is not a recognizable color value.")
	}
	m.theme[theme.TokenAccentMuted] = muted
	return m.saveThemeLocked("Accent shading updated. Refresh the home page to preview changes.")
}

// SetBackgroundShade adjusts the page shade strength. Percent is clamped
// to 0-60 and stored as a 0-0.6 strength with two decimals; the dependent
// soft and panel shades are recomputed.
func (m *Manager) SetBackgroundShade(percent int) Result {
	m.mu.Lock()
	defer m.mu.Unlock()

	percent = clampInt(percent, 0, 60)
	strength := clampFloat(float64(percent)/100, 0, 0.6)
	m.theme[theme.TokenShadeStrength] = strconv.FormatFloat(strength, 'f', 2, 64)
	m.theme[theme.TokenShadeSoft] = theme.ShadeSoft(strength)
	m.theme[theme.TokenShadePanel] = theme.ShadePanel(strength)
	return m.saveThemeLocked("Background shading updated. Refresh the home page to preview changes.")
}

// SetShadeDirection flips the page gradient origin.
func (m *Manager) SetShadeDirection(direction string) Result {
	m.mu.Lock()
	defer m.mu.Unlock()

	direction = strings.TrimSpace(direction)
	if direction == "" {
		direction = defaultShadeDirection
	}
	m.theme[theme.TokenShadeDirection] = direction
	return m.saveThemeLocked("Background shading origin updated. Refresh the home page to preview changes.")
}

// SetShadowDepth adjusts the elevated shadow alpha. Percent is clamped
// to 0-70.
func (m *Manager) SetShadowDepth(percent int) Result {
	m.mu.Lock()
	defer m.mu.Unlock()

	percent = clampInt(percent, 0, 70)
	m.theme[theme.TokenShadowElevated] = theme.ShadowValue(float64(percent) / 100)
	return m.saveThemeLocked("Shadow depth updated. Refresh the home page to preview changes.")
}

// SetTabsScale resizes the navigation tabs. Percent is clamped to 85-125
// and stored as a scale factor.
func (m *Manager) SetTabsScale(percent int) Result {
	m.mu.Lock()
	defer m.mu.Unlock()

	percent = clampInt(percent, 85, 125)
	m.theme[theme.TokenTabsScale] = strconv.FormatFloat(float64(percent)/100, 'g', -1, 64)
	return m.saveThemeLocked("Navigation tabs resized. Refresh the home page to preview changes.")
}

// ResetTheme drops every theme override.
func (m *Manager) ResetTheme() Result {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.theme = theme.Snapshot{}
	return m.saveThemeLocked(msgThemeReset)
}

// accentAlphaLocked reads the alpha of the current muted accent override,
// falling back to the default accent shading. Caller holds mu.
func (m *Manager) accentAlphaLocked() float64 {
	if stored := m.theme[theme.TokenAccentMuted]; stored != "" {
		if alpha, ok := theme.ExtractAlpha(stored); ok {
			return alpha
		}
	}
	return theme.DefaultAccentAlpha
}

// saveThemeLocked persists the overrides and notifies live previews.
// Caller holds mu.
func (m *Manager) saveThemeLocked(message string) Result {
	if !m.store.SaveThemeOverrides(m.theme) {
		return errResult(msgSaveFailed)
	}
	m.broadcastLocked()
	return okResult(message)
}

func parseFloat(value string, fallback float64) float64 {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func clampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func clampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
