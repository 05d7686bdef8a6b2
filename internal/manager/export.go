package manager

import "encoding/json"

// Export renders the staged configuration as a snippet an operator can
// paste into a static deployment. The snippet assigns the content and
// theme globals the site reads at startup.
func (m *Manager) Export() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.exportLocked()
}

func (m *Manager) exportLocked() string {
	contentJSON, err := json.MarshalIndent(m.working, "", "  ")
	if err != nil {
		contentJSON = []byte("{}")
	}
	snippet := "window.PUBLISHING_TAB_CONTENT = " + string(contentJSON) + ";\n\n"

	if len(m.theme) == 0 {
		return snippet + "// No theme overrides saved.\n"
	}
	themeJSON, err := json.MarshalIndent(m.theme, "", "  ")
	if err != nil {
		themeJSON = []byte("{}")
	}
	return snippet + "window.PUBLISHING_THEME_OVERRIDES = " + string(themeJSON) + ";\n"
}
