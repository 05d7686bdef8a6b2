package manager

import (
	_ "embed"
	"net/http"
)

//go:embed console.html
var consoleHTML []byte

// handleConsole serves the embedded manager console.
func (m *Manager) handleConsole(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(consoleHTML)
}
