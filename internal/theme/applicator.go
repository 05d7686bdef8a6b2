package theme

import (
	"strconv"
	"strings"
)

// Derive fills in the dependent tokens of a snapshot: when the accent color
// is set, the muted and rgb variants are computed unless explicitly present;
// when the shade strength is set, the soft and panel opacities are computed
// unless explicitly present. The input is not mutated. Invalid primary
// values simply leave their dependents unset.
func Derive(overrides Snapshot) Snapshot {
	merged := overrides.Clone()

	if accent := merged[TokenAccent]; accent != "" {
		if merged[TokenAccentMuted] == "" {
			if muted := AccentMuted(accent, DefaultAccentAlpha); muted != "" {
				merged[TokenAccentMuted] = muted
			}
		}
		if merged[TokenAccentRGB] == "" {
			if rgb := AccentRGB(accent); rgb != "" {
				merged[TokenAccentRGB] = rgb
			}
		}
	}

	if raw := merged[TokenShadeStrength]; raw != "" {
		if strength, err := strconv.ParseFloat(raw, 64); err == nil {
			if merged[TokenShadeSoft] == "" {
				merged[TokenShadeSoft] = ShadeSoft(strength)
			}
			if merged[TokenShadePanel] == "" {
				merged[TokenShadePanel] = ShadePanel(strength)
			}
		}
	}

	return merged
}

// Applicator renders effective theme snapshots into the document's styling
// scope. The served stylesheet is the scope: tokens present in the snapshot
// are emitted, absent tokens are simply not declared and fall back to the
// base stylesheet defaults.
type Applicator struct{}

// NewApplicator returns an Applicator.
func NewApplicator() *Applicator { return &Applicator{} }

// Apply derives dependent tokens and renders the snapshot as a :root rule.
// Only the fixed token list is ever emitted; unknown keys are ignored.
// Apply cannot fail: invalid values are omitted, never raised.
func (a *Applicator) Apply(overrides Snapshot) string {
	merged := Derive(overrides)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, token := range Tokens {
		value := strings.TrimSpace(merged[token])
		if value == "" {
			continue
		}
		b.WriteString("  ")
		b.WriteString(token)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteString(";\n")
	}
	b.WriteString("}\n")
	return b.String()
}
