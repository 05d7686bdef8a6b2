package theme

// Token names for the theme custom properties the site understands.
// Only tokens in this list are ever rendered; unknown keys are ignored.
const (
	TokenBackground     = "--color-background"
	TokenSurface        = "--color-surface"
	TokenSurfaceAlt     = "--color-surface-alt"
	TokenAccent         = "--color-accent"
	TokenAccentMuted    = "--color-accent-muted"
	TokenAccentRGB      = "--color-accent-rgb"
	TokenTextPrimary    = "--color-text-primary"
	TokenTextSecondary  = "--color-text-secondary"
	TokenShadowElevated = "--shadow-elevated"
	TokenShadeDirection = "--page-shade-direction"
	TokenShadeStrength  = "--page-shade-strength"
	TokenShadeSoft      = "--page-shade-soft"
	TokenShadePanel     = "--page-shade-panel"
	TokenTabsScale      = "--tabs-size-scale"
)

// Tokens is the fixed, ordered token list. Order is the stylesheet
// emission order.
var Tokens = []string{
	TokenBackground,
	TokenSurface,
	TokenSurfaceAlt,
	TokenAccent,
	TokenAccentMuted,
	TokenAccentRGB,
	TokenTextPrimary,
	TokenTextSecondary,
	TokenShadowElevated,
	TokenShadeDirection,
	TokenShadeStrength,
	TokenShadeSoft,
	TokenShadePanel,
	TokenTabsScale,
}

var tokenSet = func() map[string]bool {
	m := make(map[string]bool, len(Tokens))
	for _, t := range Tokens {
		m[t] = true
	}
	return m
}()

// IsToken reports whether name is one of the fixed theme tokens.
func IsToken(name string) bool { return tokenSet[name] }

// Snapshot is a set of theme token overrides. A Snapshot is a plain value;
// callers that share one must copy before mutating.
type Snapshot map[string]string

// Clone returns a shallow copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// BaseDefaults mirrors the values the base stylesheet assigns to each token.
// The manager reads these as the "computed" value when no override is set.
var BaseDefaults = Snapshot{
	TokenBackground:     "#0f1117",
	TokenSurface:        "#161a23",
	TokenSurfaceAlt:     "#1d2330",
	TokenAccent:         "#5a8dee",
	TokenAccentMuted:    "rgba(90, 141, 238, 0.12)",
	TokenAccentRGB:      "90, 141, 238",
	TokenTextPrimary:    "#f5f7ff",
	TokenTextSecondary:  "#a8b0c2",
	TokenShadowElevated: "0 20px 45px rgba(6, 9, 19, 0.45)",
	TokenShadeDirection: "to bottom",
	TokenShadeStrength:  "0.18",
	TokenShadeSoft:      "0.06",
	TokenShadePanel:     "0.11",
	TokenTabsScale:      "1",
}
