package theme

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	shortHexPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3})$`)
	fullHexPattern  = regexp.MustCompile(`^#([0-9a-fA-F]{6})$`)
	rgbPattern      = regexp.MustCompile(`(?i)^rgba?\((\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})`)
)

// ToFullHex normalizes a color value to a lower-case 6-digit hex string.
// Shorthand hex is expanded, rgb()/rgba() triplets are converted, anything
// else yields "". Idempotent on its own output.
func ToFullHex(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}

	if m := shortHexPattern.FindStringSubmatch(trimmed); m != nil {
		var b strings.Builder
		b.WriteByte('#')
		for _, c := range m[1] {
			b.WriteRune(c)
			b.WriteRune(c)
		}
		return strings.ToLower(b.String())
	}

	if fullHexPattern.MatchString(trimmed) {
		return strings.ToLower(trimmed)
	}

	if m := rgbPattern.FindStringSubmatch(trimmed); m != nil {
		comp := func(s string) int {
			n, err := strconv.Atoi(s)
			if err != nil {
				return 0
			}
			return clampInt(n, 0, 255)
		}
		return fmt.Sprintf("#%02x%02x%02x", comp(m[1]), comp(m[2]), comp(m[3]))
	}

	return ""
}

// rgbComponents splits a color value into its 0-255 channel values.
func rgbComponents(value string) (r, g, b int, ok bool) {
	hex := ToFullHex(value)
	if hex == "" {
		return 0, 0, 0, false
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, 0, 0, false
	}
	r8, g8, b8 := c.RGB255()
	return int(r8), int(g8), int(b8), true
}

// AccentRGB renders a color as the "r, g, b" triplet used by the
// --color-accent-rgb token. Invalid input yields "".
func AccentRGB(value string) string {
	r, g, b, ok := rgbComponents(value)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%d, %d, %d", r, g, b)
}

// AccentMuted renders a translucent variant of a color for the
// --color-accent-muted token. Invalid input yields "".
func AccentMuted(value string, alpha float64) string {
	r, g, b, ok := rgbComponents(value)
	if !ok {
		return ""
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, formatAlpha(alpha))
}

// DefaultAccentAlpha is the muted-accent opacity applied when the operator
// has not chosen an accent shade.
const DefaultAccentAlpha = 0.12

func formatAlpha(alpha float64) string {
	return strconv.FormatFloat(alpha, 'g', -1, 64)
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
