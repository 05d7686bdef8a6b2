package theme

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ShadeSoft derives the soft page-shade opacity from the primary shade
// strength, clamped to [0, 0.35] and formatted to two decimals.
func ShadeSoft(strength float64) string {
	return fmt.Sprintf("%.2f", clampFloat(strength/3, 0, 0.35))
}

// ShadePanel derives the panel overlay opacity from the primary shade
// strength, clamped to [0, 0.45] and formatted to two decimals.
func ShadePanel(strength float64) string {
	return fmt.Sprintf("%.2f", clampFloat(strength*0.6, 0, 0.45))
}

// ShadowValue builds the elevated-shadow CSS value for a given alpha.
func ShadowValue(alpha float64) string {
	return fmt.Sprintf("0 20px 45px rgba(6, 9, 19, %.2f)", alpha)
}

var alphaPattern = regexp.MustCompile(`(?i)rgba?\([^,]+,[^,]+,[^,]+,\s*([\d.]+)\)`)

// ExtractAlpha pulls the alpha channel out of an rgba() string, clamped to
// [0, 1]. The second return is false when the value has no alpha channel.
func ExtractAlpha(value string) (float64, bool) {
	m := alphaPattern.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		return 0, false
	}
	parsed, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return clampFloat(parsed, 0, 1), true
}
