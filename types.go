package woff2css

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Default descriptor values applied by Face.WithDefaults.
const (
	DefaultWeight  = "400"
	DefaultStyle   = StyleNormal
	DefaultStretch = StretchNormal
)

// Font style keywords.
const (
	StyleNormal  = "normal"
	StyleItalic  = "italic"
	StyleOblique = "oblique"
)

// StretchNormal is the neutral font-stretch keyword.
const StretchNormal = "normal"

// MaxFamilyLength bounds the font-family descriptor.
const MaxFamilyLength = 200

// Weight bounds accepted for numeric font-weight values (CSS Fonts Level 4).
const (
	MinWeight = 1
	MaxWeight = 1000
)

// stretchKeywords lists the font-stretch keywords in width-class order.
var stretchKeywords = []string{
	"ultra-condensed",
	"extra-condensed",
	"condensed",
	"semi-condensed",
	StretchNormal,
	"semi-expanded",
	"expanded",
	"extra-expanded",
	"ultra-expanded",
}

// Face holds the @font-face descriptors for one font file.
// Values are emitted verbatim; call Validate to reject values that
// would produce malformed CSS.
type Face struct {
	Family  string // font-family, written inside double quotes
	Weight  string // numeric (e.g. "400") or keyword ("bold")
	Style   string // "normal", "italic", "oblique" or "oblique 10deg"
	Stretch string // keyword ("condensed") or percentage ("75%")
}

// WithDefaults returns a copy of f with empty descriptors filled in.
// Family is never defaulted.
func (f Face) WithDefaults() Face {
	if f.Weight == "" {
		f.Weight = DefaultWeight
	}
	if f.Style == "" {
		f.Style = DefaultStyle
	}
	if f.Stretch == "" {
		f.Stretch = DefaultStretch
	}
	return f
}

// Merge returns f with empty fields taken from fallback.
func (f Face) Merge(fallback Face) Face {
	if f.Family == "" {
		f.Family = fallback.Family
	}
	if f.Weight == "" {
		f.Weight = fallback.Weight
	}
	if f.Style == "" {
		f.Style = fallback.Style
	}
	if f.Stretch == "" {
		f.Stretch = fallback.Stretch
	}
	return f
}

// String returns a short human-readable label such as "Roboto 700 italic".
func (f Face) String() string {
	d := f.WithDefaults()
	parts := []string{d.Family, d.Weight}
	if d.Style != StyleNormal {
		parts = append(parts, d.Style)
	}
	if d.Stretch != StretchNormal {
		parts = append(parts, d.Stretch)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// Validate checks that the descriptors produce well-formed CSS.
// Empty weight, style and stretch are accepted (defaults apply).
func (f Face) Validate() error {
	if err := validateFamily(f.Family); err != nil {
		return err
	}
	if f.Weight != "" && !isValidWeight(f.Weight) {
		return fmt.Errorf("%w: %q (use 1-%d, normal, bold, bolder or lighter)", ErrInvalidWeight, f.Weight, MaxWeight)
	}
	if f.Style != "" && !isValidStyle(f.Style) {
		return fmt.Errorf("%w: %q (use normal, italic or oblique)", ErrInvalidStyle, f.Style)
	}
	if f.Stretch != "" && !isValidStretch(f.Stretch) {
		return fmt.Errorf("%w: %q (use a keyword such as condensed or a percentage)", ErrInvalidStretch, f.Stretch)
	}
	return nil
}

// validateFamily rejects characters that would terminate the quoted string.
func validateFamily(family string) error {
	if strings.TrimSpace(family) == "" {
		return ErrEmptyFamily
	}
	if len(family) > MaxFamilyLength {
		return fmt.Errorf("%w: %d chars (max %d)", ErrInvalidFamily, len(family), MaxFamilyLength)
	}
	for _, r := range family {
		if r == '"' || r == '\\' || unicode.IsControl(r) {
			return fmt.Errorf("%w: %q contains %q", ErrInvalidFamily, family, r)
		}
	}
	return nil
}

// isValidWeight accepts keywords, a number, or a "min max" range for variable fonts.
func isValidWeight(weight string) bool {
	switch strings.ToLower(weight) {
	case "normal", "bold", "bolder", "lighter":
		return true
	}
	fields := strings.Fields(weight)
	if len(fields) == 0 || len(fields) > 2 {
		return false
	}
	for _, field := range fields {
		n, err := strconv.ParseFloat(field, 64)
		if err != nil || n < MinWeight || n > MaxWeight {
			return false
		}
	}
	return true
}

// isValidStyle accepts the style keywords and "oblique <angle>deg".
func isValidStyle(style string) bool {
	fields := strings.Fields(strings.ToLower(style))
	switch {
	case len(fields) == 1:
		switch fields[0] {
		case StyleNormal, StyleItalic, StyleOblique:
			return true
		}
	case len(fields) == 2 && fields[0] == StyleOblique:
		angle, ok := strings.CutSuffix(fields[1], "deg")
		if !ok {
			return false
		}
		n, err := strconv.ParseFloat(angle, 64)
		return err == nil && n >= -90 && n <= 90
	}
	return false
}

// isValidStretch accepts the stretch keywords and non-negative percentages.
func isValidStretch(stretch string) bool {
	lower := strings.ToLower(stretch)
	for _, kw := range stretchKeywords {
		if lower == kw {
			return true
		}
	}
	pct, ok := strings.CutSuffix(lower, "%")
	if !ok {
		return false
	}
	n, err := strconv.ParseFloat(pct, 64)
	return err == nil && n >= 0
}

// StretchForWidthClass maps an OS/2 usWidthClass (1-9) to its font-stretch keyword.
// Out-of-range classes map to "normal".
func StretchForWidthClass(class int) string {
	if class < 1 || class > len(stretchKeywords) {
		return StretchNormal
	}
	return stretchKeywords[class-1]
}

// Variant pairs a font file with the descriptors to emit for it.
type Variant struct {
	Path string
	Face Face
}
