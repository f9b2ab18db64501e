package woff

import (
	"errors"
	"strings"
)

// weightWords are trailing family-name words that name a weight rather
// than the family ("Roboto Light" belongs to family "Roboto").
var weightWords = map[string]bool{
	"thin":       true,
	"hairline":   true,
	"extralight": true,
	"ultralight": true,
	"light":      true,
	"regular":    true,
	"medium":     true,
	"semibold":   true,
	"demibold":   true,
	"bold":       true,
	"extrabold":  true,
	"ultrabold":  true,
	"black":      true,
	"heavy":      true,
}

// Properties is the metadata read from a WOFF file.
type Properties struct {
	Flavor uint32
	Names  Names
	OS2    *OS2 // nil when the font has no OS/2 table
}

// Read extracts the name and OS/2 metadata from WOFF data.
// A name table is required; the OS/2 table is optional.
func Read(data []byte) (*Properties, error) {
	font, err := Parse(data)
	if err != nil {
		return nil, err
	}

	nameData, err := font.TableData("name")
	if err != nil {
		return nil, err
	}
	names, err := DecodeNames(nameData)
	if err != nil {
		return nil, err
	}

	props := &Properties{Flavor: font.Header.Flavor, Names: names}

	os2Data, err := font.TableData("OS/2")
	switch {
	case errors.Is(err, ErrTableMissing):
	case err != nil:
		return nil, err
	default:
		if props.OS2, err = DecodeOS2(os2Data); err != nil {
			return nil, err
		}
	}

	return props, nil
}

// FamilyName returns the family to declare in CSS. The typographic family
// is used when present; otherwise trailing weight words are stripped from
// the legacy family name, keeping at least one word.
func (p *Properties) FamilyName() string {
	if fam := strings.TrimSpace(p.Names.Get(NameTypographicFamily)); fam != "" {
		return fam
	}
	words := strings.Fields(p.Names.Get(NameFamily))
	for len(words) > 1 && weightWords[strings.ToLower(words[len(words)-1])] {
		words = words[:len(words)-1]
	}
	return strings.Join(words, " ")
}

// FullName returns the full font name, falling back to the PostScript name.
func (p *Properties) FullName() string {
	if full := p.Names.Get(NameFull); full != "" {
		return full
	}
	return p.Names.Get(NamePostScript)
}

// subfamily returns the most specific subfamily name available.
func (p *Properties) subfamily() string {
	if sub := p.Names.Get(NameTypographicSubfamily); sub != "" {
		return sub
	}
	return p.Names.Get(NameSubfamily)
}

// Italic reports whether the subfamily name or fsSelection marks the font italic.
func (p *Properties) Italic() bool {
	if strings.Contains(strings.ToLower(p.subfamily()), "italic") {
		return true
	}
	return p.OS2 != nil && p.OS2.Italic()
}

// Oblique reports whether the font is oblique rather than italic.
func (p *Properties) Oblique() bool {
	if strings.Contains(strings.ToLower(p.subfamily()), "oblique") {
		return true
	}
	return p.OS2 != nil && p.OS2.Oblique()
}

// WeightClass returns usWeightClass when the font declares a usable one.
func (p *Properties) WeightClass() (int, bool) {
	if p.OS2 == nil || p.OS2.WeightClass < 1 || p.OS2.WeightClass > 1000 {
		return 0, false
	}
	return int(p.OS2.WeightClass), true
}

// WidthClass returns usWidthClass when it lies in the defined 1-9 range.
func (p *Properties) WidthClass() (int, bool) {
	if p.OS2 == nil || p.OS2.WidthClass < 1 || p.OS2.WidthClass > 9 {
		return 0, false
	}
	return int(p.OS2.WidthClass), true
}

// Embeddable reports whether fsType allows unrestricted embedding.
// Fonts without an OS/2 table are reported as embeddable.
func (p *Properties) Embeddable() bool {
	return p.OS2 == nil || p.OS2.Installable()
}
