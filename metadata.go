package woff2css

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alnah/go-woff2css/internal/woff"
)

// FontInfo is the metadata a WOFF file declares about itself.
type FontInfo struct {
	Face       Face   // descriptors inferred from name and OS/2
	FullName   string // name ID 4, or the PostScript name
	Copyright  string
	License    string
	Embeddable bool // false when OS/2 fsType restricts embedding
}

// InspectFont reads descriptors from the name and OS/2 tables of WOFF data.
// It fails for data that is not a readable WOFF 1.0 file; embedding does
// not depend on it.
func InspectFont(data []byte) (*FontInfo, error) {
	props, err := woff.Read(data)
	if err != nil {
		return nil, err
	}

	face := Face{Family: props.FamilyName()}
	if w, ok := props.WeightClass(); ok {
		face.Weight = strconv.Itoa(w)
	}
	if w, ok := props.WidthClass(); ok {
		face.Stretch = StretchForWidthClass(w)
	}
	switch {
	case props.Italic():
		face.Style = StyleItalic
	case props.Oblique():
		face.Style = StyleOblique
	}

	return &FontInfo{
		Face:       face,
		FullName:   props.FullName(),
		Copyright:  props.Names.Get(woff.NameCopyright),
		License:    props.Names.Get(woff.NameLicense),
		Embeddable: props.Embeddable(),
	}, nil
}

// InspectFile is InspectFont for a file on disk.
func InspectFile(path string) (*FontInfo, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- caller-supplied font path
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	return InspectFont(data)
}

// ResolveFace decides the descriptors for a font: fields set in override
// win, then what the font declares about itself, then fallback, then the
// file name for the family and the built-in defaults for the rest.
// A metadata error is returned alongside a usable face; callers decide
// whether it matters.
func ResolveFace(path string, data []byte, override, fallback Face) (Face, *FontInfo, error) {
	if fallback.Family == "" {
		fallback.Family = FamilyFromPath(path)
	}
	info, err := InspectFont(data)
	if err != nil {
		return override.Merge(fallback).WithDefaults(), nil, err
	}
	return override.Merge(info.Face).Merge(fallback).WithDefaults(), info, nil
}

// FamilyFromPath derives a family name from a file name: the extension is
// dropped and dashes and underscores become spaces ("open_sans.woff" gives "open sans").
func FamilyFromPath(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	stem = strings.NewReplacer("-", " ", "_", " ").Replace(stem)
	return strings.Join(strings.Fields(stem), " ")
}
