package woff2css

import (
	"fmt"
	"os"
	"strings"
)

// FontAsset is one font file loaded into memory together with the
// descriptors used to declare it. It is not modified after loading.
type FontAsset struct {
	Path string
	Data []byte
	Face Face
}

// LoadFontAsset reads the file at path. The content is treated as opaque
// bytes: no format validation is performed.
func LoadFontAsset(path string, face Face) (*FontAsset, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- caller-supplied font path
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	return &FontAsset{Path: path, Data: data, Face: face}, nil
}

// CSS renders the asset as an @font-face rule.
func (a *FontAsset) CSS() string {
	return EmbedBytes(a.Data, a.Face)
}

// Embed reads the font at path and returns an @font-face rule whose src is
// a data URI carrying the file content. Empty weight, style and stretch
// take their defaults. On error the returned text is empty.
func Embed(path string, face Face) (string, error) {
	asset, err := LoadFontAsset(path, face)
	if err != nil {
		return "", err
	}
	return asset.CSS(), nil
}

// EmbedBytes builds the @font-face rule for in-memory font data.
func EmbedBytes(data []byte, face Face) string {
	return buildFontFaceCSS(face.WithDefaults(), DataURI(data))
}

// EmbedFamily embeds every variant and concatenates the rules in the order
// given. The first failing variant aborts the call.
func EmbedFamily(variants []Variant) (string, error) {
	if len(variants) == 0 {
		return "", ErrNoVariants
	}

	rules := make([]string, 0, len(variants))
	for _, v := range variants {
		rule, err := Embed(v.Path, v.Face)
		if err != nil {
			return "", err
		}
		rules = append(rules, rule)
	}
	return CombineRules(rules), nil
}

// CombineRules joins rules with a newline, keeping their order.
// No sorting or deduplication is applied.
func CombineRules(rules []string) string {
	return strings.Join(rules, "\n")
}
