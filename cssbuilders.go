package woff2css

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DataURIPrefix precedes the base64 payload in every generated src URL.
const DataURIPrefix = "data:font/woff;charset=utf-8;base64,"

// fontFormat is the format() hint paired with the data URI.
const fontFormat = "woff"

// fontFaceOverhead approximates the fixed text around the payload.
const fontFaceOverhead = 192

// DataURI encodes data as a WOFF data URI using the standard base64
// alphabet with padding and no line breaks.
func DataURI(data []byte) string {
	return DataURIPrefix + base64.StdEncoding.EncodeToString(data)
}

// buildFontFaceCSS renders a single @font-face rule.
// The face must already have defaults applied.
func buildFontFaceCSS(face Face, src string) string {
	var buf strings.Builder
	buf.Grow(len(src) + len(face.Family) + fontFaceOverhead)

	buf.WriteString("@font-face {\n")
	fmt.Fprintf(&buf, "  font-family: \"%s\";\n", face.Family)
	fmt.Fprintf(&buf, "  src: url(%s) format(\"%s\");\n", src, fontFormat)
	fmt.Fprintf(&buf, "  font-weight: %s;\n", face.Weight)
	fmt.Fprintf(&buf, "  font-style: %s;\n", face.Style)
	fmt.Fprintf(&buf, "  font-stretch: %s;\n", face.Stretch)
	buf.WriteString("}\n")

	return buf.String()
}

// buildVariantClassCSS renders a class selector that applies face to sample text.
func buildVariantClassCSS(class string, face Face) string {
	return fmt.Sprintf(".%s {\n  font-family: \"%s\", sans-serif;\n  font-weight: %s;\n  font-style: %s;\n  font-stretch: %s;\n}\n",
		class, face.Family, face.Weight, face.Style, face.Stretch)
}

// elidePayload shortens the payload of a data URI for display,
// keeping the first few characters and the decoded size.
func elidePayload(data []byte) string {
	const keep = 16
	payload := base64.StdEncoding.EncodeToString(data)
	if len(payload) <= keep {
		return DataURIPrefix + payload
	}
	return fmt.Sprintf("%s%s…(%d bytes)", DataURIPrefix, payload[:keep], len(data))
}

// Payload extracts and decodes the first WOFF data URI found in css.
func Payload(css string) ([]byte, error) {
	start := strings.Index(css, DataURIPrefix)
	if start < 0 {
		return nil, ErrNoPayload
	}
	rest := css[start+len(DataURIPrefix):]
	end := strings.IndexByte(rest, ')')
	if end < 0 {
		return nil, fmt.Errorf("%w: unterminated url()", ErrNoPayload)
	}
	data, err := base64.StdEncoding.DecodeString(rest[:end])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoPayload, err)
	}
	return data, nil
}
