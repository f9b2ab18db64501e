package assets

import "strings"

// DefaultSpecimenName names the built-in specimen stylesheet and template.
const DefaultSpecimenName = "specimen"

var defaultLoader = NewEmbeddedLoader()

// LoadStyle returns an embedded stylesheet by name (without .css).
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// LoadTemplate returns an embedded HTML template by name (without .html).
func LoadTemplate(name string) (string, error) {
	return defaultLoader.LoadTemplate(name)
}

// EmbeddedStyles lists the built-in style names, sorted.
func EmbeddedStyles() []string {
	// The directory is compiled in, so ReadDir cannot fail.
	entries, _ := styles.ReadDir("styles")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".css"))
	}
	return names
}
