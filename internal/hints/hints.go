// Package hints provides actionable follow-ups appended to CLI error
// messages, formatted as "\n  hint: <text>".
package hints

import (
	"path/filepath"
	"strings"
)

// ForConfigNotFound suggests --config, or creating the file in the user
// config directory when that location was among the searched paths.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/woff2css/") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForFileAccess returns a hint for unreadable font files.
func ForFileAccess() string {
	return format("check the path exists and is readable")
}

// ForOutputDirectory returns a hint for failed CSS or license writes.
func ForOutputDirectory() string {
	return format("check the output directory is writable (-o, WOFF2CSS_OUTPUT_DIR)")
}

// ForNoFonts explains what batch discovery looks for.
func ForNoFonts() string {
	return format("batch converts files ending in .woff; WOFF2 (.woff2) is not supported")
}

// ForNotWOFF is shown when --auto cannot read a font's metadata.
func ForNotWOFF() string {
	return format("only WOFF 1.0 metadata can be read; pass --family, --weight and --style instead of --auto")
}

// ForEmptyFamily reminds that the family is required unless inferred.
func ForEmptyFamily() string {
	return format("use --family \"Name\", set font.family in the config, or --auto to read it from the font")
}

// ForStyleNotFound lists the specimen styles that exist.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
