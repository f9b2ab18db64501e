package woff2css

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// licensePatterns match license files shipped next to fonts (lowercased names).
var licensePatterns = []string{
	"ofl*.txt",
	"license*",
	"licence*",
	"copying*",
	"*.license",
}

// isLicenseFile reports whether name looks like a font license file.
func isLicenseFile(name string) bool {
	lower := strings.ToLower(name)
	for _, pattern := range licensePatterns {
		if ok, _ := filepath.Match(pattern, lower); ok {
			return true
		}
	}
	return false
}

// findLicenseFiles lists license files directly inside dir, sorted by name.
func findLicenseFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}

	var found []string
	for _, e := range entries {
		if e.Type().IsRegular() && isLicenseFile(e.Name()) {
			found = append(found, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(found)
	return found, nil
}

// licenseNotice renders the copyright and license strings a font declares
// in its name table. It returns "" when the font declares neither.
func licenseNotice(family, copyright, license string) string {
	copyright = strings.TrimSpace(copyright)
	license = strings.TrimSpace(license)
	if copyright == "" && license == "" {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", family)
	if copyright != "" {
		fmt.Fprintf(&b, "Copyright: %s\n", copyright)
	}
	if license != "" {
		fmt.Fprintf(&b, "License: %s\n", license)
	}
	return b.String()
}
