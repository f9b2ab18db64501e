package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-woff2css/internal/fileutil"
	"github.com/alnah/go-woff2css/internal/yamlutil"
)

// AppDirName is the directory searched under os.UserConfigDir.
const AppDirName = "woff2css"

var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxFamilyLength     = 200
	MaxDescriptorLength = 40 // "oblique -14deg", "ultra-condensed", "100 900"
	MaxPathLength       = 4096
	MaxTitleLength      = 200
	MaxSampleTextLength = 1000
	MaxStyleNameLength  = 64
)

// Config holds the defaults a project applies to every invocation.
// Command-line flags and WOFF2CSS_* variables take precedence.
type Config struct {
	Font     FontConfig     `yaml:"font"`
	Output   OutputConfig   `yaml:"output"`
	Batch    BatchConfig    `yaml:"batch"`
	Specimen SpecimenConfig `yaml:"specimen"`
	Assets   AssetsConfig   `yaml:"assets"`
}

// FontConfig holds descriptor defaults. Empty fields mean "infer from the
// font or use the built-in default".
type FontConfig struct {
	Family  string `yaml:"family"`
	Weight  string `yaml:"weight"`
	Style   string `yaml:"style"`
	Stretch string `yaml:"stretch"`
	Auto    bool   `yaml:"auto"` // read descriptors from the font's metadata
}

type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // empty = current directory
}

// BatchConfig names the directories created under the output directory.
type BatchConfig struct {
	SingleDir    string `yaml:"singleDir"`    // default "single"
	CombinedDir  string `yaml:"combinedDir"`  // default "combined"
	LicenseDir   string `yaml:"licenseDir"`   // default "licenses"
	SkipLicenses bool   `yaml:"skipLicenses"` // do not collect license files
}

type SpecimenConfig struct {
	Title      string `yaml:"title"`
	SampleText string `yaml:"sampleText"`
	Notes      string `yaml:"notes"` // Markdown file appended to the page
	Style      string `yaml:"style"` // stylesheet/template name
}

type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // empty = embedded assets only
}

// DefaultConfig returns an empty configuration: every value falls through
// to the library defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// Validate checks field lengths and that batch directories stay inside
// the output directory. Descriptor syntax is checked later, once flags
// have been merged in.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"font.family", c.Font.Family, MaxFamilyLength},
		{"font.weight", c.Font.Weight, MaxDescriptorLength},
		{"font.style", c.Font.Style, MaxDescriptorLength},
		{"font.stretch", c.Font.Stretch, MaxDescriptorLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"batch.singleDir", c.Batch.SingleDir, MaxPathLength},
		{"batch.combinedDir", c.Batch.CombinedDir, MaxPathLength},
		{"batch.licenseDir", c.Batch.LicenseDir, MaxPathLength},
		{"specimen.title", c.Specimen.Title, MaxTitleLength},
		{"specimen.sampleText", c.Specimen.SampleText, MaxSampleTextLength},
		{"specimen.notes", c.Specimen.Notes, MaxPathLength},
		{"specimen.style", c.Specimen.Style, MaxStyleNameLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	for _, d := range []struct{ name, value string }{
		{"batch.singleDir", c.Batch.SingleDir},
		{"batch.combinedDir", c.Batch.CombinedDir},
		{"batch.licenseDir", c.Batch.LicenseDir},
	} {
		if err := validateSubdir(d.name, d.value); err != nil {
			return err
		}
	}
	return nil
}

func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateSubdir rejects absolute paths and paths climbing out of the
// output directory.
func validateSubdir(fieldName, value string) error {
	if value == "" {
		return nil
	}
	clean := filepath.Clean(filepath.FromSlash(value))
	if filepath.IsAbs(clean) || strings.HasPrefix(value, "/") || clean == ".." ||
		strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: %s must be relative to the output directory, got %q", ErrInvalidField, fieldName, value)
	}
	return nil
}

// LoadConfig reads a config file. A value containing a path separator is
// read as is; a bare name is searched as name.yaml or name.yml in the
// current directory, then in the user config directory. A missing file is
// an error, never a silent fallback.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// NotFoundError lists the locations searched for a named config.
type NotFoundError struct {
	Name  string
	Tried []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: %s (tried %s)", ErrConfigNotFound, e.Name, strings.Join(e.Tried, ", "))
}

func (e *NotFoundError) Unwrap() error { return ErrConfigNotFound }

// resolveConfigPath tries .yaml then .yml, first in the working directory
// and then in <UserConfigDir>/woff2css.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	dirs := []string{""}
	if userDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(userDir, AppDirName))
	}

	tried := make([]string, 0, len(extensions)*len(dirs))
	for _, dir := range dirs {
		for _, ext := range extensions {
			p := filepath.Join(dir, name+ext)
			if fileutil.FileExists(p) {
				return p, nil
			}
			tried = append(tried, p)
		}
	}
	return "", &NotFoundError{Name: name, Tried: tried}
}
