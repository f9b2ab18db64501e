package main

import (
	"errors"
	"os"

	woff2css "github.com/alnah/go-woff2css"
	"github.com/alnah/go-woff2css/internal/assets"
	"github.com/alnah/go-woff2css/internal/config"
	"github.com/alnah/go-woff2css/internal/hints"
	"github.com/alnah/go-woff2css/internal/woff"
)

// Exit codes for the woff2css CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Everything converted
	ExitGeneral = 1 // Unexpected error or partial batch failure
	ExitUsage   = 2 // Invalid flags, config, or descriptors
	ExitIO      = 3 // Font missing or unreadable, output not writable
)

// CLI-level sentinel errors.
var (
	ErrUsage   = errors.New("invalid usage")
	ErrNoInput = errors.New("no input font specified")
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Partial batch failures are reported per font; the run itself is general.
	if woff2css.IsBatchFailure(err) {
		return ExitGeneral
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, woff2css.ErrFileAccess) ||
		errors.Is(err, woff2css.ErrNotDirectory) ||
		errors.Is(err, woff2css.ErrNoFonts) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidField) ||
		errors.Is(err, woff2css.ErrEmptyFamily) ||
		errors.Is(err, woff2css.ErrInvalidFamily) ||
		errors.Is(err, woff2css.ErrInvalidWeight) ||
		errors.Is(err, woff2css.ErrInvalidStyle) ||
		errors.Is(err, woff2css.ErrInvalidStretch) ||
		errors.Is(err, woff.ErrNotWOFF) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrTemplateNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrInvalidBasePath) {
		return ExitUsage
	}

	return ExitGeneral
}

// hintFor returns a follow-up suggestion for err, or "".
func hintFor(err error) string {
	var notFound *config.NotFoundError
	switch {
	case errors.As(err, &notFound):
		return hints.ForConfigNotFound(notFound.Tried)
	case errors.Is(err, woff2css.ErrEmptyFamily):
		return hints.ForEmptyFamily()
	case errors.Is(err, woff2css.ErrNoFonts):
		return hints.ForNoFonts()
	case errors.Is(err, woff.ErrNotWOFF):
		return hints.ForNotWOFF()
	case errors.Is(err, assets.ErrStyleNotFound), errors.Is(err, assets.ErrTemplateNotFound):
		return hints.ForStyleNotFound(assets.EmbeddedStyles())
	case errors.Is(err, os.ErrPermission) && errors.Is(err, woff2css.ErrFileAccess):
		return hints.ForOutputDirectory()
	case errors.Is(err, woff2css.ErrFileAccess):
		return hints.ForFileAccess()
	}
	return ""
}
