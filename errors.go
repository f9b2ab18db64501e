package woff2css

import "errors"

// Sentinel errors for library operations.
var (
	// ErrFileAccess wraps failures to read a font or write generated output.
	ErrFileAccess = errors.New("file access failed")

	// ErrEncoding is part of the error taxonomy for payload encoding.
	// Base64 accepts any byte sequence, so no current code path returns it.
	ErrEncoding = errors.New("payload encoding failed")

	// ErrNoPayload indicates a rule without a WOFF data URI.
	ErrNoPayload = errors.New("no embedded font payload")

	// Face validation errors.
	ErrEmptyFamily    = errors.New("font family cannot be empty")
	ErrInvalidFamily  = errors.New("invalid font family")
	ErrInvalidWeight  = errors.New("invalid font weight")
	ErrInvalidStyle   = errors.New("invalid font style")
	ErrInvalidStretch = errors.New("invalid font stretch")

	// Family and batch errors.
	ErrNoVariants   = errors.New("no font variants supplied")
	ErrNotDirectory = errors.New("not a directory")
	ErrNoFonts      = errors.New("no .woff files found")

	// Specimen errors.
	ErrSpecimenRender = errors.New("specimen rendering failed")
)
