package assets

import (
	"fmt"
	"strings"
)

// AssetLoader loads specimen stylesheets and templates by name.
type AssetLoader interface {
	// LoadStyle returns ErrStyleNotFound when no {name}.css exists.
	LoadStyle(name string) (string, error)

	// LoadTemplate returns ErrTemplateNotFound when no {name}.html exists.
	LoadTemplate(name string) (string, error)
}

// ValidateAssetName rejects names that could select a file other than
// {name}.css or {name}.html: empty names, separators and dots.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
