package assets

// Notes:
// - Permission-denied reads are not tested: running as root makes them
//   unreliable. ErrAssetRead is covered by code inspection only.

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// writeAsset creates {base}/{dir}/{file} with content.
func writeAsset(t *testing.T, base, dir, file, content string) {
	t.Helper()
	full := filepath.Join(base, dir)
	if err := os.MkdirAll(full, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", full, err)
	}
	if err := os.WriteFile(filepath.Join(full, file), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", file, err)
	}
}

// ---------------------------------------------------------------------------
// TestValidateAssetName - Name validation
// ---------------------------------------------------------------------------

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"simple name", "specimen", nil},
		{"hyphen and digits", "dark-2", nil},
		{"underscore", "my_style", nil},
		{"empty", "", ErrInvalidAssetName},
		{"forward slash", "a/b", ErrInvalidAssetName},
		{"backslash", `a\b`, ErrInvalidAssetName},
		{"traversal", "../secret", ErrInvalidAssetName},
		{"extension", "specimen.css", ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAssetName(%q) = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestEmbedded - Built-in specimen assets
// ---------------------------------------------------------------------------

func TestLoadStyle_Embedded(t *testing.T) {
	t.Parallel()

	got, err := LoadStyle(DefaultSpecimenName)
	if err != nil {
		t.Fatalf("LoadStyle(%q) error = %v", DefaultSpecimenName, err)
	}
	if !strings.Contains(got, ".specimen-sample") {
		t.Error("embedded stylesheet should style .specimen-sample")
	}

	_, err = LoadStyle("nonexistent")
	if !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("LoadStyle(nonexistent) error = %v, want ErrStyleNotFound", err)
	}
}

func TestLoadTemplate_Embedded(t *testing.T) {
	t.Parallel()

	got, err := LoadTemplate(DefaultSpecimenName)
	if err != nil {
		t.Fatalf("LoadTemplate(%q) error = %v", DefaultSpecimenName, err)
	}
	for _, want := range []string{"<!DOCTYPE html>", "{{.FontFaces}}", "{{range .Variants}}"} {
		if !strings.Contains(got, want) {
			t.Errorf("embedded template missing %q", want)
		}
	}

	_, err = LoadTemplate("../templates/specimen")
	if !errors.Is(err, ErrInvalidAssetName) {
		t.Errorf("LoadTemplate(traversal) error = %v, want ErrInvalidAssetName", err)
	}
}

func TestEmbeddedStyles(t *testing.T) {
	t.Parallel()

	got := EmbeddedStyles()
	if len(got) == 0 || got[0] != DefaultSpecimenName {
		t.Errorf("EmbeddedStyles() = %v, want it to list %q", got, DefaultSpecimenName)
	}
	for _, name := range got {
		if _, err := LoadTemplate(name); err != nil {
			t.Errorf("style %q has no matching template: %v", name, err)
		}
	}
}

// ---------------------------------------------------------------------------
// TestFilesystemLoader - Custom asset directories
// ---------------------------------------------------------------------------

func TestNewFilesystemLoader(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "file.txt")
	if err := os.WriteFile(filePath, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"valid directory", tmpDir, nil},
		{"empty path", "", ErrInvalidBasePath},
		{"nonexistent", filepath.Join(tmpDir, "missing"), ErrInvalidBasePath},
		{"file instead of directory", filePath, ErrInvalidBasePath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewFilesystemLoader(tt.path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewFilesystemLoader(%q) error = %v, want %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestFilesystemLoader_Load(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	writeAsset(t, base, "styles", "dark.css", "body { background: #000; }")
	writeAsset(t, base, "templates", "plain.html", "<p>{{.Title}}</p>")

	loader, err := NewFilesystemLoader(base)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}

	t.Run("style", func(t *testing.T) {
		t.Parallel()

		got, err := loader.LoadStyle("dark")
		if err != nil {
			t.Fatalf("LoadStyle() error = %v", err)
		}
		if got != "body { background: #000; }" {
			t.Errorf("LoadStyle() = %q", got)
		}
	})

	t.Run("template", func(t *testing.T) {
		t.Parallel()

		got, err := loader.LoadTemplate("plain")
		if err != nil {
			t.Fatalf("LoadTemplate() error = %v", err)
		}
		if got != "<p>{{.Title}}</p>" {
			t.Errorf("LoadTemplate() = %q", got)
		}
	})

	t.Run("missing style", func(t *testing.T) {
		t.Parallel()

		_, err := loader.LoadStyle("light")
		if !errors.Is(err, ErrStyleNotFound) {
			t.Errorf("LoadStyle() error = %v, want ErrStyleNotFound", err)
		}
	})

	t.Run("missing template", func(t *testing.T) {
		t.Parallel()

		_, err := loader.LoadTemplate("fancy")
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("LoadTemplate() error = %v, want ErrTemplateNotFound", err)
		}
	})
}

func TestFilesystemLoader_SymlinkEscape(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("symlinks require privileges on Windows")
	}

	outside := t.TempDir()
	secret := filepath.Join(outside, "secret.css")
	if err := os.WriteFile(secret, []byte("secret"), 0o644); err != nil {
		t.Fatal(err)
	}

	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "styles"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(secret, filepath.Join(base, "styles", "leak.css")); err != nil {
		t.Fatal(err)
	}

	loader, err := NewFilesystemLoader(base)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}
	_, err = loader.LoadStyle("leak")
	if !errors.Is(err, ErrPathTraversal) {
		t.Errorf("LoadStyle(leak) error = %v, want ErrPathTraversal", err)
	}
}

// ---------------------------------------------------------------------------
// TestAssetResolver - Custom-first resolution with embedded fallback
// ---------------------------------------------------------------------------

func TestAssetResolver(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	writeAsset(t, base, "styles", DefaultSpecimenName+".css", "/* custom */")

	resolver, err := NewAssetResolver(base)
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}
	if !resolver.HasCustomLoader() {
		t.Fatal("expected a custom loader")
	}

	t.Run("custom style wins", func(t *testing.T) {
		t.Parallel()

		got, err := resolver.LoadStyle(DefaultSpecimenName)
		if err != nil {
			t.Fatalf("LoadStyle() error = %v", err)
		}
		if got != "/* custom */" {
			t.Errorf("LoadStyle() = %q, want custom content", got)
		}
	})

	t.Run("template falls back to embedded", func(t *testing.T) {
		t.Parallel()

		got, err := resolver.LoadTemplate(DefaultSpecimenName)
		if err != nil {
			t.Fatalf("LoadTemplate() error = %v", err)
		}
		if !strings.Contains(got, "<!DOCTYPE html>") {
			t.Error("expected embedded template content")
		}
	})

	t.Run("invalid name does not fall back", func(t *testing.T) {
		t.Parallel()

		_, err := resolver.LoadStyle("a/b")
		if !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("LoadStyle() error = %v, want ErrInvalidAssetName", err)
		}
	})

	t.Run("missing everywhere", func(t *testing.T) {
		t.Parallel()

		_, err := resolver.LoadStyle("nowhere")
		if !errors.Is(err, ErrStyleNotFound) {
			t.Errorf("LoadStyle() error = %v, want ErrStyleNotFound", err)
		}
	})
}

func TestNewAssetResolver(t *testing.T) {
	t.Parallel()

	r, err := NewAssetResolver("")
	if err != nil {
		t.Fatalf("NewAssetResolver(\"\") error = %v", err)
	}
	if r.HasCustomLoader() {
		t.Error("empty path should not configure a custom loader")
	}

	_, err = NewAssetResolver(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, ErrInvalidBasePath) {
		t.Errorf("NewAssetResolver(missing) error = %v, want ErrInvalidBasePath", err)
	}
}
