package woff2css

// Notes:
// - GenerateBatch: tests the output layout (single, combined, licenses),
//   family grouping in discovery order, name collisions, fallbacks for
//   unreadable metadata, and per-file failure reporting.
// - Fonts are synthesized with wofftest in t.TempDir().
// - The sequential processing order is observable only through output
//   order, which is what we assert.

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-woff2css/internal/woff/wofftest"
)

func robotoFont(full, subfamily string, weight uint16) wofftest.Font {
	return wofftest.Font{
		Family:      "Roboto",
		Subfamily:   subfamily,
		Full:        full,
		OS2Version:  4,
		WeightClass: weight,
		WidthClass:  5,
	}
}

func readString(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// ---------------------------------------------------------------------------
// TestGenerateBatch - Output layout
// ---------------------------------------------------------------------------

func TestGenerateBatch(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	out := t.TempDir()
	writeTestFile(t, filepath.Join(src, "roboto", "Roboto-Bold.woff"), robotoFont("Roboto Bold", "Bold", 700).Bytes())
	writeTestFile(t, filepath.Join(src, "roboto", "Roboto-Italic.woff"), robotoFont("Roboto Italic", "Italic", 400).Bytes())
	writeTestFile(t, filepath.Join(src, "roboto", "OFL.txt"), []byte("SIL Open Font License"))
	writeTestFile(t, filepath.Join(src, "mono", "Mono.woff"), wofftest.Font{
		Family:    "Mono",
		Full:      "Mono Regular",
		Copyright: "Copyright 2024 Mono Authors",
		License:   "MIT",
		NoOS2:     true,
	}.Bytes())

	result, err := GenerateBatch(context.Background(), src, BatchOptions{OutputDir: out})
	if err != nil {
		t.Fatalf("GenerateBatch() error = %v", err)
	}
	if result.Failed() != 0 || result.Err() != nil {
		t.Fatalf("unexpected failures: %v", result.Err())
	}

	gotInputs := make([]string, len(result.Files))
	for i, f := range result.Files {
		gotInputs[i] = filepath.Base(f.InputPath)
	}
	if diff := cmp.Diff([]string{"Mono.woff", "Roboto-Bold.woff", "Roboto-Italic.woff"}, gotInputs); diff != "" {
		t.Errorf("processing order mismatch (-want +got):\n%s", diff)
	}

	wantFamilies := []FamilyOutput{
		{Family: "Mono", Path: filepath.Join(out, "combined", "Mono.css"), Variants: 1},
		{Family: "Roboto", Path: filepath.Join(out, "combined", "Roboto.css"), Variants: 2},
	}
	if diff := cmp.Diff(wantFamilies, result.Families); diff != "" {
		t.Errorf("Families mismatch (-want +got):\n%s", diff)
	}

	bold := readString(t, filepath.Join(out, "single", "Roboto Bold.css"))
	italic := readString(t, filepath.Join(out, "single", "Roboto Italic.css"))
	combined := readString(t, filepath.Join(out, "combined", "Roboto.css"))
	if combined != bold+"\n"+italic {
		t.Errorf("combined CSS should join the single rules in discovery order, got:\n%s", combined)
	}
	if !strings.Contains(bold, "font-weight: 700;") || !strings.Contains(italic, "font-style: italic;") {
		t.Errorf("inferred descriptors missing:\n%s\n%s", bold, italic)
	}

	wantLicenses := []string{
		filepath.Join(out, "licenses", "OFL.txt"),
		filepath.Join(out, "licenses", "Mono.txt"),
	}
	if diff := cmp.Diff(wantLicenses, result.Licenses); diff != "" {
		t.Errorf("Licenses mismatch (-want +got):\n%s", diff)
	}
	notice := readString(t, filepath.Join(out, "licenses", "Mono.txt"))
	for _, want := range []string{"Mono", "Copyright: Copyright 2024 Mono Authors", "License: MIT"} {
		if !strings.Contains(notice, want) {
			t.Errorf("notice missing %q:\n%s", want, notice)
		}
	}
}

func TestGenerateBatch_CustomDirectories(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	out := t.TempDir()
	writeTestFile(t, filepath.Join(src, "a.woff"), robotoFont("Roboto Bold", "Bold", 700).Bytes())

	_, err := GenerateBatch(context.Background(), src, BatchOptions{
		OutputDir:   out,
		SingleDir:   "css/single",
		CombinedDir: "css/families",
		NoLicenses:  true,
	})
	if err != nil {
		t.Fatalf("GenerateBatch() error = %v", err)
	}
	for _, rel := range []string{"css/single/Roboto Bold.css", "css/families/Roboto.css"} {
		if _, err := os.Stat(filepath.Join(out, rel)); err != nil {
			t.Errorf("expected %s: %v", rel, err)
		}
	}
	if _, err := os.Stat(filepath.Join(out, "licenses")); !os.IsNotExist(err) {
		t.Errorf("licenses directory should not exist with NoLicenses, stat error = %v", err)
	}
}

// ---------------------------------------------------------------------------
// TestGenerateBatch_Fallbacks - Fonts without usable metadata
// ---------------------------------------------------------------------------

func TestGenerateBatch_UnreadableMetadata(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	out := t.TempDir()
	writeTestFile(t, filepath.Join(src, "my-font.woff"), []byte{0x00, 0x01, 0x02, 0x03})

	result, err := GenerateBatch(context.Background(), src, BatchOptions{OutputDir: out})
	if err != nil {
		t.Fatalf("GenerateBatch() error = %v", err)
	}

	f := result.Files[0]
	if f.Err != nil {
		t.Fatalf("file error = %v", f.Err)
	}
	if f.Inferred {
		t.Error("Inferred = true for a file without readable metadata")
	}
	want := Face{Family: "my font", Weight: "400", Style: "normal", Stretch: "normal"}
	if diff := cmp.Diff(want, f.Face); diff != "" {
		t.Errorf("Face mismatch (-want +got):\n%s", diff)
	}
	if f.OutputPath != filepath.Join(out, "single", "my-font.css") {
		t.Errorf("OutputPath = %q, want file stem name", f.OutputPath)
	}
}

func TestGenerateBatch_Override(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	out := t.TempDir()
	writeTestFile(t, filepath.Join(src, "a.woff"), robotoFont("Roboto Bold", "Bold", 700).Bytes())
	writeTestFile(t, filepath.Join(src, "b.woff"), robotoFont("Roboto Thin", "Thin", 100).Bytes())

	result, err := GenerateBatch(context.Background(), src, BatchOptions{
		OutputDir:  out,
		Override:   Face{Family: "Brand"},
		NoLicenses: true,
	})
	if err != nil {
		t.Fatalf("GenerateBatch() error = %v", err)
	}
	if len(result.Families) != 1 || result.Families[0].Family != "Brand" {
		t.Errorf("Families = %+v, want a single Brand family", result.Families)
	}
	if w := result.Files[1].Face.Weight; w != "100" {
		t.Errorf("Weight = %q, inferred weight should survive a family override", w)
	}
}

// ---------------------------------------------------------------------------
// TestGenerateBatch_NameCollisions - Unique output names
// ---------------------------------------------------------------------------

func TestGenerateBatch_NameCollisions(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	out := t.TempDir()
	same := robotoFont("Roboto Bold", "Bold", 700).Bytes()
	writeTestFile(t, filepath.Join(src, "a", "Roboto-Bold.woff"), same)
	writeTestFile(t, filepath.Join(src, "b", "Roboto-Bold.woff"), same)
	writeTestFile(t, filepath.Join(src, "c", "roboto-bold.woff"), robotoFont("ROBOTO BOLD", "Bold", 700).Bytes())
	writeTestFile(t, filepath.Join(src, "a", "OFL.txt"), []byte("first"))
	writeTestFile(t, filepath.Join(src, "b", "OFL.txt"), []byte("second"))

	result, err := GenerateBatch(context.Background(), src, BatchOptions{OutputDir: out})
	if err != nil {
		t.Fatalf("GenerateBatch() error = %v", err)
	}

	var got []string
	for _, f := range result.Files {
		got = append(got, filepath.Base(f.OutputPath))
	}
	want := []string{"Roboto Bold.css", "Roboto Bold-2.css", "ROBOTO BOLD-3.css"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output names mismatch (-want +got):\n%s", diff)
	}

	if readString(t, filepath.Join(out, "licenses", "OFL.txt")) != "first" {
		t.Error("first license should keep its name")
	}
	if readString(t, filepath.Join(out, "licenses", "b_OFL.txt")) != "second" {
		t.Error("colliding license should be prefixed with its directory")
	}
}

// ---------------------------------------------------------------------------
// TestGenerateBatch_Failures - Per-file and fatal errors
// ---------------------------------------------------------------------------

func TestGenerateBatch_PartialFailure(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	out := t.TempDir()
	writeTestFile(t, filepath.Join(src, "a.woff"), wofftest.Font{Family: "Dots", Full: "..."}.Bytes())
	writeTestFile(t, filepath.Join(src, "b.woff"), robotoFont("Roboto Bold", "Bold", 700).Bytes())

	result, err := GenerateBatch(context.Background(), src, BatchOptions{OutputDir: out, NoLicenses: true})
	if err != nil {
		t.Fatalf("GenerateBatch() error = %v", err)
	}
	if result.Files[0].Err == nil {
		t.Error("font with an unusable name should fail")
	}
	if result.Files[1].Err != nil {
		t.Errorf("later font should still convert, got %v", result.Files[1].Err)
	}

	batchErr := result.Err()
	if !IsBatchFailure(batchErr) {
		t.Fatalf("Err() = %v, want a batch failure", batchErr)
	}
	if batchErr.Error() != "1 of 2 font(s) failed" {
		t.Errorf("Err() = %q", batchErr.Error())
	}
	if len(result.Families) != 1 {
		t.Errorf("Families = %+v, failed fonts must not be grouped", result.Families)
	}
}

func TestGenerateBatch_InvalidFamily(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	out := t.TempDir()
	writeTestFile(t, filepath.Join(src, "a.woff"), wofftest.Font{Family: `Evil" ; } body { x`, Full: "Evil Regular"}.Bytes())
	writeTestFile(t, filepath.Join(src, "b.woff"), robotoFont("Roboto Bold", "Bold", 700).Bytes())

	result, err := GenerateBatch(context.Background(), src, BatchOptions{OutputDir: out, NoLicenses: true})
	if err != nil {
		t.Fatalf("GenerateBatch() error = %v", err)
	}
	if !errors.Is(result.Files[0].Err, ErrInvalidFamily) {
		t.Errorf("Files[0].Err = %v, want ErrInvalidFamily", result.Files[0].Err)
	}
	if result.Files[0].OutputPath != "" {
		t.Errorf("Files[0].OutputPath = %q, want empty", result.Files[0].OutputPath)
	}
	if _, err := os.Stat(filepath.Join(out, DefaultSingleDir, "Evil Regular.css")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("no CSS should be written for an invalid family, stat error = %v", err)
	}
	if result.Files[1].Err != nil {
		t.Errorf("later font should still convert, got %v", result.Files[1].Err)
	}
	if len(result.Families) != 1 || result.Families[0].Family != "Roboto" {
		t.Errorf("Families = %+v, want only Roboto", result.Families)
	}
}

func TestGenerateBatch_FamilyNameCollisions(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	out := t.TempDir()
	writeTestFile(t, filepath.Join(src, "a", "a.woff"), wofftest.Font{
		Family: "Foo:Bar", Full: "Foo Colon", License: "MIT",
	}.Bytes())
	writeTestFile(t, filepath.Join(src, "b", "b.woff"), wofftest.Font{
		Family: "Foo_Bar", Full: "Foo Underscore", License: "OFL",
	}.Bytes())

	result, err := GenerateBatch(context.Background(), src, BatchOptions{OutputDir: out})
	if err != nil {
		t.Fatalf("GenerateBatch() error = %v", err)
	}

	combined := filepath.Join(out, DefaultCombinedDir)
	want := []FamilyOutput{
		{Family: "Foo:Bar", Path: filepath.Join(combined, "Foo_Bar.css"), Variants: 1},
		{Family: "Foo_Bar", Path: filepath.Join(combined, "Foo_Bar-2.css"), Variants: 1},
	}
	if diff := cmp.Diff(want, result.Families); diff != "" {
		t.Fatalf("Families mismatch (-want +got):\n%s", diff)
	}
	if got := readString(t, want[0].Path); !strings.Contains(got, `font-family: "Foo:Bar";`) {
		t.Errorf("%s lost its family:\n%s", want[0].Path, got)
	}
	if got := readString(t, want[1].Path); !strings.Contains(got, `font-family: "Foo_Bar";`) {
		t.Errorf("%s lost its family:\n%s", want[1].Path, got)
	}

	licenses := filepath.Join(out, DefaultLicenseDir)
	if got := readString(t, filepath.Join(licenses, "Foo_Bar.txt")); !strings.Contains(got, "License: MIT") {
		t.Errorf("Foo_Bar.txt = %q, want the Foo:Bar notice", got)
	}
	if got := readString(t, filepath.Join(licenses, "Foo_Bar-2.txt")); !strings.Contains(got, "License: OFL") {
		t.Errorf("Foo_Bar-2.txt = %q, want the Foo_Bar notice", got)
	}
}

func TestGenerateBatch_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := writeTestFile(t, filepath.Join(dir, "font.woff"), []byte{1})
	empty := t.TempDir()
	writeTestFile(t, filepath.Join(empty, "font.woff2"), []byte{1})

	tests := []struct {
		name    string
		dir     string
		wantErr error
	}{
		{"missing directory", filepath.Join(dir, "missing"), ErrFileAccess},
		{"regular file", file, ErrNotDirectory},
		{"no woff files", empty, ErrNoFonts},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := GenerateBatch(context.Background(), tt.dir, BatchOptions{OutputDir: t.TempDir()})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("GenerateBatch() error = %v, want %v", err, tt.wantErr)
			}
			if result != nil {
				t.Errorf("GenerateBatch() result = %+v, want nil", result)
			}
		})
	}
}

func TestGenerateBatch_Canceled(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	writeTestFile(t, filepath.Join(src, "a.woff"), []byte{1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := GenerateBatch(ctx, src, BatchOptions{OutputDir: t.TempDir()})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("GenerateBatch() error = %v, want context.Canceled", err)
	}
	if result == nil || len(result.Files) != 0 {
		t.Errorf("result = %+v, want an empty partial result", result)
	}
}

// ---------------------------------------------------------------------------
// TestGenerateBatch_Logging - Structured events
// ---------------------------------------------------------------------------

func TestGenerateBatch_Logging(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	locked := robotoFont("Roboto Bold", "Bold", 700)
	locked.FSType = 0x0004
	writeTestFile(t, filepath.Join(src, "locked.woff"), locked.Bytes())

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelInfo}))

	result, err := GenerateBatch(context.Background(), src, BatchOptions{OutputDir: t.TempDir(), Logger: logger})
	if err != nil {
		t.Fatalf("GenerateBatch() error = %v", err)
	}
	if result.Files[0].Embeddable {
		t.Error("Embeddable = true for a font with fsType restrictions")
	}
	for _, want := range []string{"level=WARN", "restricts embedding", "msg=done", `msg="wrote family"`} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("logs missing %q:\n%s", want, logs.String())
		}
	}
}

// ---------------------------------------------------------------------------
// TestDiscoverFonts - Recursive lexical walk
// ---------------------------------------------------------------------------

func TestDiscoverFonts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, rel := range []string{"b.woff", "a/z.WOFF", "a/y.woff2", "c.ttf", "a/b/x.woff"} {
		writeTestFile(t, filepath.Join(dir, rel), []byte{1})
	}

	got, err := DiscoverFonts(dir)
	if err != nil {
		t.Fatalf("DiscoverFonts() error = %v", err)
	}
	want := []string{
		filepath.Join(dir, "a", "b", "x.woff"),
		filepath.Join(dir, "a", "z.WOFF"),
		filepath.Join(dir, "b.woff"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DiscoverFonts() mismatch (-want +got):\n%s", diff)
	}
}
