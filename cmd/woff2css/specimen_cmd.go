package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	woff2css "github.com/alnah/go-woff2css"
	"github.com/alnah/go-woff2css/internal/fileutil"
)

// defaultSpecimenFile is written in the output directory when -o is omitted.
const defaultSpecimenFile = "specimen.html"

// runSpecimen renders a preview page for the given fonts and directories.
func runSpecimen(ctx context.Context, args []string, env *Environment) error {
	flags, inputs, err := parseSpecimenFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return ErrNoInput
	}

	cfg, err := loadConfig(flags.common, env)
	if err != nil {
		return err
	}
	log := env.Logger(flags.common.quiet, flags.common.verbose)

	override := flags.face.face().Merge(configFace(cfg))
	if err := validateOverride(override); err != nil {
		return err
	}

	paths, err := collectFontPaths(inputs)
	if err != nil {
		return err
	}

	fonts := make([]*woff2css.FontAsset, 0, len(paths))
	for _, path := range paths {
		asset, err := woff2css.LoadFontAsset(path, woff2css.Face{})
		if err != nil {
			return err
		}
		face, _, err := woff2css.ResolveFace(path, asset.Data, override, woff2css.Face{})
		if err != nil {
			log.Debug("metadata unavailable, using defaults", "file", path, "error", err)
		}
		if err := face.Validate(); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		asset.Face = face
		fonts = append(fonts, asset)
	}

	opts := woff2css.SpecimenOptions{
		Title:      firstNonEmpty(flags.title, cfg.Specimen.Title),
		SampleText: firstNonEmpty(flags.text, cfg.Specimen.SampleText),
		AssetPath:  firstNonEmpty(flags.assetPath, cfg.Assets.BasePath),
		Style:      firstNonEmpty(flags.style, cfg.Specimen.Style),
	}
	if notesPath := firstNonEmpty(flags.notes, cfg.Specimen.Notes); notesPath != "" {
		notes, err := os.ReadFile(notesPath) // #nosec G304 -- user-provided notes path
		if err != nil {
			return fmt.Errorf("%w: %w", woff2css.ErrFileAccess, err)
		}
		opts.Notes = string(notes)
		opts.NotesDir = filepath.Dir(notesPath)
	}

	page, err := woff2css.BuildSpecimen(ctx, fonts, opts)
	if err != nil {
		return err
	}

	dest := filepath.Join(resolveOutputDir("", cfg), defaultSpecimenFile)
	if flags.output != "" {
		dest = resolveOutputPath(flags.output, cfg)
	}
	if err := fileutil.WriteFile(dest, page); err != nil {
		return fmt.Errorf("%w: %w", woff2css.ErrFileAccess, err)
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s (%d font(s))\n", dest, len(fonts))
	}
	return nil
}

// collectFontPaths expands directories into the fonts they contain.
// Explicit files are kept in argument order whatever their extension.
func collectFontPaths(inputs []string) ([]string, error) {
	var paths []string
	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", woff2css.ErrFileAccess, err)
		}
		if !info.IsDir() {
			paths = append(paths, input)
			continue
		}
		found, err := woff2css.DiscoverFonts(input)
		if err != nil {
			return nil, err
		}
		if len(found) == 0 {
			return nil, fmt.Errorf("%w in %s", woff2css.ErrNoFonts, input)
		}
		paths = append(paths, found...)
	}
	return paths, nil
}
