package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	woff2css "github.com/alnah/go-woff2css"
	"github.com/alnah/go-woff2css/internal/config"
	"github.com/alnah/go-woff2css/internal/fileutil"
)

// runEmbed converts a single font and prints or writes its rule.
func runEmbed(ctx context.Context, args []string, env *Environment) error {
	flags, inputs, err := parseEmbedFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	switch {
	case len(inputs) == 0:
		return ErrNoInput
	case len(inputs) > 1:
		return fmt.Errorf("%w: embed takes one font, got %d (use batch for directories)", ErrUsage, len(inputs))
	}
	path := inputs[0]

	cfg, err := loadConfig(flags.common, env)
	if err != nil {
		return err
	}
	log := env.Logger(flags.common.quiet, flags.common.verbose)

	override := flags.face.face().Merge(configFace(cfg))
	var css string
	if flags.face.auto || cfg.Font.Auto {
		data, err := os.ReadFile(path) // #nosec G304 -- user-provided font path
		if err != nil {
			return fmt.Errorf("%w: %w", woff2css.ErrFileAccess, err)
		}
		face, info, err := woff2css.ResolveFace(path, data, override, woff2css.Face{})
		if err != nil {
			return fmt.Errorf("reading metadata of %s: %w", path, err)
		}
		if !info.Embeddable {
			log.Warn("font restricts embedding (OS/2 fsType), check its license", "file", path)
		}
		if err := face.Validate(); err != nil {
			return err
		}
		log.Debug("inferred descriptors", "file", path, "face", face.String())
		css = woff2css.EmbedBytes(data, face)
	} else {
		face := override.Merge(woff2css.Face{Family: woff2css.FamilyFromPath(path)})
		if err := face.Validate(); err != nil {
			return err
		}
		if css, err = woff2css.Embed(path, face); err != nil {
			return err
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if flags.output == "" {
		_, err := fmt.Fprint(env.Stdout, css)
		return err
	}

	dest := resolveOutputPath(flags.output, cfg)
	if err := fileutil.WriteFile(dest, []byte(css)); err != nil {
		return fmt.Errorf("%w: %w", woff2css.ErrFileAccess, err)
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", dest)
	}
	return nil
}

// configFace returns the descriptors set in the config file or environment.
func configFace(cfg *config.Config) woff2css.Face {
	return woff2css.Face{
		Family:  cfg.Font.Family,
		Weight:  cfg.Font.Weight,
		Style:   cfg.Font.Style,
		Stretch: cfg.Font.Stretch,
	}
}

// resolveOutputPath places a relative output file under the configured
// default directory.
func resolveOutputPath(output string, cfg *config.Config) string {
	if filepath.IsAbs(output) || cfg.Output.DefaultDir == "" {
		return output
	}
	return filepath.Join(cfg.Output.DefaultDir, output)
}

// resolveOutputDir picks --output, then the configured default, then ".".
func resolveOutputDir(output string, cfg *config.Config) string {
	switch {
	case output != "":
		return output
	case cfg.Output.DefaultDir != "":
		return cfg.Output.DefaultDir
	}
	return "."
}
