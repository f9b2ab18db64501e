package main

import (
	"context"
	"fmt"
	"time"

	woff2css "github.com/alnah/go-woff2css"
)

// runBatch converts every font under a directory and reports per-file results.
func runBatch(ctx context.Context, args []string, env *Environment) error {
	flags, inputs, err := parseBatchFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	switch {
	case len(inputs) == 0:
		return ErrNoInput
	case len(inputs) > 1:
		return fmt.Errorf("%w: batch takes one directory, got %d", ErrUsage, len(inputs))
	}

	cfg, err := loadConfig(flags.common, env)
	if err != nil {
		return err
	}

	override := flags.face.face().Merge(configFace(cfg))
	if err := validateOverride(override); err != nil {
		return err
	}

	opts := woff2css.BatchOptions{
		OutputDir:   resolveOutputDir(flags.output, cfg),
		SingleDir:   firstNonEmpty(flags.singleDir, cfg.Batch.SingleDir),
		CombinedDir: firstNonEmpty(flags.combinedDir, cfg.Batch.CombinedDir),
		LicenseDir:  firstNonEmpty(flags.licenseDir, cfg.Batch.LicenseDir),
		NoLicenses:  flags.noLicenses || cfg.Batch.SkipLicenses,
		Override:    override,
		Logger:      env.Logger(flags.common.quiet, flags.common.verbose),
	}

	result, err := woff2css.GenerateBatch(ctx, inputs[0], opts)
	if result != nil {
		printBatchResult(result, flags.common.quiet, flags.common.verbose, env)
	}
	if err != nil {
		return err
	}
	return result.Err()
}

// validateOverride checks the descriptors that are set. Family may be
// empty since each font supplies its own; a placeholder stands in for it.
func validateOverride(face woff2css.Face) error {
	if face.Family == "" {
		face.Family = "placeholder"
	}
	return face.Validate()
}

// printBatchResult outputs per-font and per-family results.
func printBatchResult(result *woff2css.BatchResult, quiet, verbose bool, env *Environment) {
	for _, f := range result.Files {
		if f.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", f.InputPath, f.Err)
			continue
		}
		if quiet {
			continue
		}
		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%s, %v)\n", f.InputPath, f.OutputPath, f.Face, f.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", f.OutputPath)
		}
	}

	if quiet {
		return
	}
	for _, fam := range result.Families {
		fmt.Fprintf(env.Stdout, "Created %s (%d variant(s))\n", fam.Path, fam.Variants)
	}
	for _, l := range result.Licenses {
		fmt.Fprintf(env.Stdout, "Created %s\n", l)
	}
	if len(result.Files) > 1 {
		failed := result.Failed()
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", len(result.Files)-failed, failed)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
