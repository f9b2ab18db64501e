package main

import (
	"fmt"

	"github.com/alnah/go-woff2css/internal/yamlutil"
)

// runConfig prints the effective configuration as YAML.
func runConfig(args []string, env *Environment) error {
	var common commonFlags
	fs := newFlagSet("config", printConfigUsage, env.Stderr)
	addCommonFlags(fs, &common)
	if err := parseFlagSet(fs, args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: config takes no arguments", ErrUsage)
	}

	cfg, err := loadConfig(common, env)
	if err != nil {
		return err
	}
	out, err := yamlutil.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = env.Stdout.Write(out)
	return err
}
