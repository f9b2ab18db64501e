package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	woff2css "github.com/alnah/go-woff2css"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// faceFlags holds @font-face descriptor flags.
type faceFlags struct {
	family  string
	weight  string
	style   string
	stretch string
	auto    bool
}

func (f faceFlags) face() woff2css.Face {
	return woff2css.Face{Family: f.family, Weight: f.weight, Style: f.style, Stretch: f.stretch}
}

type embedFlags struct {
	common commonFlags
	face   faceFlags
	output string
}

type batchFlags struct {
	common      commonFlags
	face        faceFlags
	output      string
	singleDir   string
	combinedDir string
	licenseDir  string
	noLicenses  bool
}

type specimenFlags struct {
	common    commonFlags
	face      faceFlags
	output    string
	title     string
	text      string
	notes     string
	assetPath string
	style     string
}

func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-file details")
}

// addFaceFlags registers descriptor flags. withAuto is false for commands
// that always read font metadata.
func addFaceFlags(fs *flag.FlagSet, f *faceFlags, withAuto bool) {
	fs.StringVarP(&f.family, "family", "f", "", "font-family name")
	fs.StringVarP(&f.weight, "weight", "w", "", "font-weight (default 400)")
	fs.StringVarP(&f.style, "style", "s", "", "font-style: normal, italic, oblique")
	fs.StringVar(&f.stretch, "stretch", "", "font-stretch keyword or percentage")
	if withAuto {
		fs.BoolVarP(&f.auto, "auto", "a", false, "read descriptors from the font's metadata")
	}
}

func newFlagSet(name string, usage func(io.Writer), stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(stderr) }
	return fs
}

// parseFlagSet wraps parse failures so they map to ExitUsage.
func parseFlagSet(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return nil
}

func embedFlagSet(f *embedFlags, stderr io.Writer) *flag.FlagSet {
	fs := newFlagSet("embed", printEmbedUsage, stderr)
	fs.StringVarP(&f.output, "output", "o", "", "output CSS file (default: stdout)")
	addFaceFlags(fs, &f.face, true)
	addCommonFlags(fs, &f.common)
	return fs
}

func batchFlagSet(f *batchFlags, stderr io.Writer) *flag.FlagSet {
	fs := newFlagSet("batch", printBatchUsage, stderr)
	fs.StringVarP(&f.output, "output", "o", "", "output directory (default: current directory)")
	fs.StringVar(&f.singleDir, "single-dir", "", "per-font CSS directory (default: single)")
	fs.StringVar(&f.combinedDir, "combined-dir", "", "per-family CSS directory (default: combined)")
	fs.StringVar(&f.licenseDir, "license-dir", "", "license directory (default: licenses)")
	fs.BoolVar(&f.noLicenses, "no-licenses", false, "do not collect license files")
	addFaceFlags(fs, &f.face, false)
	addCommonFlags(fs, &f.common)
	return fs
}

func specimenFlagSet(f *specimenFlags, stderr io.Writer) *flag.FlagSet {
	fs := newFlagSet("specimen", printSpecimenUsage, stderr)
	fs.StringVarP(&f.output, "output", "o", "", "output HTML file (default: specimen.html)")
	fs.StringVar(&f.title, "title", "", "page title")
	fs.StringVarP(&f.text, "text", "t", "", "sample text")
	fs.StringVar(&f.notes, "notes", "", "Markdown file appended to the page")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory overriding styles/ and templates/")
	fs.StringVar(&f.style, "page-style", "", "stylesheet and template name")
	addFaceFlags(fs, &f.face, false)
	addCommonFlags(fs, &f.common)
	return fs
}

func parseEmbedFlags(args []string, stderr io.Writer) (*embedFlags, []string, error) {
	f := &embedFlags{}
	fs := embedFlagSet(f, stderr)
	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

func parseBatchFlags(args []string, stderr io.Writer) (*batchFlags, []string, error) {
	f := &batchFlags{}
	fs := batchFlagSet(f, stderr)
	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

func parseSpecimenFlags(args []string, stderr io.Writer) (*specimenFlags, []string, error) {
	f := &specimenFlags{}
	fs := specimenFlagSet(f, stderr)
	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
