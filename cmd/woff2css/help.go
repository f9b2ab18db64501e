package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: woff2css <command> [flags] [args]")
	fmt.Fprintln(w, "       woff2css <font.woff> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  embed      Embed one WOFF font as an @font-face rule")
	fmt.Fprintln(w, "  batch      Embed every WOFF font in a directory")
	fmt.Fprintln(w, "  specimen   Build an HTML page previewing embedded fonts")
	fmt.Fprintln(w, "  config     Print the effective configuration")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'woff2css help <command>' for details on a specific command.")
}

func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w, "Common:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show per-file details")
}

func printDescriptorUsage(w io.Writer) {
	fmt.Fprintln(w, "Descriptors:")
	fmt.Fprintln(w, "  -f, --family <s>          font-family name")
	fmt.Fprintln(w, "  -w, --weight <s>          font-weight: 1-1000 or keyword (default 400)")
	fmt.Fprintln(w, "  -s, --style <s>           font-style: normal, italic, oblique [<angle>deg]")
	fmt.Fprintln(w, "      --stretch <s>         font-stretch: keyword or percentage")
}

// printEmbedUsage prints usage for the embed command.
func printEmbedUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: woff2css embed <font.woff> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print an @font-face rule whose src is a base64 data URI of the font.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output CSS file (default: stdout)")
	fmt.Fprintln(w)
	printDescriptorUsage(w)
	fmt.Fprintln(w, "  -a, --auto                Read descriptors from the font's name and OS/2 tables")
	fmt.Fprintln(w)
	printCommonUsage(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Without --family, the family comes from the config, or else the file name.")
}

// printBatchUsage prints usage for the batch command.
func printBatchUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: woff2css batch <dir> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Embed every .woff file under dir. Descriptors are read from each font;")
	fmt.Fprintln(w, "flags replace them for every font.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: current directory)")
	fmt.Fprintln(w, "      --single-dir <name>   One CSS file per font (default: single)")
	fmt.Fprintln(w, "      --combined-dir <name> One CSS file per family (default: combined)")
	fmt.Fprintln(w, "      --license-dir <name>  Collected license texts (default: licenses)")
	fmt.Fprintln(w, "      --no-licenses         Do not collect license files")
	fmt.Fprintln(w)
	printDescriptorUsage(w)
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printSpecimenUsage prints usage for the specimen command.
func printSpecimenUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: woff2css specimen <font.woff|dir>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build a self-contained HTML page showing each font with sample text")
	fmt.Fprintln(w, "and the @font-face rule it was embedded with.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output HTML file (default: specimen.html)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "      --title <s>           Page title (default: the families shown)")
	fmt.Fprintln(w, "  -t, --text <s>            Sample text")
	fmt.Fprintln(w, "      --notes <path>        Markdown file appended to the page")
	fmt.Fprintln(w, "      --page-style <name>   Stylesheet and template name (default: specimen)")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with styles/ and templates/ overrides")
	fmt.Fprintln(w)
	printDescriptorUsage(w)
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: woff2css config [-c <name>]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the configuration after WOFF2CSS_* variables are applied, as YAML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  WOFF2CSS_CONFIG           Config file name or path")
	fmt.Fprintln(w, "  WOFF2CSS_OUTPUT_DIR       Default output directory")
	fmt.Fprintln(w, "  WOFF2CSS_FAMILY           font-family for every font")
	fmt.Fprintln(w, "  WOFF2CSS_ASSET_PATH       Specimen asset directory")
}

// runHelp prints help for the named command, or the main usage.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "embed":
		printEmbedUsage(env.Stdout)
	case "batch":
		printBatchUsage(env.Stdout)
	case "specimen":
		printSpecimenUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	default:
		if isCommand(args[0]) {
			printUsage(env.Stdout)
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
