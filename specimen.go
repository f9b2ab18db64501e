package woff2css

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"

	"github.com/alnah/go-woff2css/internal/assets"
	"github.com/alnah/go-woff2css/internal/pipeline"
)

// Defaults for specimen pages.
const (
	DefaultSampleText = "The quick brown fox jumps over the lazy dog"
	specimenAlphabet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ abcdefghijklmnopqrstuvwxyz 0123456789 &!?"
)

// SpecimenOptions configures BuildSpecimen.
type SpecimenOptions struct {
	Title      string // page title (default: the families shown)
	SampleText string // text set in each variant (default: DefaultSampleText)
	Notes      string // Markdown appended after the variants
	NotesDir   string // base directory for relative images in Notes
	AssetPath  string // directory overriding styles/ and templates/
	Style      string // stylesheet and template name (default: "specimen")
}

func (o SpecimenOptions) withDefaults(fonts []*FontAsset) SpecimenOptions {
	if o.SampleText == "" {
		o.SampleText = DefaultSampleText
	}
	if o.Style == "" {
		o.Style = assets.DefaultSpecimenName
	}
	if o.Title == "" {
		o.Title = specimenTitle(fonts)
	}
	return o
}

// specimenPage is the data passed to the specimen template.
type specimenPage struct {
	Title     string
	Style     template.CSS
	FontFaces template.CSS
	Variants  []specimenVariant
	Notes     template.HTML
}

type specimenVariant struct {
	Class    string
	Label    string
	Source   string
	Size     string
	Sample   string
	Alphabet string
	Rule     template.HTML
}

// BuildSpecimen renders a self-contained HTML page showing every font with
// sample text. The page embeds the fonts through the same @font-face rules
// Embed produces, so it doubles as a visual check of the generated CSS.
func BuildSpecimen(ctx context.Context, fonts []*FontAsset, opts SpecimenOptions) ([]byte, error) {
	if len(fonts) == 0 {
		return nil, ErrNoVariants
	}
	opts = opts.withDefaults(fonts)

	resolver, err := assets.NewAssetResolver(opts.AssetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSpecimenRender, err)
	}
	style, err := resolver.LoadStyle(opts.Style)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSpecimenRender, err)
	}
	tmplText, err := resolver.LoadTemplate(opts.Style)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSpecimenRender, err)
	}
	tmpl, err := template.New(opts.Style).Parse(tmplText)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSpecimenRender, err)
	}

	conv := pipeline.NewGoldmarkConverter()
	page := specimenPage{
		Title:    opts.Title,
		Style:    template.CSS(style), // #nosec G203 -- stylesheet from trusted assets
		Variants: make([]specimenVariant, 0, len(fonts)),
	}

	var faces strings.Builder
	for i, font := range fonts {
		face := font.Face.WithDefaults()
		class := fmt.Sprintf("variant-%d", i+1)

		faces.WriteString(EmbedBytes(font.Data, face))
		faces.WriteString(buildVariantClassCSS(class, face))

		excerpt := pipeline.CodeBlock("css", buildFontFaceCSS(face, elidePayload(font.Data)))
		rule, err := conv.ToHTML(ctx, excerpt)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSpecimenRender, err)
		}

		page.Variants = append(page.Variants, specimenVariant{
			Class:    class,
			Label:    face.String(),
			Source:   filepath.Base(font.Path),
			Size:     formatSize(len(font.Data)),
			Sample:   opts.SampleText,
			Alphabet: specimenAlphabet,
			Rule:     template.HTML(rule), // #nosec G203 -- goldmark output, raw HTML disabled
		})
	}
	page.FontFaces = template.CSS(faces.String()) // #nosec G203 -- generated rules

	if strings.TrimSpace(opts.Notes) != "" {
		notes, err := conv.ToHTML(ctx, opts.Notes)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSpecimenRender, err)
		}
		notes, err = pipeline.InlineImages(notes, opts.NotesDir)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSpecimenRender, err)
		}
		page.Notes = template.HTML(notes) // #nosec G203 -- goldmark output, raw HTML disabled
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, page); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSpecimenRender, err)
	}
	return buf.Bytes(), nil
}

// specimenTitle lists the distinct families in order of appearance.
func specimenTitle(fonts []*FontAsset) string {
	var families []string
	for _, f := range fonts {
		if f.Face.Family != "" && !containsString(families, f.Face.Family) {
			families = append(families, f.Face.Family)
		}
	}
	if len(families) == 0 {
		return "Font specimen"
	}
	return strings.Join(families, ", ")
}

// formatSize renders a byte count for display ("18.4 KB").
func formatSize(n int) string {
	const unit = 1024
	switch {
	case n < unit:
		return fmt.Sprintf("%d B", n)
	case n < unit*unit:
		return fmt.Sprintf("%.1f KB", float64(n)/unit)
	default:
		return fmt.Sprintf("%.1f MB", float64(n)/(unit*unit))
	}
}
