// Package woff2css embeds WOFF fonts in CSS as base64 data URIs.
//
// # Quick Start
//
// Embed a single font file:
//
//	css, err := woff2css.Embed("fonts/Roboto-Bold.woff", woff2css.Face{
//	    Family: "Roboto",
//	    Weight: "700",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(css)
//
// The result is one @font-face rule whose src is
// data:font/woff;charset=utf-8;base64,<payload>. The font bytes are
// encoded verbatim; they are not validated as WOFF.
//
// # Descriptors
//
// Face holds font-family, font-weight, font-style and font-stretch.
// Empty weight, style and stretch default to "400", "normal" and "normal".
// Values are written as given; Face.Validate rejects values that would
// produce malformed CSS.
//
// Descriptors can also be read from the font's own name and OS/2 tables:
//
//	info, err := woff2css.InspectFile("fonts/Roboto-Bold.woff")
//	// info.Face is {Roboto 700 normal normal}
//
// ResolveFace combines explicit values, inferred metadata and defaults.
//
// # Families and batches
//
// EmbedFamily concatenates the rules of several variants in the order
// given. GenerateBatch converts a whole directory tree, writing one CSS
// file per font, one per family, and copying license files found next to
// the fonts.
//
// # Specimens
//
// BuildSpecimen renders an HTML page that loads the generated rules and
// shows each variant with sample text:
//
//	page, err := woff2css.BuildSpecimen(ctx, assets, woff2css.SpecimenOptions{})
//
// # Errors
//
// Errors wrap package sentinels and can be checked with errors.Is:
//
//	if errors.Is(err, woff2css.ErrFileAccess) {
//	    // font missing or unreadable
//	}
package woff2css
