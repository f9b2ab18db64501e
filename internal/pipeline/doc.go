// Package pipeline turns the Markdown parts of a font specimen into HTML
// fragments.
//
// Two stages are provided:
//   - GoldmarkConverter renders Markdown (notes, example rules) with GFM
//     extensions and inline-styled syntax highlighting
//   - InlineImages replaces relative <img> sources with data URIs so the
//     specimen stays a single self-contained file
//
// Page assembly (template, stylesheet, @font-face rules) happens in the root
// woff2css package.
package pipeline
