// Package woff reads font metadata from WOFF 1.0 containers.
//
// Only the header, the table directory and the "name" and "OS/2" tables are
// decoded. The package does not validate the font as a whole: checksums,
// padding and the remaining tables are ignored. Its results feed descriptor
// inference and never gate embedding, which treats font files as opaque bytes.
//
// Format reference: https://www.w3.org/TR/WOFF/
package woff
