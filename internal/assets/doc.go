// Package assets provides the stylesheet and HTML template used to render
// font specimen pages.
//
// # Loaders
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in assets compiled in with go:embed
//	    ├── FilesystemLoader  - user assets from a directory on disk
//	    └── AssetResolver     - custom first, embedded as fallback
//
// A custom directory may override only some assets: anything it does not
// provide is served from the embedded copy.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css
//	└── templates/
//	    └── {name}.html
//
// Asset names are plain identifiers. FilesystemLoader resolves symlinks and
// refuses paths that leave basePath.
package assets
