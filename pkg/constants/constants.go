// Package constants provides shared constants used throughout the toolshelf codebase.
// This includes file permissions, catalog defaults and the document markers that
// bound the generated section.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Catalog defaults
const (
	// DefaultCategory is assigned to records whose category is blank or absent.
	DefaultCategory = "uncategorized"

	// HomeLinkLabel is the reserved link label used as a record's primary URL.
	HomeLinkLabel = "home"

	// DefaultCatalogPath is the catalog file used when none is configured.
	DefaultCatalogPath = "tools.json"

	// DefaultDocumentPath is the target document used when none is configured.
	DefaultDocumentPath = "README.md"

	// JSONIndent is the indentation used when persisting the catalog.
	JSONIndent = "    "
)

// Document markers
const (
	// StartMarker opens the generated section of the target document.
	StartMarker = "<!-- toolshelf:start -->"

	// EndMarker closes the generated section of the target document.
	EndMarker = "<!-- toolshelf:end -->"
)

// Render modes
const (
	// RenderModeTable renders the catalog as a single markdown table.
	RenderModeTable = "table"

	// RenderModeList renders one subsection per record.
	RenderModeList = "list"
)
