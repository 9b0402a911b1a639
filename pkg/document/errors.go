package document

import "errors"

// ErrImportParse is returned when a document file cannot be read or parsed.
var ErrImportParse = errors.New("document import failed")

// ErrExportWrite is returned when a document cannot be encoded or written.
var ErrExportWrite = errors.New("document export failed")

// ErrIncludeCycle is returned when a document includes itself, directly or
// through other documents.
var ErrIncludeCycle = errors.New("include cycle")
