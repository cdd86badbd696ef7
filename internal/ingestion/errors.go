package ingestion

import "fmt"

// UnsupportedFileError indicates an upload with a file type the service
// does not ingest.
type UnsupportedFileError struct {
	Filename string
}

func (e *UnsupportedFileError) Error() string {
	return fmt.Sprintf("unsupported file type: %s (only PDF, DOCX and TXT are supported)", e.Filename)
}

// ExtractError wraps a failure while pulling text out of a document.
type ExtractError struct {
	Format string
	Cause  error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("failed to extract text from %s: %v", e.Format, e.Cause)
}

func (e *ExtractError) Unwrap() error {
	return e.Cause
}
