package domain

import "errors"

var (
	ErrNotMultipart      = errors.New("request must be multipart/form-data")
	ErrNoResume          = errors.New("no resume provided")
	ErrNoImage           = errors.New("no image provided")
	ErrNotPDF            = errors.New("file must be a PDF")
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrConversionFailed  = errors.New("document conversion failed")
	ErrMissingAPIKey     = errors.New("extraction provider API key is not configured")
	ErrExtractionFailed  = errors.New("resume extraction failed")
	ErrFileTooLarge      = errors.New("file exceeds maximum allowed size")
)
