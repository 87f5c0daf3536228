package port

import (
	"context"

	"jobdesk/internal/domain"
)

// DocumentConverter normalizes an uploaded document into a raster image.
// Image inputs pass through unchanged; PDF and DOCX inputs are rendered
// (or replaced with a placeholder when rendering is not possible).
type DocumentConverter interface {
	Convert(ctx context.Context, data []byte, contentType string) (*domain.Artifact, error)
}
