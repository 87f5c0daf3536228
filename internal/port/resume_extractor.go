package port

import (
	"context"

	"jobdesk/internal/domain"
)

// ArtifactKind distinguishes the two extraction call shapes.
type ArtifactKind string

const (
	// ArtifactFile submits the raw document as an uploaded file resource.
	ArtifactFile ArtifactKind = "file"
	// ArtifactImage embeds a raster image inline in a vision request.
	ArtifactImage ArtifactKind = "image"
)

// ExtractInput carries the artifact and optional job context for extraction.
type ExtractInput struct {
	Kind        ArtifactKind
	FileBytes   []byte
	ContentType string
	Job         *domain.JobContext
}

// ExtractOutput is the raw result of one extraction call.
type ExtractOutput struct {
	RawText    string
	TokensUsed int
	ModelUsed  string
	PromptUsed string
}

// ResumeExtractor abstracts LLM-based resume field extraction.
type ResumeExtractor interface {
	Supports(kind ArtifactKind) bool
	Extract(ctx context.Context, input ExtractInput) (*ExtractOutput, error)
}
