package service

import (
	"context"
	"fmt"
	"log"

	"jobdesk/internal/domain"
	"jobdesk/internal/extractor"
	"jobdesk/internal/port"
)

// ParseResumeInput is the DTO for PDF resume parsing requests.
type ParseResumeInput struct {
	FileBytes     []byte
	ApplicationID string
}

// ProcessImageInput is the DTO for image/document processing requests.
type ProcessImageInput struct {
	FileBytes   []byte
	ContentType string
}

// ImageExtractResult pairs the extracted profile with the token count the
// provider reported for the call.
type ImageExtractResult struct {
	Profile    *domain.CandidateProfile
	TokensUsed int
}

// ResumeService defines the resume extraction contract.
type ResumeService interface {
	ParseResume(ctx context.Context, input ParseResumeInput) (*domain.CandidateProfile, error)
	ProcessImage(ctx context.Context, input ProcessImageInput) (*ImageExtractResult, error)
}

type resumeService struct {
	converter port.DocumentConverter
	extractor port.ResumeExtractor
	store     port.ApplicationStore
}

// NewResumeService creates a ResumeService. The store may be nil when no
// data store is configured; persistence is then skipped entirely.
func NewResumeService(
	converter port.DocumentConverter,
	ext port.ResumeExtractor,
	store port.ApplicationStore,
) ResumeService {
	return &resumeService{
		converter: converter,
		extractor: ext,
		store:     store,
	}
}

// ParseResume submits a PDF resume through the file-based extraction path.
// When an application id is supplied, the job context is fetched for
// relevance scoring and the extracted fields are merged back into the
// stored application. Both of those calls are best-effort: their failures
// are logged and the extraction result is returned regardless.
func (s *resumeService) ParseResume(ctx context.Context, input ParseResumeInput) (*domain.CandidateProfile, error) {
	var job *domain.JobContext
	if input.ApplicationID != "" && s.store != nil {
		var err error
		job, err = s.store.GetApplicationJob(ctx, input.ApplicationID)
		if err != nil {
			log.Printf("resumeService.ParseResume: fetching job context for application %s: %v",
				input.ApplicationID, err)
			job = nil
		}
	}

	out, err := s.extractor.Extract(ctx, port.ExtractInput{
		Kind:        port.ArtifactFile,
		FileBytes:   input.FileBytes,
		ContentType: domain.ContentTypePDF,
		Job:         job,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
	}

	profile := extractor.DecodeCandidateProfile(out.RawText)

	if input.ApplicationID != "" && s.store != nil {
		if err := s.store.UpdateApplication(ctx, input.ApplicationID, profile); err != nil {
			// The extraction result is still valuable to the caller;
			// persistence failures never block the response.
			log.Printf("resumeService.ParseResume: updating application %s: %v",
				input.ApplicationID, err)
		}
	}

	return profile, nil
}

// ProcessImage normalizes an uploaded document to a raster image and runs
// it through the vision-based extraction path.
func (s *resumeService) ProcessImage(ctx context.Context, input ProcessImageInput) (*ImageExtractResult, error) {
	artifact, err := s.converter.Convert(ctx, input.FileBytes, input.ContentType)
	if err != nil {
		return nil, err
	}

	out, err := s.extractor.Extract(ctx, port.ExtractInput{
		Kind:        port.ArtifactImage,
		FileBytes:   artifact.Bytes,
		ContentType: artifact.ContentType,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
	}

	return &ImageExtractResult{
		Profile:    extractor.DecodeCandidateProfile(out.RawText),
		TokensUsed: out.TokensUsed,
	}, nil
}
