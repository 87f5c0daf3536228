package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"jobdesk/internal/domain"
	"jobdesk/internal/port"
	"jobdesk/internal/service"
	"jobdesk/mocks"
)

func TestParseResume_NoApplicationID(t *testing.T) {
	ext := new(mocks.MockResumeExtractor)
	store := new(mocks.MockApplicationStore)

	ext.On("Extract", mock.Anything, mock.MatchedBy(func(in port.ExtractInput) bool {
		return in.Kind == port.ArtifactFile && in.ContentType == domain.ContentTypePDF && in.Job == nil
	})).Return(&port.ExtractOutput{RawText: `{"name":"Jane Doe"}`, TokensUsed: 10}, nil)

	svc := service.NewResumeService(nil, ext, store)

	profile, err := svc.ParseResume(context.Background(), service.ParseResumeInput{
		FileBytes: []byte("%PDF-1.4"),
	})

	require.NoError(t, err)
	require.NotNil(t, profile.Name)
	assert.Equal(t, "Jane Doe", *profile.Name)

	// Without an application id the store is never touched.
	store.AssertNotCalled(t, "GetApplicationJob", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "UpdateApplication", mock.Anything, mock.Anything, mock.Anything)
}

func TestParseResume_WithApplicationID(t *testing.T) {
	ext := new(mocks.MockResumeExtractor)
	store := new(mocks.MockApplicationStore)

	job := &domain.JobContext{Title: "Backend Engineer", Location: "Remote", Description: "Go"}
	store.On("GetApplicationJob", mock.Anything, "app-1").Return(job, nil)

	ext.On("Extract", mock.Anything, mock.MatchedBy(func(in port.ExtractInput) bool {
		return in.Job == job
	})).Return(&port.ExtractOutput{RawText: `{"name":"Jane Doe","match_score":90}`}, nil)

	store.On("UpdateApplication", mock.Anything, "app-1", mock.MatchedBy(func(p *domain.CandidateProfile) bool {
		return p.Name != nil && *p.Name == "Jane Doe" && p.MatchScore != nil && *p.MatchScore == 90
	})).Return(nil)

	svc := service.NewResumeService(nil, ext, store)

	profile, err := svc.ParseResume(context.Background(), service.ParseResumeInput{
		FileBytes:     []byte("%PDF-1.4"),
		ApplicationID: "app-1",
	})

	require.NoError(t, err)
	require.NotNil(t, profile.MatchScore)
	assert.Equal(t, 90, *profile.MatchScore)
	store.AssertExpectations(t)
}

func TestParseResume_JobFetchFailureContinues(t *testing.T) {
	ext := new(mocks.MockResumeExtractor)
	store := new(mocks.MockApplicationStore)

	store.On("GetApplicationJob", mock.Anything, "app-1").Return(nil, errors.New("store down"))
	ext.On("Extract", mock.Anything, mock.MatchedBy(func(in port.ExtractInput) bool {
		return in.Job == nil
	})).Return(&port.ExtractOutput{RawText: `{"name":"Jane Doe"}`}, nil)
	store.On("UpdateApplication", mock.Anything, "app-1", mock.Anything).Return(nil)

	svc := service.NewResumeService(nil, ext, store)

	profile, err := svc.ParseResume(context.Background(), service.ParseResumeInput{
		FileBytes:     []byte("%PDF-1.4"),
		ApplicationID: "app-1",
	})

	require.NoError(t, err)
	assert.NotNil(t, profile.Name)
}

func TestParseResume_PersistenceFailureSwallowed(t *testing.T) {
	ext := new(mocks.MockResumeExtractor)
	store := new(mocks.MockApplicationStore)

	store.On("GetApplicationJob", mock.Anything, "app-1").Return(nil, nil)
	ext.On("Extract", mock.Anything, mock.Anything).
		Return(&port.ExtractOutput{RawText: `{"name":"Jane Doe"}`}, nil)
	store.On("UpdateApplication", mock.Anything, "app-1", mock.Anything).
		Return(errors.New("hasura unreachable"))

	svc := service.NewResumeService(nil, ext, store)

	profile, err := svc.ParseResume(context.Background(), service.ParseResumeInput{
		FileBytes:     []byte("%PDF-1.4"),
		ApplicationID: "app-1",
	})

	// The caller still gets the profile; persistence is fire-and-forget.
	require.NoError(t, err)
	require.NotNil(t, profile.Name)
	assert.Equal(t, "Jane Doe", *profile.Name)
}

func TestParseResume_ExtractionFailure(t *testing.T) {
	ext := new(mocks.MockResumeExtractor)
	ext.On("Extract", mock.Anything, mock.Anything).Return(nil, errors.New("openai API error (status 500)"))

	svc := service.NewResumeService(nil, ext, nil)

	profile, err := svc.ParseResume(context.Background(), service.ParseResumeInput{
		FileBytes: []byte("%PDF-1.4"),
	})

	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domain.ErrExtractionFailed)
}

func TestParseResume_NilStoreSkipsPersistence(t *testing.T) {
	ext := new(mocks.MockResumeExtractor)
	ext.On("Extract", mock.Anything, mock.Anything).
		Return(&port.ExtractOutput{RawText: `{"name":"Jane Doe"}`}, nil)

	svc := service.NewResumeService(nil, ext, nil)

	profile, err := svc.ParseResume(context.Background(), service.ParseResumeInput{
		FileBytes:     []byte("%PDF-1.4"),
		ApplicationID: "app-1",
	})

	require.NoError(t, err)
	assert.NotNil(t, profile)
}

func TestParseResume_GarbageOutputYieldsEmptyProfile(t *testing.T) {
	ext := new(mocks.MockResumeExtractor)
	ext.On("Extract", mock.Anything, mock.Anything).
		Return(&port.ExtractOutput{RawText: "I could not find a resume in this document."}, nil)

	svc := service.NewResumeService(nil, ext, nil)

	profile, err := svc.ParseResume(context.Background(), service.ParseResumeInput{
		FileBytes: []byte("%PDF-1.4"),
	})

	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Nil(t, profile.Name)
	assert.Nil(t, profile.Email)
}

func TestProcessImage_Success(t *testing.T) {
	conv := new(mocks.MockDocumentConverter)
	ext := new(mocks.MockResumeExtractor)

	raw := []byte("%PDF-1.4 content")
	converted := &domain.Artifact{Bytes: []byte{0x89, 0x50}, ContentType: domain.ContentTypePNG}

	conv.On("Convert", mock.Anything, raw, domain.ContentTypePDF).Return(converted, nil)
	ext.On("Extract", mock.Anything, mock.MatchedBy(func(in port.ExtractInput) bool {
		return in.Kind == port.ArtifactImage &&
			in.ContentType == domain.ContentTypePNG &&
			string(in.FileBytes) == string(converted.Bytes)
	})).Return(&port.ExtractOutput{RawText: `{"name":"Jane Doe"}`, TokensUsed: 250}, nil)

	svc := service.NewResumeService(conv, ext, nil)

	result, err := svc.ProcessImage(context.Background(), service.ProcessImageInput{
		FileBytes:   raw,
		ContentType: domain.ContentTypePDF,
	})

	require.NoError(t, err)
	assert.Equal(t, 250, result.TokensUsed)
	require.NotNil(t, result.Profile.Name)
	assert.Equal(t, "Jane Doe", *result.Profile.Name)
	conv.AssertExpectations(t)
}

func TestProcessImage_ConversionError(t *testing.T) {
	conv := new(mocks.MockDocumentConverter)
	ext := new(mocks.MockResumeExtractor)

	conv.On("Convert", mock.Anything, mock.Anything, "text/plain").
		Return(nil, domain.ErrUnsupportedFormat)

	svc := service.NewResumeService(conv, ext, nil)

	result, err := svc.ProcessImage(context.Background(), service.ProcessImageInput{
		FileBytes:   []byte("plain text"),
		ContentType: "text/plain",
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	ext.AssertNotCalled(t, "Extract", mock.Anything, mock.Anything)
}

func TestProcessImage_ExtractionError(t *testing.T) {
	conv := new(mocks.MockDocumentConverter)
	ext := new(mocks.MockResumeExtractor)

	conv.On("Convert", mock.Anything, mock.Anything, "image/png").
		Return(&domain.Artifact{Bytes: []byte{0x89}, ContentType: "image/png"}, nil)
	ext.On("Extract", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	svc := service.NewResumeService(conv, ext, nil)

	result, err := svc.ProcessImage(context.Background(), service.ProcessImageInput{
		FileBytes:   []byte{0x89},
		ContentType: "image/png",
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrExtractionFailed)
}
