package handler

import (
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobdesk/internal/config"
	"jobdesk/internal/domain"
	"jobdesk/internal/service"
)

// ResumeHandler handles the resume extraction endpoints.
type ResumeHandler struct {
	resumeService service.ResumeService
	maxFileBytes  int64
}

// NewResumeHandler creates a new ResumeHandler.
func NewResumeHandler(resumeService service.ResumeService, cfg *config.UploadConfig) *ResumeHandler {
	return &ResumeHandler{
		resumeService: resumeService,
		maxFileBytes:  cfg.MaxFileSizeMB * 1024 * 1024,
	}
}

// ParseResume handles POST /api/parse-resume. It accepts a multipart form
// with a required PDF "resume" field and an optional "applicationId", and
// responds with the extracted candidate record as bare JSON.
func (h *ResumeHandler) ParseResume(c *gin.Context) {
	if !isMultipart(c) {
		RespondError(c, http.StatusBadRequest, "Request must be multipart/form-data")
		return
	}

	file, header, err := c.Request.FormFile("resume")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "No resume provided")
		return
	}
	defer func() { _ = file.Close() }()

	if header.Header.Get("Content-Type") != domain.ContentTypePDF {
		RespondError(c, http.StatusBadRequest, "File must be a PDF")
		return
	}

	data, err := h.readUpload(file, header)
	if err != nil {
		HandleError(c, err, "Failed to process resume")
		return
	}

	profile, err := h.resumeService.ParseResume(c.Request.Context(), service.ParseResumeInput{
		FileBytes:     data,
		ApplicationID: c.PostForm("applicationId"),
	})
	if err != nil {
		HandleError(c, err, "Failed to process resume")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// processImageResponse mirrors the frontend contract: the narrow vision
// record plus the token count reported by the extraction call.
type processImageResponse struct {
	Name           *string `json:"name"`
	Website        *string `json:"website"`
	Email          *string `json:"email"`
	Linkedin       *string `json:"linkedin,omitempty"`
	ProcessingTime int     `json:"processingTime"`
}

// ProcessImage handles POST /api/process-image. It accepts any image
// type, PDF, or DOCX in the "image" field, normalizes it to a raster
// image, and runs vision-based extraction.
func (h *ResumeHandler) ProcessImage(c *gin.Context) {
	if !isMultipart(c) {
		RespondError(c, http.StatusBadRequest, "Request must be multipart/form-data")
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "No image provided")
		return
	}
	defer func() { _ = file.Close() }()

	contentType := header.Header.Get("Content-Type")
	if !domain.IsSupportedDocumentType(contentType) {
		RespondError(c, http.StatusBadRequest, "File must be an image or a supported document type (PDF, DOCX)")
		return
	}

	data, err := h.readUpload(file, header)
	if err != nil {
		HandleError(c, err, "Failed to process image")
		return
	}

	result, err := h.resumeService.ProcessImage(c.Request.Context(), service.ProcessImageInput{
		FileBytes:   data,
		ContentType: contentType,
	})
	if err != nil {
		HandleError(c, err, "Failed to process image")
		return
	}

	c.JSON(http.StatusOK, processImageResponse{
		Name:           result.Profile.Name,
		Website:        result.Profile.Website,
		Email:          result.Profile.Email,
		Linkedin:       result.Profile.Linkedin,
		ProcessingTime: result.TokensUsed,
	})
}

func (h *ResumeHandler) readUpload(file multipart.File, header *multipart.FileHeader) ([]byte, error) {
	if h.maxFileBytes > 0 && header.Size > h.maxFileBytes {
		return nil, domain.ErrFileTooLarge
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func isMultipart(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Content-Type"), "multipart/form-data")
}
