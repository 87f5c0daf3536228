package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobdesk/internal/domain"
)

// ErrorResponse is the error body the frontend expects: a bare
// {"error": "..."} object, no envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrorResponse{Error: msg})
}

// MapDomainError translates a domain error to an HTTP status code and a
// caller-facing message. Unknown errors map to a 500 with the given
// fallback message so internal detail never leaks to the caller.
func MapDomainError(err error, fallback string) (status int, msg string) {
	switch {
	case errors.Is(err, domain.ErrNotMultipart):
		return http.StatusBadRequest, "Request must be multipart/form-data"
	case errors.Is(err, domain.ErrNoResume):
		return http.StatusBadRequest, "No resume provided"
	case errors.Is(err, domain.ErrNoImage):
		return http.StatusBadRequest, "No image provided"
	case errors.Is(err, domain.ErrNotPDF):
		return http.StatusBadRequest, "File must be a PDF"
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return http.StatusBadRequest, "File must be an image or a supported document type (PDF, DOCX)"
	case errors.Is(err, domain.ErrConversionFailed):
		return http.StatusBadRequest, "Failed to process document. The format may be unsupported."
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "File exceeds the maximum allowed size"
	default:
		return http.StatusInternalServerError, fallback
	}
}

// HandleError maps a domain error and sends the appropriate error
// response, logging internal errors with the request id.
func HandleError(c *gin.Context, err error, fallback string) {
	status, msg := MapDomainError(err, fallback)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, msg)
}
