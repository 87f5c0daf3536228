// Package convert normalizes uploaded documents into raster images
// suitable for vision-based extraction.
package convert

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"

	"jobdesk/internal/config"
	"jobdesk/internal/domain"
	"jobdesk/internal/port"
)

// ImageConverter implements port.DocumentConverter. PDF pages are
// rasterized by an external command through a temp-file round trip; DOCX
// rendering is not attempted and always yields a placeholder.
type ImageConverter struct {
	runner Runner
	cfg    *config.ConverterConfig
}

// NewImageConverter creates a converter using the given runner and settings.
func NewImageConverter(runner Runner, cfg *config.ConverterConfig) *ImageConverter {
	return &ImageConverter{runner: runner, cfg: cfg}
}

func (c *ImageConverter) Convert(ctx context.Context, data []byte, contentType string) (*domain.Artifact, error) {
	switch {
	case domain.IsImageContentType(contentType):
		// Already an image: identity conversion.
		return &domain.Artifact{Bytes: data, ContentType: contentType}, nil

	case contentType == domain.ContentTypePDF:
		imageBytes, err := c.pdfToImage(ctx, data)
		if err != nil {
			return nil, err
		}
		return &domain.Artifact{Bytes: imageBytes, ContentType: domain.ContentTypePNG}, nil

	case contentType == domain.ContentTypeDOCX:
		// Direct DOCX rasterization needs tooling outside this service
		// (DOCX -> PDF first, then rasterize). Emit a labeled placeholder.
		imageBytes, err := placeholderImage(
			"DOCX Document",
			"DOCX content processed for analysis",
			"(Direct DOCX conversion requires additional libraries)",
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrConversionFailed, err)
		}
		return &domain.Artifact{Bytes: imageBytes, ContentType: domain.ContentTypePNG}, nil

	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, contentType)
	}
}

// pdfToImage renders the first page of a PDF as a PNG. Any failure along
// the way (unreadable PDF, missing tool, conversion error) falls back to a
// labeled placeholder so the pipeline can continue.
func (c *ImageConverter) pdfToImage(ctx context.Context, data []byte) ([]byte, error) {
	if !pdfReadable(data) {
		log.Printf("convert.pdfToImage: input is not a readable PDF, using placeholder")
		return c.pdfPlaceholder()
	}

	tempDir := os.TempDir()
	id := uuid.New().String()
	pdfPath := filepath.Join(tempDir, id+".pdf")
	outPath := filepath.Join(tempDir, id+".png")

	if err := os.WriteFile(pdfPath, data, 0o600); err != nil {
		log.Printf("convert.pdfToImage: writing temp pdf: %v", err)
		return c.pdfPlaceholder()
	}
	defer cleanupTemp(pdfPath, outPath)

	timeout := time.Duration(c.cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// First page only; high density for legible text.
	_, _, err := c.runner.Run(runCtx, c.cfg.Command,
		pdfPath+"[0]",
		"-density", strconv.Itoa(c.cfg.Density),
		"-quality", strconv.Itoa(c.cfg.Quality),
		outPath,
	)
	if err != nil {
		log.Printf("convert.pdfToImage: rasterization failed, using placeholder: %v", err)
		return c.pdfPlaceholder()
	}

	imageBytes, err := os.ReadFile(outPath)
	if err != nil {
		log.Printf("convert.pdfToImage: reading converted image: %v", err)
		return c.pdfPlaceholder()
	}

	return imageBytes, nil
}

func (c *ImageConverter) pdfPlaceholder() ([]byte, error) {
	imageBytes, err := placeholderImage(
		"PDF Document",
		"PDF conversion failed - using placeholder",
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConversionFailed, err)
	}
	return imageBytes, nil
}

// pdfReadable reports whether data parses as a PDF with at least one page.
// The pdf library panics on some malformed inputs, so this recovers.
func pdfReadable(data []byte) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return false
	}
	return r.NumPage() >= 1
}

// cleanupTemp removes the temp files best-effort; a failed removal is
// logged, never fatal.
func cleanupTemp(paths ...string) {
	for _, p := range paths {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			log.Printf("convert.cleanupTemp: removing %s: %v", p, err)
		}
	}
}

var _ port.DocumentConverter = (*ImageConverter)(nil)
