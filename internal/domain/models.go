package domain

import "strings"

// Content types accepted alongside raster images.
const (
	ContentTypePDF  = "application/pdf"
	ContentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	ContentTypePNG  = "image/png"
)

// CandidateProfile holds the structured fields extracted from a resume.
// Every field is independently nullable: the extractor returns JSON null
// for anything it cannot find, and a decode failure yields the zero value
// (all fields nil).
type CandidateProfile struct {
	Name              *string  `json:"name"`
	Website           *string  `json:"website"`
	Linkedin          *string  `json:"linkedin"`
	Email             *string  `json:"email"`
	YearsOfExperience *int     `json:"years_of_experience,omitempty"`
	Skills            []string `json:"skills,omitempty"`
	RelevantSkills    []string `json:"relevant_skills,omitempty"`
	MatchScore        *int     `json:"match_score,omitempty"`
}

// JobContext is the job posting a resume is scored against.
type JobContext struct {
	Title       string `json:"title"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// Artifact is a normalized byte payload ready for extraction. After
// normalization the content type is always an image type.
type Artifact struct {
	Bytes       []byte
	ContentType string
}

// IsImageContentType reports whether ct is a raster image type.
func IsImageContentType(ct string) bool {
	return strings.HasPrefix(ct, "image/")
}

// IsSupportedDocumentType reports whether ct can be normalized into an
// image: any image type, PDF, or DOCX.
func IsSupportedDocumentType(ct string) bool {
	return IsImageContentType(ct) || ct == ContentTypePDF || ct == ContentTypeDOCX
}
