package extractor

import (
	"encoding/json"
	"log"
	"regexp"
	"strings"

	"jobdesk/internal/domain"
)

// Models commonly wrap their "valid JSON object" in markdown fencing even
// when told not to. These strip one leading and one trailing fence; they
// are not a general markdown parser.
var (
	leadingFenceRe  = regexp.MustCompile("^```(?:json)?\\s*")
	trailingFenceRe = regexp.MustCompile("\\s*```\\s*$")
)

// StripCodeFence removes a leading ```json (or bare ```) marker and a
// trailing ``` marker from raw, if present.
func StripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	s = leadingFenceRe.ReplaceAllString(s, "")
	return trailingFenceRe.ReplaceAllString(s, "")
}

// DecodeCandidateProfile decodes the model's raw text output into a
// CandidateProfile. It is total: on any decode failure it returns an
// all-null profile instead of an error, and fields absent from the JSON
// stay nil.
func DecodeCandidateProfile(raw string) *domain.CandidateProfile {
	profile := &domain.CandidateProfile{}
	cleaned := StripCodeFence(raw)
	if err := json.Unmarshal([]byte(cleaned), profile); err != nil {
		log.Printf("extractor.DecodeCandidateProfile: model output is not valid JSON: %v", err)
		return &domain.CandidateProfile{}
	}
	return profile
}
