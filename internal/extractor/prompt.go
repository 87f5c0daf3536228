package extractor

import (
	"fmt"

	"jobdesk/internal/domain"
)

// BuildResumePrompt returns the extraction instruction for the file-based
// path. When a job context is supplied, the instruction additionally asks
// for experience, skills, and an integer relevance score.
func BuildResumePrompt(job *domain.JobContext) string {
	if job == nil {
		return `This is a resume. Extract and return ONLY the following information in JSON format:
1. The applicant's full name
2. Their website URL (if present)
3. Their linkedin URL (if present)
4. Their email address

Format the response as a valid JSON object with the keys: "name", "website", "linkedin", and "email". If any information is not found, use null for that field. For example: {"name": "John Doe", "website": "johndoe.com", "email": "john@example.com", "linkedin": "https://linkedin.com/in/johndoe"}`
	}

	return fmt.Sprintf(`This is a resume for a job application. The job is described below.

Job title: %s
Job location: %s
Job description: %s

Extract and return ONLY the following information in JSON format:
1. The applicant's full name
2. Their website URL (if present)
3. Their linkedin URL (if present)
4. Their email address
5. Their total years of professional experience, as an integer
6. Their skills, ordered most prominent first
7. The subset of their skills relevant to the job above, ordered most relevant first
8. A match score for this job: an integer between 0 and 100 inclusive, where 100 is a perfect match

Format the response as a valid JSON object with the keys: "name", "website", "linkedin", "email", "years_of_experience", "skills", "relevant_skills", and "match_score". "skills" and "relevant_skills" must be JSON arrays of strings. "match_score" must be an integer between 0 and 100. If any information is not found, use null for that field.`,
		job.Title, job.Location, job.Description)
}

// BuildImagePrompt returns the extraction instruction for the vision-based
// path. This path has a narrower contract: name, website, and email only.
func BuildImagePrompt() string {
	return `This is an image of a resume. Extract and return ONLY the following information in JSON format:
1. The applicant's full name
2. Their website URL (if present)
3. Their email address

Format the response as a valid JSON object with the keys: "name", "website", and "email". If any information is not found, use null for that field. For example: {"name": "John Doe", "website": "johndoe.com", "email": "john@example.com"}`
}
