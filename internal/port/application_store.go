package port

import (
	"context"

	"jobdesk/internal/domain"
)

// ApplicationStore abstracts the external data store holding job
// applications. This service never reads full application entities; it
// fetches job context for scoring and writes extracted fields by id.
type ApplicationStore interface {
	GetApplicationJob(ctx context.Context, applicationID string) (*domain.JobContext, error)
	UpdateApplication(ctx context.Context, applicationID string, profile *domain.CandidateProfile) error
}
