package jobboard

import (
	"context"
	"errors"
	"time"
)

// ErrOfferMissing is returned by ApplicationRepository.Add when the
// referenced job offer does not exist. The store's foreign-key constraint is
// the authoritative check: even if the service saw the offer a moment
// earlier, a concurrent delete makes the insert fail with this error.
var ErrOfferMissing = errors.New("referenced job offer does not exist")

// JobApplication is a candidate's application to a specific job offer.
// Applications are created and deleted but never updated.
type JobApplication struct {
	// ID is assigned by the store on creation.
	ID int64
	// CandidateName is the applicant's full name.
	CandidateName string
	// CandidateEmail is the applicant's address.
	CandidateEmail string
	// JobOfferID references the offer being applied to. It must resolve
	// to an existing offer at creation time.
	JobOfferID int64
	// DateApplied is set at creation and never changes afterwards.
	DateApplied time.Time
}

// NewJobApplication creates an application from a create payload.
// The ID is zero until the repository persists it.
func NewJobApplication(in CreateJobApplication) *JobApplication {
	return &JobApplication{
		CandidateName:  in.CandidateName,
		CandidateEmail: in.CandidateEmail,
		JobOfferID:     in.JobOfferID,
		DateApplied:    time.Now().UTC(),
	}
}

// ApplicationRepository defines persistence for job applications.
type ApplicationRepository interface {
	// GetAll returns every persisted application. An empty store yields
	// an empty slice, never an error.
	GetAll(ctx context.Context) ([]JobApplication, error)

	// GetByID returns the application with the given id, or (nil, nil)
	// when no such application exists.
	GetByID(ctx context.Context, id int64) (*JobApplication, error)

	// Add persists a new application and assigns its ID.
	// Returns ErrOfferMissing if JobOfferID does not reference an
	// existing offer.
	Add(ctx context.Context, app *JobApplication) error

	// Delete removes the application. Deleting an absent application is
	// a no-op.
	Delete(ctx context.Context, id int64) error
}
