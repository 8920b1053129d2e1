// Package jobboard provides the job-board domain: the JobOffer and
// JobApplication entities, repository interfaces for persistence, and the
// services that wrap every operation in a generic response envelope.
package jobboard

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by repository Update when the record to update
// does not exist. Read operations report absence with a nil entity instead.
var ErrNotFound = errors.New("record not found")

// JobOffer is a published job opening. Offers own their applications:
// deleting an offer removes every application referencing it.
type JobOffer struct {
	// ID is assigned by the store on creation.
	ID int64
	// Title of the opening.
	Title string
	// Description of the role.
	Description string
	// Location where the role is based.
	Location string
	// Salary offered, at least 1.
	Salary float64
	// ContractType, e.g. "Full time".
	ContractType string
	// DatePosted is set at creation and never changes afterwards.
	DatePosted time.Time
	// Applications submitted against this offer. Only populated by
	// GetWithApplications.
	Applications []JobApplication
}

// NewJobOffer creates an offer from a create payload. The ID is zero until
// the repository persists it; DatePosted is fixed at creation time.
func NewJobOffer(in CreateJobOffer) *JobOffer {
	return &JobOffer{
		Title:        in.Title,
		Description:  in.Description,
		Location:     in.Location,
		Salary:       in.Salary,
		ContractType: in.ContractType,
		DatePosted:   time.Now().UTC(),
	}
}

// ApplyUpdate overwrites the mutable fields from an update payload.
// ID and DatePosted are never touched.
func (o *JobOffer) ApplyUpdate(in UpdateJobOffer) {
	o.Title = in.Title
	o.Description = in.Description
	o.Location = in.Location
	o.Salary = in.Salary
	o.ContractType = in.ContractType
}

// OfferRepository defines persistence for job offers.
// It acts as a port; the service layer never talks to the store directly.
type OfferRepository interface {
	// GetAll returns every persisted offer. An empty store yields an
	// empty slice, never an error.
	GetAll(ctx context.Context) ([]JobOffer, error)

	// GetByID returns the offer with the given id, or (nil, nil) when no
	// such offer exists. Absence is not an error at this layer.
	GetByID(ctx context.Context, id int64) (*JobOffer, error)

	// GetWithApplications is GetByID with the Applications collection
	// eagerly loaded.
	GetWithApplications(ctx context.Context, id int64) (*JobOffer, error)

	// Add persists a new offer and assigns its ID.
	Add(ctx context.Context, offer *JobOffer) error

	// Update overwrites the mutable fields of an existing offer.
	// Returns ErrNotFound if the offer does not exist.
	Update(ctx context.Context, offer *JobOffer) error

	// Delete removes the offer and, through the store's cascade, every
	// application referencing it. Deleting an absent offer is a no-op.
	Delete(ctx context.Context, id int64) error
}
