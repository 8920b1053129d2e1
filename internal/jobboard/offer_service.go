package jobboard

import (
	"context"
	"log/slog"
)

// Messages reused across offer operations.
const (
	msgInternalError = "an internal error occurred, please try again later"
	msgOfferNotFound = "job offer not found"
)

// OfferService orchestrates repository calls for job offers and wraps every
// outcome in a response envelope. Absence is reported as a failure envelope,
// never as an error; store errors are logged and converted exactly once here.
type OfferService struct {
	repo   OfferRepository
	logger *slog.Logger
}

// NewOfferService creates a new OfferService.
func NewOfferService(repo OfferRepository, logger *slog.Logger) *OfferService {
	if logger == nil {
		logger = slog.Default()
	}
	return &OfferService{repo: repo, logger: logger}
}

// GetAll returns every job offer. An empty store is a success with an empty
// payload.
func (s *OfferService) GetAll(ctx context.Context) Response[[]JobOfferDTO] {
	s.logger.Info("retrieving all job offers")

	offers, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to retrieve job offers",
			slog.String("error", err.Error()),
		)
		return Internal[[]JobOfferDTO](msgInternalError)
	}

	if len(offers) == 0 {
		s.logger.Warn("no job offers available")
		return Success("no job offers available at the moment", make([]JobOfferDTO, 0))
	}

	return Success("job offers retrieved successfully", mapJobOffers(offers))
}

// GetByID returns the offer with the given id, or a not-found envelope.
func (s *OfferService) GetByID(ctx context.Context, id int64) Response[*JobOfferDTO] {
	s.logger.Info("retrieving job offer", slog.Int64("id", id))

	offer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to retrieve job offer",
			slog.Int64("id", id),
			slog.String("error", err.Error()),
		)
		return Internal[*JobOfferDTO](msgInternalError)
	}
	if offer == nil {
		s.logger.Warn("job offer not found", slog.Int64("id", id))
		return NotFound[*JobOfferDTO](msgOfferNotFound)
	}

	return Success("job offer retrieved successfully", mapJobOffer(offer))
}

// Add persists a new offer and returns it with its assigned id.
func (s *OfferService) Add(ctx context.Context, in CreateJobOffer) Response[*JobOfferDTO] {
	offer := NewJobOffer(in)
	s.logger.Info("adding job offer", slog.String("title", offer.Title))

	if err := s.repo.Add(ctx, offer); err != nil {
		s.logger.Error("failed to add job offer",
			slog.String("title", offer.Title),
			slog.String("error", err.Error()),
		)
		return Internal[*JobOfferDTO](msgInternalError)
	}

	return Success("job offer created successfully", mapJobOffer(offer))
}

// Update overwrites the mutable fields of an existing offer. A missing offer
// is a not-found envelope, not an error.
func (s *OfferService) Update(ctx context.Context, id int64, in UpdateJobOffer) Response[*JobOfferDTO] {
	offer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to retrieve job offer for update",
			slog.Int64("id", id),
			slog.String("error", err.Error()),
		)
		return Internal[*JobOfferDTO](msgInternalError)
	}
	if offer == nil {
		s.logger.Warn("job offer not found", slog.Int64("id", id))
		return NotFound[*JobOfferDTO](msgOfferNotFound)
	}

	offer.ApplyUpdate(in)

	s.logger.Info("updating job offer", slog.Int64("id", id))
	if err := s.repo.Update(ctx, offer); err != nil {
		s.logger.Error("failed to update job offer",
			slog.Int64("id", id),
			slog.String("error", err.Error()),
		)
		return Internal[*JobOfferDTO](msgInternalError)
	}

	return Success("job offer updated successfully", mapJobOffer(offer))
}

// Delete removes an offer and, through the store cascade, its applications.
// Deletion returns no entity; the caller already has the id.
func (s *OfferService) Delete(ctx context.Context, id int64) Response[*JobOfferDTO] {
	offer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to retrieve job offer for deletion",
			slog.Int64("id", id),
			slog.String("error", err.Error()),
		)
		return Internal[*JobOfferDTO](msgInternalError)
	}
	if offer == nil {
		s.logger.Warn("job offer not found", slog.Int64("id", id))
		return NotFound[*JobOfferDTO](msgOfferNotFound)
	}

	s.logger.Info("deleting job offer", slog.Int64("id", id))
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete job offer",
			slog.Int64("id", id),
			slog.String("error", err.Error()),
		)
		return Internal[*JobOfferDTO](msgInternalError)
	}

	return Success[*JobOfferDTO]("job offer deleted successfully", nil)
}

// ApplicationsByOfferID returns the applications submitted to one offer.
// A missing offer is a failure; an existing offer with no applications is a
// success with an empty payload.
func (s *OfferService) ApplicationsByOfferID(ctx context.Context, id int64) Response[[]JobApplicationDTO] {
	s.logger.Info("retrieving applications for job offer", slog.Int64("id", id))

	offer, err := s.repo.GetWithApplications(ctx, id)
	if err != nil {
		s.logger.Error("failed to retrieve job offer with applications",
			slog.Int64("id", id),
			slog.String("error", err.Error()),
		)
		return Internal[[]JobApplicationDTO](msgInternalError)
	}
	if offer == nil {
		s.logger.Warn("job offer not found", slog.Int64("id", id))
		return NotFound[[]JobApplicationDTO](msgOfferNotFound)
	}

	if len(offer.Applications) == 0 {
		s.logger.Warn("job offer has no applications", slog.Int64("id", id))
		return Success("no applications found for this job offer", make([]JobApplicationDTO, 0))
	}

	return Success("job applications retrieved successfully", mapJobApplications(offer.Applications))
}
