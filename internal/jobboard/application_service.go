package jobboard

import (
	"context"
	"errors"
	"log/slog"
)

const msgApplicationNotFound = "job application not found"

// ApplicationService orchestrates repository calls for job applications.
// Creating an application first verifies the referenced offer exists; the
// store's foreign-key constraint remains the authoritative check, so a
// concurrent offer deletion surfaces as the same failure envelope.
type ApplicationService struct {
	repo   ApplicationRepository
	offers OfferRepository
	logger *slog.Logger
}

// NewApplicationService creates a new ApplicationService.
func NewApplicationService(repo ApplicationRepository, offers OfferRepository, logger *slog.Logger) *ApplicationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ApplicationService{repo: repo, offers: offers, logger: logger}
}

// GetAll returns every job application. An empty store is a success with an
// empty payload.
func (s *ApplicationService) GetAll(ctx context.Context) Response[[]JobApplicationDTO] {
	s.logger.Info("retrieving all job applications")

	apps, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to retrieve job applications",
			slog.String("error", err.Error()),
		)
		return Internal[[]JobApplicationDTO](msgInternalError)
	}

	if len(apps) == 0 {
		s.logger.Warn("no job applications available")
		return Success("no job applications available at the moment", make([]JobApplicationDTO, 0))
	}

	return Success("job applications retrieved successfully", mapJobApplications(apps))
}

// GetByID returns the application with the given id, or a not-found
// envelope.
func (s *ApplicationService) GetByID(ctx context.Context, id int64) Response[*JobApplicationDTO] {
	s.logger.Info("retrieving job application", slog.Int64("id", id))

	app, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to retrieve job application",
			slog.Int64("id", id),
			slog.String("error", err.Error()),
		)
		return Internal[*JobApplicationDTO](msgInternalError)
	}
	if app == nil {
		s.logger.Warn("job application not found", slog.Int64("id", id))
		return NotFound[*JobApplicationDTO](msgApplicationNotFound)
	}

	return Success("job application retrieved successfully", mapJobApplication(app))
}

// Add persists a new application after verifying the referenced offer
// exists. Nothing is written when the offer is missing.
func (s *ApplicationService) Add(ctx context.Context, in CreateJobApplication) Response[*JobApplicationDTO] {
	s.logger.Info("verifying job offer exists", slog.Int64("job_offer_id", in.JobOfferID))

	offer, err := s.offers.GetByID(ctx, in.JobOfferID)
	if err != nil {
		s.logger.Error("failed to verify job offer",
			slog.Int64("job_offer_id", in.JobOfferID),
			slog.String("error", err.Error()),
		)
		return Internal[*JobApplicationDTO](msgInternalError)
	}
	if offer == nil {
		s.logger.Warn("job offer not found for application",
			slog.Int64("job_offer_id", in.JobOfferID),
		)
		return InvalidReference[*JobApplicationDTO]("no matching job offer for this application")
	}

	app := NewJobApplication(in)

	s.logger.Info("adding job application",
		slog.String("candidate", app.CandidateName),
		slog.Int64("job_offer_id", app.JobOfferID),
	)
	if err := s.repo.Add(ctx, app); err != nil {
		// The offer may have been deleted between the check and the
		// insert; the foreign-key rejection is authoritative.
		if errors.Is(err, ErrOfferMissing) {
			s.logger.Warn("job offer disappeared before insert",
				slog.Int64("job_offer_id", app.JobOfferID),
			)
			return InvalidReference[*JobApplicationDTO]("no matching job offer for this application")
		}
		s.logger.Error("failed to add job application",
			slog.Int64("job_offer_id", app.JobOfferID),
			slog.String("error", err.Error()),
		)
		return Internal[*JobApplicationDTO](msgInternalError)
	}

	return Success("applied to the job offer successfully", mapJobApplication(app))
}

// Delete removes an application. Deletion returns no entity.
func (s *ApplicationService) Delete(ctx context.Context, id int64) Response[*JobApplicationDTO] {
	app, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to retrieve job application for deletion",
			slog.Int64("id", id),
			slog.String("error", err.Error()),
		)
		return Internal[*JobApplicationDTO](msgInternalError)
	}
	if app == nil {
		s.logger.Warn("job application not found", slog.Int64("id", id))
		return NotFound[*JobApplicationDTO](msgApplicationNotFound)
	}

	s.logger.Info("deleting job application", slog.Int64("id", id))
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete job application",
			slog.Int64("id", id),
			slog.String("error", err.Error()),
		)
		return Internal[*JobApplicationDTO](msgInternalError)
	}

	return Success[*JobApplicationDTO]("job application deleted successfully", nil)
}
