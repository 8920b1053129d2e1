package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/equintero/jobboard-api/internal/jobboard"
)

// Compile-time check that OfferRepository implements the domain port.
var _ jobboard.OfferRepository = (*OfferRepository)(nil)

// OfferRepository persists job offers in SQLite. Store failures are logged
// here and returned to the caller; this layer never builds response
// envelopes.
type OfferRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewOfferRepository creates a SQLite-backed offer repository.
func NewOfferRepository(db *sql.DB, logger *slog.Logger) *OfferRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &OfferRepository{db: db, logger: logger}
}

const offerColumns = "id, title, description, location, salary, contract_type, date_posted"

// GetAll returns every persisted offer.
func (r *OfferRepository) GetAll(ctx context.Context) ([]jobboard.JobOffer, error) {
	r.logger.Info("retrieving all job offers from the database")

	rows, err := r.db.QueryContext(ctx, "SELECT "+offerColumns+" FROM job_offers")
	if err != nil {
		r.logger.Error("failed to query job offers", slog.String("error", err.Error()))
		return nil, fmt.Errorf("query job offers: %w", err)
	}
	defer rows.Close()

	offers := make([]jobboard.JobOffer, 0)
	for rows.Next() {
		var o jobboard.JobOffer
		if err := scanOffer(rows, &o); err != nil {
			r.logger.Error("failed to scan job offer", slog.String("error", err.Error()))
			return nil, fmt.Errorf("scan job offer: %w", err)
		}
		offers = append(offers, o)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("failed to iterate job offers", slog.String("error", err.Error()))
		return nil, fmt.Errorf("iterate job offers: %w", err)
	}
	return offers, nil
}

// GetByID returns the offer with the given id, or (nil, nil) when absent.
func (r *OfferRepository) GetByID(ctx context.Context, id int64) (*jobboard.JobOffer, error) {
	r.logger.Info("retrieving job offer from the database", slog.Int64("id", id))

	row := r.db.QueryRowContext(ctx, "SELECT "+offerColumns+" FROM job_offers WHERE id = ?", id)

	var o jobboard.JobOffer
	if err := scanOffer(row, &o); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("failed to retrieve job offer",
			slog.Int64("id", id),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("get job offer %d: %w", id, err)
	}
	return &o, nil
}

// GetWithApplications returns the offer with its applications eagerly
// loaded, or (nil, nil) when the offer is absent.
func (r *OfferRepository) GetWithApplications(ctx context.Context, id int64) (*jobboard.JobOffer, error) {
	offer, err := r.GetByID(ctx, id)
	if err != nil || offer == nil {
		return offer, err
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT id, candidate_name, candidate_email, job_offer_id, date_applied FROM job_applications WHERE job_offer_id = ?",
		id,
	)
	if err != nil {
		r.logger.Error("failed to query applications for job offer",
			slog.Int64("id", id),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("query applications for offer %d: %w", id, err)
	}
	defer rows.Close()

	offer.Applications = make([]jobboard.JobApplication, 0)
	for rows.Next() {
		var a jobboard.JobApplication
		if err := rows.Scan(&a.ID, &a.CandidateName, &a.CandidateEmail, &a.JobOfferID, &a.DateApplied); err != nil {
			r.logger.Error("failed to scan job application", slog.String("error", err.Error()))
			return nil, fmt.Errorf("scan job application: %w", err)
		}
		offer.Applications = append(offer.Applications, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate applications for offer %d: %w", id, err)
	}
	return offer, nil
}

// Add inserts a new offer and assigns its id.
func (r *OfferRepository) Add(ctx context.Context, offer *jobboard.JobOffer) error {
	r.logger.Info("adding job offer to the database", slog.String("title", offer.Title))

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO job_offers (title, description, location, salary, contract_type, date_posted) VALUES (?, ?, ?, ?, ?, ?)",
		offer.Title, offer.Description, offer.Location, offer.Salary, offer.ContractType, offer.DatePosted,
	)
	if err != nil {
		r.logger.Error("failed to insert job offer", slog.String("error", err.Error()))
		return fmt.Errorf("insert job offer: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		r.logger.Error("failed to read inserted job offer id", slog.String("error", err.Error()))
		return fmt.Errorf("job offer insert id: %w", err)
	}
	offer.ID = id

	r.logger.Info("job offer added", slog.Int64("id", id))
	return nil
}

// Update overwrites the mutable fields of an existing offer. Returns
// jobboard.ErrNotFound when the offer does not exist; a missing record on
// update is exceptional at this layer.
func (r *OfferRepository) Update(ctx context.Context, offer *jobboard.JobOffer) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE job_offers SET title = ?, description = ?, location = ?, salary = ?, contract_type = ? WHERE id = ?",
		offer.Title, offer.Description, offer.Location, offer.Salary, offer.ContractType, offer.ID,
	)
	if err != nil {
		r.logger.Error("failed to update job offer",
			slog.Int64("id", offer.ID),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("update job offer %d: %w", offer.ID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update job offer %d: %w", offer.ID, err)
	}
	if affected == 0 {
		r.logger.Error("job offer to update does not exist", slog.Int64("id", offer.ID))
		return fmt.Errorf("update job offer %d: %w", offer.ID, jobboard.ErrNotFound)
	}

	r.logger.Info("job offer updated", slog.Int64("id", offer.ID))
	return nil
}

// Delete removes an offer; the database cascades to its applications.
// Deleting an absent offer is a logged no-op.
func (r *OfferRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM job_offers WHERE id = ?", id)
	if err != nil {
		r.logger.Error("failed to delete job offer",
			slog.Int64("id", id),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("delete job offer %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete job offer %d: %w", id, err)
	}
	if affected == 0 {
		r.logger.Warn("job offer to delete does not exist", slog.Int64("id", id))
		return nil
	}

	r.logger.Info("job offer deleted", slog.Int64("id", id))
	return nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanOffer(s scanner, o *jobboard.JobOffer) error {
	return s.Scan(&o.ID, &o.Title, &o.Description, &o.Location, &o.Salary, &o.ContractType, &o.DatePosted)
}
