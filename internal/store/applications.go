package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/equintero/jobboard-api/internal/jobboard"
)

// Compile-time check that ApplicationRepository implements the domain port.
var _ jobboard.ApplicationRepository = (*ApplicationRepository)(nil)

// ApplicationRepository persists job applications in SQLite.
type ApplicationRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewApplicationRepository creates a SQLite-backed application repository.
func NewApplicationRepository(db *sql.DB, logger *slog.Logger) *ApplicationRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &ApplicationRepository{db: db, logger: logger}
}

const applicationColumns = "id, candidate_name, candidate_email, job_offer_id, date_applied"

// GetAll returns every persisted application.
func (r *ApplicationRepository) GetAll(ctx context.Context) ([]jobboard.JobApplication, error) {
	r.logger.Info("retrieving all job applications from the database")

	rows, err := r.db.QueryContext(ctx, "SELECT "+applicationColumns+" FROM job_applications")
	if err != nil {
		r.logger.Error("failed to query job applications", slog.String("error", err.Error()))
		return nil, fmt.Errorf("query job applications: %w", err)
	}
	defer rows.Close()

	apps := make([]jobboard.JobApplication, 0)
	for rows.Next() {
		var a jobboard.JobApplication
		if err := rows.Scan(&a.ID, &a.CandidateName, &a.CandidateEmail, &a.JobOfferID, &a.DateApplied); err != nil {
			r.logger.Error("failed to scan job application", slog.String("error", err.Error()))
			return nil, fmt.Errorf("scan job application: %w", err)
		}
		apps = append(apps, a)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("failed to iterate job applications", slog.String("error", err.Error()))
		return nil, fmt.Errorf("iterate job applications: %w", err)
	}
	return apps, nil
}

// GetByID returns the application with the given id, or (nil, nil) when
// absent.
func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*jobboard.JobApplication, error) {
	r.logger.Info("retrieving job application from the database", slog.Int64("id", id))

	row := r.db.QueryRowContext(ctx, "SELECT "+applicationColumns+" FROM job_applications WHERE id = ?", id)

	var a jobboard.JobApplication
	if err := row.Scan(&a.ID, &a.CandidateName, &a.CandidateEmail, &a.JobOfferID, &a.DateApplied); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("failed to retrieve job application",
			slog.Int64("id", id),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("get job application %d: %w", id, err)
	}
	return &a, nil
}

// Add inserts a new application and assigns its id. A foreign-key rejection
// from the engine is translated to jobboard.ErrOfferMissing; it means the
// referenced offer does not exist, possibly deleted after the service's
// existence check.
func (r *ApplicationRepository) Add(ctx context.Context, app *jobboard.JobApplication) error {
	r.logger.Info("adding job application to the database",
		slog.Int64("job_offer_id", app.JobOfferID),
	)

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO job_applications (candidate_name, candidate_email, job_offer_id, date_applied) VALUES (?, ?, ?, ?)",
		app.CandidateName, app.CandidateEmail, app.JobOfferID, app.DateApplied,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			r.logger.Warn("job offer referenced by application does not exist",
				slog.Int64("job_offer_id", app.JobOfferID),
			)
			return fmt.Errorf("insert job application: %w", jobboard.ErrOfferMissing)
		}
		r.logger.Error("failed to insert job application", slog.String("error", err.Error()))
		return fmt.Errorf("insert job application: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		r.logger.Error("failed to read inserted job application id", slog.String("error", err.Error()))
		return fmt.Errorf("job application insert id: %w", err)
	}
	app.ID = id

	r.logger.Info("job application added", slog.Int64("id", id))
	return nil
}

// Delete removes an application. Deleting an absent application is a logged
// no-op.
func (r *ApplicationRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM job_applications WHERE id = ?", id)
	if err != nil {
		r.logger.Error("failed to delete job application",
			slog.Int64("id", id),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("delete job application %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete job application %d: %w", id, err)
	}
	if affected == 0 {
		r.logger.Warn("job application to delete does not exist", slog.Int64("id", id))
		return nil
	}

	r.logger.Info("job application deleted", slog.Int64("id", id))
	return nil
}
