package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/equintero/jobboard-api/internal/jobboard"
)

var applicationCols = []string{"id", "candidate_name", "candidate_email", "job_offer_id", "date_applied"}

func TestApplicationRepository_GetAll_Empty(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + applicationColumns + " FROM job_applications")).
		WillReturnRows(sqlmock.NewRows(applicationCols))

	repo := NewApplicationRepository(db, nil)
	apps, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("empty store must not be an error, got: %v", err)
	}
	if apps == nil || len(apps) != 0 {
		t.Errorf("expected empty slice, got %v", apps)
	}
}

func TestApplicationRepository_GetByID(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	applied := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT "+applicationColumns+" FROM job_applications WHERE id = ?")).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(applicationCols).
			AddRow(5, "A B", "a@b.com", 1, applied))

	repo := NewApplicationRepository(db, nil)
	app, err := repo.GetByID(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.CandidateEmail != "a@b.com" {
		t.Errorf("expected email %q, got %q", "a@b.com", app.CandidateEmail)
	}
}

func TestApplicationRepository_GetByID_Absent(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT "+applicationColumns+" FROM job_applications WHERE id = ?")).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(applicationCols))

	repo := NewApplicationRepository(db, nil)
	app, err := repo.GetByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("absence must not be an error, got: %v", err)
	}
	if app != nil {
		t.Errorf("expected nil application, got %+v", app)
	}
}

func TestApplicationRepository_Add(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	app := jobboard.NewJobApplication(jobboard.CreateJobApplication{
		CandidateName:  "A B",
		CandidateEmail: "a@b.com",
		JobOfferID:     1,
	})

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO job_applications (candidate_name, candidate_email, job_offer_id, date_applied) VALUES (?, ?, ?, ?)")).
		WithArgs(app.CandidateName, app.CandidateEmail, app.JobOfferID, app.DateApplied).
		WillReturnResult(sqlmock.NewResult(9, 1))

	repo := NewApplicationRepository(db, nil)
	if err := repo.Add(context.Background(), app); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.ID != 9 {
		t.Errorf("expected assigned id 9, got %d", app.ID)
	}
}

func TestApplicationRepository_Add_ForeignKeyViolation(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	mock.ExpectExec("INSERT INTO job_applications").
		WillReturnError(errors.New("constraint failed: FOREIGN KEY constraint failed (787)"))

	repo := NewApplicationRepository(db, nil)
	err := repo.Add(context.Background(), &jobboard.JobApplication{JobOfferID: 42})
	if !errors.Is(err, jobboard.ErrOfferMissing) {
		t.Errorf("expected ErrOfferMissing, got %v", err)
	}
}

func TestApplicationRepository_Add_OtherFailurePropagates(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	storeErr := errors.New("database is locked")
	mock.ExpectExec("INSERT INTO job_applications").WillReturnError(storeErr)

	repo := NewApplicationRepository(db, nil)
	err := repo.Add(context.Background(), &jobboard.JobApplication{})
	if !errors.Is(err, storeErr) {
		t.Errorf("expected wrapped store error, got %v", err)
	}
	if errors.Is(err, jobboard.ErrOfferMissing) {
		t.Error("a non-FK failure must not be reported as a missing offer")
	}
}

func TestApplicationRepository_Delete_Absent(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM job_applications WHERE id = ?")).
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewApplicationRepository(db, nil)
	if err := repo.Delete(context.Background(), 42); err != nil {
		t.Errorf("deleting an absent application must be a no-op, got: %v", err)
	}
}
