package jobboard

import (
	"context"
	"errors"
	"testing"
)

// countingApplicationRepo wraps a repository and counts Add calls.
type countingApplicationRepo struct {
	ApplicationRepository
	addCalls int
}

func (r *countingApplicationRepo) Add(ctx context.Context, app *JobApplication) error {
	r.addCalls++
	return r.ApplicationRepository.Add(ctx, app)
}

// vanishingOfferRepo reports the offer as existing while the application
// store rejects the insert, simulating a concurrent offer deletion between
// the existence check and the write.
type vanishingOfferRepo struct {
	OfferRepository
}

func (r *vanishingOfferRepo) GetByID(context.Context, int64) (*JobOffer, error) {
	return &JobOffer{ID: 1}, nil
}

func TestApplicationService_GetAll_Empty(t *testing.T) {
	store := NewMemoryStore()
	svc := NewApplicationService(store.Applications(), store.Offers(), nil)

	resp := svc.GetAll(context.Background())
	if !resp.IsSuccess {
		t.Error("empty store must be a success, not a failure")
	}
	if resp.Data == nil || len(resp.Data) != 0 {
		t.Errorf("expected empty slice, got %v", resp.Data)
	}
}

func TestApplicationService_GetByID_NotFound(t *testing.T) {
	store := NewMemoryStore()
	svc := NewApplicationService(store.Applications(), store.Offers(), nil)

	resp := svc.GetByID(context.Background(), 42)
	if resp.IsSuccess {
		t.Error("expected failure for absent application")
	}
	if resp.Data != nil {
		t.Errorf("expected nil data, got %+v", resp.Data)
	}
	if resp.Kind() != FailureNotFound {
		t.Errorf("expected FailureNotFound, got %v", resp.Kind())
	}
}

func TestApplicationService_Add(t *testing.T) {
	store := NewMemoryStore()
	svc := NewApplicationService(store.Applications(), store.Offers(), nil)
	ctx := context.Background()

	offer := testOffer()
	_ = store.Offers().Add(ctx, offer)

	resp := svc.Add(ctx, CreateJobApplication{
		CandidateName:  "A B",
		CandidateEmail: "a@b.com",
		JobOfferID:     offer.ID,
	})
	if !resp.IsSuccess {
		t.Fatalf("unexpected failure: %s", resp.Message)
	}
	if resp.Data.CandidateName != "A B" {
		t.Errorf("expected candidate %q, got %q", "A B", resp.Data.CandidateName)
	}
	if resp.Data.ID <= 0 {
		t.Errorf("expected assigned id, got %d", resp.Data.ID)
	}
	if resp.Data.DateApplied.IsZero() {
		t.Error("expected DateApplied to be set")
	}
}

func TestApplicationService_Add_OfferMissing(t *testing.T) {
	store := NewMemoryStore()
	repo := &countingApplicationRepo{ApplicationRepository: store.Applications()}
	svc := NewApplicationService(repo, store.Offers(), nil)

	resp := svc.Add(context.Background(), CreateJobApplication{
		CandidateName:  "A B",
		CandidateEmail: "a@b.com",
		JobOfferID:     42,
	})
	if resp.IsSuccess {
		t.Error("expected failure for missing offer")
	}
	if resp.Data != nil {
		t.Errorf("expected nil data, got %+v", resp.Data)
	}
	if resp.Kind() != FailureInvalidReference {
		t.Errorf("expected FailureInvalidReference, got %v", resp.Kind())
	}
	if repo.addCalls != 0 {
		t.Errorf("repository Add must not be invoked, got %d calls", repo.addCalls)
	}
}

func TestApplicationService_Add_OfferDeletedConcurrently(t *testing.T) {
	// The pre-check passes but the store rejects the insert; the
	// foreign-key rejection must surface as the same referential failure.
	store := NewMemoryStore()
	offers := &vanishingOfferRepo{OfferRepository: store.Offers()}
	svc := NewApplicationService(store.Applications(), offers, nil)

	resp := svc.Add(context.Background(), CreateJobApplication{
		CandidateName:  "A B",
		CandidateEmail: "a@b.com",
		JobOfferID:     1,
	})
	if resp.IsSuccess {
		t.Error("expected failure when the offer vanished before insert")
	}
	if resp.Kind() != FailureInvalidReference {
		t.Errorf("expected FailureInvalidReference, got %v", resp.Kind())
	}
}

func TestApplicationService_Delete(t *testing.T) {
	store := NewMemoryStore()
	svc := NewApplicationService(store.Applications(), store.Offers(), nil)
	ctx := context.Background()

	offer := testOffer()
	_ = store.Offers().Add(ctx, offer)
	app := testApplication(offer.ID)
	_ = store.Applications().Add(ctx, app)

	resp := svc.Delete(ctx, app.ID)
	if !resp.IsSuccess {
		t.Fatalf("unexpected failure: %s", resp.Message)
	}
	if resp.Data != nil {
		t.Error("deletion must return no entity")
	}
}

func TestApplicationService_Delete_NotFound(t *testing.T) {
	store := NewMemoryStore()
	svc := NewApplicationService(store.Applications(), store.Offers(), nil)

	resp := svc.Delete(context.Background(), 42)
	if resp.IsSuccess {
		t.Error("expected failure for absent application")
	}
	if resp.Data != nil {
		t.Errorf("expected nil data, got %+v", resp.Data)
	}
	if resp.Kind() != FailureNotFound {
		t.Errorf("expected FailureNotFound, got %v", resp.Kind())
	}
}

func TestApplicationService_RepositoryFailureIsConverted(t *testing.T) {
	repo := &failingApplicationRepo{err: errors.New("connection reset")}
	store := NewMemoryStore()
	svc := NewApplicationService(repo, store.Offers(), nil)
	ctx := context.Background()

	if kind := svc.GetAll(ctx).Kind(); kind != FailureInternal {
		t.Errorf("GetAll: expected FailureInternal, got %v", kind)
	}
	if kind := svc.GetByID(ctx, 1).Kind(); kind != FailureInternal {
		t.Errorf("GetByID: expected FailureInternal, got %v", kind)
	}
}

// failingApplicationRepo returns the same error from every operation.
type failingApplicationRepo struct {
	err error
}

func (r *failingApplicationRepo) GetAll(context.Context) ([]JobApplication, error) {
	return nil, r.err
}
func (r *failingApplicationRepo) GetByID(context.Context, int64) (*JobApplication, error) {
	return nil, r.err
}
func (r *failingApplicationRepo) Add(context.Context, *JobApplication) error { return r.err }
func (r *failingApplicationRepo) Delete(context.Context, int64) error        { return r.err }

func TestOfferLifecycle_CascadeScenario(t *testing.T) {
	store := NewMemoryStore()
	offerSvc := NewOfferService(store.Offers(), nil)
	appSvc := NewApplicationService(store.Applications(), store.Offers(), nil)
	ctx := context.Background()

	created := offerSvc.Add(ctx, CreateJobOffer{
		Title:        "Engineer X",
		Description:  "Build things",
		Location:     "Remote City",
		Salary:       50000,
		ContractType: "Full time",
	})
	if !created.IsSuccess || created.Data.ID <= 0 || created.Data.DatePosted.IsZero() {
		t.Fatalf("offer creation failed: %+v", created)
	}

	applied := appSvc.Add(ctx, CreateJobApplication{
		CandidateName:  "A B",
		CandidateEmail: "a@b.com",
		JobOfferID:     created.Data.ID,
	})
	if !applied.IsSuccess {
		t.Fatalf("application creation failed: %s", applied.Message)
	}

	deleted := offerSvc.Delete(ctx, created.Data.ID)
	if !deleted.IsSuccess {
		t.Fatalf("offer deletion failed: %s", deleted.Message)
	}

	// The application was cascaded away with its offer.
	gone := appSvc.GetByID(ctx, applied.Data.ID)
	if gone.IsSuccess {
		t.Error("expected application to be gone after offer deletion")
	}
	if gone.Kind() != FailureNotFound {
		t.Errorf("expected FailureNotFound, got %v", gone.Kind())
	}
}
