package jobboard

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory implementation of both repositories backed by
// a single mutex so that offer deletion can cascade to applications
// atomically. Suitable for development and testing; the SQLite store is the
// production backend.
type MemoryStore struct {
	mu          sync.RWMutex
	offers      map[int64]*JobOffer
	apps        map[int64]*JobApplication
	nextOfferID int64
	nextAppID   int64
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		offers: make(map[int64]*JobOffer),
		apps:   make(map[int64]*JobApplication),
	}
}

// Offers returns the store's OfferRepository view.
func (m *MemoryStore) Offers() OfferRepository {
	return &memoryOfferRepo{store: m}
}

// Applications returns the store's ApplicationRepository view.
func (m *MemoryStore) Applications() ApplicationRepository {
	return &memoryApplicationRepo{store: m}
}

// Compile-time checks that the views implement the repository ports.
var (
	_ OfferRepository       = (*memoryOfferRepo)(nil)
	_ ApplicationRepository = (*memoryApplicationRepo)(nil)
)

type memoryOfferRepo struct {
	store *MemoryStore
}

func (r *memoryOfferRepo) GetAll(_ context.Context) ([]JobOffer, error) {
	m := r.store
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]JobOffer, 0, len(m.offers))
	for _, o := range m.offers {
		out = append(out, *o)
	}
	return out, nil
}

func (r *memoryOfferRepo) GetByID(_ context.Context, id int64) (*JobOffer, error) {
	m := r.store
	m.mu.RLock()
	defer m.mu.RUnlock()

	o, ok := m.offers[id]
	if !ok {
		return nil, nil
	}
	clone := *o
	return &clone, nil
}

func (r *memoryOfferRepo) GetWithApplications(_ context.Context, id int64) (*JobOffer, error) {
	m := r.store
	m.mu.RLock()
	defer m.mu.RUnlock()

	o, ok := m.offers[id]
	if !ok {
		return nil, nil
	}
	clone := *o
	clone.Applications = make([]JobApplication, 0)
	for _, a := range m.apps {
		if a.JobOfferID == id {
			clone.Applications = append(clone.Applications, *a)
		}
	}
	return &clone, nil
}

func (r *memoryOfferRepo) Add(_ context.Context, offer *JobOffer) error {
	m := r.store
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextOfferID++
	offer.ID = m.nextOfferID
	clone := *offer
	m.offers[offer.ID] = &clone
	return nil
}

func (r *memoryOfferRepo) Update(_ context.Context, offer *JobOffer) error {
	m := r.store
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.offers[offer.ID]
	if !ok {
		return ErrNotFound
	}
	existing.Title = offer.Title
	existing.Description = offer.Description
	existing.Location = offer.Location
	existing.Salary = offer.Salary
	existing.ContractType = offer.ContractType
	return nil
}

func (r *memoryOfferRepo) Delete(_ context.Context, id int64) error {
	m := r.store
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.offers[id]; !ok {
		return nil
	}
	delete(m.offers, id)
	// Cascade, mirroring the SQLite ON DELETE CASCADE behavior.
	for appID, a := range m.apps {
		if a.JobOfferID == id {
			delete(m.apps, appID)
		}
	}
	return nil
}

type memoryApplicationRepo struct {
	store *MemoryStore
}

func (r *memoryApplicationRepo) GetAll(_ context.Context) ([]JobApplication, error) {
	m := r.store
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]JobApplication, 0, len(m.apps))
	for _, a := range m.apps {
		out = append(out, *a)
	}
	return out, nil
}

func (r *memoryApplicationRepo) GetByID(_ context.Context, id int64) (*JobApplication, error) {
	m := r.store
	m.mu.RLock()
	defer m.mu.RUnlock()

	a, ok := m.apps[id]
	if !ok {
		return nil, nil
	}
	clone := *a
	return &clone, nil
}

func (r *memoryApplicationRepo) Add(_ context.Context, app *JobApplication) error {
	m := r.store
	m.mu.Lock()
	defer m.mu.Unlock()

	// Enforce the foreign key the way the SQLite store does.
	if _, ok := m.offers[app.JobOfferID]; !ok {
		return ErrOfferMissing
	}

	m.nextAppID++
	app.ID = m.nextAppID
	clone := *app
	m.apps[app.ID] = &clone
	return nil
}

func (r *memoryApplicationRepo) Delete(_ context.Context, id int64) error {
	m := r.store
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.apps, id)
	return nil
}
