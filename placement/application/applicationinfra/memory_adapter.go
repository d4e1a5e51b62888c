package applicationinfra

import (
	"context"
	"sync"

	"github.com/shaheed425/jobsy/pkg/kernel"
	"github.com/shaheed425/jobsy/placement/application"
)

// MemoryApplicationRepository implements application.Repository in memory
type MemoryApplicationRepository struct {
	mu           sync.RWMutex
	applications map[int64]*application.Application
	nextID       int64
}

// NewMemoryApplicationRepository creates a new in-memory application repository
func NewMemoryApplicationRepository() *MemoryApplicationRepository {
	return &MemoryApplicationRepository{
		applications: make(map[int64]*application.Application),
		nextID:       1,
	}
}

func (r *MemoryApplicationRepository) Create(ctx context.Context, a *application.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.applications {
		if existing.StudentID == a.StudentID && existing.JobID == a.JobID {
			return application.ErrDuplicateApplication()
		}
	}

	a.ID = kernel.NewApplicationID(r.nextID)
	r.nextID++

	stored := *a
	r.applications[a.ID.Int64()] = &stored
	return nil
}

func (r *MemoryApplicationRepository) Update(ctx context.Context, id kernel.ApplicationID, a *application.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.applications[id.Int64()]; !ok {
		return application.ErrApplicationNotFound()
	}

	stored := *a
	stored.ID = id
	r.applications[id.Int64()] = &stored
	return nil
}

func (r *MemoryApplicationRepository) GetByID(ctx context.Context, id kernel.ApplicationID) (*application.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.applications[id.Int64()]
	if !ok {
		return nil, application.ErrApplicationNotFound()
	}

	out := *a
	return &out, nil
}

func (r *MemoryApplicationRepository) List(ctx context.Context) ([]*application.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(*application.Application) bool { return true }), nil
}

func (r *MemoryApplicationRepository) ListByStudent(ctx context.Context, studentID kernel.StudentID) ([]*application.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(a *application.Application) bool { return a.StudentID == studentID }), nil
}

func (r *MemoryApplicationRepository) ListByJob(ctx context.Context, jobID kernel.JobID) ([]*application.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(a *application.Application) bool { return a.JobID == jobID }), nil
}

func (r *MemoryApplicationRepository) ExistsByStudentAndJob(ctx context.Context, studentID kernel.StudentID, jobID kernel.JobID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.applications {
		if a.StudentID == studentID && a.JobID == jobID {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryApplicationRepository) CountByJob(ctx context.Context, jobID kernel.JobID) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, a := range r.applications {
		if a.JobID == jobID {
			count++
		}
	}
	return count, nil
}

// collect returns copies in insertion (ID) order; callers hold the lock
func (r *MemoryApplicationRepository) collect(match func(*application.Application) bool) []*application.Application {
	out := make([]*application.Application, 0)
	for id := int64(1); id < r.nextID; id++ {
		if a, ok := r.applications[id]; ok && match(a) {
			copied := *a
			out = append(out, &copied)
		}
	}
	return out
}
