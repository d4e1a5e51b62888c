package jobinfra

import (
	"context"
	"sync"

	"github.com/shaheed425/jobsy/pkg/kernel"
	"github.com/shaheed425/jobsy/placement/job"
)

// MemoryJobRepository implements job.Repository in memory
type MemoryJobRepository struct {
	mu     sync.RWMutex
	jobs   map[int64]*job.Job
	nextID int64
}

// NewMemoryJobRepository creates a new in-memory job repository
func NewMemoryJobRepository() *MemoryJobRepository {
	return &MemoryJobRepository{
		jobs:   make(map[int64]*job.Job),
		nextID: 1,
	}
}

func (r *MemoryJobRepository) Create(ctx context.Context, j *job.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	j.ID = kernel.NewJobID(r.nextID)
	r.nextID++

	stored := *j
	r.jobs[j.ID.Int64()] = &stored
	return nil
}

func (r *MemoryJobRepository) Update(ctx context.Context, id kernel.JobID, j *job.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.jobs[id.Int64()]; !ok {
		return job.ErrJobNotFound()
	}

	stored := *j
	stored.ID = id
	r.jobs[id.Int64()] = &stored
	return nil
}

func (r *MemoryJobRepository) GetByID(ctx context.Context, id kernel.JobID) (*job.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	j, ok := r.jobs[id.Int64()]
	if !ok {
		return nil, job.ErrJobNotFound()
	}

	out := *j
	return &out, nil
}

func (r *MemoryJobRepository) List(ctx context.Context) ([]*job.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*job.Job, 0, len(r.jobs))
	for id := int64(1); id < r.nextID; id++ {
		if j, ok := r.jobs[id]; ok {
			copied := *j
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *MemoryJobRepository) ListByEmployer(ctx context.Context, employerID kernel.EmployerID) ([]*job.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*job.Job, 0)
	for id := int64(1); id < r.nextID; id++ {
		if j, ok := r.jobs[id]; ok && j.CompanyID == employerID {
			copied := *j
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *MemoryJobRepository) Exists(ctx context.Context, id kernel.JobID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.jobs[id.Int64()]
	return ok, nil
}
