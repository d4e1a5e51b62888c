package employerinfra

import (
	"context"
	"sync"
	"time"

	"github.com/shaheed425/jobsy/pkg/kernel"
	"github.com/shaheed425/jobsy/placement/employer"
)

// MemoryEmployerRepository implements employer.Repository in memory
type MemoryEmployerRepository struct {
	mu        sync.RWMutex
	employers map[int64]*employer.Employer
	nextID    int64
}

// NewMemoryEmployerRepository creates a new in-memory employer repository
func NewMemoryEmployerRepository() *MemoryEmployerRepository {
	return &MemoryEmployerRepository{
		employers: make(map[int64]*employer.Employer),
		nextID:    1,
	}
}

func (r *MemoryEmployerRepository) Create(ctx context.Context, e *employer.Employer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	e.ID = kernel.NewEmployerID(r.nextID)
	e.CreatedAt = now
	e.UpdatedAt = now
	r.nextID++

	stored := *e
	r.employers[e.ID.Int64()] = &stored
	return nil
}

func (r *MemoryEmployerRepository) Update(ctx context.Context, id kernel.EmployerID, e *employer.Employer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.employers[id.Int64()]; !ok {
		return employer.ErrEmployerNotFound()
	}

	stored := *e
	stored.ID = id
	r.employers[id.Int64()] = &stored
	return nil
}

func (r *MemoryEmployerRepository) GetByID(ctx context.Context, id kernel.EmployerID) (*employer.Employer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.employers[id.Int64()]
	if !ok {
		return nil, employer.ErrEmployerNotFound()
	}

	out := *e
	return &out, nil
}

func (r *MemoryEmployerRepository) List(ctx context.Context) ([]*employer.Employer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*employer.Employer, 0, len(r.employers))
	for id := int64(1); id < r.nextID; id++ {
		if e, ok := r.employers[id]; ok {
			copied := *e
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *MemoryEmployerRepository) Exists(ctx context.Context, id kernel.EmployerID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.employers[id.Int64()]
	return ok, nil
}
