package studentinfra

import (
	"context"
	"sync"
	"time"

	"github.com/shaheed425/jobsy/pkg/kernel"
	"github.com/shaheed425/jobsy/placement/student"
)

// MemoryStudentRepository implements student.Repository in memory.
// Used by tests and local development without a database.
type MemoryStudentRepository struct {
	mu       sync.RWMutex
	students map[int64]*student.Student
	nextID   int64
}

// NewMemoryStudentRepository creates a new in-memory student repository
func NewMemoryStudentRepository() *MemoryStudentRepository {
	return &MemoryStudentRepository{
		students: make(map[int64]*student.Student),
		nextID:   1,
	}
}

func (r *MemoryStudentRepository) Create(ctx context.Context, s *student.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	s.ID = kernel.NewStudentID(r.nextID)
	s.CreatedAt = now
	s.UpdatedAt = now
	r.nextID++

	stored := *s
	r.students[s.ID.Int64()] = &stored
	return nil
}

func (r *MemoryStudentRepository) Update(ctx context.Context, id kernel.StudentID, s *student.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.students[id.Int64()]; !ok {
		return student.ErrStudentNotFound()
	}

	stored := *s
	stored.ID = id
	r.students[id.Int64()] = &stored
	return nil
}

func (r *MemoryStudentRepository) GetByID(ctx context.Context, id kernel.StudentID) (*student.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.students[id.Int64()]
	if !ok {
		return nil, student.ErrStudentNotFound()
	}

	out := *s
	return &out, nil
}

func (r *MemoryStudentRepository) List(ctx context.Context) ([]*student.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*student.Student, 0, len(r.students))
	for id := int64(1); id < r.nextID; id++ {
		if s, ok := r.students[id]; ok {
			copied := *s
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *MemoryStudentRepository) Exists(ctx context.Context, id kernel.StudentID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.students[id.Int64()]
	return ok, nil
}
