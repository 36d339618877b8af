package intakesrvc

import (
	"context"
	"sync"

	"github.com/opsfront/intake-backend/intake"
)

// InMemRepo keeps submissions in a process-local map. Used in tests and
// for local development without AWS credentials.
type InMemRepo struct {
	mu    sync.RWMutex
	subms map[string]intake.Submission
}

func NewInMemRepo() *InMemRepo {
	return &InMemRepo{
		subms: make(map[string]intake.Submission),
	}
}

// Put implements SubmRepo
func (r *InMemRepo) Put(ctx context.Context, subm intake.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subms[subm.ID] = subm
	return nil
}

// GetAll implements SubmRepo
func (r *InMemRepo) GetAll(ctx context.Context) ([]intake.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	subms := make([]intake.Submission, 0, len(r.subms))
	for _, subm := range r.subms {
		subms = append(subms, subm)
	}
	return subms, nil
}
