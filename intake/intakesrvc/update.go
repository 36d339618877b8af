package intakesrvc

import (
	"context"

	"github.com/opsfront/intake-backend/intake"
)

type UpdateParams struct {
	ID     string
	Status intake.Status
	Notes  string
}

// Update durably applies a staff triage edit as a full-record overwrite
// keyed by the existing id. Transitions are any-to-any; staff may move a
// submission backward.
func (s *IntakeSrvc) Update(ctx context.Context, adminKey string, params UpdateParams) (*intake.Submission, error) {
	if err := s.authorize(adminKey); err != nil {
		return nil, err
	}
	if !params.Status.Valid() {
		return nil, ErrInvalidStatus(string(params.Status))
	}

	subms, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, ErrStoreUnavailable().SetDebug(err)
	}

	for _, subm := range subms {
		if subm.ID != params.ID {
			continue
		}
		subm.Status = params.Status
		subm.Notes = params.Notes
		if err := s.repo.Put(ctx, subm); err != nil {
			return nil, ErrStoreUnavailable().SetDebug(err)
		}
		return &subm, nil
	}

	return nil, ErrSubmissionNotFound()
}
