package intakesrvc

import (
	"context"
	"sort"

	"github.com/opsfront/intake-backend/intake"
)

// List returns every stored submission, most recent first. The staff
// credential is verified per request; listing is not a public operation.
func (s *IntakeSrvc) List(ctx context.Context, adminKey string) ([]intake.Submission, error) {
	if err := s.authorize(adminKey); err != nil {
		return nil, err
	}

	subms, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, ErrStoreUnavailable().SetDebug(err)
	}

	sort.Slice(subms, func(i, j int) bool {
		return subms[i].SubmittedAt.After(subms[j].SubmittedAt)
	})

	return subms, nil
}
