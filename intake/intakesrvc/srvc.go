package intakesrvc

import (
	"context"
	"crypto/subtle"

	"github.com/opsfront/intake-backend/intake"
	"github.com/opsfront/intake-backend/notifsrvc"
)

// SubmRepo is the key-value persistence contract for submissions. Put
// overwrites the record under its id (last-writer-wins); GetAll returns
// every stored record in unspecified order, callers sort explicitly.
type SubmRepo interface {
	Put(ctx context.Context, subm intake.Submission) error
	GetAll(ctx context.Context) ([]intake.Submission, error)
}

type IntakeSrvc struct {
	repo     SubmRepo
	sender   notifsrvc.Sender
	adminKey string
}

func NewIntakeSrvc(repo SubmRepo, sender notifsrvc.Sender, adminKey string) *IntakeSrvc {
	return &IntakeSrvc{
		repo:     repo,
		sender:   sender,
		adminKey: adminKey,
	}
}

// authorize verifies the staff credential presented with a request. An
// unset server-side key rejects everything rather than opening the list
// to the world.
func (s *IntakeSrvc) authorize(presentedKey string) error {
	if s.adminKey == "" || presentedKey == "" {
		return ErrUnauthorized()
	}
	if subtle.ConstantTimeCompare([]byte(s.adminKey), []byte(presentedKey)) != 1 {
		return ErrUnauthorized()
	}
	return nil
}
