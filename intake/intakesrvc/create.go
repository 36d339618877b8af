package intakesrvc

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/opsfront/intake-backend/intake"
	"github.com/opsfront/intake-backend/logger"
)

// Create validates a submission request, assigns it an id and timestamp,
// persists it and fires a best-effort notification. The service clock is
// authoritative; id, timestamp and status are never client-supplied.
func (s *IntakeSrvc) Create(ctx context.Context,
	contact intake.ContactInfo, project intake.ProjectDetails,
) (*intake.Submission, error) {
	if fieldErr := intake.Validate(contact, project); fieldErr != nil {
		return nil, ErrValidation(fieldErr.Field, fieldErr.Reason)
	}

	// UUIDv7: millisecond time prefix plus random bits, so ids sort
	// roughly by creation order and stay distinct within the same
	// millisecond.
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate submission id: %w", err)
	}

	subm := intake.Submission{
		ID:             id.String(),
		SubmittedAt:    time.Now().UTC(),
		ContactInfo:    contact,
		ProjectDetails: project,
		Status:         intake.StatusNew,
	}

	if err := s.repo.Put(ctx, subm); err != nil {
		return nil, ErrStoreUnavailable().SetDebug(err)
	}

	// Notification failure never reverses or fails the creation.
	if err := s.sender.Send(ctx, subm); err != nil {
		logger.FromContext(ctx).Warn("failed to send submission notification",
			"subm_id", subm.ID, "error", err)
	}

	return &subm, nil
}
