package intakesrvc_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/opsfront/intake-backend/intake"
	"github.com/opsfront/intake-backend/intake/intakesrvc"
	"github.com/stretchr/testify/require"
)

const testAdminKey = "staff-key-for-tests"

// senderMock records notifications and optionally fails delivery.
type senderMock struct {
	sent    []intake.Submission
	sendErr error
}

func (m *senderMock) Send(ctx context.Context, subm intake.Submission) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, subm)
	return nil
}

// failingRepo simulates an unreachable backing store.
type failingRepo struct{}

func (failingRepo) Put(ctx context.Context, subm intake.Submission) error {
	return errors.New("connection timed out")
}

func (failingRepo) GetAll(ctx context.Context) ([]intake.Submission, error) {
	return nil, errors.New("connection timed out")
}

func validContact() intake.ContactInfo {
	return intake.ContactInfo{
		Name:    "John Smith",
		Email:   "john@example.com",
		Company: "TechCorp",
		Phone:   "+1-555-0123",
	}
}

func validProject() intake.ProjectDetails {
	return intake.ProjectDetails{
		ProjectType:  "System Architecture",
		Description:  "Need help with scalable infrastructure",
		Timeline:     "3-6 months",
		Budget:       "$100k - $250k",
		Requirements: "AWS, Kubernetes",
	}
}

func newSrvc(t *testing.T) (*intakesrvc.IntakeSrvc, *intakesrvc.InMemRepo, *senderMock) {
	t.Helper()
	repo := intakesrvc.NewInMemRepo()
	sender := &senderMock{}
	srvc := intakesrvc.NewIntakeSrvc(repo, sender, testAdminKey)
	return srvc, repo, sender
}

func TestCreateAssignsIdTimestampAndStatus(t *testing.T) {
	srvc, _, sender := newSrvc(t)
	bg := context.Background()

	before := time.Now().UTC()
	subm, err := srvc.Create(bg, validContact(), validProject())
	after := time.Now().UTC()

	require.NoError(t, err)
	require.NotEmpty(t, subm.ID)
	require.Equal(t, intake.StatusNew, subm.Status)
	require.False(t, subm.SubmittedAt.Before(before))
	require.False(t, subm.SubmittedAt.After(after))
	require.Equal(t, validContact(), subm.ContactInfo)
	require.Equal(t, validProject(), subm.ProjectDetails)

	require.Len(t, sender.sent, 1)
	require.Equal(t, subm.ID, sender.sent[0].ID)

	listed, err := srvc.List(bg, testAdminKey)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, *subm, listed[0])
}

func TestCreateIdsDistinctInImmediateSuccession(t *testing.T) {
	srvc, _, _ := newSrvc(t)
	bg := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		subm, err := srvc.Create(bg, validContact(), validProject())
		require.NoError(t, err)
		require.False(t, seen[subm.ID], "duplicate id %s", subm.ID)
		seen[subm.ID] = true
	}
}

func TestCreateRejectsMissingFieldsWithoutWrite(t *testing.T) {
	srvc, _, sender := newSrvc(t)
	bg := context.Background()

	contact := validContact()
	contact.Company = ""
	_, err := srvc.Create(bg, contact, validProject())
	require.Error(t, err)
	require.Contains(t, err.Error(), "contactInfo.company")

	project := validProject()
	project.Timeline = ""
	_, err = srvc.Create(bg, validContact(), project)
	require.Error(t, err)
	require.Contains(t, err.Error(), "projectDetails.timeline")

	require.Empty(t, sender.sent, "no notification without a created record")

	listed, err := srvc.List(bg, testAdminKey)
	require.NoError(t, err)
	require.Empty(t, listed, "rejected requests must leave no record")
}

func TestCreateSucceedsWhenNotificationFails(t *testing.T) {
	repo := intakesrvc.NewInMemRepo()
	sender := &senderMock{sendErr: errors.New("relay unreachable")}
	srvc := intakesrvc.NewIntakeSrvc(repo, sender, testAdminKey)
	bg := context.Background()

	subm, err := srvc.Create(bg, validContact(), validProject())
	require.NoError(t, err)

	listed, err := srvc.List(bg, testAdminKey)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, subm.ID, listed[0].ID)
}

func TestCreateFailsWhenStoreUnavailable(t *testing.T) {
	sender := &senderMock{}
	srvc := intakesrvc.NewIntakeSrvc(failingRepo{}, sender, testAdminKey)

	_, err := srvc.Create(context.Background(), validContact(), validProject())
	require.Error(t, err)
	require.Empty(t, sender.sent, "no notification for a failed write")
}

func TestListOrdersNewestFirst(t *testing.T) {
	srvc, repo, _ := newSrvc(t)
	bg := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"subm-a", "subm-b", "subm-c", "subm-d"} {
		err := repo.Put(bg, intake.Submission{
			ID:             id,
			SubmittedAt:    base.Add(time.Duration(i) * time.Minute),
			ContactInfo:    validContact(),
			ProjectDetails: validProject(),
			Status:         intake.StatusNew,
		})
		require.NoError(t, err)
	}

	listed, err := srvc.List(bg, testAdminKey)
	require.NoError(t, err)
	require.Len(t, listed, 4)
	for i := 1; i < len(listed); i++ {
		require.False(t, listed[i-1].SubmittedAt.Before(listed[i].SubmittedAt),
			"timestamps must be non-increasing")
	}
	require.Equal(t, "subm-d", listed[0].ID)
}

func TestListRequiresAdminKey(t *testing.T) {
	srvc, _, _ := newSrvc(t)
	bg := context.Background()

	_, err := srvc.List(bg, "")
	require.Error(t, err)

	_, err = srvc.List(bg, "wrong-key")
	require.Error(t, err)

	_, err = srvc.List(bg, testAdminKey)
	require.NoError(t, err)
}

func TestListRejectsEverythingWhenKeyUnset(t *testing.T) {
	srvc := intakesrvc.NewIntakeSrvc(intakesrvc.NewInMemRepo(), &senderMock{}, "")
	_, err := srvc.List(context.Background(), "")
	require.Error(t, err)
}

func TestUpdatePersistsStatusAndNotes(t *testing.T) {
	srvc, _, _ := newSrvc(t)
	bg := context.Background()

	subm, err := srvc.Create(bg, validContact(), validProject())
	require.NoError(t, err)

	updated, err := srvc.Update(bg, testAdminKey, intakesrvc.UpdateParams{
		ID:     subm.ID,
		Status: intake.StatusReviewed,
		Notes:  "follow up next week",
	})
	require.NoError(t, err)
	require.Equal(t, intake.StatusReviewed, updated.Status)
	require.Equal(t, "follow up next week", updated.Notes)

	listed, err := srvc.List(bg, testAdminKey)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, intake.StatusReviewed, listed[0].Status)
	require.Equal(t, "follow up next week", listed[0].Notes)

	// staff may move a submission backward
	updated, err = srvc.Update(bg, testAdminKey, intakesrvc.UpdateParams{
		ID:     subm.ID,
		Status: intake.StatusNew,
	})
	require.NoError(t, err)
	require.Equal(t, intake.StatusNew, updated.Status)
}

func TestUpdateUnknownIdAndStatus(t *testing.T) {
	srvc, _, _ := newSrvc(t)
	bg := context.Background()

	_, err := srvc.Update(bg, testAdminKey, intakesrvc.UpdateParams{
		ID:     "missing",
		Status: intake.StatusReviewed,
	})
	require.Error(t, err)

	subm, err := srvc.Create(bg, validContact(), validProject())
	require.NoError(t, err)

	_, err = srvc.Update(bg, testAdminKey, intakesrvc.UpdateParams{
		ID:     subm.ID,
		Status: intake.Status("archived"),
	})
	require.Error(t, err)

	_, err = srvc.Update(bg, "wrong-key", intakesrvc.UpdateParams{
		ID:     subm.ID,
		Status: intake.StatusReviewed,
	})
	require.Error(t, err)
}
