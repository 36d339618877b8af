package notifsrvc_test

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/opsfront/intake-backend/intake"
	"github.com/opsfront/intake-backend/notifsrvc"
	"github.com/stretchr/testify/require"
)

func sampleSubm() intake.Submission {
	return intake.Submission{
		ID:          "0191a2b3-0000-7000-8000-0123456789ab",
		SubmittedAt: time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC),
		ContactInfo: intake.ContactInfo{
			Name:    "John Smith",
			Email:   "john@example.com",
			Company: "TechCorp",
			Phone:   "+1-555-0123",
		},
		ProjectDetails: intake.ProjectDetails{
			ProjectType:  "System Architecture",
			Description:  "Need help with scalable infrastructure",
			Timeline:     "3-6 months",
			Budget:       "$100k - $250k",
			Requirements: "AWS, Kubernetes",
		},
		Status: intake.StatusNew,
	}
}

func TestBodyContainsAllBlocks(t *testing.T) {
	body := notifsrvc.Body(sampleSubm())

	for _, want := range []string{
		"John Smith",
		"john@example.com",
		"TechCorp",
		"+1-555-0123",
		"System Architecture",
		"3-6 months",
		"$100k - $250k",
		"Need help with scalable infrastructure",
		"AWS, Kubernetes",
		"0191a2b3-0000-7000-8000-0123456789ab",
		"2025-03-14T09:26:53Z",
	} {
		require.Contains(t, body, want)
	}
}

func TestBodyOmitsEmptyOptionalBlocks(t *testing.T) {
	subm := sampleSubm()
	subm.ContactInfo.Phone = ""
	subm.ProjectDetails.Budget = ""
	subm.ProjectDetails.Requirements = ""

	body := notifsrvc.Body(subm)
	require.NotContains(t, body, "Phone:")
	require.NotContains(t, body, "Budget:")
	require.NotContains(t, body, "Requirements")
}

func TestSubject(t *testing.T) {
	subject := notifsrvc.Subject(sampleSubm())
	require.Contains(t, subject, "John Smith")
	require.Contains(t, subject, "TechCorp")
}

func TestSmtpSenderBuildsMessage(t *testing.T) {
	sender := notifsrvc.NewSmtpSender("mail.example.com", 587,
		"intake", "hunter2", "intake@example.com", "staff@example.com")

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	sender.SetSendFunc(func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr = addr
		gotFrom = from
		gotTo = to
		gotMsg = msg
		return nil
	})

	err := sender.Send(context.Background(), sampleSubm())
	require.NoError(t, err)
	require.Equal(t, "mail.example.com:587", gotAddr)
	require.Equal(t, "intake@example.com", gotFrom)
	require.Equal(t, []string{"staff@example.com"}, gotTo)
	require.True(t, strings.Contains(string(gotMsg), "Subject: New project inquiry from John Smith (TechCorp)"))
	require.True(t, strings.Contains(string(gotMsg), "TechCorp"))
}

func TestSmtpSenderWrapsDeliveryError(t *testing.T) {
	sender := notifsrvc.NewSmtpSender("mail.example.com", 587,
		"", "", "intake@example.com", "staff@example.com")
	sender.SetSendFunc(func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		return errors.New("connection refused")
	})

	err := sender.Send(context.Background(), sampleSubm())
	require.Error(t, err)
	require.Contains(t, err.Error(), "mail.example.com:587")
}
