package intake_test

import (
	"testing"

	"github.com/opsfront/intake-backend/intake"
	"github.com/stretchr/testify/require"
)

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
		ProjectType: "System Architecture",
		Description: "Need help with scalable infrastructure",
		Timeline:    "3-6 months",
		Budget:      "$100k - $250k",
	}
}

func TestValidateRequiredFields(t *testing.T) {
	require.Nil(t, intake.Validate(validContact(), validProject()))

	tests := []struct {
		name   string
		mutate func(*intake.ContactInfo, *intake.ProjectDetails)
		field  string
	}{
		{"missing name", func(c *intake.ContactInfo, p *intake.ProjectDetails) { c.Name = "" }, "contactInfo.name"},
		{"blank name", func(c *intake.ContactInfo, p *intake.ProjectDetails) { c.Name = "   " }, "contactInfo.name"},
		{"missing email", func(c *intake.ContactInfo, p *intake.ProjectDetails) { c.Email = "" }, "contactInfo.email"},
		{"missing company", func(c *intake.ContactInfo, p *intake.ProjectDetails) { c.Company = "" }, "contactInfo.company"},
		{"missing project type", func(c *intake.ContactInfo, p *intake.ProjectDetails) { p.ProjectType = "" }, "projectDetails.projectType"},
		{"missing description", func(c *intake.ContactInfo, p *intake.ProjectDetails) { p.Description = "" }, "projectDetails.description"},
		{"missing timeline", func(c *intake.ContactInfo, p *intake.ProjectDetails) { p.Timeline = "" }, "projectDetails.timeline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contact := validContact()
			project := validProject()
			tt.mutate(&contact, &project)
			err := intake.Validate(contact, project)
			require.NotNil(t, err)
			require.Equal(t, tt.field, err.Field)
		})
	}
}

func TestValidateEmailShape(t *testing.T) {
	accepted := []string{"a@b.c", "john@example.com", "first.last@sub.domain.io", "weird+tag@host.x"}
	rejected := []string{"a@b", "ab.com", "@b.c", "a b@c.d", "a@b c.d"}

	for _, email := range accepted {
		contact := validContact()
		contact.Email = email
		require.Nil(t, intake.Validate(contact, validProject()), "expected %q to be accepted", email)
	}
	for _, email := range rejected {
		contact := validContact()
		contact.Email = email
		err := intake.Validate(contact, validProject())
		require.NotNil(t, err, "expected %q to be rejected", email)
		require.Equal(t, "contactInfo.email", err.Field)
	}
}

func TestStatusValid(t *testing.T) {
	require.True(t, intake.StatusNew.Valid())
	require.True(t, intake.StatusReviewed.Valid())
	require.True(t, intake.StatusResponded.Valid())
	require.False(t, intake.Status("archived").Valid())
	require.False(t, intake.Status("").Valid())
}
