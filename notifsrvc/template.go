package notifsrvc

import (
	"fmt"
	"strings"
	"time"

	"github.com/opsfront/intake-backend/intake"
)

// Subject returns the notification subject line for a submission.
func Subject(subm intake.Submission) string {
	return fmt.Sprintf("New project inquiry from %s (%s)",
		subm.ContactInfo.Name, subm.ContactInfo.Company)
}

// Body formats a submission into the fixed plain-text notification
// message: contact block, project block, optional requirements block,
// then id and timestamp.
func Body(subm intake.Submission) string {
	var b strings.Builder

	b.WriteString("Contact\n")
	fmt.Fprintf(&b, "  Name:    %s\n", subm.ContactInfo.Name)
	fmt.Fprintf(&b, "  Email:   %s\n", subm.ContactInfo.Email)
	fmt.Fprintf(&b, "  Company: %s\n", subm.ContactInfo.Company)
	if subm.ContactInfo.Phone != "" {
		fmt.Fprintf(&b, "  Phone:   %s\n", subm.ContactInfo.Phone)
	}

	b.WriteString("\nProject\n")
	fmt.Fprintf(&b, "  Type:     %s\n", subm.ProjectDetails.ProjectType)
	fmt.Fprintf(&b, "  Timeline: %s\n", subm.ProjectDetails.Timeline)
	if subm.ProjectDetails.Budget != "" {
		fmt.Fprintf(&b, "  Budget:   %s\n", subm.ProjectDetails.Budget)
	}
	fmt.Fprintf(&b, "  Description: %s\n", subm.ProjectDetails.Description)

	if subm.ProjectDetails.Requirements != "" {
		b.WriteString("\nRequirements\n")
		fmt.Fprintf(&b, "  %s\n", subm.ProjectDetails.Requirements)
	}

	fmt.Fprintf(&b, "\nSubmission %s received at %s\n",
		subm.ID, subm.SubmittedAt.Format(time.RFC3339))

	return b.String()
}
