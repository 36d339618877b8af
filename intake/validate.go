package intake

import (
	"fmt"
	"regexp"
	"strings"
)

// Deliberately lenient: an address counts as valid if it has something
// before the "@" and a "." somewhere after it. RFC-complete validation
// rejects too many real addresses.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldError reports which submission field failed validation and why.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Validate checks the required fields of a submission request. Phone,
// budget and requirements are optional and never block creation.
func Validate(contact ContactInfo, project ProjectDetails) *FieldError {
	if strings.TrimSpace(contact.Name) == "" {
		return &FieldError{Field: "contactInfo.name", Reason: "name is required"}
	}
	if strings.TrimSpace(contact.Email) == "" {
		return &FieldError{Field: "contactInfo.email", Reason: "email is required"}
	}
	if !emailShape.MatchString(contact.Email) {
		return &FieldError{Field: "contactInfo.email", Reason: "email address is malformed"}
	}
	if strings.TrimSpace(contact.Company) == "" {
		return &FieldError{Field: "contactInfo.company", Reason: "company is required"}
	}
	if strings.TrimSpace(project.ProjectType) == "" {
		return &FieldError{Field: "projectDetails.projectType", Reason: "project type is required"}
	}
	if strings.TrimSpace(project.Description) == "" {
		return &FieldError{Field: "projectDetails.description", Reason: "description is required"}
	}
	if strings.TrimSpace(project.Timeline) == "" {
		return &FieldError{Field: "projectDetails.timeline", Reason: "timeline is required"}
	}
	return nil
}
