package intake

import "time"

// Status is the triage state of a submission. Staff may move a submission
// between any two states; none of them is terminal.
type Status string

const (
	StatusNew       Status = "new"
	StatusReviewed  Status = "reviewed"
	StatusResponded Status = "responded"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusReviewed, StatusResponded:
		return true
	}
	return false
}

type ContactInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Phone   string `json:"phone,omitempty"`
}

type ProjectDetails struct {
	ProjectType  string `json:"projectType"`
	Description  string `json:"description"`
	Timeline     string `json:"timeline"`
	Budget       string `json:"budget,omitempty"`
	Requirements string `json:"requirements,omitempty"`
}

// Submission is one completed contact/project inquiry record. ID and
// SubmittedAt are assigned by the service, never by the client.
type Submission struct {
	ID             string         `json:"id"`
	SubmittedAt    time.Time      `json:"timestamp"`
	ContactInfo    ContactInfo    `json:"contactInfo"`
	ProjectDetails ProjectDetails `json:"projectDetails"`
	Status         Status         `json:"status"`
	Notes          string         `json:"notes,omitempty"`
}

// ProjectTypes is the fixed set of engagement types offered on the intake
// form.
var ProjectTypes = []string{
	"System Architecture",
	"Data Infrastructure",
	"Machine Learning Operations",
	"Performance Analysis",
	"Cloud Migration",
	"Security Assessment",
	"Custom Solution",
}

// Timelines is the fixed set of engagement timelines.
var Timelines = []string{
	"1-2 months",
	"3-6 months",
	"6-12 months",
	"12+ months",
	"Ongoing engagement",
}
