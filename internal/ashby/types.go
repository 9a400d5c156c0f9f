package ashby

import (
	"encoding/json"
	"strings"
	"time"
)

// envelope is the common Ashby response wrapper. Success is a pointer because
// an absent flag means success.
type envelope struct {
	Success           *bool           `json:"success"`
	Results           json.RawMessage `json:"results"`
	MoreDataAvailable bool            `json:"moreDataAvailable"`
	NextCursor        string          `json:"nextCursor"`
	ErrorInfo         json.RawMessage `json:"errorInfo"`
	Errors            []string        `json:"errors"`
}

// Page is one decoded response from a paginated endpoint
type Page struct {
	Records       []json.RawMessage
	MoreAvailable bool
	NextCursor    string
}

// ApplicationSummary is an entry of /application.list
type ApplicationSummary struct {
	ID string `json:"id"`
}

func (a ApplicationSummary) externalID() string { return a.ID }

// Stage is an interview stage reference
type Stage struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ContactInfo is an email address or phone number entry
type ContactInfo struct {
	Value string `json:"value"`
	Type  string `json:"type,omitempty"`
}

// CandidateRef is the candidate embedded in an application
type CandidateRef struct {
	ID                  string       `json:"id"`
	Name                string       `json:"name"`
	Email               string       `json:"email,omitempty"`
	PrimaryEmailAddress *ContactInfo `json:"primaryEmailAddress,omitempty"`
	Phone               string       `json:"phone,omitempty"`
	PrimaryPhoneNumber  *ContactInfo `json:"primaryPhoneNumber,omitempty"`
	Status              string       `json:"status,omitempty"`
	ResumeURL           string       `json:"resumeUrl,omitempty"`
}

// GetEmail returns the flat email field, falling back to the primary address
func (c *CandidateRef) GetEmail() string {
	if c.Email != "" {
		return c.Email
	}
	if c.PrimaryEmailAddress != nil {
		return c.PrimaryEmailAddress.Value
	}
	return ""
}

// GetPhone returns the flat phone field, falling back to the primary number
func (c *CandidateRef) GetPhone() string {
	if c.Phone != "" {
		return c.Phone
	}
	if c.PrimaryPhoneNumber != nil {
		return c.PrimaryPhoneNumber.Value
	}
	return ""
}

// Application is the detail record returned by /application.info and carried
// by candidate.stage.change webhooks
type Application struct {
	ID             string        `json:"id"`
	Status         string        `json:"status,omitempty"`
	JobID          string        `json:"jobId,omitempty"`
	CurrentStageID string        `json:"currentStageId,omitempty"`
	CurrentStage   *Stage        `json:"currentStage,omitempty"`
	Candidate      *CandidateRef `json:"candidate,omitempty"`
}

func (a Application) externalID() string { return a.ID }

// StageTitle returns the current stage title, or "" when unknown
func (a *Application) StageTitle() string {
	if a == nil || a.CurrentStage == nil {
		return ""
	}
	return a.CurrentStage.Title
}

// User is the interviewer who submitted feedback
type User struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
}

// DisplayName returns Name, or the joined first and last names
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.Name != "" {
		return u.Name
	}
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Feedback is an interview feedback submission
type Feedback struct {
	ID                    string `json:"id"`
	ApplicationID         string `json:"applicationId,omitempty"`
	CandidateID           string `json:"candidateId,omitempty"`
	SubmittedBy           *User  `json:"submittedBy,omitempty"`
	Feedback              string `json:"feedback,omitempty"`
	OverallRecommendation string `json:"overallRecommendation,omitempty"`
	SubmittedAt           string `json:"submittedAt,omitempty"`
}

func (f Feedback) externalID() string { return f.ID }

// SubmittedTime parses SubmittedAt as RFC 3339. It returns nil when the
// value is empty or unparseable.
func (f *Feedback) SubmittedTime() *time.Time {
	if f.SubmittedAt == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, f.SubmittedAt)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}
