package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CandidateSummary is the list representation of a candidate
type CandidateSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CandidateDetail is a candidate with everything mirrored for it
type CandidateDetail struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Email        string        `json:"email,omitempty"`
	Phone        string        `json:"phone,omitempty"`
	Status       string        `json:"status,omitempty"`
	ResumeURL    string        `json:"resume_url,omitempty"`
	UpdatedAt    time.Time     `json:"updated_at"`
	Applications []Application `json:"applications"`
	Feedback     []Feedback    `json:"feedback"`
}

// Application is one mirrored application of a candidate
type Application struct {
	ID               string    `json:"id"`
	JobID            string    `json:"job_id,omitempty"`
	Status           string    `json:"status,omitempty"`
	CurrentStageID   string    `json:"current_stage_id,omitempty"`
	CurrentStageName string    `json:"current_stage_name,omitempty"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Feedback is one mirrored interview feedback submission
type Feedback struct {
	ID                    string     `json:"id"`
	ApplicationID         string     `json:"application_id"`
	InterviewerName       string     `json:"interviewer_name,omitempty"`
	InterviewerEmail      string     `json:"interviewer_email,omitempty"`
	FeedbackText          string     `json:"feedback_text,omitempty"`
	OverallRecommendation string     `json:"overall_recommendation,omitempty"`
	SubmittedAt           *time.Time `json:"submitted_at,omitempty"`
}

// PolicyRequest describes the HR policy to draft
type PolicyRequest struct {
	Business            string `json:"business"`
	PolicyType          string `json:"policyType"`
	TargetAudience      string `json:"targetAudience,omitempty"`
	EffectiveDate       string `json:"effectiveDate,omitempty"`
	ReviewCycle         string `json:"reviewCycle,omitempty"`
	LegalConsiderations string `json:"legalConsiderations,omitempty"`
	AdditionalContext   string `json:"additionalContext,omitempty"`
}

// Validate checks the required fields
func (r PolicyRequest) Validate() error {
	return requireFields(
		field{"business", r.Business},
		field{"policyType", r.PolicyType},
	)
}

// RefinePolicyRequest carries a draft and the feedback to address
type RefinePolicyRequest struct {
	CurrentDraft string `json:"currentDraft"`
	Feedback     string `json:"feedback"`
}

// Validate checks the required fields
func (r RefinePolicyRequest) Validate() error {
	return requireFields(
		field{"currentDraft", r.CurrentDraft},
		field{"feedback", r.Feedback},
	)
}

// PolicyVersion is a saved policy draft
type PolicyVersion struct {
	ID                  uuid.UUID `json:"id"`
	Business            string    `json:"business"`
	PolicyType          string    `json:"policy_type"`
	TargetAudience      string    `json:"target_audience,omitempty"`
	EffectiveDate       string    `json:"effective_date,omitempty"`
	ReviewCycle         string    `json:"review_cycle,omitempty"`
	LegalConsiderations string    `json:"legal_considerations,omitempty"`
	AdditionalContext   string    `json:"additional_context,omitempty"`
	DraftContent        string    `json:"draft_content"`
	CreatedAt           time.Time `json:"created_at"`
}

// Validate checks the required fields
func (v PolicyVersion) Validate() error {
	return requireFields(
		field{"business", v.Business},
		field{"policy_type", v.PolicyType},
		field{"draft_content", v.DraftContent},
	)
}

// PolicyUpload is a finished policy to store
type PolicyUpload struct {
	Title      string `json:"title,omitempty"`
	PolicyText string `json:"policyText"`
}

// Validate checks the required fields
func (u PolicyUpload) Validate() error {
	return requireFields(field{"policyText", u.PolicyText})
}

// Policy is a stored policy document
type Policy struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// JobDescriptionRequest describes the role to write a job description for
type JobDescriptionRequest struct {
	JobTitle         string   `json:"job_title"`
	Department       string   `json:"department"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	Requirements     []string `json:"requirements,omitempty"`
}

// Validate checks the required fields
func (r JobDescriptionRequest) Validate() error {
	return requireFields(
		field{"job_title", r.JobTitle},
		field{"department", r.Department},
	)
}

// InterviewQuestionsRequest describes the role to write interview questions for
type InterviewQuestionsRequest struct {
	JobTitle     string   `json:"job_title"`
	Department   string   `json:"department,omitempty"`
	Competencies []string `json:"competencies,omitempty"`
}

// Validate checks the required fields
func (r InterviewQuestionsRequest) Validate() error {
	return requireFields(field{"job_title", r.JobTitle})
}

// InterviewQuestion is one generated question with its follow-up
type InterviewQuestion struct {
	Competency string `json:"competency"`
	Question   string `json:"question"`
	FollowUp   string `json:"follow_up"`
}

// CompetencyPosition is a role and the level expected for each competency
type CompetencyPosition struct {
	Title                       string `json:"title"`
	ProblemSolving              string `json:"problemSolving"`
	CreativeOperationalThinking string `json:"creativeOperationalThinking"`
	Initiative                  string `json:"initiative"`
	Communication               string `json:"communication"`
	Influence                   string `json:"influence"`
	Autonomy                    string `json:"autonomy"`
	CommercialAwareness         string `json:"commercialAwareness"`
	CollaborationTeamWork       string `json:"collaborationTeamWork"`
}

// CompetencyRequest asks for a competency framework covering each position
type CompetencyRequest struct {
	Department string               `json:"department"`
	Positions  []CompetencyPosition `json:"positions"`
}

// Validate checks the required fields
func (r CompetencyRequest) Validate() error {
	if err := requireFields(field{"department", r.Department}); err != nil {
		return err
	}
	if len(r.Positions) == 0 {
		return fmt.Errorf("%w: at least one position is required", ErrInvalidRequest)
	}
	for i, p := range r.Positions {
		if err := requireFields(field{fmt.Sprintf("positions[%d].title", i), p.Title}); err != nil {
			return err
		}
	}
	return nil
}

// CompetencyBreakdown summarizes a role against each company value
type CompetencyBreakdown struct {
	Brave     string `json:"Brave"`
	Owners    string `json:"Owners"`
	Inclusive string `json:"Inclusive"`
}

// CompetencyDescription is the generated breakdown for one position
type CompetencyDescription struct {
	Title     string              `json:"title"`
	Breakdown CompetencyBreakdown `json:"breakdown"`
}

// AnswerAssessmentRequest carries an interview question and the candidate's answer
type AnswerAssessmentRequest struct {
	Question        string `json:"question"`
	CandidateAnswer string `json:"candidate_answer"`
}

// Validate checks the required fields
func (r AnswerAssessmentRequest) Validate() error {
	return requireFields(
		field{"question", r.Question},
		field{"candidate_answer", r.CandidateAnswer},
	)
}

// AnswerAssessment is the score (1 to 4) and reasoning for an answer.
// Fields the model did not provide are "N/A".
type AnswerAssessment struct {
	Score       string `json:"score"`
	Explanation string `json:"explanation"`
}

type field struct {
	name  string
	value string
}

// requireFields reports the first blank field as ErrInvalidRequest
func requireFields(fields ...field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidRequest, f.name)
		}
	}
	return nil
}
