package policies

import (
	"github.com/google/uuid"

	"github.com/hrops/recruiting-server/internal/service"
)

// GeneratePolicyResponse is returned by POST /api/generate-policy
type GeneratePolicyResponse struct {
	PolicyDocument string `json:"policyDocument"`
}

// RefinePolicyResponse is returned by POST /api/refine-policy
type RefinePolicyResponse struct {
	RefinedPolicy string `json:"refinedPolicy"`
}

// SavePolicyVersionResponse is returned by POST /api/save-policy-version
type SavePolicyVersionResponse struct {
	Success   bool      `json:"success"`
	VersionID uuid.UUID `json:"version_id"`
}

// PolicyVersionsResponse is returned by GET /api/get-policy-versions
type PolicyVersionsResponse struct {
	Versions []service.PolicyVersion `json:"versions"`
}

// UploadPolicyResponse is returned by POST /api/upload-policy
type UploadPolicyResponse struct {
	Success  bool      `json:"success"`
	PolicyID uuid.UUID `json:"policy_id"`
}

// PoliciesResponse is returned by GET /api/get-policies
type PoliciesResponse struct {
	Policies []service.Policy `json:"policies"`
}

// QueryPolicyRequest is the body of POST /api/query-policy
type QueryPolicyRequest struct {
	Question string `json:"question"`
}

// QueryPolicyResponse is returned by POST /api/query-policy
type QueryPolicyResponse struct {
	Answer string `json:"answer"`
}

// JobDescriptionResponse is returned by POST /api/generate-job-description
type JobDescriptionResponse struct {
	JobDescription string `json:"job_description"`
}

// DescriptionRequest is the body of the analyze and improve endpoints
type DescriptionRequest struct {
	Description string `json:"description"`
}

// AnalysisResponse is returned by POST /api/analyze-job-description
type AnalysisResponse struct {
	Analysis string `json:"analysis"`
}

// ImprovedDescriptionResponse is returned by POST /api/improve-job-description
type ImprovedDescriptionResponse struct {
	ImprovedDescription string `json:"improved_description"`
}

// InterviewQuestionsResponse is returned by POST /api/generate-interview-questions
type InterviewQuestionsResponse struct {
	Questions []service.InterviewQuestion `json:"questions"`
}

// CompetenciesResponse is returned by POST /api/generate-competencies
type CompetenciesResponse struct {
	Success                bool                            `json:"success"`
	CompetencyDescriptions []service.CompetencyDescription `json:"competencyDescriptions"`
}
