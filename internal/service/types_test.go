package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     interface{ Validate() error }
		wantErr string
	}{
		{name: "policy ok", req: PolicyRequest{Business: "Engineering", PolicyType: "Remote Work"}},
		{name: "policy missing business", req: PolicyRequest{PolicyType: "Remote Work"}, wantErr: "business is required"},
		{name: "policy blank type", req: PolicyRequest{Business: "Engineering", PolicyType: "  "}, wantErr: "policyType is required"},
		{name: "refine ok", req: RefinePolicyRequest{CurrentDraft: "draft", Feedback: "shorter"}},
		{name: "refine missing feedback", req: RefinePolicyRequest{CurrentDraft: "draft"}, wantErr: "feedback is required"},
		{name: "version missing draft", req: PolicyVersion{Business: "b", PolicyType: "t"}, wantErr: "draft_content is required"},
		{name: "upload ok without title", req: PolicyUpload{PolicyText: "text"}},
		{name: "upload missing text", req: PolicyUpload{Title: "t"}, wantErr: "policyText is required"},
		{name: "job description missing department", req: JobDescriptionRequest{JobTitle: "SRE"}, wantErr: "department is required"},
		{name: "interview questions without department", req: InterviewQuestionsRequest{JobTitle: "SRE"}},
		{name: "interview questions missing title", req: InterviewQuestionsRequest{Department: "Platform"}, wantErr: "job_title is required"},
		{name: "competencies without positions", req: CompetencyRequest{Department: "Engineering"}, wantErr: "at least one position"},
		{name: "competencies untitled position", req: CompetencyRequest{
			Department: "Engineering",
			Positions:  []CompetencyPosition{{Title: "Junior"}, {}},
		}, wantErr: "positions[1].title is required"},
		{name: "assessment missing answer", req: AnswerAssessmentRequest{Question: "q"}, wantErr: "candidate_answer is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidRequest)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGeneratePolicyPrompt_Defaults(t *testing.T) {
	t.Parallel()

	p := GeneratePolicyPrompt(PolicyRequest{Business: "Engineering", PolicyType: "Remote Work"})

	assert.Contains(t, p.Text, "for the Engineering business unit")
	assert.Contains(t, p.Text, "Policy Type: Remote Work.")
	assert.Contains(t, p.Text, "Target Audience: All relevant employees.")
	assert.Contains(t, p.Text, "Legal Considerations: Standard legal and regulatory compliance.")
	assert.Equal(t, 1500, p.Options.MaxTokens)
	assert.NotEmpty(t, p.Options.System)
}

func TestQueryPoliciesPrompt_NumbersPolicies(t *testing.T) {
	t.Parallel()

	p := QueryPoliciesPrompt([]Policy{{Content: "Leave is 25 days"}, {Content: "Remote on Fridays"}}, "How much leave?")

	assert.Contains(t, p.Text, "Policy 1: Leave is 25 days\n\nPolicy 2: Remote on Fridays")
	assert.Contains(t, p.Text, "How much leave?")
}

func TestGenerateJobDescriptionPrompt(t *testing.T) {
	t.Parallel()

	p := GenerateJobDescriptionPrompt(JobDescriptionRequest{JobTitle: "SRE", Department: "Platform"})
	assert.Contains(t, p.Text, "Use standard responsibilities for this role.")
	assert.Contains(t, p.Text, "Use standard requirements for this role.")

	p = GenerateJobDescriptionPrompt(JobDescriptionRequest{
		JobTitle:         "SRE",
		Department:       "Platform",
		Responsibilities: []string{"Own on-call", "Run postmortems"},
	})
	assert.Contains(t, p.Text, "Own on-call\nRun postmortems")
	assert.Empty(t, p.Options.System)
}

func TestGenerateInterviewQuestionsPrompt(t *testing.T) {
	t.Parallel()

	p := GenerateInterviewQuestionsPrompt(InterviewQuestionsRequest{JobTitle: "SRE"})
	assert.Contains(t, p.Text, "role of SRE in Unknown")
	assert.Contains(t, p.Text, "Focus on these competencies: General skills.")
	assert.Contains(t, p.Options.System, "JSON")
}

func TestParseInterviewQuestions(t *testing.T) {
	t.Parallel()

	questions, err := ParseInterviewQuestions("[]")
	require.NoError(t, err)
	assert.NotNil(t, questions)

	_, err = ParseInterviewQuestions("{\"question\": \"not a list\"}")
	require.Error(t, err)
}

func TestParseCompetencyBreakdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want CompetencyBreakdown
	}{
		{
			name: "labelled lines",
			text: "Inclusive: i\nBrave: b\nOwners: o",
			want: CompetencyBreakdown{Brave: "b", Owners: "o", Inclusive: "i"},
		},
		{
			name: "unexpected labels fall back to order",
			text: "Courage: b\nOwnership: o\nInclusion: i",
			want: CompetencyBreakdown{Brave: "b", Owners: "o", Inclusive: "i"},
		},
		{
			name: "nothing usable",
			text: "I cannot help with that.",
			want: CompetencyBreakdown{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseCompetencyBreakdown(tt.text))
		})
	}
}

func TestParseAnswerAssessment(t *testing.T) {
	t.Parallel()

	assert.Equal(t, AnswerAssessment{Score: "4", Explanation: "Great"},
		ParseAnswerAssessment("Score: 4\nExplanation: Great"))
	assert.Equal(t, AnswerAssessment{Score: "2", Explanation: "N/A"},
		ParseAnswerAssessment("Overall Score: 1\n- Score: 2"))
	assert.Equal(t, AnswerAssessment{Score: "N/A", Explanation: "N/A"},
		ParseAnswerAssessment(""))
}
