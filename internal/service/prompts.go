package service

import (
	"fmt"
	"strings"

	"github.com/hrops/recruiting-server/internal/llm"
)

const (
	policyExpert     = "You are an HR policy expert."
	policyConsultant = "You are an expert HR policy consultant."
	questionWriter   = "You are an expert interview question generator. Only return valid JSON."
	hrConsultant     = "You are an expert HR consultant."
	interviewer      = "You are an experienced interviewer."
)

// competencyKey explains the levels used in competency tables
const competencyKey = `Levels, from lowest to highest: Foundation, Intermediate, Advanced, Expert.
Brave: takes on hard problems and speaks up.
Owners: sees work through to the outcome and is accountable for it.
Inclusive: brings others in and values different perspectives.`

// Prompt is a rendered completion request
type Prompt struct {
	Text    string
	Options llm.Options
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

// GeneratePolicyPrompt renders the policy drafting prompt
func GeneratePolicyPrompt(req PolicyRequest) Prompt {
	text := fmt.Sprintf(`Generate a comprehensive HR policy document for the %s business unit.
Policy Type: %s.
Target Audience: %s.
Effective Date: %s.
Review Cycle: %s.
Legal Considerations: %s.
Additional Context: %s.

Please include the following sections:
1. Objectives
2. Scope
3. Guidelines and procedures
4. Responsibilities and accountabilities
5. Review and update process
Provide the answer as plain text.`,
		req.Business,
		req.PolicyType,
		orDefault(req.TargetAudience, "All relevant employees"),
		orDefault(req.EffectiveDate, "N/A"),
		orDefault(req.ReviewCycle, "N/A"),
		orDefault(req.LegalConsiderations, "Standard legal and regulatory compliance"),
		orDefault(req.AdditionalContext, "No additional context provided"),
	)
	return Prompt{
		Text:    text,
		Options: llm.Options{System: policyExpert, MaxTokens: 1500, Temperature: 0.7},
	}
}

// RefinePolicyPrompt renders the draft revision prompt
func RefinePolicyPrompt(req RefinePolicyRequest) Prompt {
	text := fmt.Sprintf(`Below is an existing HR policy draft:
%s

The user provided the following feedback for improvement:
%s

Please refine the HR policy draft to address the feedback.
Maintain clear sections such as Objectives, Scope, Guidelines, Responsibilities, and Review Process.
Provide the refined policy as plain text.`, req.CurrentDraft, req.Feedback)
	return Prompt{
		Text:    text,
		Options: llm.Options{System: policyConsultant, MaxTokens: 1200, Temperature: 0.7},
	}
}

// QueryPoliciesPrompt renders a question against the given policies
func QueryPoliciesPrompt(policies []Policy, question string) Prompt {
	var b strings.Builder
	for i, p := range policies {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "Policy %d: %s", i+1, p.Content)
	}

	text := fmt.Sprintf(`Here are the following policies:
%s

Answer the following question regarding these policies:
%s

Provide a concise answer.`, b.String(), question)
	return Prompt{
		Text:    text,
		Options: llm.Options{System: policyConsultant, MaxTokens: 300, Temperature: 0.7},
	}
}

// GenerateJobDescriptionPrompt renders the job description drafting prompt
func GenerateJobDescriptionPrompt(req JobDescriptionRequest) Prompt {
	responsibilities := "Use standard responsibilities for this role."
	if len(req.Responsibilities) > 0 {
		responsibilities = strings.Join(req.Responsibilities, "\n")
	}
	requirements := "Use standard requirements for this role."
	if len(req.Requirements) > 0 {
		requirements = strings.Join(req.Requirements, "\n")
	}

	text := fmt.Sprintf(`Write a professional job description for the role of %s in the %s department.
Responsibilities:
%s
Requirements:
%s`, req.JobTitle, req.Department, responsibilities, requirements)
	return Prompt{
		Text:    text,
		Options: llm.Options{MaxTokens: 1000, Temperature: 0.7},
	}
}

// AnalyzeJobDescriptionPrompt renders the bias review prompt
func AnalyzeJobDescriptionPrompt(description string) Prompt {
	text := fmt.Sprintf(`Analyze the following job description for gendered or biased language and suggest neutral alternatives.

Job Description:
%s

Provide the response in this format:
- **Biased Terms:** [List the biased words found]
- **Suggested Edits:** [Provide neutral alternatives]
- **Overall Score:** [1-10, with 10 being fully inclusive]`, description)
	return Prompt{
		Text:    text,
		Options: llm.Options{MaxTokens: 500, Temperature: 0.5},
	}
}

// ImproveJobDescriptionPrompt renders the rewrite prompt
func ImproveJobDescriptionPrompt(description string) Prompt {
	text := fmt.Sprintf(`Improve the following job description by:
- Enhancing clarity and professionalism
- Making it more structured and engaging
- Ensuring inclusivity by removing biased or exclusionary language

Job Description:
%s

Provide the improved version only, without extra commentary.`, description)
	return Prompt{
		Text:    text,
		Options: llm.Options{MaxTokens: 700, Temperature: 0.7},
	}
}

// GenerateInterviewQuestionsPrompt renders the interview question prompt. The
// model is asked for a bare JSON array.
func GenerateInterviewQuestionsPrompt(req InterviewQuestionsRequest) Prompt {
	focus := "General skills"
	if len(req.Competencies) > 0 {
		focus = strings.Join(req.Competencies, ", ")
	}

	text := fmt.Sprintf(`Generate structured interview questions for the role of %s in %s.

Focus on these competencies: %s.
For each competency, generate at least 2-3 questions.
Each question should have a follow-up question.

Format the output as strict JSON with no extra text:
[
  {"competency": "Software Engineering", "question": "Primary Question 1", "follow_up": "Follow-up Question 1"},
  {"competency": "Design Thinking", "question": "Primary Question 2", "follow_up": "Follow-up Question 2"}
]`, req.JobTitle, orDefault(req.Department, "Unknown"), focus)
	return Prompt{
		Text:    text,
		Options: llm.Options{System: questionWriter, MaxTokens: 2500, Temperature: 0.7},
	}
}

// GenerateCompetenciesPrompt renders the breakdown prompt for one position
func GenerateCompetenciesPrompt(department string, pos CompetencyPosition) Prompt {
	text := fmt.Sprintf(`Using the competency key below, write exactly three detailed sentences,
one each for Brave, Owners and Inclusive, summarizing how the following role should
demonstrate all eight competencies at the specified levels.

Competency key:
%s

Role: %s (Department: %s)

| Competency                | Level |
|---------------------------|-------|
| Problem Solving           | %s |
| Creative/Operational      | %s |
| Initiative                | %s |
| Communication             | %s |
| Influence                 | %s |
| Autonomy                  | %s |
| Commercial Awareness      | %s |
| Collaboration & Team Work | %s |

Output exactly in this format with no extra text:

Brave: [one sentence]
Owners: [one sentence]
Inclusive: [one sentence]`,
		competencyKey, pos.Title, department,
		pos.ProblemSolving, pos.CreativeOperationalThinking, pos.Initiative, pos.Communication,
		pos.Influence, pos.Autonomy, pos.CommercialAwareness, pos.CollaborationTeamWork,
	)
	return Prompt{
		Text:    text,
		Options: llm.Options{System: hrConsultant, MaxTokens: 1500, Temperature: 0.6},
	}
}

// AssessCandidateAnswerPrompt renders the answer scoring prompt
func AssessCandidateAnswerPrompt(req AnswerAssessmentRequest) Prompt {
	text := fmt.Sprintf(`Evaluate the candidate's response to the following interview question.

Question: %s
Candidate's Answer: %s

Provide a score from 1 (Poor) to 4 (Great), along with an explanation.
Format:
Score: [1-4]
Explanation: [Why the score was given]`, req.Question, req.CandidateAnswer)
	return Prompt{
		Text:    text,
		Options: llm.Options{System: interviewer, MaxTokens: 500, Temperature: 0.6},
	}
}
