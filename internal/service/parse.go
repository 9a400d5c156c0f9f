package service

import (
	"encoding/json"
	"strings"
)

const notAvailable = "N/A"

// ParseInterviewQuestions decodes a JSON array of questions, tolerating a
// surrounding markdown code fence.
func ParseInterviewQuestions(text string) ([]InterviewQuestion, error) {
	cleaned := strings.ReplaceAll(text, "```json", "")
	cleaned = strings.TrimSpace(strings.ReplaceAll(cleaned, "```", ""))

	var questions []InterviewQuestion
	if err := json.Unmarshal([]byte(cleaned), &questions); err != nil {
		return nil, err
	}
	if questions == nil {
		questions = []InterviewQuestion{}
	}
	return questions, nil
}

// ParseCompetencyBreakdown reads the "Brave:", "Owners:" and "Inclusive:"
// lines. When a label is missing, the first three "label: text" lines are
// taken in order instead.
func ParseCompetencyBreakdown(text string) CompetencyBreakdown {
	var b CompetencyBreakdown
	targets := []struct {
		label string
		dst   *string
	}{
		{"Brave", &b.Brave},
		{"Owners", &b.Owners},
		{"Inclusive", &b.Inclusive},
	}

	var labelled []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if strings.Contains(line, ":") {
			labelled = append(labelled, line)
		}
		for _, t := range targets {
			if rest, ok := strings.CutPrefix(line, t.label+":"); ok {
				*t.dst = strings.TrimSpace(rest)
			}
		}
	}

	if b.Brave != "" && b.Owners != "" && b.Inclusive != "" {
		return b
	}
	for i, t := range targets {
		if i >= len(labelled) {
			break
		}
		_, rest, _ := strings.Cut(labelled[i], ":")
		*t.dst = strings.TrimSpace(rest)
	}
	return b
}

// ParseAnswerAssessment extracts the "Score:" and "Explanation:" lines.
// List markers before the labels are ignored.
func ParseAnswerAssessment(text string) AnswerAssessment {
	a := AnswerAssessment{Score: notAvailable, Explanation: notAvailable}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimLeft(strings.TrimSpace(line), "-* ")
		if rest, ok := strings.CutPrefix(line, "Score:"); ok && a.Score == notAvailable {
			a.Score = strings.TrimSpace(rest)
		}
		if rest, ok := strings.CutPrefix(line, "Explanation:"); ok && a.Explanation == notAvailable {
			a.Explanation = strings.TrimSpace(rest)
		}
	}
	return a
}
