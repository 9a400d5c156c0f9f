package database

import (
	"github.com/hrops/recruiting-server/internal/db/sqlc"
	"github.com/hrops/recruiting-server/internal/service"
)

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toCandidateDetail(
	c sqlc.Candidate,
	applications []sqlc.ApplicationHistory,
	feedback []sqlc.InterviewFeedback,
) *service.CandidateDetail {
	detail := &service.CandidateDetail{
		ID:           c.ID,
		Name:         c.Name,
		Email:        deref(c.Email),
		Phone:        deref(c.Phone),
		Status:       deref(c.Status),
		ResumeURL:    deref(c.ResumeURL),
		UpdatedAt:    c.UpdatedAt,
		Applications: make([]service.Application, 0, len(applications)),
		Feedback:     make([]service.Feedback, 0, len(feedback)),
	}

	for _, a := range applications {
		detail.Applications = append(detail.Applications, service.Application{
			ID:               a.ID,
			JobID:            deref(a.JobID),
			Status:           deref(a.Status),
			CurrentStageID:   deref(a.CurrentStageID),
			CurrentStageName: deref(a.CurrentStageName),
			UpdatedAt:        a.UpdatedAt,
		})
	}

	for _, f := range feedback {
		detail.Feedback = append(detail.Feedback, service.Feedback{
			ID:                    f.ID,
			ApplicationID:         f.ApplicationID,
			InterviewerName:       deref(f.InterviewerName),
			InterviewerEmail:      deref(f.InterviewerEmail),
			FeedbackText:          deref(f.FeedbackText),
			OverallRecommendation: deref(f.OverallRecommendation),
			SubmittedAt:           f.SubmittedAt,
		})
	}

	return detail
}

func toPolicyVersion(v sqlc.HrPolicyVersion) service.PolicyVersion {
	return service.PolicyVersion{
		ID:                  v.ID,
		Business:            v.Business,
		PolicyType:          v.PolicyType,
		TargetAudience:      deref(v.TargetAudience),
		EffectiveDate:       deref(v.EffectiveDate),
		ReviewCycle:         deref(v.ReviewCycle),
		LegalConsiderations: deref(v.LegalConsiderations),
		AdditionalContext:   deref(v.AdditionalContext),
		DraftContent:        v.DraftContent,
		CreatedAt:           v.CreatedAt,
	}
}

func toPolicy(p sqlc.Policy) service.Policy {
	return service.Policy{
		ID:        p.ID,
		Title:     deref(p.Title),
		Content:   p.Content,
		CreatedAt: p.CreatedAt,
	}
}
