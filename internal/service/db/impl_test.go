package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hrops/recruiting-server/database"
	"github.com/hrops/recruiting-server/internal/llm"
	llmmocks "github.com/hrops/recruiting-server/internal/llm/mocks"
	"github.com/hrops/recruiting-server/internal/service"
	"github.com/hrops/recruiting-server/internal/sync/writer"
)

func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	pool, cleanupFunc := database.SetupTestDB(t)
	t.Cleanup(cleanupFunc)
	return pool
}

func newTestService(t *testing.T, pool *pgxpool.Pool, completer llm.Completer) service.Service {
	t.Helper()

	svc, err := New(WithConnectionPool(pool), WithCompleter(completer))
	require.NoError(t, err)
	return svc
}

func seedJaneDoe(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	w, err := writer.NewDBSyncWriter(pool)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, w.UpsertApplication(ctx,
		writer.CandidateRecord{ID: "C1", Name: "Jane Doe", Email: "j@x.com"},
		writer.ApplicationRecord{
			ID:               "A1",
			CandidateID:      "C1",
			JobID:            "J1",
			Status:           "Active",
			CurrentStageID:   "S1",
			CurrentStageName: "First Round",
		},
	))

	submitted := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, w.UpsertFeedback(ctx, []writer.FeedbackRecord{{
		ID:                    "F1",
		CandidateID:           "C1",
		ApplicationID:         "A1",
		InterviewerName:       "Grace Hopper",
		FeedbackText:          "Strong systems thinking",
		OverallRecommendation: "Strong Hire",
		SubmittedAt:           &submitted,
	}}))
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := New()
	require.Error(t, err)

	_, err = New(WithConnectionPool(nil))
	require.Error(t, err)
}

func TestDBService_Candidates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	pool := setupTestDB(t)
	svc := newTestService(t, pool, nil)

	count, err := svc.CountCandidates(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	seedJaneDoe(t, pool)

	require.NoError(t, svc.CheckReadiness(ctx))

	count, err = svc.CountCandidates(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	list, err := svc.ListCandidates(ctx)
	require.NoError(t, err)
	assert.Equal(t, []service.CandidateSummary{{ID: "C1", Name: "Jane Doe", Email: "j@x.com"}}, list)

	detail, err := svc.GetCandidate(ctx, "C1")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", detail.Name)
	require.Len(t, detail.Applications, 1)
	assert.Equal(t, "First Round", detail.Applications[0].CurrentStageName)
	require.Len(t, detail.Feedback, 1)
	assert.Equal(t, "Strong Hire", detail.Feedback[0].OverallRecommendation)
	require.NotNil(t, detail.Feedback[0].SubmittedAt)

	_, err = svc.GetCandidate(ctx, "missing")
	require.ErrorIs(t, err, service.ErrCandidateNotFound)
}

func TestDBService_PolicyVersions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestService(t, setupTestDB(t), nil)

	_, err := svc.SavePolicyVersion(ctx, service.PolicyVersion{Business: "Engineering", PolicyType: "Remote Work"})
	require.ErrorIs(t, err, service.ErrInvalidRequest)

	first, err := svc.SavePolicyVersion(ctx, service.PolicyVersion{
		Business:     "Engineering",
		PolicyType:   "Remote Work",
		ReviewCycle:  "Annual",
		DraftContent: "v1",
	})
	require.NoError(t, err)
	second, err := svc.SavePolicyVersion(ctx, service.PolicyVersion{
		Business:     "Engineering",
		PolicyType:   "Remote Work",
		DraftContent: "v2",
	})
	require.NoError(t, err)
	_, err = svc.SavePolicyVersion(ctx, service.PolicyVersion{
		Business:     "Sales",
		PolicyType:   "Remote Work",
		DraftContent: "other",
	})
	require.NoError(t, err)

	versions, err := svc.ListPolicyVersions(ctx, "Engineering", "Remote Work")
	require.NoError(t, err)
	require.Len(t, versions, 2)
	assert.Equal(t, second, versions[0].ID)
	assert.Equal(t, first, versions[1].ID)
	assert.Equal(t, "Annual", versions[1].ReviewCycle)

	_, err = svc.ListPolicyVersions(ctx, "", "Remote Work")
	require.ErrorIs(t, err, service.ErrInvalidRequest)
}

func TestDBService_QueryPolicies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ctrl := gomock.NewController(t)
	completer := llmmocks.NewMockCompleter(ctrl)
	svc := newTestService(t, setupTestDB(t), completer)

	id, err := svc.UploadPolicy(ctx, service.PolicyUpload{Title: "Leave", PolicyText: "Leave is 25 days"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	policies, err := svc.ListPolicies(ctx)
	require.NoError(t, err)
	require.Len(t, policies, 1)
	assert.Equal(t, "Leave", policies[0].Title)

	completer.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, prompt string, _ llm.Options) (string, error) {
			assert.Contains(t, prompt, "Policy 1: Leave is 25 days")
			assert.Contains(t, prompt, "How much leave do I get?")
			return "25 days.", nil
		})

	answer, err := svc.QueryPolicies(ctx, "How much leave do I get?")
	require.NoError(t, err)
	assert.Equal(t, "25 days.", answer)

	_, err = svc.QueryPolicies(ctx, " ")
	require.ErrorIs(t, err, service.ErrInvalidRequest)
}

func TestDBService_Authoring(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	completer := llmmocks.NewMockCompleter(ctrl)
	// Authoring never touches the pool, so a zero-value pool pointer is enough
	svc := &dbService{pool: &pgxpool.Pool{}, completer: completer}
	ctx := context.Background()

	completer.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, prompt string, opts llm.Options) (string, error) {
			assert.Contains(t, prompt, "Remote Work")
			assert.Equal(t, 1500, opts.MaxTokens)
			return "Policy text", nil
		})
	out, err := svc.GeneratePolicy(ctx, service.PolicyRequest{Business: "Engineering", PolicyType: "Remote Work"})
	require.NoError(t, err)
	assert.Equal(t, "Policy text", out)

	completer.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return("Refined", nil)
	out, err = svc.RefinePolicy(ctx, service.RefinePolicyRequest{CurrentDraft: "d", Feedback: "f"})
	require.NoError(t, err)
	assert.Equal(t, "Refined", out)

	completer.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return("JD", nil)
	out, err = svc.GenerateJobDescription(ctx, service.JobDescriptionRequest{JobTitle: "SRE", Department: "Platform"})
	require.NoError(t, err)
	assert.Equal(t, "JD", out)

	completer.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("rate limited"))
	_, err = svc.AnalyzeJobDescription(ctx, "We need a rockstar")
	require.Error(t, err)

	completer.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return("", llm.ErrDisabled)
	_, err = svc.ImproveJobDescription(ctx, "We need a rockstar")
	require.ErrorIs(t, err, service.ErrAIDisabled)

	// Validation failures never reach the completer
	_, err = svc.GeneratePolicy(ctx, service.PolicyRequest{Business: "Engineering"})
	require.ErrorIs(t, err, service.ErrInvalidRequest)
	_, err = svc.ImproveJobDescription(ctx, "")
	require.ErrorIs(t, err, service.ErrInvalidRequest)
}

func TestDBService_InterviewAuthoring(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	completer := llmmocks.NewMockCompleter(ctrl)
	svc := &dbService{pool: &pgxpool.Pool{}, completer: completer}
	ctx := context.Background()

	t.Run("interview questions from fenced json", func(t *testing.T) {
		completer.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, prompt string, opts llm.Options) (string, error) {
				assert.Contains(t, prompt, "role of SRE in Platform")
				assert.Contains(t, prompt, "Incident Response, Automation")
				assert.Equal(t, 2500, opts.MaxTokens)
				return "```json\n[{\"competency\":\"Incident Response\",\"question\":\"Q1\",\"follow_up\":\"F1\"}]\n```", nil
			})

		questions, err := svc.GenerateInterviewQuestions(ctx, service.InterviewQuestionsRequest{
			JobTitle:     "SRE",
			Department:   "Platform",
			Competencies: []string{"Incident Response", "Automation"},
		})
		require.NoError(t, err)
		assert.Equal(t, []service.InterviewQuestion{
			{Competency: "Incident Response", Question: "Q1", FollowUp: "F1"},
		}, questions)
	})

	t.Run("interview questions that are not json", func(t *testing.T) {
		completer.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return("Sure! Here are some questions.", nil)

		questions, err := svc.GenerateInterviewQuestions(ctx, service.InterviewQuestionsRequest{JobTitle: "SRE"})
		require.NoError(t, err)
		assert.NotNil(t, questions)
		assert.Empty(t, questions)
	})

	t.Run("competencies call the model once per position", func(t *testing.T) {
		completer.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, prompt string, _ llm.Options) (string, error) {
				assert.Contains(t, prompt, "(Department: Engineering)")
				return "Brave: b\nOwners: o\nInclusive: i", nil
			}).Times(2)

		descriptions, err := svc.GenerateCompetencies(ctx, service.CompetencyRequest{
			Department: "Engineering",
			Positions:  []service.CompetencyPosition{{Title: "Junior"}, {Title: "Senior"}},
		})
		require.NoError(t, err)
		require.Len(t, descriptions, 2)
		assert.Equal(t, "Senior", descriptions[1].Title)
		assert.Equal(t, service.CompetencyBreakdown{Brave: "b", Owners: "o", Inclusive: "i"}, descriptions[0].Breakdown)
	})

	t.Run("competencies stop on the first failure", func(t *testing.T) {
		completer.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("rate limited"))

		_, err := svc.GenerateCompetencies(ctx, service.CompetencyRequest{
			Department: "Engineering",
			Positions:  []service.CompetencyPosition{{Title: "Junior"}, {Title: "Senior"}},
		})
		require.Error(t, err)
	})

	t.Run("answer assessment", func(t *testing.T) {
		completer.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("- Score: 3\n- Explanation: Clear structure, thin on metrics.", nil)

		assessment, err := svc.AssessCandidateAnswer(ctx, service.AnswerAssessmentRequest{
			Question:        "Tell me about an outage",
			CandidateAnswer: "We rolled back within minutes",
		})
		require.NoError(t, err)
		assert.Equal(t, &service.AnswerAssessment{Score: "3", Explanation: "Clear structure, thin on metrics."}, assessment)
	})

	t.Run("validation happens before completion", func(t *testing.T) {
		_, err := svc.GenerateInterviewQuestions(ctx, service.InterviewQuestionsRequest{})
		require.ErrorIs(t, err, service.ErrInvalidRequest)
		_, err = svc.GenerateCompetencies(ctx, service.CompetencyRequest{Department: "Engineering"})
		require.ErrorIs(t, err, service.ErrInvalidRequest)
		_, err = svc.AssessCandidateAnswer(ctx, service.AnswerAssessmentRequest{Question: "q"})
		require.ErrorIs(t, err, service.ErrInvalidRequest)
	})
}
