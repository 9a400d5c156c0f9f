// Package policies provides the HR policy, job-description and interview
// authoring endpoints.
package policies

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hrops/recruiting-server/internal/api/common"
	"github.com/hrops/recruiting-server/internal/service"
)

// maxBodySize limits request bodies; policy texts are large but bounded
const maxBodySize = 1 << 20

// Routes handles HTTP requests for policy and job-description endpoints
type Routes struct {
	service service.Service
}

// NewRoutes creates a new Routes instance with the given service
func NewRoutes(svc service.Service) *Routes {
	return &Routes{
		service: svc,
	}
}

// Router creates the router mounted at /api. Storage-only endpoints are
// bounded by requestTimeout; completion endpoints are bounded by the LLM
// client timeout instead.
func Router(svc service.Service, requestTimeout time.Duration) http.Handler {
	routes := NewRoutes(svc)

	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(common.Timeout(requestTimeout))

		r.Post("/save-policy-version", routes.savePolicyVersion)
		r.Get("/get-policy-versions", routes.listPolicyVersions)
		r.Post("/upload-policy", routes.uploadPolicy)
		r.Get("/get-policies", routes.listPolicies)
	})

	r.Group(func(r chi.Router) {
		r.Use(common.WithoutWriteDeadline)

		r.Post("/generate-policy", routes.generatePolicy)
		r.Post("/refine-policy", routes.refinePolicy)
		r.Post("/query-policy", routes.queryPolicy)
		r.Post("/generate-job-description", routes.generateJobDescription)
		r.Post("/analyze-job-description", routes.analyzeJobDescription)
		r.Post("/improve-job-description", routes.improveJobDescription)
		r.Post("/generate-interview-questions", routes.generateInterviewQuestions)
		r.Post("/generate-competencies", routes.generateCompetencies)
		r.Post("/assess-candidate-answer", routes.assessCandidateAnswer)
	})

	return r
}

// generatePolicy handles POST /api/generate-policy
func (routes *Routes) generatePolicy(w http.ResponseWriter, r *http.Request) {
	var req service.PolicyRequest
	if !common.DecodeJSONBody(w, r, &req, maxBodySize) {
		return
	}

	doc, err := routes.service.GeneratePolicy(r.Context(), req)
	if err != nil {
		writeServiceError(w, "generate policy", err)
		return
	}

	common.WriteJSONResponse(w, GeneratePolicyResponse{PolicyDocument: doc}, http.StatusOK)
}

// refinePolicy handles POST /api/refine-policy
func (routes *Routes) refinePolicy(w http.ResponseWriter, r *http.Request) {
	var req service.RefinePolicyRequest
	if !common.DecodeJSONBody(w, r, &req, maxBodySize) {
		return
	}

	refined, err := routes.service.RefinePolicy(r.Context(), req)
	if err != nil {
		writeServiceError(w, "refine policy", err)
		return
	}

	common.WriteJSONResponse(w, RefinePolicyResponse{RefinedPolicy: refined}, http.StatusOK)
}

// savePolicyVersion handles POST /api/save-policy-version
func (routes *Routes) savePolicyVersion(w http.ResponseWriter, r *http.Request) {
	var version service.PolicyVersion
	if !common.DecodeJSONBody(w, r, &version, maxBodySize) {
		return
	}

	id, err := routes.service.SavePolicyVersion(r.Context(), version)
	if err != nil {
		writeServiceError(w, "save policy version", err)
		return
	}

	common.WriteJSONResponse(w, SavePolicyVersionResponse{Success: true, VersionID: id}, http.StatusOK)
}

// listPolicyVersions handles GET /api/get-policy-versions?business=&policy_type=
func (routes *Routes) listPolicyVersions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	versions, err := routes.service.ListPolicyVersions(r.Context(), query.Get("business"), query.Get("policy_type"))
	if err != nil {
		writeServiceError(w, "list policy versions", err)
		return
	}
	if versions == nil {
		versions = []service.PolicyVersion{}
	}

	common.WriteJSONResponse(w, PolicyVersionsResponse{Versions: versions}, http.StatusOK)
}

// uploadPolicy handles POST /api/upload-policy
func (routes *Routes) uploadPolicy(w http.ResponseWriter, r *http.Request) {
	var upload service.PolicyUpload
	if !common.DecodeJSONBody(w, r, &upload, maxBodySize) {
		return
	}

	id, err := routes.service.UploadPolicy(r.Context(), upload)
	if err != nil {
		writeServiceError(w, "upload policy", err)
		return
	}

	common.WriteJSONResponse(w, UploadPolicyResponse{Success: true, PolicyID: id}, http.StatusOK)
}

// listPolicies handles GET /api/get-policies
func (routes *Routes) listPolicies(w http.ResponseWriter, r *http.Request) {
	policies, err := routes.service.ListPolicies(r.Context())
	if err != nil {
		writeServiceError(w, "list policies", err)
		return
	}
	if policies == nil {
		policies = []service.Policy{}
	}

	common.WriteJSONResponse(w, PoliciesResponse{Policies: policies}, http.StatusOK)
}

// queryPolicy handles POST /api/query-policy
func (routes *Routes) queryPolicy(w http.ResponseWriter, r *http.Request) {
	var req QueryPolicyRequest
	if !common.DecodeJSONBody(w, r, &req, maxBodySize) {
		return
	}

	answer, err := routes.service.QueryPolicies(r.Context(), req.Question)
	if err != nil {
		writeServiceError(w, "query policies", err)
		return
	}

	common.WriteJSONResponse(w, QueryPolicyResponse{Answer: answer}, http.StatusOK)
}

// generateJobDescription handles POST /api/generate-job-description
func (routes *Routes) generateJobDescription(w http.ResponseWriter, r *http.Request) {
	var req service.JobDescriptionRequest
	if !common.DecodeJSONBody(w, r, &req, maxBodySize) {
		return
	}

	desc, err := routes.service.GenerateJobDescription(r.Context(), req)
	if err != nil {
		writeServiceError(w, "generate job description", err)
		return
	}

	common.WriteJSONResponse(w, JobDescriptionResponse{JobDescription: desc}, http.StatusOK)
}

// analyzeJobDescription handles POST /api/analyze-job-description
func (routes *Routes) analyzeJobDescription(w http.ResponseWriter, r *http.Request) {
	var req DescriptionRequest
	if !common.DecodeJSONBody(w, r, &req, maxBodySize) {
		return
	}

	analysis, err := routes.service.AnalyzeJobDescription(r.Context(), req.Description)
	if err != nil {
		writeServiceError(w, "analyze job description", err)
		return
	}

	common.WriteJSONResponse(w, AnalysisResponse{Analysis: analysis}, http.StatusOK)
}

// improveJobDescription handles POST /api/improve-job-description
func (routes *Routes) improveJobDescription(w http.ResponseWriter, r *http.Request) {
	var req DescriptionRequest
	if !common.DecodeJSONBody(w, r, &req, maxBodySize) {
		return
	}

	improved, err := routes.service.ImproveJobDescription(r.Context(), req.Description)
	if err != nil {
		writeServiceError(w, "improve job description", err)
		return
	}

	common.WriteJSONResponse(w, ImprovedDescriptionResponse{ImprovedDescription: improved}, http.StatusOK)
}

// generateInterviewQuestions handles POST /api/generate-interview-questions
func (routes *Routes) generateInterviewQuestions(w http.ResponseWriter, r *http.Request) {
	var req service.InterviewQuestionsRequest
	if !common.DecodeJSONBody(w, r, &req, maxBodySize) {
		return
	}

	questions, err := routes.service.GenerateInterviewQuestions(r.Context(), req)
	if err != nil {
		writeServiceError(w, "generate interview questions", err)
		return
	}
	if questions == nil {
		questions = []service.InterviewQuestion{}
	}

	common.WriteJSONResponse(w, InterviewQuestionsResponse{Questions: questions}, http.StatusOK)
}

// generateCompetencies handles POST /api/generate-competencies
func (routes *Routes) generateCompetencies(w http.ResponseWriter, r *http.Request) {
	var req service.CompetencyRequest
	if !common.DecodeJSONBody(w, r, &req, maxBodySize) {
		return
	}

	descriptions, err := routes.service.GenerateCompetencies(r.Context(), req)
	if err != nil {
		writeServiceError(w, "generate competencies", err)
		return
	}

	common.WriteJSONResponse(w, CompetenciesResponse{
		Success:                true,
		CompetencyDescriptions: descriptions,
	}, http.StatusOK)
}

// assessCandidateAnswer handles POST /api/assess-candidate-answer
func (routes *Routes) assessCandidateAnswer(w http.ResponseWriter, r *http.Request) {
	var req service.AnswerAssessmentRequest
	if !common.DecodeJSONBody(w, r, &req, maxBodySize) {
		return
	}

	assessment, err := routes.service.AssessCandidateAnswer(r.Context(), req)
	if err != nil {
		writeServiceError(w, "assess candidate answer", err)
		return
	}

	common.WriteJSONResponse(w, assessment, http.StatusOK)
}

func writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrAIDisabled):
		common.WriteErrorResponse(w, "AI features are not configured", http.StatusServiceUnavailable)
	default:
		slog.Error("Request failed", "operation", op, "error", err)
		common.WriteErrorResponse(w, "Failed to "+op, http.StatusInternalServerError)
	}
}
