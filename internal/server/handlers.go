package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/jobdesc"
	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// maxRequestBytes caps analyze request bodies at 1 MiB of JSON.
const maxRequestBytes = 1 << 20

var validate = validator.New()

// AnalyzeRequest is the body of POST /api/analyze. Exactly one of
// JobDescription and JobURL supplies the posting; JobDescription may be
// empty to score a resume on its own.
type AnalyzeRequest struct {
	ResumeText     string `json:"resume_text" validate:"required"`
	JobDescription string `json:"job_description"`
	JobURL         string `json:"job_url" validate:"omitempty,http_url"`
	IncludeProfile bool   `json:"include_profile"`
}

// AnalyzeResponse wraps the analysis result with optional extras.
type AnalyzeResponse struct {
	*types.AnalysisResult
	AnalysisID       *uuid.UUID          `json:"analysis_id,omitempty"`
	Profile          *llm.Profile        `json:"profile,omitempty"`
	JobInsights      *jobdesc.Insights   `json:"job_insights,omitempty"`
	SkillsByCategory map[string][]string `json:"skills_by_category,omitempty"`
}

// handleAnalyze scores a resume against a job description.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	if err := validate.Struct(&req); err != nil {
		verr := &ErrValidation{Field: "resume_text", Message: "is required"}
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			verr = &ErrValidation{Field: errs[0].Field(), Message: "failed " + errs[0].Tag() + " validation"}
		}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	if req.JobDescription != "" && req.JobURL != "" {
		verr := &ErrValidation{Field: "job_url", Message: "cannot be combined with job_description"}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	jdText := req.JobDescription
	if req.JobURL != "" {
		fetched, err := ingestion.FetchJobPosting(r.Context(), req.JobURL)
		if err != nil {
			ferr := &ErrFetchFailed{URL: req.JobURL, Err: err}
			s.log.Warn("job posting fetch failed", zap.String("url", req.JobURL), zap.Error(err))
			s.errorResponse(w, HTTPStatus(ferr), ferr.Error())
			return
		}
		jdText = fetched
	}

	result := s.analyzer.Analyze(r.Context(), req.ResumeText, jdText)

	resp := AnalyzeResponse{
		AnalysisResult:   result,
		SkillsByCategory: s.analyzer.Categorize(result.ResumeSkills),
	}

	if jdText != "" {
		resp.JobInsights = jobdesc.Process(jdText)
	}

	if req.IncludeProfile && s.llmClient != nil {
		profile, err := llm.ExtractProfile(r.Context(), s.llmClient, req.ResumeText)
		if err != nil {
			// Profile extraction is best-effort; the analysis still stands.
			s.log.Warn("profile extraction failed", zap.Error(err))
		} else {
			resp.Profile = profile
		}
	}

	if s.store != nil {
		id, err := s.store.SaveAnalysis(r.Context(), result)
		if err != nil {
			s.log.Error("saving analysis", zap.Error(err))
		} else {
			resp.AnalysisID = &id
		}
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleRecentAnalyses lists the newest stored analyses.
func (s *Server) handleRecentAnalyses(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		err := &ErrHistoryDisabled{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			verr := &ErrValidation{Field: "limit", Message: "must be an integer between 1 and 100"}
			s.errorResponse(w, HTTPStatus(verr), verr.Error())
			return
		}
		limit = parsed
	}

	records, err := s.store.ListRecent(r.Context(), limit)
	if err != nil {
		s.log.Error("listing analyses", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to list analyses")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"analyses": records})
}

// handleGetAnalysis fetches one stored analysis by id.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		err := &ErrHistoryDisabled{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		verr := &ErrValidation{Field: "id", Message: "must be a valid UUID"}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	record, err := s.store.GetAnalysis(r.Context(), id)
	if err != nil {
		nferr := &ErrAnalysisNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(nferr), nferr.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, record)
}
