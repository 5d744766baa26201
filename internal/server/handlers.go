package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/faloii/resumerecommend/internal/pipeline"
	"github.com/faloii/resumerecommend/internal/types"
)

// AnalyzeRequest is the request body for POST /analyze.
type AnalyzeRequest struct {
	ResumeText       string   `json:"resume_text" validate:"required,min=30"`
	PreferredRegions []string `json:"preferred_regions,omitempty"`
	CurrentSalary    *int     `json:"current_salary,omitempty" validate:"omitempty,gt=0"`
	TopN             int      `json:"top_n,omitempty" validate:"omitempty,gte=1,lte=20"`
}

// AnalyzeResponse is the response body for POST /analyze.
type AnalyzeResponse struct {
	Success bool                `json:"success"`
	Matches []types.MatchResult `json:"matches"`
}

// handleAnalyze crawls the current posting pool, runs the matching pipeline
// against the submitted resume and returns the ranked matches.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	pool, err := s.source.Crawl(r.Context())
	if err != nil {
		s.logger.Error("crawling postings", zap.Error(err))
		s.errorResponse(w, http.StatusBadGateway, "Failed to fetch job postings")
		return
	}

	topN := s.topN
	if req.TopN > 0 {
		topN = req.TopN
	}

	matches, err := pipeline.Run(r.Context(), pipeline.Options{
		ResumeText: req.ResumeText,
		Postings:   pool,
		Preferences: types.Preferences{
			CurrentSalary:    req.CurrentSalary,
			PreferredRegions: req.PreferredRegions,
		},
		Advisor: s.advisor,
		TopN:    topN,
		Logger:  s.logger,
	})
	switch {
	case errors.Is(err, pipeline.ErrEmptyResume):
		s.errorResponse(w, http.StatusBadRequest, "Resume text is too short to analyze")
		return
	case errors.Is(err, pipeline.ErrEmptyPostingPool):
		s.errorResponse(w, http.StatusBadGateway, "No job postings available right now")
		return
	case err != nil:
		s.logger.Error("running pipeline", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Analysis failed")
		return
	}

	if matches == nil {
		matches = []types.MatchResult{}
	}
	s.jsonResponse(w, http.StatusOK, AnalyzeResponse{Success: true, Matches: matches})
}

// validationMessage flattens validator errors into one readable line.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request: " + err.Error()
	}
	fe := verrs[0]
	switch {
	case fe.Field() == "ResumeText" && fe.Tag() == "min":
		return "resume_text must be at least 30 characters"
	case fe.Field() == "ResumeText":
		return "resume_text is required"
	case fe.Field() == "CurrentSalary":
		return "current_salary must be a positive amount in 10,000 KRW units"
	case fe.Field() == "TopN":
		return "top_n must be between 1 and 20"
	default:
		return fmt.Sprintf("invalid field %s (%s)", fe.Field(), fe.Tag())
	}
}
