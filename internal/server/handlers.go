package server

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"reelscribe/internal/api"
	"reelscribe/internal/logging"
	"reelscribe/internal/pipeline"
	"reelscribe/internal/services"
)

//go:embed page.html
var pageSource string

var pageTemplate = template.Must(template.New("page").Parse(pageSource))

type pageData struct {
	Error      string
	Transcript string
	URL        string
	SRTPath    string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, http.StatusOK, pageData{})
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.renderPage(w, http.StatusBadRequest, pageData{Error: "malformed form submission"})
		return
	}
	url := strings.TrimSpace(r.FormValue("url"))
	if url == "" {
		s.renderPage(w, http.StatusBadRequest, pageData{Error: "url is required"})
		return
	}

	outcome := s.processor.Process(r.Context(), url, pipeline.Options{
		Language: strings.TrimSpace(r.FormValue("language")),
	})
	if outcome.Err != nil {
		s.logger.Warn("form request failed",
			logging.String(logging.FieldURL, url),
			logging.Error(outcome.Err))
		s.renderPage(w, services.HTTPStatus(outcome.Err), pageData{Error: outcome.Err.Error()})
		return
	}

	s.renderPage(w, http.StatusOK, pageData{
		Transcript: outcome.Result.Text,
		URL:        outcome.URL,
		SRTPath:    outcome.SRTPath,
	})
}

func (s *Server) handleTranscribe(w http.ResponseWriter, r *http.Request) {
	var request api.TranscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if len(request.URLs) == 0 {
		s.writeError(w, http.StatusBadRequest, "urls must not be empty")
		return
	}

	opts := pipeline.Options{
		Language:    request.Language,
		CookiesPath: request.CookiesPath,
		ModelSize:   request.ModelSize,
		ComputeType: request.ComputeType,
	}

	results := make([]api.TranscribeResult, 0, len(request.URLs))
	for _, url := range request.URLs {
		outcome := s.processor.Process(r.Context(), url, opts)
		if outcome.Err != nil {
			s.logger.Warn("batch request aborted",
				logging.String(logging.FieldURL, url),
				logging.Error(outcome.Err))
			s.writeError(w, services.HTTPStatus(outcome.Err),
				fmt.Sprintf("Failed for %s: %v", outcome.Input, outcome.Err))
			return
		}
		results = append(results, api.FromOutcome(outcome))
	}

	s.writeJSON(w, http.StatusOK, api.BatchResponse{Results: results})
}

func (s *Server) renderPage(w http.ResponseWriter, status int, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplate.Execute(w, data); err != nil {
		s.logger.Error("render page", logging.Error(err))
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("encode response", logging.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, detail string) {
	s.writeJSON(w, status, api.ErrorResponse{Detail: detail})
}
