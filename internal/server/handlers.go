package server

import (
	"net/http"
	"strings"

	"github.com/revlens/revlens/internal/analysis"
	"github.com/revlens/revlens/internal/stats"
)

type analyzeRequest struct {
	Text string `json:"text"`
}

type batchRequest struct {
	Texts []string `json:"texts"`
}

type compareRequest struct {
	TextA string `json:"text_a"`
	TextB string `json:"text_b"`
}

type dashboardRequest struct {
	Records []stats.ReviewRecord `json:"records"`
}

// handleAnalyze analyzes a single review. Preprocessing output is included
// only when the include_preprocessing query parameter is truthy.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "missing required field: text")
		return
	}

	includePre := r.URL.Query().Get("include_preprocessing") == "true"
	writeJSON(w, http.StatusOK, analysis.Single(req.Text, includePre))
}

// handleAnalyzeBatch analyzes a non-empty list of reviews in input order and
// attaches the aggregate summary.
func (s *Server) handleAnalyzeBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if len(req.Texts) == 0 {
		writeError(w, http.StatusBadRequest, "missing required field: texts must be a non-empty array")
		return
	}

	includePre := r.URL.Query().Get("include_preprocessing") == "true"
	writeJSON(w, http.StatusOK, analysis.Batch(req.Texts, includePre, s.cfg.Analysis.Workers))
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.TextA) == "" || strings.TrimSpace(req.TextB) == "" {
		writeError(w, http.StatusBadRequest, "missing required field: text_a and text_b")
		return
	}

	writeJSON(w, http.StatusOK, analysis.Compare(req.TextA, req.TextB))
}

func (s *Server) handleFeatures(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "missing required field: text")
		return
	}

	writeJSON(w, http.StatusOK, analysis.ExtractFeatures(req.Text))
}

// handleDistribution tallies lexicon labels over the given texts. An empty
// array is allowed and yields all-zero counts.
func (s *Server) handleDistribution(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, analysis.Distribute(req.Texts))
}

// handleDashboard aggregates caller-supplied records into dashboard metrics.
// An empty collection is allowed and yields all-zero metrics.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	var req dashboardRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	metrics := stats.AggregateWith(req.Records, stats.Options{
		TopWords:      s.cfg.Analysis.TopWords,
		CloudWords:    s.cfg.Analysis.CloudWords,
		HistogramBins: s.cfg.Analysis.HistogramBins,
	})
	writeJSON(w, http.StatusOK, metrics)
}
