package api

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/prabeshj/chatlytics/pkg/analysis"
	"github.com/prabeshj/chatlytics/pkg/storage"
)

// StatsResponse wraps the analysis report with the request parameters it was
// computed for
type StatsResponse struct {
	UploadID string           `json:"upload_id"`
	User     string           `json:"user"`
	Results  *analysis.Report `json:"results"`
}

// handleStats re-reads a stored transcript, rebuilds its corpus, and returns
// the full result bundle for the selected user. The "user" query parameter
// defaults to the overall filter; an unknown user yields empty results rather
// than an error.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	user := r.URL.Query().Get("user")
	if user == "" {
		user = analysis.OverallSender
	}

	upload, err := s.store.GetUpload(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrUploadNotFound) {
			s.writeError(w, http.StatusNotFound, "upload not found")
			return
		}
		s.log.Error("failed to load upload", zap.String("id", id), zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "failed to load upload")
		return
	}

	// The transcript parsed at upload time; a failure here means the stored
	// content was corrupted.
	corpus, err := s.parser.Parse(upload.Content)
	if err != nil {
		s.log.Error("stored transcript no longer parses",
			zap.String("id", id), zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "stored transcript is corrupted")
		return
	}

	report, err := s.analyzer.Analyze(r.Context(), corpus, user)
	if err != nil {
		s.log.Error("analysis failed", zap.String("id", id), zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	s.writeJSON(w, http.StatusOK, StatsResponse{
		UploadID: id,
		User:     user,
		Results:  report,
	})
}
