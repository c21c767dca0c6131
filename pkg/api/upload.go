package api

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/prabeshj/chatlytics/pkg/analysis"
	"github.com/prabeshj/chatlytics/pkg/ingestion"
	"github.com/prabeshj/chatlytics/pkg/storage"
)

// UploadResponse is returned after a transcript is accepted. Users is the
// sender list for the stats filter dropdown: sorted, without the
// group-notification sentinel, with the overall option first.
type UploadResponse struct {
	UploadID string   `json:"upload_id"`
	Filename string   `json:"filename"`
	Messages int      `json:"num_messages"`
	Users    []string `json:"users"`
}

// handleUpload accepts a multipart transcript upload, validates that it
// parses, persists it, and returns its id and sender list
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxUploadBytes)

	f, header, err := r.FormFile("chat_file")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "missing chat_file upload")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "failed to read upload")
		return
	}

	corpus, err := s.parser.Parse(string(data))
	if err != nil {
		var parseErr *ingestion.ParseError
		if errors.As(err, &parseErr) {
			s.log.Warn("transcript rejected", zap.Error(parseErr))
			s.writeError(w, http.StatusUnprocessableEntity, parseErr.Error())
			return
		}
		s.writeError(w, http.StatusInternalServerError, "failed to parse transcript")
		return
	}

	upload := &storage.Upload{
		ID:        uuid.NewString(),
		Filename:  header.Filename,
		Content:   string(data),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.SaveUpload(r.Context(), upload); err != nil {
		s.log.Error("failed to save upload", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "failed to save upload")
		return
	}

	s.log.Info("transcript uploaded",
		zap.String("id", upload.ID),
		zap.String("filename", upload.Filename),
		zap.Int("messages", len(corpus)))

	s.writeJSON(w, http.StatusCreated, UploadResponse{
		UploadID: upload.ID,
		Filename: upload.Filename,
		Messages: len(corpus),
		Users:    append([]string{analysis.OverallSender}, corpus.Senders()...),
	})
}
