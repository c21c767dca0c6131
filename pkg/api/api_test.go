package api

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/prabeshj/chatlytics/internal/config"
	"github.com/prabeshj/chatlytics/pkg/storage"
)

const sampleTranscript = "1/1/23, 10:00 - Alice: Hello world\n" +
	"1/1/23, 10:05 - Bob: <Media omitted>\n" +
	"2/1/23, 09:00 - Alice created group \"friends\"\n"

// memStore is an in-memory Store for handler tests
type memStore struct {
	uploads map[string]*storage.Upload
}

func newMemStore() *memStore {
	return &memStore{uploads: make(map[string]*storage.Upload)}
}

func (s *memStore) Ping(ctx context.Context) error { return nil }

func (s *memStore) SaveUpload(ctx context.Context, upload *storage.Upload) error {
	s.uploads[upload.ID] = upload
	return nil
}

func (s *memStore) GetUpload(ctx context.Context, id string) (*storage.Upload, error) {
	upload, ok := s.uploads[id]
	if !ok {
		return nil, storage.ErrUploadNotFound
	}
	return upload, nil
}

func (s *memStore) DeleteUploadsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	var deleted int64
	for id, u := range s.uploads {
		if u.CreatedAt.Before(cutoff) {
			delete(s.uploads, id)
			deleted++
		}
	}
	return deleted, nil
}

func newTestServer(store storage.Store) *Server {
	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:           8080,
			MaxUploadBytes: 1 << 20,
		},
	}
	return NewServer(cfg, zap.NewNop(), store)
}

func multipartBody(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("CreateFormFile() error = %v", err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	return &buf, w.FormDataContentType()
}

func TestHandleUpload(t *testing.T) {
	store := newMemStore()
	srv := newTestServer(store)

	body, contentType := multipartBody(t, "chat_file", "chat.txt", sampleTranscript)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp UploadResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.UploadID == "" {
		t.Error("Expected a non-empty upload id")
	}
	if resp.Messages != 3 {
		t.Errorf("Expected 3 messages, got %d", resp.Messages)
	}

	wantUsers := []string{"Overall", "Alice", "Bob"}
	if len(resp.Users) != len(wantUsers) {
		t.Fatalf("Expected users %v, got %v", wantUsers, resp.Users)
	}
	for i, u := range wantUsers {
		if resp.Users[i] != u {
			t.Errorf("users[%d] = %q, want %q", i, resp.Users[i], u)
		}
	}

	if _, ok := store.uploads[resp.UploadID]; !ok {
		t.Error("Upload was not persisted")
	}
}

func TestHandleUploadRejectsBadTimestamp(t *testing.T) {
	srv := newTestServer(newMemStore())

	body, contentType := multipartBody(t, "chat_file", "chat.txt",
		"1/1/2023, 10:00 - Alice: four digit year\n")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestHandleUploadMissingFile(t *testing.T) {
	srv := newTestServer(newMemStore())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads", bytes.NewReader(nil))
	rec := httptest.NewRecorder()

	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rec.Code)
	}
}

func TestHandleStats(t *testing.T) {
	store := newMemStore()
	store.uploads["abc"] = &storage.Upload{
		ID:        "abc",
		Filename:  "chat.txt",
		Content:   sampleTranscript,
		CreatedAt: time.Now().UTC(),
	}
	srv := newTestServer(store)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/uploads/abc/stats", nil)
	rec := httptest.NewRecorder()

	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp StatsResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.User != "Overall" {
		t.Errorf("Expected default user Overall, got %q", resp.User)
	}
	if resp.Results.NumMessages != 3 {
		t.Errorf("Expected 3 messages, got %d", resp.Results.NumMessages)
	}
	if resp.Results.NumMedias != 1 {
		t.Errorf("Expected 1 media message, got %d", resp.Results.NumMedias)
	}
	if len(resp.Results.TopUsers) == 0 {
		t.Error("Expected ranking for the overall filter")
	}
}

func TestHandleStatsFilteredUser(t *testing.T) {
	store := newMemStore()
	store.uploads["abc"] = &storage.Upload{
		ID: "abc", Filename: "chat.txt", Content: sampleTranscript,
		CreatedAt: time.Now().UTC(),
	}
	srv := newTestServer(store)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/uploads/abc/stats?user=Alice", nil)
	rec := httptest.NewRecorder()

	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var resp StatsResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Results.NumMessages != 1 {
		t.Errorf("Expected 1 message for Alice, got %d", resp.Results.NumMessages)
	}
	if len(resp.Results.TopUsers) != 0 {
		t.Error("Expected no ranking for a filtered user")
	}
}

func TestHandleStatsUnknownUpload(t *testing.T) {
	srv := newTestServer(newMemStore())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/uploads/nope/stats", nil)
	rec := httptest.NewRecorder()

	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rec.Code)
	}
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(newMemStore())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", rec.Code)
	}
}
