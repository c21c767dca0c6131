package analysis

import (
	"testing"
	"time"

	"github.com/prabeshj/chatlytics/pkg/models"
)

func withContent(contents ...string) models.Corpus {
	ts := time.Date(2023, time.May, 10, 15, 0, 0, 0, time.UTC)
	corpus := make(models.Corpus, 0, len(contents))
	for _, c := range contents {
		corpus = append(corpus, models.NewMessage(ts, "Alice", c))
	}
	return corpus
}

func freqMap(freq []WordCount) map[string]int {
	m := make(map[string]int, len(freq))
	for _, wc := range freq {
		m[wc.Word] = wc.Count
	}
	return m
}

func TestWordFrequencyCountsAndOrder(t *testing.T) {
	freq := NewAnalyzer().wordFrequency(withContent("apple banana", "apple mango"))

	if len(freq) != 3 {
		t.Fatalf("Expected 3 tokens, got %d: %v", len(freq), freq)
	}
	if freq[0].Word != "apple" || freq[0].Count != 2 {
		t.Errorf("Expected apple:2 first, got %s:%d", freq[0].Word, freq[0].Count)
	}
	if freq[1].Word != "banana" || freq[2].Word != "mango" {
		t.Errorf("Expected first-encounter order, got %v", freq)
	}
}

func TestWordFrequencySkipsMediaPlaceholder(t *testing.T) {
	freq := NewAnalyzer().wordFrequency(withContent(models.MediaPlaceholder, "banana"))

	m := freqMap(freq)
	if _, ok := m["media"]; ok {
		t.Error("Media placeholder messages must be skipped entirely")
	}
	if m["banana"] != 1 {
		t.Errorf("Expected banana:1, got %v", freq)
	}
}

func TestWordFrequencyStripsURLsAndEmoji(t *testing.T) {
	freq := NewAnalyzer().wordFrequency(withContent(
		"watch https://youtube.com/clip tonight 🎉",
	))

	m := freqMap(freq)
	if m["watch"] != 1 || m["tonight"] != 1 {
		t.Errorf("Expected watch and tonight kept, got %v", freq)
	}
	for word := range m {
		if word == "https" || word == "youtube" || word == "youtubecomclip" {
			t.Errorf("URL fragment %q survived normalization", word)
		}
	}
}

func TestWordFrequencyFilters(t *testing.T) {
	tests := []struct {
		name    string
		content string
		reject  string
	}{
		{"Short token", "go is ok", "go"},
		{"Generic stopword", "the weather", "the"},
		{"Nepali stopword", "khana huncha", "huncha"},
		{"Noise word", "photo omitted here", "omitted"},
	}

	a := NewAnalyzer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := freqMap(a.wordFrequency(withContent(tt.content)))
			if _, ok := m[tt.reject]; ok {
				t.Errorf("Token %q should have been filtered", tt.reject)
			}
		})
	}
}

func TestWordFrequencyKeepsDevanagari(t *testing.T) {
	m := freqMap(NewAnalyzer().wordFrequency(withContent("नमस्ते साथी")))

	if m["नमस्ते"] != 1 {
		t.Errorf("Expected Devanagari token kept, got %v", m)
	}
}

func TestWordFrequencyLowercases(t *testing.T) {
	m := freqMap(NewAnalyzer().wordFrequency(withContent("Hello HELLO hello")))

	if m["hello"] != 3 {
		t.Errorf("Expected case-folded count 3, got %v", m)
	}
}
