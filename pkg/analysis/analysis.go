// Package analysis derives descriptive statistics from a parsed transcript
// corpus: volume counters, busiest-sender ranking, time-bucketed histograms,
// a weekday-by-hour heatmap, and word/emoji frequency tables. Every
// aggregation is a pure, read-only function of the corpus; the Analyzer holds
// only the injected text capabilities and no per-request state.
package analysis

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/prabeshj/chatlytics/pkg/models"
	"github.com/prabeshj/chatlytics/pkg/textkit"
)

// OverallSender selects the unfiltered corpus. The sender ranking is only
// produced for this filter; ranking a single sender is degenerate.
const OverallSender = "Overall"

// maxTopSenders caps the busiest-sender ranking
const maxTopSenders = 30

// URLExtractor finds URLs inside message content
type URLExtractor interface {
	FindURLs(text string) []string
}

// EmojiClassifier judges emoji tokens and strips emoji glyphs from text
type EmojiClassifier interface {
	IsEmoji(token string) bool
	StripEmoji(text string) string
}

// Capabilities contains the external text capabilities the analyzer consumes
type Capabilities struct {
	URLs      URLExtractor
	Emoji     EmojiClassifier
	Stopwords map[string]struct{}
}

// DefaultCapabilities returns capabilities backed by the textkit package
func DefaultCapabilities() Capabilities {
	return Capabilities{
		URLs:      textkit.NewURLExtractor(),
		Emoji:     textkit.NewEmojiClassifier(),
		Stopwords: textkit.GenericStopwords(),
	}
}

// Analyzer computes all aggregations over a corpus
type Analyzer struct {
	urls      URLExtractor
	emoji     EmojiClassifier
	stopwords map[string]struct{}
}

// NewAnalyzer creates a new analyzer instance
func NewAnalyzer(caps ...Capabilities) *Analyzer {
	c := DefaultCapabilities()
	if len(caps) > 0 {
		c = caps[0]
	}
	return &Analyzer{
		urls:      c.URLs,
		emoji:     c.Emoji,
		stopwords: c.Stopwords,
	}
}

// Series is a pair of index-aligned label and count arrays
type Series struct {
	Labels []string `json:"labels"`
	Counts []int    `json:"counts"`
}

// WordCount is one entry of the word-frequency table
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// EmojiCount is one entry of the emoji-frequency table
type EmojiCount struct {
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}

// Heatmap is a weekday-by-period activity matrix. Values is indexed
// [row][col] and is always 7x24 with missing combinations zero-filled.
type Heatmap struct {
	Rows   []string `json:"rows"`
	Cols   []string `json:"cols"`
	Values [][]int  `json:"values"`
}

// Report is the full result bundle for one corpus and sender filter
type Report struct {
	NumMessages int `json:"num_messages"`
	NumWords    int `json:"num_words"`
	NumMedias   int `json:"num_medias"`
	NumLinks    int `json:"num_links"`

	// Parallel arrays; empty unless the filter is OverallSender
	TopUsers     []string  `json:"top_users"`
	MessageShare []float64 `json:"message_share"`

	WordFrequency  []WordCount  `json:"word_frequency"`
	EmojiFrequency []EmojiCount `json:"emoji_frequency"`

	MonthlyTimeline Series `json:"monthly_timeline"`
	DailyTimeline   Series `json:"daily_timeline"`
	HourlyTimeline  Series `json:"hourly_timeline"`

	WeekdayActivity Series `json:"weekday_activity"`
	MonthActivity   Series `json:"month_activity"`

	Heatmap Heatmap `json:"heatmap"`
}

// Analyze runs every aggregation over the corpus for the given sender filter
// and composes the result bundle. Passing "" or OverallSender analyzes the
// whole corpus; any other value narrows all aggregations to that sender, and
// an unknown sender simply yields zero/empty results.
//
// The aggregations are independent and read-only, so they run concurrently;
// none of them can fail, the error return exists for context cancellation.
func (a *Analyzer) Analyze(ctx context.Context, corpus models.Corpus, sender string) (*Report, error) {
	overall := sender == "" || sender == OverallSender
	scoped := corpus
	if !overall {
		scoped = corpus.FilterBySender(sender)
	}

	rep := &Report{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rep.NumMessages = len(scoped)
		rep.NumWords = a.wordTotal(scoped)
		rep.NumMedias = a.mediaTotal(scoped)
		rep.NumLinks = a.linkTotal(scoped)
		return ctx.Err()
	})
	g.Go(func() error {
		if overall {
			rep.TopUsers, rep.MessageShare = a.busiestSenders(corpus)
		} else {
			rep.TopUsers, rep.MessageShare = []string{}, []float64{}
		}
		return ctx.Err()
	})
	g.Go(func() error {
		rep.MonthlyTimeline = monthlyTimeline(scoped)
		rep.DailyTimeline = dailyTimeline(scoped)
		rep.HourlyTimeline = hourlyTimeline(scoped)
		return ctx.Err()
	})
	g.Go(func() error {
		rep.WeekdayActivity = weekdayActivity(scoped)
		rep.MonthActivity = monthActivity(scoped)
		rep.Heatmap = activityHeatmap(scoped)
		return ctx.Err()
	})
	g.Go(func() error {
		rep.WordFrequency = a.wordFrequency(scoped)
		return ctx.Err()
	})
	g.Go(func() error {
		rep.EmojiFrequency = a.emojiFrequency(scoped)
		return ctx.Err()
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rep, nil
}
