// Package ingestion turns a raw exported chat transcript into an ordered
// corpus of typed message records. It implements the two coupled stages of
// the pipeline: the entry splitter, which locates timestamp markers and cuts
// the text into segments, and the record builder, which parses each segment
// into a models.Message with derived calendar fields.
package ingestion

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/prabeshj/chatlytics/pkg/models"
)

var (
	// entryMarker matches the timestamp prefix that starts every transcript
	// entry, e.g. "1/1/23, 10:00 - ". Anything between two markers belongs to
	// the first of them, so multi-line messages survive splitting intact.
	entryMarker = regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{2,4},\s\d{1,2}:\d{2}\s-\s`)

	// senderSplit captures the sender from the body's longest initial run up
	// to the first ": " separator. Bodies without such a separator are system
	// notifications.
	senderSplit = regexp.MustCompile(`(?s)^([\w\W]+?):\s`)
)

// timestampLayout accepts one- or two-digit day, month, hour and a strict
// two-digit year, matching the export format "D/M/YY, HH:MM - ".
const timestampLayout = "2/1/06, 15:04 - "

// ParseError reports a transcript entry whose timestamp does not match the
// expected format. Timestamp parsing is atomic: one bad entry fails the whole
// batch and no partial corpus is produced.
type ParseError struct {
	Entry int    // zero-based index of the offending entry
	Text  string // raw timestamp text as it appears in the transcript
	Err   error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("entry %d: cannot parse timestamp %q: %v", e.Entry, e.Text, e.Err)
}

// Unwrap returns the underlying time parse error
func (e *ParseError) Unwrap() error {
	return e.Err
}

// segment is one raw (timestamp-text, body-text) pair produced by the splitter
type segment struct {
	timestamp string
	body      string
}

// Parser converts transcript text into a corpus of messages
type Parser struct{}

// NewParser creates a new transcript parser instance
func NewParser() *Parser {
	return &Parser{}
}

// Parse splits the transcript into entries and builds one message record per
// entry. A transcript without a single timestamp marker yields an empty
// corpus and no error; a timestamp that fails the strict D/M/YY, HH:MM
// pattern yields a *ParseError and no corpus.
func (p *Parser) Parse(text string) (models.Corpus, error) {
	segments := split(text)
	if len(segments) == 0 {
		return models.Corpus{}, nil
	}

	// Parse all timestamps first so a bad entry fails the batch before any
	// records are built.
	timestamps := make([]time.Time, len(segments))
	for i, seg := range segments {
		ts, err := time.Parse(timestampLayout, seg.timestamp)
		if err != nil {
			return nil, &ParseError{Entry: i, Text: seg.timestamp, Err: err}
		}
		timestamps[i] = ts
	}

	corpus := make(models.Corpus, 0, len(segments))
	for i, seg := range segments {
		sender, content := splitSender(seg.body)
		corpus = append(corpus, models.NewMessage(timestamps[i], sender, content))
	}
	return corpus, nil
}

// split locates all entry markers and cuts the text into segments. The
// scanner alternates between searching for the next marker and accumulating
// body text for the current one; text before the first marker cannot be
// attributed to any entry and is discarded.
func split(text string) []segment {
	marks := entryMarker.FindAllStringIndex(text, -1)
	if len(marks) == 0 {
		return nil
	}

	segments := make([]segment, 0, len(marks))
	for i, m := range marks {
		end := len(text)
		if i+1 < len(marks) {
			end = marks[i+1][0]
		}
		segments = append(segments, segment{
			timestamp: text[m[0]:m[1]],
			body:      trimTerminator(text[m[1]:end]),
		})
	}
	return segments
}

// trimTerminator removes the single line terminator that separates a body
// from the next entry's marker. Interior newlines of multi-line messages are
// kept.
func trimTerminator(body string) string {
	body = strings.TrimSuffix(body, "\n")
	return strings.TrimSuffix(body, "\r")
}

// splitSender cuts a body into (sender, content) at the first ": " separator.
// Bodies without one are group notifications and keep their full text as
// content. When message text itself contains ": " before the real separator
// the first occurrence wins; see DESIGN.md for why this heuristic is kept.
func splitSender(body string) (sender, content string) {
	loc := senderSplit.FindStringSubmatchIndex(body)
	if loc == nil {
		return models.GroupNotification, body
	}
	return body[loc[2]:loc[3]], body[loc[1]:]
}
