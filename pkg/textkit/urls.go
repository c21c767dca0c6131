// Package textkit provides the text capabilities the aggregation engine
// consumes: URL extraction, emoji classification, and stopword lists. Each
// capability is a small value the caller owns and injects, not a package
// singleton.
package textkit

import (
	"regexp"

	"mvdan.cc/xurls/v2"
)

// URLExtractor finds URLs inside message content
type URLExtractor struct {
	rx *regexp.Regexp
}

// NewURLExtractor creates an extractor using the relaxed ruleset, which also
// recognizes bare domains like "example.com" the way chat users write them.
func NewURLExtractor() *URLExtractor {
	return &URLExtractor{rx: xurls.Relaxed()}
}

// FindURLs returns all URLs in text, in order of appearance
func (e *URLExtractor) FindURLs(text string) []string {
	return e.rx.FindAllString(text, -1)
}
