package analysis

import (
	"strings"

	"github.com/prabeshj/chatlytics/pkg/models"
)

// wordTotal counts whitespace-delimited tokens across all message content.
// Media placeholders and punctuation count as tokens; no normalization is
// applied here.
func (a *Analyzer) wordTotal(corpus models.Corpus) int {
	total := 0
	for _, m := range corpus {
		total += len(strings.Fields(m.Content))
	}
	return total
}

// mediaTotal counts messages whose content is exactly the media placeholder
func (a *Analyzer) mediaTotal(corpus models.Corpus) int {
	total := 0
	for _, m := range corpus {
		if m.Content == models.MediaPlaceholder {
			total++
		}
	}
	return total
}

// linkTotal counts every URL the extractor finds in message content
func (a *Analyzer) linkTotal(corpus models.Corpus) int {
	total := 0
	for _, m := range corpus {
		total += len(a.urls.FindURLs(m.Content))
	}
	return total
}
