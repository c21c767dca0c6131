package analysis

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/prabeshj/chatlytics/pkg/models"
)

// urlToken matches http-prefixed runs inside message text. Word frequency
// strips these wholesale; counting them is linkTotal's job.
var urlToken = regexp.MustCompile(`http\S+`)

// nepaliStopwords is a small fixed set of romanized Nepali function words
// that the generic list does not cover
var nepaliStopwords = wordSet(
	"cha", "chha", "ho", "haina", "hami", "hamro", "mero", "tero", "timi",
	"lai", "le", "ko", "ki", "ka", "ra", "ni", "ta", "pani", "yo", "tyo",
	"ani", "tara", "aba", "bhayo", "garne", "gareko", "huncha",
)

// noiseWords are system/notification fragments that survive normalization
// but carry no conversational meaning
var noiseWords = wordSet(
	"media", "omitted", "message", "deleted", "joined", "left", "added",
	"removed", "changed", "created", "group",
)

// wordFrequency produces the token frequency table in first-encounter order.
// Content is lower-cased, media placeholders are skipped, URLs and emoji are
// stripped, and every character outside ASCII letters, the Devanagari block,
// and whitespace is removed before tokenizing. Tokens of length <= 2 and
// tokens in any stopword set are dropped.
func (a *Analyzer) wordFrequency(corpus models.Corpus) []WordCount {
	mediaLower := strings.ToLower(models.MediaPlaceholder)

	var cleaned strings.Builder
	for _, m := range corpus {
		content := strings.ToLower(strings.TrimSpace(m.Content))
		if content == mediaLower {
			continue
		}
		content = urlToken.ReplaceAllString(content, "")
		content = a.emoji.StripEmoji(content)
		content = strings.Map(keepWordRune, content)
		cleaned.WriteString(content)
		cleaned.WriteByte(' ')
	}

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, token := range strings.Fields(cleaned.String()) {
		if utf8.RuneCountInString(token) <= 2 {
			continue
		}
		if _, ok := a.stopwords[token]; ok {
			continue
		}
		if _, ok := nepaliStopwords[token]; ok {
			continue
		}
		if _, ok := noiseWords[token]; ok {
			continue
		}
		if _, seen := counts[token]; !seen {
			order = append(order, token)
		}
		counts[token]++
	}

	freq := make([]WordCount, 0, len(order))
	for _, token := range order {
		freq = append(freq, WordCount{Word: token, Count: counts[token]})
	}
	return freq
}

// keepWordRune keeps ASCII letters, Devanagari characters, and whitespace;
// everything else is dropped
func keepWordRune(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
		return r
	case r >= 0x0900 && r <= 0x097F: // Devanagari block
		return r
	case r == ' ' || r == '\t' || r == '\n' || r == '\r':
		return r
	default:
		return -1
	}
}

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
