package analysis

import (
	"sort"
	"strings"

	"github.com/prabeshj/chatlytics/pkg/models"
)

// emojiFrequency counts whitespace-delimited tokens the classifier judges to
// be emoji, sorted by count descending with ties kept in first-encounter
// order
func (a *Analyzer) emojiFrequency(corpus models.Corpus) []EmojiCount {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, m := range corpus {
		for _, token := range strings.Fields(m.Content) {
			if !a.emoji.IsEmoji(token) {
				continue
			}
			if _, seen := counts[token]; !seen {
				order = append(order, token)
			}
			counts[token]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	freq := make([]EmojiCount, 0, len(order))
	for _, e := range order {
		freq = append(freq, EmojiCount{Emoji: e, Count: counts[e]})
	}
	return freq
}
