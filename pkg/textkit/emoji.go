package textkit

import (
	"strings"

	"github.com/forPelevin/gomoji"
)

// EmojiClassifier answers whether a token is an emoji and strips emoji glyphs
// from text
type EmojiClassifier struct{}

// NewEmojiClassifier creates a new emoji classifier
func NewEmojiClassifier() *EmojiClassifier {
	return &EmojiClassifier{}
}

// IsEmoji reports whether token consists entirely of emoji glyphs. Tokens
// mixing emoji with other characters are not counted.
func (c *EmojiClassifier) IsEmoji(token string) bool {
	if token == "" || !gomoji.ContainsEmoji(token) {
		return false
	}
	return strings.TrimSpace(gomoji.RemoveEmojis(token)) == ""
}

// StripEmoji returns text with all emoji glyphs removed
func (c *EmojiClassifier) StripEmoji(text string) string {
	return gomoji.RemoveEmojis(text)
}
