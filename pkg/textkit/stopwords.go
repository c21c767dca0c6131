package textkit

import (
	_ "embed"
	"strings"
)

// stopwordData is the generic multi-language stopword list bundled with the
// binary, one word per line. Lines starting with '#' are comments.
//
//go:embed stopwords.txt
var stopwordData string

// GenericStopwords returns the bundled multi-language stopword set. The
// returned map is freshly built per call; callers keep and reuse it.
func GenericStopwords() map[string]struct{} {
	set := make(map[string]struct{})
	for _, line := range strings.Split(stopwordData, "\n") {
		word := strings.TrimSpace(line)
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		set[strings.ToLower(word)] = struct{}{}
	}
	return set
}
