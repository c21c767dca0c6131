package analysis

import (
	"math"
	"sort"

	"github.com/prabeshj/chatlytics/pkg/models"
)

// busiestSenders ranks senders by message volume and computes each one's
// percentage share of the total, rounded to two decimals. At most
// maxTopSenders entries are returned; ties keep first-encounter order.
func (a *Analyzer) busiestSenders(corpus models.Corpus) ([]string, []float64) {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, m := range corpus {
		if _, seen := counts[m.Sender]; !seen {
			order = append(order, m.Sender)
		}
		counts[m.Sender]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > maxTopSenders {
		order = order[:maxTopSenders]
	}

	total := len(corpus)
	shares := make([]float64, len(order))
	for i, sender := range order {
		shares[i] = math.Round(10000*float64(counts[sender])/float64(total)) / 100
	}
	return order, shares
}
