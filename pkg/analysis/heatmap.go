package analysis

import (
	"github.com/prabeshj/chatlytics/pkg/models"
)

// weekdayNames is indexed by models.Message.WeekdayNum (Monday = 0)
var weekdayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// activityHeatmap builds the 7x24 weekday-by-period matrix. Every cell is
// present even when zero, so consumers can render the full grid directly.
// Rows run Monday to Sunday, columns run through the day starting at "00-1".
func activityHeatmap(corpus models.Corpus) Heatmap {
	cols := make([]string, 24)
	colIndex := make(map[string]int, 24)
	for h := 0; h < 24; h++ {
		label := models.PeriodLabel(h)
		cols[h] = label
		colIndex[label] = h
	}

	values := make([][]int, len(weekdayNames))
	for i := range values {
		values[i] = make([]int, len(cols))
	}
	for _, m := range corpus {
		values[m.WeekdayNum][colIndex[m.Period]]++
	}

	return Heatmap{
		Rows:   weekdayNames[:],
		Cols:   cols,
		Values: values,
	}
}
