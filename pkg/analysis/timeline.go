package analysis

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/prabeshj/chatlytics/pkg/models"
)

// monthlyTimeline groups messages by (year, month) in chronological order,
// labelled "MonthName-Year"
func monthlyTimeline(corpus models.Corpus) Series {
	counts := make(map[int]int)
	for _, m := range corpus {
		counts[m.Year*100+m.MonthNum]++
	}

	keys := sortedKeys(counts)
	s := newSeries(len(keys))
	for _, k := range keys {
		year, month := k/100, k%100
		s.Labels = append(s.Labels, fmt.Sprintf("%s-%d", time.Month(month).String(), year))
		s.Counts = append(s.Counts, counts[k])
	}
	return s
}

// dailyTimeline groups messages by calendar date in chronological order,
// labelled with the ISO date string
func dailyTimeline(corpus models.Corpus) Series {
	counts := make(map[string]int)
	for _, m := range corpus {
		counts[m.Timestamp.Format("2006-01-02")]++
	}

	dates := make([]string, 0, len(counts))
	for d := range counts {
		dates = append(dates, d)
	}
	sort.Strings(dates) // ISO dates sort chronologically

	s := newSeries(len(dates))
	for _, d := range dates {
		s.Labels = append(s.Labels, d)
		s.Counts = append(s.Counts, counts[d])
	}
	return s
}

// hourlyTimeline groups messages by hour of day across all dates, ascending
// by hour value. Hours with no messages are absent, matching the other
// timelines.
func hourlyTimeline(corpus models.Corpus) Series {
	counts := make(map[int]int)
	for _, m := range corpus {
		counts[m.Hour]++
	}

	hours := sortedKeys(counts)
	s := newSeries(len(hours))
	for _, h := range hours {
		s.Labels = append(s.Labels, strconv.Itoa(h))
		s.Counts = append(s.Counts, counts[h])
	}
	return s
}

// weekdayActivity aggregates across all weeks, answering which weekday is
// generally busiest. Order is Monday first.
func weekdayActivity(corpus models.Corpus) Series {
	counts := make(map[int]int)
	for _, m := range corpus {
		counts[m.WeekdayNum]++
	}

	nums := sortedKeys(counts)
	s := newSeries(len(nums))
	for _, n := range nums {
		s.Labels = append(s.Labels, weekdayNames[n])
		s.Counts = append(s.Counts, counts[n])
	}
	return s
}

// monthActivity aggregates across all years, answering which month is
// generally busiest. Order is January first.
func monthActivity(corpus models.Corpus) Series {
	counts := make(map[int]int)
	for _, m := range corpus {
		counts[m.MonthNum]++
	}

	nums := sortedKeys(counts)
	s := newSeries(len(nums))
	for _, n := range nums {
		s.Labels = append(s.Labels, time.Month(n).String())
		s.Counts = append(s.Counts, counts[n])
	}
	return s
}

func newSeries(capacity int) Series {
	return Series{
		Labels: make([]string, 0, capacity),
		Counts: make([]int, 0, capacity),
	}
}

func sortedKeys(counts map[int]int) []int {
	keys := make([]int, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
