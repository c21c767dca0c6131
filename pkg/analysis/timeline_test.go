package analysis

import (
	"reflect"
	"testing"
	"time"

	"github.com/prabeshj/chatlytics/pkg/models"
)

func at(year int, month time.Month, day, hour int) models.Message {
	ts := time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
	return models.NewMessage(ts, "Alice", "hi")
}

func TestMonthlyTimeline(t *testing.T) {
	corpus := models.Corpus{
		at(2023, time.February, 1, 10),
		at(2022, time.December, 5, 9),
		at(2023, time.February, 20, 18),
		at(2023, time.January, 2, 8),
	}

	s := monthlyTimeline(corpus)
	wantLabels := []string{"December-2022", "January-2023", "February-2023"}
	wantCounts := []int{1, 1, 2}

	if !reflect.DeepEqual(s.Labels, wantLabels) {
		t.Errorf("Labels = %v, want %v", s.Labels, wantLabels)
	}
	if !reflect.DeepEqual(s.Counts, wantCounts) {
		t.Errorf("Counts = %v, want %v", s.Counts, wantCounts)
	}
}

func TestDailyTimeline(t *testing.T) {
	corpus := models.Corpus{
		at(2023, time.January, 2, 10),
		at(2023, time.January, 1, 9),
		at(2023, time.January, 2, 23),
	}

	s := dailyTimeline(corpus)
	wantLabels := []string{"2023-01-01", "2023-01-02"}
	wantCounts := []int{1, 2}

	if !reflect.DeepEqual(s.Labels, wantLabels) {
		t.Errorf("Labels = %v, want %v", s.Labels, wantLabels)
	}
	if !reflect.DeepEqual(s.Counts, wantCounts) {
		t.Errorf("Counts = %v, want %v", s.Counts, wantCounts)
	}
}

func TestHourlyTimelineAggregatesAcrossDates(t *testing.T) {
	corpus := models.Corpus{
		at(2023, time.January, 1, 10),
		at(2023, time.January, 2, 10),
		at(2023, time.January, 3, 7),
	}

	s := hourlyTimeline(corpus)
	wantLabels := []string{"7", "10"}
	wantCounts := []int{1, 2}

	if !reflect.DeepEqual(s.Labels, wantLabels) {
		t.Errorf("Labels = %v, want %v", s.Labels, wantLabels)
	}
	if !reflect.DeepEqual(s.Counts, wantCounts) {
		t.Errorf("Counts = %v, want %v", s.Counts, wantCounts)
	}
}

func TestWeekdayActivityOrder(t *testing.T) {
	corpus := models.Corpus{
		at(2023, time.January, 1, 10), // Sunday
		at(2023, time.January, 2, 10), // Monday
		at(2023, time.January, 8, 10), // Sunday
	}

	s := weekdayActivity(corpus)
	wantLabels := []string{"Monday", "Sunday"}
	wantCounts := []int{1, 2}

	if !reflect.DeepEqual(s.Labels, wantLabels) {
		t.Errorf("Labels = %v, want %v", s.Labels, wantLabels)
	}
	if !reflect.DeepEqual(s.Counts, wantCounts) {
		t.Errorf("Counts = %v, want %v", s.Counts, wantCounts)
	}
}

func TestMonthActivityAggregatesAcrossYears(t *testing.T) {
	corpus := models.Corpus{
		at(2022, time.March, 1, 10),
		at(2023, time.March, 1, 10),
		at(2023, time.January, 1, 10),
	}

	s := monthActivity(corpus)
	wantLabels := []string{"January", "March"}
	wantCounts := []int{1, 2}

	if !reflect.DeepEqual(s.Labels, wantLabels) {
		t.Errorf("Labels = %v, want %v", s.Labels, wantLabels)
	}
	if !reflect.DeepEqual(s.Counts, wantCounts) {
		t.Errorf("Counts = %v, want %v", s.Counts, wantCounts)
	}
}
