package models

import (
	"sort"
	"strconv"
	"time"
)

// GroupNotification is the sentinel sender assigned to entries that carry no
// "Sender: " prefix, such as subject changes and join/leave notices.
const GroupNotification = "group_notification"

// MediaPlaceholder is the exact content WhatsApp substitutes for attachments
// in an exported transcript.
const MediaPlaceholder = "<Media omitted>"

// Message represents one parsed transcript entry
type Message struct {
	Timestamp time.Time `json:"timestamp"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`

	// Calendar fields derived once at build time
	Year        int    `json:"year"`
	MonthName   string `json:"month_name"`
	MonthNum    int    `json:"month_num"`
	Day         int    `json:"day"`
	WeekdayName string `json:"weekday_name"`
	WeekdayNum  int    `json:"weekday_num"` // Monday = 0 ... Sunday = 6
	Hour        int    `json:"hour"`
	Minute      int    `json:"minute"`
	Period      string `json:"period"` // hour bucket label, e.g. "10-11"
}

// NewMessage builds a Message and computes its derived calendar fields
func NewMessage(ts time.Time, sender, content string) Message {
	return Message{
		Timestamp:   ts,
		Sender:      sender,
		Content:     content,
		Year:        ts.Year(),
		MonthName:   ts.Month().String(),
		MonthNum:    int(ts.Month()),
		Day:         ts.Day(),
		WeekdayName: ts.Weekday().String(),
		WeekdayNum:  WeekdayNum(ts.Weekday()),
		Hour:        ts.Hour(),
		Minute:      ts.Minute(),
		Period:      PeriodLabel(ts.Hour()),
	}
}

// WeekdayNum converts time.Weekday (Sunday = 0) to the Monday = 0 numbering
// used by the weekly aggregations.
func WeekdayNum(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

// PeriodLabel returns the hour-bucket label for an hour of day. The two edge
// buckets keep their historical spellings: 23 -> "23-00" and 0 -> "00-1".
func PeriodLabel(hour int) string {
	switch hour {
	case 23:
		return "23-00"
	case 0:
		return "00-1"
	default:
		return strconv.Itoa(hour) + "-" + strconv.Itoa(hour+1)
	}
}

// Corpus is the ordered sequence of parsed messages for one transcript.
// Order is appearance order in the source; a Corpus is never mutated after
// construction.
type Corpus []Message

// FilterBySender returns the subsequence of messages authored by sender.
// An unknown sender yields an empty Corpus, not an error.
func (c Corpus) FilterBySender(sender string) Corpus {
	filtered := make(Corpus, 0, len(c))
	for _, m := range c {
		if m.Sender == sender {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

// Senders returns the distinct senders in the corpus, sorted, with the
// group-notification sentinel removed. This is the list presented to users
// when choosing a stats filter.
func (c Corpus) Senders() []string {
	seen := make(map[string]bool)
	senders := make([]string, 0)
	for _, m := range c {
		if m.Sender == GroupNotification || seen[m.Sender] {
			continue
		}
		seen[m.Sender] = true
		senders = append(senders, m.Sender)
	}
	sort.Strings(senders)
	return senders
}
