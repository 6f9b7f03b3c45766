package schedule

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"garden/entities"
	"garden/pkg/icons"
)

const dateLayout = "2006-01-02"

// missingDays is the sentinel for an absent or unparseable last_watered
// date; it pushes the plant straight into overdue.
const missingDays = 999

type Status string

const (
	StatusOverdue  Status = "overdue"
	StatusToday    Status = "today"
	StatusUpcoming Status = "upcoming"
)

type Entry struct {
	ID                uint   `json:"id"`
	Name              string `json:"name"`
	Location          string `json:"location"`
	DaysAgo           string `json:"days_ago"`
	WateringFrequency string `json:"watering_frequency"`
	Status            Status `json:"status"`
	StatusText        string `json:"status_text"`
	Icon              string `json:"icon"`
	DaysSince         int    `json:"days_since"`
}

var digits = regexp.MustCompile(`\d+`)

// ParseFrequency maps free-form watering frequency text to a day interval.
// Plants whose text yields no interval are left off the schedule.
func ParseFrequency(text string) (int, bool) {
	if text == "" {
		return 0, false
	}
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "daily") || strings.Contains(lower, "every day"):
		return 1, true
	case strings.Contains(lower, "week"):
		if m := digits.FindString(lower); m != "" {
			n, _ := strconv.Atoi(m)
			return n * 7, true
		}
		return 7, true
	case strings.Contains(lower, "day"):
		if m := digits.FindString(lower); m != "" {
			n, _ := strconv.Atoi(m)
			return n, true
		}
	}
	return 0, false
}

// DaysSince returns whole days between dateStr and today, or 999 when
// dateStr is missing or not a YYYY-MM-DD date.
func DaysSince(dateStr string, today time.Time) int {
	d, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return missingDays
	}
	return int(truncateDay(today).Sub(d).Hours() / 24)
}

// DaysAgo renders a date as a human label: "Today", "Yesterday",
// "K days ago", or "Unknown" when the date does not parse.
func DaysAgo(dateStr string, today time.Time) string {
	d, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return "Unknown"
	}
	days := int(truncateDay(today).Sub(d).Hours() / 24)
	switch days {
	case 0:
		return "Today"
	case 1:
		return "Yesterday"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}

// Build derives the watering schedule for the dashboard. Plants without a
// recognizable frequency are skipped; they still show in the plant list.
func Build(plants []entities.Plant, today time.Time) []Entry {
	var out []Entry
	for _, p := range plants {
		interval, ok := ParseFrequency(p.WateringFrequency)
		if !ok {
			continue
		}
		daysSince := DaysSince(p.LastWatered, today)
		status, text := classify(interval, daysSince)
		out = append(out, Entry{
			ID:                p.ID,
			Name:              p.Name,
			Location:          p.Location,
			DaysAgo:           DaysAgo(p.LastWatered, today),
			WateringFrequency: p.WateringFrequency,
			Status:            status,
			StatusText:        text,
			Icon:              icons.ForType(p.Type),
			DaysSince:         daysSince,
		})
	}

	// Single descending sort on the (status rank, days_since) composite.
	// This reproduces the historical dashboard ordering; see DESIGN.md.
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := rank(out[i].Status), rank(out[j].Status)
		if ri != rj {
			return ri > rj
		}
		return out[i].DaysSince > out[j].DaysSince
	})
	return out
}

func rank(s Status) int {
	switch s {
	case StatusOverdue:
		return 0
	case StatusToday:
		return 1
	default:
		return 2
	}
}

func classify(interval, daysSince int) (Status, string) {
	remaining := interval - daysSince

	if daysSince >= interval {
		overdue := daysSince - interval
		switch overdue {
		case 0:
			return StatusOverdue, "Water Today (Due)"
		case 1:
			return StatusOverdue, "Overdue by 1 day"
		default:
			return StatusOverdue, fmt.Sprintf("Overdue by %d days", overdue)
		}
	}
	if remaining == 0 {
		return StatusToday, "Water Today (Due Now)"
	}
	if remaining == 1 {
		return StatusUpcoming, "Water in 1 day"
	}
	return StatusUpcoming, fmt.Sprintf("Water in %d days", remaining)
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
