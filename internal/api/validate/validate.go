package validate

import (
	"fmt"

	"github.com/lucianoaf8/InnSight/pkg/journal"
)

const (
	maxEmojis       = 3
	maxJournalLen   = 2000
	maxIntentionLen = 255
)

// Date validates a "2006-01-02" calendar date string.
func Date(v string) error {
	if v == "" {
		return fmt.Errorf("date is required")
	}
	if _, err := journal.ParseDate(v); err != nil {
		return fmt.Errorf("date must be a valid YYYY-MM-DD calendar date")
	}
	return nil
}

// Time validates a "15:04" 24-hour time string.
func Time(v string) error {
	if v == "" {
		return fmt.Errorf("time is required")
	}
	if _, err := journal.ParseTime(v); err != nil {
		return fmt.Errorf("time must be a valid HH:MM 24-hour time")
	}
	return nil
}

// Period validates the period bucket when the caller supplies one.
func Period(v string) error {
	if v == "" {
		return nil
	}
	if !journal.Period(v).Valid() {
		return fmt.Errorf("period must be one of morning, afternoon, evening")
	}
	return nil
}

// Emojis validates the comma-joined emoji selection. Empty is allowed; an
// entry without emojis is still valid and simply carries no mood summary.
func Emojis(v string) error {
	if n := len(journal.SplitEmojis(v)); n > maxEmojis {
		return fmt.Errorf("at most %d emojis per entry, got %d", maxEmojis, n)
	}
	return nil
}

// Journal validates the free-text journal field.
func Journal(v string) error {
	if len(v) > maxJournalLen {
		return fmt.Errorf("journal exceeds %d characters", maxJournalLen)
	}
	return nil
}

// Intention validates the daily-intention text.
func Intention(v string) error {
	if len(v) > maxIntentionLen {
		return fmt.Errorf("intention exceeds %d characters", maxIntentionLen)
	}
	return nil
}

// -------- Request specific helpers ----------

// LogMood validates the fields of a log-mood request after server-side
// defaults have been filled in.
func LogMood(date, timeOfDay, period, emojis, journalText string) error {
	if err := Date(date); err != nil {
		return err
	}
	if err := Time(timeOfDay); err != nil {
		return err
	}
	if err := Period(period); err != nil {
		return err
	}
	if err := Emojis(emojis); err != nil {
		return err
	}
	return Journal(journalText)
}
