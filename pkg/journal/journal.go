// Package journal defines the mood-journal domain types shared by the
// service, the client, and the derivation packages.
package journal

import (
	"strings"
	"time"
)

// Entry is one mood-logging event. Date and Time are kept as the wire
// strings ("2006-01-02" and "15:04"); Emojis is the comma-joined form the
// backend stores and returns.
type Entry struct {
	EntryID      string    `json:"entryId,omitempty"`
	UserID       string    `json:"-"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	Period       Period    `json:"period"`
	Emojis       string    `json:"emojis"`
	Journal      string    `json:"journal"`
	CreationTime time.Time `json:"creationTime,omitempty"`
}

// EmojiList splits the comma-joined emoji string. Empty segments are
// dropped so a trailing comma does not produce a phantom emoji.
func (e Entry) EmojiList() []string {
	return SplitEmojis(e.Emojis)
}

// SplitEmojis splits a comma-joined emoji string into its symbols.
// Returns nil for an empty string.
func SplitEmojis(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// JoinEmojis is the inverse of SplitEmojis, producing the stored form.
func JoinEmojis(emojis []string) string {
	return strings.Join(emojis, ",")
}

// Intention is the per-day intention a user sets on the dashboard.
type Intention struct {
	UserID       string    `json:"-"`
	Date         string    `json:"date"`
	Intention    string    `json:"intention"`
	CreationTime time.Time `json:"creationTime,omitempty"`
}
