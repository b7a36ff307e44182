// Package mood classifies an entry's emoji set into a sentiment bucket and
// maps the bucket to the display tokens the presentation layer styles with.
package mood

// Sentiment is the coarse emotional bucket derived from an entry's emojis.
type Sentiment string

const (
	// SentimentNone means the entry carries no emojis; cards render without
	// a mood summary and use the default border.
	SentimentNone        Sentiment = "none"
	SentimentPositive    Sentiment = "positive"
	SentimentNeutral     Sentiment = "neutral"
	SentimentChallenging Sentiment = "challenging"
)

// The curated membership sets. Classification is set membership, not
// position: one positive symbol anywhere makes the entry positive.
var (
	positive    = toSet("😊", "😁", "😀", "🥰", "😌", "😎", "🔆")
	challenging = toSet("😔", "😢", "😭", "😡", "😤", "😰")
)

// Classify buckets an emoji set. Positive wins over challenging; symbols
// outside both curated sets (thinking, surprised, ...) are neutral. An
// empty set is SentimentNone.
func Classify(emojis []string) Sentiment {
	if len(emojis) == 0 {
		return SentimentNone
	}
	for _, e := range emojis {
		if _, ok := positive[e]; ok {
			return SentimentPositive
		}
	}
	for _, e := range emojis {
		if _, ok := challenging[e]; ok {
			return SentimentChallenging
		}
	}
	return SentimentNeutral
}

// BorderToken maps a sentiment to the theme token used for the entry
// card's accent border. None and neutral share the primary token; for
// none it is purely layout, not a sentiment signal.
func BorderToken(s Sentiment) string {
	switch s {
	case SentimentPositive:
		return "support"
	case SentimentChallenging:
		return "accent"
	default:
		return "primary"
	}
}

func toSet(symbols ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(symbols))
	for _, s := range symbols {
		m[s] = struct{}{}
	}
	return m
}
