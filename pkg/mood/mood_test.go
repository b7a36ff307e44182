package mood

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		name   string
		emojis []string
		want   Sentiment
	}{
		{"empty is none", nil, SentimentNone},
		{"positive", []string{"😊"}, SentimentPositive},
		{"challenging", []string{"😢"}, SentimentChallenging},
		{"unknown symbols are neutral", []string{"🤔", "😮"}, SentimentNeutral},
		{"positive wins over challenging", []string{"😢", "😊"}, SentimentPositive},
		{"one positive among neutrals", []string{"🤔", "😎"}, SentimentPositive},
		{"one challenging among neutrals", []string{"🤔", "😡"}, SentimentChallenging},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.emojis); got != tc.want {
				t.Errorf("Classify(%v) = %q, want %q", tc.emojis, got, tc.want)
			}
		})
	}
}

func TestClassifyCuratedSets(t *testing.T) {
	for _, e := range []string{"😊", "😁", "😀", "🥰", "😌", "😎", "🔆"} {
		if got := Classify([]string{e}); got != SentimentPositive {
			t.Errorf("Classify(%q) = %q, want positive", e, got)
		}
	}
	for _, e := range []string{"😔", "😢", "😭", "😡", "😤", "😰"} {
		if got := Classify([]string{e}); got != SentimentChallenging {
			t.Errorf("Classify(%q) = %q, want challenging", e, got)
		}
	}
}

func TestBorderToken(t *testing.T) {
	cases := []struct {
		s    Sentiment
		want string
	}{
		{SentimentPositive, "support"},
		{SentimentChallenging, "accent"},
		{SentimentNeutral, "primary"},
		{SentimentNone, "primary"},
	}
	for _, tc := range cases {
		if got := BorderToken(tc.s); got != tc.want {
			t.Errorf("BorderToken(%q) = %q, want %q", tc.s, got, tc.want)
		}
	}
}
