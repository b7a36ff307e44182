package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lucianoaf8/InnSight/pkg/mood"
)

func init() {
	var days int
	var showAll bool
	dashboardCmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show streak, intention and day-grouped history",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			dash, err := c.Dashboard(cmd.Context(), days, showAll)
			if err != nil {
				return err
			}

			out := os.Stdout
			_, _ = fmt.Fprintf(out, "Streak: %d day(s)\n", dash.Streak)
			if dash.Intention != "" {
				_, _ = fmt.Fprintf(out, "Today's intention: %s\n", dash.Intention)
			}
			for _, day := range dash.Days {
				_, _ = fmt.Fprintf(out, "\n%s\n", day.Date)
				for _, e := range day.Entries {
					sentiment := mood.Classify(e.EmojiList())
					_, _ = fmt.Fprintf(out, "  %s  %-8s [%s/%s]", e.Time, e.Period, sentiment, mood.BorderToken(sentiment))
					if e.Emojis != "" {
						_, _ = fmt.Fprintf(out, " %s", e.Emojis)
					}
					if e.Journal != "" {
						_, _ = fmt.Fprintf(out, "  %s", e.Journal)
					}
					_, _ = fmt.Fprintln(out)
				}
			}
			return nil
		},
	}
	dashboardCmd.Flags().IntVarP(&days, "days", "d", 2, "Number of most-recent days to show")
	dashboardCmd.Flags().BoolVar(&showAll, "all", false, "Show the full history")
	rootCmd.AddCommand(dashboardCmd)
}
