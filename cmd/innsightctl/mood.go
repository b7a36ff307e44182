package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lucianoaf8/InnSight/client"
)

func init() {
	// log
	var emojis, journalText, date, timeOfDay string
	logCmd := &cobra.Command{
		Use:   "log",
		Short: "Log a mood entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			req := client.LogMoodRequest{
				Date:    date,
				Time:    timeOfDay,
				Journal: journalText,
			}
			if emojis != "" {
				req.Emojis = strings.Split(emojis, ",")
			}
			if err := c.LogMood(cmd.Context(), req); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, "Mood logged")
			return nil
		},
	}
	logCmd.Flags().StringVarP(&emojis, "emojis", "e", "", "Comma-separated emojis, up to three")
	logCmd.Flags().StringVarP(&journalText, "journal", "j", "", "Journal text")
	logCmd.Flags().StringVar(&date, "date", "", "Entry date YYYY-MM-DD (defaults to today)")
	logCmd.Flags().StringVar(&timeOfDay, "time", "", "Entry time HH:MM (defaults to now)")
	rootCmd.AddCommand(logCmd)

	// entries
	entriesCmd := &cobra.Command{
		Use:   "entries",
		Short: "List all mood entries, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			entries, err := c.Entries(cmd.Context())
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	rootCmd.AddCommand(entriesCmd)
}
