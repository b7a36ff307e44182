package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	intentionCmd := &cobra.Command{Use: "intention", Short: "Daily intention operations"}

	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Show today's intention",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			text, err := c.TodayIntention(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, text)
			return nil
		},
	}
	intentionCmd.AddCommand(getCmd)

	setCmd := &cobra.Command{
		Use:   "set TEXT",
		Short: "Set today's intention",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			if err := c.SaveIntention(cmd.Context(), strings.Join(args, " ")); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, "Saved")
			return nil
		},
	}
	intentionCmd.AddCommand(setCmd)

	rootCmd.AddCommand(intentionCmd)
}
