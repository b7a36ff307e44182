package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	pingCmd := &cobra.Command{
		Use:   "ping",
		Short: "Check the service is reachable",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			if err := c.Ping(cmd.Context()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, "pong")
			return nil
		},
	}
	rootCmd.AddCommand(pingCmd)
}
