package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lucianoaf8/InnSight/client"
)

var (
	apiFlag   string
	tokenFlag string
	devFlag   bool
	rootCmd   = &cobra.Command{
		Use:   "innsightctl",
		Short: "CLI client for the InnSight backend REST API",
	}
)

// newClient builds an SDK client from the persistent flags. The token
// falls back to INNSIGHT_API_KEY, then to the shared dev key with --dev.
func newClient() (*client.Client, error) {
	token := tokenFlag
	if token == "" {
		token = os.Getenv("INNSIGHT_API_KEY")
	}
	if token == "" && devFlag {
		return client.NewWithDevMode(apiFlag)
	}
	return client.New(apiFlag, token)
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&apiFlag, "api", "a", "http://localhost:8080", "InnSight service base URL")
	rootCmd.PersistentFlags().StringVarP(&tokenFlag, "token", "t", "", "Bearer token (defaults to INNSIGHT_API_KEY)")
	rootCmd.PersistentFlags().BoolVar(&devFlag, "dev", false, "Use the shared local development key")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
