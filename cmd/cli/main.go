package main

import (
	"fmt"
	"os"

	"github.com/dealercoach/dealercoach/cmd/cli/seed"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func init() {
	// Missing .env is fine, the environment may be configured externally.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	rootCmd.AddGroup(seed.Group)
	rootCmd.AddCommand(seed.Demo)
	rootCmd.AddCommand(seed.Invite)
}

var rootCmd = &cobra.Command{
	Use:  "dealercoach-cli",
	Long: `Command line utilities for the dealercoach training backend`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
