package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configDir string

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tweetsink",
		Short: "Store scraped tweets in PostgreSQL, skipping ids already seen",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	root.PersistentFlags().StringVar(&configDir, "config-dir", ".", "directory holding app.yaml and .env")

	root.AddCommand(serveCmd())
	root.AddCommand(schemaCmd())

	return root
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the ingestion HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func schemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Create the users and tweets tables if they do not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchema(cmd.Context())
		},
	}
}
