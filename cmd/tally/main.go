// tally is a cost allocation service for intercompany service agreements.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tally/internal/interfaces/cli/migrate"
	"tally/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tally",
		Short: "Cost allocation service for intercompany service agreements",
	}

	rootCmd.AddCommand(server.NewCommand())
	rootCmd.AddCommand(migrate.NewCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
