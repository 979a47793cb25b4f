// Command catalogctl holds administrative tasks for the catalog server.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "catalogctl",
		Short:        "Catalog server administration",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringP("config", "c", "", "path to the JSON config file")
	root.AddCommand(newCreateUserCmd())
	return root
}
