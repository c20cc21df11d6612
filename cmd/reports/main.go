package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flags struct {
	config string
	dir    string
}

var rootCmd = &cobra.Command{
	Use:          "reports",
	Short:        "Council investment reports",
	Long:         "Serve and render the council investment report pages from the record data service.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "path to a YAML config file")
	rootCmd.AddCommand(serveCmd, renderCmd)
	renderCmd.Flags().StringVar(&flags.dir, "dir", "", "read collections from exported JSON files in this directory")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
