package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "svf",
	Short: "SVF parser and inspector",
	Long: `Parses Serial Vector Format (SVF) test vector files into the action
records a JTAG execution engine replays.

Examples:
  svf parse vectors.svf        # Print every action in the file
  svf parse archive.zip        # Works on a zip holding a single .svf
  svf lint vectors.svf         # Check the file, print nothing but errors`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
