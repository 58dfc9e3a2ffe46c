package cmd

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceSVF/pkg/svf"
	"github.com/spf13/cobra"
)

var lintCmd = &cobra.Command{
	Use:   "lint <svf-file>...",
	Short: "Check SVF files and report only success or failure",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)
}

func runLint(cmd *cobra.Command, args []string) error {
	failed := 0
	for _, filename := range args {
		// Fresh parser per file: lint must not share sticky state.
		stream, err := svf.NewParser().ParseFile(filename)
		if err == nil {
			var acts []svf.Action
			acts, err = stream.All()
			stream.Close()
			if err == nil {
				fmt.Printf("%s: OK (%d actions)\n", filename, len(acts))
				continue
			}
		}
		failed++
		fmt.Println(err)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}
	return nil
}
