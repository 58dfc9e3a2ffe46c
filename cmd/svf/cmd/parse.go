package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/OpenTraceLab/OpenTraceSVF/pkg/svf"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <svf-file>",
	Short: "Parse an SVF file and print its action records",
	Long: `Parse an SVF file (or a zip archive containing a single SVF file) and
print one line per action record.

Examples:
  svf parse vectors.svf
  svf parse -v firmware.zip`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	filename := args[0]

	if verbose {
		fmt.Printf("Parsing SVF file: %s\n\n", filename)
	}

	stream, err := svf.NewParser().ParseFile(filename)
	if err != nil {
		return err
	}
	defer stream.Close()

	count := 0
	for {
		act, err := stream.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		count++
		printAction(act)
	}

	fmt.Printf("\n%d actions\n", count)
	return nil
}

func printAction(act svf.Action) {
	switch a := act.(type) {
	case svf.Frequency:
		if a.Hz == nil {
			fmt.Printf("%5d: FREQUENCY unlimited\n", a.Line)
		} else {
			fmt.Printf("%5d: FREQUENCY %g HZ\n", a.Line, *a.Hz)
		}
	case svf.Shift:
		fmt.Printf("%5d: %s %d bits TDI=%X TDO=%X end=%s\n",
			a.Line, a.Register, a.Data.Length, a.Data.TDI.Bytes, a.Data.TDO.Bytes, a.EndState)
		if verbose {
			fmt.Printf("       header %d bits TDI=%X, trailer %d bits TDI=%X, mask=%X smask=%X\n",
				a.Header.Length, a.Header.TDI.Bytes,
				a.Trailer.Length, a.Trailer.TDI.Bytes,
				a.Data.Mask.Bytes, a.Data.SMask.Bytes)
		}
	case svf.RunTest:
		clauses := []string{}
		if a.Clocks != nil {
			unit := "TCK"
			if a.UseSCK {
				unit = "SCK"
			}
			clauses = append(clauses, fmt.Sprintf("%d %s", *a.Clocks, unit))
		}
		if a.MinSeconds != nil {
			clauses = append(clauses, fmt.Sprintf("%g SEC", *a.MinSeconds))
		}
		if a.MaxSeconds != nil {
			clauses = append(clauses, fmt.Sprintf("MAXIMUM %g SEC", *a.MaxSeconds))
		}
		fmt.Printf("%5d: RUNTEST %s run=%s end=%s\n",
			a.Line, strings.Join(clauses, " "), a.RunState, a.EndState)
	case svf.StateSeq:
		names := make([]string, len(a.States))
		for i, s := range a.States {
			names[i] = s.String()
		}
		fmt.Printf("%5d: STATE %s\n", a.Line, strings.Join(names, " "))
	case svf.Trst:
		fmt.Printf("%5d: TRST %s\n", a.Line, a.Mode)
	default:
		fmt.Printf("%5d: %#v\n", act.SourceLine(), act)
	}
}
