package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ltick/edf"
	"github.com/ltick/edf/edfio"
	"github.com/ltick/edf/edfopts"
)

var (
	showComments  bool
	showPositions bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Print every entry recognized in an EDF file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			_ = cmd.Help()
			return errors.New("expected exactly one file argument")
		}

		opts := edfopts.Build(
			optIf(showComments, edfopts.WithComments(), edfopts.WithoutComments()),
			optIf(showPositions, edfopts.WithPositions(), edfopts.WithoutPositions()),
		)

		entries, err := edfio.ParseFile(args[0], opts)
		if err != nil {
			return err
		}

		for _, e := range entries {
			printEntry(cmd, e)
		}
		return nil
	},
}

func init() {
	parseCmd.Flags().BoolVar(&showComments, "comments", true, "include comment entries")
	parseCmd.Flags().BoolVar(&showPositions, "positions", true, "include position spans")
}

func optIf(cond bool, yes, no edfopts.Option) edfopts.Option {
	if cond {
		return yes
	}
	return no
}

func printEntry(cmd *cobra.Command, e edf.Entry) {
	switch e.Kind {
	case edf.EntryPair:
		p := e.Pair
		tag := ""
		if p.IsComment {
			tag = " (commented out)"
		}
		if p.IsExported {
			tag += " (exported)"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "PAIR  %s=%q [%s]%s\n", p.Key, p.Value, p.Quote, tag)
	case edf.EntryComment:
		fmt.Fprintf(cmd.OutOrStdout(), "COMMENT @%d\n", e.Comment.Start.Offset)
	case edf.EntryError:
		fmt.Fprintf(cmd.OutOrStdout(), "ERROR %s @%d: %s\n", e.Err.Kind, e.Err.Offset, e.Err.Detail)
	}
}
