package cmd

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/ltick/edf"
	"github.com/ltick/edf/edfio"
	"github.com/ltick/edf/envmap"
)

var lintCmd = &cobra.Command{
	Use:   "lint [file]",
	Short: "Exit non-zero and print every defect found in an EDF file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			_ = cmd.Help()
			return errors.New("expected exactly one file argument")
		}

		entries, err := edfio.ParseFile(args[0], edf.Full())
		if err != nil {
			return err
		}

		m := envmap.FromEntries(entries)
		if !m.HasErrors() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d pairs, no defects\n", args[0], len(m.Pairs()))
			return nil
		}

		var merr *multierror.Error
		errors.As(m.Errors(), &merr)
		for _, werr := range merr.WrappedErrors() {
			fmt.Fprintln(cmd.ErrOrStderr(), werr)
		}
		return fmt.Errorf("%s: %d defect(s) found", args[0], merr.Len())
	},
}
