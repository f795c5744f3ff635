// Package keywords implements the keywords command.
package keywords

import (
	"github.com/spf13/cobra"

	"github.com/asakit/asakit/internal/cmd/application"
	"github.com/asakit/asakit/internal/cmd/cmdutil"
	"github.com/asakit/asakit/internal/cmd/output"
	"github.com/asakit/asakit/pkg/constants"
	kw "github.com/asakit/asakit/pkg/keywords"
)

// NewCommand creates the keywords command.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "keywords",
		GroupID: "core",
		Short:   "Work with keyword lists",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(NewFilterCommand(app))
	return cmd
}

// NewFilterCommand creates the keywords filter subcommand.
func NewFilterCommand(app application.Application) *cobra.Command {
	defaults := app.Defaults()

	var (
		existing   string
		candidates string
		out        string
		column     int
		show       bool
	)

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Remove keywords that already exist in the ad group",
		Long: `Filter reads the ad group keyword export and a comma separated list of
keywords to add, and writes the keywords that are not in the ad group yet.

Keywords are compared case-insensitively after trimming whitespace. The
result is sorted and de-duplicated. Keywords repeated in the list are
reported as warnings.

The export is expected to hold the keyword in the third column (--column 2).
If the export layout changes, set --column accordingly; nothing detects it.`,
		Example: `  asakit keywords filter
  asakit keywords filter --existing input/export.csv --candidates input/new.txt
  asakit keywords filter --column 3 --print`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := app.Logger()

			r := kw.NewReconciler(kw.WithLogger(logger), kw.WithColumn(column))
			res, err := r.Run(existing, candidates, out)
			if err != nil {
				return cmdutil.HandleFileError(logger, err, "Failed to filter keywords")
			}

			if show {
				return output.FormatKeywords(cmd.OutOrStdout(), res.Missing, output.Format(app.OutputFormat()))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&existing, "existing", cmdutil.InputPath(defaults, constants.DefaultKeywordExport),
		"Ad group keyword export (CSV with header)")
	cmd.Flags().StringVar(&candidates, "candidates", cmdutil.InputPath(defaults, constants.DefaultCandidateList),
		"Comma separated keywords to add")
	cmd.Flags().StringVar(&out, "out", cmdutil.OutputPath(defaults, constants.DefaultFilteredList),
		"Output file for the filtered keywords")
	cmd.Flags().IntVar(&column, "column", constants.ExistingKeywordColumn,
		"Zero-based keyword column in the export")
	cmd.Flags().BoolVar(&show, "print", false,
		"Also print the filtered keywords")

	return cmd
}
