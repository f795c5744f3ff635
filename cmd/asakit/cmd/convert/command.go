// Package convert implements the convert command.
package convert

import (
	"github.com/spf13/cobra"

	"github.com/asakit/asakit/internal/cmd/application"
	"github.com/asakit/asakit/internal/cmd/cmdutil"
	"github.com/asakit/asakit/internal/spreadsheet"
)

// NewCommand creates the convert command.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "convert",
		GroupID: "tools",
		Short:   "Convert generated files between formats",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(NewXLSXCommand(app))
	return cmd
}

// NewXLSXCommand creates the convert xlsx subcommand.
func NewXLSXCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "xlsx <csv> [xlsx]",
		Short: "Convert a CSV file into an Excel workbook",
		Long: `Convert writes the rows of a CSV file into a single-sheet workbook.
Without a target path the workbook is written next to the CSV with an
.xlsx extension. Plain numbers are stored as numeric cells.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			logger := app.Logger()

			target := ""
			if len(args) == 2 {
				target = args[1]
			}
			path, err := spreadsheet.CSVToXLSX(args[0], target)
			if err != nil {
				return cmdutil.HandleFileError(logger, err, "Error converting CSV to XLSX")
			}
			logger.Info().Str("path", path).Msgf("Successfully converted CSV to XLSX: %s", path)
			return nil
		},
	}
}
