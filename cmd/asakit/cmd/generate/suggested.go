package generate

import (
	"github.com/spf13/cobra"

	"github.com/asakit/asakit/internal/cmd/application"
	"github.com/asakit/asakit/internal/cmd/cmdutil"
	"github.com/asakit/asakit/internal/importfile"
	"github.com/asakit/asakit/internal/spreadsheet"
	"github.com/asakit/asakit/pkg/constants"
	"github.com/asakit/asakit/pkg/keywords"
)

// NewSuggestedCommand creates the generate suggested subcommand.
func NewSuggestedCommand(app application.Application) *cobra.Command {
	defaults := app.Defaults()
	var input, out string

	cmd := &cobra.Command{
		Use:   "suggested",
		Short: "Extract keywords from a suggestion list with the LLM and create them",
		Long: `Suggested sends a saved keyword suggestion list (for example a diandian
page) to the LLM, which returns the usable keywords one per line. Each
keyword is created as ACTIVE in the target ad group. A CSV and an XLSX
copy are written.`,
		Args: cobra.NoArgs,
	}
	target := cmdutil.AddTargetFlags(cmd, defaults, constants.MatchTypeExact, 1.0)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		logger := app.Logger()
		t, err := target.Target()
		if err != nil {
			return err
		}

		client, err := app.LLM(cmd.Context())
		if err != nil {
			return err
		}

		content, err := keywords.ReadBlob(input)
		if err != nil {
			return cmdutil.HandleFileError(logger, err, "Failed to read suggestion list")
		}

		logger.Info().Str("path", input).Msg("Parsing keywords from input file")
		kws, err := client.ExtractKeywords(cmd.Context(), content)
		if err != nil {
			return err
		}
		if len(kws) == 0 {
			logger.Warn().Msg("No valid keywords found in input file")
			return nil
		}
		logger.Info().Int("count", len(kws)).Msg("Found keywords")

		path := out
		if path == "" {
			path = cmdutil.OutputPath(defaults, importfile.FileName(t, suggestedSuffix))
		}
		sheet := importfile.SuggestedKeywordRows(kws, t)
		if err := writeSheet(logger, path, sheet, "keyword import file"); err != nil {
			return cmdutil.HandleFileError(logger, err, "Failed to write import file")
		}

		xlsx, err := spreadsheet.CSVToXLSX(path, "")
		if err != nil {
			return cmdutil.HandleFileError(logger, err, "Failed to convert import file to XLSX")
		}
		logger.Info().Str("csv", path).Str("xlsx", xlsx).Int("count", len(kws)).Msg("Total keywords processed")
		return nil
	}

	cmd.Flags().StringVar(&input, "input", cmdutil.InputPath(defaults, suggestedInput),
		"Suggestion list text file")
	cmd.Flags().StringVar(&out, "out", "",
		"Output CSV (default <output>/<campaign>_<adgroup>_suggested_keyword_import.csv)")
	return cmd
}
