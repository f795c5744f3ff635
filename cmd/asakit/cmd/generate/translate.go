package generate

import (
	"github.com/spf13/cobra"

	"github.com/asakit/asakit/internal/cmd/application"
	"github.com/asakit/asakit/internal/cmd/cmdutil"
	"github.com/asakit/asakit/internal/importfile"
	"github.com/asakit/asakit/pkg/constants"
)

// NewTranslateCommand creates the generate translate subcommand.
func NewTranslateCommand(app application.Application) *cobra.Command {
	defaults := app.Defaults()
	var input, out, lang string

	cmd := &cobra.Command{
		Use:   "translate",
		Short: "Create the ACTIVE keywords of an export plus their translations",
		Long: `Translate reads a keyword export, keeps the ACTIVE keywords, removes
duplicates and asks the LLM for a translation of each one. Originals and
translations are written to one import file; a translation equal to a
keyword already in the file is skipped.`,
		Example: `  asakit generate translate --input input/coin_us_broad.csv --target-language PTB`,
		Args:    cobra.NoArgs,
	}
	target := cmdutil.AddTargetFlags(cmd, defaults, constants.MatchTypeBroad, 0.2)

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

		rows, err := importfile.ReadKeywordExport(input)
		if err != nil {
			return cmdutil.HandleFileError(logger, err, "Failed to read keyword export")
		}

		res, err := importfile.TranslateKeywords(cmd.Context(), rows, client, t, lang, logger)
		if err != nil {
			return err
		}
		if res.Active == 0 {
			logger.Warn().Msg("No active keywords found in input file")
			return nil
		}

		path := out
		if path == "" {
			path = cmdutil.OutputPath(defaults, importfile.FileName(t, lang+"_keyword_import.csv"))
		}
		if err := writeSheet(logger, path, res.Sheet, "ASA import file"); err != nil {
			return cmdutil.HandleFileError(logger, err, "Failed to write import file")
		}

		logger.Info().
			Int("active", res.Active).
			Int("unique_originals", res.Originals).
			Int("total_output", res.Sheet.Len()).
			Int("failed_translations", len(res.Failed)).
			Int("duplicates_prevented", res.DuplicatesPrevented()).
			Msg("Translation summary")
		return nil
	}

	cmd.Flags().StringVar(&input, "input", cmdutil.InputPath(defaults, translateInput),
		"Keyword export CSV")
	cmd.Flags().StringVar(&out, "out", "",
		"Output CSV (default <output>/<campaign>_<adgroup>_<lang>_keyword_import.csv)")
	cmd.Flags().StringVar(&lang, "target-language", "PTB",
		"Language to translate into")
	return cmd
}
