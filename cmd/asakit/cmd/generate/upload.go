package generate

import (
	"github.com/spf13/cobra"

	"github.com/asakit/asakit/internal/cmd/application"
	"github.com/asakit/asakit/internal/cmd/cmdutil"
	"github.com/asakit/asakit/internal/importfile"
	"github.com/asakit/asakit/pkg/constants"
)

// NewUploadCommand creates the generate upload subcommand.
func NewUploadCommand(app application.Application) *cobra.Command {
	defaults := app.Defaults()
	var input, out string

	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Create every exported keyword in a campaign and ad group",
		Example: `  asakit generate upload --campaign-id 1715185383 --ad-group-id 1716434258
  asakit generate upload --match-type EXACT --bid 2`,
		Args: cobra.NoArgs,
	}
	target := cmdutil.AddTargetFlags(cmd, defaults, constants.MatchTypeBroad, 1.5)

	cmd.RunE = func(_ *cobra.Command, _ []string) error {
		logger := app.Logger()
		t, err := target.Target()
		if err != nil {
			return err
		}

		rows, err := importfile.ReadKeywordExport(input)
		if err != nil {
			return cmdutil.HandleFileError(logger, err, "Failed to read keyword export")
		}

		sheet := importfile.KeywordUploadRows(rows, t)
		if err := writeSheet(logger, out, sheet, "ASA import file"); err != nil {
			return cmdutil.HandleFileError(logger, err, "Failed to write import file")
		}
		logger.Info().Int("count", sheet.Len()).Msg("Total keywords processed")
		return nil
	}

	cmd.Flags().StringVar(&input, "input", cmdutil.InputPath(defaults, constants.DefaultKeywordExport),
		"Keyword export CSV")
	cmd.Flags().StringVar(&out, "out", cmdutil.OutputPath(defaults, uploadOutput),
		"Output CSV")
	return cmd
}

// NewNegativeCommand creates the generate negative subcommand.
func NewNegativeCommand(app application.Application) *cobra.Command {
	defaults := app.Defaults()
	var input, out string

	cmd := &cobra.Command{
		Use:   "negative",
		Short: "Add every exported keyword as a negative keyword",
		Args:  cobra.NoArgs,
	}
	target := cmdutil.AddTargetFlags(cmd, defaults, constants.MatchTypeExact, 0)

	cmd.RunE = func(_ *cobra.Command, _ []string) error {
		logger := app.Logger()
		t, err := target.Target()
		if err != nil {
			return err
		}

		rows, err := importfile.ReadKeywordExport(input)
		if err != nil {
			return cmdutil.HandleFileError(logger, err, "Failed to read keyword export")
		}

		sheet := importfile.NegativeKeywordRows(rows, t)
		if err := writeSheet(logger, out, sheet, "negative keyword file"); err != nil {
			return cmdutil.HandleFileError(logger, err, "Failed to write negative keyword file")
		}
		logger.Info().Int("count", sheet.Len()).Msg("Total negative keywords processed")
		return nil
	}

	cmd.Flags().StringVar(&input, "input", cmdutil.InputPath(defaults, constants.DefaultKeywordExport),
		"Keyword export CSV")
	cmd.Flags().StringVar(&out, "out", cmdutil.OutputPath(defaults, negativeOutput),
		"Output CSV")
	return cmd
}

// NewCampaignCommand creates the generate campaign subcommand.
func NewCampaignCommand(app application.Application) *cobra.Command {
	defaults := app.Defaults()
	var (
		input, out, name string
		bid              float64
	)

	cmd := &cobra.Command{
		Use:   "campaign",
		Short: "Copy the enabled keywords of an export into a new campaign",
		Example: `  asakit generate campaign --campaign-name "Coins BR" --bid 0.8`,
		Args:    cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			logger := app.Logger()

			rows, err := importfile.ReadKeywordExport(input)
			if err != nil {
				return cmdutil.HandleFileError(logger, err, "Failed to read keyword export")
			}

			active := importfile.EnabledRows(rows)
			logger.Info().Int("count", len(active)).Msg("Found active keywords")
			if len(active) == 0 {
				logger.Warn().Msg("No active keywords found in input file")
				return nil
			}

			sheet := importfile.CampaignKeywordRows(active, name, bid)
			if err := writeSheet(logger, out, sheet, "import file"); err != nil {
				return cmdutil.HandleFileError(logger, err, "Failed to write import file")
			}
			logger.Info().Int("count", sheet.Len()).Msg("Total keywords written")
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", cmdutil.InputPath(defaults, constants.DefaultKeywordExport),
		"Keyword export CSV")
	cmd.Flags().StringVar(&out, "out", cmdutil.OutputPath(defaults, campaignOutput),
		"Output CSV")
	cmd.Flags().StringVar(&name, "campaign-name", "New Campaign",
		"Name of the new campaign")
	cmd.Flags().Float64Var(&bid, "bid", 0.50,
		"Default bid")
	return cmd
}
