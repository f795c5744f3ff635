// Package generate implements the generate command, which builds bulk import
// files from keyword exports.
package generate

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/asakit/asakit/internal/cmd/application"
	"github.com/asakit/asakit/internal/importfile"
)

// Default inputs and outputs.
const (
	uploadOutput    = "keyword_import.csv"
	negativeOutput  = "negative_keyword_import.csv"
	campaignOutput  = "campaign_keyword_import.csv"
	suggestedInput  = "联想词列表.txt"
	suggestedSuffix = "suggested_keyword_import.csv"
	translateInput  = "coin_us_broad.csv"
)

// NewCommand creates the generate command.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		GroupID: "generate",
		Short:   "Generate keyword import files",
		Long: `Generate builds CSV files for the Apple Search Ads bulk keyword import
from a keyword export, a suggestion list or a translation pass.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(
		NewUploadCommand(app),
		NewNegativeCommand(app),
		NewCampaignCommand(app),
		NewSuggestedCommand(app),
		NewTranslateCommand(app),
	)
	return cmd
}

func writeSheet(logger *zerolog.Logger, path string, sheet importfile.Sheet, what string) error {
	if err := importfile.Write(path, sheet); err != nil {
		return err
	}
	logger.Info().
		Str("path", path).
		Int("rows", sheet.Len()).
		Msgf("Successfully generated %s: %s", what, path)
	return nil
}
