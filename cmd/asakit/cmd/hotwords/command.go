// Package hotwords implements the hotwords command.
package hotwords

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/asakit/asakit/internal/cmd/application"
	"github.com/asakit/asakit/internal/cmd/cmdutil"
	"github.com/asakit/asakit/internal/cmd/output"
	"github.com/asakit/asakit/internal/diandian"
	"github.com/asakit/asakit/pkg/keywords"
)

// NewCommand creates the hotwords command.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "hotwords",
		GroupID: "tools",
		Short:   "Scrape keyword suggestions from diandian",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(NewFetchCommand(app), NewParseCommand(app))
	return cmd
}

// NewFetchCommand creates the hotwords fetch subcommand.
func NewFetchCommand(app application.Application) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "fetch <keyword>",
		Short: "Load the suggestion ranking for a keyword in headless Chrome",
		Long: `Fetch opens the diandian search suggestion page for the keyword in a
headless Chrome, waits for the ranking table, saves the page and prints the
ranking of the most recent day. Chrome or Chromium must be installed.`,
		Example: `  asakit hotwords fetch "coin identifier"
  asakit hotwords fetch coin -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := app.Logger()

			words, path, err := diandian.FetchHotWords(cmd.Context(), app.PageSource(), args[0], dir, time.Now())
			if path != "" {
				logger.Info().Str("path", path).Msgf("Response saved to: %s", path)
			}
			if err != nil {
				return cmdutil.HandleFileError(logger, err, "Failed to save page")
			}
			return output.FormatHotWords(cmd.OutOrStdout(), words, output.Format(app.OutputFormat()))
		},
	}

	cmd.Flags().StringVar(&dir, "dir", app.Defaults().OutputDir, "Directory the page is saved to")
	return cmd
}

// NewParseCommand creates the hotwords parse subcommand.
func NewParseCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Print the ranking from a saved page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := app.Logger()

			html, err := keywords.ReadBlob(args[0])
			if err != nil {
				return cmdutil.HandleFileError(logger, err, "Failed to read page")
			}
			words, err := diandian.ParseTable(html)
			if err != nil {
				return err
			}
			return output.FormatHotWords(cmd.OutOrStdout(), words, output.Format(app.OutputFormat()))
		},
	}
}
