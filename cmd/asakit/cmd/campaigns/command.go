// Package campaigns implements the campaigns command.
package campaigns

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/asakit/asakit/internal/cmd/application"
	"github.com/asakit/asakit/internal/cmd/cmdutil"
	"github.com/asakit/asakit/internal/cmd/output"
	"github.com/asakit/asakit/internal/searchads"
	"github.com/asakit/asakit/pkg/constants"
	"github.com/asakit/asakit/pkg/errors"
)

// NewCommand creates the campaigns command.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "campaigns",
		GroupID: "core",
		Short:   "Read campaigns from Apple Search Ads",
		Long: `Campaigns reads campaigns through the Apple Search Ads API.

Requires APPLE_ADS_CLIENT_ID, APPLE_ADS_CLIENT_SECRET and APPLE_ADS_ORG_ID
in the environment, a .env file or the config file.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(NewListCommand(app), NewGetCommand(app))
	return cmd
}

// NewListCommand creates the campaigns list subcommand.
func NewListCommand(app application.Application) *cobra.Command {
	var (
		limit  int
		offset int
		all    bool
		save   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List campaigns and save them as JSON",
		Example: `  asakit campaigns list
  asakit campaigns list --all --save campaigns.json
  asakit campaigns list -o wide`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := app.Logger()

			client, err := app.Campaigns()
			if err != nil {
				return err
			}

			var campaigns []searchads.Campaign
			if all {
				campaigns, err = client.ListAllCampaigns(cmd.Context(), limit)
			} else {
				var page *searchads.Page
				page, err = client.ListCampaigns(cmd.Context(), limit, offset)
				if page != nil {
					campaigns = page.Data
				}
			}
			if err != nil {
				return errors.WrapResource("fetch", "campaigns", "", err)
			}

			if save != "" {
				if err := searchads.SaveCampaigns(save, campaigns); err != nil {
					return cmdutil.HandleFileError(logger, err, "Failed to save campaigns")
				}
				logger.Info().
					Int("count", len(campaigns)).
					Str("path", save).
					Msgf("Successfully fetched %d campaigns and saved to %s", len(campaigns), save)
			}

			return output.FormatCampaigns(cmd.OutOrStdout(), campaigns, output.Format(app.OutputFormat()))
		},
	}

	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageSize, "Campaigns per request")
	cmd.Flags().IntVar(&offset, "offset", 0, "Offset of the first campaign (ignored with --all)")
	cmd.Flags().BoolVar(&all, "all", false, "Follow pagination and fetch every campaign")
	cmd.Flags().StringVar(&save, "save", constants.DefaultCampaignsFile, "JSON file to save campaigns to (empty to skip)")
	return cmd
}

// NewGetCommand creates the campaigns get subcommand.
func NewGetCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "get <campaign-id>",
		Short: "Show the details of one campaign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.NewValidationError("campaign-id", args[0], "must be an integer")
			}

			client, err := app.Campaigns()
			if err != nil {
				return err
			}
			campaign, err := client.GetCampaign(cmd.Context(), id)
			if err != nil {
				return err
			}
			return output.FormatAny(cmd.OutOrStdout(), campaign, output.Format(app.OutputFormat()))
		},
	}
}
