// Package cmdutil provides flags and helpers shared by asakit commands.
package cmdutil

import (
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/asakit/asakit/internal/cmd/application"
	"github.com/asakit/asakit/internal/importfile"
	"github.com/asakit/asakit/pkg/errors"
)

// TargetFlags select the campaign and ad group imported keywords go to.
type TargetFlags struct {
	CampaignID int64
	AdGroupID  int64
	MatchType  string
	Bid        float64
}

// AddTargetFlags adds --campaign-id, --ad-group-id, --match-type and --bid.
// The IDs default to the configured values.
func AddTargetFlags(cmd *cobra.Command, defaults application.Defaults, matchType string, bid float64) *TargetFlags {
	flags := &TargetFlags{}

	cmd.Flags().Int64Var(&flags.CampaignID, "campaign-id", defaults.CampaignID,
		"Campaign ID (default from CAMPAIGN_ID)")
	cmd.Flags().Int64Var(&flags.AdGroupID, "ad-group-id", defaults.AdGroupID,
		"Ad group ID (default from AD_GROUP_ID)")
	cmd.Flags().StringVar(&flags.MatchType, "match-type", matchType,
		"Match type: BROAD or EXACT")
	cmd.Flags().Float64Var(&flags.Bid, "bid", bid,
		"Default bid")

	return flags
}

// Target validates the flags and returns the import target.
func (f *TargetFlags) Target() (importfile.Target, error) {
	if f.CampaignID <= 0 {
		return importfile.Target{}, errors.NewValidationError("campaign-id", f.CampaignID,
			"a campaign ID is required (--campaign-id or CAMPAIGN_ID)")
	}
	if f.AdGroupID <= 0 {
		return importfile.Target{}, errors.NewValidationError("ad-group-id", f.AdGroupID,
			"an ad group ID is required (--ad-group-id or AD_GROUP_ID)")
	}
	if f.Bid < 0 {
		return importfile.Target{}, errors.NewValidationError("bid", f.Bid, "must not be negative")
	}
	return importfile.Target{
		CampaignID: f.CampaignID,
		AdGroupID:  f.AdGroupID,
		MatchType:  f.MatchType,
		Bid:        f.Bid,
	}, nil
}

// InputPath joins name onto the configured input directory.
func InputPath(defaults application.Defaults, name string) string {
	return filepath.Join(defaults.InputDir, name)
}

// OutputPath joins name onto the configured output directory.
func OutputPath(defaults application.Defaults, name string) string {
	return filepath.Join(defaults.OutputDir, name)
}

// HandleFileError logs file I/O failures and reports them as handled, so the
// command exits normally. Any other error is returned unchanged.
func HandleFileError(logger *zerolog.Logger, err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.IsIOError(err) {
		logger.Error().Err(err).Msg(msg)
		return nil
	}
	return err
}
