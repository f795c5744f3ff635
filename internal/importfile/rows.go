package importfile

import (
	"fmt"
	"strconv"

	"github.com/asakit/asakit/pkg/constants"
)

// Import file headers.
var (
	KeywordHeader         = []string{"Action", "Keyword ID", "Keyword", "Match Type", "Status", "Bid", "Campaign ID", "Ad Group ID"}
	NegativeKeywordHeader = []string{"Action", "Keyword ID", "Negative Keyword", "Match Type", "Campaign ID", "Ad Group ID"}
	CampaignKeywordHeader = []string{"Campaign", "Ad group", "Keyword", "Match type", "Bid"}
)

// Target is the campaign and ad group the imported keywords are created in.
type Target struct {
	CampaignID int64
	AdGroupID  int64
	MatchType  string
	Bid        float64
}

func (t Target) keywordRow(keyword, status string) []string {
	return []string{
		constants.ActionCreate,
		"",
		keyword,
		t.MatchType,
		status,
		FormatBid(t.Bid),
		strconv.FormatInt(t.CampaignID, 10),
		strconv.FormatInt(t.AdGroupID, 10),
	}
}

// KeywordUploadRows creates every exported keyword in target, keeping its status.
func KeywordUploadRows(rows []ExportRow, target Target) Sheet {
	s := Sheet{Header: KeywordHeader}
	for _, r := range rows {
		s.Rows = append(s.Rows, target.keywordRow(r.Keyword, r.Status))
	}
	return s
}

// NegativeKeywordRows adds every exported keyword as a negative keyword of target.
// The bid is not used.
func NegativeKeywordRows(rows []ExportRow, target Target) Sheet {
	s := Sheet{Header: NegativeKeywordHeader}
	for _, r := range rows {
		s.Rows = append(s.Rows, []string{
			constants.ActionCreate,
			"",
			r.Keyword,
			target.MatchType,
			strconv.FormatInt(target.CampaignID, 10),
			strconv.FormatInt(target.AdGroupID, 10),
		})
	}
	return s
}

// EnabledRows returns the rows whose status is enabled.
func EnabledRows(rows []ExportRow) []ExportRow {
	var out []ExportRow
	for _, r := range rows {
		if r.Enabled() {
			out = append(out, r)
		}
	}
	return out
}

// CampaignKeywordRows copies the enabled keywords into a new campaign named
// campaignName, keeping ad group and match type.
func CampaignKeywordRows(rows []ExportRow, campaignName string, bid float64) Sheet {
	s := Sheet{Header: CampaignKeywordHeader}
	for _, r := range EnabledRows(rows) {
		s.Rows = append(s.Rows, []string{
			campaignName,
			r.AdGroup,
			r.Keyword,
			r.MatchType,
			fmt.Sprintf("%.2f", bid),
		})
	}
	return s
}

// SuggestedKeywordRows creates keywords in target as active.
func SuggestedKeywordRows(keywords []string, target Target) Sheet {
	s := Sheet{Header: KeywordHeader}
	for _, kw := range keywords {
		s.Rows = append(s.Rows, target.keywordRow(kw, constants.StatusActive))
	}
	return s
}

// FileName returns "<campaign>_<adgroup>_<suffix>" as used for generated imports.
func FileName(target Target, suffix string) string {
	return fmt.Sprintf("%d_%d_%s", target.CampaignID, target.AdGroupID, suffix)
}
