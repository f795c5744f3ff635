package importfile

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/asakit/asakit/pkg/constants"
	"github.com/asakit/asakit/pkg/keywords"
)

// Translator translates a keyword into lang.
type Translator interface {
	Translate(ctx context.Context, text, lang string) (string, error)
}

// TranslateResult is the import sheet plus the counts reported after a run.
type TranslateResult struct {
	Sheet Sheet
	// Active is the number of ACTIVE input rows.
	Active int
	// Originals is the number of unique active keywords.
	Originals int
	// Failed lists keywords whose translation failed or came back empty.
	Failed []string
}

// DuplicatesPrevented is the number of rows saved by de-duplication compared
// with writing every active keyword and its translation.
func (r *TranslateResult) DuplicatesPrevented() int {
	return r.Active*2 - r.Sheet.Len()
}

// TranslateKeywords creates the unique ACTIVE keywords of rows in target,
// followed by their translations into lang. Keywords are compared by canonical
// form, so a translation equal to an existing keyword is not added twice.
// A failed translation is logged and skipped; cancellation of ctx stops the run.
func TranslateKeywords(ctx context.Context, rows []ExportRow, tr Translator, target Target, lang string, logger *zerolog.Logger) (*TranslateResult, error) {
	res := &TranslateResult{Sheet: Sheet{Header: KeywordHeader}}
	seen := make(keywords.Set)

	var originals []string
	for _, r := range rows {
		if r.Status != constants.StatusActive {
			continue
		}
		res.Active++
		if seen.Has(r.Keyword) {
			continue
		}
		seen.Add(r.Keyword)
		originals = append(originals, r.Keyword)
		res.Sheet.Rows = append(res.Sheet.Rows, target.keywordRow(r.Keyword, constants.StatusActive))
	}
	res.Originals = len(originals)
	if res.Active == 0 {
		return res, nil
	}
	logger.Info().Int("count", res.Originals).Msg("Found unique keywords to translate")

	for i, kw := range originals {
		translated, err := tr.Translate(ctx, kw, lang)
		if err != nil && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		translated = strings.TrimSpace(translated)
		if err != nil || translated == "" {
			logger.Warn().Err(err).Str("keyword", kw).Str("language", lang).Msg("Failed to translate keyword")
			res.Failed = append(res.Failed, kw)
			continue
		}
		logger.Debug().
			Int("done", i+1).
			Int("total", res.Originals).
			Str("keyword", kw).
			Str("translation", translated).
			Msg("Translated keyword")

		if seen.Has(translated) {
			continue
		}
		seen.Add(translated)
		res.Sheet.Rows = append(res.Sheet.Rows, target.keywordRow(translated, constants.StatusActive))
	}
	return res, nil
}
