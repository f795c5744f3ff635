package keywords

import (
	"github.com/rs/zerolog"

	"github.com/asakit/asakit/pkg/logging"
)

// Reconciler runs the extraction steps and reports diagnostics through a logger.
type Reconciler struct {
	logger *zerolog.Logger
	column int
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *zerolog.Logger) Option {
	return func(r *Reconciler) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithColumn sets the zero-based keyword column of the existing table.
// The ad group export keeps the keyword in the third column; a change in the
// export layout must be handled here, nothing detects it.
func WithColumn(column int) Option {
	return func(r *Reconciler) {
		r.column = column
	}
}

// NewReconciler creates a Reconciler. The keyword column defaults to 2.
func NewReconciler(opts ...Option) *Reconciler {
	r := &Reconciler{
		logger: logging.Default(),
		column: 2,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Existing extracts the existing keyword set from table.
func (r *Reconciler) Existing(table [][]string) (Set, error) {
	return ExtractExisting(table, r.column)
}

// Candidates extracts the candidate keyword set from raw and logs a warning
// for every keyword that occurs more than once.
func (r *Reconciler) Candidates(raw string) (Set, DuplicateReport) {
	candidates, report := ExtractCandidates(raw)
	dups := report.Duplicates()
	if len(dups) > 0 {
		r.logger.Warn().Int("duplicates", len(dups)).Msg("Found duplicate keywords in input")
		for _, d := range dups {
			r.logger.Warn().
				Str("keyword", d.Keyword).
				Int("count", d.Count).
				Msgf("'%s' appears %d times", d.Keyword, d.Count)
		}
	}
	return candidates, report
}

// Reconcile returns the candidates absent from existing, sorted ascending,
// and logs the size of each set.
func (r *Reconciler) Reconcile(existing, candidates Set) []string {
	missing := Missing(existing, candidates)
	r.logger.Info().Int("count", existing.Len()).Msg("Found existing keywords")
	r.logger.Info().Int("count", candidates.Len()).Msg("Found keywords in new list")
	r.logger.Info().Int("count", len(missing)).Msg("Found keywords to be added")
	return missing
}

// Result summarizes a Run.
type Result struct {
	Existing   int
	Candidates int
	Duplicates []Duplicate
	Missing    []string
	Written    int
	Output     string
}

// Run reads the existing table and candidate blob, reconciles them and
// persists the missing keywords to outputPath.
func (r *Reconciler) Run(existingPath, candidatesPath, outputPath string) (*Result, error) {
	table, err := ReadTable(existingPath)
	if err != nil {
		return nil, err
	}
	raw, err := ReadBlob(candidatesPath)
	if err != nil {
		return nil, err
	}

	existing, err := r.Existing(table)
	if err != nil {
		return nil, err
	}
	candidates, report := r.Candidates(raw)
	missing := r.Reconcile(existing, candidates)

	written, err := Persist(missing, outputPath)
	if err != nil {
		return nil, err
	}
	r.logger.Info().
		Int("count", written).
		Str("path", outputPath).
		Msgf("Successfully wrote %d unique keywords to %s", written, outputPath)

	return &Result{
		Existing:   existing.Len(),
		Candidates: candidates.Len(),
		Duplicates: report.Duplicates(),
		Missing:    missing,
		Written:    written,
		Output:     outputPath,
	}, nil
}
