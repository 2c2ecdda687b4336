// Package pipeline wires the decode → transform → classify → encode steps
// behind one entry point shared by the CLI and HTTP surfaces.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/revcsv-dev/revcsv/internal/category"
	"github.com/revcsv-dev/revcsv/internal/config"
	"github.com/revcsv-dev/revcsv/internal/export"
	"github.com/revcsv-dev/revcsv/internal/importer"
	"github.com/revcsv-dev/revcsv/internal/model"
	"github.com/revcsv-dev/revcsv/internal/transform"
)

// Outcome is the result of one conversion. ClassifierErr carries a failed
// remote classification without invalidating the rest: categories merged
// before the failure are kept and the remaining names use the heuristic.
type Outcome struct {
	Transactions  []model.Transaction // full normalized set
	Exported      []model.Transaction // after the type filter
	CSV           string              // headerless encoding of Exported
	MissingCols   []string
	ClassifierErr error
}

// Pipeline converts Revolut exports using one settings record.
type Pipeline struct {
	set        *config.Settings
	parser     importer.Parser
	classifier category.Classifier
	log        zerolog.Logger
}

// New creates a Pipeline. The parser is resolved through the importer
// registry; a remote classifier is attached only when an API key is
// configured, otherwise categorization is purely heuristic.
func New(set *config.Settings, log zerolog.Logger) *Pipeline {
	p := &Pipeline{
		set:    set,
		parser: importer.DefaultRegistry().Get("revolut"),
		log:    log,
	}
	if set.APIKey != "" {
		p.classifier = category.NewGemini(set.APIKey, set.Model, log)
	}
	return p
}

// WithClassifier overrides the remote classifier, used in tests.
func (p *Pipeline) WithClassifier(c category.Classifier) *Pipeline {
	p.classifier = c
	return p
}

// Convert runs the whole pipeline over one export file.
func (p *Pipeline) Convert(ctx context.Context, r io.Reader) (*Outcome, error) {
	result, err := p.parser.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing export: %w", err)
	}
	for _, col := range result.MissingColumns {
		p.log.Warn().Str("column", col).Msg("export header is missing a required column")
	}

	cats := category.NewMap()
	txns := transform.Transform(result.Rows, p.set, cats)

	outcome := &Outcome{
		Transactions: txns,
		MissingCols:  result.MissingColumns,
	}

	if p.classifier != nil {
		names := transform.DistinctNames(txns)
		if err := p.classifier.ClassifyInto(ctx, names, cats); err != nil {
			// Keep whatever the completed batches merged; the rest of the
			// names stay on their heuristic category.
			p.log.Error().Err(err).Msg("remote classification failed")
			outcome.ClassifierErr = err
		}
		transform.ApplyCategories(txns, cats)
	}

	outcome.Exported = transform.Filter(txns, p.set.TypeFilter)
	outcome.CSV = export.Encode(outcome.Exported)
	return outcome, nil
}
