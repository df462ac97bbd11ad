// Package cleaner implements the dataset cleaning pipeline: missing-value
// handling, type coercion, and text normalization, applied strictly in that
// order over the three in-memory tables.
package cleaner

import (
	"fmt"

	"newsprep/internal/config"
	"newsprep/internal/logger"
	"newsprep/internal/table"
)

// Dataset bundles the three tables a pipeline run owns. Stages mutate the
// tables in place; no stage reads back from a later stage.
type Dataset struct {
	Articles *table.Table
	Domains  *table.Table
	Traffic  *table.Table
}

// Stage is one cleaning step applied to the whole dataset.
type Stage interface {
	// Name identifies the stage in logs.
	Name() string
	// Apply mutates the dataset in place.
	Apply(ds *Dataset) error
}

// Pipeline composes cleaning stages in a fixed order.
type Pipeline struct {
	stages []Stage
	log    *logger.Logger
}

// NewPipeline creates the standard three-stage pipeline from the rule tables.
func NewPipeline(cfg *config.Config, log *logger.Logger) *Pipeline {
	return &Pipeline{
		stages: []Stage{
			NewMissingValueHandler(cfg, log),
			NewTypeCoercer(cfg),
			NewNormalizer(cfg),
		},
		log: log,
	}
}

// Run applies every stage in order. A stage failure aborts the run and the
// dataset must be considered unusable.
func (p *Pipeline) Run(ds *Dataset) error {
	for _, stage := range p.stages {
		p.log.Debug("applying stage", "stage", stage.Name())

		if err := stage.Apply(ds); err != nil {
			return fmt.Errorf("stage %s failed: %w", stage.Name(), err)
		}
	}

	return nil
}

// Clean runs the full pipeline over the three loaded tables and returns the
// cleaned tables in the same order as the arguments: articles, domains,
// traffic.
func Clean(cfg *config.Config, log *logger.Logger, articles, domains, traffic *table.Table) (*table.Table, *table.Table, *table.Table, error) {
	ds := &Dataset{Articles: articles, Domains: domains, Traffic: traffic}

	if err := NewPipeline(cfg, log).Run(ds); err != nil {
		return nil, nil, nil, err
	}

	return ds.Articles, ds.Domains, ds.Traffic, nil
}
