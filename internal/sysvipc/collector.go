// Package sysvipc enumerates System V IPC objects for the report.
package sysvipc

import (
	"go.uber.org/zap"

	"github.com/pranshuparmar/ipcs/internal/config"
	"github.com/pranshuparmar/ipcs/pkg/model"
)

// PlaceholderSource is the banner label used by the placeholder collector.
const PlaceholderSource = "<source>"

// Collector produces the records of one facility in discovery order. It never
// fails: a facility that cannot be read yields no records.
type Collector interface {
	Source() string
	Collect(f model.Facility) []model.Record
}

// New returns the collector selected by cfg.
func New(cfg *config.Config, logger *zap.Logger) Collector {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Legacy {
		logger.Debug("using placeholder collector")
		return Placeholder{}
	}
	return NewProc(cfg.ProcRoot, logger)
}

// Placeholder reproduces the historic ipcs behaviour of reporting a single
// zero-valued record for every facility without asking the kernel.
type Placeholder struct{}

func (Placeholder) Source() string {
	return PlaceholderSource
}

func (Placeholder) Collect(f model.Facility) []model.Record {
	if !f.Valid() {
		return nil
	}
	return []model.Record{{Facility: f, Mode: model.BlankMode}}
}
