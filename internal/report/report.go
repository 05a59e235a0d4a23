// Package report drives one ipcs invocation: banner first, then a section
// per selected facility in fixed order.
package report

import (
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/pranshuparmar/ipcs/internal/output"
	"github.com/pranshuparmar/ipcs/internal/sysvipc"
	"github.com/pranshuparmar/ipcs/pkg/model"
)

// Request describes what to report.
type Request struct {
	Facilities []model.Facility
	Options    model.Option
	// Source overrides the collector's banner label when set.
	Source string
	Now    time.Time
	Style  output.Style
}

// Run writes the full report for req to w.
func Run(w io.Writer, collector sysvipc.Collector, req Request, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}

	source := req.Source
	if source == "" {
		source = collector.Source()
	}
	output.RenderBanner(w, source, req.Now, req.Style)

	for _, f := range model.Facilities {
		if !selected(req.Facilities, f) {
			continue
		}
		records := collector.Collect(f)
		logger.Debug("collected facility",
			zap.String("facility", f.Name()), zap.Int("records", len(records)))
		output.RenderFacility(w, f, req.Options, records, req.Style)
	}
}

func selected(fs []model.Facility, f model.Facility) bool {
	for _, s := range fs {
		if s == f {
			return true
		}
	}
	return false
}
