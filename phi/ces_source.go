package phi

import (
	"github.com/ignaciobernardo/goiphi/ces"
	"github.com/ignaciobernardo/goiphi/mip"
)

// CESSource abstracts CES assembly and concept-space distance measurement
// so a caller can interpose caching (the engine package's injected
// cache handles, per §9's "re-architect as injected cache handles owned
// by a top-level Engine value") without this package knowing anything
// about persistence. Compute's default, set by WithCESSource's absence,
// calls ces.Compute / ces.Distance directly.
type CESSource interface {
	Compute(src ces.Source, ptype mip.PartitionType) (ces.CES, error)
	Distance(home1 ces.Source, c1 ces.CES, home2 ces.Source, c2 ces.CES, cut ces.Source) (float64, error)
}

// WithCESSource overrides how Compute assembles CESes and measures
// concept-space distance between them. Intended for the engine package to
// inject a cache-backed implementation; omit for the direct, uncached
// ces.Compute/ces.Distance calls used by this package's own tests.
func WithCESSource(s CESSource) Option {
	return func(o *options) {
		if s != nil {
			o.cesSource = s
		}
	}
}

type directCESSource struct{}

func (directCESSource) Compute(src ces.Source, ptype mip.PartitionType) (ces.CES, error) {
	return ces.Compute(src, ptype)
}

func (directCESSource) Distance(home1 ces.Source, c1 ces.CES, home2 ces.Source, c2 ces.CES, cut ces.Source) (float64, error) {
	return ces.Distance(home1, c1, home2, c2, cut)
}
