package engine

import (
	"go.uber.org/zap"

	"github.com/ignaciobernardo/goiphi/cache"
	"github.com/ignaciobernardo/goiphi/phi"
	"github.com/ignaciobernardo/goiphi/subsystem"
)

// Engine is the top-level value specification §9 calls for: a resolved
// Config, an injected logger, and the cache handles every Φ computation
// it runs shares. Construct one with New and Close it when done — Close
// releases the persistent concept cache's file handles and flushes the
// logger.
type Engine struct {
	cfg       Config
	logger    *zap.Logger
	concepts  *cache.ConceptCache // nil when Config.CacheDir == ""
	distances *cache.DistanceCache[cesDistanceKey]
	source    *cachedCESSource
}

// New builds an Engine from the given options (§6's configuration
// surface). If CacheDir is set, it opens (or creates) the persistent
// concept cache there; the caller must Close the returned Engine to
// release it.
func New(opts ...Option) (*Engine, error) {
	cfg, err := gatherConfig(opts...)
	if err != nil {
		return nil, err
	}

	logger := cfg.logger
	if logger == nil {
		logger, err = zap.NewProduction()
		if err != nil {
			return nil, err
		}
	}

	var concepts *cache.ConceptCache
	if cfg.CacheDir != "" {
		concepts, err = cache.Open(cfg.CacheDir)
		if err != nil {
			return nil, err
		}
	}

	distances, err := cache.NewDistanceCache[cesDistanceKey](cfg.MaxCacheBytes)
	if err != nil {
		return nil, err
	}

	return &Engine{
		cfg:       *cfg,
		logger:    logger,
		concepts:  concepts,
		distances: distances,
		source:    &cachedCESSource{concepts: concepts, distances: distances, logger: logger},
	}, nil
}

// Config returns the resolved configuration this Engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// Close releases the persistent concept cache's file handles, if one was
// opened, and flushes the logger.
func (e *Engine) Close() error {
	defer func() { _ = e.logger.Sync() }()

	if e.concepts == nil {
		return nil
	}

	return e.concepts.Close()
}

// Phi computes sub's big-Φ analysis (§4.8), routed through this Engine's
// configured partition scheme, parallelism, self-loop convention, and
// cache-backed CES assembly.
func (e *Engine) Phi(sub *subsystem.Subsystem) (*phi.Result, error) {
	e.logger.Info("computing phi", zap.Int("nodes", sub.Nodes().Len()), zap.Int("state", sub.State()))

	result, err := phi.Compute(sub, e.cfg.PartitionType,
		phi.WithParallelCutEvaluation(e.cfg.Parallel),
		phi.WithSelfLoopConvention(e.cfg.SelfLoopConvention),
		phi.WithCESSource(e.source),
	)
	if err != nil {
		e.logger.Warn("phi computation failed", zap.Error(err))

		return nil, err
	}

	e.logger.Debug("phi computed", zap.Float64("phi", result.Phi))

	return result, nil
}
