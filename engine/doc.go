// Package engine is the top-level entry point of specification §9: a
// constructed Engine value that owns everything the lower packages are
// deliberately kept free of — a *zap.Logger, the persistent concept cache
// and an in-process CES-distance cache, and the §6 configuration surface
// (EPSILON, PARALLEL_CUT_EVALUATION, SINGLE_NODES_WITH_SELFLOOPS_HAVE_PHI,
// REPERTOIRE_DISTANCE, PARTITION_TYPE, MAXMEM, CACHE_DIR, IIT_VERSION).
//
// combin, distribution, metric, network, subsystem, repertoire, mip, ces,
// and phi stay pure, content-addressed computation with no I/O and no
// hidden state; package cache does disk I/O, but only through handles its
// caller opens. This package is where persistence and logging are
// injected, per §9's "re-architect as injected cache handles owned by a
// top-level Engine value" redesign note. Engine.Phi wraps phi.Compute
// with a cache-backed phi.CESSource; Subsystems and Complexes are the
// lazy, restartable enumerators §9 calls for. The "main complex over all
// subsystems" driver itself — picking the maximum-Φ result out of
// Complexes — is explicitly out of scope (§1) and is left to the caller.
package engine
