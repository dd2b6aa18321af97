package engine

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"go.uber.org/zap"

	"github.com/ignaciobernardo/goiphi/cache"
	"github.com/ignaciobernardo/goiphi/ces"
	"github.com/ignaciobernardo/goiphi/combin"
	"github.com/ignaciobernardo/goiphi/distribution"
	"github.com/ignaciobernardo/goiphi/mip"
	"github.com/ignaciobernardo/goiphi/repertoire"
)

// phiPrecision is the rounding grid a concept's φ is snapped to before it
// enters a fingerprint, matching cache.tpmPrecision's reasoning: floating
// point noise a few ULPs apart must not produce spuriously distinct
// fingerprints.
const phiPrecision = 1e-9

// cesDistanceKey identifies one ces.Distance call's cacheable inputs: the
// two CESes being compared (by content fingerprint, order-independent —
// ces.Distance is a metric) and the cut subsystem's identity, since
// expand's null point depends on it.
type cesDistanceKey struct {
	pair     cache.PairKey
	cutFrom  combin.Set
	cutTo    combin.Set
	subNodes combin.Set
	subState int
}

// cesFingerprint hashes a CES's content: the canonically-sorted (per
// ces.NewCES) sequence of each concept's mechanism, cause/effect purviews,
// and φ. Two CESes built from the same concept set fingerprint identically
// regardless of how they were assembled.
func cesFingerprint(c ces.CES) cache.Fingerprint {
	h := fnv.New64a()
	var buf [32]byte
	for _, concept := range c {
		binary.BigEndian.PutUint64(buf[0:8], uint64(concept.Mechanism))
		binary.BigEndian.PutUint64(buf[8:16], uint64(concept.Cause.Purview))
		binary.BigEndian.PutUint64(buf[16:24], uint64(concept.Effect.Purview))
		rounded := math.Round(concept.Phi/phiPrecision) * phiPrecision
		binary.BigEndian.PutUint64(buf[24:32], math.Float64bits(rounded))
		h.Write(buf[:])
	}

	return cache.Fingerprint(h.Sum64())
}

// cachedCESSource implements phi.CESSource (see phi/ces_source.go) over
// Engine's injected cache handles: per-mechanism concepts go through the
// persistent ConceptCache (skipping the MICE purview search on a hit),
// and whole-CES distances go through an in-process DistanceCache.
// A nil concepts or distances handle simply skips that layer — used when
// CACHE_DIR is unset (engine.go only opens a ConceptCache when a
// directory is configured).
type cachedCESSource struct {
	concepts  *cache.ConceptCache
	distances *cache.DistanceCache[cesDistanceKey]
	logger    *zap.Logger
}

func (s *cachedCESSource) Compute(src ces.Source, ptype mip.PartitionType) (ces.CES, error) {
	mechanisms := src.Subsystem.Nodes().NonEmptySubsets()

	concepts := make([]ces.Concept, 0, len(mechanisms))
	for _, mechanism := range mechanisms {
		concept, err := s.concept(src, mechanism, ptype)
		if err != nil {
			return nil, err
		}
		if concept == nil {
			continue
		}
		concepts = append(concepts, *concept)
	}

	return ces.NewCES(concepts), nil
}

func (s *cachedCESSource) concept(src ces.Source, mechanism combin.Set, ptype mip.PartitionType) (*ces.Concept, error) {
	if s.concepts != nil {
		rec, ok, err := s.concepts.Lookup(src.Subsystem, mechanism)
		if err != nil {
			return nil, err
		}
		if ok {
			s.logger.Debug("concept cache hit", zap.Uint64("mechanism", uint64(mechanism)))

			return conceptFromRecord(mechanism, rec)
		}
		s.logger.Debug("concept cache miss", zap.Uint64("mechanism", uint64(mechanism)))
	}

	concept, err := ces.ComputeConcept(src, mechanism, ptype)
	if err != nil || concept == nil {
		return concept, err
	}

	if s.concepts != nil {
		rec, err := recordFromConcept(src, *concept)
		if err != nil {
			return nil, err
		}
		if err := s.concepts.Store(src.Subsystem, mechanism, rec); err != nil {
			return nil, err
		}
	}

	return concept, nil
}

// recordFromConcept resolves concept's actual cause/effect repertoires
// (via src.Repertoire, at the purviews MICE already found) so they can be
// persisted alongside the purviews and φ, per cache.ConceptRecord's
// "enough to reconstruct ... without recomputation" contract.
func recordFromConcept(src ces.Source, concept ces.Concept) (cache.ConceptRecord, error) {
	cause, err := src.Repertoire(repertoire.Cause, concept.Mechanism, concept.Cause.Purview)
	if err != nil {
		return cache.ConceptRecord{}, err
	}
	effect, err := src.Repertoire(repertoire.Effect, concept.Mechanism, concept.Effect.Purview)
	if err != nil {
		return cache.ConceptRecord{}, err
	}

	return cache.ConceptRecord{
		Mechanism:     uint64(concept.Mechanism),
		CausePurview:  uint64(concept.Cause.Purview),
		CauseData:     cause.Data(),
		EffectPurview: uint64(concept.Effect.Purview),
		EffectData:    effect.Data(),
		Phi:           concept.Phi,
	}, nil
}

// conceptFromRecord rebuilds enough of a ces.Concept from a cached record
// for ces.Distance's purposes: it reads only Mechanism, Cause/Effect
// Purview, and Phi (see ces/distance.go's toPoint/equalConcept) — the
// per-direction MIP φ split isn't persisted, so both directions' MIP.Phi
// are set to the concept-level Phi, a value nothing downstream reads.
// CauseData/EffectData are round-tripped through distribution.NewFromData
// purely to validate the stored record hasn't been corrupted; the actual
// repertoire used by ces.Distance is always re-derived live via the
// engine's Repertoire function at these purviews.
func conceptFromRecord(mechanism combin.Set, rec cache.ConceptRecord) (*ces.Concept, error) {
	causePurview := combin.Set(rec.CausePurview)
	effectPurview := combin.Set(rec.EffectPurview)

	if _, err := distribution.NewFromData(causePurview, rec.CauseData); err != nil {
		return nil, err
	}
	if _, err := distribution.NewFromData(effectPurview, rec.EffectData); err != nil {
		return nil, err
	}

	return &ces.Concept{
		Mechanism: mechanism,
		Cause:     &mip.MICEResult{Purview: causePurview, MIP: &mip.Result{Phi: rec.Phi}},
		Effect:    &mip.MICEResult{Purview: effectPurview, MIP: &mip.Result{Phi: rec.Phi}},
		Phi:       rec.Phi,
	}, nil
}

func (s *cachedCESSource) Distance(home1 ces.Source, c1 ces.CES, home2 ces.Source, c2 ces.CES, cut ces.Source) (float64, error) {
	if s.distances == nil {
		return ces.Distance(home1, c1, home2, c2, cut)
	}

	key := cesDistanceKey{
		pair:     cache.NewPairKey(cesFingerprint(c1), cesFingerprint(c2)),
		cutFrom:  cut.Subsystem.Cut().From,
		cutTo:    cut.Subsystem.Cut().To,
		subNodes: cut.Subsystem.Nodes(),
		subState: cut.Subsystem.State(),
	}

	if d, ok := s.distances.Get(key); ok {
		s.logger.Debug("distance cache hit")

		return d, nil
	}

	d, err := ces.Distance(home1, c1, home2, c2, cut)
	if err != nil {
		return 0, err
	}
	s.distances.Put(key, d)

	return d, nil
}
