package cache

import (
	"sync/atomic"

	"github.com/dgraph-io/badger/v4"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/ignaciobernardo/goiphi/combin"
	"github.com/ignaciobernardo/goiphi/subsystem"
)

// recordVersion is embedded in every persisted ConceptRecord. Bumping it
// invalidates every entry written by a prior format (specification §6's
// "tolerate version drift by embedding a format version; version
// mismatch ⇒ invalidate that entry").
const recordVersion uint8 = 1

// ConceptRecord is the persisted projection of a ces.Concept: enough to
// reconstruct its cause and effect repertoires without recomputation.
// The richer in-process Concept (MICE tie lists, partition identities) is
// not persisted — that bookkeeping is only ever consulted within the run
// that produced it, never across a process restart.
type ConceptRecord struct {
	Version       uint8
	Mechanism     uint64
	CausePurview  uint64
	CauseData     []float64
	EffectPurview uint64
	EffectData    []float64
	Phi           float64
}

// ConceptCache is the persistent "concept" cache of specification §4.9:
// a content-addressed, disk-backed store keyed by a mechanism's MarblSet.
// Lookup first tries the cheap fastFingerprint, then falls back to the
// full CanonicalFingerprint on a miss; Store always writes under the
// canonical key, so a later lookup by a structurally-equivalent but
// differently-ordered mechanism still hits.
type ConceptCache struct {
	db     *badger.DB
	closed atomic.Bool
}

// noopLogger silences badger's default stderr logging; the engine logs
// cache events itself (via zap, at the Engine layer) rather than letting
// badger write its own log lines.
type noopLogger struct{}

func (noopLogger) Errorf(string, ...interface{})   {}
func (noopLogger) Warningf(string, ...interface{}) {}
func (noopLogger) Infof(string, ...interface{})    {}
func (noopLogger) Debugf(string, ...interface{})   {}

// Open creates or opens a persistent concept cache rooted at dir.
func Open(dir string) (*ConceptCache, error) {
	opts := badger.DefaultOptions(dir).WithLogger(noopLogger{})
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &ConceptCache{db: db}, nil
}

// Close releases the underlying store's file handles. Any Lookup or Store
// call after Close returns ErrStoreClosed rather than reaching into a torn-
// down badger.DB.
func (c *ConceptCache) Close() error {
	c.closed.Store(true)

	return c.db.Close()
}

// Lookup implements the §4.9 two-phase fingerprint search: a fast,
// non-canonicalized key first, then the canonical key on a miss.
func (c *ConceptCache) Lookup(sub *subsystem.Subsystem, mechanism combin.Set) (ConceptRecord, bool, error) {
	if c.closed.Load() {
		return ConceptRecord{}, false, ErrStoreClosed
	}

	fast, err := fastFingerprint(sub, mechanism)
	if err != nil {
		return ConceptRecord{}, false, err
	}
	if rec, ok, err := c.get(fast); err != nil || ok {
		return rec, ok, err
	}

	canon, err := CanonicalFingerprint(sub, mechanism)
	if err != nil {
		return ConceptRecord{}, false, err
	}

	return c.get(canon)
}

// Store persists rec under mechanism's canonical MarblSet key.
func (c *ConceptCache) Store(sub *subsystem.Subsystem, mechanism combin.Set, rec ConceptRecord) error {
	if c.closed.Load() {
		return ErrStoreClosed
	}

	canon, err := CanonicalFingerprint(sub, mechanism)
	if err != nil {
		return err
	}
	rec.Version = recordVersion

	data, err := msgpack.Marshal(rec)
	if err != nil {
		return err
	}

	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(canon.key(), data)
	})
}

func (c *ConceptCache) get(fp Fingerprint) (ConceptRecord, bool, error) {
	var rec ConceptRecord
	found := false

	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(fp.key())
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			var decoded ConceptRecord
			if unmarshalErr := msgpack.Unmarshal(val, &decoded); unmarshalErr != nil {
				// Cache corruption recovers locally as a miss (§7), never
				// propagates to the caller.
				return nil
			}
			if decoded.Version != recordVersion {
				return nil // version drift: treat as miss
			}

			rec = decoded
			found = true

			return nil
		})
	})
	if err != nil {
		return ConceptRecord{}, false, err
	}

	return rec, found, nil
}
