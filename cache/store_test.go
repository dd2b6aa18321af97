package cache

import (
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/ignaciobernardo/goiphi/combin"
	"github.com/ignaciobernardo/goiphi/network"
	"github.com/ignaciobernardo/goiphi/subsystem"
	"github.com/stretchr/testify/require"
)

func twoNodeNetwork(t *testing.T) *network.Network {
	t.Helper()
	tpm := []float64{
		0, 0,
		0, 1,
		1, 0,
		1, 1,
	}
	cm := []bool{false, true, true, false}
	net, err := network.New(2, tpm, network.WithConnectivity(cm))
	require.NoError(t, err)

	return net
}

func TestConceptCacheStoreThenLookupHits(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	net := twoNodeNetwork(t)
	sub, err := subsystem.New(net, 0b01, combin.NewSet(0, 1))
	require.NoError(t, err)
	mechanism := combin.NewSet(0)

	_, ok, err := store.Lookup(sub, mechanism)
	require.NoError(t, err)
	require.False(t, ok)

	rec := ConceptRecord{
		Mechanism:     uint64(mechanism),
		CausePurview:  uint64(combin.NewSet(0, 1)),
		CauseData:     []float64{0.25, 0.25, 0.25, 0.25},
		EffectPurview: uint64(combin.NewSet(1)),
		EffectData:    []float64{0.5, 0.5},
		Phi:           0.3,
	}
	require.NoError(t, store.Store(sub, mechanism, rec))

	got, ok, err := store.Lookup(sub, mechanism)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, recordVersion, got.Version)
	require.InDelta(t, 0.3, got.Phi, 1e-9)
	require.Equal(t, rec.CauseData, got.CauseData)
}

func TestConceptCacheVersionMismatchIsTreatedAsMiss(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	net := twoNodeNetwork(t)
	sub, err := subsystem.New(net, 0b01, combin.NewSet(0, 1))
	require.NoError(t, err)
	mechanism := combin.NewSet(0)

	canon, err := CanonicalFingerprint(sub, mechanism)
	require.NoError(t, err)

	stale, err := msgpack.Marshal(ConceptRecord{Version: recordVersion + 1, Phi: 0.1})
	require.NoError(t, err)
	require.NoError(t, store.db.Update(func(txn *badger.Txn) error {
		return txn.Set(canon.key(), stale)
	}))

	_, ok, err := store.Lookup(sub, mechanism)
	require.NoError(t, err)
	require.False(t, ok, "a record written under a different format version must read back as a miss")
}

func TestConceptCacheRejectsOperationsAfterClose(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)

	net := twoNodeNetwork(t)
	sub, err := subsystem.New(net, 0b01, combin.NewSet(0, 1))
	require.NoError(t, err)
	mechanism := combin.NewSet(0)

	require.NoError(t, store.Close())

	_, _, err = store.Lookup(sub, mechanism)
	require.ErrorIs(t, err, ErrStoreClosed)

	err = store.Store(sub, mechanism, ConceptRecord{Phi: 0.1})
	require.ErrorIs(t, err, ErrStoreClosed)
}
