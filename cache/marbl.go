package cache

import (
	"encoding/binary"
	"hash/fnv"
	"io"
	"math"
	"sort"

	"github.com/ignaciobernardo/goiphi/combin"
	"github.com/ignaciobernardo/goiphi/subsystem"
)

// Fingerprint is a MarblSet: the hash of a mechanism's canonical,
// cut-aware Markov-blanket fingerprint within a subsystem (specification
// §4.9). Equal fingerprints are expected to imply an equal concept.
type Fingerprint uint64

func (f Fingerprint) key() []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(f))

	return b
}

// tpmPrecision is the rounding grid blanket TPM values are snapped to
// before byte-serialization, so floating-point noise a few ULPs apart
// does not produce spuriously distinct fingerprints.
const tpmPrecision = 1e-9

// blanket is one mechanism node's causal neighborhood within a subsystem:
// how many parents and children it has under the subsystem's current
// cut, and its own marginal effect TPM. Two nodes — in the same
// subsystem or different ones — with equal blankets are structurally
// interchangeable for fingerprinting purposes.
type blanket struct {
	inputs  int
	outputs int
	tpm     string // fixed-precision encoded TPM table, for byte-exact equality
}

func nodeBlanket(sub *subsystem.Subsystem, node int) (blanket, error) {
	table, err := sub.NodeTPM(node)
	if err != nil {
		return blanket{}, err
	}

	outputs := 0
	for _, other := range sub.Nodes().Indices() {
		if sub.Connected(node, other) {
			outputs++
		}
	}

	return blanket{inputs: sub.Inputs(node).Len(), outputs: outputs, tpm: encodeTPM(table)}, nil
}

func encodeTPM(table []float64) string {
	b := make([]byte, 8*len(table))
	for i, p := range table {
		rounded := math.Round(p/tpmPrecision) * tpmPrecision
		binary.BigEndian.PutUint64(b[i*8:], math.Float64bits(rounded))
	}

	return string(b)
}

// fastFingerprint hashes mechanism's per-node blankets in mechanism's own
// ascending node-index order, without grouping isomorphic blankets
// together. This is the §4.9 "fast path": cheap to compute (no pairwise
// comparison), but only coincidentally shared across mechanisms whose
// nodes happen to already be listed in matching order.
func fastFingerprint(sub *subsystem.Subsystem, mechanism combin.Set) (Fingerprint, error) {
	h := fnv.New64a()
	for _, node := range mechanism.Indices() {
		b, err := nodeBlanket(sub, node)
		if err != nil {
			return 0, err
		}
		writeBlanket(h, b)
	}

	return Fingerprint(h.Sum64()), nil
}

// CanonicalFingerprint computes the full MarblSet of mechanism within
// sub: the canonical, order-independent fingerprint of the multiset of
// its nodes' blankets (specification §4.9). Structurally-identical
// blankets are grouped into equivalence classes via a union-find pass
// (so a mechanism with 3 causally-interchangeable nodes fingerprints the
// same regardless of which of those 3 happens to occupy which index),
// and the resulting (signature, class size) pairs are sorted before
// hashing so the result does not depend on mechanism's enumeration order.
func CanonicalFingerprint(sub *subsystem.Subsystem, mechanism combin.Set) (Fingerprint, error) {
	nodes := mechanism.Indices()
	blankets := make([]blanket, len(nodes))
	for i, n := range nodes {
		b, err := nodeBlanket(sub, n)
		if err != nil {
			return 0, err
		}
		blankets[i] = b
	}

	d := newDSU(len(nodes))
	for i := range blankets {
		for j := i + 1; j < len(blankets); j++ {
			if blankets[i] == blankets[j] {
				d.union(i, j)
			}
		}
	}

	type class struct {
		sig  blanket
		size int
	}
	sizeByRoot := make(map[int]int)
	sigByRoot := make(map[int]blanket)
	for i := range blankets {
		root := d.find(i)
		sizeByRoot[root]++
		sigByRoot[root] = blankets[i]
	}

	classes := make([]class, 0, len(sizeByRoot))
	for root, size := range sizeByRoot {
		classes = append(classes, class{sig: sigByRoot[root], size: size})
	}
	sort.Slice(classes, func(i, j int) bool {
		a, b := classes[i].sig, classes[j].sig
		if a.inputs != b.inputs {
			return a.inputs < b.inputs
		}
		if a.outputs != b.outputs {
			return a.outputs < b.outputs
		}
		if a.tpm != b.tpm {
			return a.tpm < b.tpm
		}
		return classes[i].size < classes[j].size
	})

	h := fnv.New64a()
	for _, c := range classes {
		writeBlanket(h, c.sig)
		var szb [8]byte
		binary.BigEndian.PutUint64(szb[:], uint64(c.size))
		h.Write(szb[:])
	}

	return Fingerprint(h.Sum64()), nil
}

func writeBlanket(h io.Writer, b blanket) {
	var hdr [16]byte
	binary.BigEndian.PutUint64(hdr[0:8], uint64(b.inputs))
	binary.BigEndian.PutUint64(hdr[8:16], uint64(b.outputs))
	h.Write(hdr[:])
	h.Write([]byte(b.tpm))
}
