package metric

import (
	"math"

	"github.com/ignaciobernardo/goiphi/distribution"
	"gonum.org/v1/gonum/mat"
)

const flowEpsilon = 1e-12

// edge is one arc of the min-cost-flow residual graph. Forward and
// backward residual arcs are stored as a matched pair at indices 2k/2k+1,
// the same "paired residual edge" convention katalvlaran/lvlath/flow uses
// for its capacity maps, adapted here to an explicit edge list since costs
// (not just capacities) need to flip sign on the residual arc.
type edge struct {
	to       int
	cap      float64
	cost     float64
	reverse  int // index of the paired residual edge in the same graph's edges slice
}

type mcmfGraph struct {
	n     int
	adj   [][]int // adj[v] = indices into edges incident to v
	edges []edge
}

func newMCMFGraph(n int) *mcmfGraph {
	return &mcmfGraph{n: n, adj: make([][]int, n)}
}

func (g *mcmfGraph) addEdge(u, v int, cap, cost float64) {
	g.adj[u] = append(g.adj[u], len(g.edges))
	g.edges = append(g.edges, edge{to: v, cap: cap, cost: cost, reverse: len(g.edges) + 1})
	g.adj[v] = append(g.adj[v], len(g.edges))
	g.edges = append(g.edges, edge{to: u, cap: 0, cost: -cost, reverse: len(g.edges) - 1})
}

// minCostFlow pushes up to maxFlow units of flow from source to sink at
// minimum total cost, via repeated shortest-cost augmenting paths found by
// Bellman-Ford (residual backward edges carry negative cost, so Dijkstra
// alone is not valid here). Returns the total cost actually moved and the
// flow actually achieved.
func (g *mcmfGraph) minCostFlow(source, sink int, maxFlow float64) (cost, flow float64) {
	for flow < maxFlow-flowEpsilon {
		dist := make([]float64, g.n)
		inQueue := make([]bool, g.n)
		prevEdge := make([]int, g.n)
		for i := range dist {
			dist[i] = math.Inf(1)
			prevEdge[i] = -1
		}
		dist[source] = 0

		queue := []int{source}
		inQueue[source] = true
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			inQueue[u] = false
			for _, ei := range g.adj[u] {
				e := g.edges[ei]
				if e.cap <= flowEpsilon {
					continue
				}
				if nd := dist[u] + e.cost; nd < dist[e.to]-flowEpsilon {
					dist[e.to] = nd
					prevEdge[e.to] = ei
					if !inQueue[e.to] {
						queue = append(queue, e.to)
						inQueue[e.to] = true
					}
				}
			}
		}

		if math.IsInf(dist[sink], 1) {
			break // no augmenting path left: supply/demand exhausted
		}

		// Bottleneck capacity along the discovered path.
		bottleneck := maxFlow - flow
		for v := sink; v != source; {
			ei := prevEdge[v]
			if g.edges[ei].cap < bottleneck {
				bottleneck = g.edges[ei].cap
			}
			v = g.edges[g.edges[ei].reverse].to
		}

		for v := sink; v != source; {
			ei := prevEdge[v]
			g.edges[ei].cap -= bottleneck
			g.edges[g.edges[ei].reverse].cap += bottleneck
			v = g.edges[g.edges[ei].reverse].to
		}

		flow += bottleneck
		cost += bottleneck * dist[sink]
	}

	return cost, flow
}

// GroundCostMatrix returns the n x n Hamming-distance matrix between every
// pair of states of a purview of the given size, n = 2^size. Exposed so
// callers (e.g. concept-space distance, which compares repertoires
// embedded in a larger shared space) can build or inspect the cost matrix
// directly.
func GroundCostMatrix(size int) *mat.Dense {
	n := 1 << uint(size)
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Set(i, j, HammingDistance(i, j))
		}
	}

	return m
}

// TransportCost solves the general (non-square, arbitrary ground cost)
// balanced transportation problem: move every unit of supply onto demand
// at minimum total cost, where cost(i, j) is the price of moving one unit
// from supply slot i to demand slot j. supply and demand must carry equal
// total mass within Epsilon. Exposed so callers whose "states" are not
// purview bitmask indices (e.g. package ces's concept-space distance) can
// reuse the same min-cost-flow solver EMD is built on.
func TransportCost(supply, demand []float64, cost func(i, j int) float64) (float64, error) {
	n, m := len(supply), len(demand)

	totalSupply, totalDemand := 0.0, 0.0
	for _, v := range supply {
		totalSupply += v
	}
	for _, v := range demand {
		totalDemand += v
	}
	if math.Abs(totalSupply-totalDemand) > Epsilon {
		return 0, ErrUnbalancedMass
	}
	if totalSupply <= flowEpsilon {
		return 0, nil
	}

	// Graph layout: 0..n-1 are supply nodes, n..n+m-1 are demand nodes, the
	// next index is the super-source, the one after that the super-sink.
	source, sink := n+m, n+m+1
	g := newMCMFGraph(n + m + 2)

	for i, mass := range supply {
		if mass <= flowEpsilon {
			continue
		}
		g.addEdge(source, i, mass, 0)
	}
	for j, mass := range demand {
		if mass <= flowEpsilon {
			continue
		}
		g.addEdge(n+j, sink, mass, 0)
	}
	for i := 0; i < n; i++ {
		if supply[i] <= flowEpsilon {
			continue
		}
		for j := 0; j < m; j++ {
			if demand[j] <= flowEpsilon {
				continue
			}
			g.addEdge(i, n+j, math.Inf(1), cost(i, j))
		}
	}

	total, _ := g.minCostFlow(source, sink, totalSupply)

	return total, nil
}

// EMD computes the Earth Mover's Distance between two repertoires defined
// over the same purview, under the Hamming ground metric between purview
// states (specification §4.2). Both repertoires must already sum to 1.
func EMD(p, q *distribution.Repertoire) (float64, error) {
	if p.Purview() != q.Purview() {
		return 0, ErrPurviewMismatch
	}

	pData := p.Data()
	qData := q.Data()

	// Degenerate 1-state purview (empty purview): no transportation needed.
	if len(pData) == 1 {
		return 0, nil
	}

	cost := GroundCostMatrix(p.Purview().Len())

	return TransportCost(pData, qData, func(i, j int) float64 { return cost.At(i, j) })
}
