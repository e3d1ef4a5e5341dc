// SPDX-License-Identifier: MIT

package facility

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrInvalidRoad marks a road with an unknown endpoint or a negative or
	// non-finite length.
	ErrInvalidRoad = errors.New("facility: invalid road")

	// ErrDisconnected is returned when some point cannot reach another.
	ErrDisconnected = errors.New("facility: road network is disconnected")
)

// Road is an undirected road segment between two points.
type Road struct {
	From   string  `csv:"from"`
	To     string  `csv:"to"`
	Length float64 `csv:"length"`
}

// LoadRoadsCSV reads roads with the header from,to,length.
func LoadRoadsCSV(r io.Reader) ([]Road, error) {
	var roads []Road
	if err := gocsv.Unmarshal(r, &roads); err != nil {
		return nil, fmt.Errorf("facility: reading roads: %w", err)
	}

	return roads, nil
}

// UseRoads replaces straight-line distances by shortest road distances.
// Parallel roads keep the shorter length.
//
// Complexity: O(n · (n + r) log n) for n points and r roads; O(n²) memory.
func (pr *Problem) UseRoads(roads []Road) error {
	index := make(map[string]int64, len(pr.Points))
	g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for i, p := range pr.Points {
		index[p.ID] = int64(i)
		g.AddNode(simple.Node(i))
	}
	for _, r := range roads {
		from, okFrom := index[r.From]
		to, okTo := index[r.To]
		if !okFrom || !okTo || !isFinite(r.Length) || r.Length < 0 {
			return fmt.Errorf("%w: %s-%s", ErrInvalidRoad, r.From, r.To)
		}
		if from == to {
			continue
		}
		if w, ok := g.Weight(from, to); ok && w <= r.Length {
			continue
		}
		g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(from), simple.Node(to), r.Length))
	}

	n := len(pr.Points)
	dist := mat.NewDense(n, n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		sp := path.DijkstraFrom(simple.Node(i), g)
		for j = 0; j < n; j++ {
			w := sp.WeightTo(int64(j))
			if math.IsInf(w, 1) {
				return fmt.Errorf("%w: %s cannot reach %s", ErrDisconnected, pr.Points[i].ID, pr.Points[j].ID)
			}
			dist.Set(i, j, w)
		}
	}
	pr.roads = dist

	return nil
}
