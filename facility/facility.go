// SPDX-License-Identifier: MIT

package facility

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvplan/domain"
	"github.com/katalvlaran/lvplan/score"
	"github.com/katalvlaran/lvplan/selector/nearby"
)

var (
	// ErrNoPoints is returned for an empty point set.
	ErrNoPoints = errors.New("facility: no points")

	// ErrInvalidPoint marks a point with a missing ID, non-finite coordinates
	// or a negative opening cost.
	ErrInvalidPoint = errors.New("facility: invalid point")

	// ErrDuplicateID is returned when two points share an ID.
	ErrDuplicateID = errors.New("facility: duplicate point id")
)

// costScale turns float costs into int64 soft score units.
const costScale = 1000

// Point is a candidate facility and a customer at the same time.
type Point struct {
	ID          string  `csv:"id"`
	X           float64 `csv:"x"`
	Y           float64 `csv:"y"`
	OpeningCost float64 `csv:"opening_cost"`

	// Leader is the planning variable.
	Leader *Point `csv:"-"`

	index int `csv:"-"` // position in Problem.Points
}

func (p *Point) String() string { return p.ID }

// IsFacility reports whether p leads itself.
func (p *Point) IsFacility() bool { return p.Leader == p }

func (p *Point) coords() []float64 { return []float64{p.X, p.Y} }

// Problem is the working solution.
type Problem struct {
	Points []*Point
	Arena  *domain.Arena[*Point]
	Leader domain.Variable[*Point, *Point]

	roads *mat.Dense // shortest road distances; nil ⇒ straight lines
}

// LoadCSV reads points with the header id,x,y,opening_cost.
func LoadCSV(r io.Reader) ([]*Point, error) {
	var points []*Point
	if err := gocsv.Unmarshal(r, &points); err != nil {
		return nil, fmt.Errorf("facility: reading points: %w", err)
	}

	return points, nil
}

// NewProblem validates points and opens a facility at every point without a
// leader.
func NewProblem(points []*Point) (*Problem, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	seen := make(map[string]struct{}, len(points))
	for i, p := range points {
		if p == nil || p.ID == "" {
			return nil, fmt.Errorf("%w: #%d has no id", ErrInvalidPoint, i)
		}
		if !isFinite(p.X) || !isFinite(p.Y) || !isFinite(p.OpeningCost) || p.OpeningCost < 0 {
			return nil, fmt.Errorf("%w: %s", ErrInvalidPoint, p.ID)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	for i, p := range points {
		p.index = i
		if p.Leader == nil {
			p.Leader = p
		}
	}

	return &Problem{
		Points: points,
		Arena:  domain.NewArena(points...),
		Leader: domain.Variable[*Point, *Point]{
			Name:  "leader",
			Get:   func(p *Point) *Point { return p.Leader },
			Set:   func(p *Point, l *Point) { p.Leader = l },
			Range: func(*Point) []*Point { return points },
		},
	}, nil
}

func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// Score computes the HardSoftScore of the current assignment. A missing
// leader counts as a hard violation.
func (pr *Problem) Score() score.Score {
	var (
		hard int64
		cost float64
	)
	for _, p := range pr.Points {
		switch {
		case p.Leader == nil:
			hard--
		case p.IsFacility():
			cost += p.OpeningCost
		default:
			if !p.Leader.IsFacility() {
				hard--
			}
			cost += pr.distance(p, p.Leader)
		}
	}

	return score.OfHardSoft(hard, -int64(math.Round(cost*costScale)))
}

func (pr *Problem) distance(a, b *Point) float64 {
	if pr.roads != nil {
		return pr.roads.At(a.index, b.index)
	}

	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// DistanceMeter measures road distances after UseRoads and straight-line
// distances otherwise.
func (pr *Problem) DistanceMeter() nearby.DistanceMeter[*Point, *Point] {
	if pr.roads != nil {
		index := func(p *Point) int { return p.index }
		return nearby.MatrixMeter[*Point, *Point]{Matrix: pr.roads, Row: index, Col: index}
	}

	return nearby.EuclideanMeter[*Point, *Point]{Origin: (*Point).coords, Destination: (*Point).coords}
}

// Facilities returns the points leading themselves, in input order.
func (pr *Problem) Facilities() []*Point {
	var out []*Point
	for _, p := range pr.Points {
		if p.IsFacility() {
			out = append(out, p)
		}
	}

	return out
}

// snapshot copies the leaders into dst (reused when large enough).
func (pr *Problem) snapshot(dst []*Point) []*Point {
	dst = dst[:0]
	for _, p := range pr.Points {
		dst = append(dst, p.Leader)
	}

	return dst
}

func (pr *Problem) restore(leaders []*Point) {
	for i, p := range pr.Points {
		p.Leader = leaders[i]
	}
}

// Assignment is one exported row of a solution.
type Assignment struct {
	ID       string  `csv:"id"`
	Leader   string  `csv:"leader"`
	Facility bool    `csv:"facility"`
	Distance float64 `csv:"distance"`
}

// Assignments lists every point with its leader.
func (pr *Problem) Assignments() []Assignment {
	out := make([]Assignment, 0, len(pr.Points))
	for _, p := range pr.Points {
		a := Assignment{ID: p.ID, Facility: p.IsFacility()}
		if p.Leader != nil {
			a.Leader = p.Leader.ID
			a.Distance = pr.distance(p, p.Leader)
		}
		out = append(out, a)
	}

	return out
}

// WriteAssignments writes Assignments as CSV.
func (pr *Problem) WriteAssignments(w io.Writer) error {
	if err := gocsv.Marshal(pr.Assignments(), w); err != nil {
		return fmt.Errorf("facility: writing assignments: %w", err)
	}

	return nil
}
