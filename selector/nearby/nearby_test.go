// Package nearby_test covers cache construction, both iteration modes, the
// distributions and the error taxonomy of nearby selection.
package nearby_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvplan/domain"
	"github.com/katalvlaran/lvplan/move"
	"github.com/katalvlaran/lvplan/scope"
	"github.com/katalvlaran/lvplan/selector"
	"github.com/katalvlaran/lvplan/selector/nearby"
)

// pt is a location on a line; its planning variable points at another pt.
type pt struct {
	x    float64
	next *pt
}

func linePoints(xs ...float64) *domain.Arena[*pt] {
	arena := domain.NewArena[*pt]()
	for _, x := range xs {
		arena.Add(&pt{x: x})
	}

	return arena
}

func nextVar(arena *domain.Arena[*pt]) domain.Variable[*pt, *pt] {
	return domain.Variable[*pt, *pt]{
		Name: "next",
		Get:  func(p *pt) *pt { return p.next },
		Set:  func(p *pt, v *pt) { p.next = v },
		Range: func(*pt) []*pt {
			out := make([]*pt, 0, arena.Len())
			for _, p := range arena.All() {
				out = append(out, p)
			}
			return out
		},
	}
}

var lineMeter = nearby.EuclideanMeter[*pt, *pt]{
	Origin:      func(p *pt) []float64 { return []float64{p.x} },
	Destination: func(p *pt) []float64 { return []float64{p.x} },
}

func xsOf(ps []*pt) []float64 {
	out := make([]float64, len(ps))
	for i, p := range ps {
		out[i] = p.x
	}

	return out
}

// -----------------------------------------------------------------------------
// Suite: one line arena, mimic origin
// -----------------------------------------------------------------------------

type NearbySuite struct {
	suite.Suite
	arena  *domain.Arena[*pt]
	rec    *selector.RecordingEntitySelector[*pt]
	origin *selector.ReplayingEntitySelector[*pt]
	child  *selector.RangeValueSelector[*pt, *pt]
	phase  *scope.PhaseScope
}

func (s *NearbySuite) SetupTest() {
	s.arena = linePoints(0, 10, 3, 7, 1)
	entities, err := selector.NewArenaEntitySelector(s.arena, false)
	s.Require().NoError(err)
	s.rec, err = selector.NewRecordingEntitySelector[*pt](entities)
	s.Require().NoError(err)
	s.origin, err = selector.NewReplayingEntitySelector(s.rec)
	s.Require().NoError(err)
	s.child, err = selector.NewRangeValueSelector(s.arena, nextVar(s.arena), false)
	s.Require().NoError(err)
	s.phase = scope.NewPhaseScope(scope.NewSolverScope(7), 0)
	s.Require().NoError(s.rec.PhaseStarted(s.phase))
}

// recordFirst makes the replaying origin point at entity 0 (x=0).
func (s *NearbySuite) recordFirst() {
	next, stop := s.rec.Iterator().Pull()
	defer stop()
	id, ok := next()
	s.Require().True(ok)
	s.Require().Equal(domain.EntityID(0), id)
}

func (s *NearbySuite) newSelector(opts nearby.Options) *nearby.ValueSelector[*pt, *pt] {
	sel, err := nearby.NewValueSelector[*pt, *pt](s.child, s.origin, lineMeter, opts)
	s.Require().NoError(err)
	s.Require().NoError(sel.PhaseStarted(s.phase))

	return sel
}

func (s *NearbySuite) TestCacheSortedAscending() {
	sel := s.newSelector(nearby.DefaultOptions())
	var id domain.EntityID
	for id = 0; int(id) < s.arena.Len(); id++ {
		list := sel.Neighbors(id)
		s.Require().Len(list, 5)
		s.Equal(s.arena.Get(id), list[0], "self is nearest")
		var i int
		for i = 1; i < len(list); i++ {
			prev := math.Abs(list[i-1].x - s.arena.Get(id).x)
			cur := math.Abs(list[i].x - s.arena.Get(id).x)
			s.LessOrEqual(prev, cur)
		}
	}
	s.Equal([]float64{10, 7, 3, 1, 0}, xsOf(sel.Neighbors(1)))
}

func (s *NearbySuite) TestOriginalExcludesSelf() {
	sel := s.newSelector(nearby.DefaultOptions())
	s.recordFirst()

	s.Equal(4, sel.Size(0))
	s.False(sel.IsNeverEnding())
	got := selector.Take(sel.Iterator(0), 100)
	s.Equal([]float64{1, 3, 7, 10}, xsOf(got))
}

func (s *NearbySuite) TestOriginalIncludesSelf() {
	opts := nearby.DefaultOptions()
	opts.ExcludeSelf = false
	sel := s.newSelector(opts)
	s.recordFirst()

	s.Equal(5, sel.Size(0))
	s.Equal([]float64{0, 1, 3, 7, 10}, xsOf(selector.Take(sel.Iterator(0), 100)))
}

func (s *NearbySuite) TestOriginalWalksEveryOrigin() {
	entities, err := selector.NewArenaEntitySelector(s.arena, false)
	s.Require().NoError(err)
	sel, err := nearby.NewValueSelector[*pt, *pt](s.child, entities, lineMeter, nearby.DefaultOptions())
	s.Require().NoError(err)
	s.Require().NoError(sel.PhaseStarted(s.phase))

	s.Len(selector.Take(sel.Iterator(0), 100), 5*4)
}

func (s *NearbySuite) TestRandomStaysInsideBlock() {
	block, err := nearby.NewBlockDistribution(1, 2, 1, 0)
	s.Require().NoError(err)
	sel := s.newSelector(nearby.Options{RandomSelection: true, Random: block, ExcludeSelf: true})
	s.recordFirst()

	s.True(sel.IsNeverEnding())
	got := selector.Take(sel.Iterator(0), 200)
	s.Len(got, 200, "random selection does not end")
	seen := map[float64]bool{}
	for _, p := range got {
		seen[p.x] = true
	}
	s.Equal(map[float64]bool{1: true, 3: true}, seen, "two nearest, self excluded")
}

func (s *NearbySuite) TestRandomCacheKeepsDrawableIndices() {
	linear, err := nearby.NewLinearDistribution(2, 0)
	s.Require().NoError(err)
	sel := s.newSelector(nearby.Options{RandomSelection: true, Random: linear, ExcludeSelf: true})
	s.recordFirst()

	s.Equal([]float64{0, 1, 3}, xsOf(sel.Neighbors(0)), "self plus the two drawable neighbors")
	s.Equal(2, sel.Size(0))
	seen := map[float64]bool{}
	for _, p := range selector.Take(sel.Iterator(0), 200) {
		seen[p.x] = true
	}
	s.Equal(map[float64]bool{1: true, 3: true}, seen)

	// The block ratio still applies to the full neighborhood of four.
	half, err := nearby.NewBlockDistribution(1, 2, 0.5, 0)
	s.Require().NoError(err)
	sel = s.newSelector(nearby.Options{RandomSelection: true, Random: half, ExcludeSelf: true})
	s.recordFirst()
	s.Len(sel.Neighbors(0), 3)
	seen = map[float64]bool{}
	for _, p := range selector.Take(sel.Iterator(0), 200) {
		seen[p.x] = true
	}
	s.Equal(map[float64]bool{1: true, 3: true}, seen)

	s.Len(s.newSelector(nearby.DefaultOptions()).Neighbors(0), 5, "original mode keeps every value")
}

func (s *NearbySuite) TestUsageOutsidePhasePanics() {
	sel, err := nearby.NewValueSelector[*pt, *pt](s.child, s.origin, lineMeter, nearby.DefaultOptions())
	s.Require().NoError(err)
	s.Panics(func() { sel.Iterator(0) })

	s.Require().NoError(sel.PhaseStarted(s.phase))
	sel.PhaseEnded(s.phase)
	s.Panics(func() { sel.Iterator(0) }, "cache released at phase end")
}

func (s *NearbySuite) TestCapacity() {
	opts := nearby.DefaultOptions()
	opts.IndexLimit = 3
	sel, err := nearby.NewValueSelector[*pt, *pt](s.child, s.origin, lineMeter, opts)
	s.Require().NoError(err)
	s.ErrorIs(sel.PhaseStarted(s.phase), nearby.ErrCapacity)
}

func (s *NearbySuite) TestNaNDistance() {
	meter := nearby.DistanceMeterFunc[*pt, *pt](func(a, b *pt) float64 {
		if b.x == 7 {
			return math.NaN()
		}
		return math.Abs(a.x - b.x)
	})
	sel, err := nearby.NewValueSelector[*pt, *pt](s.child, s.origin, meter, nearby.DefaultOptions())
	s.Require().NoError(err)

	err = sel.PhaseStarted(s.phase)
	s.ErrorIs(err, nearby.ErrDistance)
	var de nearby.DistanceError
	s.Require().True(errors.As(err, &de))
	s.Equal(domain.EntityID(0), de.Origin)
	s.Equal(3, de.Index)
}

func TestNearbySuite(t *testing.T) {
	suite.Run(t, new(NearbySuite))
}

// -----------------------------------------------------------------------------
// Edge cases and construction
// -----------------------------------------------------------------------------

func TestRandom_EmptyNeighborhoodIsExhausted(t *testing.T) {
	arena := linePoints(0, 1, 2)
	selfOnly := domain.Variable[*pt, *pt]{
		Name:  "next",
		Get:   func(p *pt) *pt { return p.next },
		Set:   func(p *pt, v *pt) { p.next = v },
		Range: func(p *pt) []*pt { return []*pt{p} },
	}
	child, err := selector.NewRangeValueSelector(arena, selfOnly, false)
	require.NoError(t, err)
	origin, err := selector.NewArenaEntitySelector(arena, false)
	require.NoError(t, err)
	linear, err := nearby.NewLinearDistribution(10, 0)
	require.NoError(t, err)

	sel, err := nearby.NewValueSelector[*pt, *pt](child, origin, lineMeter,
		nearby.Options{RandomSelection: true, Random: linear, ExcludeSelf: true})
	require.NoError(t, err)
	require.NoError(t, sel.PhaseStarted(scope.NewPhaseScope(scope.NewSolverScope(1), 0)))

	var id domain.EntityID
	for id = 0; id < 3; id++ {
		assert.Equal(t, 0, sel.Size(id))
		next, stop := sel.Iterator(id).Pull()
		v, more := next()
		stop()
		assert.False(t, more)
		assert.Nil(t, v)
	}
}

func TestCache_TiesKeepChildOrder(t *testing.T) {
	arena := linePoints(0, -1, 1, -2, 2)
	entities, err := selector.NewArenaEntitySelector(arena, false)
	require.NoError(t, err)
	rec, err := selector.NewRecordingEntitySelector[*pt](entities)
	require.NoError(t, err)
	origin, err := selector.NewReplayingEntitySelector(rec)
	require.NoError(t, err)
	child, err := selector.NewRangeValueSelector(arena, nextVar(arena), false)
	require.NoError(t, err)
	sel, err := nearby.NewValueSelector[*pt, *pt](child, origin, lineMeter, nearby.DefaultOptions())
	require.NoError(t, err)
	phase := scope.NewPhaseScope(scope.NewSolverScope(1), 0)
	require.NoError(t, rec.PhaseStarted(phase))
	require.NoError(t, sel.PhaseStarted(phase))

	// -1 and 1 are both 1 away from 0, -2 and 2 both 2 away: the child lists
	// -1 before 1 and -2 before 2.
	assert.Equal(t, []float64{0, -1, 1, -2, 2}, xsOf(sel.Neighbors(0)))
	assert.Equal(t, []float64{-1, 0, -2, 1, 2}, xsOf(sel.Neighbors(1)))

	next, stop := rec.Iterator().Pull()
	id, _ := next()
	stop()
	require.Equal(t, domain.EntityID(0), id)
	assert.Equal(t, []float64{-1, 1, -2, 2}, xsOf(selector.Take(sel.Iterator(id), 10)))
}

func TestRandomChangeMoves_OriginFollowsEachEntity(t *testing.T) {
	arena := linePoints(0, 10, 3, 7, 1)
	entities, err := selector.NewArenaEntitySelector(arena, false)
	require.NoError(t, err)
	rec, err := selector.NewRecordingEntitySelector[*pt](entities)
	require.NoError(t, err)
	origin, err := selector.NewReplayingEntitySelector(rec)
	require.NoError(t, err)
	child, err := selector.NewRangeValueSelector(arena, nextVar(arena), false)
	require.NoError(t, err)
	nearest, err := nearby.NewBlockDistribution(1, 1, 1, 0)
	require.NoError(t, err)
	values, err := nearby.NewValueSelector[*pt, *pt](child, origin, lineMeter,
		nearby.Options{RandomSelection: true, Random: nearest, ExcludeSelf: true})
	require.NoError(t, err)
	moves, err := selector.NewChangeMoveSelector[*pt, *pt](rec, values, true)
	require.NoError(t, err)
	require.NoError(t, moves.PhaseStarted(scope.NewPhaseScope(scope.NewSolverScope(3), 0)))

	want := map[float64]float64{0: 1, 10: 7, 3: 1, 7: 10, 1: 0}
	got := map[float64]float64{}
	for _, m := range selector.Take(moves.Iterator(), 10) {
		cm := m.(*move.ChangeMove[*pt, *pt])
		got[cm.Entity.x] = cm.ToValue.x
	}
	assert.Equal(t, want, got, "each entity gets its own nearest neighbor")
}

func TestNewValueSelector_Configuration(t *testing.T) {
	arena := linePoints(0, 1)
	child, _ := selector.NewRangeValueSelector(arena, nextVar(arena), false)
	origin, _ := selector.NewArenaEntitySelector(arena, false)

	_, err := nearby.NewValueSelector[*pt, *pt](child, origin, lineMeter, nearby.Options{RandomSelection: true})
	assert.ErrorIs(t, err, nearby.ErrMissingRandom)
	assert.ErrorIs(t, err, nearby.ErrConfiguration)

	_, err = nearby.NewValueSelector[*pt, *pt](nil, origin, lineMeter, nearby.DefaultOptions())
	assert.ErrorIs(t, err, nearby.ErrConfiguration)

	intVar := domain.Variable[*pt, int]{
		Name:  "slot",
		Get:   func(*pt) int { return 0 },
		Set:   func(*pt, int) {},
		Range: func(*pt) []int { return []int{0, 1} },
	}
	intChild, _ := selector.NewRangeValueSelector(arena, intVar, false)
	intMeter := nearby.DistanceMeterFunc[*pt, int](func(*pt, int) float64 { return 0 })
	_, err = nearby.NewValueSelector[*pt, int](intChild, origin, intMeter, nearby.DefaultOptions())
	assert.ErrorIs(t, err, nearby.ErrIncompatibleTypes)
}

// -----------------------------------------------------------------------------
// Distributions
// -----------------------------------------------------------------------------

func TestDistributions_StayInRange(t *testing.T) {
	block, _ := nearby.NewBlockDistribution(2, 5, 0.5, 0.1)
	linear, _ := nearby.NewLinearDistribution(8, 0)
	parabolic, _ := nearby.NewParabolicDistribution(8, 0.2)
	beta, _ := nearby.NewBetaDistribution(1, 5, 0)

	r := rand.New(rand.NewSource(3))
	for name, d := range map[string]nearby.Random{
		"block": block, "linear": linear, "parabolic": parabolic, "beta": beta,
	} {
		for _, n := range []int{1, 2, 10, 100} {
			var i int
			for i = 0; i < 500; i++ {
				k := d.NextInt(r, n)
				require.GreaterOrEqual(t, k, 0, name)
				require.Less(t, k, n, name)
			}
		}
	}
}

func TestDistributions_BiasTowardNearest(t *testing.T) {
	linear, _ := nearby.NewLinearDistribution(10, 0)
	parabolic, _ := nearby.NewParabolicDistribution(10, 0)
	beta, _ := nearby.NewBetaDistribution(1, 5, 0)

	r := rand.New(rand.NewSource(11))
	for _, d := range []nearby.Random{linear, parabolic, beta} {
		counts := make([]int, 10)
		var i int
		for i = 0; i < 5000; i++ {
			counts[d.NextInt(r, 10)]++
		}
		assert.Greater(t, counts[0], counts[9], "%T favors index 0", d)
	}
}

func TestDistributions_SizeMaximumCaps(t *testing.T) {
	linear, _ := nearby.NewLinearDistribution(3, 0)
	assert.Equal(t, 3, linear.OverallSizeMaximum())
	r := rand.New(rand.NewSource(5))
	var i int
	for i = 0; i < 500; i++ {
		assert.Less(t, linear.NextInt(r, 100), 3)
	}

	block, _ := nearby.NewBlockDistribution(1, 4, 1, 0.5)
	assert.Equal(t, math.MaxInt, block.OverallSizeMaximum(), "uniform mix reaches every index")
}

func TestDistributions_Validation(t *testing.T) {
	_, err := nearby.NewBlockDistribution(0, 1, 0.5, 0)
	assert.ErrorIs(t, err, nearby.ErrConfiguration)
	_, err = nearby.NewBlockDistribution(3, 2, 0.5, 0)
	assert.ErrorIs(t, err, nearby.ErrConfiguration)
	_, err = nearby.NewBlockDistribution(1, 2, 1.5, 0)
	assert.ErrorIs(t, err, nearby.ErrConfiguration)
	_, err = nearby.NewLinearDistribution(0, 0)
	assert.ErrorIs(t, err, nearby.ErrConfiguration)
	_, err = nearby.NewParabolicDistribution(4, -0.1)
	assert.ErrorIs(t, err, nearby.ErrConfiguration)
	_, err = nearby.NewBetaDistribution(0, 1, 0)
	assert.ErrorIs(t, err, nearby.ErrConfiguration)
}

// -----------------------------------------------------------------------------
// Meters
// -----------------------------------------------------------------------------

func TestMeters(t *testing.T) {
	e := nearby.EuclideanMeter[[2]float64, [2]float64]{
		Origin:      func(p [2]float64) []float64 { return p[:] },
		Destination: func(p [2]float64) []float64 { return p[:] },
	}
	assert.InDelta(t, 5.0, e.Distance([2]float64{0, 0}, [2]float64{3, 4}), 1e-12)

	m := nearby.MatrixMeter[int, int]{
		Matrix: mat.NewDense(2, 2, []float64{0, 4, 9, 0}),
		Row:    func(i int) int { return i },
		Col:    func(j int) int { return j },
	}
	assert.Equal(t, 4.0, m.Distance(0, 1))
	assert.Equal(t, 9.0, m.Distance(1, 0), "matrix meters may be asymmetric")
}
