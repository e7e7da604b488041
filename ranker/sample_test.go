package ranker

import (
	"math"
	"math/rand"

	"github.com/Ahmed-Sermani/go-ranker/corpus"
	"golang.org/x/xerrors"
	gc "gopkg.in/check.v1"
)

var _ = gc.Suite(new(SampleTestSuite))

type SampleTestSuite struct{}

func (s *SampleTestSuite) TestEstimateSumsToOne(c *gc.C) {
	corp := corpus.New(map[string][]string{
		"1.html": {"2.html", "3.html"},
		"2.html": {"3.html"},
		"3.html": nil,
	})

	for _, n := range []int{1, 10, 500} {
		ranks, err := Sample(corp, 0.85, n, rand.NewSource(42))
		c.Assert(err, gc.IsNil)
		c.Assert(ranks, gc.HasLen, corp.Len())
		assertSumsToOne(c, ranks, 1e-9)
	}
}

func (s *SampleTestSuite) TestConvergesTowardIterativeSolution(c *gc.C) {
	// The estimate is statistical; with a fixed seed and a long chain it
	// must land close to the deterministic solution, but exact equality
	// is never expected.
	corp := twoPageCycle()

	exact, err := Iterate(corp, 0.85)
	c.Assert(err, gc.IsNil)

	estimate, err := Sample(corp, 0.85, 100000, rand.NewSource(42))
	c.Assert(err, gc.IsNil)

	for _, page := range corp.Pages() {
		delta := math.Abs(estimate[page] - exact[page])
		c.Assert(delta < 0.02, gc.Equals, true, gc.Commentf("page %q off by %v", page, delta))
	}
}

func (s *SampleTestSuite) TestReproducibleWithFixedSource(c *gc.C) {
	corp := corpus.New(map[string][]string{
		"1.html": {"2.html"},
		"2.html": {"1.html", "3.html"},
		"3.html": {"1.html"},
	})

	first, err := Sample(corp, 0.85, 2000, rand.NewSource(7))
	c.Assert(err, gc.IsNil)
	second, err := Sample(corp, 0.85, 2000, rand.NewSource(7))
	c.Assert(err, gc.IsNil)
	c.Assert(first, gc.DeepEquals, second)
}

func (s *SampleTestSuite) TestUnvisitedPagesStillListed(c *gc.C) {
	corp := corpus.New(map[string][]string{
		"1.html": {"2.html"},
		"2.html": {"1.html"},
		"3.html": {"1.html"},
	})

	ranks, err := Sample(corp, 0.85, 1, rand.NewSource(1))
	c.Assert(err, gc.IsNil)

	// A single step visits exactly one page; the others report zero rank
	// rather than being absent from the table.
	c.Assert(ranks, gc.HasLen, corp.Len())
	assertSumsToOne(c, ranks, 1e-9)
}

func (s *SampleTestSuite) TestInvalidInputs(c *gc.C) {
	corp := twoPageCycle()

	for _, n := range []int{0, -10} {
		_, err := Sample(corp, 0.85, n, rand.NewSource(1))
		c.Assert(xerrors.Is(err, ErrInvalidSampleCount), gc.Equals, true, gc.Commentf("n=%d", n))
	}

	_, err := Sample(corpus.New(nil), 0.85, 100, rand.NewSource(1))
	c.Assert(xerrors.Is(err, corpus.ErrEmptyCorpus), gc.Equals, true)

	_, err = Sample(corp, -1, 100, rand.NewSource(1))
	c.Assert(xerrors.Is(err, ErrInvalidDampingFactor), gc.Equals, true)
}
