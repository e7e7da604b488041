package ranker

import (
	"math"

	"github.com/Ahmed-Sermani/go-ranker/corpus"
	"golang.org/x/xerrors"
	gc "gopkg.in/check.v1"
)

var _ = gc.Suite(new(TransitionTestSuite))

type TransitionTestSuite struct{}

func (s *TransitionTestSuite) TestDistributionInvariants(c *gc.C) {
	corp := corpus.New(map[string][]string{
		"1.html": {"2.html", "3.html"},
		"2.html": {"3.html"},
		"3.html": {"2.html"},
		"4.html": nil,
	})

	for _, page := range corp.Pages() {
		dist, err := Transition(corp, page, 0.85)
		c.Assert(err, gc.IsNil)
		c.Assert(dist, gc.HasLen, corp.Len())
		assertSumsToOne(c, dist, 1e-9)
	}
}

func (s *TransitionTestSuite) TestLinkAndTeleportShares(c *gc.C) {
	corp := corpus.New(map[string][]string{
		"1.html": {"2.html", "3.html"},
		"2.html": {"3.html"},
		"3.html": nil,
	})

	dist, err := Transition(corp, "1.html", 0.85)
	c.Assert(err, gc.IsNil)

	// Linked pages accumulate both the link share and the teleport share.
	teleport := 0.15 / 3
	c.Assert(math.Abs(dist["2.html"]-(0.425+teleport)) < 1e-9, gc.Equals, true)
	c.Assert(math.Abs(dist["3.html"]-(0.425+teleport)) < 1e-9, gc.Equals, true)
	c.Assert(math.Abs(dist["1.html"]-teleport) < 1e-9, gc.Equals, true)
}

func (s *TransitionTestSuite) TestDanglingPageUniform(c *gc.C) {
	corp := danglingPair()

	dist, err := Transition(corp, "a.html", 0.85)
	c.Assert(err, gc.IsNil)
	c.Assert(dist, gc.DeepEquals, Distribution{"a.html": 0.5, "b.html": 0.5})
}

func (s *TransitionTestSuite) TestInvalidInputs(c *gc.C) {
	corp := twoPageCycle()

	_, err := Transition(corpus.New(nil), "a.html", 0.85)
	c.Assert(xerrors.Is(err, corpus.ErrEmptyCorpus), gc.Equals, true)

	_, err = Transition(corp, "missing.html", 0.85)
	c.Assert(xerrors.Is(err, corpus.ErrUnknownPage), gc.Equals, true)

	for _, damping := range []float64{0, 1, -0.5, 1.5} {
		_, err = Transition(corp, "a.html", damping)
		c.Assert(xerrors.Is(err, ErrInvalidDampingFactor), gc.Equals, true, gc.Commentf("damping %v", damping))
	}
}
