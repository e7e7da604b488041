/*
   Implements Google's famous and first
   PageRank algorithm https://en.wikipedia.org/wiki/PageRank
*/
package ranker

import (
	"github.com/Ahmed-Sermani/go-ranker/corpus"
	"golang.org/x/xerrors"
)

/*
   PageRank works by counting the number and quality of links to a page to
   determine a rough estimate of how important the page is. The underlying
   assumption is that more important pages are likely to receive more links
   from other pages.

   To calculate the score for each page in the corpus, the PageRank
   algorithm utilizes the model of the random surfer. Under this model, a
   surfer starts on a page chosen at random from the corpus. From that
   point on, surfers randomly select one of the following two options:

       They can follow any outgoing link from the current page and
       navigate to a new page. Surfers choose this option with a
       predefined probability that we will be referring to with the term
       damping factor.

       Alternatively, they can teleport to a page chosen uniformly at
       random from the entire corpus.

   PageRank score values reflect the probability that a surfer lands on a
   particular page. By this definition, we expect the following to occur:
       Each PageRank score should be a value in the [0, 1] range.
       The sum of all assigned PageRank scores should be exactly equal to 1.

   This package estimates the scores two independent ways: a stochastic
   random-surfer simulation (Sample) and a deterministic fixed-point
   iteration (Iterate). Both operate on the same transition-probability
   model (Transition) and can be run side by side for comparison.
*/

const (
	// DefaultDampingFactor is the conventional probability with which the
	// random surfer follows an out-link instead of teleporting.
	DefaultDampingFactor = 0.85

	// DefaultSampleCount is the default chain length for Sample.
	DefaultSampleCount = 10000
)

var (
	// ErrInvalidDampingFactor is returned when the damping factor falls
	// outside the exclusive (0, 1) range.
	ErrInvalidDampingFactor = xerrors.Errorf("damping factor must be in the (0, 1) range")

	// ErrInvalidSampleCount is returned when a non-positive sample count
	// is requested.
	ErrInvalidSampleCount = xerrors.Errorf("sample count must be positive")

	// ErrNotConverged is returned when the iterative solver exceeds its
	// iteration cap before the ranks stabilize.
	ErrNotConverged = xerrors.Errorf("rank iteration did not converge within the allotted passes")
)

// Distribution maps each corpus page to a non-negative probability. The
// values of a valid Distribution sum to 1 within floating-point tolerance.
// Rank tables produced by the solvers share the same shape and invariant.
type Distribution map[string]float64

// validate checks the inputs shared by all solver entry points. Validation
// happens eagerly so that no computation starts on invalid input.
func validate(c *corpus.Corpus, damping float64) error {
	if c == nil || c.Len() == 0 {
		return corpus.ErrEmptyCorpus
	}
	if damping <= 0 || damping >= 1 {
		return xerrors.Errorf("%v: %w", damping, ErrInvalidDampingFactor)
	}
	return nil
}
