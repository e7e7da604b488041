package ranker

import (
	"math"

	"github.com/Ahmed-Sermani/go-ranker/corpus"
	"golang.org/x/xerrors"
)

// convergenceThreshold is the maximum per-page rank delta below which the
// iterative solver considers the table stable.
const convergenceThreshold = 0.001

// Iterate computes PageRank scores by applying the fixed-point recurrence
// over the full corpus until no page's rank moves by the convergence
// threshold or more between passes. Every page starts at 1/N; each pass
// rebuilds the whole table from the previous one (synchronous update), with
// dangling pages spreading their rank uniformly across the corpus,
// consistent with the Transition model.
//
// The recurrence is a contraction for any damping factor in (0, 1), so
// Iterate terminates without an iteration cap. Use IterateMax to bound the
// number of passes defensively.
func Iterate(c *corpus.Corpus, damping float64) (Distribution, error) {
	return IterateMax(c, damping, 0)
}

// IterateMax behaves like Iterate but gives up with ErrNotConverged after
// maxIterations passes without convergence. A maxIterations value of zero
// or less disables the cap. No table is returned on failure.
func IterateMax(c *corpus.Corpus, damping float64, maxIterations int) (Distribution, error) {
	if err := validate(c, damping); err != nil {
		return nil, xerrors.Errorf("iterate pagerank: %w", err)
	}

	pages := c.Pages()
	numPages := float64(len(pages))

	ranks := make(Distribution, len(pages))
	for _, page := range pages {
		ranks[page] = 1 / numPages
	}

	for iteration := 0; ; iteration++ {
		if maxIterations > 0 && iteration == maxIterations {
			return nil, xerrors.Errorf("iterate pagerank: %d passes: %w", maxIterations, ErrNotConverged)
		}

		newRanks := applyRecurrence(c, pages, ranks, damping)

		converged := true
		for _, page := range pages {
			if math.Abs(newRanks[page]-ranks[page]) >= convergenceThreshold {
				converged = false
				break
			}
		}
		ranks = newRanks
		if converged {
			return ranks, nil
		}
	}
}

// applyRecurrence performs one synchronous pass of the PageRank recurrence:
// every new rank is derived solely from the previous table. Each page
// receives the uniform teleport share plus, for every corpus page q, the
// damped contribution rank(q)/outdegree(q) if q links to it, or rank(q)/N
// if q is dangling.
func applyRecurrence(c *corpus.Corpus, pages []string, ranks Distribution, damping float64) Distribution {
	numPages := float64(len(pages))
	teleportShare := (1 - damping) / numPages

	newRanks := make(Distribution, len(pages))
	for _, page := range pages {
		newRank := teleportShare
		for _, linking := range pages {
			switch degree := c.OutDegree(linking); {
			case degree == 0:
				newRank += damping * ranks[linking] / numPages
			case c.HasLink(linking, page):
				newRank += damping * ranks[linking] / float64(degree)
			}
		}
		newRanks[page] = newRank
	}
	return newRanks
}
