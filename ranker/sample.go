package ranker

import (
	"math/rand"
	"time"

	"github.com/Ahmed-Sermani/go-ranker/corpus"
	"golang.org/x/xerrors"
)

// Sample estimates PageRank scores by simulating a random surfer for n
// steps. The walk starts on a page chosen uniformly at random; each step
// draws the next page from the Transition distribution of the current one
// and records a visit for the page that was landed on. The estimate for a
// page is its visit count divided by n, so the returned table always sums
// to 1 regardless of n.
//
// src seeds the walk; passing nil uses a fresh time-seeded source, in which
// case repeated runs will differ. Estimates converge toward the iterative
// solution as n grows but remain noisy for finite n.
func Sample(c *corpus.Corpus, damping float64, n int, src rand.Source) (Distribution, error) {
	if err := validate(c, damping); err != nil {
		return nil, xerrors.Errorf("sample pagerank: %w", err)
	}
	if n <= 0 {
		return nil, xerrors.Errorf("sample pagerank: %d samples: %w", n, ErrInvalidSampleCount)
	}
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	rng := rand.New(src)

	pages := c.Pages()
	visits := make(map[string]int, len(pages))
	current := pages[rng.Intn(len(pages))]

	for i := 0; i < n; i++ {
		dist, err := Transition(c, current, damping)
		if err != nil {
			return nil, err
		}
		current = draw(pages, dist, rng)
		visits[current]++
	}

	ranks := make(Distribution, len(pages))
	for _, page := range pages {
		ranks[page] = float64(visits[page]) / float64(n)
	}
	return ranks, nil
}

// draw performs a weighted random choice over dist. Walking the sorted page
// list keeps draws reproducible for a fixed source.
func draw(pages []string, dist Distribution, rng *rand.Rand) string {
	target := rng.Float64()
	var cumulative float64
	for _, page := range pages {
		cumulative += dist[page]
		if target < cumulative {
			return page
		}
	}
	// Rounding can leave the cumulative sum marginally below 1.
	return pages[len(pages)-1]
}
