package ranker

import (
	"github.com/Ahmed-Sermani/go-ranker/corpus"
	"golang.org/x/xerrors"
)

// Transition returns the probability distribution over which corpus page a
// random surfer visits next, given that it currently sits on page. With
// probability damping the surfer follows one of page's out-links chosen
// uniformly; with probability 1-damping it teleports to any corpus page
// chosen uniformly. A dangling page (one with no out-links) is treated as
// if it linked to every page in the corpus, so its distribution is uniform;
// this keeps rank from being trapped on dead ends.
//
// The returned distribution has an entry for every corpus page and its
// values sum to 1. The corpus is not mutated.
func Transition(c *corpus.Corpus, page string, damping float64) (Distribution, error) {
	if err := validate(c, damping); err != nil {
		return nil, xerrors.Errorf("transition model: %w", err)
	}
	if !c.Has(page) {
		return nil, xerrors.Errorf("transition model: %q: %w", page, corpus.ErrUnknownPage)
	}

	numPages := float64(c.Len())
	dist := make(Distribution, c.Len())

	if c.OutDegree(page) == 0 {
		for _, p := range c.Pages() {
			dist[p] = 1 / numPages
		}
		return dist, nil
	}

	links, err := c.Links(page)
	if err != nil {
		return nil, xerrors.Errorf("transition model: %w", err)
	}
	linkShare := damping / float64(len(links))
	for _, target := range links {
		dist[target] = linkShare
	}

	// Every page, linked or not, receives the teleport share; for linked
	// pages the two contributions accumulate.
	teleportShare := (1 - damping) / numPages
	for _, p := range c.Pages() {
		dist[p] += teleportShare
	}

	return dist, nil
}
