package corpus

import (
	"sort"

	"golang.org/x/xerrors"
)

var (
	// ErrEmptyCorpus is returned when an operation requires a corpus with
	// at least one page.
	ErrEmptyCorpus = xerrors.Errorf("corpus contains no pages")

	// ErrUnknownPage is returned when looking up a page that is not a
	// member of the corpus.
	ErrUnknownPage = xerrors.Errorf("page is not part of the corpus")
)

type pageSet map[string]struct{}

// Corpus is an immutable mapping from each page in a closed hyperlink
// collection to the set of corpus pages it links to. Pages are identified by
// opaque unique strings (typically filenames).
//
// A Corpus never contains self-links or links that point outside its own
// page set; both are silently dropped at construction time. Once built, a
// Corpus is read-only and safe for concurrent use.
type Corpus struct {
	pages map[string]pageSet

	// sortedPages caches the page IDs in lexicographic order so that
	// callers iterating the corpus observe a stable ordering.
	sortedPages []string
}

// New creates a Corpus from a page to out-link list mapping. Every key
// becomes a corpus page. Self-links and links whose target is not itself a
// key are excluded.
func New(links map[string][]string) *Corpus {
	pages := make(map[string]pageSet, len(links))
	for page := range links {
		pages[page] = make(pageSet)
	}

	for page, outLinks := range links {
		for _, target := range outLinks {
			if target == page {
				continue
			}
			if _, exists := pages[target]; !exists {
				continue
			}
			pages[page][target] = struct{}{}
		}
	}

	sortedPages := make([]string, 0, len(pages))
	for page := range pages {
		sortedPages = append(sortedPages, page)
	}
	sort.Strings(sortedPages)

	return &Corpus{pages: pages, sortedPages: sortedPages}
}

// Len returns the number of pages in the corpus.
func (c *Corpus) Len() int { return len(c.pages) }

// Has reports whether page is a member of the corpus.
func (c *Corpus) Has(page string) bool {
	_, exists := c.pages[page]
	return exists
}

// Pages returns the corpus page IDs in lexicographic order. The returned
// slice is a copy and may be mutated freely by the caller.
func (c *Corpus) Pages() []string {
	pages := make([]string, len(c.sortedPages))
	copy(pages, c.sortedPages)
	return pages
}

// Links returns the pages that page links to, in lexicographic order. It
// returns ErrUnknownPage if page is not a corpus member.
func (c *Corpus) Links(page string) ([]string, error) {
	outLinks, exists := c.pages[page]
	if !exists {
		return nil, xerrors.Errorf("links for %q: %w", page, ErrUnknownPage)
	}

	links := make([]string, 0, len(outLinks))
	for target := range outLinks {
		links = append(links, target)
	}
	sort.Strings(links)
	return links, nil
}

// OutDegree returns the number of pages that page links to; it is zero for
// dangling pages and for pages not present in the corpus.
func (c *Corpus) OutDegree(page string) int {
	return len(c.pages[page])
}

// HasLink reports whether the corpus contains a link from src to dst.
func (c *Corpus) HasLink(src, dst string) bool {
	_, exists := c.pages[src][dst]
	return exists
}
