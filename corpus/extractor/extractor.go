/*
   Extracts hyperlinks from a directory of HTML pages and assembles them
   into a corpus suitable for ranking. Pages are identified by their
   filenames; only links that resolve to another file in the same
   directory become corpus links.
*/
package extractor

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Ahmed-Sermani/go-ranker/corpus"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/net/html"
	"golang.org/x/xerrors"
)

// FromDir scans dir for files with an .html extension, extracts the anchor
// targets from each one and builds a Corpus keyed by filename. Self-links
// and links that do not name another corpus file are dropped by the corpus
// constructor.
//
// Extraction failures for individual files are accumulated and reported
// together; no corpus is returned if any file could not be processed.
func FromDir(dir string) (*corpus.Corpus, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, xerrors.Errorf("extract corpus: %w", err)
	}

	var extractErr error
	pages := make(map[string][]string)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}

		links, err := extractFileLinks(filepath.Join(dir, entry.Name()))
		if err != nil {
			extractErr = multierror.Append(extractErr, xerrors.Errorf("extract corpus: %q: %w", entry.Name(), err))
			continue
		}
		pages[entry.Name()] = links
	}
	if extractErr != nil {
		return nil, extractErr
	}

	return corpus.New(pages), nil
}

func extractFileLinks(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return anchorTargets(f)
}

// anchorTargets returns the href values of all anchor tags in the provided
// HTML document. Malformed markup is tolerated to the extent the tokenizer
// can recover from it.
func anchorTargets(r io.Reader) ([]string, error) {
	var links []string
	tokenizer := html.NewTokenizer(r)
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			if err := tokenizer.Err(); err != io.EOF {
				return nil, err
			}
			return links, nil
		case html.StartTagToken, html.SelfClosingTagToken:
			token := tokenizer.Token()
			if token.Data != "a" {
				continue
			}
			for _, attr := range token.Attr {
				if attr.Key == "href" && attr.Val != "" {
					links = append(links, attr.Val)
				}
			}
		}
	}
}
