package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/Ahmed-Sermani/go-ranker/corpus"
	"github.com/Ahmed-Sermani/go-ranker/corpus/extractor"
	"github.com/Ahmed-Sermani/go-ranker/ranker"
	"github.com/Ahmed-Sermani/go-ranker/service"
	rankersvc "github.com/Ahmed-Sermani/go-ranker/service/ranker"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

var (
	appName = "go-ranker"
	appSha  = ""
)

func main() {
	rootLogger := logrus.New()
	rootLogger.SetFormatter(new(logrus.JSONFormatter))
	logger := rootLogger.WithFields(logrus.Fields{
		"app": appName,
		"sha": appSha,
	})

	if err := run(logger); err != nil {
		logger.WithField("err", err).Error("shutting down due to error")
		os.Exit(1)
	}
}

func run(logger *logrus.Entry) error {
	var cfg rankersvc.Config

	corpusDir := flag.String("corpus-dir", "", "The directory containing the HTML pages that make up the corpus")
	flag.Float64Var(&cfg.DampingFactor, "damping-factor", ranker.DefaultDampingFactor, "The probability that the random surfer follows an out-link instead of teleporting")
	flag.IntVar(&cfg.SampleCount, "samples", ranker.DefaultSampleCount, "The length of the random walk performed by the sampling estimator")
	flag.IntVar(&cfg.IterationCap, "iteration-cap", 0, "The maximum number of passes for the iterative solver (0 disables the cap)")
	updateInterval := flag.Duration("update-interval", 0, "The time between subsequent rank updates; if zero, ranks are computed once and the program exits")
	flag.Parse()

	if *corpusDir == "" {
		return xerrors.Errorf("corpus directory must be specified with -corpus-dir")
	}

	cfg.Source = dirSource{dir: *corpusDir}
	cfg.Sink = consoleSink{sampleCount: cfg.SampleCount}
	cfg.Logger = logger.WithField("service", "pagerank")
	cfg.UpdateInterval = *updateInterval
	if cfg.UpdateInterval <= 0 {
		// One-shot mode invokes Update directly; the interval is only
		// needed to satisfy config validation.
		cfg.UpdateInterval = time.Minute
	}

	svc, err := rankersvc.NewService(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGHUP)
	defer cancel()

	if *updateInterval <= 0 {
		return svc.Update(ctx)
	}
	return service.Group{svc}.Run(ctx)
}

// dirSource re-extracts the corpus from a directory of HTML pages at the
// beginning of every ranking pass.
type dirSource struct {
	dir string
}

func (s dirSource) Corpus() (*corpus.Corpus, error) {
	return extractor.FromDir(s.dir)
}

// consoleSink prints both rank tables sorted by page identifier.
type consoleSink struct {
	sampleCount int
}

func (s consoleSink) Consume(sampled, iterated ranker.Distribution) error {
	printTable(fmt.Sprintf("PageRank Results from Sampling (n = %d)", s.sampleCount), sampled)
	printTable("PageRank Results from Iteration", iterated)
	return nil
}

func printTable(header string, ranks ranker.Distribution) {
	pages := make([]string, 0, len(ranks))
	for page := range ranks {
		pages = append(pages, page)
	}
	sort.Strings(pages)

	fmt.Println(header)
	for _, page := range pages {
		fmt.Printf("  %s: %.4f\n", page, ranks[page])
	}
}
