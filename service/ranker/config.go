package ranker

import (
	"io"
	"time"

	"github.com/Ahmed-Sermani/go-ranker/corpus"
	rank "github.com/Ahmed-Sermani/go-ranker/ranker"
	"github.com/hashicorp/go-multierror"
	"github.com/juju/clock"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

// CorpusSource is implemented by objects that can provide a snapshot of the
// hyperlink corpus to rank.
type CorpusSource interface {
	Corpus() (*corpus.Corpus, error)
}

// ScoreSink is implemented by objects that consume the two rank tables
// produced by an update pass.
type ScoreSink interface {
	Consume(sampled, iterated rank.Distribution) error
}

// Config encapsulates the settings for the PageRank service.
type Config struct {
	// Source provides the corpus to rank at the beginning of each pass.
	Source CorpusSource

	// Sink receives the rank tables produced by each pass.
	Sink ScoreSink

	// DampingFactor is the probability that the random surfer follows one
	// of the outgoing links on the page they are currently visiting
	// instead of teleporting to a random corpus page.
	//
	// If not specified, a default value of 0.85 will be used instead.
	DampingFactor float64

	// SampleCount is the length of the random walk performed by the
	// sampling estimator on each pass.
	//
	// If not specified, a default value of 10000 will be used instead.
	SampleCount int

	// IterationCap bounds the number of passes the iterative solver may
	// perform before reporting a non-convergence error. A value of zero
	// leaves the solver uncapped.
	IterationCap int

	// UpdateInterval specifies the time between subsequent rank update
	// passes.
	UpdateInterval time.Duration

	// Clock drives the update timer. If not specified, the wall clock
	// will be used instead.
	Clock clock.Clock

	// Logger is the logger to use. If not specified, a null logger will
	// be used instead.
	Logger *logrus.Entry
}

func (cfg *Config) validate() error {
	var err error
	if cfg.Source == nil {
		err = multierror.Append(err, xerrors.Errorf("corpus source has not been provided"))
	}
	if cfg.Sink == nil {
		err = multierror.Append(err, xerrors.Errorf("score sink has not been provided"))
	}
	if cfg.DampingFactor < 0 || cfg.DampingFactor >= 1.0 {
		err = multierror.Append(err, xerrors.Errorf("damping factor must be in the (0, 1) range"))
	} else if cfg.DampingFactor == 0 {
		cfg.DampingFactor = rank.DefaultDampingFactor
	}
	if cfg.SampleCount < 0 {
		err = multierror.Append(err, xerrors.Errorf("sample count must be positive"))
	} else if cfg.SampleCount == 0 {
		cfg.SampleCount = rank.DefaultSampleCount
	}
	if cfg.UpdateInterval <= 0 {
		err = multierror.Append(err, xerrors.Errorf("invalid value for update interval"))
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.WallClock
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.NewEntry(&logrus.Logger{Out: io.Discard})
	}
	return err
}
