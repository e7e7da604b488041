/*
   Periodically recomputes PageRank scores for a hyperlink corpus using
   both the sampling estimator and the iterative solver, and publishes the
   two tables side by side for comparison.
*/
package ranker

import (
	"context"

	rank "github.com/Ahmed-Sermani/go-ranker/ranker"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/xerrors"
)

// Service periodically reloads the corpus and refreshes its rank tables.
type Service struct {
	cfg Config
}

// NewService creates a new PageRank service instance with the provided
// config.
func NewService(cfg Config) (*Service, error) {
	if err := cfg.validate(); err != nil {
		return nil, xerrors.Errorf("pagerank service: config validation failed: %w", err)
	}
	return &Service{cfg: cfg}, nil
}

// Name implements service.Service.
func (svc *Service) Name() string { return "pagerank" }

// Run implements service.Service. It blocks, performing a rank update pass
// every UpdateInterval, until the context gets cancelled or a pass fails.
func (svc *Service) Run(ctx context.Context) error {
	svc.cfg.Logger.WithField("update_interval", svc.cfg.UpdateInterval.String()).Info("starting service")
	defer svc.cfg.Logger.Info("stopped service")

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-svc.cfg.Clock.After(svc.cfg.UpdateInterval):
			if err := svc.Update(ctx); err != nil {
				return err
			}
		}
	}
}

// Update performs a single rank update pass: it obtains a fresh corpus
// snapshot from the configured source, runs the sampling estimator and the
// iterative solver concurrently over it and hands both tables to the sink.
// The two solvers share nothing but the read-only corpus.
func (svc *Service) Update(ctx context.Context) error {
	logger := svc.cfg.Logger.WithField("run_id", uuid.New().String())
	startAt := svc.cfg.Clock.Now()

	corp, err := svc.cfg.Source.Corpus()
	if err != nil {
		return xerrors.Errorf("pagerank update: %w", err)
	}

	var sampled, iterated rank.Distribution
	group, _ := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		sampled, err = rank.Sample(corp, svc.cfg.DampingFactor, svc.cfg.SampleCount, nil)
		return err
	})
	group.Go(func() error {
		var err error
		iterated, err = rank.IterateMax(corp, svc.cfg.DampingFactor, svc.cfg.IterationCap)
		return err
	})
	if err := group.Wait(); err != nil {
		return xerrors.Errorf("pagerank update: %w", err)
	}

	if err := svc.cfg.Sink.Consume(sampled, iterated); err != nil {
		return xerrors.Errorf("pagerank update: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"page_count": corp.Len(),
		"duration":   svc.cfg.Clock.Now().Sub(startAt).String(),
	}).Info("updated pagerank scores")
	return nil
}
