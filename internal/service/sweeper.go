package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/SergeyBogomolovv/chef-market/internal/entities"

	"golang.org/x/sync/errgroup"
)

type ExpiredOrderLister interface {
	ListExpired(ctx context.Context, cutoff time.Time, after entities.Cursor, limit int) ([]entities.Order, error)
}

type Transitioner interface {
	Transition(ctx context.Context, p entities.Principal, orderID string, to entities.Status) (entities.Order, error)
}

// SweepResult counts one sweep run. Skipped orders had already moved on by
// the time the sweep reached them.
type SweepResult struct {
	Checked  int `json:"checked"`
	Rejected int `json:"rejected"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
}

type sweepService struct {
	logger      *slog.Logger
	repo        ExpiredOrderLister
	orders      Transitioner
	expireAfter time.Duration
	batchSize   int
	concurrency int
	now         func() time.Time
}

func NewSweepService(logger *slog.Logger, repo ExpiredOrderLister, orders Transitioner, expireAfter time.Duration, batchSize, concurrency int) *sweepService {
	return &sweepService{
		logger:      logger.With(slog.String("service", "sweeper")),
		repo:        repo,
		orders:      orders,
		expireAfter: expireAfter,
		batchSize:   max(batchSize, 1),
		concurrency: max(concurrency, 1),
		now:         time.Now,
	}
}

// Sweep rejects requested orders older than the expiry threshold through the
// regular reject path. Running it twice is harmless.
func (s *sweepService) Sweep(ctx context.Context) (SweepResult, error) {
	start := time.Now()
	defer func() { sweepDuration.Observe(time.Since(start).Seconds()) }()

	cutoff := s.now().Add(-s.expireAfter)
	var cursor entities.Cursor
	var checked int
	var rejected, skipped, failed atomic.Int64

	result := func() SweepResult {
		return SweepResult{
			Checked:  checked,
			Rejected: int(rejected.Load()),
			Skipped:  int(skipped.Load()),
			Failed:   int(failed.Load()),
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return result(), err
		}

		page, err := s.repo.ListExpired(ctx, cutoff, cursor, s.batchSize)
		if err != nil {
			return result(), fmt.Errorf("failed to list expired orders: %w", err)
		}

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.concurrency)
		for _, o := range page {
			g.Go(func() error {
				_, err := s.orders.Transition(gctx, entities.SystemPrincipal, o.ID, entities.StatusRejected)
				switch {
				case err == nil:
					rejected.Add(1)
					sweepRows.WithLabelValues("rejected").Inc()
				case errors.Is(err, entities.ErrConflict),
					errors.Is(err, entities.ErrInvalidTransition),
					errors.Is(err, entities.ErrAlreadyCaptured):
					skipped.Add(1)
					sweepRows.WithLabelValues("skipped").Inc()
				default:
					failed.Add(1)
					sweepRows.WithLabelValues("failed").Inc()
					s.logger.ErrorContext(gctx, "failed to expire order",
						slog.String("order_id", o.ID),
						slog.Any("error", err),
					)
				}
				return nil
			})
		}
		_ = g.Wait()

		checked += len(page)
		if len(page) < s.batchSize {
			break
		}
		last := page[len(page)-1]
		cursor = entities.Cursor{CreatedAt: last.CreatedAt, ID: last.ID}
	}

	res := result()
	s.logger.InfoContext(ctx, "expiry sweep finished",
		slog.Int("checked", res.Checked),
		slog.Int("rejected", res.Rejected),
		slog.Int("skipped", res.Skipped),
		slog.Int("failed", res.Failed),
		slog.Time("cutoff", cutoff),
	)
	return res, nil
}
