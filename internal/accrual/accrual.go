package accrual

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/bankledger/internal/config"
	"github.com/GlebRadaev/bankledger/internal/service/bankservice"
)

// Service periodically credits interest to every savings account with a
// positive balance.
type Service struct {
	repo           bankservice.Repo
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(cfg *config.Config, repo bankservice.Repo) *Service {
	return &Service{
		repo:           repo,
		workerPool:     NewWorkerPool(cfg.AccrualWorkers),
		updateInterval: cfg.AccrualInterval,
	}
}

// Start accrues on every tick and blocks until ctx is done. The worker pool
// is closed before it returns.
func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Accrual service started", zap.Duration("interval", s.updateInterval))
	defer s.workerPool.Close()

	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping accrual service")
			return
		case <-ticker.C:
			if _, err := s.Accrue(ctx); err != nil {
				zap.L().Error("Error accruing interest", zap.Error(err))
			}
		}
	}
}

// Accrue applies interest once to each eligible account and reports how
// many accounts were credited.
func (s *Service) Accrue(ctx context.Context) (int, error) {
	accounts, err := s.repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list accounts: %w", err)
	}

	var (
		g        errgroup.Group
		done     sync.WaitGroup
		credited atomic.Int64
	)
	for _, acc := range accounts {
		savings, ok := acc.AsSavings()
		if !ok || !acc.Balance().IsPositive() {
			continue
		}

		done.Add(1)
		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer done.Done()
				tx := savings.ApplyInterest()
				credited.Add(1)
				zap.L().Debug("Interest credited",
					zap.String("number", acc.Number()),
					zap.Stringer("interest", tx.Amount),
					zap.Stringer("balance", tx.BalanceAfter),
				)
				return nil
			})
			if err != nil {
				done.Done()
				return err
			}
			return nil
		})
	}

	err = g.Wait()
	done.Wait()

	n := int(credited.Load())
	zap.L().Info("Interest accrual completed", zap.Int("credited", n))
	return n, err
}
