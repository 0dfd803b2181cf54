package app

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/bankledger/internal/accrual"
	"github.com/GlebRadaev/bankledger/internal/config"
	"github.com/GlebRadaev/bankledger/internal/console"
	"github.com/GlebRadaev/bankledger/internal/repo"
	"github.com/GlebRadaev/bankledger/internal/service"
	"github.com/GlebRadaev/bankledger/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg   *config.Config
	repo  *repo.Repositories
	srv   *service.Services
	shell *console.Handler
	ext   *accrual.Service

	in  io.Reader
	out io.Writer

	done     chan struct{}
	shellErr error
	wg       sync.WaitGroup
	ready    bool
}

func New(in io.Reader, out io.Writer) *Application {
	return &Application{
		in:   in,
		out:  out,
		done: make(chan struct{}),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("can't load config: %w", err)
	}

	err = logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	a.cfg = cfg
	a.repo = repo.New()
	a.srv = service.New(cfg, a.repo, time.Now)
	a.shell = console.New(a.srv.BankService, a.in, a.out)

	if cfg.AccrualInterval > 0 {
		a.ext = accrual.New(cfg, a.repo.AccountRepo)
		a.startAccrualService(ctx)
	}

	a.startShell(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

// startShell is not tracked by wg: a read blocked on stdin can't be
// interrupted, so shutdown must not wait for it.
func (a *Application) startShell(ctx context.Context) {
	go func() {
		defer close(a.done)
		a.shellErr = a.shell.Run(ctx)
	}()
}

func (a *Application) startAccrualService(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.ext.Start(ctx)
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	select {
	case <-ctx.Done():
		zap.L().Info("shutdown signal received")
	case <-a.done:
		cancel()
		if a.shellErr != nil {
			zap.L().Error(a.shellErr.Error())
			appErr = a.shellErr
		}
	}

	a.wg.Wait()
	return appErr
}
