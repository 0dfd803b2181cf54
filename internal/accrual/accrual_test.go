package accrual

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/bankledger/internal/account"
	"github.com/GlebRadaev/bankledger/internal/config"
	"github.com/GlebRadaev/bankledger/internal/domain"
	accountrepo "github.com/GlebRadaev/bankledger/internal/repo/account-repo"
	"github.com/GlebRadaev/bankledger/internal/service/bankservice"
)

type failingPool struct{}

func (failingPool) AddTask(ctx context.Context, task Task) error {
	return context.DeadlineExceeded
}

func (failingPool) Close() {}

func seed(t *testing.T, repo *accountrepo.Repository) (savings, empty, current *account.Account) {
	t.Helper()
	ctx := context.Background()

	savings = account.New(account.Params{Number: "ACC10017", Kind: domain.KindSavings, InterestRate: decimal.RequireFromString("3.5")})
	empty = account.New(account.Params{Number: "ACC10025", Kind: domain.KindSavings, InterestRate: decimal.RequireFromString("3.5")})
	current = account.New(account.Params{Number: "ACC10033", Kind: domain.KindCurrent, OverdraftLimit: decimal.NewFromInt(1000)})

	_, err := savings.Deposit(decimal.NewFromInt(200))
	require.NoError(t, err)
	_, err = current.Deposit(decimal.NewFromInt(200))
	require.NoError(t, err)

	for _, acc := range []*account.Account{savings, empty, current} {
		_, err := repo.Create(ctx, acc)
		require.NoError(t, err)
	}
	return savings, empty, current
}

func TestService_Accrue(t *testing.T) {
	repo := accountrepo.New()
	savings, empty, current := seed(t, repo)
	service := New(&config.Config{AccrualWorkers: 2, AccrualInterval: time.Hour}, repo)
	defer service.workerPool.Close()

	credited, err := service.Accrue(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, credited)
	assert.True(t, savings.Balance().Equal(decimal.NewFromInt(207)))
	assert.Len(t, savings.FullHistory(), 2)
	assert.Equal(t, domain.TransactionInterest, savings.FullHistory()[0].Type)
	assert.Empty(t, empty.FullHistory())
	assert.True(t, current.Balance().Equal(decimal.NewFromInt(200)))
	assert.Len(t, current.FullHistory(), 1)
}

func TestService_AccrueListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := bankservice.NewMockRepo(ctrl)
	repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("boom"))

	service := New(&config.Config{AccrualWorkers: 1}, repo)
	defer service.workerPool.Close()

	credited, err := service.Accrue(context.Background())
	require.Error(t, err)
	assert.Equal(t, "failed to list accounts: boom", err.Error())
	assert.Zero(t, credited)
}

func TestService_AccrueAddTaskError(t *testing.T) {
	repo := accountrepo.New()
	savings, _, _ := seed(t, repo)
	service := &Service{repo: repo, workerPool: failingPool{}, updateInterval: time.Hour}

	credited, err := service.Accrue(context.Background())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Zero(t, credited)
	assert.True(t, savings.Balance().Equal(decimal.NewFromInt(200)))
}

type closeTrackingPool struct {
	WorkerPoolI
	closed atomic.Bool
}

func (p *closeTrackingPool) Close() {
	p.closed.Store(true)
	p.WorkerPoolI.Close()
}

func TestService_Start(t *testing.T) {
	repo := accountrepo.New()
	savings, _, _ := seed(t, repo)
	pool := &closeTrackingPool{WorkerPoolI: NewWorkerPool(1)}
	service := &Service{repo: repo, workerPool: pool, updateInterval: 10 * time.Millisecond}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		service.Start(ctx)
	}()

	assert.Eventually(t, func() bool {
		return savings.Balance().GreaterThan(decimal.NewFromInt(200))
	}, time.Second, 5*time.Millisecond)

	select {
	case <-stopped:
		t.Fatal("Start returned before the context was canceled")
	default:
	}

	cancel()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Start did not return after cancel")
	}
	assert.True(t, pool.closed.Load())
}
