package bankservice

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/bankledger/internal/account"
	"github.com/GlebRadaev/bankledger/internal/domain"
	"github.com/GlebRadaev/bankledger/pkg/auth"
	"github.com/GlebRadaev/bankledger/pkg/validate"
)

//go:generate mockgen -source=bankservice.go -destination=mock_repo.go -package=bankservice

type Repo interface {
	FindByNumber(ctx context.Context, number string) (*account.Account, error)
	Create(ctx context.Context, acc *account.Account) (*account.Account, error)
	List(ctx context.Context) ([]*account.Account, error)
}

// Terms are the parameters every new account is opened with.
type Terms struct {
	Prefix         string
	SeqStart       int64
	InterestRate   decimal.Decimal
	OverdraftLimit decimal.Decimal
}

type Service struct {
	repo        Repo
	hashService auth.HashServiceInterface
	terms       Terms
	clock       account.Clock

	mu  sync.Mutex
	seq int64
}

func New(repo Repo, hashService auth.HashServiceInterface, terms Terms, clock account.Clock) *Service {
	return &Service{
		repo:        repo,
		hashService: hashService,
		terms:       terms,
		clock:       clock,
		seq:         terms.SeqStart,
	}
}

// CreateAccount opens an account and returns its number. Kinds other than
// savings open a current account. Errors come only from the hasher or the
// store and are not meant to be retried.
func (s *Service) CreateAccount(ctx context.Context, name, secret string, kind domain.AccountKind) (string, error) {
	hash, err := s.hashService.HashPassword(secret)
	if err != nil {
		zap.L().Error("can't hash credential: ", zap.Error(err))
		return "", fmt.Errorf("can't hash credential: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	number, err := s.nextNumber()
	if err != nil {
		zap.L().Error("can't mint account number: ", zap.Error(err))
		return "", fmt.Errorf("can't mint account number: %w", err)
	}

	acc := account.New(account.Params{
		Number:         number,
		Holder:         name,
		CredentialHash: hash,
		Kind:           kind,
		InterestRate:   s.terms.InterestRate,
		OverdraftLimit: s.terms.OverdraftLimit,
		Verifier:       s.hashService,
		Clock:          s.clock,
	})
	if _, err := s.repo.Create(ctx, acc); err != nil {
		zap.L().Error("can't create account: ", zap.Error(err))
		return "", fmt.Errorf("can't create account: %w", err)
	}

	zap.L().Info("account successfully created",
		zap.String("number", number),
		zap.String("kind", string(acc.Kind())),
	)
	return number, nil
}

func (s *Service) Login(ctx context.Context, number, secret string) (*account.Account, error) {
	if !s.wellFormed(number) {
		zap.L().Info("login rejected, malformed account number", zap.String("number", number))
		return nil, domain.ErrAccountNotFound
	}

	acc, err := s.repo.FindByNumber(ctx, number)
	if err != nil {
		zap.L().Error("can't find account: ", zap.Error(err))
		return nil, fmt.Errorf("can't find account: %w", err)
	}
	if acc == nil {
		zap.L().Info("login rejected, unknown account", zap.String("number", number))
		return nil, domain.ErrAccountNotFound
	}
	if !acc.VerifyCredential(secret) {
		zap.L().Info("login rejected, invalid credentials", zap.String("number", number))
		return nil, domain.ErrInvalidCredential
	}

	zap.L().Info("account successfully authenticated", zap.String("number", number))
	return acc, nil
}

// ListAccounts returns a snapshot of every account ordered by number.
func (s *Service) ListAccounts(ctx context.Context) ([]domain.AccountSummary, error) {
	accounts, err := s.repo.List(ctx)
	if err != nil {
		zap.L().Error("can't list accounts: ", zap.Error(err))
		return nil, fmt.Errorf("can't list accounts: %w", err)
	}

	summaries := make([]domain.AccountSummary, 0, len(accounts))
	for _, acc := range accounts {
		summaries = append(summaries, acc.Summary())
	}
	return summaries, nil
}

// nextNumber must be called with mu held.
func (s *Service) nextNumber() (string, error) {
	s.seq++
	digits, err := validate.WithLunaDigit(strconv.FormatInt(s.seq, 10))
	if err != nil {
		return "", err
	}
	return s.terms.Prefix + digits, nil
}

func (s *Service) wellFormed(number string) bool {
	digits, ok := strings.CutPrefix(number, s.terms.Prefix)
	return ok && digits != "" && validate.IsLuna(digits)
}
