package account

import (
	"slices"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/bankledger/internal/domain"
)

const miniStatementSize = 5

var hundred = decimal.NewFromInt(100)

// Clock is the time source used to stamp transactions.
type Clock func() time.Time

type CredentialVerifier interface {
	ComparePassword(hashedPassword, password string) bool
}

type Params struct {
	Number         string
	Holder         string
	CredentialHash string
	Kind           domain.AccountKind
	InterestRate   decimal.Decimal
	OverdraftLimit decimal.Decimal
	Verifier       CredentialVerifier
	Clock          Clock
}

type Account struct {
	mu sync.Mutex

	number         string
	holder         string
	credentialHash string
	kind           domain.AccountKind
	interestRate   decimal.Decimal
	overdraftLimit decimal.Decimal

	balance      decimal.Decimal
	transactions []domain.Transaction

	verifier CredentialVerifier
	clock    Clock
}

// New opens an account with a zero balance. Any kind other than savings
// becomes a current account.
func New(p Params) *Account {
	kind := p.Kind
	if kind != domain.KindSavings {
		kind = domain.KindCurrent
	}
	clock := p.Clock
	if clock == nil {
		clock = time.Now
	}

	acc := &Account{
		number:         p.Number,
		holder:         p.Holder,
		credentialHash: p.CredentialHash,
		kind:           kind,
		verifier:       p.Verifier,
		clock:          clock,
		balance:        decimal.Zero,
	}
	switch kind {
	case domain.KindSavings:
		acc.interestRate = p.InterestRate
	case domain.KindCurrent:
		acc.overdraftLimit = p.OverdraftLimit
	}
	return acc
}

func (a *Account) Number() string {
	return a.number
}

func (a *Account) Holder() string {
	return a.holder
}

func (a *Account) Kind() domain.AccountKind {
	return a.kind
}

func (a *Account) InterestRate() decimal.Decimal {
	return a.interestRate
}

func (a *Account) OverdraftLimit() decimal.Decimal {
	return a.overdraftLimit
}

func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

func (a *Account) Summary() domain.AccountSummary {
	return domain.AccountSummary{
		Number:  a.number,
		Holder:  a.holder,
		Kind:    a.kind,
		Balance: a.Balance(),
	}
}

func (a *Account) VerifyCredential(secret string) bool {
	if a.verifier == nil {
		return false
	}
	return a.verifier.ComparePassword(a.credentialHash, secret)
}

func (a *Account) Deposit(amount decimal.Decimal) (domain.Transaction, error) {
	if !amount.IsPositive() {
		return domain.Transaction{}, domain.ErrInvalidAmount
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.balance = a.balance.Add(amount)
	return a.record(domain.TransactionDeposit, amount), nil
}

func (a *Account) Withdraw(amount decimal.Decimal) (domain.Transaction, error) {
	if !amount.IsPositive() {
		return domain.Transaction{}, domain.ErrInvalidAmount
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	switch a.kind {
	case domain.KindCurrent:
		if amount.GreaterThan(a.balance.Add(a.overdraftLimit)) {
			return domain.Transaction{}, domain.ErrOverdraftExceeded
		}
	default:
		if amount.GreaterThan(a.balance) {
			return domain.Transaction{}, domain.ErrInsufficientFunds
		}
	}

	a.balance = a.balance.Sub(amount)
	return a.record(domain.TransactionWithdraw, amount), nil
}

// MiniStatement returns up to the five latest transactions, newest first.
func (a *Account) MiniStatement() []domain.Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()

	start := max(0, len(a.transactions)-miniStatementSize)
	return newestFirst(a.transactions[start:])
}

// FullHistory returns every transaction, newest first.
func (a *Account) FullHistory() []domain.Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()

	return newestFirst(a.transactions)
}

// AsSavings exposes the interest operations when the account is a savings account.
func (a *Account) AsSavings() (*Savings, bool) {
	if a.kind != domain.KindSavings {
		return nil, false
	}
	return &Savings{acc: a}, true
}

// record must be called with mu held and after balance is updated.
func (a *Account) record(typ domain.TransactionType, amount decimal.Decimal) domain.Transaction {
	tx := domain.NewTransaction(typ, amount, a.balance, a.clock())
	a.transactions = append(a.transactions, tx)
	return tx
}

func newestFirst(txs []domain.Transaction) []domain.Transaction {
	out := slices.Clone(txs)
	slices.Reverse(out)
	if out == nil {
		out = []domain.Transaction{}
	}
	return out
}
