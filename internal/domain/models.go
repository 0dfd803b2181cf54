package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionDeposit  TransactionType = "DEPOSIT"
	TransactionWithdraw TransactionType = "WITHDRAW"
	TransactionInterest TransactionType = "INTEREST"
)

// Transaction is one balance-affecting event. It is handed out by value,
// so a copy held by a caller never changes the owning account's log.
type Transaction struct {
	ID           uuid.UUID
	Type         TransactionType
	Amount       decimal.Decimal
	BalanceAfter decimal.Decimal
	Timestamp    time.Time
}

func NewTransaction(typ TransactionType, amount, balanceAfter decimal.Decimal, at time.Time) Transaction {
	return Transaction{
		ID:           uuid.New(),
		Type:         typ,
		Amount:       amount,
		BalanceAfter: balanceAfter,
		Timestamp:    at,
	}
}

type AccountKind string

const (
	KindSavings AccountKind = "SAVINGS"
	KindCurrent AccountKind = "CURRENT"
)

// ParseAccountKind accepts the menu tokens used by the console as well as
// the kind names. Anything else is rejected rather than defaulted.
func ParseAccountKind(s string) (AccountKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "savings":
		return KindSavings, nil
	case "2", "current":
		return KindCurrent, nil
	default:
		return "", ErrUnknownAccountKind
	}
}

func (k AccountKind) DisplayName() string {
	return string(k) + " ACCOUNT"
}

type AccountSummary struct {
	Number  string
	Holder  string
	Kind    AccountKind
	Balance decimal.Decimal
}
