package account

import (
	"github.com/GlebRadaev/bankledger/internal/domain"
)

// Savings is the interest bearing view of a savings account.
type Savings struct {
	acc *Account
}

func (s *Savings) Account() *Account {
	return s.acc
}

// ApplyInterest credits balance * rate / 100. A zero balance still
// produces an INTEREST record with a zero amount.
func (s *Savings) ApplyInterest() domain.Transaction {
	a := s.acc
	a.mu.Lock()
	defer a.mu.Unlock()

	interest := a.balance.Mul(a.interestRate).Div(hundred)
	a.balance = a.balance.Add(interest)
	return a.record(domain.TransactionInterest, interest)
}

