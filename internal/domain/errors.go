package domain

import "errors"

var (
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrOverdraftExceeded  = errors.New("overdraft limit exceeded")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredential  = errors.New("invalid credentials")
	ErrUnknownAccountKind = errors.New("unknown account kind")
	ErrAccountExists      = errors.New("account already exists")
)
