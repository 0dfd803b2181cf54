package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/bankledger/internal/account"
	"github.com/GlebRadaev/bankledger/internal/domain"
	"github.com/GlebRadaev/bankledger/internal/dto"
)

// maxAmountExponent bounds the decimal exponent of a typed amount so that
// arithmetic on it stays cheap.
const maxAmountExponent = 18

type Directory interface {
	CreateAccount(ctx context.Context, name, secret string, kind domain.AccountKind) (string, error)
	Login(ctx context.Context, number, secret string) (*account.Account, error)
	ListAccounts(ctx context.Context) ([]domain.AccountSummary, error)
}

// Handler drives an interactive session against a directory. The logged in
// account is passed between menus explicitly.
type Handler struct {
	bank Directory
	in   *bufio.Scanner
	out  io.Writer
}

func New(bank Directory, in io.Reader, out io.Writer) *Handler {
	return &Handler{
		bank: bank,
		in:   bufio.NewScanner(in),
		out:  out,
	}
}

// Run serves the main menu until the user exits, input ends or ctx is done.
// Only failures of the directory itself are returned.
func (h *Handler) Run(ctx context.Context) error {
	h.printf("BANKING MANAGEMENT SYSTEM\n")
	for ctx.Err() == nil {
		h.printf("\nMAIN MENU\n1. Create Account\n2. Login to Account\n3. Display All Accounts\n4. Exit\n")
		choice, err := h.readChoice("Choose option: ")
		if err != nil {
			return endOfInput(err)
		}

		switch choice {
		case 1:
			err = h.createAccount(ctx)
		case 2:
			err = h.login(ctx)
		case 3:
			err = h.listAccounts(ctx)
		case 4:
			h.printf("Thank you for using Banking Management System!\n")
			return nil
		default:
			h.printf("Invalid choice. Try again.\n")
		}
		if err != nil {
			return endOfInput(err)
		}
	}
	return nil
}

func (h *Handler) createAccount(ctx context.Context) error {
	h.printf("\n--- CREATE NEW ACCOUNT ---\n")
	name, err := h.readLine("Enter your name: ")
	if err != nil {
		return err
	}
	secret, err := h.readSecret("Create password: ")
	if err != nil {
		return err
	}

	var kind domain.AccountKind
	var token string
	for {
		token, err = h.readLine("Account type (1-Savings / 2-Current): ")
		if err != nil {
			return err
		}
		if kind, err = domain.ParseAccountKind(token); err == nil {
			break
		}
		h.printf("Invalid account type. Enter 1 or 2.\n")
	}

	req := dto.CreateAccountRequestDTO{Name: name, Secret: secret, Kind: token}
	if errs := dto.Validate(req); errs != nil {
		h.printValidation(errs)
		return nil
	}

	number, err := h.bank.CreateAccount(ctx, req.Name, req.Secret, kind)
	if err != nil {
		return fmt.Errorf("can't create account: %w", err)
	}

	h.printf("\nAccount created successfully!\nAccount Number: %s\nAccount Holder: %s\nAccount Type: %s\n",
		number, req.Name, kind.DisplayName())
	return nil
}

func (h *Handler) login(ctx context.Context) error {
	h.printf("\n--- LOGIN ---\n")
	number, err := h.readLine("Account Number: ")
	if err != nil {
		return err
	}
	secret, err := h.readSecret("Password: ")
	if err != nil {
		return err
	}

	req := dto.LoginRequestDTO{Number: number, Secret: secret}
	if errs := dto.Validate(req); errs != nil {
		h.printValidation(errs)
		return nil
	}

	acc, err := h.bank.Login(ctx, req.Number, req.Secret)
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		h.printf("Account not found!\n")
		return nil
	case errors.Is(err, domain.ErrInvalidCredential):
		h.printf("Invalid password!\n")
		return nil
	case err != nil:
		return fmt.Errorf("can't login: %w", err)
	}

	h.printf("Login successful! Welcome, %s\n", acc.Holder())
	return h.accountMenu(ctx, acc)
}

func (h *Handler) listAccounts(ctx context.Context) error {
	summaries, err := h.bank.ListAccounts(ctx)
	if err != nil {
		return fmt.Errorf("can't list accounts: %w", err)
	}
	if len(summaries) == 0 {
		h.printf("No accounts in the system.\n")
		return nil
	}

	h.printf("\nALL ACCOUNTS\n")
	for _, s := range summaries {
		h.printf("Account: %s | Holder: %s | Type: %s | Balance: $%s\n",
			s.Number, s.Holder, s.Kind.DisplayName(), s.Balance.StringFixed(2))
	}
	return nil
}

func (h *Handler) accountMenu(ctx context.Context, acc *account.Account) error {
	savings, isSavings := acc.AsSavings()

	for ctx.Err() == nil {
		h.printf("\nACCOUNT OPERATIONS\n1. Deposit\n2. Withdraw\n3. Check Balance\n4. Mini Statement\n5. Transaction History\n")
		if isSavings {
			h.printf("6. Apply Interest\n")
		}
		h.printf("0. Logout\n")

		choice, err := h.readChoice("Choose option: ")
		if err != nil {
			return err
		}

		switch {
		case choice == 1:
			amount, err := h.readAmount("Enter deposit amount: $")
			if err != nil {
				return err
			}
			tx, err := acc.Deposit(amount)
			h.reportTransaction(acc, "Deposited", tx, err)
		case choice == 2:
			amount, err := h.readAmount("Enter withdrawal amount: $")
			if err != nil {
				return err
			}
			tx, err := acc.Withdraw(amount)
			h.reportTransaction(acc, "Withdrawn", tx, err)
		case choice == 3:
			h.printf("\nCurrent Balance: $%s\n", acc.Balance().StringFixed(2))
		case choice == 4:
			h.printMiniStatement(acc)
		case choice == 5:
			h.printHistory(acc)
		case choice == 6 && isSavings:
			tx := savings.ApplyInterest()
			zap.L().Debug("interest applied", zap.String("number", acc.Number()), zap.Stringer("amount", tx.Amount))
			h.printf("Interest of $%s applied!\n", tx.Amount.StringFixed(2))
		case choice == 0:
			h.printf("Logged out successfully!\n")
			return nil
		default:
			h.printf("Invalid choice. Try again.\n")
		}
	}
	return nil
}

func (h *Handler) reportTransaction(acc *account.Account, verb string, tx domain.Transaction, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		h.printf("Invalid amount. Amount must be positive.\n")
	case errors.Is(err, domain.ErrInsufficientFunds):
		h.printf("Insufficient funds!\n")
	case errors.Is(err, domain.ErrOverdraftExceeded):
		h.printf("Exceeds overdraft limit!\n")
	case err != nil:
		h.printf("Operation failed: %v\n", err)
	default:
		zap.L().Debug("transaction recorded",
			zap.String("number", acc.Number()),
			zap.String("type", string(tx.Type)),
			zap.Stringer("amount", tx.Amount),
		)
		h.printf("%s $%s successfully!\n", verb, tx.Amount.StringFixed(2))
		return
	}
	zap.L().Debug("transaction rejected", zap.String("number", acc.Number()), zap.Error(err))
}

func (h *Handler) readLine(prompt string) (string, error) {
	line, err := h.readSecret(prompt)
	return strings.TrimSpace(line), err
}

// readSecret returns the line untouched so passwords keep their spaces.
func (h *Handler) readSecret(prompt string) (string, error) {
	h.printf("%s", prompt)
	if !h.in.Scan() {
		if err := h.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return h.in.Text(), nil
}

func (h *Handler) readChoice(prompt string) (int, error) {
	for {
		line, err := h.readLine(prompt)
		if err != nil {
			return 0, err
		}
		if n, err := strconv.Atoi(line); err == nil {
			return n, nil
		}
		prompt = "Invalid input. Enter a number: "
	}
}

func (h *Handler) readAmount(prompt string) (decimal.Decimal, error) {
	for {
		line, err := h.readLine(prompt)
		if err != nil {
			return decimal.Zero, err
		}
		amount, err := decimal.NewFromString(line)
		if err == nil && amount.Exponent() >= -maxAmountExponent && amount.Exponent() <= maxAmountExponent {
			return amount, nil
		}
		prompt = "Invalid input. Enter a number: "
	}
}

func (h *Handler) printValidation(errs []dto.ValidationError) {
	for _, e := range errs {
		h.printf("%s: %s\n", e.Field, e.Message)
	}
}

func (h *Handler) printf(format string, args ...any) {
	fmt.Fprintf(h.out, format, args...)
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
