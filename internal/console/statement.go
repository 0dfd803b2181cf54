package console

import (
	"github.com/GlebRadaev/bankledger/internal/account"
	"github.com/GlebRadaev/bankledger/internal/domain"
)

const timestampLayout = "2006-01-02 15:04:05"

func (h *Handler) printMiniStatement(acc *account.Account) {
	h.printf("\nMINI STATEMENT\nAccount: %s | Holder: %s\nType: %s\nCurrent Balance: $%s\n",
		acc.Number(), acc.Holder(), acc.Kind().DisplayName(), acc.Balance().StringFixed(2))

	txs := acc.MiniStatement()
	if len(txs) == 0 {
		h.printf("No transactions yet.\n")
		return
	}
	h.printf("Last %d Transactions:\n", len(txs))
	for _, tx := range txs {
		h.printTransaction(tx)
	}
}

func (h *Handler) printHistory(acc *account.Account) {
	h.printf("\nTRANSACTION HISTORY\nAccount: %s | Holder: %s\n", acc.Number(), acc.Holder())

	txs := acc.FullHistory()
	if len(txs) == 0 {
		h.printf("No transactions found.\n")
		return
	}
	h.printf("Total Transactions: %d\n", len(txs))
	for i, tx := range txs {
		h.printf("%d. ", i+1)
		h.printTransaction(tx)
	}
}

func (h *Handler) printTransaction(tx domain.Transaction) {
	h.printf("%-12s | $%-10s | Balance: $%-10s | %s\n",
		tx.Type, tx.Amount.StringFixed(2), tx.BalanceAfter.StringFixed(2), tx.Timestamp.Format(timestampLayout))
}
