package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind tags a history entry with the operation that produced it.
type TransactionKind string

const (
	Deposit     TransactionKind = "DEPOSIT"
	Withdrawal  TransactionKind = "WITHDRAWAL"
	TransferOut TransactionKind = "TRANSFER_OUT"
)

// Transaction is one committed, balance-affecting operation. Records are
// append-only and immutable once written to an account's history.
type Transaction struct {
	TransactionID string          `json:"id"`
	Kind          TransactionKind `json:"kind"`
	Amount        decimal.Decimal `json:"amount"`
	Counterparty  string          `json:"counterparty,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}
