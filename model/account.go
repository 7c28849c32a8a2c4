package model

import (
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/tellerhq/teller/internal/tellererror"
)

// AccountKind selects the withdrawal policy an account runs under.
type AccountKind string

const (
	Checking AccountKind = "checking"
	Savings  AccountKind = "savings"
)

var (
	// OverdraftLimit is how far below zero a checking balance may go.
	OverdraftLimit = decimal.NewFromInt(100)
	// PerWithdrawalLimit caps a single savings withdrawal, independent of balance.
	PerWithdrawalLimit = decimal.NewFromInt(500)
)

// Account holds a balance and its append-only transaction history. Balance and
// history are only reachable through the operation methods, so every mutation
// leaves a record behind.
type Account struct {
	AccountID string      `json:"account_id"`
	Owner     string      `json:"owner"`
	Kind      AccountKind `json:"kind"`

	balance decimal.Decimal
	entries []Transaction
}

// NewAccount creates an account with an opening balance. An empty id gets an
// auto-generated one with the acc_ prefix.
func NewAccount(id, owner string, kind AccountKind, openingBalance decimal.Decimal) *Account {
	if id == "" {
		id = GenerateUUIDWithSuffix("acc")
	}
	return &Account{
		AccountID: id,
		Owner:     owner,
		Kind:      kind,
		balance:   openingBalance,
	}
}

// withdrawPolicy decides whether a withdrawal may proceed given the current
// balance. Each account kind supplies its own.
type withdrawPolicy func(balance, amount decimal.Decimal) error

var withdrawPolicies = map[AccountKind]withdrawPolicy{
	Checking: checkingWithdrawPolicy,
	Savings:  savingsWithdrawPolicy,
}

func checkingWithdrawPolicy(balance, amount decimal.Decimal) error {
	if balance.Sub(amount).LessThan(OverdraftLimit.Neg()) {
		return tellererror.NewTellerError(tellererror.ErrInsufficientFunds,
			"withdrawal exceeds overdraft capacity", nil)
	}
	return nil
}

func savingsWithdrawPolicy(balance, amount decimal.Decimal) error {
	if amount.GreaterThan(PerWithdrawalLimit) {
		return tellererror.NewTellerError(tellererror.ErrLimitExceeded,
			"withdrawal exceeds savings per-withdrawal limit", nil)
	}
	if amount.GreaterThan(balance) {
		return tellererror.NewTellerError(tellererror.ErrInsufficientFunds,
			"insufficient funds", nil)
	}
	return nil
}

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// Deposit credits the account. It never fails on funds grounds; a negative
// amount is a caller contract violation and is rejected.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return tellererror.NewTellerError(tellererror.ErrInvalidAmount,
			"deposit amount cannot be negative", nil)
	}
	a.balance = a.balance.Add(amount)
	a.record(Deposit, amount, "")
	return nil
}

// Withdraw debits the account if the kind's policy allows it. On failure the
// balance and history are untouched.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return tellererror.NewTellerError(tellererror.ErrInvalidAmount,
			"withdrawal amount must be positive", nil)
	}
	policy, ok := withdrawPolicies[a.Kind]
	if !ok {
		return errors.Errorf("no withdrawal policy for account kind %q", a.Kind)
	}
	if err := policy(a.balance, amount); err != nil {
		return err
	}
	a.balance = a.balance.Sub(amount)
	a.record(Withdrawal, amount, "")
	return nil
}

// TransferTo debits this account and credits target. The funds pre-check runs
// against the raw balance, which for checking accounts is stricter than the
// overdraft-aware Withdraw rule. A completed transfer leaves two entries on
// the source (the Withdrawal plus a TransferOut naming the counterparty) and
// one Deposit on the target.
func (a *Account) TransferTo(target *Account, amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return tellererror.NewTellerError(tellererror.ErrInvalidAmount,
			"transfer amount must be positive", nil)
	}
	if amount.GreaterThan(a.balance) {
		return tellererror.NewTellerError(tellererror.ErrInsufficientFunds,
			"transfer amount exceeds available balance", nil)
	}
	if err := a.Withdraw(amount); err != nil {
		return err
	}
	if err := target.Deposit(amount); err != nil {
		// undo the debit if the credit somehow fails
		a.balance = a.balance.Add(amount)
		a.entries = a.entries[:len(a.entries)-1]
		return err
	}
	a.record(TransferOut, amount, target.AccountID)
	return nil
}

// History returns the transaction log, oldest first. The slice is a copy;
// mutating it does not touch the account.
func (a *Account) History() []Transaction {
	out := make([]Transaction, len(a.entries))
	copy(out, a.entries)
	return out
}

func (a *Account) record(kind TransactionKind, amount decimal.Decimal, counterparty string) {
	a.entries = append(a.entries, Transaction{
		TransactionID: GenerateUUIDWithSuffix("txn"),
		Kind:          kind,
		Amount:        amount,
		Counterparty:  counterparty,
		CreatedAt:     time.Now(),
	})
}
