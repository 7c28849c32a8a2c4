package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tellerhq/teller"
	"github.com/tellerhq/teller/config"
	"github.com/tellerhq/teller/internal/tellererror"
	"github.com/tellerhq/teller/model"
)

// startCommands wires the `start` subcommand, which runs one ATM session on
// the terminal and exits.
func startCommands(b *tellerInstance) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start an ATM session on the terminal",
		Run: func(cmd *cobra.Command, args []string) {
			newSession(b.teller, b.cnf, os.Stdin, os.Stdout).Run()
		},
	}

	return cmd
}

// session is the command loop around the core: read one command, invoke one
// core operation, render the result, repeat. The core stays passive.
type session struct {
	teller *teller.Teller
	cnf    *config.Configuration
	in     *bufio.Scanner
	out    io.Writer
}

func newSession(t *teller.Teller, cnf *config.Configuration, in io.Reader, out io.Writer) *session {
	return &session{
		teller: t,
		cnf:    cnf,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

func (s *session) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}

// readLine prompts and reads one trimmed line. The second return is false at
// end of input, which ends the session gracefully.
func (s *session) readLine(prompt string) (string, bool) {
	s.printf("%s", prompt)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// readAmount re-prompts until the line parses as a decimal amount. Malformed
// input is a controller concern and never reaches the core.
func (s *session) readAmount(prompt string) (decimal.Decimal, bool) {
	for {
		line, ok := s.readLine(prompt)
		if !ok {
			return decimal.Zero, false
		}
		amount, err := decimal.NewFromString(line)
		if err != nil {
			s.printf("Invalid input! Please enter a number.\n")
			continue
		}
		return amount, true
	}
}

// renderError prints the user-facing line for a failed core operation. Errors
// without a teller code are unexpected and get logged.
func (s *session) renderError(err error) {
	if _, ok := tellererror.CodeOf(err); !ok {
		logrus.WithError(err).Error("unexpected error from teller core")
	}
	s.printf("%s\n", tellererror.MapErrorToMessage(err))
}

func (s *session) money(amount decimal.Decimal) string {
	return fmt.Sprintf("%s %s", amount.StringFixed(2), s.cnf.Currency)
}

// Run drives login, account selection, and the menu loop.
func (s *session) Run() {
	username, ok := s.readLine("Enter username: ")
	if !ok {
		return
	}
	pin, ok := s.readLine("Enter PIN: ")
	if !ok {
		return
	}

	user, err := s.teller.Authenticate(username, pin)
	if err != nil {
		s.renderError(err)
		return
	}
	s.printf("Login successful!\n")

	s.printf("Accounts for %s:\n", user.Name)
	for _, id := range s.teller.AccountsOf(user) {
		s.printf(" - %s\n", id)
	}

	accountID, ok := s.readLine("Enter account number: ")
	if !ok {
		return
	}
	account, err := s.teller.AccountOf(user, accountID)
	if err != nil {
		s.renderError(err)
		return
	}

	s.menuLoop(user, account)
}

func (s *session) menuLoop(user *model.User, account *model.Account) {
	for {
		s.printf("\n1. Check Balance\n2. Deposit\n3. Withdraw\n4. Transfer\n5. Transaction History\n6. Exit\n")
		choice, ok := s.readLine("Choose an option: ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			s.printf("Balance: %s\n", s.money(account.Balance()))
		case "2":
			amount, ok := s.readAmount("Enter deposit amount: ")
			if !ok {
				return
			}
			if err := account.Deposit(amount); err != nil {
				s.renderError(err)
				continue
			}
			s.printf("Deposit successful! New balance: %s\n", s.money(account.Balance()))
		case "3":
			amount, ok := s.readAmount("Enter withdrawal amount: ")
			if !ok {
				return
			}
			if err := account.Withdraw(amount); err != nil {
				s.renderError(err)
				continue
			}
			s.printf("Withdrawal successful! New balance: %s\n", s.money(account.Balance()))
		case "4":
			targetID, ok := s.readLine("Enter target account number: ")
			if !ok {
				return
			}
			target, err := s.teller.AccountOf(user, targetID)
			if err != nil {
				s.renderError(err)
				continue
			}
			amount, ok := s.readAmount("Enter transfer amount: ")
			if !ok {
				return
			}
			if err := account.TransferTo(target, amount); err != nil {
				s.renderError(err)
				continue
			}
			s.printf("Transfer successful!\n")
		case "5":
			s.printHistory(account)
		case "6":
			s.printf("Goodbye!\n")
			return
		default:
			s.printf("Invalid choice!\n")
		}
	}
}

func (s *session) printHistory(account *model.Account) {
	s.printf("\nTransaction History for %s (%s):\n", account.Owner, account.AccountID)
	for _, txn := range account.History() {
		switch txn.Kind {
		case model.Deposit:
			s.printf("Deposited: %s\n", s.money(txn.Amount))
		case model.Withdrawal:
			s.printf("Withdrew: %s\n", s.money(txn.Amount))
		case model.TransferOut:
			s.printf("Transferred: %s to %s\n", s.money(txn.Amount), txn.Counterparty)
		}
	}
}
