package teller

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tellerhq/teller/config"
	"github.com/tellerhq/teller/internal/tellererror"
	"github.com/tellerhq/teller/model"
)

func newTestTeller() (*Teller, *model.User) {
	t := New()
	user := model.NewUser("Alice", "1234")
	user.AddAccount(model.NewAccount("CHK123", user.Name, model.Checking, decimal.RequireFromString("1000.00")))
	user.AddAccount(model.NewAccount("SAV123", user.Name, model.Savings, decimal.RequireFromString("5000.00")))
	t.Register(user)
	return t, user
}

func TestAuthenticate(t *testing.T) {
	teller, _ := newTestTeller()

	user, err := teller.Authenticate("Alice", "1234")
	assert.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)

	// wrong PIN and unknown user report the same failure
	_, wrongPin := teller.Authenticate("Alice", "0000")
	_, unknown := teller.Authenticate(gofakeit.Name(), "1234")

	for _, err := range []error{wrongPin, unknown} {
		assert.Error(t, err)
		code, ok := tellererror.CodeOf(err)
		assert.True(t, ok)
		assert.Equal(t, tellererror.ErrAuthFailed, code)
	}
	assert.Equal(t, wrongPin.Error(), unknown.Error())
}

func TestRegisterOverwritesDuplicateName(t *testing.T) {
	teller, _ := newTestTeller()

	replacement := model.NewUser("Alice", "9999")
	teller.Register(replacement)

	_, err := teller.Authenticate("Alice", "1234")
	assert.Error(t, err)

	user, err := teller.Authenticate("Alice", "9999")
	assert.NoError(t, err)
	assert.Empty(t, teller.AccountsOf(user))
}

func TestAccountsOfSorted(t *testing.T) {
	teller, user := newTestTeller()
	assert.Equal(t, []string{"CHK123", "SAV123"}, teller.AccountsOf(user))
}

func TestAccountOf(t *testing.T) {
	teller, user := newTestTeller()

	account, err := teller.AccountOf(user, "CHK123")
	assert.NoError(t, err)
	assert.Equal(t, model.Checking, account.Kind)

	_, err = teller.AccountOf(user, "CHK999")
	code, ok := tellererror.CodeOf(err)
	assert.True(t, ok)
	assert.Equal(t, tellererror.ErrNotFound, code)
}

func TestBootstrap(t *testing.T) {
	cnf := &config.Configuration{
		ProjectName: "Teller",
		Currency:    "USD",
		Users: []config.UserConfig{
			{
				Name: "Bob",
				Pin:  "4321",
				Accounts: []config.AccountConfig{
					{ID: "CHK900", Kind: "checking", OpeningBalance: "250.50"},
				},
			},
		},
	}

	teller, err := Bootstrap(cnf)
	assert.NoError(t, err)

	user, err := teller.Authenticate("Bob", "4321")
	assert.NoError(t, err)

	account, err := teller.AccountOf(user, "CHK900")
	assert.NoError(t, err)
	assert.Equal(t, "250.50", account.Balance().StringFixed(2))
	assert.Empty(t, account.History())
}

func TestBootstrapRejectsBadSeed(t *testing.T) {
	_, err := Bootstrap(&config.Configuration{
		Users: []config.UserConfig{
			{Name: "Bob", Pin: "1", Accounts: []config.AccountConfig{
				{ID: "X1", Kind: "money-market", OpeningBalance: "10.00"},
			}},
		},
	})
	assert.Error(t, err)

	_, err = Bootstrap(&config.Configuration{
		Users: []config.UserConfig{
			{Name: "Bob", Pin: "1", Accounts: []config.AccountConfig{
				{ID: "X1", Kind: "checking", OpeningBalance: "ten dollars"},
			}},
		},
	})
	assert.Error(t, err)
}
