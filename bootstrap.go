package teller

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/tellerhq/teller/config"
	"github.com/tellerhq/teller/model"
)

// Bootstrap builds the user directory from the loaded configuration. Seed
// data problems (bad opening balance, unknown account kind) are startup
// failures, not session errors.
func Bootstrap(cnf *config.Configuration) (*Teller, error) {
	t := New()
	for _, uc := range cnf.Users {
		user := model.NewUser(uc.Name, uc.Pin)
		for _, ac := range uc.Accounts {
			kind, err := model.ParseAccountKind(ac.Kind)
			if err != nil {
				return nil, errors.Wrapf(err, "seeding account %q for user %q", ac.ID, uc.Name)
			}
			opening, err := decimal.NewFromString(ac.OpeningBalance)
			if err != nil {
				return nil, errors.Wrapf(err, "parsing opening balance of account %q", ac.ID)
			}
			user.AddAccount(model.NewAccount(ac.ID, uc.Name, kind, opening))
		}
		t.Register(user)
	}
	return t, nil
}
