package teller

import (
	"github.com/tellerhq/teller/internal/tellererror"
	"github.com/tellerhq/teller/model"
)

// Teller is the user directory: it authenticates credentials and resolves
// account ownership. It is built once at startup and read for the session.
type Teller struct {
	users map[string]*model.User
}

func New() *Teller {
	return &Teller{
		users: make(map[string]*model.User),
	}
}

// Register inserts a user keyed by name. A duplicate name silently replaces
// the previous user.
func (t *Teller) Register(user *model.User) {
	t.users[user.Name] = user
}

// Authenticate returns the user when the name exists and the PIN matches.
// Unknown name and wrong PIN come back as the same error, so callers cannot
// probe which names are registered.
func (t *Teller) Authenticate(name, pin string) (*model.User, error) {
	user, ok := t.users[name]
	if !ok || user.PIN != pin {
		return nil, tellererror.NewTellerError(tellererror.ErrAuthFailed,
			"invalid username or PIN", nil)
	}
	return user, nil
}

// AccountsOf lists the ids of the user's accounts for display.
func (t *Teller) AccountsOf(user *model.User) []string {
	return user.AccountIDs()
}

// AccountOf resolves one of the user's accounts by id.
func (t *Teller) AccountOf(user *model.User, id string) (*model.Account, error) {
	account, ok := user.Account(id)
	if !ok {
		return nil, tellererror.NewTellerError(tellererror.ErrNotFound,
			"account not found", map[string]string{"account_id": id})
	}
	return account, nil
}
