package model

import "sort"

// User owns a set of accounts keyed by account id. The PIN is an opaque
// credential compared in plaintext; hardening it is out of scope.
type User struct {
	Name string `json:"name"`
	PIN  string `json:"-"`

	accounts map[string]*Account
}

func NewUser(name, pin string) *User {
	return &User{
		Name:     name,
		PIN:      pin,
		accounts: make(map[string]*Account),
	}
}

// AddAccount registers an account under its id, replacing any previous entry
// with the same id.
func (u *User) AddAccount(account *Account) {
	u.accounts[account.AccountID] = account
}

// Account looks up an owned account by id.
func (u *User) Account(id string) (*Account, bool) {
	account, ok := u.accounts[id]
	return account, ok
}

// AccountIDs lists the owned account ids, sorted for stable display.
func (u *User) AccountIDs() []string {
	ids := make([]string, 0, len(u.accounts))
	for id := range u.accounts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
