package memory

import (
	"fmt"

	"github.com/banco-simulado/internal/domain/account"
)

// firstAccountNumber is where the global numbering sequence starts.
const firstAccountNumber = 1001

// AccountRepository stores accounts keyed by the (agency, number)
// composite. The numbering counter is owned by the store so each test
// can construct a fresh sequence.
type AccountRepository struct {
	accounts   map[string]account.Account
	nextNumber int
}

// NewAccountRepository creates an empty account store with the
// numbering sequence at its starting value.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts:   make(map[string]account.Account),
		nextNumber: firstAccountNumber,
	}
}

// Save upserts the account, assigning the next sequential number when
// the account does not have one yet. The sequence is global, not
// per-agency, and numbers are zero-padded to 6 digits.
func (r *AccountRepository) Save(acc account.Account) account.Account {
	if acc.Number() == "" {
		acc.SetNumber(fmt.Sprintf("%06d", r.nextNumber))
		r.nextNumber++
	}
	r.accounts[account.Key(acc.Agency(), acc.Number())] = acc
	return acc
}

func (r *AccountRepository) Find(agency, number string) (account.Account, bool) {
	acc, ok := r.accounts[account.Key(agency, number)]
	return acc, ok
}

func (r *AccountRepository) FindByOwner(cpf string) []account.Account {
	var out []account.Account
	for _, acc := range r.accounts {
		if acc.Owner() != nil && acc.Owner().CPF == cpf {
			out = append(out, acc)
		}
	}
	return out
}

func (r *AccountRepository) ListAll() []account.Account {
	out := make([]account.Account, 0, len(r.accounts))
	for _, acc := range r.accounts {
		out = append(out, acc)
	}
	return out
}

func (r *AccountRepository) ListActive() []account.Account {
	var out []account.Account
	for _, acc := range r.accounts {
		if acc.Active() {
			out = append(out, acc)
		}
	}
	return out
}

func (r *AccountRepository) Exists(agency, number string) bool {
	_, ok := r.accounts[account.Key(agency, number)]
	return ok
}

func (r *AccountRepository) Delete(agency, number string) bool {
	key := account.Key(agency, number)
	if _, ok := r.accounts[key]; !ok {
		return false
	}
	delete(r.accounts, key)
	return true
}

func (r *AccountRepository) Count() int { return len(r.accounts) }

func (r *AccountRepository) CountActive() int {
	n := 0
	for _, acc := range r.accounts {
		if acc.Active() {
			n++
		}
	}
	return n
}
