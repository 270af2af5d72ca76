package account

// Repository defines account persistence operations, keyed by the
// (agency, number) composite.
type Repository interface {
	// Save upserts the account. When the account's number is empty, the
	// repository assigns the next number in its global sequence before
	// storing. Returns the (possibly numbered) account.
	Save(acc Account) Account

	Find(agency, number string) (Account, bool)

	// FindByOwner returns accounts owned by the client with the given
	// CPF.
	FindByOwner(cpf string) []Account

	// ListAll returns a snapshot of every stored account.
	ListAll() []Account

	ListActive() []Account

	Exists(agency, number string) bool
	Delete(agency, number string) bool

	Count() int
	CountActive() int
}
