package client

// Repository defines client persistence operations. The canonical store
// lives for the duration of the process; there is no durability layer.
type Repository interface {
	// Save upserts a client keyed by CPF and returns it.
	Save(c *Client) *Client

	// FindByCPF returns the client for the given CPF, if any.
	FindByCPF(cpf string) (*Client, bool)

	// FindByName returns clients whose name contains the given
	// fragment, case-insensitively.
	FindByName(name string) []*Client

	// FindByEmail returns the first client with a matching email,
	// compared case-insensitively.
	FindByEmail(email string) (*Client, bool)

	// ListAll returns a snapshot of every stored client.
	ListAll() []*Client

	Exists(cpf string) bool

	// Delete removes the client and reports whether one was removed.
	// Accounts and investments owned by the client are not cascaded.
	Delete(cpf string) bool

	Count() int
	Clear()
}
