package service

// DuplicateClientError indicates CPF uniqueness violation on client
// creation.
type DuplicateClientError struct {
	CPF string
}

func (e DuplicateClientError) Error() string {
	return "client already exists with CPF: " + e.CPF
}

// ClientNotFoundError indicates a missing client on account creation.
// Lookup-style operations report missing entities as false results
// instead of raising this.
type ClientNotFoundError struct {
	CPF string
}

func (e ClientNotFoundError) Error() string {
	return "client not found: " + e.CPF
}
