// Package memory implements the domain repositories as process-lifetime
// in-memory stores. There is no durability and no locking; the core
// assumes a single logical caller.
package memory

import (
	"strings"

	"github.com/banco-simulado/internal/domain/client"
)

// ClientRepository stores clients keyed by CPF.
type ClientRepository struct {
	clients map[string]*client.Client
}

// NewClientRepository creates an empty client store.
func NewClientRepository() *ClientRepository {
	return &ClientRepository{clients: make(map[string]*client.Client)}
}

func (r *ClientRepository) Save(c *client.Client) *client.Client {
	r.clients[c.CPF] = c
	return c
}

func (r *ClientRepository) FindByCPF(cpf string) (*client.Client, bool) {
	c, ok := r.clients[cpf]
	return c, ok
}

func (r *ClientRepository) FindByName(name string) []*client.Client {
	needle := strings.ToLower(name)
	var out []*client.Client
	for _, c := range r.clients {
		if strings.Contains(strings.ToLower(c.Name), needle) {
			out = append(out, c)
		}
	}
	return out
}

func (r *ClientRepository) FindByEmail(email string) (*client.Client, bool) {
	for _, c := range r.clients {
		if strings.EqualFold(c.Email, email) {
			return c, true
		}
	}
	return nil, false
}

func (r *ClientRepository) ListAll() []*client.Client {
	out := make([]*client.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, c)
	}
	return out
}

func (r *ClientRepository) Exists(cpf string) bool {
	_, ok := r.clients[cpf]
	return ok
}

func (r *ClientRepository) Delete(cpf string) bool {
	if _, ok := r.clients[cpf]; !ok {
		return false
	}
	delete(r.clients, cpf)
	return true
}

func (r *ClientRepository) Count() int { return len(r.clients) }

func (r *ClientRepository) Clear() { clear(r.clients) }
