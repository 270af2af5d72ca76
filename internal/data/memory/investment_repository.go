package memory

import (
	"github.com/shopspring/decimal"

	"github.com/banco-simulado/internal/domain/investment"
)

// InvestmentRepository stores investments keyed by their generated id.
type InvestmentRepository struct {
	investments map[string]*investment.Investment
}

// NewInvestmentRepository creates an empty investment store.
func NewInvestmentRepository() *InvestmentRepository {
	return &InvestmentRepository{investments: make(map[string]*investment.Investment)}
}

func (r *InvestmentRepository) Save(inv *investment.Investment) *investment.Investment {
	r.investments[inv.ID] = inv
	return inv
}

func (r *InvestmentRepository) FindByID(id string) (*investment.Investment, bool) {
	inv, ok := r.investments[id]
	return inv, ok
}

func (r *InvestmentRepository) FindByOwner(cpf string) []*investment.Investment {
	return r.filter(func(inv *investment.Investment) bool {
		return inv.OwnerCPF == cpf
	})
}

func (r *InvestmentRepository) FindByType(t investment.Type) []*investment.Investment {
	return r.filter(func(inv *investment.Investment) bool {
		return inv.Type == t
	})
}

func (r *InvestmentRepository) ListAll() []*investment.Investment {
	out := make([]*investment.Investment, 0, len(r.investments))
	for _, inv := range r.investments {
		out = append(out, inv)
	}
	return out
}

func (r *InvestmentRepository) ListActive() []*investment.Investment {
	return r.filter(func(inv *investment.Investment) bool {
		return inv.Active
	})
}

func (r *InvestmentRepository) MaturingWithin(days int) []*investment.Investment {
	return r.filter(func(inv *investment.Investment) bool {
		return inv.Active && inv.DaysToMaturity() <= days
	})
}

func (r *InvestmentRepository) ListOverdue() []*investment.Investment {
	return r.filter(func(inv *investment.Investment) bool {
		return inv.Active && inv.DaysToMaturity() < 0
	})
}

func (r *InvestmentRepository) Exists(id string) bool {
	_, ok := r.investments[id]
	return ok
}

func (r *InvestmentRepository) Delete(id string) bool {
	if _, ok := r.investments[id]; !ok {
		return false
	}
	delete(r.investments, id)
	return true
}

func (r *InvestmentRepository) Count() int { return len(r.investments) }

func (r *InvestmentRepository) CountActive() int {
	return len(r.ListActive())
}

func (r *InvestmentRepository) TotalPrincipal() decimal.Decimal {
	total := decimal.Zero
	for _, inv := range r.investments {
		if inv.Active {
			total = total.Add(inv.Principal)
		}
	}
	return total
}

func (r *InvestmentRepository) TotalCurrentValue() decimal.Decimal {
	total := decimal.Zero
	for _, inv := range r.investments {
		if inv.Active {
			total = total.Add(inv.CurrentValue())
		}
	}
	return total
}

func (r *InvestmentRepository) Clear() { clear(r.investments) }

func (r *InvestmentRepository) filter(keep func(*investment.Investment) bool) []*investment.Investment {
	var out []*investment.Investment
	for _, inv := range r.investments {
		if keep(inv) {
			out = append(out, inv)
		}
	}
	return out
}
