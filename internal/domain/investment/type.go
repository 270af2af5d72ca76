package investment

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrUnknownType indicates an unrecognized investment type name.
var ErrUnknownType = errors.New("unknown investment type")

// Type identifies an investment product. Each type carries a fixed
// monthly rate and a fixed nominal term.
type Type string

const (
	TypePoupanca      Type = "POUPANCA"
	TypeCDB           Type = "CDB"
	TypeLCI           Type = "LCI"
	TypeLCA           Type = "LCA"
	TypeTesouroDireto Type = "TESOURO_DIRETO"
	TypeAcoes         Type = "ACOES"
)

var monthlyRates = map[Type]decimal.Decimal{
	TypePoupanca:      decimal.RequireFromString("0.005"),
	TypeCDB:           decimal.RequireFromString("0.008"),
	TypeLCI:           decimal.RequireFromString("0.007"),
	TypeLCA:           decimal.RequireFromString("0.007"),
	TypeTesouroDireto: decimal.RequireFromString("0.009"),
	TypeAcoes:         decimal.RequireFromString("0.012"),
}

// MonthlyRate returns the type's fixed monthly compounding rate.
func (t Type) MonthlyRate() decimal.Decimal {
	return monthlyRates[t]
}

// TermMonths returns the nominal vesting period used to derive the
// maturity date at application time.
func (t Type) TermMonths() int {
	switch t {
	case TypePoupanca:
		return 1
	case TypeCDB:
		return 6
	case TypeLCI, TypeLCA:
		return 12
	case TypeTesouroDireto:
		return 24
	case TypeAcoes:
		return 60
	default:
		return 12
	}
}

// DisplayName returns the product name used in reports.
func (t Type) DisplayName() string {
	switch t {
	case TypePoupanca:
		return "Poupança"
	case TypeCDB:
		return "CDB"
	case TypeLCI:
		return "LCI"
	case TypeLCA:
		return "LCA"
	case TypeTesouroDireto:
		return "Tesouro Direto"
	case TypeAcoes:
		return "Ações"
	default:
		return string(t)
	}
}

// RiskProfile returns a short human-readable risk description.
func (t Type) RiskProfile() string {
	switch t {
	case TypePoupanca:
		return "low risk, low return"
	case TypeCDB:
		return "medium risk, medium return"
	case TypeLCI, TypeLCA:
		return "low risk, tax exempt"
	case TypeTesouroDireto:
		return "medium risk, good return"
	case TypeAcoes:
		return "high risk, high potential return"
	default:
		return ""
	}
}

// AllTypes lists every investment type in display order.
func AllTypes() []Type {
	return []Type{TypePoupanca, TypeCDB, TypeLCI, TypeLCA, TypeTesouroDireto, TypeAcoes}
}

// ParseType converts a user-supplied name into a Type.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := monthlyRates[t]; !ok {
		return "", ErrUnknownType
	}
	return t, nil
}
