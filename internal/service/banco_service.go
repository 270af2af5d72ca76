// Package service orchestrates repositories and domain entities into
// the bank's operation set: deposits, withdrawals, transfers, PIX,
// investments and redemptions.
package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/banco-simulado/internal/config"
	"github.com/banco-simulado/internal/domain/account"
	"github.com/banco-simulado/internal/domain/client"
	"github.com/banco-simulado/internal/domain/investment"
	"github.com/banco-simulado/internal/domain/transaction"
)

// BancoService coordinates the three stores. Operations that reference
// a missing entity report false rather than an error so presentation
// layers can render a friendly message; the exceptions are documented
// per method.
type BancoService struct {
	clients     client.Repository
	accounts    account.Repository
	investments investment.Repository

	agency         string
	statementLimit int
	log            *slog.Logger
}

// NewBancoService wires the service over the given stores. When the
// config asks for it, the reproducible demo dataset is seeded.
func NewBancoService(cfg *config.Config, log *slog.Logger, clients client.Repository, accounts account.Repository, investments investment.Repository) *BancoService {
	s := &BancoService{
		clients:        clients,
		accounts:       accounts,
		investments:    investments,
		agency:         cfg.Bank.DefaultAgency,
		statementLimit: cfg.Bank.StatementLimit,
		log:            log,
	}

	if cfg.Bank.SeedDemoData {
		s.seedDemoData()
	}
	return s
}

// ---------- client operations ----------

// CreateClient registers a new client. It fails with
// DuplicateClientError when the CPF is already taken and propagates the
// entity's validation errors.
func (s *BancoService) CreateClient(name, cpf, email, phone string, birthDate time.Time) (*client.Client, error) {
	if s.clients.Exists(cpf) {
		return nil, DuplicateClientError{CPF: cpf}
	}

	c, err := client.New(name, cpf, email, phone, birthDate)
	if err != nil {
		return nil, err
	}

	s.clients.Save(c)
	s.log.Info("client created", "cpf", c.CPF, "name", c.Name)
	return c, nil
}

// FindClient returns the client with the given CPF, if any.
func (s *BancoService) FindClient(cpf string) (*client.Client, bool) {
	return s.clients.FindByCPF(cpf)
}

// ListClients returns every registered client.
func (s *BancoService) ListClients() []*client.Client {
	return s.clients.ListAll()
}

// ---------- account operations ----------

// CreateAccount opens an account of the given kind for an existing
// client. The agency is fixed and the number is assigned by the store
// on save.
func (s *BancoService) CreateAccount(ownerCPF string, kind account.Kind) (account.Account, error) {
	owner, ok := s.clients.FindByCPF(ownerCPF)
	if !ok {
		return nil, ClientNotFoundError{CPF: ownerCPF}
	}

	var acc account.Account
	switch kind {
	case account.KindChecking:
		acc = account.NewChecking("", s.agency, owner)
	case account.KindSavings:
		acc = account.NewSavings("", s.agency, owner)
	case account.KindInvestment:
		acc = account.NewInvestmentAccount("", s.agency, owner)
	default:
		return nil, fmt.Errorf("unknown account kind %q", kind)
	}

	s.accounts.Save(acc)
	s.log.Info("account created", "kind", kind, "agency", acc.Agency(), "number", acc.Number(), "owner", ownerCPF)
	return acc, nil
}

// FindAccount returns the account with the given composite key, if any.
func (s *BancoService) FindAccount(agency, number string) (account.Account, bool) {
	return s.accounts.Find(agency, number)
}

// FindAccountsByOwner returns the accounts owned by the given CPF.
func (s *BancoService) FindAccountsByOwner(cpf string) []account.Account {
	return s.accounts.FindByOwner(cpf)
}

// ListAccounts returns every stored account.
func (s *BancoService) ListAccounts() []account.Account {
	return s.accounts.ListAll()
}

// ---------- banking operations ----------

// Deposit credits the amount into the account. A missing account is a
// false result; an invalid (non-positive) amount propagates the
// entity's validation error, and no transaction is recorded for it.
func (s *BancoService) Deposit(agency, number string, amount decimal.Decimal) (bool, error) {
	acc, ok := s.accounts.Find(agency, number)
	if !ok {
		return false, nil
	}

	if err := acc.Deposit(amount); err != nil {
		return false, err
	}

	acc.Record(transaction.New(transaction.KindDeposit, amount,
		"Deposit into account", account.Key(agency, number), true))
	s.accounts.Save(acc)

	s.log.Info("deposit", "agency", agency, "number", number, "amount", amount.StringFixed(2))
	return true, nil
}

// Withdraw debits the amount under the account variant's rules. The
// attempt is recorded in the history whether or not it succeeds.
func (s *BancoService) Withdraw(agency, number string, amount decimal.Decimal) bool {
	acc, ok := s.accounts.Find(agency, number)
	if !ok {
		return false
	}

	success := acc.Withdraw(amount)
	acc.Record(transaction.New(transaction.KindWithdrawal, amount,
		"Withdrawal from account", account.Key(agency, number), success))
	s.accounts.Save(acc)

	s.log.Info("withdrawal", "agency", agency, "number", number,
		"amount", amount.StringFixed(2), "success", success)
	return success
}

// Transfer moves the amount between two accounts resolved by composite
// key. The source account records the attempt always; the destination
// only records a successful credit.
func (s *BancoService) Transfer(srcAgency, srcNumber, dstAgency, dstNumber string, amount decimal.Decimal) bool {
	src, ok := s.accounts.Find(srcAgency, srcNumber)
	if !ok {
		return false
	}
	dst, ok := s.accounts.Find(dstAgency, dstNumber)
	if !ok {
		return false
	}

	success := account.Transfer(src, dst, amount)

	srcKey := account.Key(srcAgency, srcNumber)
	dstKey := account.Key(dstAgency, dstNumber)
	src.Record(transaction.NewTransfer(transaction.KindTransfer, amount,
		"Transfer sent", srcKey, dstKey, success))

	if success {
		dst.Record(transaction.NewTransfer(transaction.KindTransfer, amount,
			"Transfer received", srcKey, dstKey, true))
		s.accounts.Save(dst)
	}
	s.accounts.Save(src)

	s.log.Info("transfer", "from", srcKey, "to", dstKey,
		"amount", amount.StringFixed(2), "success", success)
	return success
}

// Pix moves the amount to the first account owned by the client whose
// CPF matches the destination key. An unknown key or source is a false
// result with no balance changes.
func (s *BancoService) Pix(srcAgency, srcNumber, destinationKey string, amount decimal.Decimal) bool {
	src, ok := s.accounts.Find(srcAgency, srcNumber)
	if !ok {
		return false
	}

	destinations := s.accounts.FindByOwner(destinationKey)
	if len(destinations) == 0 {
		return false
	}
	dst := destinations[0]

	success := account.Transfer(src, dst, amount)

	srcKey := account.Key(srcAgency, srcNumber)
	dstKey := account.Key(dst.Agency(), dst.Number())
	src.Record(transaction.NewTransfer(transaction.KindPix, amount,
		"PIX sent to "+destinationKey, srcKey, dstKey, success))

	if success {
		dst.Record(transaction.NewTransfer(transaction.KindPix, amount,
			"PIX received from "+src.Owner().Name, srcKey, dstKey, true))
		s.accounts.Save(dst)
	}
	s.accounts.Save(src)

	s.log.Info("pix", "from", srcKey, "key", destinationKey,
		"amount", amount.StringFixed(2), "success", success)
	return success
}

// ApplySavingsYield credits one month of yield to a savings account.
// It reports false when the account is missing or not a savings
// account.
func (s *BancoService) ApplySavingsYield(agency, number string) bool {
	acc, ok := s.accounts.Find(agency, number)
	if !ok {
		return false
	}
	sav, ok := acc.(*account.Savings)
	if !ok {
		return false
	}

	yield := sav.ApplyMonthlyYield()
	s.accounts.Save(sav)

	s.log.Info("savings yield applied", "agency", agency, "number", number,
		"yield", yield.StringFixed(2))
	return true
}

// ---------- investment operations ----------

// Invest debits the amount from the account and opens an investment of
// the given type owned by the account's owner. The debit goes through
// the account's withdrawal rules, so a checking account also pays its
// withdrawal fee and an investment account enforces its minimum.
func (s *BancoService) Invest(agency, number string, t investment.Type, amount decimal.Decimal) bool {
	acc, ok := s.accounts.Find(agency, number)
	if !ok {
		return false
	}

	if acc.Balance().LessThan(amount) {
		return false
	}
	if !acc.Withdraw(amount) {
		return false
	}

	inv := investment.New(t, amount, acc.Owner().CPF)
	s.investments.Save(inv)

	if invAcc, ok := acc.(*account.InvestmentAccount); ok {
		invAcc.AddInvestment(inv)
	}

	acc.Record(transaction.New(transaction.KindInvestment, amount,
		"Investment in "+t.DisplayName(), account.Key(agency, number), true))
	s.accounts.Save(acc)

	s.log.Info("investment opened", "id", inv.ID, "type", t,
		"amount", amount.StringFixed(2), "owner", inv.OwnerCPF)
	return true
}

// RedeemInvestment settles a matured investment into the destination
// account. The engine's not-redeemable error is deliberately flattened
// to a false result here; menu and GUI callers rely on the boolean
// contract.
func (s *BancoService) RedeemInvestment(investmentID, agency, number string) bool {
	inv, ok := s.investments.FindByID(investmentID)
	if !ok {
		return false
	}
	acc, ok := s.accounts.Find(agency, number)
	if !ok {
		return false
	}

	payout, err := inv.Redeem()
	if err != nil {
		s.log.Warn("redemption refused", "id", investmentID, "error", err)
		return false
	}

	// The payout of an active investment is always positive, so the
	// credit cannot fail.
	_ = acc.Deposit(payout)

	if invAcc, ok := acc.(*account.InvestmentAccount); ok {
		invAcc.RemoveInvestment(inv)
	}

	acc.Record(transaction.New(transaction.KindRedemption, payout,
		"Redemption of "+inv.Type.DisplayName()+" investment", account.Key(agency, number), true))

	s.investments.Save(inv)
	s.accounts.Save(acc)

	s.log.Info("investment redeemed", "id", inv.ID,
		"payout", payout.StringFixed(2))
	return true
}

// FindInvestment returns the investment with the given id, if any.
func (s *BancoService) FindInvestment(id string) (*investment.Investment, bool) {
	return s.investments.FindByID(id)
}

// FindInvestmentsByOwner returns every investment owned by the CPF.
func (s *BancoService) FindInvestmentsByOwner(cpf string) []*investment.Investment {
	return s.investments.FindByOwner(cpf)
}

// ListInvestments returns every stored investment.
func (s *BancoService) ListInvestments() []*investment.Investment {
	return s.investments.ListAll()
}

// ---------- reports ----------

// FindClientsByName returns clients whose name contains the given
// fragment, case-insensitively.
func (s *BancoService) FindClientsByName(name string) []*client.Client {
	return s.clients.FindByName(name)
}

// MaturingInvestments returns active investments maturing within the
// given number of days, overdue ones included.
func (s *BancoService) MaturingInvestments(days int) []*investment.Investment {
	return s.investments.MaturingWithin(days)
}

// OverdueInvestments returns active investments past their maturity.
func (s *BancoService) OverdueInvestments() []*investment.Investment {
	return s.investments.ListOverdue()
}

// PortfolioTotals returns the invested principal and the current value
// aggregated over the active positions.
func (s *BancoService) PortfolioTotals() (principal, current decimal.Decimal) {
	return s.investments.TotalPrincipal(), s.investments.TotalCurrentValue()
}

// ---------- demo fixture ----------

// seedDemoData loads the fixed, reproducible demonstration dataset:
// two clients and three funded accounts.
func (s *BancoService) seedDemoData() {
	joao, err := s.CreateClient("João Silva", "12345678901", "joao@email.com",
		"11999999999", time.Date(1990, time.May, 15, 0, 0, 0, 0, time.UTC))
	if err != nil {
		s.log.Error("demo seed failed", "error", err)
		return
	}
	maria, err := s.CreateClient("Maria Santos", "98765432100", "maria@email.com",
		"11888888888", time.Date(1985, time.October, 20, 0, 0, 0, 0, time.UTC))
	if err != nil {
		s.log.Error("demo seed failed", "error", err)
		return
	}

	checking, _ := s.CreateAccount(joao.CPF, account.KindChecking)
	savings, _ := s.CreateAccount(joao.CPF, account.KindSavings)
	investing, _ := s.CreateAccount(maria.CPF, account.KindInvestment)

	_, _ = s.Deposit(checking.Agency(), checking.Number(), decimal.RequireFromString("5000.00"))
	_, _ = s.Deposit(savings.Agency(), savings.Number(), decimal.RequireFromString("10000.00"))
	_, _ = s.Deposit(investing.Agency(), investing.Number(), decimal.RequireFromString("25000.00"))

	s.log.Info("demo data seeded",
		"checking", checking.Number(), "savings", savings.Number(), "investment", investing.Number())
}
