// Package menu is the text-menu collaborator: a thin, line-buffered
// front end over the service. It holds no business rules.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/banco-simulado/internal/domain/account"
	"github.com/banco-simulado/internal/domain/investment"
	"github.com/banco-simulado/internal/service"
)

// Menu drives the interactive session.
type Menu struct {
	svc *service.BancoService
	in  *bufio.Scanner
	out io.Writer
}

// New creates a menu reading line-buffered input from r and writing to w.
func New(svc *service.BancoService, r io.Reader, w io.Writer) *Menu {
	return &Menu{svc: svc, in: bufio.NewScanner(r), out: w}
}

// Run loops over the main menu until the user exits or input ends.
func (m *Menu) Run() error {
	for {
		fmt.Fprint(m.out, "\n===== BANCO SIMULADO =====\n"+
			"1. Clients\n"+
			"2. Accounts\n"+
			"3. Transactions\n"+
			"4. Investments\n"+
			"5. Statement\n"+
			"6. Reports\n"+
			"0. Exit\n"+
			"Option: ")

		choice, ok := m.readLine()
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			m.clientMenu()
		case "2":
			m.accountMenu()
		case "3":
			m.transactionMenu()
		case "4":
			m.investmentMenu()
		case "5":
			m.showStatement()
		case "6":
			m.reportMenu()
		case "0":
			fmt.Fprintln(m.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid option.")
		}
	}
}

func (m *Menu) clientMenu() {
	fmt.Fprint(m.out, "\n-- Clients --\n1. Create client\n2. List clients\n3. Find by CPF\n4. Search by name\nOption: ")
	choice, ok := m.readLine()
	if !ok {
		return
	}

	switch choice {
	case "1":
		name := m.prompt("Name: ")
		cpf := m.prompt("CPF (11 digits): ")
		email := m.prompt("Email: ")
		phone := m.prompt("Phone: ")
		birth, err := time.Parse("02/01/2006", m.prompt("Birth date (dd/mm/yyyy): "))
		if err != nil {
			fmt.Fprintln(m.out, "Invalid date.")
			return
		}
		c, err := m.svc.CreateClient(name, cpf, email, phone, birth)
		if err != nil {
			fmt.Fprintf(m.out, "Could not create client: %v\n", err)
			return
		}
		fmt.Fprintf(m.out, "Client created: %s\n", c)
	case "2":
		for _, c := range m.svc.ListClients() {
			fmt.Fprintln(m.out, c)
		}
	case "3":
		cpf := m.prompt("CPF: ")
		c, ok := m.svc.FindClient(cpf)
		if !ok {
			fmt.Fprintln(m.out, "Client not found.")
			return
		}
		fmt.Fprintln(m.out, c)
	case "4":
		name := m.prompt("Name contains: ")
		for _, c := range m.svc.FindClientsByName(name) {
			fmt.Fprintln(m.out, c)
		}
	}
}

func (m *Menu) accountMenu() {
	fmt.Fprint(m.out, "\n-- Accounts --\n1. Open account\n2. List accounts\n3. Accounts by CPF\nOption: ")
	choice, ok := m.readLine()
	if !ok {
		return
	}

	switch choice {
	case "1":
		cpf := m.prompt("Owner CPF: ")
		kind, err := account.ParseKind(strings.ToUpper(m.prompt("Kind (CHECKING/SAVINGS/INVESTMENT): ")))
		if err != nil {
			fmt.Fprintln(m.out, err)
			return
		}
		acc, err := m.svc.CreateAccount(cpf, kind)
		if err != nil {
			fmt.Fprintf(m.out, "Could not open account: %v\n", err)
			return
		}
		fmt.Fprintf(m.out, "Account opened: %s\n", acc)
	case "2":
		for _, acc := range m.svc.ListAccounts() {
			fmt.Fprintf(m.out, "%s | %s\n", acc, acc.Details())
		}
	case "3":
		cpf := m.prompt("CPF: ")
		for _, acc := range m.svc.FindAccountsByOwner(cpf) {
			fmt.Fprintln(m.out, acc)
		}
	}
}

func (m *Menu) transactionMenu() {
	fmt.Fprint(m.out, "\n-- Transactions --\n1. Deposit\n2. Withdraw\n3. Transfer\n4. PIX\n5. Apply savings yield\nOption: ")
	choice, ok := m.readLine()
	if !ok {
		return
	}

	switch choice {
	case "1":
		agency, number := m.promptAccount("Account")
		amount, err := m.promptAmount()
		if err != nil {
			return
		}
		ok, err := m.svc.Deposit(agency, number, amount)
		if err != nil {
			fmt.Fprintf(m.out, "Deposit rejected: %v\n", err)
			return
		}
		m.report(ok, "Deposit")
	case "2":
		agency, number := m.promptAccount("Account")
		amount, err := m.promptAmount()
		if err != nil {
			return
		}
		m.report(m.svc.Withdraw(agency, number, amount), "Withdrawal")
	case "3":
		srcAgency, srcNumber := m.promptAccount("Source account")
		dstAgency, dstNumber := m.promptAccount("Destination account")
		amount, err := m.promptAmount()
		if err != nil {
			return
		}
		m.report(m.svc.Transfer(srcAgency, srcNumber, dstAgency, dstNumber, amount), "Transfer")
	case "4":
		agency, number := m.promptAccount("Source account")
		key := m.prompt("PIX key (destination CPF): ")
		amount, err := m.promptAmount()
		if err != nil {
			return
		}
		m.report(m.svc.Pix(agency, number, key, amount), "PIX")
	case "5":
		agency, number := m.promptAccount("Savings account")
		m.report(m.svc.ApplySavingsYield(agency, number), "Yield application")
	}
}

func (m *Menu) investmentMenu() {
	fmt.Fprint(m.out, "\n-- Investments --\n1. Invest\n2. Redeem\n3. List by CPF\nOption: ")
	choice, ok := m.readLine()
	if !ok {
		return
	}

	switch choice {
	case "1":
		agency, number := m.promptAccount("Account")
		fmt.Fprintln(m.out, "Types:")
		for i, t := range investment.AllTypes() {
			fmt.Fprintf(m.out, "  %d. %s (%s%% p.m.) - %s\n", i+1, t.DisplayName(),
				t.MonthlyRate().Mul(decimal.NewFromInt(100)).StringFixed(2), t.RiskProfile())
		}
		idx, err := strconv.Atoi(m.prompt("Type number: "))
		if err != nil || idx < 1 || idx > len(investment.AllTypes()) {
			fmt.Fprintln(m.out, "Invalid type.")
			return
		}
		amount, err := m.promptAmount()
		if err != nil {
			return
		}
		m.report(m.svc.Invest(agency, number, investment.AllTypes()[idx-1], amount), "Investment")
	case "2":
		id := m.prompt("Investment id: ")
		agency, number := m.promptAccount("Destination account")
		m.report(m.svc.RedeemInvestment(id, agency, number), "Redemption")
	case "3":
		cpf := m.prompt("CPF: ")
		for _, inv := range m.svc.FindInvestmentsByOwner(cpf) {
			status := "active"
			if !inv.Active {
				status = "redeemed"
			}
			fmt.Fprintf(m.out, "%s | %s | principal %s | current %s | matures %s | %s\n",
				inv.ID, inv.Type.DisplayName(), inv.Principal.StringFixed(2),
				inv.CurrentValue().StringFixed(2), inv.MaturesOn.Format("02/01/2006"), status)
		}
	}
}

func (m *Menu) reportMenu() {
	fmt.Fprint(m.out, "\n-- Reports --\n1. Maturing investments\n2. Overdue investments\n3. Portfolio totals\nOption: ")
	choice, ok := m.readLine()
	if !ok {
		return
	}

	switch choice {
	case "1":
		days, err := strconv.Atoi(m.prompt("Within how many days: "))
		if err != nil || days < 0 {
			fmt.Fprintln(m.out, "Invalid day count.")
			return
		}
		m.printInvestments(m.svc.MaturingInvestments(days))
	case "2":
		m.printInvestments(m.svc.OverdueInvestments())
	case "3":
		principal, current := m.svc.PortfolioTotals()
		fmt.Fprintf(m.out, "Invested principal: %s\nCurrent value: %s\nAccrued yield: %s\n",
			principal.StringFixed(2), current.StringFixed(2), current.Sub(principal).StringFixed(2))
	}
}

func (m *Menu) printInvestments(invs []*investment.Investment) {
	if len(invs) == 0 {
		fmt.Fprintln(m.out, "No investments found.")
		return
	}
	for _, inv := range invs {
		fmt.Fprintf(m.out, "%s | %s | owner %s | current %s | matures %s (%d days)\n",
			inv.ID, inv.Type.DisplayName(), inv.OwnerCPF,
			inv.CurrentValue().StringFixed(2), inv.MaturesOn.Format("02/01/2006"),
			inv.DaysToMaturity())
	}
}

func (m *Menu) showStatement() {
	agency, number := m.promptAccount("Account")
	if err := m.svc.WriteStatement(m.out, agency, number); err != nil {
		fmt.Fprintf(m.out, "Could not render statement: %v\n", err)
	}
}

func (m *Menu) report(ok bool, op string) {
	if ok {
		fmt.Fprintf(m.out, "%s completed.\n", op)
	} else {
		fmt.Fprintf(m.out, "%s failed.\n", op)
	}
}

func (m *Menu) promptAccount(label string) (agency, number string) {
	agency = m.prompt(label + " agency: ")
	number = m.prompt(label + " number: ")
	return agency, number
}

func (m *Menu) promptAmount() (decimal.Decimal, error) {
	raw := m.prompt("Amount: ")
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		fmt.Fprintln(m.out, "Invalid amount.")
		return decimal.Zero, err
	}
	return amount, nil
}

func (m *Menu) prompt(label string) string {
	fmt.Fprint(m.out, label)
	line, _ := m.readLine()
	return line
}

func (m *Menu) readLine() (string, bool) {
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}
