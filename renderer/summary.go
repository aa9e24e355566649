package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nvega/midinero"
)

// Summary renders the dashboard: the consolidated balances, the
// per-account and per-destination breakdown, the primary goal and the
// outstanding debts.
func Summary(r midinero.Records, today midinero.Date) string {
	var b strings.Builder
	rate := r.Rate.Current()
	c := r.Consolidate(rate)

	fmt.Fprintf(&b, "# Summary on %s\n\n", today)
	fmt.Fprintf(&b, "*As of %s, 1 USD = %s ARS*\n\n", Now().Format("2006-01-02 15:04:05"), rate)

	row := table(&b, "", "Amount")
	row("**Available**", "**"+c.Available.String()+"**")
	row("In savings", c.Reserved.String())
	row("**Total**", "**"+c.TotalInARS.String()+"**")
	fmt.Fprintln(&b)

	if !c.TotalUSD.IsZero() {
		row = table(&b, "Currency", "Available", "Total")
		row("ARS", c.AvailableARS.String(), c.TotalARS.String())
		row("USD", c.AvailableUSD.String(), c.TotalUSD.String())
		fmt.Fprintln(&b)
	}

	renderAccounts(&b, r)
	renderDestinations(&b, r)
	renderPrimaryGoal(&b, r, c)
	renderDebts(&b, r, rate)
	renderPendingHint(&b, r, today)

	return b.String()
}

func renderAccounts(w io.Writer, r midinero.Records) {
	if len(r.Accounts) == 0 {
		return
	}
	fmt.Fprintf(w, "## Accounts\n\n")
	row := table(w, "Account", "Type", "Balance", "")
	for _, a := range r.Accounts {
		note := ""
		if a.Excluded {
			note = "excluded"
		}
		row(a.Name, string(a.Type), r.AccountBalance(a.ID).String(), note)
	}
	fmt.Fprintln(w)
}

func renderDestinations(w io.Writer, r midinero.Records) {
	if len(r.Destinations) == 0 {
		return
	}
	fmt.Fprintf(w, "## Savings\n\n")
	row := table(w, "Destination", "Balance", "Target", "Progress")
	for _, d := range r.Destinations {
		balance := r.DestinationBalance(d.ID)
		target, progress := "", ""
		if !d.Target.IsZero() {
			target = in(d.Target, d.Currency)
			progress = percentOf(balance.Decimal(), d.Target)
		}
		name := d.Name
		if d.Icon != "" {
			name = d.Icon + " " + name
		}
		row(name, balance.String(), target, progress)
	}
	fmt.Fprintln(w)
}

// renderPrimaryGoal shows how far the reserved savings are from the
// highest ranked goal.
func renderPrimaryGoal(w io.Writer, r midinero.Records, c midinero.Consolidated) {
	goal, ok := r.PrimaryGoal()
	if !ok || goal.Amount.IsZero() {
		return
	}
	fmt.Fprintf(w, "## Goal\n\n")
	label := goal.Description
	if label == "" {
		label = "Savings goal"
	}
	fmt.Fprintf(w, "%s: %s of %s (%s)", label, c.Reserved, ars(goal.Amount), percentOf(c.Reserved.Decimal(), goal.Amount))
	if !goal.TargetDate.IsZero() {
		fmt.Fprintf(w, " by %s", goal.TargetDate)
	}
	fmt.Fprint(w, "\n\n")
}

func renderDebts(w io.Writer, r midinero.Records, rate decimal.Decimal) {
	if len(r.Debts) == 0 {
		return
	}
	fmt.Fprintf(w, "## Debts\n\n")
	row := table(w, "Debt", "Type", "Outstanding", "Due")
	for _, d := range r.Debts {
		due := ""
		if !d.DueDate.IsZero() {
			due = d.DueDate.String()
		}
		row(d.Name, string(d.Type), r.DebtBalance(d.ID).String(), due)
	}
	row("**Total**", "", "**"+r.TotalDebtsInARS(rate).String()+"**", "")
	fmt.Fprintln(w)
}

func renderPendingHint(w io.Writer, r midinero.Records, today midinero.Date) {
	pending := r.PendingRecurring(today)
	if len(pending) == 0 {
		return
	}
	fmt.Fprintf(w, "*%d recurring expense(s) due soon, see `recurring`.*\n", len(pending))
}
