package renderer

import (
	"fmt"
	"strings"

	"github.com/nvega/midinero"
)

// refLabel resolves a reference to a display name.
func refLabel(r midinero.Records, ref midinero.Ref) string {
	if ref.IsZero() {
		return ""
	}
	switch ref.Kind {
	case midinero.KindDestination:
		if d, ok := r.Destination(ref.ID); ok {
			return d.Name
		}
	default:
		if a, ok := r.Account(ref.ID); ok {
			return a.Name
		}
	}
	return ref.String()
}

func accountLabel(r midinero.Records, id midinero.ID) string {
	if id == 0 {
		return ""
	}
	return refLabel(r, midinero.AccountRef(id))
}

// Incomes lists incomes, optionally restricted to a "YYYY-MM" month.
func Incomes(r midinero.Records, month string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Incomes\n\n")
	row := table(&b, "Id", "Date", "Amount", "Account", "Destination", "Description")
	for _, in := range r.Incomes {
		if month != "" && !strings.HasPrefix(in.Date.String(), month) {
			continue
		}
		destination := ""
		if d, ok := r.Destination(in.DestinationID); ok {
			destination = d.Name
		}
		row(fmt.Sprint(in.ID), in.Date.String(), ars(in.Amount),
			accountLabel(r, in.AccountID), destination, in.Description)
	}
	return b.String()
}

// Expenses lists expenses, optionally restricted to a "YYYY-MM" month.
func Expenses(r midinero.Records, month string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Expenses\n\n")
	row := table(&b, "Id", "Date", "Amount", "Category", "Source", "Description", "Tags")
	for _, e := range r.Expenses {
		if month != "" && !strings.HasPrefix(e.Date.String(), month) {
			continue
		}
		desc := e.Description
		if e.Recurring {
			desc = strings.TrimSpace(desc + " (" + string(e.Frequency) + ")")
		}
		row(fmt.Sprint(e.ID), e.Date.String(), ars(e.Amount),
			r.CategoryName(e.CategoryID), refLabel(r, e.Source), desc, strings.Join(e.Tags, ", "))
	}
	return b.String()
}

// Transfers lists all transfers.
func Transfers(r midinero.Records) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Transfers\n\n")
	row := table(&b, "Id", "Date", "Amount", "From", "To", "Credited", "Description")
	for _, t := range r.Transfers {
		credited := ""
		if !t.ToAmount.IsZero() {
			credited = t.ToAmount.String()
		}
		row(fmt.Sprint(t.ID), t.Date.String(), t.Amount.String(),
			refLabel(r, t.From), refLabel(r, t.To), credited, t.Description)
	}
	return b.String()
}

// Categories lists categories with the current month's spend.
func Categories(r midinero.Records, month string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Categories\n\n")
	row := table(&b, "Id", "Name", "Spent in "+month)
	for _, c := range r.Categories {
		row(fmt.Sprint(c.ID), c.Name, ars(r.CategoryMonthSpend(c.ID, month)))
	}
	return b.String()
}

// Goals lists savings goals by rank.
func Goals(r midinero.Records) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Goals\n\n")
	row := table(&b, "Id", "Rank", "Amount", "Target date", "Description")
	for _, g := range r.Goals {
		target := ""
		if !g.TargetDate.IsZero() {
			target = g.TargetDate.String()
		}
		row(fmt.Sprint(g.ID), fmt.Sprint(g.Rank), ars(g.Amount), target, g.Description)
	}
	return b.String()
}

// DebtDetail renders one debt with its payment history.
func DebtDetail(r midinero.Records, id midinero.ID) string {
	var b strings.Builder
	debt, ok := r.Debt(id)
	if !ok {
		fmt.Fprintf(&b, "Unknown debt %d.\n", id)
		return b.String()
	}
	fmt.Fprintf(&b, "# %s (%s)\n\n", debt.Name, debt.Type)
	if debt.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", debt.Description)
	}
	row := table(&b, "", "Amount")
	row("Total", in(debt.Total, debt.Currency))
	row("Paid", in(r.PaidToDate(id), debt.Currency))
	row("**Outstanding**", "**"+r.DebtBalance(id).String()+"**")
	fmt.Fprintln(&b)

	payments := r.PaymentsFor(id)
	if len(payments) == 0 {
		return b.String()
	}
	fmt.Fprintf(&b, "## Payments\n\n")
	row = table(&b, "Id", "Date", "Amount", "Account", "Description")
	for _, p := range payments {
		row(fmt.Sprint(p.ID), p.Date.String(), in(p.Amount, debt.Currency),
			accountLabel(r, p.AccountID), p.Description)
	}
	return b.String()
}
