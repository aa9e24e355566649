package midinero

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// This file is the heart of the tracker: pure folds over a Records
// snapshot. Balances are idempotent and order-independent; after any
// mutation a fresh snapshot reflects the new state with no cache.

// Account returns the account with the given id.
func (r Records) Account(id ID) (Account, bool) {
	for _, a := range r.Accounts {
		if a.ID == id {
			return a, true
		}
	}
	return Account{}, false
}

// Destination returns the savings destination with the given id.
func (r Records) Destination(id ID) (Destination, bool) {
	for _, d := range r.Destinations {
		if d.ID == id {
			return d, true
		}
	}
	return Destination{}, false
}

// CategoryName resolves a category id, or "" for a dangling reference.
func (r Records) CategoryName(id ID) string {
	for _, c := range r.Categories {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}

// AccountBalance folds the full history into the account's balance:
// initial balance, plus incomes and transfers in, minus expenses and
// transfers out. A dangling id yields zero without error.
func (r Records) AccountBalance(id ID) Money {
	account, ok := r.Account(id)
	if !ok {
		return M(decimal.Zero, "")
	}
	ref := AccountRef(id)
	balance := account.InitialBalance

	for _, in := range r.Incomes {
		if in.AccountID == id {
			balance = balance.Add(in.Amount)
		}
	}
	for _, e := range r.Expenses {
		if e.Source == ref {
			balance = balance.Sub(e.Amount)
		}
	}
	for _, t := range r.Transfers {
		if t.To == ref {
			balance = balance.Add(t.Credited())
		}
		if t.From == ref {
			balance = balance.Sub(t.Amount)
		}
	}
	return M(balance, account.Currency)
}

// DestinationBalance folds the history of a savings destination:
// incomes explicitly targeting it plus transfers in, minus expenses
// sourced from it and transfers out. Destinations carry no initial
// balance.
func (r Records) DestinationBalance(id ID) Money {
	destination, ok := r.Destination(id)
	if !ok {
		return M(decimal.Zero, "")
	}
	ref := DestinationRef(id)
	balance := decimal.Zero

	for _, in := range r.Incomes {
		if in.DestinationID == id {
			balance = balance.Add(in.Amount)
		}
	}
	for _, e := range r.Expenses {
		if e.Source == ref {
			balance = balance.Sub(e.Amount)
		}
	}
	for _, t := range r.Transfers {
		if t.To == ref {
			balance = balance.Add(t.Credited())
		}
		if t.From == ref {
			balance = balance.Sub(t.Amount)
		}
	}
	return M(balance, destination.Currency)
}

// Consolidated is the multi-currency consolidation of all accounts and
// destinations at a given ARS-per-USD rate.
//
// Conversion applies the current rate to the whole history, so the
// ARS-equivalent of USD balances moves with the rate (mark-to-market;
// there is no per-record rate snapshot). Available never exceeds
// TotalInARS, with equality exactly when nothing is excluded.
type Consolidated struct {
	AvailableARS Money // ARS balances of non-excluded entities
	AvailableUSD Money // USD balances of non-excluded entities
	TotalARS     Money // ARS balances, excluded included
	TotalUSD     Money // USD balances, excluded included
	TotalInARS   Money // TotalARS + TotalUSD converted
	Available    Money // AvailableARS + AvailableUSD converted
	Reserved     Money // TotalInARS - Available
	Rate         decimal.Decimal
}

// Consolidate partitions every account and destination by currency and
// exclusion flag and converts USD sums at the given rate.
func (r Records) Consolidate(rate decimal.Decimal) Consolidated {
	availARS, availUSD := decimal.Zero, decimal.Zero
	totalARS, totalUSD := decimal.Zero, decimal.Zero

	add := func(balance Money, excluded bool) {
		switch balance.Currency() {
		case USD:
			totalUSD = totalUSD.Add(balance.Decimal())
			if !excluded {
				availUSD = availUSD.Add(balance.Decimal())
			}
		default:
			totalARS = totalARS.Add(balance.Decimal())
			if !excluded {
				availARS = availARS.Add(balance.Decimal())
			}
		}
	}

	for _, a := range r.Accounts {
		add(r.AccountBalance(a.ID), a.Excluded)
	}
	for _, d := range r.Destinations {
		add(r.DestinationBalance(d.ID), d.Excluded)
	}

	total := totalARS.Add(totalUSD.Mul(rate))
	available := availARS.Add(availUSD.Mul(rate))

	return Consolidated{
		AvailableARS: M(availARS, ARS),
		AvailableUSD: M(availUSD, USD),
		TotalARS:     M(totalARS, ARS),
		TotalUSD:     M(totalUSD, USD),
		TotalInARS:   M(total, ARS),
		Available:    M(available, ARS),
		Reserved:     M(total.Sub(available), ARS),
		Rate:         rate,
	}
}

// inMonth reports whether the record date falls in the "YYYY-MM"
// month. This is a string-prefix match on the ISO date, not a
// calendar-aware range.
func inMonth(d Date, month string) bool {
	return strings.HasPrefix(d.String(), month)
}

// MonthIncome sums income amounts in the month.
func (r Records) MonthIncome(month string) decimal.Decimal {
	sum := decimal.Zero
	for _, in := range r.Incomes {
		if inMonth(in.Date, month) {
			sum = sum.Add(in.Amount)
		}
	}
	return sum
}

// MonthExpenses sums expense amounts in the month.
func (r Records) MonthExpenses(month string) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range r.Expenses {
		if inMonth(e.Date, month) {
			sum = sum.Add(e.Amount)
		}
	}
	return sum
}

// CategoryMonthSpend sums the month's expenses for one category.
func (r Records) CategoryMonthSpend(categoryID ID, month string) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range r.Expenses {
		if e.CategoryID == categoryID && inMonth(e.Date, month) {
			sum = sum.Add(e.Amount)
		}
	}
	return sum
}

// ExpensesByCategory groups the month's expense amounts by category
// name. Categories with zero spend are omitted; expenses with a
// dangling category reference are dropped.
func (r Records) ExpensesByCategory(month string) map[string]decimal.Decimal {
	result := make(map[string]decimal.Decimal)
	for _, e := range r.Expenses {
		if !inMonth(e.Date, month) {
			continue
		}
		name := r.CategoryName(e.CategoryID)
		if name == "" {
			continue
		}
		result[name] = result[name].Add(e.Amount)
	}
	for name, sum := range result {
		if sum.IsZero() {
			delete(result, name)
		}
	}
	return result
}

// ExpensesByTag groups expense amounts by tag over the whole history.
// An expense contributes its full amount to every tag it carries.
func (r Records) ExpensesByTag() map[string]decimal.Decimal {
	result := make(map[string]decimal.Decimal)
	for _, e := range r.Expenses {
		for _, tag := range e.Tags {
			result[tag] = result[tag].Add(e.Amount)
		}
	}
	return result
}

// MonthsWithData lists every month with at least one income or
// expense, newest first.
func (r Records) MonthsWithData() []string {
	seen := make(map[string]struct{})
	for _, in := range r.Incomes {
		seen[in.Date.MonthKey()] = struct{}{}
	}
	for _, e := range r.Expenses {
		seen[e.Date.MonthKey()] = struct{}{}
	}
	months := make([]string, 0, len(seen))
	for m := range seen {
		months = append(months, m)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	return months
}

// MonthSummary is one month's income/expense/net line of the history.
type MonthSummary struct {
	Month    string
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
}

// History returns up to n recent months of income/expense/net, in
// chronological order.
func (r Records) History(n int) []MonthSummary {
	months := r.MonthsWithData()
	if len(months) > n {
		months = months[:n]
	}
	result := make([]MonthSummary, 0, len(months))
	for i := len(months) - 1; i >= 0; i-- {
		month := months[i]
		income := r.MonthIncome(month)
		expenses := r.MonthExpenses(month)
		result = append(result, MonthSummary{
			Month:    month,
			Income:   income,
			Expenses: expenses,
			Net:      income.Sub(expenses),
		})
	}
	return result
}

// PrimaryGoal returns the goal with the lowest rank, if any.
func (r Records) PrimaryGoal() (Goal, bool) {
	var best Goal
	found := false
	for _, g := range r.Goals {
		if !found || g.Rank < best.Rank {
			best, found = g, true
		}
	}
	return best, found
}
