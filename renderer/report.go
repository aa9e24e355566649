package renderer

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/nvega/midinero"
)

// historyMonths is the number of months shown in the trend table.
const historyMonths = 6

// Report renders the monthly report: totals, the category breakdown
// with budgets, the reduction targets, the tag breakdown and the
// recent history.
func Report(r midinero.Records, month string) string {
	var b strings.Builder

	income := r.MonthIncome(month)
	expenses := r.MonthExpenses(month)

	fmt.Fprintf(&b, "# Report for %s\n\n", month)
	row := table(&b, "", "Amount")
	row("Income", ars(income))
	row("Expenses", ars(expenses))
	row("**Net**", "**"+ars(income.Sub(expenses))+"**")
	fmt.Fprintln(&b)

	renderCategories(&b, r, month)
	renderReductions(&b, r, month)
	renderTags(&b, r)
	renderHistory(&b, r)

	return b.String()
}

// renderCategories shows the month's spend per category, largest
// first, with the budget column when one exists.
func renderCategories(w io.Writer, r midinero.Records, month string) {
	byCategory := r.ExpensesByCategory(month)
	if len(byCategory) == 0 {
		return
	}
	names := make([]string, 0, len(byCategory))
	for name := range byCategory {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := byCategory[names[i]], byCategory[names[j]]
		if a.Equal(b) {
			return names[i] < names[j]
		}
		return a.GreaterThan(b)
	})

	budgets := make(map[string]midinero.BudgetStatus)
	for _, s := range r.BudgetStatuses(month) {
		budgets[s.CategoryName] = s
	}

	fmt.Fprintf(w, "## By category\n\n")
	row := table(w, "Category", "Spent", "Budget", "")
	for _, name := range names {
		limit, note := "", ""
		if s, ok := budgets[name]; ok {
			limit = ars(s.Budget.Limit)
			if s.Over {
				note = "**over**"
			}
		}
		row(name, ars(byCategory[name]), limit, note)
	}
	fmt.Fprintln(w)
}

func renderReductions(w io.Writer, r midinero.Records, month string) {
	statuses := r.ReductionStatuses(month)
	if len(statuses) == 0 {
		return
	}
	fmt.Fprintf(w, "## Reduction targets\n\n")
	row := table(w, "Category", "Target", "Baseline", "Objective", "Spent", "Status")
	for _, s := range statuses {
		baseline := ""
		if s.BaselineMonth != "" {
			baseline = fmt.Sprintf("%s (%s)", ars(s.Baseline), s.BaselineMonth)
		}
		status := "missed"
		if s.Met {
			status = "met"
		}
		row(s.CategoryName, "-"+s.Target.Percent.String()+"%", baseline, ars(s.Objective), ars(s.Spent), status)
	}
	fmt.Fprintln(w)
}

func renderTags(w io.Writer, r midinero.Records) {
	byTag := r.ExpensesByTag()
	if len(byTag) == 0 {
		return
	}
	tags := make([]string, 0, len(byTag))
	for tag := range byTag {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	fmt.Fprintf(w, "## By tag (all time)\n\n")
	row := table(w, "Tag", "Spent")
	for _, tag := range tags {
		row(tag, ars(byTag[tag]))
	}
	fmt.Fprintln(w)
}

func renderHistory(w io.Writer, r midinero.Records) {
	history := r.History(historyMonths)
	if len(history) == 0 {
		return
	}
	fmt.Fprintf(w, "## History\n\n")
	row := table(w, "Month", "Income", "Expenses", "Net")
	for _, m := range history {
		row(m.Month, ars(m.Income), ars(m.Expenses), ars(m.Net))
	}
	fmt.Fprintln(w)
}

// Recurring renders the recurring expenses due inside the surfacing
// window, most overdue first.
func Recurring(r midinero.Records, today midinero.Date) string {
	pending := r.PendingRecurring(today)
	var b strings.Builder
	fmt.Fprintf(&b, "# Recurring expenses on %s\n\n", today)
	if len(pending) == 0 {
		fmt.Fprintln(&b, "Nothing due soon.")
		return b.String()
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].DaysLeft < pending[j].DaysLeft })

	row := table(&b, "Id", "Description", "Amount", "Frequency", "Next", "Due")
	for _, p := range pending {
		due := fmt.Sprintf("in %d day(s)", p.DaysLeft)
		switch {
		case p.DaysLeft < 0:
			due = fmt.Sprintf("**%d day(s) overdue**", -p.DaysLeft)
		case p.DaysLeft == 0:
			due = "**today**"
		}
		row(fmt.Sprint(p.Expense.ID), p.Expense.Description, ars(p.Expense.Amount),
			string(p.Expense.Frequency), p.NextDate.String(), due)
	}
	return b.String()
}
