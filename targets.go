package midinero

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// BudgetStatus is a category budget evaluated against one month's
// spend.
type BudgetStatus struct {
	Budget       Budget
	CategoryName string
	Spent        decimal.Decimal
	Over         bool
}

// BudgetStatuses evaluates every budget against the month's category
// spend.
func (r Records) BudgetStatuses(month string) []BudgetStatus {
	statuses := make([]BudgetStatus, 0, len(r.Budgets))
	for _, b := range r.Budgets {
		spent := r.CategoryMonthSpend(b.CategoryID, month)
		statuses = append(statuses, BudgetStatus{
			Budget:       b,
			CategoryName: r.CategoryName(b.CategoryID),
			Spent:        spent,
			Over:         spent.GreaterThan(b.Limit),
		})
	}
	return statuses
}

// ReductionStatus is a reduction target evaluated against one month.
type ReductionStatus struct {
	Target        ReductionTarget
	CategoryName  string
	BaselineMonth string // nearest earlier month with data, "" if none
	Baseline      decimal.Decimal
	Objective     decimal.Decimal // Baseline * (1 - Percent/100)
	Spent         decimal.Decimal
	Met           bool
}

// EvaluateReduction evaluates a reduction target for the given month.
// The baseline is the category's spend in the nearest month before
// `month` that has any data, not necessarily the calendar-prior one.
// When no earlier month has data the baseline is zero, so the target
// holds exactly when the month's spend is zero.
//
// The target's StartMonth records when the cut was set; it is
// informational and does not bound the baseline search.
func (r Records) EvaluateReduction(t ReductionTarget, month string) ReductionStatus {
	status := ReductionStatus{
		Target:       t,
		CategoryName: r.CategoryName(t.CategoryID),
		Spent:        r.CategoryMonthSpend(t.CategoryID, month),
	}

	for _, m := range r.MonthsWithData() { // newest first
		if m < month {
			status.BaselineMonth = m
			status.Baseline = r.CategoryMonthSpend(t.CategoryID, m)
			break
		}
	}

	factor := decimal.NewFromInt(1).Sub(t.Percent.Div(hundred))
	status.Objective = status.Baseline.Mul(factor)
	status.Met = status.Spent.LessThanOrEqual(status.Objective)
	return status
}

// ReductionStatuses evaluates every reduction target for the month.
func (r Records) ReductionStatuses(month string) []ReductionStatus {
	statuses := make([]ReductionStatus, 0, len(r.Targets))
	for _, t := range r.Targets {
		statuses = append(statuses, r.EvaluateReduction(t, month))
	}
	return statuses
}
