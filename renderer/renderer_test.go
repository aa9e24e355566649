package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nvega/midinero"
)

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func sampleRecords() midinero.Records {
	return midinero.Records{
		Accounts: []midinero.Account{
			{ID: 1, Name: "Cash", Type: midinero.Cash, Currency: midinero.ARS, InitialBalance: dec(1000)},
			{ID: 2, Name: "Dollars", Type: midinero.Bank, Currency: midinero.USD, InitialBalance: dec(100), Excluded: true},
		},
		Destinations: []midinero.Destination{
			{ID: 10, Name: "Trip", Icon: "✈", Target: dec(5000), Currency: midinero.ARS, Excluded: true},
		},
		Categories: []midinero.Category{{ID: 1, Name: "Food"}},
		Incomes: []midinero.Income{
			{ID: 100, Date: midinero.MustParseDate("2026-08-01"), Amount: dec(500), AccountID: 1},
		},
		Expenses: []midinero.Expense{
			{ID: 200, Date: midinero.MustParseDate("2026-08-05"), Amount: dec(200), CategoryID: 1,
				Source: midinero.AccountRef(1), Tags: []string{"home"},
				Recurring: true, Frequency: midinero.Monthly, Description: "Rent"},
		},
		Budgets: []midinero.Budget{{ID: 1, CategoryID: 1, Limit: dec(150)}},
		Goals:   []midinero.Goal{{ID: 1, Amount: dec(100000), Description: "Emergency fund"}},
		Debts: []midinero.Debt{
			{ID: 20, Name: "Card", Type: midinero.CardDebt, Total: dec(1000), Currency: midinero.ARS,
				Date: midinero.MustParseDate("2026-07-01")},
		},
		Rate: midinero.NewRateState(),
	}
}

func TestSummary(t *testing.T) {
	t.Setenv("MIDINERO_TESTING_NOW", "2026-08-31 12:00:00")
	out := Summary(sampleRecords(), midinero.MustParseDate("2026-08-31"))

	for _, want := range []string{
		"# Summary on 2026-08-31",
		"As of 2026-08-31 12:00:00",
		"**Available**",
		"In savings",
		"## Accounts",
		"Cash",
		"Dollars",
		"excluded",
		"## Savings",
		"Trip",
		"## Goal",
		"Emergency fund",
		"## Debts",
		"Card",
		"recurring expense(s) due soon",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q in:\n%s", want, out)
		}
	}
}

func TestReport(t *testing.T) {
	out := Report(sampleRecords(), "2026-08")

	for _, want := range []string{
		"# Report for 2026-08",
		"Income",
		"Expenses",
		"**Net**",
		"## By category",
		"Food",
		"**over**", // spent 200 against a 150 budget
		"## By tag (all time)",
		"home",
		"## History",
		"2026-08",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q in:\n%s", want, out)
		}
	}
}

func TestRecurring(t *testing.T) {
	// rent last paid 2026-08-05, next due 2026-09-05
	out := Recurring(sampleRecords(), midinero.MustParseDate("2026-09-03"))
	if !strings.Contains(out, "Rent") || !strings.Contains(out, "2026-09-05") {
		t.Errorf("recurring report missing the due expense:\n%s", out)
	}
	if !strings.Contains(out, "in 2 day(s)") {
		t.Errorf("recurring report missing the countdown:\n%s", out)
	}

	out = Recurring(sampleRecords(), midinero.MustParseDate("2026-06-01"))
	if !strings.Contains(out, "Nothing due soon.") {
		t.Errorf("empty recurring report = %q", out)
	}
}

func TestPercentOf(t *testing.T) {
	if got := percentOf(dec(50), dec(200)); got != "25%" {
		t.Errorf("percentOf = %q, want 25%%", got)
	}
	if got := percentOf(dec(50), decimal.Zero); got != "" {
		t.Errorf("percentOf with zero whole = %q, want empty", got)
	}
}

func TestNowOverride(t *testing.T) {
	t.Setenv("MIDINERO_TESTING_NOW", "2026-01-02 03:04:05")
	want := time.Date(2026, time.January, 2, 3, 4, 5, 0, time.UTC)
	if got := Now(); !got.Equal(want) {
		t.Errorf("Now() = %s, want %s", got, want)
	}
}
