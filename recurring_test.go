package midinero

import "testing"

func TestPendingRecurring(t *testing.T) {
	today := MustParseDate("2026-08-31")

	recurring := func(last string, f Frequency) Expense {
		return Expense{
			ID: 1, Date: MustParseDate(last), Amount: d(100),
			CategoryID: 1, Source: AccountRef(1),
			Recurring: true, Frequency: f,
		}
	}

	testCases := []struct {
		name     string
		expense  Expense
		want     bool
		wantDays int
	}{
		{
			name:     "due today",
			expense:  recurring("2026-07-31", Monthly),
			want:     true,
			wantDays: 0,
		},
		{
			name:     "overdue two days",
			expense:  recurring("2026-08-22", Weekly),
			want:     true,
			wantDays: -2,
		},
		{
			name:     "overdue at window edge",
			expense:  recurring("2026-07-28", Monthly),
			want:     true,
			wantDays: -3,
		},
		{
			name:    "too overdue",
			expense: recurring("2026-07-27", Monthly),
			want:    false,
		},
		{
			name:     "upcoming at window edge",
			expense:  recurring("2026-08-07", Monthly),
			want:     true,
			wantDays: 7,
		},
		{
			name:    "too far ahead",
			expense: recurring("2026-08-10", Monthly),
			want:    false,
		},
		{
			name: "not recurring",
			expense: Expense{
				ID: 1, Date: MustParseDate("2026-07-31"), Amount: d(100),
				CategoryID: 1, Source: AccountRef(1),
			},
			want: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := Records{Expenses: []Expense{tc.expense}}
			got := r.PendingRecurring(today)
			if (len(got) == 1) != tc.want {
				t.Fatalf("pending = %d entries, want included=%v", len(got), tc.want)
			}
			if tc.want && got[0].DaysLeft != tc.wantDays {
				t.Errorf("DaysLeft = %d, want %d", got[0].DaysLeft, tc.wantDays)
			}
		})
	}
}

func TestMaterializeRecurring(t *testing.T) {
	book := NewBook(NewMemStore())
	if err := book.Init(); err != nil {
		t.Fatal(err)
	}

	e, err := book.AddExpense(Expense{
		Date: MustParseDate("2026-07-31"), Amount: d(100),
		CategoryID: 1, Source: AccountRef(1),
		Description: "Rent", Recurring: true, Frequency: Monthly,
	})
	if err != nil {
		t.Fatal(err)
	}

	today := MustParseDate("2026-08-31")
	logged, err := book.MaterializeRecurring(e.ID, today)
	if err != nil {
		t.Fatal(err)
	}
	if logged.ID == e.ID {
		t.Error("materialized expense reuses the original id")
	}
	if logged.Date != today {
		t.Errorf("materialized date = %s, want %s", logged.Date, today)
	}
	if !logged.Recurring || logged.Frequency != Monthly || logged.Description != "Rent" {
		t.Errorf("materialized expense lost fields: %+v", logged)
	}
	if len(book.Expenses()) != 2 {
		t.Errorf("expense count = %d, want 2", len(book.Expenses()))
	}

	// the new record is now the reference for the next projection
	r := book.Records()
	pending := r.PendingRecurring(today)
	for _, p := range pending {
		if p.Expense.ID == logged.ID {
			t.Errorf("freshly logged expense is already pending: %+v", p)
		}
	}

	if _, err := book.MaterializeRecurring(999, today); err == nil {
		t.Error("MaterializeRecurring(999) expected an error")
	}
}
