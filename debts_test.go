package midinero

import "testing"

func debtRecords() Records {
	return Records{
		Debts: []Debt{
			{ID: 1, Name: "Card", Type: CardDebt, Total: d(1000), Currency: ARS, Date: MustParseDate("2026-07-01")},
			{ID: 2, Name: "Loan", Type: LoanDebt, Total: d(50), Currency: USD, Date: MustParseDate("2026-06-01")},
		},
		Payments: []DebtPayment{
			{ID: 10, DebtID: 1, Amount: d(300), Date: MustParseDate("2026-07-10")},
			{ID: 11, DebtID: 1, Amount: d(700), Date: MustParseDate("2026-08-10")},
			{ID: 12, DebtID: 2, Amount: d(10), Date: MustParseDate("2026-08-01")},
		},
	}
}

func TestDebtBalance(t *testing.T) {
	r := debtRecords()

	// fully paid: 1000 - 300 - 700
	if got := r.DebtBalance(1); !got.IsZero() {
		t.Errorf("DebtBalance(1) = %s, want 0", got.Decimal())
	}
	if got := r.DebtBalance(2); !got.Decimal().Equal(d(40)) {
		t.Errorf("DebtBalance(2) = %s, want 40", got.Decimal())
	}
	if got := r.DebtBalance(999); !got.IsZero() {
		t.Errorf("DebtBalance(999) = %s, want 0", got.Decimal())
	}
}

func TestTotalDebtsInARS(t *testing.T) {
	r := debtRecords()
	// 0 ARS outstanding + 40 USD * 1000
	if got := r.TotalDebtsInARS(d(1000)); !got.Decimal().Equal(d(40000)) {
		t.Errorf("TotalDebtsInARS = %s, want 40000", got.Decimal())
	}
}

func TestPaidToDate(t *testing.T) {
	r := debtRecords()
	if got := r.PaidToDate(1); !got.Equal(d(1000)) {
		t.Errorf("PaidToDate(1) = %s, want 1000", got)
	}
	if got := len(r.PaymentsFor(1)); got != 2 {
		t.Errorf("PaymentsFor(1) returned %d payments, want 2", got)
	}
}

func TestDeleteDebt_CascadesPayments(t *testing.T) {
	book := NewBook(NewMemStore())
	if err := book.Init(); err != nil {
		t.Fatal(err)
	}

	debt, err := book.AddDebt(Debt{Name: "Card", Type: CardDebt, Total: d(1000), Currency: ARS, Date: Today()})
	if err != nil {
		t.Fatal(err)
	}
	// a payment from account 1 also mirrors an expense
	if _, err := book.AddPayment(DebtPayment{DebtID: debt.ID, Amount: d(300), Date: Today(), AccountID: 1}); err != nil {
		t.Fatal(err)
	}
	if len(book.Expenses()) != 1 {
		t.Fatalf("expected a mirrored expense, got %d", len(book.Expenses()))
	}

	if err := book.DeleteDebt(debt.ID); err != nil {
		t.Fatal(err)
	}
	if len(book.Debts()) != 0 {
		t.Error("debt not deleted")
	}
	if len(book.Payments()) != 0 {
		t.Error("payments not cascaded")
	}
	// the mirrored expense stays as account history
	if len(book.Expenses()) != 1 {
		t.Errorf("mirrored expense count = %d, want 1", len(book.Expenses()))
	}
}
