package midinero

import "github.com/shopspring/decimal"

// Debt returns the debt with the given id.
func (r Records) Debt(id ID) (Debt, bool) {
	for _, d := range r.Debts {
		if d.ID == id {
			return d, true
		}
	}
	return Debt{}, false
}

// PaymentsFor returns the payments recorded against a debt.
func (r Records) PaymentsFor(debtID ID) []DebtPayment {
	var out []DebtPayment
	for _, p := range r.Payments {
		if p.DebtID == debtID {
			out = append(out, p)
		}
	}
	return out
}

// PaidToDate sums the payments recorded against a debt.
func (r Records) PaidToDate(debtID ID) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range r.Payments {
		if p.DebtID == debtID {
			sum = sum.Add(p.Amount)
		}
	}
	return sum
}

// DebtBalance is the outstanding amount of a debt: its total minus
// all payments. A dangling id yields zero without error.
func (r Records) DebtBalance(id ID) Money {
	debt, ok := r.Debt(id)
	if !ok {
		return M(decimal.Zero, "")
	}
	return M(debt.Total.Sub(r.PaidToDate(id)), debt.Currency)
}

// TotalDebtsInARS sums every outstanding balance, converting USD debts
// at the given rate.
func (r Records) TotalDebtsInARS(rate decimal.Decimal) Money {
	total := M(decimal.Zero, ARS)
	for _, d := range r.Debts {
		total = total.Add(r.DebtBalance(d.ID).InARS(rate))
	}
	return total
}
