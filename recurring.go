package midinero

import "fmt"

// Recurring-expense projection. The engine never creates the next
// occurrence by itself: it only surfaces what is due soon, and a user
// action materializes it.

// The surfacing window around the projected next occurrence, in days:
// up to overdueDays late and upcomingDays early.
const (
	overdueDays  = 3
	upcomingDays = 7
)

// PendingRecurring is a recurring expense whose next occurrence falls
// inside the surfacing window. DaysLeft is negative when overdue.
type PendingRecurring struct {
	Expense  Expense
	NextDate Date
	DaysLeft int
}

// PendingRecurring projects each recurring expense one period past
// its last recorded date and returns those due within [-3,+7] days of
// today.
func (r Records) PendingRecurring(today Date) []PendingRecurring {
	var pending []PendingRecurring
	for _, e := range r.Expenses {
		if !e.Recurring {
			continue
		}
		next := e.Frequency.Next(e.Date)
		days := today.DaysUntil(next)
		if days >= -overdueDays && days <= upcomingDays {
			pending = append(pending, PendingRecurring{
				Expense:  e,
				NextDate: next,
				DaysLeft: days,
			})
		}
	}
	return pending
}

// MaterializeRecurring records the next occurrence of a recurring
// expense by copying the prior record's fields onto today's date.
func (b *Book) MaterializeRecurring(id ID, today Date) (Expense, error) {
	for _, e := range b.Expenses() {
		if e.ID == id {
			e.Date = today
			return b.AddExpense(e)
		}
	}
	return Expense{}, fmt.Errorf("unknown expense id %d", id)
}
