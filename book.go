package midinero

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
)

// Book gives typed access to the collections held in a Store. Every
// mutation is a full read-modify-write of one collection; the design
// assumes a single writer at a time.
//
// Reads never fail: a missing or malformed collection decodes to an
// empty one (logged), so the engine only ever sees zero/empty
// aggregates for absent data.
type Book struct {
	store  Store
	lastID ID
}

// NewBook wraps a store. Call Init to seed defaults on a fresh store.
func NewBook(store Store) *Book { return &Book{store: store} }

// Store exposes the underlying store (for export).
func (b *Book) Store() Store { return b.store }

// DefaultCategories seeded on first use.
func DefaultCategories() []Category {
	names := []string{
		"Food", "Transport", "Utilities", "Entertainment", "Health",
		"Education", "Clothing", "Home", "Subscriptions", "Other",
	}
	cats := make([]Category, len(names))
	for i, n := range names {
		cats[i] = Category{ID: ID(i + 1), Name: n}
	}
	return cats
}

// DefaultAccounts seeded on first use.
func DefaultAccounts() []Account {
	return []Account{
		{ID: 1, Name: "Cash", Type: Cash, Currency: ARS},
		{ID: 2, Name: "Bank", Type: Bank, Currency: ARS},
	}
}

// Init seeds default categories, accounts and the exchange-rate state
// into collections that are still empty, and runs the schema
// migrations on everything else.
func (b *Book) Init() error {
	if len(b.Categories()) == 0 {
		if err := b.SetCategories(DefaultCategories()); err != nil {
			return err
		}
	}
	if len(b.Accounts()) == 0 {
		if err := b.SetAccounts(DefaultAccounts()); err != nil {
			return err
		}
	}
	raw, err := b.store.Read(ExchangeRateKey)
	if err != nil {
		return fmt.Errorf("reading %s: %w", ExchangeRateKey, err)
	}
	if len(raw) == 0 {
		if err := b.SetRate(NewRateState()); err != nil {
			return err
		}
	}
	return b.Migrate()
}

// NewID returns a fresh unique id: the current UnixMilli clock,
// bumped when the clock has not advanced since the previous id.
func (b *Book) NewID() ID {
	id := ID(time.Now().UnixMilli())
	if id <= b.lastID {
		id = b.lastID + 1
	}
	b.lastID = id
	return id
}

// readList decodes a collection into a slice. Absent or malformed
// data yields an empty slice.
func readList[T any](b *Book, key string) []T {
	raw, err := b.store.Read(key)
	if err != nil {
		log.Printf("reading %s: %v (treated as empty)", key, err)
		return nil
	}
	if len(raw) == 0 {
		return nil
	}
	var list []T
	if err := json.Unmarshal(raw, &list); err != nil {
		log.Printf("decoding %s: %v (treated as empty)", key, err)
		return nil
	}
	return list
}

func writeList[T any](b *Book, key string, list []T) error {
	if list == nil {
		list = []T{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	return b.store.Write(key, data)
}

// Collection accessors.

func (b *Book) Incomes() []Income           { return readList[Income](b, IncomesKey) }
func (b *Book) Expenses() []Expense         { return readList[Expense](b, ExpensesKey) }
func (b *Book) Categories() []Category      { return readList[Category](b, CategoriesKey) }
func (b *Book) Goals() []Goal               { return readList[Goal](b, GoalsKey) }
func (b *Book) Accounts() []Account         { return readList[Account](b, AccountsKey) }
func (b *Book) Transfers() []Transfer       { return readList[Transfer](b, TransfersKey) }
func (b *Book) Budgets() []Budget           { return readList[Budget](b, BudgetsKey) }
func (b *Book) Targets() []ReductionTarget  { return readList[ReductionTarget](b, TargetsKey) }
func (b *Book) Destinations() []Destination { return readList[Destination](b, DestinationsKey) }
func (b *Book) Debts() []Debt               { return readList[Debt](b, DebtsKey) }
func (b *Book) Payments() []DebtPayment     { return readList[DebtPayment](b, PaymentsKey) }

func (b *Book) SetIncomes(v []Income) error           { return writeList(b, IncomesKey, v) }
func (b *Book) SetExpenses(v []Expense) error         { return writeList(b, ExpensesKey, v) }
func (b *Book) SetCategories(v []Category) error      { return writeList(b, CategoriesKey, v) }
func (b *Book) SetGoals(v []Goal) error               { return writeList(b, GoalsKey, v) }
func (b *Book) SetAccounts(v []Account) error         { return writeList(b, AccountsKey, v) }
func (b *Book) SetTransfers(v []Transfer) error       { return writeList(b, TransfersKey, v) }
func (b *Book) SetBudgets(v []Budget) error           { return writeList(b, BudgetsKey, v) }
func (b *Book) SetTargets(v []ReductionTarget) error  { return writeList(b, TargetsKey, v) }
func (b *Book) SetDestinations(v []Destination) error { return writeList(b, DestinationsKey, v) }
func (b *Book) SetDebts(v []Debt) error               { return writeList(b, DebtsKey, v) }
func (b *Book) SetPayments(v []DebtPayment) error     { return writeList(b, PaymentsKey, v) }

// Rate returns the exchange-rate state; absent or malformed state
// yields the default.
func (b *Book) Rate() RateState {
	raw, err := b.store.Read(ExchangeRateKey)
	if err != nil || len(raw) == 0 {
		return NewRateState()
	}
	var r RateState
	if err := json.Unmarshal(raw, &r); err != nil {
		log.Printf("decoding %s: %v (using default)", ExchangeRateKey, err)
		return NewRateState()
	}
	return r
}

func (b *Book) SetRate(r RateState) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", ExchangeRateKey, err)
	}
	return b.store.Write(ExchangeRateKey, data)
}

// Theme returns the UI theme name, "dark" by default.
func (b *Book) Theme() string {
	raw, err := b.store.Read(ThemeKey)
	if err != nil || len(raw) == 0 {
		return "dark"
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil || s == "" {
		return "dark"
	}
	return s
}

func (b *Book) SetTheme(theme string) error {
	data, err := json.Marshal(theme)
	if err != nil {
		return err
	}
	return b.store.Write(ThemeKey, data)
}

// addRecord appends a record with a fresh id.

func (b *Book) AddIncome(in Income) (Income, error) {
	if err := in.Validate(); err != nil {
		return in, err
	}
	in.ID = b.NewID()
	return in, b.SetIncomes(append(b.Incomes(), in))
}

func (b *Book) AddExpense(e Expense) (Expense, error) {
	if err := e.Validate(); err != nil {
		return e, err
	}
	e.ID = b.NewID()
	return e, b.SetExpenses(append(b.Expenses(), e))
}

func (b *Book) AddTransfer(t Transfer) (Transfer, error) {
	if err := t.Validate(); err != nil {
		return t, err
	}
	t.ID = b.NewID()
	return t, b.SetTransfers(append(b.Transfers(), t))
}

func (b *Book) AddAccount(a Account) (Account, error) {
	if err := a.Validate(); err != nil {
		return a, err
	}
	a.ID = b.NewID()
	return a, b.SetAccounts(append(b.Accounts(), a))
}

func (b *Book) AddDestination(d Destination) (Destination, error) {
	if err := d.Validate(); err != nil {
		return d, err
	}
	d.ID = b.NewID()
	return d, b.SetDestinations(append(b.Destinations(), d))
}

func (b *Book) AddCategory(name string) (Category, error) {
	if name == "" {
		return Category{}, fmt.Errorf("category name is missing")
	}
	c := Category{ID: b.NewID(), Name: name}
	return c, b.SetCategories(append(b.Categories(), c))
}

func (b *Book) AddGoal(g Goal) (Goal, error) {
	if err := g.Validate(); err != nil {
		return g, err
	}
	g.ID = b.NewID()
	return g, b.SetGoals(append(b.Goals(), g))
}

func (b *Book) AddDebt(d Debt) (Debt, error) {
	if err := d.Validate(); err != nil {
		return d, err
	}
	d.ID = b.NewID()
	return d, b.SetDebts(append(b.Debts(), d))
}

// AddPayment records a payment against a debt. When the payment names
// a paying account, a mirrored expense (category "Other") is appended
// to the expense ledger as an audit trail.
func (b *Book) AddPayment(p DebtPayment) (DebtPayment, error) {
	if err := p.Validate(); err != nil {
		return p, err
	}
	p.ID = b.NewID()
	if err := b.SetPayments(append(b.Payments(), p)); err != nil {
		return p, err
	}

	if p.AccountID != 0 {
		desc := p.Description
		if desc == "" {
			desc = "Debt payment"
			for _, d := range b.Debts() {
				if d.ID == p.DebtID {
					desc = "Debt payment: " + d.Name
					break
				}
			}
		}
		exp := Expense{
			Date:        p.Date,
			Amount:      p.Amount,
			CategoryID:  b.otherCategoryID(),
			Source:      AccountRef(p.AccountID),
			Description: desc,
		}
		if _, err := b.AddExpense(exp); err != nil {
			return p, fmt.Errorf("payment recorded but linked expense failed: %w", err)
		}
	}
	return p, nil
}

// otherCategoryID resolves the catch-all category, creating it if the
// user deleted it.
func (b *Book) otherCategoryID() ID {
	for _, c := range b.Categories() {
		if c.Name == "Other" {
			return c.ID
		}
	}
	c, err := b.AddCategory("Other")
	if err != nil {
		return 0
	}
	return c.ID
}

// UpsertBudget replaces the budget for the category, or appends a new
// one. Budgets are keyed uniquely per category.
func (b *Book) UpsertBudget(bud Budget) (Budget, error) {
	if err := bud.Validate(); err != nil {
		return bud, err
	}
	budgets := b.Budgets()
	for i, existing := range budgets {
		if existing.CategoryID == bud.CategoryID {
			bud.ID = existing.ID
			budgets[i] = bud
			return bud, b.SetBudgets(budgets)
		}
	}
	bud.ID = b.NewID()
	return bud, b.SetBudgets(append(budgets, bud))
}

// UpsertTarget replaces the reduction target for the category, or
// appends a new one.
func (b *Book) UpsertTarget(t ReductionTarget) (ReductionTarget, error) {
	if err := t.Validate(); err != nil {
		return t, err
	}
	targets := b.Targets()
	for i, existing := range targets {
		if existing.CategoryID == t.CategoryID {
			t.ID = existing.ID
			targets[i] = t
			return t, b.SetTargets(targets)
		}
	}
	t.ID = b.NewID()
	return t, b.SetTargets(append(targets, t))
}

// deleteByID removes the element with the given id from a slice.
func deleteByID[T any](list []T, id ID, idOf func(T) ID) []T {
	out := list[:0]
	for _, v := range list {
		if idOf(v) != id {
			out = append(out, v)
		}
	}
	return out
}

func (b *Book) DeleteIncome(id ID) error {
	return b.SetIncomes(deleteByID(b.Incomes(), id, func(v Income) ID { return v.ID }))
}

func (b *Book) DeleteExpense(id ID) error {
	return b.SetExpenses(deleteByID(b.Expenses(), id, func(v Expense) ID { return v.ID }))
}

func (b *Book) DeleteTransfer(id ID) error {
	return b.SetTransfers(deleteByID(b.Transfers(), id, func(v Transfer) ID { return v.ID }))
}

// DeleteAccount removes an account. Records referencing it keep their
// dangling reference; the engine resolves it to "no account".
func (b *Book) DeleteAccount(id ID) error {
	return b.SetAccounts(deleteByID(b.Accounts(), id, func(v Account) ID { return v.ID }))
}

func (b *Book) DeleteDestination(id ID) error {
	return b.SetDestinations(deleteByID(b.Destinations(), id, func(v Destination) ID { return v.ID }))
}

func (b *Book) DeleteCategory(id ID) error {
	return b.SetCategories(deleteByID(b.Categories(), id, func(v Category) ID { return v.ID }))
}

func (b *Book) DeleteGoal(id ID) error {
	return b.SetGoals(deleteByID(b.Goals(), id, func(v Goal) ID { return v.ID }))
}

func (b *Book) DeleteBudget(categoryID ID) error {
	return b.SetBudgets(deleteByID(b.Budgets(), categoryID, func(v Budget) ID { return v.CategoryID }))
}

func (b *Book) DeleteTarget(categoryID ID) error {
	return b.SetTargets(deleteByID(b.Targets(), categoryID, func(v ReductionTarget) ID { return v.CategoryID }))
}

// DeleteDebt removes a debt and cascades to its payments. Linked
// expenses created by those payments are kept as history.
func (b *Book) DeleteDebt(id ID) error {
	if err := b.SetDebts(deleteByID(b.Debts(), id, func(v Debt) ID { return v.ID })); err != nil {
		return err
	}
	return b.SetPayments(deleteByID(b.Payments(), id, func(v DebtPayment) ID { return v.DebtID }))
}

func (b *Book) DeletePayment(id ID) error {
	return b.SetPayments(deleteByID(b.Payments(), id, func(v DebtPayment) ID { return v.ID }))
}

// Records is an immutable snapshot of every collection, the input to
// the aggregation engine.
type Records struct {
	Incomes      []Income
	Expenses     []Expense
	Categories   []Category
	Goals        []Goal
	Accounts     []Account
	Transfers    []Transfer
	Budgets      []Budget
	Targets      []ReductionTarget
	Destinations []Destination
	Debts        []Debt
	Payments     []DebtPayment
	Rate         RateState
}

// Records snapshots the book for aggregation.
func (b *Book) Records() Records {
	return Records{
		Incomes:      b.Incomes(),
		Expenses:     b.Expenses(),
		Categories:   b.Categories(),
		Goals:        b.Goals(),
		Accounts:     b.Accounts(),
		Transfers:    b.Transfers(),
		Budgets:      b.Budgets(),
		Targets:      b.Targets(),
		Destinations: b.Destinations(),
		Debts:        b.Debts(),
		Payments:     b.Payments(),
		Rate:         b.Rate(),
	}
}

// CurrentRate is a convenience for the authoritative ARS-per-USD rate.
func (b *Book) CurrentRate() decimal.Decimal { return b.Rate().Current() }
