package midinero

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"
)

// this file contains functions to handle the backup import/export format.
// It should remain human readable, a single file, and easy to diff.

// BackupVersion is the current backup document version.
const BackupVersion = "3"

// ErrInvalidFormat is returned when an imported backup misses one of
// the required collections (incomes, expenses, categories).
var ErrInvalidFormat = errors.New("invalid backup format")

// backup is the wire shape of a backup document. Pointer slices
// distinguish an absent collection from an empty one: absent optional
// collections are backfilled with safe defaults on import.
type backup struct {
	Version    string    `json:"version"`
	ExportedAt time.Time `json:"exportedAt"`

	Incomes      *[]Income          `json:"incomes"`
	Expenses     *[]Expense         `json:"expenses"`
	Categories   *[]Category        `json:"categories"`
	Goals        *[]Goal            `json:"goals"`
	Accounts     *[]Account         `json:"accounts"`
	Transfers    *[]Transfer        `json:"transfers"`
	Budgets      *[]Budget          `json:"budgets"`
	Targets      *[]ReductionTarget `json:"reductionTargets"`
	Destinations *[]Destination     `json:"savingsDestinations"`
	Debts        *[]Debt            `json:"debts"`
	Payments     *[]DebtPayment     `json:"debtPayments"`
	Rate         *RateState         `json:"exchangeRate"`
	Theme        string             `json:"theme,omitempty"`

	// Legacy v1 backups carried a single goal object.
	Goal *Goal `json:"goal,omitempty"`
}

// Export writes the whole book as one backup document. Never-written
// collections are nil slices; they export as [] so the required
// collections survive a round trip through Import.
func Export(w io.Writer, b *Book) error {
	var doc jsonObjectWriter
	doc.Append("version", BackupVersion)
	doc.Append("exportedAt", time.Now().UTC().Truncate(time.Second))
	doc.Append("incomes", orEmptySlice(b.Incomes()))
	doc.Append("expenses", orEmptySlice(b.Expenses()))
	doc.Append("categories", orEmptySlice(b.Categories()))
	doc.Append("goals", orEmptySlice(b.Goals()))
	doc.Append("accounts", orEmptySlice(b.Accounts()))
	doc.Append("transfers", orEmptySlice(b.Transfers()))
	doc.Append("budgets", orEmptySlice(b.Budgets()))
	doc.Append("reductionTargets", orEmptySlice(b.Targets()))
	doc.Append("savingsDestinations", orEmptySlice(b.Destinations()))
	doc.Append("debts", orEmptySlice(b.Debts()))
	doc.Append("debtPayments", orEmptySlice(b.Payments()))
	doc.Append("exchangeRate", b.Rate())
	doc.Append("theme", b.Theme())

	data, err := json.MarshalIndent(&doc, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal backup: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write backup: %w", err)
	}
	return nil
}

// Import replaces the book's collections with the backup read from r.
// Incomes, expenses and categories must be present; everything else
// is backfilled with safe defaults. The startup migrations run after
// the data lands, and the id clock is advanced past every imported id
// so future ids stay unique.
func Import(r io.Reader, b *Book) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("cannot read backup: %w", err)
	}
	var doc backup
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if doc.Incomes == nil || doc.Expenses == nil || doc.Categories == nil {
		return fmt.Errorf("%w: missing incomes, expenses or categories", ErrInvalidFormat)
	}

	if err := b.SetIncomes(*doc.Incomes); err != nil {
		return err
	}
	if err := b.SetExpenses(*doc.Expenses); err != nil {
		return err
	}
	if err := b.SetCategories(*doc.Categories); err != nil {
		return err
	}

	goals := orEmpty(doc.Goals)
	if doc.Goals == nil && doc.Goal != nil {
		goals = []Goal{*doc.Goal} // migrate from v1
	}
	if err := b.SetGoals(goals); err != nil {
		return err
	}

	accounts := orEmpty(doc.Accounts)
	if doc.Accounts == nil {
		accounts = DefaultAccounts()
	}
	if err := b.SetAccounts(accounts); err != nil {
		return err
	}
	if err := b.SetTransfers(orEmpty(doc.Transfers)); err != nil {
		return err
	}
	if err := b.SetBudgets(orEmpty(doc.Budgets)); err != nil {
		return err
	}
	if err := b.SetTargets(orEmpty(doc.Targets)); err != nil {
		return err
	}
	if err := b.SetDestinations(orEmpty(doc.Destinations)); err != nil {
		return err
	}
	if err := b.SetDebts(orEmpty(doc.Debts)); err != nil {
		return err
	}
	if err := b.SetPayments(orEmpty(doc.Payments)); err != nil {
		return err
	}

	rate := NewRateState()
	if doc.Rate != nil {
		rate = *doc.Rate
	}
	if err := b.SetRate(rate); err != nil {
		return err
	}
	if doc.Theme != "" {
		if err := b.SetTheme(doc.Theme); err != nil {
			return err
		}
	}

	b.advancePast(maxImportedID(b.Records()))
	return b.Migrate()
}

func orEmpty[T any](p *[]T) []T {
	if p == nil {
		return []T{}
	}
	return *p
}

func orEmptySlice[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}

// advancePast bumps the id clock beyond the given id.
func (b *Book) advancePast(id ID) {
	if id > b.lastID {
		b.lastID = id
	}
}

func maxImportedID(r Records) ID {
	var max ID
	bump := func(id ID) {
		if id > max {
			max = id
		}
	}
	for _, v := range r.Incomes {
		bump(v.ID)
	}
	for _, v := range r.Expenses {
		bump(v.ID)
	}
	for _, v := range r.Categories {
		bump(v.ID)
	}
	for _, v := range r.Goals {
		bump(v.ID)
	}
	for _, v := range r.Accounts {
		bump(v.ID)
	}
	for _, v := range r.Transfers {
		bump(v.ID)
	}
	for _, v := range r.Budgets {
		bump(v.ID)
	}
	for _, v := range r.Targets {
		bump(v.ID)
	}
	for _, v := range r.Destinations {
		bump(v.ID)
	}
	for _, v := range r.Debts {
		bump(v.ID)
	}
	for _, v := range r.Payments {
		bump(v.ID)
	}
	return max
}
